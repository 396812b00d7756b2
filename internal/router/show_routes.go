package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/handler"
)

// RegisterShows registers the show listing and booking form.
func RegisterShows(e *echo.Echo, h *handler.Handler, limit echo.MiddlewareFunc) {
	e.GET("/shows", h.ListShows)
	e.GET("/shows/create", h.NewShowForm)
	e.POST("/shows/create", h.CreateShow, limit)
}
