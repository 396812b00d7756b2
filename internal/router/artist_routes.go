package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/handler"
)

// RegisterArtists registers the artist pages.
func RegisterArtists(e *echo.Echo, h *handler.Handler, limit echo.MiddlewareFunc) {
	g := e.Group("/artists")
	g.GET("", h.ListArtists)
	g.POST("/search", h.SearchArtists)
	g.GET("/create", h.NewArtistForm)
	g.POST("/create", h.CreateArtist, limit)
	g.GET("/:id", h.ShowArtist)
	g.GET("/:id/edit", h.EditArtistForm)
	g.POST("/:id/edit", h.UpdateArtist, limit)
}
