// Package router wires middleware and routes onto an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/middleware"
)

// Options carries what New needs to build the server.
type Options struct {
	Handler      *handler.Handler
	Renderer     echo.Renderer
	Log          logrus.FieldLogger
	Redis        *redis.Client // nil disables rate limiting
	RateLimit    config.RateLimitConfig
	CookieSecure bool
}

// New returns an Echo instance with every route registered.
func New(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = opts.Renderer
	e.HTTPErrorHandler = opts.Handler.HTTPErrorHandler

	// forms cannot send DELETE, so a _method field is honoured on POST
	e.Pre(echomw.MethodOverrideWithConfig(echomw.MethodOverrideConfig{
		Getter: echomw.MethodFromForm("_method"),
	}))
	e.Use(
		echomw.Recover(),
		middleware.RequestID(),
		middleware.RequestLogger(opts.Log),
		middleware.Metrics(),
		middleware.Flash(opts.CookieSecure),
	)

	RegisterRoutes(e, opts.Handler)
	limit := middleware.NewTokenBucket(opts.RateLimit, opts.Redis, opts.Log)
	RegisterVenues(e, opts.Handler, limit)
	RegisterArtists(e, opts.Handler, limit)
	RegisterShows(e, opts.Handler, limit)
	return e
}

// RegisterRoutes registers the pages and endpoints that belong to no entity.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	e.GET("/", h.Home)
	e.GET("/healthz", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
