package router

import (
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"morafo/pkg/middleware"
)

type registrar interface{ Register(g *echo.Group) }

// limitedRegistrar mounts routes of which some call the inference backend.
type limitedRegistrar interface {
	Register(g *echo.Group, limit echo.MiddlewareFunc)
}

type Controllers struct {
	Shell     registrar
	Feed      registrar
	Chat      limitedRegistrar
	Diagnosis limitedRegistrar
	Market    limitedRegistrar
	Weather   limitedRegistrar
	Insights  limitedRegistrar
	Session   interface{ WhoAmI(echo.Context) error }
	Health    interface{ Health(echo.Context) error }
}

type Options struct {
	AllowOrigins  []string
	RatePerMinute int
	SlowRequest   time.Duration
}

func New(e *echo.Echo, log *zap.Logger, opt Options, ctl Controllers) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     opt.AllowOrigins,
		AllowHeaders:     []string{echo.HeaderContentType, middleware.SessionHeader},
		ExposeHeaders:    []string{middleware.SessionHeader},
		AllowCredentials: len(opt.AllowOrigins) > 0 && opt.AllowOrigins[0] != "*",
	}))
	e.Use(middleware.Logger(log, opt.SlowRequest))

	e.GET("/health", ctl.Health.Health)

	api := e.Group("/api/v1", middleware.Session(), middleware.Language())
	api.GET("/session", ctl.Session.WhoAmI)

	limit := middleware.RateLimit(opt.RatePerMinute)
	ctl.Shell.Register(api)
	ctl.Feed.Register(api)
	ctl.Chat.Register(api, limit)
	ctl.Diagnosis.Register(api, limit)
	ctl.Market.Register(api, limit)
	ctl.Weather.Register(api, limit)
	ctl.Insights.Register(api, limit)
	return e
}
