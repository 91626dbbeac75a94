package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"morafo/pkg/insights/controller"
	"morafo/pkg/insights/service"
	"morafo/pkg/middleware"
)

var _ controller.InsightsController = (*InsightsCtrl)(nil)

type InsightsCtrl struct{ svc service.InsightsService }

func New(svc service.InsightsService) *InsightsCtrl { return &InsightsCtrl{svc} }

func (h *InsightsCtrl) Register(g *echo.Group, limit echo.MiddlewareFunc) {
	g.GET("/insights", h.Article, limit)
}

func (h *InsightsCtrl) Article(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Article(c.Request().Context(), middleware.LanguageOf(c)))
}
