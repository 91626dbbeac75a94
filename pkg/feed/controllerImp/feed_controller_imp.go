package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"morafo/entities"
	"morafo/pkg/feed/controller"
	"morafo/pkg/feed/service"
	"morafo/pkg/middleware"
)

var _ controller.FeedController = (*FeedCtrl)(nil)

type FeedCtrl struct{ svc service.FeedService }

func New(svc service.FeedService) *FeedCtrl { return &FeedCtrl{svc} }

func (h *FeedCtrl) Register(g *echo.Group) {
	g.GET("/feed/districts", h.Districts)
	g.GET("/feed/suppliers", h.Suppliers)
}

func (h *FeedCtrl) Districts(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"districts": h.svc.Districts(),
		"default":   entities.DefaultDistrict,
	})
}

func (h *FeedCtrl) Suppliers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Suppliers(c.QueryParam("district"), middleware.LanguageOf(c)))
}
