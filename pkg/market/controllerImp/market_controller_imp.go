package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"morafo/entities"
	"morafo/pkg/market/controller"
	"morafo/pkg/market/service"
	"morafo/pkg/middleware"
)

var _ controller.MarketController = (*MarketCtrl)(nil)

type MarketCtrl struct{ svc service.MarketService }

func New(svc service.MarketService) *MarketCtrl { return &MarketCtrl{svc} }

func (h *MarketCtrl) Register(g *echo.Group, limit echo.MiddlewareFunc) {
	g.GET("/market", h.Snapshot, limit)
	g.POST("/market/refresh", h.Refresh, limit)
	g.GET("/market/profile", h.Profile)
	g.POST("/market/profile", h.RegisterFarmer)
	g.POST("/market/listings", h.AddListing)
}

func (h *MarketCtrl) Snapshot(c echo.Context) error {
	snap, err := h.svc.Snapshot(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *MarketCtrl) Refresh(c echo.Context) error {
	snap, err := h.svc.Refresh(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *MarketCtrl) Profile(c echo.Context) error {
	p, err := h.svc.Profile(middleware.SessionID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"registered":       p != nil,
		"profile":          p,
		"districts":        entities.Districts,
		"production_types": service.ProductionTypes,
	})
}

func (h *MarketCtrl) RegisterFarmer(c echo.Context) error {
	var form service.RegisterForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.Register(middleware.SessionID(c), middleware.LanguageOf(c), form)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *MarketCtrl) AddListing(c echo.Context) error {
	var form service.ListingForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	l, err := h.svc.AddListing(middleware.SessionID(c), middleware.LanguageOf(c), form)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func failure(c echo.Context, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, ve)
	case errors.Is(err, service.ErrNotRegistered):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
