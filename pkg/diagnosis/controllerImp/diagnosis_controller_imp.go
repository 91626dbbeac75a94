package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"morafo/pkg/diagnosis/controller"
	"morafo/pkg/diagnosis/service"
	"morafo/pkg/middleware"
)

var _ controller.DiagnosisController = (*DiagnosisCtrl)(nil)

type DiagnosisCtrl struct{ svc service.DiagnosisService }

func New(svc service.DiagnosisService) *DiagnosisCtrl { return &DiagnosisCtrl{svc} }

func (h *DiagnosisCtrl) Register(g *echo.Group, limit echo.MiddlewareFunc) {
	g.GET("/diagnosis/animals", h.Animals)
	g.POST("/diagnosis", h.Diagnose, limit)
}

func (h *DiagnosisCtrl) Animals(c echo.Context) error {
	lang := middleware.LanguageOf(c)
	return c.JSON(http.StatusOK, map[string]any{
		"animals": h.svc.Animals(lang),
		"default": service.DefaultAnimal,
	})
}

func (h *DiagnosisCtrl) Diagnose(c echo.Context) error {
	var req service.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	res, err := h.svc.Diagnose(c.Request().Context(), middleware.LanguageOf(c), req)
	var be *service.BackendError
	switch {
	case errors.Is(err, service.ErrImageRequired):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrBadImage):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &be):
		return c.JSON(http.StatusBadGateway, map[string]any{"error": be.Message, "retry": true})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
