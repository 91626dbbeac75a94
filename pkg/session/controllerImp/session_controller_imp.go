package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"morafo/entities"
	"morafo/pkg/middleware"
	"morafo/pkg/session/controller"
)

type profiles interface {
	Profile(sessionID string) (*entities.FarmerProfile, error)
}

type sessionCtrl struct{ p profiles }

func NewSessionController(p profiles) controller.SessionController { return &sessionCtrl{p} }

func (h *sessionCtrl) WhoAmI(c echo.Context) error {
	sid := middleware.SessionID(c)
	p, err := h.p.Profile(sid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"session_id": sid,
		"lang":       middleware.LanguageOf(c),
		"registered": p != nil,
	})
}
