package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"morafo/pkg/chat/controller"
	"morafo/pkg/chat/service"
	"morafo/pkg/middleware"
)

var _ controller.ChatController = (*ChatCtrl)(nil)

type ChatCtrl struct{ svc service.ChatService }

func New(svc service.ChatService) *ChatCtrl { return &ChatCtrl{svc} }

// Register mounts the chat routes. limit guards the inference call.
func (h *ChatCtrl) Register(g *echo.Group, limit echo.MiddlewareFunc) {
	g.GET("/chat/messages", h.History)
	g.POST("/chat/messages", h.Send, limit)
}

func (h *ChatCtrl) History(c echo.Context) error {
	msgs, err := h.svc.History(middleware.SessionID(c), middleware.LanguageOf(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"messages": msgs})
}

func (h *ChatCtrl) Send(c echo.Context) error {
	var req service.SendInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	msgs, err := h.svc.Send(c.Request().Context(), middleware.SessionID(c), middleware.LanguageOf(c), req)
	switch {
	case errors.Is(err, service.ErrBadImage):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	case msgs == nil:
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, map[string]any{"messages": msgs})
}
