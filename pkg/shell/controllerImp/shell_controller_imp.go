package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"morafo/pkg/shell"
)

// panelPaths tells the client which API area backs each panel.
var panelPaths = map[shell.ViewState]string{
	shell.Home:      "/api/v1/shell",
	shell.Chat:      "/api/v1/chat/messages",
	shell.Diagnosis: "/api/v1/diagnosis",
	shell.Market:    "/api/v1/market",
	shell.Feed:      "/api/v1/feed/suppliers",
	shell.Insights:  "/api/v1/insights",
}

type ShellCtrl struct{}

func New() *ShellCtrl { return &ShellCtrl{} }

func (h *ShellCtrl) Register(g *echo.Group) {
	g.GET("/shell", h.Home)
	g.GET("/shell/:view", h.Panel)
}

func (h *ShellCtrl) Home(c echo.Context) error {
	ctx := shell.ContextOf(c, shell.Home)
	return c.JSON(http.StatusOK, shell.HomeFor(ctx.Language))
}

func (h *ShellCtrl) Panel(c echo.Context) error {
	v, ok := shell.ParseView(c.Param("view"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown view"})
	}
	ctx := shell.ContextOf(c, v)
	return c.JSON(http.StatusOK, map[string]any{
		"view":     ctx.View,
		"language": ctx.Language,
		"label":    shell.Label(ctx.View, ctx.Language),
		"api":      panelPaths[ctx.View],
	})
}
