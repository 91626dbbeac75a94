package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"morafo/pkg/ai"
	"morafo/pkg/middleware"
	"morafo/pkg/weather/controller"
	"morafo/pkg/weather/service"
)

var _ controller.WeatherController = (*WeatherCtrl)(nil)

type WeatherCtrl struct{ svc service.WeatherService }

func New(svc service.WeatherService) *WeatherCtrl { return &WeatherCtrl{svc} }

func (h *WeatherCtrl) Register(g *echo.Group, limit echo.MiddlewareFunc) {
	g.GET("/weather", h.Risk, limit)
}

// Risk reads optional lat/lng query parameters. A device that refused
// location simply omits them.
func (h *WeatherCtrl) Risk(c echo.Context) error {
	var at *ai.Coords
	if lat, lng := c.QueryParam("lat"), c.QueryParam("lng"); lat != "" || lng != "" {
		la, err1 := strconv.ParseFloat(lat, 64)
		ln, err2 := strconv.ParseFloat(lng, 64)
		if err1 != nil || err2 != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "lat and lng must both be numbers"})
		}
		at = &ai.Coords{Lat: la, Lng: ln}
	}
	return c.JSON(http.StatusOK, h.svc.Risk(c.Request().Context(), at, middleware.LanguageOf(c)))
}
