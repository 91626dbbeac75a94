package controllerImp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"morafo/entities"
	"morafo/pkg/ai"
	"morafo/pkg/middleware"
	"morafo/pkg/weather/service"
)

type fakeSvc struct {
	at   *ai.Coords
	risk *entities.WeatherRisk
}

func (f *fakeSvc) Risk(_ context.Context, at *ai.Coords, _ entities.Language) service.Report {
	f.at = at
	if f.risk != nil {
		return service.Report{WeatherRisk: *f.risk, Location: f.risk.LocationName}
	}
	return service.Report{WeatherRisk: service.Stable(), Location: service.DefaultLocation}
}

func TestRisk_Query(t *testing.T) {
	svc := &fakeSvc{}
	e := echo.New()
	New(svc).Register(e.Group("", middleware.Language()), func(next echo.HandlerFunc) echo.HandlerFunc { return next })

	get := func(q string) int {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/weather"+q, nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, get(""))
	assert.Nil(t, svc.at)

	assert.Equal(t, http.StatusOK, get("?lat=-29.31&lng=27.48"))
	assert.Equal(t, &ai.Coords{Lat: -29.31, Lng: 27.48}, svc.at)

	assert.Equal(t, http.StatusBadRequest, get("?lat=north"))
}

func TestRisk_SnakeCaseBody(t *testing.T) {
	svc := &fakeSvc{risk: &entities.WeatherRisk{Type: entities.HazardHail, Level: entities.RiskHigh, Advice: "Move the birds inside.", LocationName: "Leribe"}}
	e := echo.New()
	New(svc).Register(e.Group("", middleware.Language()), func(next echo.HandlerFunc) echo.HandlerFunc { return next })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/weather", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"location_name":"Leribe"`)
	assert.NotContains(t, rec.Body.String(), "locationName")
}
