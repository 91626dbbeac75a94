package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"morafo/entities"
	"morafo/pkg/ai"
	"morafo/pkg/weather/service"
)

type stubReader struct {
	risk *entities.WeatherRisk
	err  error
	at   *ai.Coords
}

func (s *stubReader) WeatherRisk(_ context.Context, at *ai.Coords, _ entities.Language) (*entities.WeatherRisk, error) {
	s.at = at
	return s.risk, s.err
}

func TestRisk_Fallbacks(t *testing.T) {
	cases := []struct {
		name string
		r    *stubReader
		want entities.WeatherRisk
	}{
		{"transport", &stubReader{err: ai.ErrUnavailable}, entities.WeatherRisk{Type: "None", Level: "Low", Advice: "Could not fetch weather data."}},
		{"malformed", &stubReader{err: ai.ErrMalformed}, entities.WeatherRisk{Type: "None", Level: "Low", Advice: "Could not fetch weather data."}},
		{"empty", &stubReader{err: ai.ErrEmpty}, entities.WeatherRisk{Type: "None", Level: "Low", Advice: "Conditions are stable. Continue monitoring."}},
		{"nil result", &stubReader{}, entities.WeatherRisk{Type: "None", Level: "Low", Advice: "Conditions are stable. Continue monitoring."}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep := NewWeatherService(tc.r, zap.NewNop()).Risk(context.Background(), nil, entities.English)
			assert.Equal(t, tc.want, rep.WeatherRisk)
			assert.True(t, rep.Fallback)
			assert.Equal(t, "Normal", rep.Label)
			assert.Equal(t, service.DefaultLocation, rep.Location)
		})
	}
}

func TestRisk_UsesCoordsOnlyWhenBothSet(t *testing.T) {
	r := &stubReader{risk: &entities.WeatherRisk{Type: entities.HazardFrost, Level: entities.RiskHigh, Advice: "Close the coop at night.", LocationName: "Mokhotlong"}}
	svc := NewWeatherService(r, zap.NewNop())

	svc.Risk(context.Background(), &ai.Coords{Lat: -29.3, Lng: 0}, entities.English)
	assert.Nil(t, r.at)

	rep := svc.Risk(context.Background(), &ai.Coords{Lat: -29.3, Lng: 29.1}, entities.Sesotho)
	if assert.NotNil(t, r.at) {
		assert.Equal(t, 29.1, r.at.Lng)
	}
	assert.False(t, rep.Fallback)
	assert.Equal(t, "Serame", rep.Label)
	assert.Equal(t, "Hlokomela", rep.Alert)
	assert.Equal(t, "Mokhotlong", rep.Location)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Heavy Rain", service.Label(entities.HazardRain, entities.English))
	assert.Equal(t, "Pula e Matla", service.Label(entities.HazardRain, entities.Sesotho))
	assert.Equal(t, "Ho Itlwaelehile", service.Label("Tornado", entities.Sesotho))
}
