package serviceImp

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"morafo/entities"
	"morafo/pkg/ai"
	"morafo/pkg/weather/service"
)

type riskReader interface {
	WeatherRisk(ctx context.Context, at *ai.Coords, lang entities.Language) (*entities.WeatherRisk, error)
}

type weatherSvc struct {
	llm riskReader
	log *zap.Logger
}

func NewWeatherService(llm riskReader, log *zap.Logger) service.WeatherService {
	return &weatherSvc{llm: llm, log: log}
}

func (s *weatherSvc) Risk(ctx context.Context, at *ai.Coords, lang entities.Language) service.Report {
	if !at.Known() {
		at = nil
	}
	var (
		risk     entities.WeatherRisk
		fallback bool
	)
	got, err := s.llm.WeatherRisk(ctx, at, lang)
	switch {
	case err == nil && got != nil:
		risk = *got
	case err == nil, errors.Is(err, ai.ErrEmpty):
		risk, fallback = service.Stable(), true
	default:
		s.log.Warn("weather risk unavailable, using fallback", zap.Error(err))
		risk, fallback = service.FetchFailed(), true
	}

	loc := risk.LocationName
	if loc == "" {
		loc = service.DefaultLocation
	}
	return service.Report{
		WeatherRisk: risk,
		Title:       lang.Pick("Weather Risk", "Kotsi ea Boemo ba Leholimo"),
		Label:       service.Label(risk.Type, lang),
		Alert:       lang.Pick("Alert", "Hlokomela"),
		Location:    loc,
		Fallback:    fallback,
	}
}
