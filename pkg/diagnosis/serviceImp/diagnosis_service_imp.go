package serviceImp

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"morafo/entities"
	"morafo/pkg/ai"
	"morafo/pkg/diagnosis/service"
	"morafo/pkg/render"
)

type diagnoser interface {
	Diagnose(ctx context.Context, img ai.Image, notes, animal string, lang entities.Language) (string, error)
}

type diagnosisSvc struct {
	llm diagnoser
	log *zap.Logger
}

func NewDiagnosisService(llm diagnoser, log *zap.Logger) service.DiagnosisService {
	return &diagnosisSvc{llm: llm, log: log}
}

func (s *diagnosisSvc) Animals(lang entities.Language) []service.AnimalChoice {
	return service.Animals(lang)
}

func (s *diagnosisSvc) Diagnose(ctx context.Context, lang entities.Language, req service.Request) (*service.Result, error) {
	if strings.TrimSpace(req.Image) == "" {
		return nil, service.ErrImageRequired
	}
	img, err := ai.ParseDataURL(req.Image)
	if err != nil {
		return nil, service.ErrBadImage
	}
	animal := service.DefaultAnimal
	if a := strings.TrimSpace(req.Animal); a != "" {
		animal = service.NormalizeAnimal(a)
	}

	text, err := s.llm.Diagnose(ctx, img, strings.TrimSpace(req.Notes), animal, lang)
	if err != nil && !errors.Is(err, ai.ErrEmpty) {
		s.log.Warn("diagnosis failed", zap.String("animal", animal), zap.Error(err))
		return nil, &service.BackendError{Message: service.FailureMessage(lang), Err: err}
	}
	if strings.TrimSpace(text) == "" {
		text = service.CannotAnalyze(lang)
	}
	return &service.Result{
		Animal:     animal,
		Markdown:   text,
		HTML:       render.HTML(text),
		Disclaimer: service.Disclaimer(lang),
	}, nil
}
