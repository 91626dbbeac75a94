package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"morafo/entities"
	"morafo/pkg/insights/service"
	"morafo/pkg/render"
)

type writer interface {
	Article(ctx context.Context, lang entities.Language) (string, error)
}

type insightsSvc struct {
	llm writer
	log *zap.Logger
}

func NewInsightsService(llm writer, log *zap.Logger) service.InsightsService {
	return &insightsSvc{llm: llm, log: log}
}

func (s *insightsSvc) Article(ctx context.Context, lang entities.Language) service.Article {
	text, err := s.llm.Article(ctx, lang)
	fallback := false
	if err != nil || len(strings.TrimSpace(text)) <= service.MinArticleLen {
		if err != nil {
			s.log.Warn("article unavailable, using fallback", zap.Error(err))
		}
		text, fallback = service.Fallback(lang), true
	}
	html := render.HTML(text)
	return service.Article{
		Heading:    lang.Pick("Cultural & Economic Insights", "Tsebo ea Moruo le Setso"),
		Subheading: lang.Pick("Blending modern poultry economics with traditional Basotho practices.", "Kopanyo ea moruo oa sejoale-joale le litloaelo tsa Basotho."),
		Title:      render.Title(html),
		Markdown:   text,
		HTML:       html,
		FactTitle:  lang.Pick("Did you know?", "Na u ne u tseba?"),
		Fact:       service.Fact(lang),
		Fallback:   fallback,
	}
}
