package serviceImp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"morafo/entities"
	"morafo/pkg/ai"
	"morafo/pkg/insights/service"
)

type stubWriter struct {
	out string
	err error
}

func (s stubWriter) Article(context.Context, entities.Language) (string, error) { return s.out, s.err }

func TestArticle_Fallbacks(t *testing.T) {
	cases := []struct {
		name string
		w    stubWriter
		lang entities.Language
	}{
		{"error", stubWriter{err: ai.ErrUnavailable}, entities.English},
		{"too short", stubWriter{out: "# Short\nToo brief."}, entities.Sesotho},
		{"exactly fifty", stubWriter{out: strings.Repeat("a", 50)}, entities.English},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewInsightsService(tc.w, zap.NewNop()).Article(context.Background(), tc.lang)
			assert.True(t, a.Fallback)
			assert.Equal(t, service.Fallback(tc.lang), a.Markdown)
			assert.Equal(t, service.Fact(tc.lang), a.Fact)
		})
	}
}

func TestArticle_FallbackTitles(t *testing.T) {
	en := NewInsightsService(stubWriter{err: ai.ErrBlocked}, zap.NewNop()).Article(context.Background(), entities.English)
	assert.Equal(t, "Poultry Farming: The Basotho Way & Modern Economics", en.Title)
	assert.Equal(t, "Did you know?", en.FactTitle)

	st := NewInsightsService(stubWriter{err: ai.ErrBlocked}, zap.NewNop()).Article(context.Background(), entities.Sesotho)
	assert.Equal(t, "Tlhahiso ea Likhoho: Mokhoa oa Basotho le Moruo", st.Title)
	assert.Equal(t, "Na u ne u tseba?", st.FactTitle)
}

func TestArticle_Generated(t *testing.T) {
	body := "## Eggs or Meat?\n\nLayers give steady income all year while broilers pay in six weeks."
	a := NewInsightsService(stubWriter{out: body}, zap.NewNop()).Article(context.Background(), entities.English)
	assert.False(t, a.Fallback)
	assert.Equal(t, body, a.Markdown)
	assert.Equal(t, "Eggs or Meat?", a.Title)
	assert.Contains(t, a.HTML, "<h2")
}
