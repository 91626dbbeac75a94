package service

import (
	"context"

	"morafo/entities"
)

// MinArticleLen is the shortest generated article that is shown instead of the fallback.
const MinArticleLen = 50

type Article struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	Title      string `json:"title"`
	Markdown   string `json:"markdown"`
	HTML       string `json:"html"`
	FactTitle  string `json:"fact_title"`
	Fact       string `json:"fact"`
	Fallback   bool   `json:"fallback,omitempty"`
}

type InsightsService interface {
	Article(ctx context.Context, lang entities.Language) Article
}

const fallbackEN = `# Poultry Farming: The Basotho Way & Modern Economics
Poultry farming in Lesotho is transforming from a backyard hobby into a cornerstone of agricultural economic growth.
### The Economic Shift
With the rising cost of red meat, chicken has become the primary source of protein for Basotho families.
### Khotso, Pula, Nala: The Organic Advantage
Basotho have a unique advantage: our traditional knowledge. The market is shifting towards organic produce.
`

const fallbackST = `# Tlhahiso ea Likhoho: Mokhoa oa Basotho le Moruo
Temo ea likhoho Lesotho e fetoha ho tloha ho hoba mokhoa oa ho iphelisa feela ho ba khoebo e kholo ea moruo.
### Phetoho ea Moruo
Ka lebaka la ho nyoloha ha litheko tsa nama e khubelu, nama ea khoho e se e le eona mohloli o ka sehloohong oa protheine malapeng a Basotho.
### Khotso, Pula, Nala: Molemo oa Tlhaho
Basotho ba na le monyetla o ikhethang: tsebo ea rona ea setso. 'Maraka o batla lihlahisoa tsa tlhaho (organic).
`

func Fallback(lang entities.Language) string { return lang.Pick(fallbackEN, fallbackST) }

func Fact(lang entities.Language) string {
	return lang.Pick(
		`The demand for "Khoho ea Sesotho" (Free range) peaks during December and Easter. Planning your production cycle to finish in these months can double your profits compared to selling in ordinary months.`,
		"Tlhokahalo ea 'Khoho ea Sesotho' e phahama haholo ka Tšitoe le Paseka. Ho rera potoloho ea hau ho qeta likhoeling tsena ho ka eketsa phaello ea hau habeli.",
	)
}
