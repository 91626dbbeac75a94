// Package shell holds the view and language selection that every panel reads.
package shell

import (
	"strings"

	"github.com/labstack/echo/v4"

	"morafo/entities"
	"morafo/pkg/middleware"
)

type ViewState string

const (
	Home      ViewState = "HOME"
	Chat      ViewState = "CHAT"
	Diagnosis ViewState = "DIAGNOSIS"
	Market    ViewState = "MARKET"
	Feed      ViewState = "FEED"
	Insights  ViewState = "INSIGHTS"
)

var Views = []ViewState{Home, Chat, Diagnosis, Market, Feed, Insights}

// ParseView matches a view name case-insensitively.
func ParseView(s string) (ViewState, bool) {
	v := ViewState(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Views {
		if v == known {
			return v, true
		}
	}
	return "", false
}

// Context is handed to every panel handler instead of shared globals.
type Context struct {
	Language entities.Language
	View     ViewState
	Session  string
}

// ContextOf builds the panel context from the request.
func ContextOf(c echo.Context, view ViewState) Context {
	return Context{
		Language: middleware.LanguageOf(c),
		View:     view,
		Session:  middleware.SessionID(c),
	}
}

type NavEntry struct {
	View        ViewState `json:"view"`
	Label       string    `json:"label"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
}

type HomeScreen struct {
	Language entities.Language `json:"language"`
	Greeting string            `json:"greeting"`
	Intro    string            `json:"intro"`
	AskLabel string            `json:"ask_label"`
	Nav      []NavEntry        `json:"nav"`
	Cards    []NavEntry        `json:"cards"`
}

func HomeFor(l entities.Language) HomeScreen {
	return HomeScreen{
		Language: l,
		Greeting: l.Pick("Khotso! I am MorafoAI", "Khotso! Ke 'na MorafoAI"),
		Intro: l.Pick(
			"Your dedicated poultry & rabbit farming assistant. Get expert advice on Broilers, Layers, and Free-range chickens in Lesotho.",
			"Mothusi oa hau oa temo ea likhoho le mebutla. Fumana keletso ea litsebi ka Likhoho tsa Broiler, tsa Mahe, le tsa Sesotho.",
		),
		AskLabel: l.Pick("Ask about Chickens", "Botsa ka Likhoho"),
		Nav: []NavEntry{
			{View: Home, Label: l.Pick("Dashboard", "Lekhotla (Dashboard)")},
			{View: Chat, Label: l.Pick("Chat (Moqoqo)", "Moqoqo (Chat)")},
			{View: Diagnosis, Label: l.Pick("Poultry Doctor", "Ngaka ea Likhoho")},
			{View: Market, Label: l.Pick("Marketplace", "Maraka")},
			{View: Feed, Label: l.Pick("Find Feed (Lijo)", "Batla Lijo")},
			{View: Insights, Label: l.Pick("Cultural Insights", "Tsebo ea Moruo")},
		},
		Cards: []NavEntry{
			{
				View:        Diagnosis,
				Title:       l.Pick("Poultry Doctor", "Ngaka ea Likhoho"),
				Description: l.Pick("Diagnose Newcastle, Coccidiosis, and other diseases.", "Hlahloba mafu a kang Newcastle le Coccidiosis."),
			},
			{
				View:        Feed,
				Title:       l.Pick("Find Feed (Lijo)", "Batla Lijo"),
				Description: l.Pick("Locate the nearest poultry feed suppliers in your district.", "Fumana mabenkele a lijo tsa likhoho seterekeng sa hau."),
			},
			{
				View:        Market,
				Title:       l.Pick("Chicken Market", "Maraka oa Likhoho"),
				Description: l.Pick("Sell your broilers or check egg prices.", "Rekisa likhoho kapa u hlahlobe litheko tsa mahe."),
			},
			{
				View:        Insights,
				Title:       l.Pick("Cultural Insights", "Tsebo ea Moruo"),
				Description: l.Pick("Economic analysis & Basotho farming practices.", "Tlhahlobo ea moruo le mekhoa ea temo ea Basotho."),
			},
		},
	}
}

// Label returns the navigation label of v in l.
func Label(v ViewState, l entities.Language) string {
	for _, n := range HomeFor(l).Nav {
		if n.View == v {
			return n.Label
		}
	}
	return string(v)
}
