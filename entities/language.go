package entities

import "strings"

type Language string

const (
	English Language = "en"
	Sesotho Language = "st"
)

// ParseLanguage accepts "en"/"st" (and a few spellings of them); anything else is English.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "st", "sesotho", "sotho", "southern sotho":
		return Sesotho
	default:
		return English
	}
}

// Pick returns the Sesotho text when l is Sesotho, otherwise the English one.
func (l Language) Pick(en, st string) string {
	if l == Sesotho {
		return st
	}
	return en
}
