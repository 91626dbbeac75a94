package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"morafo/entities"
)

const (
	LanguageCookie = "MORAFO_LANG"
	languageKey    = "lang"
)

// Language resolves the UI language: ?lang= first (remembered in a cookie),
// then the cookie, then Accept-Language, then English.
func Language() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var lang entities.Language
			if q := c.QueryParam("lang"); q != "" {
				lang = entities.ParseLanguage(q)
				c.SetCookie(&http.Cookie{Name: LanguageCookie, Value: string(lang), Path: "/"})
			} else if ck, err := c.Cookie(LanguageCookie); err == nil {
				lang = entities.ParseLanguage(ck.Value)
			} else {
				lang = fromAcceptLanguage(c.Request().Header.Get("Accept-Language"))
			}
			c.Set(languageKey, lang)
			return next(c)
		}
	}
}

// LanguageOf returns the language set by Language, English by default.
func LanguageOf(c echo.Context) entities.Language {
	if l, ok := c.Get(languageKey).(entities.Language); ok {
		return l
	}
	return entities.English
}

func fromAcceptLanguage(h string) entities.Language {
	for _, part := range strings.Split(h, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		if tag == "st" || strings.HasPrefix(tag, "st-") {
			return entities.Sesotho
		}
		if tag == "en" || strings.HasPrefix(tag, "en-") {
			return entities.English
		}
	}
	return entities.English
}
