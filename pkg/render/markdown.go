// Package render turns model-written Markdown into HTML that is safe to embed.
package render

import (
	"bytes"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md     = goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy = bluemonday.UGCPolicy()
)

// HTML renders Markdown and strips anything the UGC policy does not allow.
// Rendering errors degrade to the escaped source text.
func HTML(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>"
	}
	return string(policy.SanitizeBytes(buf.Bytes()))
}

// Title returns the text of the first heading in rendered HTML, or "".
func Title(rendered string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rendered))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("h1,h2,h3").First().Text())
}
