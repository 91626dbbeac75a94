package service

import (
	"strings"

	"morafo/entities"
)

// Supplier adds the dial link to a directory entry.
type Supplier struct {
	entities.FeedSupplier
	Tel string `json:"tel,omitempty"`
}

type Result struct {
	District  string     `json:"district"`
	Suppliers []Supplier `json:"suppliers"`
	Hint      string     `json:"hint,omitempty"` // set when nothing matched
}

type FeedService interface {
	Districts() []string
	// Suppliers filters by exact district; "" means the default district.
	Suppliers(district string, lang entities.Language) Result
}

// TelLink builds a tel: URL with spaces removed.
func TelLink(phone string) string {
	p := strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	if p == "" {
		return ""
	}
	return "tel:" + p
}

func NoSuppliersHint(district string, lang entities.Language) string {
	return lang.Pick(
		"No verified suppliers listed in "+district+". Try searching in a neighboring district.",
		"Ha ho bafani ba ngolisitsoeng "+district+". Leka setereke se haufi.",
	)
}
