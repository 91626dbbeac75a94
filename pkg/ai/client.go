// pkg/ai/client.go

package ai

import (
	"context"
	"errors"

	"morafo/entities"
)

var (
	ErrUnavailable = errors.New("inference backend unavailable")
	ErrBlocked     = errors.New("inference backend blocked the request")
	ErrEmpty       = errors.New("inference backend returned no text")
	ErrMalformed   = errors.New("inference backend returned malformed data")
)

// Coords is an optional one-shot location reading from the client device.
type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Known reports whether both coordinates are set.
func (c *Coords) Known() bool { return c != nil && c.Lat != 0 && c.Lng != 0 }

// Client is the only place that talks to the generative-AI backend.
// Every method issues exactly one request and never retries.
type Client interface {
	Reply(ctx context.Context, history []entities.ChatMessage, text string, img *Image, lang entities.Language) (string, error)
	Diagnose(ctx context.Context, img Image, notes, animal string, lang entities.Language) (string, error)
	MarketPrices(ctx context.Context) ([]entities.MarketItem, error)
	MarketListings(ctx context.Context) ([]entities.MarketListing, error)
	Article(ctx context.Context, lang entities.Language) (string, error)
	WeatherRisk(ctx context.Context, at *Coords, lang entities.Language) (*entities.WeatherRisk, error)
}
