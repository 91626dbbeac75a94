// pkg/ai/mock_client.go

package ai

import (
	"context"

	"morafo/entities"
)

// mockClient stands in when no API key is configured. Free-text features get a
// canned notice; structured ones fail so callers show their fallback data.
type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) Reply(_ context.Context, _ []entities.ChatMessage, _ string, _ *Image, lang entities.Language) (string, error) {
	return lang.Pick(
		"MorafoAI is running offline right now, so I can't answer in detail. Please try again later.",
		"MorafoAI ha e hokahane hajoale, kahoo nke ke ka araba ka botlalo. Ke kopa u leke hamorao.",
	), nil
}

func (m *mockClient) Diagnose(_ context.Context, _ Image, _, _ string, lang entities.Language) (string, error) {
	return lang.Pick(
		"MorafoAI is running offline and cannot examine photos right now. If many birds are sick or dying, call a vet.",
		"MorafoAI ha e hokahane hajoale 'me e ke ke ea hlahloba setšoantšo. Haeba linonyana tse ngata li kula kapa li shoa, letsetsa ngaka ea liphoofolo.",
	), nil
}

func (m *mockClient) MarketPrices(context.Context) ([]entities.MarketItem, error) {
	return nil, ErrUnavailable
}

func (m *mockClient) MarketListings(context.Context) ([]entities.MarketListing, error) {
	return nil, ErrUnavailable
}

func (m *mockClient) Article(context.Context, entities.Language) (string, error) {
	return "", ErrUnavailable
}

func (m *mockClient) WeatherRisk(context.Context, *Coords, entities.Language) (*entities.WeatherRisk, error) {
	return nil, ErrUnavailable
}
