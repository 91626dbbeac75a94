package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morafo/entities"
)

func TestMock(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	reply, err := m.Reply(ctx, nil, "hello", nil, entities.Sesotho)
	require.NoError(t, err)
	assert.Contains(t, reply, "MorafoAI ha e hokahane")

	diag, err := m.Diagnose(ctx, Image{}, "", "Rabbit", entities.English)
	require.NoError(t, err)
	assert.Contains(t, diag, "offline")

	_, err = m.MarketPrices(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = m.MarketListings(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = m.Article(ctx, entities.English)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = m.WeatherRisk(ctx, nil, entities.English)
	assert.ErrorIs(t, err, ErrUnavailable)
}
