package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morafo/entities"
)

func TestShapeDecode_Prices(t *testing.T) {
	raw := `[{"name":"Egg Tray (Large - 30s)","price":75,"unit":"tray","trend":"up","prediction":"Winter demand"}]`

	var out []entities.MarketItem
	require.NoError(t, PricesShape.Decode(raw, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Egg Tray (Large - 30s)", out[0].Name)
	assert.Equal(t, 75.0, out[0].Price)
	assert.Equal(t, entities.TrendUp, out[0].Trend)
}

func TestShapeDecode_RejectsOutOfEnum(t *testing.T) {
	raw := `[{"name":"Broiler","price":90,"unit":"each","trend":"sideways"}]`

	var out []entities.MarketItem
	err := PricesShape.Decode(raw, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.Empty(t, out, "nothing is partially consumed")
}

func TestShapeDecode_RejectsMissingRequired(t *testing.T) {
	var out entities.WeatherRisk
	err := WeatherShape.Decode(`{"type":"Serame","advice":"Cover the coop"}`, &out)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestShapeDecode_RejectsGarbage(t *testing.T) {
	var out []entities.MarketListing
	assert.ErrorIs(t, ListingsShape.Decode("not json at all", &out), ErrMalformed)
}

func TestShapeDecode_StripsCodeFence(t *testing.T) {
	raw := "```json\n{\"type\":\"Mocheso\",\"level\":\"High\",\"advice\":\"Shade and water\",\"locationName\":\"Mafeteng\"}\n```"

	var out weatherReply
	require.NoError(t, WeatherShape.Decode(raw, &out))
	risk := out.risk()
	assert.Equal(t, entities.HazardHeat, risk.Type)
	assert.Equal(t, "Mafeteng", risk.LocationName)
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "market-listings/v1", ListingsShape.String())
}
