package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"morafo/entities"
)

func TestParseView(t *testing.T) {
	v, ok := ParseView("market")
	assert.True(t, ok)
	assert.Equal(t, Market, v)

	_, ok = ParseView("settings")
	assert.False(t, ok)
}

func TestHomeFor(t *testing.T) {
	st := HomeFor(entities.Sesotho)
	assert.Equal(t, "Khotso! Ke 'na MorafoAI", st.Greeting)
	assert.Len(t, st.Nav, len(Views))

	en := HomeFor(entities.English)
	assert.Equal(t, "Khotso! I am MorafoAI", en.Greeting)
	assert.Equal(t, "Marketplace", Label(Market, entities.English))
	assert.Equal(t, "Batla Lijo", Label(Feed, entities.Sesotho))
}
