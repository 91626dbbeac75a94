package service

import (
	"context"
	"errors"

	"morafo/entities"
)

// GreetingID marks the seeded greeting; it is never replayed to the model.
const GreetingID = "init"

var ErrBadImage = errors.New("image is not a valid data url")

type SendInput struct {
	Text  string `json:"text"`
	Image string `json:"image"` // optional data URL
}

type ChatService interface {
	// History returns the session's conversation, seeding the greeting when empty.
	History(sessionID string, lang entities.Language) ([]entities.ChatMessage, error)
	// Send appends the user message and the reply. Empty text without an image
	// is a no-op and returns nil messages.
	Send(ctx context.Context, sessionID string, lang entities.Language, in SendInput) ([]entities.ChatMessage, error)
}

func Greeting(lang entities.Language) string {
	return lang.Pick(
		"Khotso Ntate/M'e! I am MorafoAI. How can I help you with your farm today? We can talk about livestock health, organic feed, or market prices.",
		"Khotso Ntate/M'e! Ke 'na MorafoAI. Nka u thusa joang ka polasi ea hau kajeno? Re ka bua ka bophelo ba likhoho, lijo tsa tlhaho, kapa litheko tsa 'maraka.",
	)
}

func ConnectionError(lang entities.Language) string {
	return lang.Pick(
		"Sorry, I'm having trouble connecting. Please try again.",
		"Tšoarelo, ke na le bothata ba khokahano. Ke kopa u leke hape.",
	)
}

func NotUnderstood(lang entities.Language) string {
	return lang.Pick(
		"I didn't quite understand that. Could you please rephrase?",
		"Ke kopa tšoarelo, ha kea utloisisa. Ke kopa o phete hape.",
	)
}
