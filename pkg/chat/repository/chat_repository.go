package repository

import "morafo/entities"

type ChatRepository interface {
	Append(msgs ...*entities.ChatMessage) error
	List(sessionID string) ([]entities.ChatMessage, error)
}
