package repositoryImp

import (
	"gorm.io/gorm"

	"morafo/entities"
	"morafo/pkg/chat/repository"
)

type chatRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChatRepository { return &chatRepo{db} }

func (r *chatRepo) Append(msgs ...*entities.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	return r.db.Create(msgs).Error
}

// List returns the session's messages in insertion order.
func (r *chatRepo) List(sessionID string) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	if err := r.db.Where("session_id = ?", sessionID).Order("row_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
