package entities

import "time"

const (
	RoleUser  = "user"
	RoleModel = "model"
)

type ChatMessage struct {
	RowID     uint      `gorm:"primaryKey" json:"-"`
	SessionID string    `gorm:"index" json:"-"`
	ID        string    `gorm:"index" json:"id"`
	Role      string    `json:"role"` // user|model
	Text      string    `json:"text"`
	Image     string    `json:"image,omitempty"` // data URL
	IsError   bool      `json:"is_error,omitempty"`
	Timestamp time.Time `json:"timestamp"`

	HTML string `gorm:"-" json:"html,omitempty"`
}
