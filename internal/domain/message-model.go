package domain

import (
	"time"

	"gorm.io/gorm"
)

type Conversation struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"type:varchar(36);uniqueIndex;not null" json:"key"` // uuid, stable external handle
	UserA uint   `gorm:"not null;index" json:"user_a"`
	UserB uint   `gorm:"not null;index" json:"user_b"`
	gorm.Model
}

type Message struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ConversationID uint       `gorm:"not null;index" json:"conversation_id"`
	SenderID       uint       `gorm:"not null;index" json:"sender_id"`
	Body           string     `gorm:"type:text;not null" json:"body"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	gorm.Model
}
