package dto

import "time"

type ConversationCreateRequest struct {
	RecipientID uint `json:"recipient_id" validate:"required"`
}

type ConversationResponse struct {
	Key           string     `json:"key"`
	PartnerID     uint       `json:"partner_id"`
	PartnerName   string     `json:"partner_name"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	UnreadCount   int64      `json:"unread_count"`
}

type MessageSendRequest struct {
	Body string `json:"body" validate:"required"`
}

type MessageResponse struct {
	ID       uint       `json:"id"`
	SenderID uint       `json:"sender_id"`
	Body     string     `json:"body"`
	SentAt   time.Time  `json:"sent_at"`
	ReadAt   *time.Time `json:"read_at,omitempty"`
}
