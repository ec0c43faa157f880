package repository

import (
	"time"

	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"gorm.io/gorm"
)

type MessageRepository interface {
	FindConversation(userA, userB uint) (*domain.Conversation, error)
	FindConversationByKey(key string) (*domain.Conversation, error)
	CreateConversation(c *domain.Conversation) error
	ListConversationsForUser(userID uint) ([]domain.Conversation, error)

	CreateMessage(m *domain.Message) error
	ListMessages(conversationID uint, limit, offset int) ([]domain.Message, error)
	CountUnread(conversationID, readerID uint) (int64, error)
	MarkRead(conversationID, readerID uint) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) FindConversation(userA, userB uint) (*domain.Conversation, error) {
	var c domain.Conversation
	err := r.db.
		Where("(user_a = ? AND user_b = ?) OR (user_a = ? AND user_b = ?)",
			userA, userB, userB, userA).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *messageRepository) FindConversationByKey(key string) (*domain.Conversation, error) {
	var c domain.Conversation
	if err := r.db.Where("key = ?", key).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *messageRepository) CreateConversation(c *domain.Conversation) error {
	return r.db.Create(c).Error
}

func (r *messageRepository) ListConversationsForUser(userID uint) ([]domain.Conversation, error) {
	var out []domain.Conversation
	err := r.db.
		Where("user_a = ? OR user_b = ?", userID, userID).
		Order("updated_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *messageRepository) CreateMessage(m *domain.Message) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		// bump the conversation so listings sort by latest traffic
		return tx.Model(&domain.Conversation{}).
			Where("id = ?", m.ConversationID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *messageRepository) ListMessages(conversationID uint, limit, offset int) ([]domain.Message, error) {
	var out []domain.Message
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *messageRepository) CountUnread(conversationID, readerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND read_at IS NULL", conversationID, readerID).
		Count(&count).Error
	return count, err
}

func (r *messageRepository) MarkRead(conversationID, readerID uint) error {
	return r.db.Model(&domain.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND read_at IS NULL", conversationID, readerID).
		Update("read_at", time.Now()).Error
}
