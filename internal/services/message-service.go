package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/dto"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/interfaces"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/repository"
	"gorm.io/gorm"
)

type MessageService interface {
	OpenConversation(userID, recipientID uint) (*dto.ConversationResponse, error)
	ListConversations(userID uint) ([]dto.ConversationResponse, error)
	SendMessage(userID uint, conversationKey string, input dto.MessageSendRequest) (*dto.MessageResponse, error)
	ListMessages(userID uint, conversationKey string, limit, offset int) ([]dto.MessageResponse, error)
}

type messageService struct {
	repo     repository.MessageRepository
	userRepo repository.UserRepository
	producer interfaces.ProducerHandler
}

func NewMessageService(
	repo repository.MessageRepository,
	userRepo repository.UserRepository,
	producer interfaces.ProducerHandler,
) MessageService {
	return &messageService{
		repo:     repo,
		userRepo: userRepo,
		producer: producer,
	}
}

// OpenConversation reuses the existing thread between two users when there is
// one; opening is idempotent.
func (s *messageService) OpenConversation(userID, recipientID uint) (*dto.ConversationResponse, error) {
	if userID == 0 || recipientID == 0 {
		return nil, domain.ValidationErrorf("recipient_id is required")
	}
	if userID == recipientID {
		return nil, domain.ValidationErrorf("cannot open a conversation with yourself")
	}

	recipient, err := s.userRepo.FindUserById(recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ValidationErrorf("user %d does not exist", recipientID)
		}
		return nil, domain.StorageError(err)
	}

	conv, err := s.repo.FindConversation(userID, recipientID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.StorageError(err)
		}
		conv = &domain.Conversation{
			Key:   uuid.NewString(),
			UserA: userID,
			UserB: recipientID,
		}
		if err := s.repo.CreateConversation(conv); err != nil {
			return nil, domain.StorageError(err)
		}
	}

	return &dto.ConversationResponse{
		Key:         conv.Key,
		PartnerID:   recipient.ID,
		PartnerName: recipient.FullName(),
	}, nil
}

func (s *messageService) ListConversations(userID uint) ([]dto.ConversationResponse, error) {
	if userID == 0 {
		return nil, domain.ValidationErrorf("user id is required")
	}

	convs, err := s.repo.ListConversationsForUser(userID)
	if err != nil {
		return nil, domain.StorageError(err)
	}

	out := make([]dto.ConversationResponse, 0, len(convs))
	for _, c := range convs {
		partnerID := c.UserA
		if partnerID == userID {
			partnerID = c.UserB
		}

		name := ""
		if partner, err := s.userRepo.FindUserById(partnerID); err == nil {
			name = partner.FullName()
		}

		unread, err := s.repo.CountUnread(c.ID, userID)
		if err != nil {
			return nil, domain.StorageError(err)
		}

		last := c.UpdatedAt
		out = append(out, dto.ConversationResponse{
			Key:           c.Key,
			PartnerID:     partnerID,
			PartnerName:   name,
			LastMessageAt: &last,
			UnreadCount:   unread,
		})
	}
	return out, nil
}

func (s *messageService) SendMessage(userID uint, conversationKey string, input dto.MessageSendRequest) (*dto.MessageResponse, error) {
	body := strings.TrimSpace(input.Body)
	if userID == 0 || body == "" {
		return nil, domain.ValidationErrorf("message body is required")
	}

	conv, err := s.requireParticipant(userID, conversationKey)
	if err != nil {
		return nil, err
	}

	m := &domain.Message{
		ConversationID: conv.ID,
		SenderID:       userID,
		Body:           body,
	}
	if err := s.repo.CreateMessage(m); err != nil {
		return nil, domain.StorageError(err)
	}

	if s.producer != nil {
		payload := fmt.Sprintf(
			`{"conversation":"%s","sender_id":%d,"message_id":%d}`,
			conv.Key, userID, m.ID,
		)
		_ = s.producer.PublishMessage([]byte("message.sent"), []byte(payload))
	}

	return &dto.MessageResponse{
		ID:       m.ID,
		SenderID: m.SenderID,
		Body:     m.Body,
		SentAt:   m.CreatedAt,
	}, nil
}

func (s *messageService) ListMessages(userID uint, conversationKey string, limit, offset int) ([]dto.MessageResponse, error) {
	conv, err := s.requireParticipant(userID, conversationKey)
	if err != nil {
		return nil, err
	}

	msgs, err := s.repo.ListMessages(conv.ID, normalizeLimit(limit), offset)
	if err != nil {
		return nil, domain.StorageError(err)
	}

	// reading the thread clears the unread counter
	if err := s.repo.MarkRead(conv.ID, userID); err != nil {
		return nil, domain.StorageError(err)
	}

	out := make([]dto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, dto.MessageResponse{
			ID:       m.ID,
			SenderID: m.SenderID,
			Body:     m.Body,
			SentAt:   m.CreatedAt,
			ReadAt:   m.ReadAt,
		})
	}
	return out, nil
}

func (s *messageService) requireParticipant(userID uint, conversationKey string) (*domain.Conversation, error) {
	key := strings.TrimSpace(conversationKey)
	if key == "" {
		return nil, domain.ValidationErrorf("conversation key is required")
	}

	conv, err := s.repo.FindConversationByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundErrorf("conversation %s does not exist", key)
		}
		return nil, domain.StorageError(err)
	}
	if conv.UserA != userID && conv.UserB != userID {
		return nil, domain.ErrForbidden
	}
	return conv, nil
}
