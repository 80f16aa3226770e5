package message

import (
	"context"
	"fmt"
	"susuhub/domain"
	"susuhub/pkg/logger"
	"time"

	"github.com/google/uuid"
)

// MessageRepository contract interface
type MessageRepository interface {
	Create(ctx context.Context, message *domain.GroupMessage) error
	FindRecentByGroup(ctx context.Context, groupID string) ([]domain.GroupMessage, error)
}

// RecentCache contract interface; a nil cache disables caching.
type RecentCache interface {
	GetRecent(ctx context.Context, groupID string) ([]domain.GroupMessage, error)
	SetRecent(ctx context.Context, groupID string, messages []domain.GroupMessage) error
	Invalidate(ctx context.Context, groupID string) error
}

type MessageService struct {
	messageRepo MessageRepository
	cache       RecentCache
}

func NewMessageService(messageRepo MessageRepository, cache RecentCache) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		cache:       cache,
	}
}

// Append stores a chat message. Messages are append-only; there is no edit
// or delete.
func (s *MessageService) Append(ctx context.Context, message *domain.GroupMessage) error {
	if message.GroupID == "" {
		return fmt.Errorf("%w: missing group id", domain.ErrValidation)
	}
	if message.SenderID == "" {
		return fmt.Errorf("%w: missing sender id", domain.ErrValidation)
	}
	if message.Text == "" {
		return fmt.Errorf("%w: missing message text", domain.ErrValidation)
	}

	if message.Type == "" {
		message.Type = domain.MessageTypeText
	}
	if !domain.ValidMessageTypes[message.Type] {
		return fmt.Errorf("%w: invalid message type %q", domain.ErrValidation, message.Type)
	}

	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.Timestamp == 0 {
		message.Timestamp = time.Now().UnixMilli()
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		logger.Error("Failed to append group message", err)
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, message.GroupID); err != nil {
			logger.Warn("Failed to invalidate message cache", err)
		}
	}

	return nil
}

// GetRecent returns the group's most recent window, oldest first. Cache
// failures fall back to the store; they never fail the request.
func (s *MessageService) GetRecent(ctx context.Context, groupID string) ([]domain.GroupMessage, error) {
	if groupID == "" {
		return nil, fmt.Errorf("%w: missing group id", domain.ErrValidation)
	}

	if s.cache != nil {
		cached, err := s.cache.GetRecent(ctx, groupID)
		if err != nil {
			logger.Warn("Message cache read failed", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	messages, err := s.messageRepo.FindRecentByGroup(ctx, groupID)
	if err != nil {
		logger.Error("Failed to get group messages", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRecent(ctx, groupID, messages); err != nil {
			logger.Warn("Message cache write failed", err)
		}
	}

	return messages, nil
}
