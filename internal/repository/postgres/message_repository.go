package postgres

import (
	"context"
	"susuhub/domain"

	"gorm.io/gorm"
)

// recentMessageWindow caps a chat fetch to the most recent messages.
const recentMessageWindow = 100

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		DB: db,
	}
}

func (r *MessageRepository) Create(ctx context.Context, message *domain.GroupMessage) error {
	if err := r.DB.WithContext(ctx).Create(&message).Error; err != nil {
		return err
	}

	return nil
}

// FindRecentByGroup returns at most the 100 newest messages for the group,
// in ascending timestamp order.
func (r *MessageRepository) FindRecentByGroup(ctx context.Context, groupID string) ([]domain.GroupMessage, error) {
	var messages []domain.GroupMessage

	err := r.DB.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("timestamp DESC").
		Limit(recentMessageWindow).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	// fetched newest-first; callers get oldest-first
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
