package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"susuhub/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

const recentWindowTTL = 30 * time.Second

// MessageCache holds the recent chat window per group. Chat is poll-based,
// so a short TTL absorbs most of the read load.
type MessageCache struct {
	client *redis.Client
}

func NewMessageCache(client *redis.Client) *MessageCache {
	return &MessageCache{
		client: client,
	}
}

func messageKey(groupID string) string {
	return fmt.Sprintf("group:messages:%s", groupID)
}

// GetRecent returns the cached window, or nil on a miss.
func (r *MessageCache) GetRecent(ctx context.Context, groupID string) ([]domain.GroupMessage, error) {
	val, err := r.client.Get(ctx, messageKey(groupID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get messages from Redis: %w", err)
	}

	var messages []domain.GroupMessage
	if err := json.Unmarshal([]byte(val), &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached messages: %w", err)
	}

	return messages, nil
}

func (r *MessageCache) SetRecent(ctx context.Context, groupID string, messages []domain.GroupMessage) error {
	jsonData, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}

	if err := r.client.Set(ctx, messageKey(groupID), jsonData, recentWindowTTL).Err(); err != nil {
		return fmt.Errorf("failed to store messages in Redis: %w", err)
	}

	return nil
}

func (r *MessageCache) Invalidate(ctx context.Context, groupID string) error {
	if err := r.client.Del(ctx, messageKey(groupID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate message cache: %w", err)
	}

	return nil
}
