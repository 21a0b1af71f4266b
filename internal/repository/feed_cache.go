package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"raeya/familyboard/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	feedKey = "messages:all"
	feedTTL = 10 * time.Minute
)

// FeedCacheRepository holds a snapshot of the full message collection.
// Writers invalidate it after every successful write; readers treat any
// cache failure as a miss and fall back to the database.
type FeedCacheRepository interface {
	GetMessages(ctx context.Context) ([]model.Message, bool, error)
	SetMessages(ctx context.Context, messages []model.Message) error
	Invalidate(ctx context.Context) error
}

type feedCacheRepository struct {
	rdb *redis.Client
}

func NewFeedCacheRepository(rdb *redis.Client) FeedCacheRepository {
	return &feedCacheRepository{rdb: rdb}
}

// GetMessages returns the cached snapshot. The second result reports whether
// the cache held one.
func (r *feedCacheRepository) GetMessages(ctx context.Context) ([]model.Message, bool, error) {
	data, err := r.rdb.Get(ctx, feedKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read feed cache: %w", err)
	}

	var messages []model.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		// A corrupt snapshot counts as a miss.
		return nil, false, nil
	}

	return messages, true, nil
}

func (r *feedCacheRepository) SetMessages(ctx context.Context, messages []model.Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal feed snapshot: %w", err)
	}

	if err := r.rdb.Set(ctx, feedKey, data, feedTTL).Err(); err != nil {
		return fmt.Errorf("failed to write feed cache: %w", err)
	}

	return nil
}

// Invalidate drops the snapshot. Called after every successful write so the
// next read recomputes from the database.
func (r *feedCacheRepository) Invalidate(ctx context.Context) error {
	if err := r.rdb.Del(ctx, feedKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate feed cache: %w", err)
	}
	return nil
}
