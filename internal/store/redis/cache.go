package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/klemart/markd/internal/domain"
)

const (
	// DefaultListTTL bounds staleness if an invalidation is ever missed.
	DefaultListTTL = 5 * time.Minute
)

// Store caches per-owner bookmark lists. All state of record lives in SQLite;
// everything here is disposable and writes are best effort at the call sites.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a new Redis store. A zero ttl falls back to DefaultListTTL.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultListTTL
	}
	return &Store{client: client, ttl: ttl}
}

// SetList caches an owner's bookmark list.
func (s *Store) SetList(ctx context.Context, ownerID int64, bookmarks []domain.Bookmark) error {
	data, err := json.Marshal(bookmarks)
	if err != nil {
		return fmt.Errorf("failed to marshal bookmark list: %w", err)
	}
	if err := s.client.Set(ctx, ListKey(ownerID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache bookmark list: %w", err)
	}
	return nil
}

// GetList retrieves an owner's cached bookmark list.
// A cache miss returns (nil, nil).
func (s *Store) GetList(ctx context.Context, ownerID int64) ([]domain.Bookmark, error) {
	data, err := s.client.Get(ctx, ListKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // cache miss
		}
		return nil, fmt.Errorf("failed to get cached bookmark list: %w", err)
	}

	var bookmarks []domain.Bookmark
	if err := json.Unmarshal(data, &bookmarks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookmark list: %w", err)
	}
	return bookmarks, nil
}

// InvalidateList drops an owner's cached bookmark list.
// Called after every successful mutation of that owner's bookmarks.
func (s *Store) InvalidateList(ctx context.Context, ownerID int64) error {
	if err := s.client.Del(ctx, ListKey(ownerID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate bookmark list: %w", err)
	}
	return nil
}
