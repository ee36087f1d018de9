package redisstore

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"traillog/backend/libs/activity"
)

const versionKey = "activities:cache:version"

// Store caches activity list query results. The activities table only changes
// when the importer runs, so entries live until the TTL expires or the
// importer bumps the version key, which orphans every key built against the
// old version.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore returns redis-backed query cache.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) key(ctx context.Context, queryKey string) string {
	// A missing or unreadable version key counts as version 0.
	version, _ := s.client.Get(ctx, versionKey).Int64()
	sum := sha256.Sum256([]byte(queryKey))
	return fmt.Sprintf("activities:list:v%d:%x", version, sum[:16])
}

// Get returns the cached result for the query, if any.
func (s *Store) Get(ctx context.Context, queryKey string) ([]activity.Activity, bool) {
	result, err := s.client.Get(ctx, s.key(ctx, queryKey)).Result()
	if err != nil {
		return nil, false
	}
	var activities []activity.Activity
	if err := json.Unmarshal([]byte(result), &activities); err != nil {
		return nil, false
	}
	return activities, true
}

// Set caches the result for the query.
func (s *Store) Set(ctx context.Context, queryKey string, activities []activity.Activity) error {
	data, err := json.Marshal(activities)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(ctx, queryKey), data, s.ttl).Err()
}

// Invalidate bumps the version so every cached query is orphaned at once.
func (s *Store) Invalidate(ctx context.Context) error {
	return s.client.Incr(ctx, versionKey).Err()
}
