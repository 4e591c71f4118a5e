// README: Recommendation display cache backed by Redis.
package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"waypoint/internal/types"
)

const recsKeyPrefix = "matching:session:%s:recs"

// Store caches computed recommendations per session for display reuse. The
// cache is never a source of truth: ranking is recomputed whenever the profile
// may have changed, and entries expire on their own.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(redisClient *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: redisClient, ttl: ttl}
}

func (s *Store) CacheResults(ctx context.Context, sessionID types.ID, results []MatchResult) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, recsKey(sessionID), payload, s.ttl).Err()
}

// CachedResults returns the cached recommendations for a session, and whether
// any were present.
func (s *Store) CachedResults(ctx context.Context, sessionID types.ID) ([]MatchResult, bool, error) {
	val, err := s.redis.Get(ctx, recsKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var results []MatchResult
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		return nil, false, err
	}
	return results, true, nil
}

// Invalidate drops the cached recommendations for a session. Called when the
// profile changes so stale rankings are not served.
func (s *Store) Invalidate(ctx context.Context, sessionID types.ID) error {
	return s.redis.Del(ctx, recsKey(sessionID)).Err()
}

func recsKey(sessionID types.ID) string {
	return fmt.Sprintf(recsKeyPrefix, string(sessionID))
}
