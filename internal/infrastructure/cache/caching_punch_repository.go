// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"punchclock_backend/internal/feature/punch/domain/entity"
	"punchclock_backend/internal/feature/punch/usecase"
)

// CachingPunchRepository decorates a PunchRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Range reads are served from cache;
// punch writes invalidate the affected user's entries.
type CachingPunchRepository struct {
	inner     usecase.PunchRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingPunchRepository decorates a PunchRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "punch".
func NewCachingPunchRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PunchRepository, namespace string) *CachingPunchRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "punch"
	}
	return &CachingPunchRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a punch record and invalidates the user's cached range queries.
func (c *CachingPunchRepository) Create(ctx context.Context, rec *entity.PunchRecord) error {
	// First insert into the underlying repository (MySQL)
	if err := c.inner.Create(ctx, rec); err != nil {
		return err
	}
	// Exit early if Redis is not configured
	if c.rdb == nil {
		return nil
	}

	// Invalidate cached range queries for this user and punch type
	prefix := c.cacheKeyPrefix(rec.UserID, rec.PunchType)
	_ = c.deleteByPattern(ctx, prefix+"*") // Best effort: don't fail if cache deletion fails
	return nil
}

// FindInRange retrieves punch records, checking cache first then falling back to the database.
func (c *CachingPunchRepository) FindInRange(ctx context.Context, userID uint, punchType string, from, to time.Time, limit int) ([]entity.PunchRecord, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindInRange(ctx, userID, punchType, from, to, limit)
	}

	key := c.cacheKey(userID, punchType, from, to, limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.PunchRecord
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindInRange(ctx, userID, punchType, from, to, limit)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific range query.
func (c *CachingPunchRepository) cacheKey(userID uint, punchType string, from, to time.Time, limit int) string {
	return fmt.Sprintf("%s:%d:%s:%s:%s:%d",
		c.namespace,
		userID,
		safe(punchType),
		from.Format("20060102T150405"),
		to.Format("20060102T150405"),
		limit,
	)
}

// cacheKeyPrefix generates a prefix for invalidating related cache entries.
func (c *CachingPunchRepository) cacheKeyPrefix(userID uint, punchType string) string {
	return fmt.Sprintf("%s:%d:%s:",
		c.namespace,
		userID,
		safe(punchType),
	)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingPunchRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
