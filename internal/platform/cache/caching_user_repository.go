// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain/entity"
)

// UserRepository is the full persistence surface the service consumes.
// The decorator forwards every call and caches only the Search query path;
// identity lookups used by authentication always hit the store.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	Search(ctx context.Context, query string, offset, limit int) ([]entity.User, int64, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id uint) error
}

// searchResult is the cached shape of one Search call.
type searchResult struct {
	Users []entity.User `json:"users"`
	Total int64         `json:"total"`
}

// CachingUserRepository decorates a UserRepository with Redis caching of the
// directory search path. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository.
type CachingUserRepository struct {
	inner     UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a user and invalidates the search cache.
func (c *CachingUserRepository) Create(ctx context.Context, u *entity.User) error {
	if err := c.inner.Create(ctx, u); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// FindByEmail always hits the underlying store: credential checks must see
// the current row.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.inner.FindByEmail(ctx, email)
}

// FindByID always hits the underlying store: token resolution must observe
// deleted accounts immediately.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return c.inner.FindByID(ctx, id)
}

// Search retrieves a directory page, checking the cache first then falling
// back to the database.
func (c *CachingUserRepository) Search(ctx context.Context, query string, offset, limit int) ([]entity.User, int64, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Search(ctx, query, offset, limit)
	}

	key := c.cacheKey(query, offset, limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out searchResult
		if err := json.Unmarshal(b, &out); err == nil {
			return out.Users, out.Total, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	users, total, err := c.inner.Search(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(searchResult{Users: users, Total: total}); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return users, total, nil
}

// Update persists a user and invalidates the search cache.
func (c *CachingUserRepository) Update(ctx context.Context, u *entity.User) error {
	if err := c.inner.Update(ctx, u); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes a user and invalidates the search cache.
func (c *CachingUserRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// invalidate drops every cached search page. Best effort: a failed cache
// deletion never fails the write that triggered it.
func (c *CachingUserRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":search:*")
}

// cacheKey generates a cache key for a specific search query.
func (c *CachingUserRepository) cacheKey(query string, offset, limit int) string {
	return fmt.Sprintf("%s:search:%s:%d:%d",
		c.namespace,
		safe(query),
		offset,
		limit,
	)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingUserRepository) deleteByPattern(ctx context.Context, pattern string) error {
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
