package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/adapters"
	"github.com/Shuvro-Biswas/profile-app/internal/platform/cache"
)

// NewUserRepository wires the GORM user repository behind the Redis search
// cache. A nil Redis client disables caching without changing the wiring.
func NewUserRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) *cache.CachingUserRepository {
	return cache.NewCachingUserRepository(rdb, ttl, adapters.NewUserGorm(db), "users")
}
