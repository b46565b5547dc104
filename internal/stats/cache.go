package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DefaultTTL bounds staleness if an invalidation is ever missed.
const DefaultTTL = 5 * time.Minute

// Cache stores computed aggregates in redis per user. It is best effort:
// redis failures degrade to recomputation, never to request failures. A nil
// Cache (or nil client) is a valid no-op.
type Cache struct {
	Rdb *redis.Client
	TTL time.Duration
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{Rdb: rdb, TTL: DefaultTTL}
}

func cacheKey(userID uint) string {
	return fmt.Sprintf("stats:user:%d", userID)
}

func (c *Cache) Get(ctx context.Context, userID uint) (Aggregate, bool) {
	if c == nil || c.Rdb == nil {
		return Aggregate{}, false
	}
	raw, err := c.Rdb.Get(ctx, cacheKey(userID)).Result()
	if err != nil {
		return Aggregate{}, false
	}
	var agg Aggregate
	if err := json.Unmarshal([]byte(raw), &agg); err != nil {
		return Aggregate{}, false
	}
	return agg, true
}

func (c *Cache) Set(ctx context.Context, userID uint, agg Aggregate) {
	if c == nil || c.Rdb == nil {
		return
	}
	raw, err := json.Marshal(agg)
	if err != nil {
		return
	}
	ttl := c.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	if err := c.Rdb.Set(ctx, cacheKey(userID), raw, ttl).Err(); err != nil {
		log.Debug().Err(err).Uint("user_id", userID).Msg("stats cache set failed")
	}
}

// InvalidateUser drops the cached aggregate after anything that changes the
// completed-round set or its scores.
func (c *Cache) InvalidateUser(ctx context.Context, userID uint) {
	if c == nil || c.Rdb == nil {
		return
	}
	if err := c.Rdb.Del(ctx, cacheKey(userID)).Err(); err != nil {
		log.Debug().Err(err).Uint("user_id", userID).Msg("stats cache invalidate failed")
	}
}
