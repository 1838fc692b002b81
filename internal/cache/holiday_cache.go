package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "holidays:"

// HolidayCache is a Redis hot layer in front of the persisted holiday
// cache. It holds the raw upstream payload per (country, year) so a warm
// key skips the database entirely.
type HolidayCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewHolidayCache(rdb *redis.Client, ttl time.Duration) *HolidayCache {
	return &HolidayCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached payload or nil on miss.
func (c *HolidayCache) Get(ctx context.Context, countryCode string, year int) ([]byte, error) {
	b, err := c.rdb.Get(ctx, key(countryCode, year)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Set stores the payload with the configured TTL.
func (c *HolidayCache) Set(ctx context.Context, countryCode string, year int, payload []byte) error {
	return c.rdb.Set(ctx, key(countryCode, year), payload, c.ttl).Err()
}

func key(countryCode string, year int) string {
	return keyPrefix + countryCode + ":" + strconv.Itoa(year)
}
