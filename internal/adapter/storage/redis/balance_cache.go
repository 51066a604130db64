package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// BalanceCache implements ports.BalanceCache using Redis. Values are the
// decimal string form of the balance, keyed by phone number.
type BalanceCache struct {
	client *goredis.Client
	prefix string
}

// NewBalanceCache creates a new Redis-backed balance cache.
func NewBalanceCache(client *goredis.Client) *BalanceCache {
	return &BalanceCache{
		client: client,
		prefix: "balance:",
	}
}

// Get retrieves the cached balance for a phone number.
// Returns (decimal.Zero, false, nil) when the key does not exist.
func (c *BalanceCache) Get(ctx context.Context, phoneNumber string) (decimal.Decimal, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+phoneNumber).Result()
	if err != nil {
		if err == goredis.Nil {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("redis balance get: %w", err)
	}

	balance, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("parse cached balance: %w", err)
	}
	return balance, true, nil
}

// Set stores a balance with TTL.
func (c *BalanceCache) Set(ctx context.Context, phoneNumber string, balance decimal.Decimal, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+phoneNumber, balance.String(), ttl).Err()
	if err != nil {
		return fmt.Errorf("redis balance set: %w", err)
	}
	return nil
}
