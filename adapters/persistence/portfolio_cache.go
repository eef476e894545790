package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/foliohub/internal/application/usecase/portfolio"
)

// portfolioCacheTTL bounds staleness when an eviction event is lost.
const portfolioCacheTTL = 5 * time.Minute

const portfolioKeyPrefix = "portfolio:"

type redisPortfolioCache struct {
	rdb *redis.Client
}

func NewRedisPortfolioCache(rdb *redis.Client) portfolio.Cache {
	return &redisPortfolioCache{rdb: rdb}
}

func PortfolioCacheKey(username string) string {
	return portfolioKeyPrefix + username
}

func (c *redisPortfolioCache) Get(ctx context.Context, username string) (*portfolio.Portfolio, error) {
	raw, err := c.rdb.Get(ctx, PortfolioCacheKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("portfolio cache get: %w", err)
	}

	var p portfolio.Portfolio
	if err := json.Unmarshal(raw, &p); err != nil {
		// treat a corrupted entry as a miss
		return nil, nil
	}
	return &p, nil
}

func (c *redisPortfolioCache) Set(ctx context.Context, username string, p *portfolio.Portfolio) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("portfolio cache marshal: %w", err)
	}
	return c.rdb.Set(ctx, PortfolioCacheKey(username), raw, portfolioCacheTTL).Err()
}

func (c *redisPortfolioCache) Delete(ctx context.Context, username string) error {
	return c.rdb.Del(ctx, PortfolioCacheKey(username)).Err()
}
