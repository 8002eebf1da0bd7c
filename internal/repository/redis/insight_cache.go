package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/repository"
	goredis "github.com/redis/go-redis/v9"
)

type insightCache struct {
	client *goredis.Client
}

func NewInsightCache(client *goredis.Client) repository.InsightCache {
	return &insightCache{client: client}
}

func insightKey(day string) string {
	return "daily_insight:" + day
}

func (c *insightCache) Get(ctx context.Context, day string) (*domain.DailyInsight, error) {
	data, err := c.client.Get(ctx, insightKey(day)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached insight: %w", err)
	}

	var insight domain.DailyInsight
	if err := json.Unmarshal(data, &insight); err != nil {
		return nil, fmt.Errorf("failed to decode cached insight: %w", err)
	}
	return &insight, nil
}

func (c *insightCache) Set(ctx context.Context, day string, insight *domain.DailyInsight, ttl time.Duration) error {
	data, err := json.Marshal(insight)
	if err != nil {
		return fmt.Errorf("failed to encode insight: %w", err)
	}
	if err := c.client.Set(ctx, insightKey(day), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache insight: %w", err)
	}
	return nil
}
