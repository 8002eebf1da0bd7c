package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/repository"
	"github.com/arotiapp/aroti-backend/pkg/clock"
	goredis "github.com/redis/go-redis/v9"
)

type usageRepository struct {
	client *goredis.Client
}

// NewUsageRepository stores daily free-usage counters in Redis. Keys carry
// the calendar day and expire shortly after local midnight, so counters reset
// on day rollover without a cleanup job.
func NewUsageRepository(client *goredis.Client) repository.UsageRepository {
	return &usageRepository{client: client}
}

func usageKey(userID string, contentType domain.ContentType, day time.Time) string {
	return fmt.Sprintf("usage:%s:%s:%s", contentType, userID, clock.DayKey(day))
}

func (r *usageRepository) GetUsedToday(ctx context.Context, userID string, contentType domain.ContentType, day time.Time) (int, error) {
	used, err := r.client.Get(ctx, usageKey(userID, contentType, day)).Int()
	if err != nil {
		if err == goredis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get usage counter: %w", err)
	}
	return used, nil
}

func (r *usageRepository) IncrementToday(ctx context.Context, userID string, contentType domain.ContentType, day time.Time) (int, error) {
	key := usageKey(userID, contentType, day)

	used, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment usage counter: %w", err)
	}

	// One hour of slack past midnight covers clock skew between the server
	// and the device-local day the key is scoped to.
	expiry := clock.NextMidnight(day).Add(time.Hour)
	if err := r.client.ExpireAt(ctx, key, expiry).Err(); err != nil {
		return 0, fmt.Errorf("failed to set usage counter expiry: %w", err)
	}

	return int(used), nil
}
