package repository

import (
	"context"
	"time"

	"github.com/arotiapp/aroti-backend/internal/domain"
)

// InsightCache stores the generated daily insight for one calendar day.
type InsightCache interface {
	Get(ctx context.Context, day string) (*domain.DailyInsight, error)
	Set(ctx context.Context, day string, insight *domain.DailyInsight, ttl time.Duration) error
}
