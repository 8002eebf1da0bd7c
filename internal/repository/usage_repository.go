package repository

import (
	"context"
	"time"

	"github.com/arotiapp/aroti-backend/internal/domain"
)

// UsageRepository tracks per-user daily free-usage counters. Counters are
// scoped to the local calendar day carried in day and reset at midnight.
type UsageRepository interface {
	GetUsedToday(ctx context.Context, userID string, contentType domain.ContentType, day time.Time) (int, error)
	IncrementToday(ctx context.Context, userID string, contentType domain.ContentType, day time.Time) (int, error)
}
