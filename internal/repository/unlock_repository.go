package repository

import (
	"context"

	"github.com/arotiapp/aroti-backend/internal/domain"
)

type UnlockRepository interface {
	Create(ctx context.Context, record *domain.UnlockRecord) error
	// GetByContent returns the newest unlock for the content item, or nil if
	// the user never unlocked it.
	GetByContent(ctx context.Context, userID, contentID string, contentType domain.ContentType) (*domain.UnlockRecord, error)
	GetByUser(ctx context.Context, userID string) ([]*domain.UnlockRecord, error)
}
