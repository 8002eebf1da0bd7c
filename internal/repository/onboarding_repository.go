package repository

import (
	"context"

	"github.com/arotiapp/aroti-backend/internal/domain"
)

type OnboardingRepository interface {
	Create(ctx context.Context, state *domain.OnboardingState) error
	GetByUserID(ctx context.Context, userID string) (*domain.OnboardingState, error)
	Update(ctx context.Context, state *domain.OnboardingState) error
	MarkCompleted(ctx context.Context, userID string) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}
