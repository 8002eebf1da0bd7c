package repository

import (
	"context"

	"github.com/arotiapp/aroti-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePremium(ctx context.Context, id string, isPremium bool) error
}
