package repository

import (
	"context"

	"github.com/arotiapp/aroti-backend/internal/domain"
)

type PointsRepository interface {
	// GetBalance returns the user's ledger, creating a zero ledger on first use.
	GetBalance(ctx context.Context, userID string) (*domain.PointsBalance, error)
	// Earn adds amount to both totals and returns the updated ledger.
	Earn(ctx context.Context, userID string, amount int) (*domain.PointsBalance, error)
	// Spend subtracts cost from the spendable balance only if it covers the
	// cost. The bool reports whether the deduction happened; either way the
	// returned ledger reflects the current state.
	Spend(ctx context.Context, userID string, cost int) (*domain.PointsBalance, bool, error)
	RecordTransaction(ctx context.Context, tx *domain.PointsTransaction) error
	GetTransactions(ctx context.Context, userID string, limit, offset int) ([]*domain.PointsTransaction, error)
}
