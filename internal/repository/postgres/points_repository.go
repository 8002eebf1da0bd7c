package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type pointsRepository struct {
	db *sqlx.DB
}

func NewPointsRepository(db *sqlx.DB) repository.PointsRepository {
	return &pointsRepository{db: db}
}

func (r *pointsRepository) GetBalance(ctx context.Context, userID string) (*domain.PointsBalance, error) {
	var balance domain.PointsBalance
	query := `
		INSERT INTO points_ledgers (user_id, total_points, lifetime_points)
		VALUES ($1, 0, 0)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING total_points, lifetime_points
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&balance.TotalPoints, &balance.LifetimePoints)
	if err != nil {
		return nil, fmt.Errorf("failed to get points balance: %w", err)
	}
	return &balance, nil
}

func (r *pointsRepository) Earn(ctx context.Context, userID string, amount int) (*domain.PointsBalance, error) {
	if _, err := r.GetBalance(ctx, userID); err != nil {
		return nil, err
	}

	var balance domain.PointsBalance
	query := `
		UPDATE points_ledgers
		SET total_points = total_points + $1,
		    lifetime_points = lifetime_points + $1,
		    updated_at = NOW()
		WHERE user_id = $2
		RETURNING total_points, lifetime_points
	`
	err := r.db.QueryRowContext(ctx, query, amount, userID).Scan(&balance.TotalPoints, &balance.LifetimePoints)
	if err != nil {
		return nil, fmt.Errorf("failed to earn points: %w", err)
	}
	return &balance, nil
}

// Spend deducts atomically: the guarded UPDATE only fires when the balance
// covers the cost, so concurrent spends cannot drive the balance negative.
func (r *pointsRepository) Spend(ctx context.Context, userID string, cost int) (*domain.PointsBalance, bool, error) {
	if _, err := r.GetBalance(ctx, userID); err != nil {
		return nil, false, err
	}

	var balance domain.PointsBalance
	query := `
		UPDATE points_ledgers
		SET total_points = total_points - $1, updated_at = NOW()
		WHERE user_id = $2 AND total_points >= $1
		RETURNING total_points, lifetime_points
	`
	err := r.db.QueryRowContext(ctx, query, cost, userID).Scan(&balance.TotalPoints, &balance.LifetimePoints)
	if err == nil {
		return &balance, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to spend points: %w", err)
	}

	// No row updated: insufficient balance. Report the current state.
	current, getErr := r.GetBalance(ctx, userID)
	if getErr != nil {
		return nil, false, getErr
	}
	return current, false, nil
}

func (r *pointsRepository) RecordTransaction(ctx context.Context, tx *domain.PointsTransaction) error {
	query := `
		INSERT INTO points_transactions (user_id, event, points)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, tx.UserID, tx.Event, tx.Points).Scan(&tx.ID, &tx.CreatedAt)
}

func (r *pointsRepository) GetTransactions(ctx context.Context, userID string, limit, offset int) ([]*domain.PointsTransaction, error) {
	var transactions []*domain.PointsTransaction
	query := `
		SELECT * FROM points_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &transactions, query, userID, limit, offset)
	return transactions, err
}
