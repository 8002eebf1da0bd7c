package points

import (
	"context"
	"fmt"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/repository"
)

type PointsUseCase struct {
	pointsRepo repository.PointsRepository
}

func NewPointsUseCase(pointsRepo repository.PointsRepository) *PointsUseCase {
	return &PointsUseCase{pointsRepo: pointsRepo}
}

// EarnRequest represents a points earning event
type EarnRequest struct {
	Event  string `json:"event" binding:"required,max=100"`
	Amount int    `json:"amount" binding:"required"`
}

// SpendRequest represents a points spending event
type SpendRequest struct {
	Event string `json:"event" binding:"required,max=100"`
	Cost  int    `json:"cost" binding:"required"`
}

// Balance returns the user's ledger
func (uc *PointsUseCase) Balance(ctx context.Context, userID string) (*domain.PointsBalance, error) {
	return uc.pointsRepo.GetBalance(ctx, userID)
}

// Earn credits both the spendable balance and the lifetime total. A
// non-positive amount is a caller bug, rejected with ErrNonPositiveAmount.
func (uc *PointsUseCase) Earn(ctx context.Context, userID string, req *EarnRequest) (*domain.EarnResult, error) {
	if req.Amount <= 0 {
		return nil, domain.ErrNonPositiveAmount
	}

	balance, err := uc.pointsRepo.Earn(ctx, userID, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to earn points: %w", err)
	}

	uc.record(ctx, userID, req.Event, req.Amount)

	return &domain.EarnResult{
		Success:           true,
		NewBalance:        balance.TotalPoints,
		NewLifetimePoints: balance.LifetimePoints,
		Message:           fmt.Sprintf("Earned %d points!", req.Amount),
	}, nil
}

// Spend debits the spendable balance all-or-nothing. Insufficient balance is
// a normal outcome reported in the result, never an error; lifetime points
// are untouched either way.
func (uc *PointsUseCase) Spend(ctx context.Context, userID string, req *SpendRequest) (*domain.SpendResult, error) {
	if req.Cost <= 0 {
		return nil, domain.ErrNonPositiveAmount
	}

	balance, ok, err := uc.pointsRepo.Spend(ctx, userID, req.Cost)
	if err != nil {
		return nil, fmt.Errorf("failed to spend points: %w", err)
	}
	if !ok {
		return &domain.SpendResult{
			Success:    false,
			NewBalance: balance.TotalPoints,
			Message:    fmt.Sprintf("Not enough points. You need %d more points.", req.Cost-balance.TotalPoints),
		}, nil
	}

	uc.record(ctx, userID, req.Event, -req.Cost)

	return &domain.SpendResult{
		Success:    true,
		NewBalance: balance.TotalPoints,
		Message:    fmt.Sprintf("Spent %d points", req.Cost),
	}, nil
}

// LevelInfo computes the user's level from lifetime points
func (uc *PointsUseCase) LevelInfo(ctx context.Context, userID string) (*domain.LevelInfo, error) {
	balance, err := uc.pointsRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := domain.LevelInfoFor(balance.LifetimePoints)
	return &info, nil
}

// Transactions returns the user's points history, newest first
func (uc *PointsUseCase) Transactions(ctx context.Context, userID string, limit, offset int) ([]*domain.PointsTransaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.pointsRepo.GetTransactions(ctx, userID, limit, offset)
}

// record appends a history row. History is best-effort bookkeeping: the
// balance mutation already committed, so a failed insert only loses a log line.
func (uc *PointsUseCase) record(ctx context.Context, userID, event string, points int) {
	tx := &domain.PointsTransaction{UserID: userID, Event: event, Points: points}
	if err := uc.pointsRepo.RecordTransaction(ctx, tx); err != nil {
		fmt.Printf("Warning: failed to record points transaction: %v\n", err)
	}
}
