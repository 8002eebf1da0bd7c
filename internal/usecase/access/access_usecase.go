package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/repository"
	"github.com/arotiapp/aroti-backend/internal/usecase/points"
	"github.com/arotiapp/aroti-backend/pkg/clock"
	"github.com/google/uuid"
)

// ErrPremiumOnlyContent marks an unlock attempt on content that is never
// point-purchasable.
var ErrPremiumOnlyContent = errors.New("content requires a premium subscription")

// Temporary unlocks last one day.
const temporaryUnlockDuration = 24 * time.Hour

type AccessUseCase struct {
	rules      *RuleSet
	userRepo   repository.UserRepository
	unlockRepo repository.UnlockRepository
	usageRepo  repository.UsageRepository
	pointsUC   *points.PointsUseCase
	clock      clock.Clock
}

func NewAccessUseCase(
	rules *RuleSet,
	userRepo repository.UserRepository,
	unlockRepo repository.UnlockRepository,
	usageRepo repository.UsageRepository,
	pointsUC *points.PointsUseCase,
	clk clock.Clock,
) *AccessUseCase {
	return &AccessUseCase{
		rules:      rules,
		userRepo:   userRepo,
		unlockRepo: unlockRepo,
		usageRepo:  usageRepo,
		pointsUC:   pointsUC,
		clock:      clk,
	}
}

// ContentAccess is the resolved entitlement for one content item
type ContentAccess struct {
	ContentID   string              `json:"content_id"`
	ContentType domain.ContentType  `json:"content_type"`
	Status      domain.AccessStatus `json:"status"`
	IsUnlocked  bool                `json:"is_unlocked"`
}

// UnlockRequest represents a point-purchase of a content item
type UnlockRequest struct {
	ContentID   string `json:"content_id" binding:"required,max=100"`
	ContentType string `json:"content_type" binding:"required,max=50"`
	Permanent   bool   `json:"permanent"`
}

// UnlockResponse reports the spend outcome and, on success, the new record
type UnlockResponse struct {
	Success bool                 `json:"success"`
	Spend   *domain.SpendResult  `json:"spend,omitempty"`
	Unlock  *domain.UnlockRecord `json:"unlock,omitempty"`
}

// UsageRequest marks one free daily use of a content type
type UsageRequest struct {
	ContentID   string `json:"content_id" binding:"omitempty,max=100"`
	ContentType string `json:"content_type" binding:"required,max=50"`
}

// Resolve computes the AccessStatus for a content item, including the daily
// free-window override: base-free content escalates to unlockable-with-points
// once today's free uses are spent.
func (uc *AccessUseCase) Resolve(ctx context.Context, userID string, contentType domain.ContentType, contentID string, wantPermanent bool) (*ContentAccess, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlock, err := uc.unlockRepo.GetByContent(ctx, userID, contentID, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to look up unlock record: %w", err)
	}

	now := uc.clock.Now()
	rule := uc.rules.RuleFor(contentType, contentID)
	status := domain.ResolveAccess(rule, unlock, user.IsPremium, wantPermanent, now)

	if status.Kind == domain.AccessKindFree && rule != nil {
		if limit, ok := uc.rules.DailyLimit(contentType); ok && !user.IsPremium {
			used, err := uc.usageRepo.GetUsedToday(ctx, userID, contentType, now)
			if err != nil {
				return nil, fmt.Errorf("failed to read usage counter: %w", err)
			}
			if used >= limit && rule.UnlockCost != nil {
				status = domain.AccessUnlockableWithPoints(*rule.UnlockCost)
			}
		}
	}

	return &ContentAccess{
		ContentID:   contentID,
		ContentType: contentType,
		Status:      status,
		IsUnlocked:  status.Kind == domain.AccessKindUnlocked,
	}, nil
}

// ResolveByName is Resolve with the content type still in wire form.
func (uc *AccessUseCase) ResolveByName(ctx context.Context, userID, contentTypeName, contentID string, wantPermanent bool) (*ContentAccess, error) {
	contentType, err := parseContentType(contentTypeName)
	if err != nil {
		return nil, err
	}
	return uc.Resolve(ctx, userID, contentType, contentID, wantPermanent)
}

// RecordUsage consumes one free daily use. Premium users are not metered.
func (uc *AccessUseCase) RecordUsage(ctx context.Context, userID string, req *UsageRequest) error {
	contentType, err := parseContentType(req.ContentType)
	if err != nil {
		return err
	}
	if _, ok := uc.rules.DailyLimit(contentType); !ok {
		return domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsPremium {
		return nil
	}

	_, err = uc.usageRepo.IncrementToday(ctx, userID, contentType, uc.clock.Now())
	return err
}

// Unlock purchases access with points: spend first, then record the unlock.
// An insufficient balance comes back as an unsuccessful response carrying the
// spend result, so the caller can offer the premium upsell.
func (uc *AccessUseCase) Unlock(ctx context.Context, userID string, req *UnlockRequest) (*UnlockResponse, error) {
	contentType, err := parseContentType(req.ContentType)
	if err != nil {
		return nil, err
	}

	resolved, err := uc.Resolve(ctx, userID, contentType, req.ContentID, req.Permanent)
	if err != nil {
		return nil, err
	}

	switch resolved.Status.Kind {
	case domain.AccessKindUnlocked, domain.AccessKindFree:
		// Nothing to buy.
		return &UnlockResponse{Success: true}, nil
	case domain.AccessKindPremiumOnly:
		return nil, ErrPremiumOnlyContent
	}

	spendReq := &points.SpendRequest{
		Event: "unlock_" + req.ContentID,
		Cost:  resolved.Status.Cost,
	}
	spend, err := uc.pointsUC.Spend(ctx, userID, spendReq)
	if err != nil {
		return nil, err
	}
	if !spend.Success {
		return &UnlockResponse{Success: false, Spend: spend}, nil
	}

	record, err := uc.RecordUnlock(ctx, userID, req.ContentID, contentType, req.Permanent)
	if err != nil {
		return nil, err
	}

	return &UnlockResponse{Success: true, Spend: spend, Unlock: record}, nil
}

// RecordUnlock writes the durable unlock fact. Callers must only invoke it
// after a successful points spend.
func (uc *AccessUseCase) RecordUnlock(ctx context.Context, userID, contentID string, contentType domain.ContentType, permanent bool) (*domain.UnlockRecord, error) {
	record := &domain.UnlockRecord{
		ID:          uuid.New(),
		UserID:      userID,
		ContentID:   contentID,
		ContentType: contentType,
		Permanent:   permanent,
	}
	if !permanent {
		expiresAt := uc.clock.Now().Add(temporaryUnlockDuration)
		record.ExpiresAt = &expiresAt
	}

	if err := uc.unlockRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record unlock: %w", err)
	}
	return record, nil
}

// Unlocks lists the user's unlock records
func (uc *AccessUseCase) Unlocks(ctx context.Context, userID string) ([]*domain.UnlockRecord, error) {
	return uc.unlockRepo.GetByUser(ctx, userID)
}

func parseContentType(s string) (domain.ContentType, error) {
	switch ct := domain.ContentType(s); ct {
	case domain.ContentAIChat, domain.ContentDailyPractice, domain.ContentTarotSpread,
		domain.ContentArticle, domain.ContentQuiz, domain.ContentNumerologyLayer,
		domain.ContentTheme, domain.ContentCompatibility:
		return ct, nil
	}
	return "", domain.ErrUnknownContentType
}
