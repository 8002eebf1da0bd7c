package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContentType classifies gated content items.
type ContentType string

const (
	ContentAIChat          ContentType = "aiChat"
	ContentDailyPractice   ContentType = "dailyPractice"
	ContentTarotSpread     ContentType = "tarotSpread"
	ContentArticle         ContentType = "article"
	ContentQuiz            ContentType = "quiz"
	ContentNumerologyLayer ContentType = "numerologyLayer"
	ContentTheme           ContentType = "theme"
	ContentCompatibility   ContentType = "compatibility"
)

// AccessKind is the discriminant of AccessStatus.
type AccessKind string

const (
	AccessKindFree                 AccessKind = "free"
	AccessKindUnlockableWithPoints AccessKind = "unlockableWithPoints"
	AccessKindPremiumOnly          AccessKind = "premiumOnly"
	AccessKindUnlocked             AccessKind = "unlocked"
)

// AccessStatus is a computed entitlement result, never persisted. Cost is
// meaningful only when Kind is unlockableWithPoints.
type AccessStatus struct {
	Kind AccessKind `json:"kind"`
	Cost int        `json:"cost,omitempty"`
}

func AccessFree() AccessStatus { return AccessStatus{Kind: AccessKindFree} }

func AccessUnlockableWithPoints(cost int) AccessStatus {
	return AccessStatus{Kind: AccessKindUnlockableWithPoints, Cost: cost}
}

func AccessPremiumOnly() AccessStatus { return AccessStatus{Kind: AccessKindPremiumOnly} }

func AccessUnlocked() AccessStatus { return AccessStatus{Kind: AccessKindUnlocked} }

// AccessRule is static per-content configuration, not user state.
type AccessRule struct {
	ContentID           string      `json:"content_id"`
	ContentType         ContentType `json:"content_type"`
	FreeAccess          bool        `json:"free_access"`
	PremiumAccess       bool        `json:"premium_access"`
	UnlockCost          *int        `json:"unlock_cost"`
	PermanentUnlockCost *int        `json:"permanent_unlock_cost"`
	IsPremiumOnly       bool        `json:"is_premium_only"`
}

// UnlockRecord is the durable fact that a user unlocked a content item,
// either permanently or until ExpiresAt.
type UnlockRecord struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	UserID      string      `json:"user_id" db:"user_id"`
	ContentID   string      `json:"content_id" db:"content_id"`
	ContentType ContentType `json:"content_type" db:"content_type"`
	Permanent   bool        `json:"permanent" db:"permanent"`
	ExpiresAt   *time.Time  `json:"expires_at" db:"expires_at"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

// ActiveAt reports whether the unlock still applies at the given time.
func (r *UnlockRecord) ActiveAt(t time.Time) bool {
	if r == nil {
		return false
	}
	if r.Permanent {
		return true
	}
	return r.ExpiresAt != nil && t.Before(*r.ExpiresAt)
}

// ResolveAccess evaluates the entitlement chain in fixed priority order:
// active unlock, premium access, premium-only gate, free tier, point cost,
// and finally a free default for unconfigured content. wantPermanent selects
// the permanent cost when both costs are configured.
func ResolveAccess(rule *AccessRule, unlock *UnlockRecord, isPremium, wantPermanent bool, now time.Time) AccessStatus {
	if unlock.ActiveAt(now) {
		return AccessUnlocked()
	}
	if rule == nil {
		return AccessFree()
	}
	if isPremium && rule.PremiumAccess {
		return AccessUnlocked()
	}
	if rule.IsPremiumOnly {
		return AccessPremiumOnly()
	}
	if rule.FreeAccess {
		return AccessFree()
	}
	if cost, ok := selectUnlockCost(rule, wantPermanent); ok {
		return AccessUnlockableWithPoints(cost)
	}
	// Content with no rule configured defaults to free, never silently
	// inaccessible.
	return AccessFree()
}

func selectUnlockCost(rule *AccessRule, wantPermanent bool) (int, bool) {
	if rule.UnlockCost != nil && rule.PermanentUnlockCost != nil {
		if wantPermanent {
			return *rule.PermanentUnlockCost, true
		}
		return *rule.UnlockCost, true
	}
	if rule.UnlockCost != nil {
		return *rule.UnlockCost, true
	}
	if rule.PermanentUnlockCost != nil {
		return *rule.PermanentUnlockCost, true
	}
	return 0, false
}
