package access

import "github.com/arotiapp/aroti-backend/internal/domain"

// Unlock costs and daily free limits for the content catalog.
const (
	dailyPracticeUnlockCost = 10
	aiChatMessageCost       = 20
	quizUnlockCost          = 10
	compatibilityCheckCost  = 50
	articleUnlockCost       = 20
	premiumLayerUnlockCost  = 30
	spreadTempUnlockCost    = 40
	spreadPermUnlockCost    = 150

	freePracticesPerDay     = 1
	freeMessagesPerDay      = 3
	freeQuizzesPerDay       = 1
	freeCompatibilityPerDay = 1
)

// RuleSet is the static access configuration: a default rule per content
// type plus per-content overrides (e.g. named tarot spreads).
type RuleSet struct {
	defaults  map[domain.ContentType]domain.AccessRule
	overrides map[string]domain.AccessRule
	// dailyLimits caps free uses per local calendar day; content types
	// absent from the map have no daily window.
	dailyLimits map[domain.ContentType]int
}

// RuleFor returns the effective rule for a content item, or nil when nothing
// is configured (which resolves to free access).
func (rs *RuleSet) RuleFor(contentType domain.ContentType, contentID string) *domain.AccessRule {
	if rule, ok := rs.overrides[overrideKey(contentType, contentID)]; ok {
		rule.ContentID = contentID
		return &rule
	}
	if rule, ok := rs.defaults[contentType]; ok {
		rule.ContentID = contentID
		return &rule
	}
	return nil
}

// DailyLimit returns the free uses per day for a content type, if it has one.
func (rs *RuleSet) DailyLimit(contentType domain.ContentType) (int, bool) {
	limit, ok := rs.dailyLimits[contentType]
	return limit, ok
}

func overrideKey(contentType domain.ContentType, contentID string) string {
	return string(contentType) + ":" + contentID
}

// DefaultRuleSet mirrors the shipped content catalog: daily-window content is
// free until its daily limit runs out, basic spreads are always free, a few
// spreads are premium-only, and everything else unlocks with points.
func DefaultRuleSet() *RuleSet {
	rs := &RuleSet{
		defaults:    make(map[domain.ContentType]domain.AccessRule),
		overrides:   make(map[string]domain.AccessRule),
		dailyLimits: make(map[domain.ContentType]int),
	}

	rs.defaults[domain.ContentDailyPractice] = domain.AccessRule{
		ContentType:   domain.ContentDailyPractice,
		FreeAccess:    true,
		PremiumAccess: true,
		UnlockCost:    intPtr(dailyPracticeUnlockCost),
	}
	rs.defaults[domain.ContentAIChat] = domain.AccessRule{
		ContentType:   domain.ContentAIChat,
		FreeAccess:    true,
		PremiumAccess: true,
		UnlockCost:    intPtr(aiChatMessageCost),
	}
	rs.defaults[domain.ContentQuiz] = domain.AccessRule{
		ContentType:   domain.ContentQuiz,
		FreeAccess:    true,
		PremiumAccess: true,
		UnlockCost:    intPtr(quizUnlockCost),
	}
	rs.defaults[domain.ContentCompatibility] = domain.AccessRule{
		ContentType:   domain.ContentCompatibility,
		FreeAccess:    true,
		PremiumAccess: true,
		UnlockCost:    intPtr(compatibilityCheckCost),
	}
	rs.defaults[domain.ContentTarotSpread] = domain.AccessRule{
		ContentType:         domain.ContentTarotSpread,
		PremiumAccess:       true,
		UnlockCost:          intPtr(spreadTempUnlockCost),
		PermanentUnlockCost: intPtr(spreadPermUnlockCost),
	}
	rs.defaults[domain.ContentArticle] = domain.AccessRule{
		ContentType:   domain.ContentArticle,
		PremiumAccess: true,
		UnlockCost:    intPtr(articleUnlockCost),
	}
	rs.defaults[domain.ContentNumerologyLayer] = domain.AccessRule{
		ContentType:   domain.ContentNumerologyLayer,
		PremiumAccess: true,
		UnlockCost:    intPtr(premiumLayerUnlockCost),
	}
	rs.defaults[domain.ContentTheme] = domain.AccessRule{
		ContentType:   domain.ContentTheme,
		PremiumAccess: true,
		UnlockCost:    intPtr(premiumLayerUnlockCost),
	}

	// Basic spreads stay free for everyone.
	for _, id := range []string{"one-card", "three-card", "past-present-future"} {
		rs.overrides[overrideKey(domain.ContentTarotSpread, id)] = domain.AccessRule{
			ContentType:   domain.ContentTarotSpread,
			FreeAccess:    true,
			PremiumAccess: true,
		}
	}

	// Premium-only spreads are never point-purchasable.
	for _, id := range []string{"shadow-work", "deep-relationship"} {
		rs.overrides[overrideKey(domain.ContentTarotSpread, id)] = domain.AccessRule{
			ContentType:   domain.ContentTarotSpread,
			PremiumAccess: true,
			IsPremiumOnly: true,
		}
	}

	rs.dailyLimits[domain.ContentDailyPractice] = freePracticesPerDay
	rs.dailyLimits[domain.ContentAIChat] = freeMessagesPerDay
	rs.dailyLimits[domain.ContentQuiz] = freeQuizzesPerDay
	rs.dailyLimits[domain.ContentCompatibility] = freeCompatibilityPerDay

	return rs
}

func intPtr(v int) *int { return &v }
