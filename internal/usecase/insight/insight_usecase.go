package insight

import (
	"context"
	"fmt"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/infrastructure/gemini"
	"github.com/arotiapp/aroti-backend/internal/repository"
	"github.com/arotiapp/aroti-backend/pkg/clock"
)

type InsightUseCase struct {
	cache        repository.InsightCache
	geminiClient *gemini.GeminiClient
	clock        clock.Clock
}

func NewInsightUseCase(cache repository.InsightCache, geminiClient *gemini.GeminiClient, clk clock.Clock) *InsightUseCase {
	return &InsightUseCase{
		cache:        cache,
		geminiClient: geminiClient,
		clock:        clk,
	}
}

// GetDaily returns the day's insight bundle, generating and caching it on
// first request of the day. The bundle is shared across users.
func (uc *InsightUseCase) GetDaily(ctx context.Context) (*domain.DailyInsight, error) {
	now := uc.clock.Now()
	day := clock.DayKey(now)

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, day)
		if err != nil {
			fmt.Printf("Warning: insight cache read failed: %v\n", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	insight := defaultInsight(day)

	if uc.geminiClient != nil {
		if horoscope, err := uc.geminiClient.GenerateHoroscope(ctx, day); err == nil && horoscope != "" {
			insight.Horoscope = horoscope
		}
	}

	if uc.cache != nil {
		ttl := clock.NextMidnight(now).Sub(now)
		if err := uc.cache.Set(ctx, day, insight, ttl); err != nil {
			fmt.Printf("Warning: insight cache write failed: %v\n", err)
		}
	}

	return insight, nil
}

func defaultInsight(day string) *domain.DailyInsight {
	return &domain.DailyInsight{
		TarotCard: domain.TarotCard{
			ID:             "1",
			Name:           "The Fool",
			Keywords:       []string{"new beginnings", "adventure", "innocence"},
			Interpretation: "A new journey awaits you",
			Guidance:       []string{"Trust your instincts", "Embrace the unknown"},
		},
		Horoscope: "Today brings opportunities for growth and reflection. Trust your intuition and be open to new experiences.",
		Numerology: domain.NumerologyInsight{
			Number:  7,
			Preview: "A day of introspection and spiritual growth",
		},
		Ritual: domain.Ritual{
			ID:          "1",
			Title:       "Morning Meditation",
			Description: "Start your day with a 10-minute meditation",
			Duration:    "10 minutes",
			Type:        "meditation",
			Intention:   "Set positive intentions for the day",
			Steps:       []string{"Find a quiet space", "Sit comfortably", "Focus on your breath"},
			Affirmation: "I am open to the wisdom of the universe",
			Benefits:    []string{"Clarity", "Peace", "Focus"},
		},
		Affirmation: "I trust the journey and embrace each moment with gratitude",
		Date:        day,
	}
}
