package insight

import (
	"context"
	"testing"
	"time"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeInsightCache struct {
	entries map[string]*domain.DailyInsight
	ttls    map[string]time.Duration
}

func (c *fakeInsightCache) Get(_ context.Context, day string) (*domain.DailyInsight, error) {
	return c.entries[day], nil
}

func (c *fakeInsightCache) Set(_ context.Context, day string, insight *domain.DailyInsight, ttl time.Duration) error {
	c.entries[day] = insight
	c.ttls[day] = ttl
	return nil
}

func newInsightFixture() (*InsightUseCase, *fakeInsightCache, *fakeClock) {
	cache := &fakeInsightCache{
		entries: make(map[string]*domain.DailyInsight),
		ttls:    make(map[string]time.Duration),
	}
	clk := &fakeClock{now: time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)}
	return NewInsightUseCase(cache, nil, clk), cache, clk
}

func TestGetDailyGeneratesAndCaches(t *testing.T) {
	uc, cache, _ := newInsightFixture()
	ctx := context.Background()

	insight, err := uc.GetDaily(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-15", insight.Date)
	assert.Equal(t, "The Fool", insight.TarotCard.Name)
	assert.NotEmpty(t, insight.Horoscope)

	// Cached until midnight.
	assert.Contains(t, cache.entries, "2026-03-15")
	assert.Equal(t, 6*time.Hour, cache.ttls["2026-03-15"])
}

func TestGetDailyServesCachedBundle(t *testing.T) {
	uc, cache, _ := newInsightFixture()
	ctx := context.Background()

	cached := &domain.DailyInsight{Date: "2026-03-15", Horoscope: "cached horoscope"}
	cache.entries["2026-03-15"] = cached

	insight, err := uc.GetDaily(ctx)
	require.NoError(t, err)
	assert.Same(t, cached, insight)
}

func TestGetDailyRollsOverAtMidnight(t *testing.T) {
	uc, cache, clk := newInsightFixture()
	ctx := context.Background()

	_, err := uc.GetDaily(ctx)
	require.NoError(t, err)

	clk.now = clk.now.Add(12 * time.Hour)
	insight, err := uc.GetDaily(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-16", insight.Date)
	assert.Len(t, cache.entries, 2)
}
