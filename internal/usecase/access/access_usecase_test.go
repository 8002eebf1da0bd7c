package access

import (
	"context"
	"testing"
	"time"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/usecase/points"
	"github.com/arotiapp/aroti-backend/pkg/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedgerRepo is a minimal in-memory points store for purchase tests.
type fakeLedgerRepo struct {
	balances map[string]*domain.PointsBalance
}

func (r *fakeLedgerRepo) ledger(userID string) *domain.PointsBalance {
	b, ok := r.balances[userID]
	if !ok {
		b = &domain.PointsBalance{}
		r.balances[userID] = b
	}
	return b
}

func (r *fakeLedgerRepo) GetBalance(_ context.Context, userID string) (*domain.PointsBalance, error) {
	copied := *r.ledger(userID)
	return &copied, nil
}

func (r *fakeLedgerRepo) Earn(_ context.Context, userID string, amount int) (*domain.PointsBalance, error) {
	b := r.ledger(userID)
	b.TotalPoints += amount
	b.LifetimePoints += amount
	copied := *b
	return &copied, nil
}

func (r *fakeLedgerRepo) Spend(_ context.Context, userID string, cost int) (*domain.PointsBalance, bool, error) {
	b := r.ledger(userID)
	if b.TotalPoints < cost {
		copied := *b
		return &copied, false, nil
	}
	b.TotalPoints -= cost
	copied := *b
	return &copied, true, nil
}

func (r *fakeLedgerRepo) RecordTransaction(_ context.Context, _ *domain.PointsTransaction) error {
	return nil
}

func (r *fakeLedgerRepo) GetTransactions(_ context.Context, _ string, _, _ int) ([]*domain.PointsTransaction, error) {
	return nil, nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) UpdatePremium(_ context.Context, id string, isPremium bool) error {
	user, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.IsPremium = isPremium
	return nil
}

type fakeUnlockRepo struct {
	records []*domain.UnlockRecord
}

func (r *fakeUnlockRepo) Create(_ context.Context, record *domain.UnlockRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *fakeUnlockRepo) GetByContent(_ context.Context, userID, contentID string, contentType domain.ContentType) (*domain.UnlockRecord, error) {
	var best *domain.UnlockRecord
	for _, rec := range r.records {
		if rec.UserID != userID || rec.ContentID != contentID || rec.ContentType != contentType {
			continue
		}
		if best == nil || (rec.Permanent && !best.Permanent) {
			best = rec
		}
	}
	return best, nil
}

func (r *fakeUnlockRepo) GetByUser(_ context.Context, userID string) ([]*domain.UnlockRecord, error) {
	var out []*domain.UnlockRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// fakeUsageRepo keys counters by local calendar day like the real store.
type fakeUsageRepo struct {
	counts map[string]int
}

func (r *fakeUsageRepo) key(userID string, contentType domain.ContentType, day time.Time) string {
	return string(contentType) + ":" + userID + ":" + clock.DayKey(day)
}

func (r *fakeUsageRepo) GetUsedToday(_ context.Context, userID string, contentType domain.ContentType, day time.Time) (int, error) {
	return r.counts[r.key(userID, contentType, day)], nil
}

func (r *fakeUsageRepo) IncrementToday(_ context.Context, userID string, contentType domain.ContentType, day time.Time) (int, error) {
	k := r.key(userID, contentType, day)
	r.counts[k]++
	return r.counts[k], nil
}

type accessFixture struct {
	uc       *AccessUseCase
	pointsUC *points.PointsUseCase
	users    *fakeUserRepo
	unlocks  *fakeUnlockRepo
	usage    *fakeUsageRepo
	clock    *fakeClock
	userID   string
}

func newAccessFixture(t *testing.T, isPremium bool) *accessFixture {
	t.Helper()

	user := &domain.User{ID: uuid.New(), Email: "seeker@example.com", IsPremium: isPremium}
	users := &fakeUserRepo{users: map[string]*domain.User{user.ID.String(): user}}
	unlocks := &fakeUnlockRepo{}
	usage := &fakeUsageRepo{counts: make(map[string]int)}
	clk := &fakeClock{now: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)}
	pointsUC := points.NewPointsUseCase(&fakeLedgerRepo{balances: make(map[string]*domain.PointsBalance)})

	return &accessFixture{
		uc:       NewAccessUseCase(DefaultRuleSet(), users, unlocks, usage, pointsUC, clk),
		pointsUC: pointsUC,
		users:    users,
		unlocks:  unlocks,
		usage:    usage,
		clock:    clk,
		userID:   user.ID.String(),
	}
}

func (f *accessFixture) earn(t *testing.T, amount int) {
	t.Helper()
	_, err := f.pointsUC.Earn(context.Background(), f.userID, &points.EarnRequest{Event: "setup", Amount: amount})
	require.NoError(t, err)
}

func TestResolveFreeContentWithinDailyWindow(t *testing.T) {
	f := newAccessFixture(t, false)

	result, err := f.uc.Resolve(context.Background(), f.userID, domain.ContentDailyPractice, "morning-ritual", false)
	require.NoError(t, err)

	assert.Equal(t, domain.AccessKindFree, result.Status.Kind)
	assert.False(t, result.IsUnlocked)
}

func TestResolveDailyLimitEscalatesToPoints(t *testing.T) {
	f := newAccessFixture(t, false)
	ctx := context.Background()

	err := f.uc.RecordUsage(ctx, f.userID, &UsageRequest{ContentType: "dailyPractice"})
	require.NoError(t, err)

	result, err := f.uc.Resolve(ctx, f.userID, domain.ContentDailyPractice, "morning-ritual", false)
	require.NoError(t, err)

	assert.Equal(t, domain.AccessKindUnlockableWithPoints, result.Status.Kind)
	assert.Equal(t, dailyPracticeUnlockCost, result.Status.Cost)
}

func TestResolveDailyLimitResetsNextDay(t *testing.T) {
	f := newAccessFixture(t, false)
	ctx := context.Background()

	for i := 0; i < freeMessagesPerDay; i++ {
		err := f.uc.RecordUsage(ctx, f.userID, &UsageRequest{ContentType: "aiChat"})
		require.NoError(t, err)
	}

	result, err := f.uc.Resolve(ctx, f.userID, domain.ContentAIChat, "chat", false)
	require.NoError(t, err)
	assert.Equal(t, domain.AccessKindUnlockableWithPoints, result.Status.Kind)

	// Midnight passes: the free window reopens.
	f.clock.advance(24 * time.Hour)
	result, err = f.uc.Resolve(ctx, f.userID, domain.ContentAIChat, "chat", false)
	require.NoError(t, err)
	assert.Equal(t, domain.AccessKindFree, result.Status.Kind)
}

func TestPremiumUsersAreNotMetered(t *testing.T) {
	f := newAccessFixture(t, true)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		err := f.uc.RecordUsage(ctx, f.userID, &UsageRequest{ContentType: "aiChat"})
		require.NoError(t, err)
	}
	assert.Empty(t, f.usage.counts)

	result, err := f.uc.Resolve(ctx, f.userID, domain.ContentAIChat, "chat", false)
	require.NoError(t, err)
	assert.Equal(t, domain.AccessKindUnlocked, result.Status.Kind)
}

func TestRecordUsageWithoutDailyWindow(t *testing.T) {
	f := newAccessFixture(t, false)

	err := f.uc.RecordUsage(context.Background(), f.userID, &UsageRequest{ContentType: "article"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolveUnknownContentType(t *testing.T) {
	f := newAccessFixture(t, false)

	_, err := f.uc.ResolveByName(context.Background(), f.userID, "horoscope", "x", false)
	assert.ErrorIs(t, err, domain.ErrUnknownContentType)
}

func TestResolveBasicSpreadsAreFree(t *testing.T) {
	f := newAccessFixture(t, false)
	ctx := context.Background()

	for _, id := range []string{"one-card", "three-card", "past-present-future"} {
		result, err := f.uc.Resolve(ctx, f.userID, domain.ContentTarotSpread, id, false)
		require.NoError(t, err)
		assert.Equal(t, domain.AccessKindFree, result.Status.Kind, "spread %s", id)
	}

	// Non-basic spreads carry the point cost.
	result, err := f.uc.Resolve(ctx, f.userID, domain.ContentTarotSpread, "celtic-cross", false)
	require.NoError(t, err)
	assert.Equal(t, domain.AccessKindUnlockableWithPoints, result.Status.Kind)
	assert.Equal(t, spreadTempUnlockCost, result.Status.Cost)

	result, err = f.uc.Resolve(ctx, f.userID, domain.ContentTarotSpread, "celtic-cross", true)
	require.NoError(t, err)
	assert.Equal(t, spreadPermUnlockCost, result.Status.Cost)
}

func TestUnlockTemporarySpread(t *testing.T) {
	f := newAccessFixture(t, false)
	ctx := context.Background()
	f.earn(t, 100)

	resp, err := f.uc.Unlock(ctx, f.userID, &UnlockRequest{
		ContentID:   "celtic-cross",
		ContentType: "tarotSpread",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.NotNil(t, resp.Spend)
	assert.Equal(t, 100-spreadTempUnlockCost, resp.Spend.NewBalance)
	require.NotNil(t, resp.Unlock)
	assert.False(t, resp.Unlock.Permanent)
	require.NotNil(t, resp.Unlock.ExpiresAt)
	assert.Equal(t, f.clock.now.Add(24*time.Hour), *resp.Unlock.ExpiresAt)

	// The unlock holds until it expires.
	result, err := f.uc.Resolve(ctx, f.userID, domain.ContentTarotSpread, "celtic-cross", false)
	require.NoError(t, err)
	assert.True(t, result.IsUnlocked)

	f.clock.advance(25 * time.Hour)
	result, err = f.uc.Resolve(ctx, f.userID, domain.ContentTarotSpread, "celtic-cross", false)
	require.NoError(t, err)
	assert.False(t, result.IsUnlocked)
	assert.Equal(t, domain.AccessKindUnlockableWithPoints, result.Status.Kind)
}

func TestUnlockPermanentSpread(t *testing.T) {
	f := newAccessFixture(t, false)
	ctx := context.Background()
	f.earn(t, 200)

	resp, err := f.uc.Unlock(ctx, f.userID, &UnlockRequest{
		ContentID:   "celtic-cross",
		ContentType: "tarotSpread",
		Permanent:   true,
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 200-spreadPermUnlockCost, resp.Spend.NewBalance)
	require.NotNil(t, resp.Unlock)
	assert.True(t, resp.Unlock.Permanent)
	assert.Nil(t, resp.Unlock.ExpiresAt)

	// Permanent unlocks never lapse.
	f.clock.advance(90 * 24 * time.Hour)
	result, err := f.uc.Resolve(ctx, f.userID, domain.ContentTarotSpread, "celtic-cross", false)
	require.NoError(t, err)
	assert.True(t, result.IsUnlocked)
}

func TestUnlockInsufficientBalance(t *testing.T) {
	f := newAccessFixture(t, false)
	ctx := context.Background()
	f.earn(t, 10)

	resp, err := f.uc.Unlock(ctx, f.userID, &UnlockRequest{
		ContentID:   "celtic-cross",
		ContentType: "tarotSpread",
	})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Spend)
	assert.False(t, resp.Spend.Success)
	assert.Nil(t, resp.Unlock)
	assert.Empty(t, f.unlocks.records)

	// The balance is untouched by the failed purchase.
	balance, err := f.pointsUC.Balance(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 10, balance.TotalPoints)
}

func TestUnlockPremiumOnlyContent(t *testing.T) {
	f := newAccessFixture(t, false)
	ctx := context.Background()
	f.earn(t, 1000)

	for _, id := range []string{"shadow-work", "deep-relationship"} {
		_, err := f.uc.Unlock(ctx, f.userID, &UnlockRequest{
			ContentID:   id,
			ContentType: "tarotSpread",
		})
		assert.ErrorIs(t, err, ErrPremiumOnlyContent, "spread %s", id)
	}
	assert.Empty(t, f.unlocks.records)
}

func TestUnlockFreeContentIsNoOp(t *testing.T) {
	f := newAccessFixture(t, false)

	resp, err := f.uc.Unlock(context.Background(), f.userID, &UnlockRequest{
		ContentID:   "one-card",
		ContentType: "tarotSpread",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Nil(t, resp.Spend)
	assert.Nil(t, resp.Unlock)
}

func TestPremiumOnlySpreadResolvesUnlockedForPremium(t *testing.T) {
	f := newAccessFixture(t, true)

	result, err := f.uc.Resolve(context.Background(), f.userID, domain.ContentTarotSpread, "shadow-work", false)
	require.NoError(t, err)
	assert.Equal(t, domain.AccessKindUnlocked, result.Status.Kind)
}
