package auth

import (
	"context"
	"testing"
	"time"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrUserAlreadyExists
		}
	}
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

type fakeOnboardingRepo struct {
	states map[string]*domain.OnboardingState
}

func (r *fakeOnboardingRepo) Create(_ context.Context, state *domain.OnboardingState) error {
	r.states[state.UserID] = state
	return nil
}

func (r *fakeOnboardingRepo) GetByUserID(_ context.Context, userID string) (*domain.OnboardingState, error) {
	state, ok := r.states[userID]
	if !ok {
		return nil, domain.ErrOnboardingNotFound
	}
	return state, nil
}

func (r *fakeOnboardingRepo) Update(_ context.Context, state *domain.OnboardingState) error {
	r.states[state.UserID] = state
	return nil
}

func (r *fakeOnboardingRepo) MarkCompleted(_ context.Context, userID string) error {
	state, ok := r.states[userID]
	if !ok {
		return domain.ErrOnboardingNotFound
	}
	now := time.Now()
	state.CompletedAt = &now
	return nil
}

func newAuthFixture() (*AuthUseCase, *fakeUserRepo, *fakeOnboardingRepo) {
	users := &fakeUserRepo{users: make(map[string]*domain.User)}
	states := &fakeOnboardingRepo{states: make(map[string]*domain.OnboardingState)}
	uc := NewAuthUseCase(users, states, "test-secret-at-least-32-characters!!", time.Hour)
	return uc, users, states
}

func TestRegister(t *testing.T) {
	uc, users, states := newAuthFixture()
	ctx := context.Background()

	resp, err := uc.Register(ctx, &RegisterRequest{
		Email:    "seeker@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.IsNewUser)
	require.NotNil(t, resp.User)
	assert.Equal(t, "seeker@example.com", resp.User.Email)
	assert.NotEqual(t, "correct-horse", resp.User.PasswordHash)
	assert.Len(t, users.users, 1)

	// Registration seeds the onboarding flow at the account screen.
	state, ok := states.states[resp.User.ID.String()]
	require.True(t, ok)
	assert.Equal(t, domain.ScreenCreateAccount, state.CurrentScreen)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthFixture()
	ctx := context.Background()

	req := &RegisterRequest{Email: "seeker@example.com", Password: "correct-horse"}
	_, err := uc.Register(ctx, req)
	require.NoError(t, err)

	_, err = uc.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	uc, _, _ := newAuthFixture()
	ctx := context.Background()

	registered, err := uc.Register(ctx, &RegisterRequest{
		Email:    "seeker@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	resp, err := uc.Login(ctx, &LoginRequest{Email: "seeker@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.IsNewUser)
	assert.Equal(t, registered.User.ID, resp.User.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, &RegisterRequest{
		Email:    "seeker@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = uc.Login(ctx, &LoginRequest{Email: "seeker@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSetPremium(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()

	resp, err := uc.Register(ctx, &RegisterRequest{
		Email:    "seeker@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	userID := resp.User.ID.String()

	user, err := uc.SetPremium(ctx, userID, true)
	require.NoError(t, err)
	assert.True(t, user.IsPremium)
	assert.True(t, users.users[userID].IsPremium)

	user, err = uc.SetPremium(ctx, userID, false)
	require.NoError(t, err)
	assert.False(t, user.IsPremium)

	_, err = uc.SetPremium(ctx, "nobody", true)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestValidateToken(t *testing.T) {
	uc, _, _ := newAuthFixture()
	ctx := context.Background()

	resp, err := uc.Register(ctx, &RegisterRequest{
		Email:    "seeker@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	userID, err := uc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), userID)

	_, err = uc.ValidateToken("not-a-token")
	assert.Error(t, err)

	// Tokens signed with another secret are rejected.
	other := NewAuthUseCase(nil, nil, "another-secret-also-32-characters!!!", time.Hour)
	forged, _, err := other.generateToken(resp.User.ID.String())
	require.NoError(t, err)
	_, err = uc.ValidateToken(forged)
	assert.Error(t, err)
}
