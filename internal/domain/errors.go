package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")

	ErrOnboardingNotFound  = errors.New("onboarding state not found")
	ErrUnknownScreen       = errors.New("unknown onboarding screen")
	ErrFlowAlreadyComplete = errors.New("onboarding flow is already complete")
	ErrFlowNotComplete     = errors.New("onboarding flow is not complete")

	ErrLedgerNotFound    = errors.New("points ledger not found")
	ErrNonPositiveAmount = errors.New("points amount must be positive")

	ErrUnknownContentType = errors.New("unknown content type")
)
