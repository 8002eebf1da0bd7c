package onboarding

import (
	"context"
	"fmt"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/infrastructure/gemini"
	"github.com/arotiapp/aroti-backend/internal/repository"
)

type OnboardingUseCase struct {
	onboardingRepo repository.OnboardingRepository
	profileRepo    repository.ProfileRepository
	geminiClient   *gemini.GeminiClient
}

func NewOnboardingUseCase(
	onboardingRepo repository.OnboardingRepository,
	profileRepo repository.ProfileRepository,
	geminiClient *gemini.GeminiClient,
) *OnboardingUseCase {
	return &OnboardingUseCase{
		onboardingRepo: onboardingRepo,
		profileRepo:    profileRepo,
		geminiClient:   geminiClient,
	}
}

// AnswerRequest carries one screen's answer fields. Only the fields belonging
// to the named screen are applied; re-answering overwrites the old value.
type AnswerRequest struct {
	Screen             string   `json:"screen" binding:"required,screen"`
	BirthDate          *string  `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	BirthTime          *string  `json:"birth_time" binding:"omitempty,datetime=15:04"`
	BirthPlace         *string  `json:"birth_place" binding:"omitempty,max=200"`
	Gender             *string  `json:"gender" binding:"omitempty,max=50"`
	RelationshipStatus *string  `json:"relationship_status" binding:"omitempty,max=50"`
	MainIntention      *string  `json:"main_intention" binding:"omitempty,max=100"`
	EmotionalNature    []string `json:"emotional_nature" binding:"omitempty,max=10"`
	CurrentFocus       *string  `json:"current_focus" binding:"omitempty,max=100"`
	Challenges         []string `json:"challenges" binding:"omitempty,max=10"`
	Archetype          *string  `json:"archetype" binding:"omitempty,max=100"`
	LoveFocus          *string  `json:"love_focus" binding:"omitempty,max=100"`
	CareerFocus        *string  `json:"career_focus" binding:"omitempty,max=100"`
}

// StateResponse describes the user's position in the flow
type StateResponse struct {
	CurrentScreen domain.ScreenID          `json:"current_screen"`
	Progress      float64                  `json:"progress"`
	Answers       domain.OnboardingAnswers `json:"answers"`
	Completed     bool                     `json:"completed"`
}

// CompleteResponse is the terminal snapshot handed to the profile service
type CompleteResponse struct {
	Profile         *domain.Profile        `json:"profile"`
	CompiledProfile map[string]interface{} `json:"compiled_profile"`
}

// GetState returns the current screen, progress and collected answers
func (uc *OnboardingUseCase) GetState(ctx context.Context, userID string) (*StateResponse, error) {
	state, err := uc.onboardingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stateResponse(state), nil
}

// Answer writes the given screen's answer fields. The screen must be the one
// the user is currently on.
func (uc *OnboardingUseCase) Answer(ctx context.Context, userID string, req *AnswerRequest) (*StateResponse, error) {
	state, err := uc.onboardingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.CompletedAt != nil {
		return nil, domain.ErrFlowAlreadyComplete
	}
	if domain.ScreenID(req.Screen) != state.CurrentScreen {
		return nil, domain.ErrInvalidInput
	}

	applyAnswer(&state.Answers, state.CurrentScreen, req)

	if err := uc.onboardingRepo.Update(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save answers: %w", err)
	}
	return stateResponse(state), nil
}

// Advance applies the forward transition and returns the new screen
func (uc *OnboardingUseCase) Advance(ctx context.Context, userID string) (*StateResponse, error) {
	state, err := uc.onboardingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.CompletedAt != nil {
		return nil, domain.ErrFlowAlreadyComplete
	}

	next, err := domain.NextScreen(state.CurrentScreen, &state.Answers)
	if err != nil {
		return nil, err
	}
	state.CurrentScreen = next

	if err := uc.onboardingRepo.Update(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to advance: %w", err)
	}
	return stateResponse(state), nil
}

// Back applies the backward transition. Answers are preserved, and Back on
// the first screen is a no-op.
func (uc *OnboardingUseCase) Back(ctx context.Context, userID string) (*StateResponse, error) {
	state, err := uc.onboardingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.CompletedAt != nil {
		return nil, domain.ErrFlowAlreadyComplete
	}

	prev, err := domain.PreviousScreen(state.CurrentScreen, &state.Answers)
	if err != nil {
		return nil, err
	}
	if prev == state.CurrentScreen {
		return stateResponse(state), nil
	}
	state.CurrentScreen = prev

	if err := uc.onboardingRepo.Update(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to go back: %w", err)
	}
	return stateResponse(state), nil
}

// Complete is the terminal transition from the ready screen. It persists the
// compiled profile and, when an AI client is available, attaches a generated
// blueprint text.
func (uc *OnboardingUseCase) Complete(ctx context.Context, userID string) (*CompleteResponse, error) {
	state, err := uc.onboardingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.CompletedAt != nil {
		return nil, domain.ErrFlowAlreadyComplete
	}
	if state.CurrentScreen != domain.ScreenReady {
		return nil, domain.ErrFlowNotComplete
	}

	profile := domain.NewProfileFromAnswers(userID, &state.Answers)

	if uc.geminiClient != nil {
		blueprint, err := uc.geminiClient.GenerateBlueprint(ctx, state.Answers.CompiledProfile())
		if err == nil && blueprint != "" {
			profile.Blueprint = &blueprint
		}
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	if err := uc.onboardingRepo.MarkCompleted(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to mark onboarding complete: %w", err)
	}

	return &CompleteResponse{
		Profile:         profile,
		CompiledProfile: state.Answers.CompiledProfile(),
	}, nil
}

func stateResponse(state *domain.OnboardingState) *StateResponse {
	return &StateResponse{
		CurrentScreen: state.CurrentScreen,
		Progress:      domain.Progress(state.CurrentScreen),
		Answers:       state.Answers,
		Completed:     state.CompletedAt != nil,
	}
}

// applyAnswer writes only the fields owned by the given screen. Screens
// without answer fields (welcome, carousel, building, ready) are no-ops.
func applyAnswer(answers *domain.OnboardingAnswers, screen domain.ScreenID, req *AnswerRequest) {
	switch screen {
	case domain.ScreenBirthDate:
		answers.BirthDate = req.BirthDate
	case domain.ScreenBirthTime:
		answers.BirthTime = req.BirthTime
	case domain.ScreenBirthPlace:
		answers.BirthPlace = req.BirthPlace
	case domain.ScreenGender:
		answers.Gender = req.Gender
	case domain.ScreenRelationship:
		answers.RelationshipStatus = req.RelationshipStatus
	case domain.ScreenIntention:
		answers.MainIntention = req.MainIntention
	case domain.ScreenEmotionalNature:
		answers.EmotionalNature = req.EmotionalNature
	case domain.ScreenCurrentFocus:
		answers.CurrentFocus = req.CurrentFocus
	case domain.ScreenChallenges:
		answers.Challenges = req.Challenges
	case domain.ScreenArchetype:
		answers.Archetype = req.Archetype
	case domain.ScreenLoveFocus:
		answers.LoveFocus = req.LoveFocus
	case domain.ScreenCareerFocus:
		answers.CareerFocus = req.CareerFocus
	}
}
