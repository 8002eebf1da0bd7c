package domain

import "time"

// ScreenID identifies one step of the onboarding flow.
type ScreenID string

const (
	ScreenWelcome         ScreenID = "welcome"
	ScreenValueCarousel   ScreenID = "valueCarousel"
	ScreenCreateAccount   ScreenID = "createAccount"
	ScreenBirthDate       ScreenID = "birthDate"
	ScreenBirthTime       ScreenID = "birthTime"
	ScreenBirthPlace      ScreenID = "birthPlace"
	ScreenGender          ScreenID = "gender"
	ScreenRelationship    ScreenID = "relationship"
	ScreenIntention       ScreenID = "intention"
	ScreenEmotionalNature ScreenID = "emotionalNature"
	ScreenCurrentFocus    ScreenID = "currentFocus"
	ScreenChallenges      ScreenID = "challenges"
	ScreenArchetype       ScreenID = "archetype"
	ScreenLoveFocus       ScreenID = "loveFocus"
	ScreenCareerFocus     ScreenID = "careerFocus"
	ScreenBuilding        ScreenID = "building"
	ScreenReady           ScreenID = "ready"
)

// ScreenOrder is the default presentation order, used for progress only.
// Actual navigation goes through NextScreen/PreviousScreen.
var ScreenOrder = []ScreenID{
	ScreenWelcome,
	ScreenValueCarousel,
	ScreenCreateAccount,
	ScreenBirthDate,
	ScreenBirthTime,
	ScreenBirthPlace,
	ScreenGender,
	ScreenRelationship,
	ScreenIntention,
	ScreenEmotionalNature,
	ScreenCurrentFocus,
	ScreenChallenges,
	ScreenArchetype,
	ScreenLoveFocus,
	ScreenCareerFocus,
	ScreenBuilding,
	ScreenReady,
}

// Main intention values that drive the focus-screen branching.
const (
	IntentionLove   = "Love & connection"
	IntentionCareer = "Career & purpose"
	IntentionMix    = "A mix of everything"
)

// OnboardingAnswers holds one value per onboarding question. Re-answering a
// question overwrites the previous value, no history is kept.
type OnboardingAnswers struct {
	BirthDate          *string  `json:"birth_date" db:"birth_date"`
	BirthTime          *string  `json:"birth_time" db:"birth_time"`
	BirthPlace         *string  `json:"birth_place" db:"birth_place"`
	Gender             *string  `json:"gender" db:"gender"`
	RelationshipStatus *string  `json:"relationship_status" db:"relationship_status"`
	MainIntention      *string  `json:"main_intention" db:"main_intention"`
	EmotionalNature    []string `json:"emotional_nature" db:"emotional_nature"`
	CurrentFocus       *string  `json:"current_focus" db:"current_focus"`
	Challenges         []string `json:"challenges" db:"challenges"`
	Archetype          *string  `json:"archetype" db:"archetype"`
	LoveFocus          *string  `json:"love_focus" db:"love_focus"`
	CareerFocus        *string  `json:"career_focus" db:"career_focus"`
}

// OnboardingState is one user's position in the flow plus the collected answers.
type OnboardingState struct {
	UserID        string            `json:"user_id" db:"user_id"`
	CurrentScreen ScreenID          `json:"current_screen" db:"current_screen"`
	Answers       OnboardingAnswers `json:"answers"`
	CompletedAt   *time.Time        `json:"completed_at" db:"completed_at"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// nextLinear maps every screen with a fixed successor. The two branch points
// (archetype, loveFocus) are resolved in NextScreen instead.
var nextLinear = map[ScreenID]ScreenID{
	ScreenWelcome:         ScreenValueCarousel,
	ScreenValueCarousel:   ScreenCreateAccount,
	ScreenCreateAccount:   ScreenBirthDate,
	ScreenBirthDate:       ScreenBirthTime,
	ScreenBirthTime:       ScreenBirthPlace,
	ScreenBirthPlace:      ScreenGender,
	ScreenGender:          ScreenRelationship,
	ScreenRelationship:    ScreenIntention,
	ScreenIntention:       ScreenEmotionalNature,
	ScreenEmotionalNature: ScreenCurrentFocus,
	ScreenCurrentFocus:    ScreenChallenges,
	ScreenChallenges:      ScreenArchetype,
	ScreenCareerFocus:     ScreenBuilding,
	ScreenBuilding:        ScreenReady,
}

// prevLinear inverts nextLinear for every screen with a single possible
// predecessor. careerFocus and building have branching predecessors and are
// resolved in PreviousScreen.
var prevLinear = map[ScreenID]ScreenID{
	ScreenValueCarousel:   ScreenWelcome,
	ScreenCreateAccount:   ScreenValueCarousel,
	ScreenBirthDate:       ScreenCreateAccount,
	ScreenBirthTime:       ScreenBirthDate,
	ScreenBirthPlace:      ScreenBirthTime,
	ScreenGender:          ScreenBirthPlace,
	ScreenRelationship:    ScreenGender,
	ScreenIntention:       ScreenRelationship,
	ScreenEmotionalNature: ScreenIntention,
	ScreenCurrentFocus:    ScreenEmotionalNature,
	ScreenChallenges:      ScreenCurrentFocus,
	ScreenArchetype:       ScreenChallenges,
	ScreenLoveFocus:       ScreenArchetype,
	ScreenReady:           ScreenBuilding,
}

// NextScreen computes the forward transition for the given screen and answers.
// It is a pure function: no counters, no hidden state. Advancing from the
// terminal screen is a caller bug and returns ErrFlowAlreadyComplete.
func NextScreen(current ScreenID, answers *OnboardingAnswers) (ScreenID, error) {
	switch current {
	case ScreenReady:
		return "", ErrFlowAlreadyComplete
	case ScreenArchetype:
		return nextAfterArchetype(answers), nil
	case ScreenLoveFocus:
		return nextAfterLoveFocus(answers), nil
	}
	next, ok := nextLinear[current]
	if !ok {
		return "", ErrUnknownScreen
	}
	return next, nil
}

// PreviousScreen computes the exact left-inverse of the forward branching.
// Back on the first screen is a no-op and returns welcome unchanged.
func PreviousScreen(current ScreenID, answers *OnboardingAnswers) (ScreenID, error) {
	switch current {
	case ScreenWelcome:
		return ScreenWelcome, nil
	case ScreenCareerFocus:
		if answers.LoveFocus != nil {
			return ScreenLoveFocus, nil
		}
		return ScreenArchetype, nil
	case ScreenBuilding:
		return prevBeforeBuilding(answers), nil
	}
	prev, ok := prevLinear[current]
	if !ok {
		return "", ErrUnknownScreen
	}
	return prev, nil
}

func nextAfterArchetype(answers *OnboardingAnswers) ScreenID {
	switch intention(answers) {
	case IntentionLove:
		return ScreenLoveFocus
	case IntentionCareer:
		return ScreenCareerFocus
	case IntentionMix:
		return ScreenLoveFocus
	default:
		return ScreenBuilding
	}
}

func nextAfterLoveFocus(answers *OnboardingAnswers) ScreenID {
	if intention(answers) == IntentionMix && answers.CareerFocus == nil {
		return ScreenCareerFocus
	}
	return ScreenBuilding
}

// prevBeforeBuilding mirrors the forward branch taken to reach building.
func prevBeforeBuilding(answers *OnboardingAnswers) ScreenID {
	switch intention(answers) {
	case IntentionLove:
		return ScreenLoveFocus
	case IntentionCareer:
		return ScreenCareerFocus
	case IntentionMix:
		if answers.CareerFocus != nil {
			return ScreenCareerFocus
		}
		return ScreenLoveFocus
	default:
		return ScreenArchetype
	}
}

func intention(answers *OnboardingAnswers) string {
	if answers == nil || answers.MainIntention == nil {
		return ""
	}
	return *answers.MainIntention
}

// ScreenIndex returns the position of the screen in the default order, or -1.
func ScreenIndex(screen ScreenID) int {
	for i, s := range ScreenOrder {
		if s == screen {
			return i
		}
	}
	return -1
}

// Progress reports the screen's position in [0,1] for the progress bar.
func Progress(current ScreenID) float64 {
	idx := ScreenIndex(current)
	if idx < 0 {
		return 0
	}
	return float64(idx) / float64(len(ScreenOrder)-1)
}

// CompiledProfile flattens the answers into the snapshot handed to the
// profile service when the flow completes.
func (a *OnboardingAnswers) CompiledProfile() map[string]interface{} {
	return map[string]interface{}{
		"birthDate":          deref(a.BirthDate),
		"birthTime":          deref(a.BirthTime),
		"birthPlace":         deref(a.BirthPlace),
		"gender":             deref(a.Gender),
		"relationshipStatus": deref(a.RelationshipStatus),
		"mainIntention":      deref(a.MainIntention),
		"emotionalNature":    a.EmotionalNature,
		"currentFocus":       deref(a.CurrentFocus),
		"challenges":         a.Challenges,
		"archetype":          deref(a.Archetype),
		"loveFocus":          deref(a.LoveFocus),
		"careerFocus":        deref(a.CareerFocus),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
