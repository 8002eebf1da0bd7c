package domain

import "time"

// Profile is the durable user profile created when onboarding completes.
type Profile struct {
	ID                   int        `json:"id" db:"id"`
	UserID               string     `json:"user_id" db:"user_id"`
	BirthDate            *string    `json:"birth_date" db:"birth_date"`
	BirthTime            *string    `json:"birth_time" db:"birth_time"`
	BirthPlace           *string    `json:"birth_place" db:"birth_place"`
	Gender               *string    `json:"gender" db:"gender"`
	RelationshipStatus   *string    `json:"relationship_status" db:"relationship_status"`
	MainIntention        *string    `json:"main_intention" db:"main_intention"`
	EmotionalNature      []string   `json:"emotional_nature" db:"emotional_nature"`
	CurrentFocus         *string    `json:"current_focus" db:"current_focus"`
	Challenges           []string   `json:"challenges" db:"challenges"`
	Archetype            *string    `json:"archetype" db:"archetype"`
	LoveFocus            *string    `json:"love_focus" db:"love_focus"`
	CareerFocus          *string    `json:"career_focus" db:"career_focus"`
	Blueprint            *string    `json:"blueprint" db:"blueprint"`
	IsOnboardingComplete bool       `json:"is_onboarding_complete" db:"is_onboarding_complete"`
	CompletedAt          *time.Time `json:"completed_at" db:"completed_at"`
	CreatedAt            time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at" db:"updated_at"`
}

// NewProfileFromAnswers builds the profile snapshot persisted at the end of
// the onboarding flow.
func NewProfileFromAnswers(userID string, answers *OnboardingAnswers) *Profile {
	return &Profile{
		UserID:               userID,
		BirthDate:            answers.BirthDate,
		BirthTime:            answers.BirthTime,
		BirthPlace:           answers.BirthPlace,
		Gender:               answers.Gender,
		RelationshipStatus:   answers.RelationshipStatus,
		MainIntention:        answers.MainIntention,
		EmotionalNature:      answers.EmotionalNature,
		CurrentFocus:         answers.CurrentFocus,
		Challenges:           answers.Challenges,
		Archetype:            answers.Archetype,
		LoveFocus:            answers.LoveFocus,
		CareerFocus:          answers.CareerFocus,
		IsOnboardingComplete: true,
	}
}
