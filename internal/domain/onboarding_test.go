package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func walkForward(t *testing.T, answers *OnboardingAnswers) []ScreenID {
	t.Helper()
	visited := []ScreenID{ScreenWelcome}
	current := ScreenWelcome
	for current != ScreenReady {
		next, err := NextScreen(current, answers)
		require.NoError(t, err, "advancing from %s", current)
		current = next
		visited = append(visited, current)
		require.LessOrEqual(t, len(visited), len(ScreenOrder), "flow must not loop")
	}
	return visited
}

func TestNextScreenLinearPath(t *testing.T) {
	// No intention answered: archetype goes straight to building.
	answers := &OnboardingAnswers{}
	visited := walkForward(t, answers)

	assert.NotContains(t, visited, ScreenLoveFocus)
	assert.NotContains(t, visited, ScreenCareerFocus)
	assert.Equal(t, ScreenReady, visited[len(visited)-1])
}

func TestNextScreenBranching(t *testing.T) {
	tests := []struct {
		name        string
		intention   string
		wantLove    bool
		wantCareer  bool
		screenCount int
	}{
		{"love intention", IntentionLove, true, false, 16},
		{"career intention", IntentionCareer, false, true, 16},
		{"mix intention", IntentionMix, true, true, 17},
		{"unrecognized intention", "Something else", false, false, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := &OnboardingAnswers{MainIntention: strPtr(tt.intention)}
			visited := walkForward(t, answers)

			assert.Equal(t, tt.wantLove, contains(visited, ScreenLoveFocus))
			assert.Equal(t, tt.wantCareer, contains(visited, ScreenCareerFocus))
			assert.Len(t, visited, tt.screenCount)
		})
	}
}

func contains(screens []ScreenID, want ScreenID) bool {
	for _, s := range screens {
		if s == want {
			return true
		}
	}
	return false
}

func TestNextScreenMixVisitsBothFocusScreens(t *testing.T) {
	answers := &OnboardingAnswers{MainIntention: strPtr(IntentionMix)}

	next, err := NextScreen(ScreenArchetype, answers)
	require.NoError(t, err)
	assert.Equal(t, ScreenLoveFocus, next)

	// Career focus not yet answered: loveFocus continues to careerFocus.
	next, err = NextScreen(ScreenLoveFocus, answers)
	require.NoError(t, err)
	assert.Equal(t, ScreenCareerFocus, next)

	// Once careerFocus is answered, loveFocus skips ahead to building.
	answers.CareerFocus = strPtr("Growth")
	next, err = NextScreen(ScreenLoveFocus, answers)
	require.NoError(t, err)
	assert.Equal(t, ScreenBuilding, next)
}

func TestNextScreenFromReady(t *testing.T) {
	_, err := NextScreen(ScreenReady, &OnboardingAnswers{})
	assert.ErrorIs(t, err, ErrFlowAlreadyComplete)
}

func TestNextScreenUnknown(t *testing.T) {
	_, err := NextScreen(ScreenID("bogus"), &OnboardingAnswers{})
	assert.ErrorIs(t, err, ErrUnknownScreen)
}

func TestPreviousScreenWelcomeIsNoOp(t *testing.T) {
	prev, err := PreviousScreen(ScreenWelcome, &OnboardingAnswers{})
	require.NoError(t, err)
	assert.Equal(t, ScreenWelcome, prev)
}

func TestPreviousScreenCareerFocus(t *testing.T) {
	// Love focus answered (mix path): back returns to loveFocus.
	withLove := &OnboardingAnswers{
		MainIntention: strPtr(IntentionMix),
		LoveFocus:     strPtr("Deeper connection"),
	}
	prev, err := PreviousScreen(ScreenCareerFocus, withLove)
	require.NoError(t, err)
	assert.Equal(t, ScreenLoveFocus, prev)

	// Career-only path: loveFocus was never shown, back returns to archetype.
	careerOnly := &OnboardingAnswers{MainIntention: strPtr(IntentionCareer)}
	prev, err = PreviousScreen(ScreenCareerFocus, careerOnly)
	require.NoError(t, err)
	assert.Equal(t, ScreenArchetype, prev)
}

func TestPreviousScreenBuilding(t *testing.T) {
	tests := []struct {
		name    string
		answers *OnboardingAnswers
		want    ScreenID
	}{
		{
			"love path",
			&OnboardingAnswers{MainIntention: strPtr(IntentionLove)},
			ScreenLoveFocus,
		},
		{
			"career path",
			&OnboardingAnswers{MainIntention: strPtr(IntentionCareer)},
			ScreenCareerFocus,
		},
		{
			"mix path with career focus answered",
			&OnboardingAnswers{MainIntention: strPtr(IntentionMix), CareerFocus: strPtr("Growth")},
			ScreenCareerFocus,
		},
		{
			"mix path without career focus",
			&OnboardingAnswers{MainIntention: strPtr(IntentionMix)},
			ScreenLoveFocus,
		},
		{
			"no intention",
			&OnboardingAnswers{},
			ScreenArchetype,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, err := PreviousScreen(ScreenBuilding, tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, prev)
		})
	}
}

func TestBackIsLeftInverseOfForward(t *testing.T) {
	// For every reachable screen on every intention path, going forward then
	// back must land on the screen we started from.
	intentions := []*string{
		nil,
		strPtr(IntentionLove),
		strPtr(IntentionCareer),
		strPtr(IntentionMix),
		strPtr("Something else"),
	}

	for _, intention := range intentions {
		answers := &OnboardingAnswers{MainIntention: intention}
		current := ScreenWelcome
		for current != ScreenReady {
			next, err := NextScreen(current, answers)
			require.NoError(t, err)

			// Answering the focus screens as the user would while walking.
			switch next {
			case ScreenLoveFocus:
				answers.LoveFocus = strPtr("answered")
			case ScreenCareerFocus:
				answers.CareerFocus = strPtr("answered")
			}

			back, err := PreviousScreen(next, answers)
			require.NoError(t, err)
			assert.Equal(t, current, back, "forward %s -> %s must invert", current, next)
			current = next
		}
	}
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(ScreenWelcome))
	assert.Equal(t, 1.0, Progress(ScreenReady))
	assert.Equal(t, 0.0, Progress(ScreenID("bogus")))

	// Strictly increasing along the default order.
	for i := 1; i < len(ScreenOrder); i++ {
		assert.Greater(t, Progress(ScreenOrder[i]), Progress(ScreenOrder[i-1]))
	}
}

func TestCompiledProfile(t *testing.T) {
	answers := &OnboardingAnswers{
		BirthDate:       strPtr("1994-03-12"),
		MainIntention:   strPtr(IntentionLove),
		EmotionalNature: []string{"Intuitive", "Empathic"},
	}

	profile := answers.CompiledProfile()
	assert.Equal(t, "1994-03-12", profile["birthDate"])
	assert.Equal(t, IntentionLove, profile["mainIntention"])
	assert.Equal(t, []string{"Intuitive", "Empathic"}, profile["emotionalNature"])
	// Unanswered questions flatten to empty strings, not nils.
	assert.Equal(t, "", profile["careerFocus"])
}
