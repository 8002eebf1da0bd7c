package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"time"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// textArray encodes a string slice for a NOT NULL text[] column. pq encodes a
// nil slice as SQL NULL, so nil normalizes to the empty array first.
func textArray(ss []string) driver.Valuer {
	if ss == nil {
		ss = []string{}
	}
	return pq.Array(ss)
}

type onboardingRepository struct {
	db *sqlx.DB
}

func NewOnboardingRepository(db *sqlx.DB) repository.OnboardingRepository {
	return &onboardingRepository{db: db}
}

// onboardingRow flattens OnboardingState for sqlx scanning.
type onboardingRow struct {
	UserID             string         `db:"user_id"`
	CurrentScreen      string         `db:"current_screen"`
	BirthDate          *string        `db:"birth_date"`
	BirthTime          *string        `db:"birth_time"`
	BirthPlace         *string        `db:"birth_place"`
	Gender             *string        `db:"gender"`
	RelationshipStatus *string        `db:"relationship_status"`
	MainIntention      *string        `db:"main_intention"`
	EmotionalNature    pq.StringArray `db:"emotional_nature"`
	CurrentFocus       *string        `db:"current_focus"`
	Challenges         pq.StringArray `db:"challenges"`
	Archetype          *string        `db:"archetype"`
	LoveFocus          *string        `db:"love_focus"`
	CareerFocus        *string        `db:"career_focus"`
	CompletedAt        *time.Time     `db:"completed_at"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

func (row *onboardingRow) toDomain() *domain.OnboardingState {
	return &domain.OnboardingState{
		UserID:        row.UserID,
		CurrentScreen: domain.ScreenID(row.CurrentScreen),
		Answers: domain.OnboardingAnswers{
			BirthDate:          row.BirthDate,
			BirthTime:          row.BirthTime,
			BirthPlace:         row.BirthPlace,
			Gender:             row.Gender,
			RelationshipStatus: row.RelationshipStatus,
			MainIntention:      row.MainIntention,
			EmotionalNature:    row.EmotionalNature,
			CurrentFocus:       row.CurrentFocus,
			Challenges:         row.Challenges,
			Archetype:          row.Archetype,
			LoveFocus:          row.LoveFocus,
			CareerFocus:        row.CareerFocus,
		},
		CompletedAt: row.CompletedAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (r *onboardingRepository) Create(ctx context.Context, state *domain.OnboardingState) error {
	query := `
		INSERT INTO onboarding_states (user_id, current_screen, emotional_nature, challenges)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		state.UserID,
		string(state.CurrentScreen),
		textArray(state.Answers.EmotionalNature),
		textArray(state.Answers.Challenges),
	).Scan(&state.CreatedAt, &state.UpdatedAt)
}

func (r *onboardingRepository) GetByUserID(ctx context.Context, userID string) (*domain.OnboardingState, error) {
	var row onboardingRow
	query := `SELECT * FROM onboarding_states WHERE user_id = $1`
	err := r.db.GetContext(ctx, &row, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOnboardingNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *onboardingRepository) Update(ctx context.Context, state *domain.OnboardingState) error {
	query := `
		UPDATE onboarding_states SET
			current_screen = $1,
			birth_date = $2,
			birth_time = $3,
			birth_place = $4,
			gender = $5,
			relationship_status = $6,
			main_intention = $7,
			emotional_nature = $8,
			current_focus = $9,
			challenges = $10,
			archetype = $11,
			love_focus = $12,
			career_focus = $13,
			updated_at = NOW()
		WHERE user_id = $14
	`
	a := &state.Answers
	result, err := r.db.ExecContext(ctx, query,
		string(state.CurrentScreen),
		a.BirthDate, a.BirthTime, a.BirthPlace, a.Gender, a.RelationshipStatus,
		a.MainIntention, textArray(a.EmotionalNature), a.CurrentFocus,
		textArray(a.Challenges), a.Archetype, a.LoveFocus, a.CareerFocus,
		state.UserID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrOnboardingNotFound
	}
	return nil
}

func (r *onboardingRepository) MarkCompleted(ctx context.Context, userID string) error {
	query := `UPDATE onboarding_states SET completed_at = NOW(), updated_at = NOW() WHERE user_id = $1`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrOnboardingNotFound
	}
	return nil
}
