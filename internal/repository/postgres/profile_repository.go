package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

type profileRow struct {
	ID                   int            `db:"id"`
	UserID               string         `db:"user_id"`
	BirthDate            *string        `db:"birth_date"`
	BirthTime            *string        `db:"birth_time"`
	BirthPlace           *string        `db:"birth_place"`
	Gender               *string        `db:"gender"`
	RelationshipStatus   *string        `db:"relationship_status"`
	MainIntention        *string        `db:"main_intention"`
	EmotionalNature      pq.StringArray `db:"emotional_nature"`
	CurrentFocus         *string        `db:"current_focus"`
	Challenges           pq.StringArray `db:"challenges"`
	Archetype            *string        `db:"archetype"`
	LoveFocus            *string        `db:"love_focus"`
	CareerFocus          *string        `db:"career_focus"`
	Blueprint            *string        `db:"blueprint"`
	IsOnboardingComplete bool           `db:"is_onboarding_complete"`
	CompletedAt          *time.Time     `db:"completed_at"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

func (row *profileRow) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:                   row.ID,
		UserID:               row.UserID,
		BirthDate:            row.BirthDate,
		BirthTime:            row.BirthTime,
		BirthPlace:           row.BirthPlace,
		Gender:               row.Gender,
		RelationshipStatus:   row.RelationshipStatus,
		MainIntention:        row.MainIntention,
		EmotionalNature:      row.EmotionalNature,
		CurrentFocus:         row.CurrentFocus,
		Challenges:           row.Challenges,
		Archetype:            row.Archetype,
		LoveFocus:            row.LoveFocus,
		CareerFocus:          row.CareerFocus,
		Blueprint:            row.Blueprint,
		IsOnboardingComplete: row.IsOnboardingComplete,
		CompletedAt:          row.CompletedAt,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, birth_date, birth_time, birth_place, gender,
			relationship_status, main_intention, emotional_nature, current_focus,
			challenges, archetype, love_focus, career_focus, blueprint,
			is_onboarding_complete, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		profile.UserID, profile.BirthDate, profile.BirthTime, profile.BirthPlace,
		profile.Gender, profile.RelationshipStatus, profile.MainIntention,
		textArray(profile.EmotionalNature), profile.CurrentFocus,
		textArray(profile.Challenges), profile.Archetype, profile.LoveFocus,
		profile.CareerFocus, profile.Blueprint, profile.IsOnboardingComplete,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var row profileRow
	query := `SELECT * FROM profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &row, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}
