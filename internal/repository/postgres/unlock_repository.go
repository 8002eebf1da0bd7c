package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type unlockRepository struct {
	db *sqlx.DB
}

func NewUnlockRepository(db *sqlx.DB) repository.UnlockRepository {
	return &unlockRepository{db: db}
}

func (r *unlockRepository) Create(ctx context.Context, record *domain.UnlockRecord) error {
	query := `
		INSERT INTO unlock_records (id, user_id, content_id, content_type, permanent, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query,
		record.ID, record.UserID, record.ContentID, string(record.ContentType),
		record.Permanent, record.ExpiresAt,
	).Scan(&record.CreatedAt)
}

func (r *unlockRepository) GetByContent(ctx context.Context, userID, contentID string, contentType domain.ContentType) (*domain.UnlockRecord, error) {
	var record domain.UnlockRecord
	query := `
		SELECT * FROM unlock_records
		WHERE user_id = $1 AND content_id = $2 AND content_type = $3
		ORDER BY permanent DESC, created_at DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &record, query, userID, contentID, string(contentType))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *unlockRepository) GetByUser(ctx context.Context, userID string) ([]*domain.UnlockRecord, error) {
	var records []*domain.UnlockRecord
	query := `
		SELECT * FROM unlock_records
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &records, query, userID)
	return records, err
}
