package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/warriorcenter/cms-api/internal/core/domain"
	"github.com/warriorcenter/cms-api/internal/core/ports"
)

type sermonRepository struct {
	db *sql.DB
}

func NewSermonRepository(db *sql.DB) ports.SermonRepository {
	return &sermonRepository{db: db}
}

func (r *sermonRepository) Create(ctx context.Context, sermon *domain.Sermon) error {
	query := `
		INSERT INTO sermons (title, scripture, speaker, date, mp3_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, sermon.Title, sermon.Scripture, sermon.Speaker, sermon.Date, sermon.MP3URL).
		Scan(&sermon.ID, &sermon.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert sermon: %w", err)
	}
	return nil
}

func (r *sermonRepository) Update(ctx context.Context, sermon *domain.Sermon) error {
	query := `
		UPDATE sermons
		SET title = $2, scripture = $3, speaker = $4, date = $5, mp3_url = $6
		WHERE id = $1
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, sermon.ID, sermon.Title, sermon.Scripture, sermon.Speaker, sermon.Date, sermon.MP3URL).
		Scan(&sermon.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSermonNotFound
		}
		return fmt.Errorf("failed to update sermon: %w", err)
	}
	return nil
}

func (r *sermonRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sermons WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sermon: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}

func (r *sermonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sermon, error) {
	query := `SELECT id, title, scripture, speaker, date, mp3_url, created_at FROM sermons WHERE id = $1`
	var sermon domain.Sermon
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&sermon.ID, &sermon.Title, &sermon.Scripture, &sermon.Speaker, &sermon.Date, &sermon.MP3URL, &sermon.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSermonNotFound
		}
		return nil, fmt.Errorf("failed to get sermon: %w", err)
	}
	return &sermon, nil
}

func (r *sermonRepository) List(ctx context.Context) ([]*domain.Sermon, error) {
	query := `
		SELECT id, title, scripture, speaker, date, mp3_url, created_at
		FROM sermons
		ORDER BY date DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sermons: %w", err)
	}
	defer rows.Close()

	return scanSermons(rows)
}

func (r *sermonRepository) ListLimited(ctx context.Context, limit int) ([]*domain.Sermon, error) {
	query := `
		SELECT id, title, scripture, speaker, date, mp3_url, created_at
		FROM sermons
		ORDER BY date DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sermons: %w", err)
	}
	defer rows.Close()

	return scanSermons(rows)
}

func (r *sermonRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sermons`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sermons: %w", err)
	}
	return count, nil
}

func scanSermons(rows *sql.Rows) ([]*domain.Sermon, error) {
	var sermons []*domain.Sermon
	for rows.Next() {
		var sermon domain.Sermon
		if err := rows.Scan(&sermon.ID, &sermon.Title, &sermon.Scripture, &sermon.Speaker, &sermon.Date, &sermon.MP3URL, &sermon.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sermon: %w", err)
		}
		sermons = append(sermons, &sermon)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sermons: %w", err)
	}
	return sermons, nil
}
