package ports

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/warriorcenter/cms-api/internal/core/domain"
)

type SermonRepository interface {
	Create(ctx context.Context, sermon *domain.Sermon) error
	Update(ctx context.Context, sermon *domain.Sermon) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sermon, error)
	List(ctx context.Context) ([]*domain.Sermon, error)
	ListLimited(ctx context.Context, limit int) ([]*domain.Sermon, error)
	Count(ctx context.Context) (int, error)
}

type CreateSermonInput struct {
	Title     string
	Scripture string
	Speaker   string
	Date      time.Time
	FileName  string
	BaseURL   string
}

type UpdateSermonInput struct {
	Title     string
	Scripture string
	Speaker   string
	Date      time.Time
	MP3URL    string
}

type SermonService interface {
	Create(ctx context.Context, input CreateSermonInput, mp3 io.Reader) (*domain.Sermon, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSermonInput) (*domain.Sermon, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Sermon, error)
	List(ctx context.Context) ([]*domain.Sermon, error)
	ListLimited(ctx context.Context, limit int) ([]*domain.Sermon, error)
}
