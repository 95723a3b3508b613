package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/warriorcenter/cms-api/internal/core/domain"
)

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListUpcoming(ctx context.Context, after time.Time, limit int) ([]*domain.Event, error)
}

type EventInput struct {
	Name    string
	Details string
	Address string
	Date    time.Time
	Time    string
}

type EventService interface {
	Create(ctx context.Context, input EventInput) (*domain.Event, error)
	Update(ctx context.Context, id uuid.UUID, input EventInput) (*domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListUpcoming(ctx context.Context, limit int) ([]*domain.Event, error)
}
