package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/warriorcenter/cms-api/internal/core/domain"
	"github.com/warriorcenter/cms-api/internal/core/ports"
)

type eventService struct {
	repo ports.EventRepository
	now  func() time.Time
}

func NewEventService(repo ports.EventRepository) ports.EventService {
	return &eventService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *eventService) Create(ctx context.Context, input ports.EventInput) (*domain.Event, error) {
	event := &domain.Event{
		Name:    input.Name,
		Details: input.Details,
		Address: input.Address,
		Date:    input.Date,
		Time:    input.Time,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, input ports.EventInput) (*domain.Event, error) {
	event := &domain.Event{
		ID:      id,
		Name:    input.Name,
		Details: input.Details,
		Address: input.Address,
		Date:    input.Date,
		Time:    input.Time,
	}
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete is idempotent: deleting a missing event reports zero rows removed.
func (s *eventService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.repo.Delete(ctx, id)
}

// DeleteExpired removes every event dated now or earlier.
func (s *eventService) DeleteExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, s.now())
}

func (s *eventService) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// ListUpcoming returns only future-dated events, soonest first.
func (s *eventService) ListUpcoming(ctx context.Context, limit int) ([]*domain.Event, error) {
	return s.repo.ListUpcoming(ctx, s.now(), limit)
}
