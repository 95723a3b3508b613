package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/warriorcenter/cms-api/internal/core/domain"
	"github.com/warriorcenter/cms-api/internal/core/ports"
	"github.com/warriorcenter/cms-api/internal/logger"
)

type sermonService struct {
	repo   ports.SermonRepository
	media  ports.MediaStore
	logger *logger.Logger
}

func NewSermonService(repo ports.SermonRepository, media ports.MediaStore, logger *logger.Logger) ports.SermonService {
	return &sermonService{
		repo:   repo,
		media:  media,
		logger: logger,
	}
}

// Create stores the uploaded audio and the sermon record as a two-phase
// operation: the file is staged first, the record inserted, and the file
// committed only once the insert succeeds.
func (s *sermonService) Create(ctx context.Context, input ports.CreateSermonInput, mp3 io.Reader) (*domain.Sermon, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxSermons {
		return nil, domain.ErrSermonLimit
	}

	if err := s.media.Stage(input.FileName, mp3); err != nil {
		return nil, err
	}

	sermon := &domain.Sermon{
		Title:     input.Title,
		Scripture: input.Scripture,
		Speaker:   input.Speaker,
		Date:      input.Date,
		MP3URL:    input.BaseURL + "/mp3/" + input.FileName,
	}

	if err := s.repo.Create(ctx, sermon); err != nil {
		if derr := s.media.Discard(input.FileName); derr != nil {
			s.logger.Error("failed to discard staged upload", "file", input.FileName, "error", derr.Error())
		}
		return nil, err
	}

	if err := s.media.Commit(input.FileName); err != nil {
		return nil, fmt.Errorf("sermon %s created but upload not published: %w", sermon.ID, err)
	}

	return sermon, nil
}

func (s *sermonService) Update(ctx context.Context, id uuid.UUID, input ports.UpdateSermonInput) (*domain.Sermon, error) {
	sermon := &domain.Sermon{
		ID:        id,
		Title:     input.Title,
		Scripture: input.Scripture,
		Speaker:   input.Speaker,
		Date:      input.Date,
		MP3URL:    input.MP3URL,
	}
	if err := s.repo.Update(ctx, sermon); err != nil {
		return nil, err
	}
	return sermon, nil
}

// Delete removes the backing audio file before the record. A file that
// cannot be accessed or removed aborts the delete and keeps the record.
func (s *sermonService) Delete(ctx context.Context, id uuid.UUID) error {
	sermon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.media.Remove(path.Base(sermon.MP3URL)); err != nil {
		return err
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

func (s *sermonService) Get(ctx context.Context, id uuid.UUID) (*domain.Sermon, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *sermonService) List(ctx context.Context) ([]*domain.Sermon, error) {
	return s.repo.List(ctx)
}

func (s *sermonService) ListLimited(ctx context.Context, limit int) ([]*domain.Sermon, error) {
	return s.repo.ListLimited(ctx, limit)
}
