package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warriorcenter/cms-api/internal/core/domain"
	"github.com/warriorcenter/cms-api/internal/core/ports"
	"github.com/warriorcenter/cms-api/internal/logger"
)

type fakeSermonRepo struct {
	sermons   map[uuid.UUID]*domain.Sermon
	createErr error
	deleted   []uuid.UUID
}

func newFakeSermonRepo() *fakeSermonRepo {
	return &fakeSermonRepo{sermons: make(map[uuid.UUID]*domain.Sermon)}
}

func (r *fakeSermonRepo) Create(ctx context.Context, sermon *domain.Sermon) error {
	if r.createErr != nil {
		return r.createErr
	}
	sermon.ID = uuid.New()
	stored := *sermon
	r.sermons[sermon.ID] = &stored
	return nil
}

func (r *fakeSermonRepo) Update(ctx context.Context, sermon *domain.Sermon) error {
	if _, ok := r.sermons[sermon.ID]; !ok {
		return domain.ErrSermonNotFound
	}
	stored := *sermon
	r.sermons[sermon.ID] = &stored
	return nil
}

func (r *fakeSermonRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.sermons[id]; !ok {
		return 0, nil
	}
	delete(r.sermons, id)
	r.deleted = append(r.deleted, id)
	return 1, nil
}

func (r *fakeSermonRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sermon, error) {
	s, ok := r.sermons[id]
	if !ok {
		return nil, domain.ErrSermonNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSermonRepo) List(ctx context.Context) ([]*domain.Sermon, error) {
	out := make([]*domain.Sermon, 0, len(r.sermons))
	for _, s := range r.sermons {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeSermonRepo) ListLimited(ctx context.Context, limit int) ([]*domain.Sermon, error) {
	all, _ := r.List(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeSermonRepo) Count(ctx context.Context) (int, error) {
	return len(r.sermons), nil
}

type fakeMediaStore struct {
	staged    []string
	committed []string
	discarded []string
	removed   []string
	removeErr error
}

func (m *fakeMediaStore) Stage(name string, r io.Reader) error {
	m.staged = append(m.staged, name)
	return nil
}

func (m *fakeMediaStore) Commit(name string) error {
	m.committed = append(m.committed, name)
	return nil
}

func (m *fakeMediaStore) Discard(name string) error {
	m.discarded = append(m.discarded, name)
	return nil
}

func (m *fakeMediaStore) Remove(name string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, name)
	return nil
}

func sermonInput(fileName string) ports.CreateSermonInput {
	return ports.CreateSermonInput{
		Title:     "Walking in Grace",
		Scripture: "Ephesians 2:8-9",
		Speaker:   "Pastor John",
		Date:      time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		FileName:  fileName,
		BaseURL:   "http://localhost:3000",
	}
}

func seedSermons(repo *fakeSermonRepo, n int) {
	for i := 0; i < n; i++ {
		id := uuid.New()
		repo.sermons[id] = &domain.Sermon{ID: id, Title: "seed"}
	}
}

func TestCreateSermon(t *testing.T) {
	repo := newFakeSermonRepo()
	media := &fakeMediaStore{}
	svc := NewSermonService(repo, media, logger.New(0))

	sermon, err := svc.Create(context.Background(), sermonInput("walking-in-grace.mp3"), strings.NewReader("audio"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/mp3/walking-in-grace.mp3", sermon.MP3URL)
	assert.Equal(t, []string{"walking-in-grace.mp3"}, media.staged)
	assert.Equal(t, []string{"walking-in-grace.mp3"}, media.committed)
	assert.Empty(t, media.discarded)
	assert.Len(t, repo.sermons, 1)
}

func TestCreateSermonAtLimit(t *testing.T) {
	repo := newFakeSermonRepo()
	seedSermons(repo, domain.MaxSermons)
	media := &fakeMediaStore{}
	svc := NewSermonService(repo, media, logger.New(0))

	_, err := svc.Create(context.Background(), sermonInput("one-too-many.mp3"), strings.NewReader("audio"))
	require.ErrorIs(t, err, domain.ErrSermonLimit)
	assert.Empty(t, media.staged, "nothing should be written once the limit is hit")
}

func TestCreateSermonJustBelowLimit(t *testing.T) {
	repo := newFakeSermonRepo()
	seedSermons(repo, domain.MaxSermons-1)
	svc := NewSermonService(repo, &fakeMediaStore{}, logger.New(0))

	_, err := svc.Create(context.Background(), sermonInput("last-slot.mp3"), strings.NewReader("audio"))
	require.NoError(t, err)
	assert.Len(t, repo.sermons, domain.MaxSermons)
}

func TestCreateSermonDiscardsOnInsertFailure(t *testing.T) {
	repo := newFakeSermonRepo()
	repo.createErr = errors.New("insert failed")
	media := &fakeMediaStore{}
	svc := NewSermonService(repo, media, logger.New(0))

	_, err := svc.Create(context.Background(), sermonInput("doomed.mp3"), strings.NewReader("audio"))
	require.Error(t, err)

	assert.Equal(t, []string{"doomed.mp3"}, media.staged)
	assert.Equal(t, []string{"doomed.mp3"}, media.discarded)
	assert.Empty(t, media.committed)
}

func TestDeleteSermonRemovesFileThenRecord(t *testing.T) {
	repo := newFakeSermonRepo()
	media := &fakeMediaStore{}
	svc := NewSermonService(repo, media, logger.New(0))

	sermon, err := svc.Create(context.Background(), sermonInput("to-delete.mp3"), strings.NewReader("audio"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), sermon.ID))
	assert.Equal(t, []string{"to-delete.mp3"}, media.removed)
	assert.Empty(t, repo.sermons)
}

func TestDeleteSermonKeepsRecordWhenFileRemovalFails(t *testing.T) {
	repo := newFakeSermonRepo()
	media := &fakeMediaStore{}
	svc := NewSermonService(repo, media, logger.New(0))

	sermon, err := svc.Create(context.Background(), sermonInput("stuck.mp3"), strings.NewReader("audio"))
	require.NoError(t, err)

	media.removeErr = errors.New("file missing")
	require.Error(t, svc.Delete(context.Background(), sermon.ID))

	// The record survives so the inconsistency stays visible.
	assert.Len(t, repo.sermons, 1)
	assert.Empty(t, repo.deleted)
}

func TestDeleteSermonNotFound(t *testing.T) {
	svc := NewSermonService(newFakeSermonRepo(), &fakeMediaStore{}, logger.New(0))

	err := svc.Delete(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrSermonNotFound)
}

func TestUpdateSermonNotFound(t *testing.T) {
	svc := NewSermonService(newFakeSermonRepo(), &fakeMediaStore{}, logger.New(0))

	_, err := svc.Update(context.Background(), uuid.New(), ports.UpdateSermonInput{Title: "x"})
	require.ErrorIs(t, err, domain.ErrSermonNotFound)
}
