package disk

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/warriorcenter/cms-api/internal/core/ports"
)

const stagingSuffix = ".upload"

// Store keeps uploaded audio files in a single directory on the local
// filesystem, the same directory the server exposes read-only under /mp3.
type Store struct {
	dir string
}

func New(dir string) (ports.MediaStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Stage writes the upload under a temporary name. Staged files are not
// served and are discarded when the surrounding record insert fails.
func (s *Store) Stage(name string, r io.Reader) error {
	f, err := os.Create(s.stagedPath(name))
	if err != nil {
		return fmt.Errorf("failed to stage upload: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("failed to write upload: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("failed to close upload: %w", err)
	}

	return nil
}

// Commit publishes a staged file under its final name. A colliding name
// overwrites the previous file.
func (s *Store) Commit(name string) error {
	if err := os.Rename(s.stagedPath(name), s.finalPath(name)); err != nil {
		return fmt.Errorf("failed to commit upload: %w", err)
	}
	return nil
}

// Discard removes a staged file that will not be published.
func (s *Store) Discard(name string) error {
	if err := os.Remove(s.stagedPath(name)); err != nil {
		return fmt.Errorf("failed to discard upload: %w", err)
	}
	return nil
}

// Remove unlinks a published file. It fails when the file is missing or
// inaccessible so callers can keep their record instead of orphaning it.
func (s *Store) Remove(name string) error {
	path := s.finalPath(name)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to access %s: %w", name, err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}

func (s *Store) finalPath(name string) string {
	// filepath.Base guards against path traversal in stored names.
	return filepath.Join(s.dir, filepath.Base(name))
}

func (s *Store) stagedPath(name string) string {
	return s.finalPath(name) + stagingSuffix
}
