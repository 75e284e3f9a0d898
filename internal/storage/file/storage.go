// Package file keeps the snapshot as a single JSON document on disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
	"github.com/goserg/cricketscore/internal/domain"
	"github.com/goserg/cricketscore/internal/storage"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	path string
	log  *logrus.Entry
}

var _ storage.SnapshotStorage = (*Storage)(nil)

func New(l *logrus.Logger, path string) *Storage {
	return &Storage{
		path: path,
		log:  l.WithField("from", "file-storage"),
	}
}

func (s *Storage) Load(_ context.Context) (domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Snapshot{}, storage.ErrNoSnapshot
		}
		return domain.Snapshot{}, err
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %s: %v", domain.ErrCorruptSnapshot, s.path, err)
	}
	return snap, nil
}

// Save replaces the file atomically, so a crash never leaves a half-written
// snapshot behind.
func (s *Storage) Save(_ context.Context, snap domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	s.log.WithField("bytes", len(data)).Debug("snapshot saved")
	return nil
}

func (s *Storage) Close() error {
	return nil
}
