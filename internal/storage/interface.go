package storage

import (
	"context"
	"errors"

	"github.com/goserg/cricketscore/internal/domain"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot saved")

// SnapshotStorage persists the whole scoring state as one snapshot.
type SnapshotStorage interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, s domain.Snapshot) error
	Close() error
}
