package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/goserg/cricketscore/gen/model"
	"github.com/goserg/cricketscore/gen/table"
	"github.com/goserg/cricketscore/internal/domain"
	sqlite3 "github.com/goserg/cricketscore/internal/migrate"
	"github.com/goserg/cricketscore/internal/storage"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.SnapshotStorage = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "sqlite-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpSnapshotDB(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", fileName, err)
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Info("snapshot storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

// snapshotRow is the id of the single row holding the current snapshot.
const snapshotRow = 1

func (s *Storage) Load(ctx context.Context) (domain.Snapshot, error) {
	var row model.Snapshots
	err := table.Snapshots.
		SELECT(table.Snapshots.AllColumns).
		FROM(table.Snapshots).
		WHERE(table.Snapshots.ID.EQ(sqlite.Int(snapshotRow))).
		QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Snapshot{}, storage.ErrNoSnapshot
		}
		return domain.Snapshot{}, err
	}
	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(row.Data), &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	if snap.Version != int(row.Version) {
		s.log.WithField("column", row.Version).WithField("payload", snap.Version).Warn("snapshot version mismatch")
	}
	return snap, nil
}

func (s *Storage) Save(ctx context.Context, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	row := model.Snapshots{
		ID:      snapshotRow,
		Version: int32(snap.Version),
		Data:    string(data),
		SavedAt: time.Now().UTC(),
	}
	_, err = table.Snapshots.
		INSERT(table.Snapshots.AllColumns).
		MODEL(row).
		ON_CONFLICT(table.Snapshots.ID).
		DO_UPDATE(sqlite.SET(
			table.Snapshots.Version.SET(table.Snapshots.EXCLUDED.Version),
			table.Snapshots.Data.SET(table.Snapshots.EXCLUDED.Data),
			table.Snapshots.SavedAt.SET(table.Snapshots.EXCLUDED.SavedAt),
		)).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}
