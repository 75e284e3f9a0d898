package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goserg/cricketscore/internal/domain"
	"github.com/goserg/cricketscore/internal/storage/storagetest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	storagetest.Run(t, New(logrus.New(), filepath.Join(t.TempDir(), "store.json")))
}

func TestStorage_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(logrus.New(), filepath.Join(dir, "store.json"))
	require.NoError(t, s.Save(context.Background(), storagetest.Sample(t)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "store.json", entries[0].Name())
}

func TestStorage_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(logrus.New(), path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)
}

func TestStorage_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s := New(logrus.New(), path)

	snap := storagetest.Sample(t)
	require.NoError(t, s.Save(context.Background(), snap))
	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestStorage_SaveIntoMissingDir(t *testing.T) {
	s := New(logrus.New(), filepath.Join(t.TempDir(), "absent", "store.json"))
	assert.Error(t, s.Save(context.Background(), storagetest.Sample(t)))
}
