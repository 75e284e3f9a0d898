// Package storagetest holds the behaviour every snapshot storage shares.
package storagetest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/goserg/cricketscore/internal/domain"
	"github.com/goserg/cricketscore/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample builds a snapshot with one match part way through its first
// innings.
func Sample(t *testing.T) domain.Snapshot {
	t.Helper()
	r := domain.NewRegistry()
	var ids []uuid.UUID
	for _, name := range []string{"Ann", "Bob", "Cat", "Dan"} {
		ids = append(ids, r.Add(name).ID)
	}
	teams := [2]domain.Team{domain.NewTeam(ids[:2]), domain.NewTeam(ids[2:])}
	m, err := domain.NewMatch(teams, 1, domain.Unlimited, r)
	require.NoError(t, err)
	require.NoError(t, m.StartInnings(teams[0].ID()))
	require.NoError(t, m.AddBall(4, false, ids[0]))
	require.NoError(t, m.AddBall(1, false, ids[1]))

	return domain.Snapshot{
		Version: domain.SnapshotVersion,
		Players: r.Snapshot(),
		Matches: []domain.MatchSnapshot{m.Snapshot()},
	}
}

// Run checks the load/save contract of s, which must start empty.
func Run(t *testing.T, s storage.SnapshotStorage) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, storage.ErrNoSnapshot)

	first := Sample(t)
	require.NoError(t, s.Save(ctx, first))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	second := Sample(t)
	second.Matches = nil
	require.NoError(t, s.Save(ctx, second))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.Players, got.Players)
	assert.Empty(t, got.Matches, "a later save replaces the earlier one")

	require.NoError(t, s.Close())
}
