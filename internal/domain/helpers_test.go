package domain

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestMatch registers 2*perTeam players and splits them in order: the
// first half is teams[0], the second half teams[1].
func newTestMatch(t *testing.T, perTeam int, inningsPerTeam int, overs Overs) (*Match, *Registry) {
	t.Helper()
	r := NewRegistry()
	var ids []uuid.UUID
	for i := 0; i < perTeam*2; i++ {
		ids = append(ids, r.Add(fmt.Sprintf("player%d", i)).ID)
	}
	m, err := NewMatch([2]Team{NewTeam(ids[:perTeam]), NewTeam(ids[perTeam:])}, inningsPerTeam, overs, r)
	require.NoError(t, err)
	return m, r
}

// striker is the first batter still in.
func striker(t *testing.T, m *Match) uuid.UUID {
	t.Helper()
	active := m.CurrentInnings().ActiveBatters()
	require.NotEmpty(t, active, "no batter at the crease")
	return active[0].PlayerID
}

func bowl(t *testing.T, m *Match, runs int, wicket bool) {
	t.Helper()
	require.NoError(t, m.AddBall(runs, wicket, striker(t, m)))
}

func bowlN(t *testing.T, m *Match, n int, runs int) {
	t.Helper()
	for i := 0; i < n; i++ {
		bowl(t, m, runs, false)
	}
}

func wickets(t *testing.T, m *Match, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		bowl(t, m, 0, true)
	}
}
