package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, s MatchSnapshot) MatchSnapshot {
	t.Helper()
	data, err := json.Marshal(s)
	require.NoError(t, err)
	var back MatchSnapshot
	require.NoError(t, json.Unmarshal(data, &back))
	return back
}

func TestSnapshot_UnlimitedOversSurvive(t *testing.T) {
	m, r := newTestMatch(t, 4, 1, Unlimited)
	require.NoError(t, m.StartInnings(m.Teams()[0].ID()))
	bowlN(t, m, 8, 2)

	data, err := json.Marshal(m.Snapshot())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"oversPerInnings":"unlimited"`)

	restored, err := RestoreMatch(roundTrip(t, m.Snapshot()), r)
	require.NoError(t, err)
	assert.True(t, restored.OversPerInnings().IsUnlimited())
	assert.True(t, restored.CurrentInnings().OversToPlay().IsUnlimited())
	_, limited := restored.CurrentInnings().BallsRemaining()
	assert.False(t, limited)
}

func TestSnapshot_RestoresLiveState(t *testing.T) {
	m, r := newTestMatch(t, 8, 1, 5)
	require.NoError(t, m.StartInnings(m.Teams()[1].ID()))
	m.CompleteToss()
	playFirstInnings(t, m)
	bowlN(t, m, 4, 6)
	bowl(t, m, 0, true)

	restored, err := RestoreMatch(roundTrip(t, m.Snapshot()), r)
	require.NoError(t, err)
	assert.Equal(t, m.Snapshot(), restored.Snapshot())

	assert.Equal(t, m.ID(), restored.ID())
	assert.True(t, restored.CompletedToss())
	target, _ := restored.Target()
	assert.Equal(t, 51, target)
	cur := restored.CurrentInnings()
	assert.Equal(t, "24/1 (0.5)", cur.Summary())
	assert.Len(t, cur.ActiveBatters(), 2)

	require.NoError(t, restored.UndoLastBall())
	assert.Len(t, cur.Scores(), 2, "replacement batter is sent back after a restore too")
	bowlN(t, restored, 5, 6)
	winner, ok := restored.Winner()
	require.True(t, ok)
	assert.Equal(t, m.Teams()[0].ID(), winner.ID())
}

func TestSnapshot_RecomputesWinner(t *testing.T) {
	m, r := newTestMatch(t, 8, 1, 5)
	require.NoError(t, m.StartInnings(m.Teams()[0].ID()))
	playFirstInnings(t, m)
	bowlN(t, m, 13, 4)

	s := m.Snapshot()
	require.Equal(t, m.Teams()[1].ID(), s.Winner)
	s.Winner = uuid.Nil

	restored, err := RestoreMatch(s, r)
	require.NoError(t, err)
	winner, ok := restored.Winner()
	require.True(t, ok)
	assert.Equal(t, m.Teams()[1].ID(), winner.ID())
}

func TestRestoreMatch_RejectsBrokenStructure(t *testing.T) {
	m, r := newTestMatch(t, 4, 1, 1)
	require.NoError(t, m.StartInnings(m.Teams()[0].ID()))
	bowlN(t, m, 6, 1)
	good := m.Snapshot()

	tests := []struct {
		name   string
		mutate func(s *MatchSnapshot)
	}{
		{name: "innings per team", mutate: func(s *MatchSnapshot) { s.InningsPerTeam = 3 }},
		{name: "overs", mutate: func(s *MatchSnapshot) { s.OversPerInnings = 0 }},
		{name: "same team twice", mutate: func(s *MatchSnapshot) { s.Teams[1].ID = s.Teams[0].ID }},
		{name: "unknown batting team", mutate: func(s *MatchSnapshot) { s.Innings[1].Team = uuid.New() }},
		{name: "no alternation", mutate: func(s *MatchSnapshot) { s.Innings[1].Team = s.Innings[0].Team }},
		{name: "too many innings", mutate: func(s *MatchSnapshot) { s.Innings = append(s.Innings, s.Innings[0]) }},
		{name: "invalid runs", mutate: func(s *MatchSnapshot) { s.Innings[0].Balls[0].Runs = 5 }},
		{name: "negative runs", mutate: func(s *MatchSnapshot) { s.Innings[0].Balls[5].Runs = -1 }},
		{name: "batter from fielding side", mutate: func(s *MatchSnapshot) {
			s.Innings[0].Scores = append(s.Innings[0].Scores, PlayerScore{PlayerID: s.Teams[1].Players[0]})
		}},
		{name: "batter outside both teams", mutate: func(s *MatchSnapshot) { s.Innings[0].Scores[0].PlayerID = uuid.New() }},
		{name: "ball faced by unknown batter", mutate: func(s *MatchSnapshot) { s.Innings[0].Balls[0].PlayerID = uuid.New() }},
		{name: "ball faced by batter who never came in", mutate: func(s *MatchSnapshot) {
			s.Innings[0].Scores = s.Innings[0].Scores[:0]
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := roundTrip(t, good)
			tt.mutate(&s)
			_, err := RestoreMatch(s, r)
			assert.ErrorIs(t, err, ErrCorruptSnapshot)
		})
	}
}

func TestRestoreRegistry(t *testing.T) {
	r := NewRegistry()
	r.Add("a")
	r.Add("b")
	restored := RestoreRegistry(r.Snapshot())
	assert.Equal(t, r.List(), restored.List())
}
