package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInnings_ScoreAggregation(t *testing.T) {
	m, _ := newTestMatch(t, 4, 1, 5)
	require.NoError(t, m.StartInnings(m.Teams()[0].ID()))
	inn := m.CurrentInnings()
	opener := inn.Scores()[0].PlayerID
	partner := inn.Scores()[1].PlayerID

	for _, runs := range []int{1, 4, 6, 0} {
		require.NoError(t, inn.AddBall(runs, false, opener))
	}
	require.NoError(t, inn.AddBall(2, false, partner))

	line, ok := inn.Batter(opener)
	require.True(t, ok)
	assert.Equal(t, 11, line.Runs)
	assert.Equal(t, 4, line.BallsFaced)
	assert.InDelta(t, 275.0, line.StrikeRate, 1e-9)
	assert.Len(t, line.Balls, 4)

	line, ok = inn.Batter(partner)
	require.True(t, ok)
	assert.Equal(t, 2, line.Runs)
	assert.InDelta(t, 200.0, line.StrikeRate, 1e-9)

	assert.Equal(t, 13, inn.TotalRuns())
	assert.Equal(t, 0, inn.TotalWickets())
}

func TestInnings_StrikeRateWithoutBalls(t *testing.T) {
	m, _ := newTestMatch(t, 3, 1, 5)
	require.NoError(t, m.StartInnings(m.Teams()[0].ID()))
	for _, line := range m.CurrentInnings().Batters() {
		assert.Zero(t, line.BallsFaced)
		assert.Zero(t, line.StrikeRate)
		assert.NotNil(t, line.Balls)
	}
	_, ok := m.CurrentInnings().Batter(uuid.New())
	assert.False(t, ok)
}

func TestInnings_OversArithmetic(t *testing.T) {
	m, _ := newTestMatch(t, 4, 1, 5)
	require.NoError(t, m.StartInnings(m.Teams()[0].ID()))
	inn := m.CurrentInnings()
	assert.Zero(t, inn.RunRate())

	bowlN(t, m, 7, 1)
	assert.InDelta(t, 1.1, inn.OversPlayed(), 1e-9)
	assert.InDelta(t, 7/1.1, inn.RunRate(), 1e-9)
	assert.Equal(t, "7/0 (1.1)", inn.Summary())

	bowlN(t, m, 5, 0)
	assert.InDelta(t, 2.0, inn.OversPlayed(), 1e-9)
	assert.InDelta(t, 3.5, inn.RunRate(), 1e-9)

	left, limited := inn.BallsRemaining()
	assert.True(t, limited)
	assert.Equal(t, 18, left)
}

func TestInnings_SeedsOpeningPair(t *testing.T) {
	m, _ := newTestMatch(t, 4, 1, 5)
	team := m.Teams()[1]
	require.NoError(t, m.StartInnings(team.ID()))
	inn := m.CurrentInnings()

	scores := inn.Scores()
	require.Len(t, scores, 2)
	assert.Equal(t, team.Players()[0], scores[0].PlayerID)
	assert.Equal(t, team.Players()[1], scores[1].PlayerID)
	assert.Equal(t, team.Players()[2:], inn.PlayersYetToBat())
	assert.Equal(t, Overs(5), inn.OversToPlay())
	assert.False(t, inn.Declared())
	assert.False(t, inn.CanUndo())
}

func TestInnings_WicketBringsInNextBatter(t *testing.T) {
	m, _ := newTestMatch(t, 3, 1, Unlimited)
	team := m.Teams()[0]
	require.NoError(t, m.StartInnings(team.ID()))
	inn := m.CurrentInnings()
	players := team.Players()

	require.NoError(t, inn.AddBall(0, true, players[0]))
	scores := inn.Scores()
	require.Len(t, scores, 3)
	assert.True(t, scores[0].Out)
	assert.Equal(t, players[2], scores[2].PlayerID)
	assert.Len(t, inn.ActiveBatters(), 2)
	assert.Empty(t, inn.PlayersYetToBat())
	assert.Equal(t, players[2], inn.Balls()[0].NextBatter)

	require.NoError(t, inn.AddBall(1, true, players[1]))
	assert.Len(t, inn.Scores(), 3, "no replacement is left to come in")
	assert.False(t, inn.IsComplete(), "last batter is still in")

	require.NoError(t, inn.AddBall(0, true, players[2]))
	assert.Len(t, inn.Scores(), 3)
	assert.True(t, inn.IsComplete(), "all out")
	assert.Equal(t, 3, inn.TotalWickets())
	_, limited := inn.BallsRemaining()
	assert.False(t, limited)
}

func TestInnings_UndoRestoresState(t *testing.T) {
	m, _ := newTestMatch(t, 5, 1, 10)
	require.NoError(t, m.StartInnings(m.Teams()[0].ID()))
	inn := m.CurrentInnings()

	initialScores := inn.Scores()
	initialYet := inn.PlayersYetToBat()

	type step struct {
		runs   int
		wicket bool
	}
	steps := []step{{1, false}, {4, false}, {0, true}, {6, false}, {2, true}, {3, false}, {0, false}}
	type state struct {
		runs, wickets, balls int
		scores               []PlayerScore
	}
	var history []state
	for _, s := range steps {
		history = append(history, state{inn.TotalRuns(), inn.TotalWickets(), inn.BallCount(), inn.Scores()})
		bowl(t, m, s.runs, s.wicket)
	}

	for i := len(steps) - 1; i >= 0; i-- {
		require.True(t, inn.CanUndo())
		require.NoError(t, inn.UndoLastBall())
		want := history[i]
		assert.Equal(t, want.runs, inn.TotalRuns(), "runs after undoing ball %d", i+1)
		assert.Equal(t, want.wickets, inn.TotalWickets(), "wickets after undoing ball %d", i+1)
		assert.Equal(t, want.balls, inn.BallCount())
		assert.Equal(t, want.scores, inn.Scores(), "scores after undoing ball %d", i+1)
	}

	assert.Equal(t, initialScores, inn.Scores())
	assert.Equal(t, initialYet, inn.PlayersYetToBat())
	assert.False(t, inn.CanUndo())
	assert.ErrorIs(t, inn.UndoLastBall(), ErrNothingToUndo)
}

func TestInnings_UndoWicketSendsReplacementBack(t *testing.T) {
	m, _ := newTestMatch(t, 4, 1, 5)
	require.NoError(t, m.StartInnings(m.Teams()[0].ID()))
	inn := m.CurrentInnings()
	out := striker(t, m)

	bowl(t, m, 0, true)
	require.Len(t, inn.Scores(), 3)

	require.NoError(t, inn.UndoLastBall())
	require.Len(t, inn.Scores(), 2)
	line, _ := inn.Batter(out)
	assert.False(t, line.Out)
	assert.Len(t, inn.PlayersYetToBat(), 2)
}

func TestInnings_AddBallRejections(t *testing.T) {
	m, _ := newTestMatch(t, 4, 1, 1)
	team := m.Teams()[0]
	require.NoError(t, m.StartInnings(team.ID()))
	inn := m.CurrentInnings()
	players := team.Players()

	assert.ErrorIs(t, inn.AddBall(5, false, players[0]), ErrInvalidRuns)
	assert.ErrorIs(t, inn.AddBall(-1, false, players[0]), ErrInvalidRuns)
	assert.ErrorIs(t, inn.AddBall(1, false, players[3]), ErrNotAtCrease)
	assert.ErrorIs(t, inn.AddBall(1, false, uuid.New()), ErrNotAtCrease)

	require.NoError(t, inn.AddBall(0, true, players[0]))
	assert.ErrorIs(t, inn.AddBall(1, false, players[0]), ErrBatterOut)
	assert.Equal(t, 1, inn.BallCount(), "rejected balls must not be recorded")

	bowlN(t, m, 5, 1)
	assert.True(t, inn.IsComplete())
	assert.ErrorIs(t, inn.AddBall(1, false, players[1]), ErrInningsComplete)
	assert.Equal(t, 6, inn.BallCount())
}

func TestInnings_Declare(t *testing.T) {
	m, _ := newTestMatch(t, 4, 1, Unlimited)
	require.NoError(t, m.StartInnings(m.Teams()[0].ID()))
	first := m.CurrentInnings()
	bowlN(t, m, 3, 4)

	require.NoError(t, first.Declare())
	assert.True(t, first.Declared())
	assert.True(t, first.IsComplete())
	assert.ErrorIs(t, first.Declare(), ErrInningsComplete)

	require.Len(t, m.Innings(), 2, "declaring hands over to the other team")
	assert.Equal(t, m.Teams()[1].ID(), m.CurrentInnings().TeamID())
}
