package domain

import (
	"github.com/google/uuid"
)

// Ball is one delivery. NextBatter is set when the delivery took a wicket and
// brought a replacement batter in, so that undo can send them back.
type Ball struct {
	Runs       int       `json:"runs"`
	Wicket     bool      `json:"wicket"`
	PlayerID   uuid.UUID `json:"player"`
	NextBatter uuid.UUID `json:"nextBatter"`
}

func ValidRuns(runs int) bool {
	switch runs {
	case 0, 1, 2, 3, 4, 6:
		return true
	}
	return false
}

// PlayerScore marks that a player has come in to bat in an innings. Runs and
// balls are never stored here; they are derived from the innings ball log.
type PlayerScore struct {
	PlayerID uuid.UUID `json:"player"`
	Out      bool      `json:"out"`
}

// BatterLine is the scorecard line of one batter.
type BatterLine struct {
	PlayerID   uuid.UUID
	Out        bool
	Balls      []Ball
	Runs       int
	BallsFaced int
	StrikeRate float64
}

func newBatterLine(score PlayerScore, log []Ball) BatterLine {
	line := BatterLine{
		PlayerID: score.PlayerID,
		Out:      score.Out,
		Balls:    []Ball{},
	}
	for _, b := range log {
		if b.PlayerID != score.PlayerID {
			continue
		}
		line.Balls = append(line.Balls, b)
		line.Runs += b.Runs
	}
	line.BallsFaced = len(line.Balls)
	if line.BallsFaced > 0 {
		line.StrikeRate = float64(line.Runs) / float64(line.BallsFaced) * 100
	}
	return line
}
