package domain

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

// openingPair is how many batters an innings starts with.
const openingPair = 2

// Innings is one team's batting period. Everything except the ball log, the
// scores and the declared flag is derived on read.
type Innings struct {
	id          uuid.UUID
	teamID      uuid.UUID
	balls       []Ball
	scores      []PlayerScore
	oversToPlay Overs
	declared    bool

	// match owns the innings; it is consulted for the batting team and the
	// chase target and is notified after every change.
	match *Match
}

func (inn *Innings) ID() uuid.UUID {
	return inn.id
}

func (inn *Innings) TeamID() uuid.UUID {
	return inn.teamID
}

func (inn *Innings) Team() Team {
	team, _ := inn.match.Team(inn.teamID)
	return team
}

func (inn *Innings) OversToPlay() Overs {
	return inn.oversToPlay
}

func (inn *Innings) Declared() bool {
	return inn.declared
}

func (inn *Innings) Balls() []Ball {
	balls := make([]Ball, len(inn.balls))
	copy(balls, inn.balls)
	return balls
}

func (inn *Innings) Scores() []PlayerScore {
	scores := make([]PlayerScore, len(inn.scores))
	copy(scores, inn.scores)
	return scores
}

func (inn *Innings) BallCount() int {
	return len(inn.balls)
}

func (inn *Innings) TotalRuns() int {
	total := 0
	for _, b := range inn.balls {
		total += b.Runs
	}
	return total
}

func (inn *Innings) TotalWickets() int {
	wickets := 0
	for _, s := range inn.scores {
		if s.Out {
			wickets++
		}
	}
	return wickets
}

// OversPlayed reports overs in the n.b form, where b is balls into the
// current over.
func (inn *Innings) OversPlayed() float64 {
	return oversPlayed(len(inn.balls))
}

func (inn *Innings) RunRate() float64 {
	overs := inn.OversPlayed()
	if overs == 0 {
		return 0
	}
	return float64(inn.TotalRuns()) / overs
}

// BallsRemaining returns the legal deliveries left; ok is false when the
// innings has unlimited overs.
func (inn *Innings) BallsRemaining() (balls int, ok bool) {
	if inn.oversToPlay.IsUnlimited() {
		return 0, false
	}
	left := inn.oversToPlay.Balls() - len(inn.balls)
	if left < 0 {
		left = 0
	}
	return left, true
}

// PlayersYetToBat lists members of the batting team, in batting order, who
// have not come in yet.
func (inn *Innings) PlayersYetToBat() []uuid.UUID {
	batted := mapset.NewThreadUnsafeSet[uuid.UUID]()
	for _, s := range inn.scores {
		batted.Add(s.PlayerID)
	}
	var yet []uuid.UUID
	for _, id := range inn.Team().players {
		if !batted.Contains(id) {
			yet = append(yet, id)
		}
	}
	return yet
}

// Target returns the chase target when this is the final scheduled innings of
// its match and the target is known.
func (inn *Innings) Target() (int, bool) {
	if !inn.match.isFinal(inn) {
		return 0, false
	}
	return inn.match.Target()
}

func (inn *Innings) IsComplete() bool {
	if target, ok := inn.Target(); ok && inn.TotalRuns() >= target {
		return true
	}
	if inn.declared {
		return true
	}
	if !inn.oversToPlay.IsUnlimited() && len(inn.balls) >= inn.oversToPlay.Balls() {
		return true
	}
	return inn.allOut()
}

func (inn *Innings) allOut() bool {
	for _, s := range inn.scores {
		if !s.Out {
			return false
		}
	}
	return len(inn.PlayersYetToBat()) == 0
}

// CanUndo reports whether the last ball of this innings can be taken back.
// An innings followed by one that already has play in it is closed.
func (inn *Innings) CanUndo() bool {
	if len(inn.balls) == 0 {
		return false
	}
	return inn.match.laterInningsEmpty(inn)
}

func (inn *Innings) Batter(playerID uuid.UUID) (BatterLine, bool) {
	for _, s := range inn.scores {
		if s.PlayerID == playerID {
			return newBatterLine(s, inn.balls), true
		}
	}
	return BatterLine{}, false
}

// Batters returns scorecard lines in the order the batters came in.
func (inn *Innings) Batters() []BatterLine {
	lines := make([]BatterLine, 0, len(inn.scores))
	for _, s := range inn.scores {
		lines = append(lines, newBatterLine(s, inn.balls))
	}
	return lines
}

func (inn *Innings) ActiveBatters() []BatterLine {
	var lines []BatterLine
	for _, s := range inn.scores {
		if !s.Out {
			lines = append(lines, newBatterLine(s, inn.balls))
		}
	}
	return lines
}

// Summary renders the innings as runs/wickets (overs), e.g. "50/3 (5.0)".
func (inn *Innings) Summary() string {
	return fmt.Sprintf("%d/%d (%.1f)", inn.TotalRuns(), inn.TotalWickets(), inn.OversPlayed())
}

// AddBall records a delivery faced by playerID. A wicket dismisses the batter
// and brings in the next player yet to bat, if any.
func (inn *Innings) AddBall(runs int, wicket bool, playerID uuid.UUID) error {
	if !ValidRuns(runs) {
		return ErrInvalidRuns
	}
	if inn.IsComplete() || !inn.isCurrent() {
		return ErrInningsComplete
	}
	score := inn.score(playerID)
	if score == nil {
		return ErrNotAtCrease
	}
	if score.Out {
		return ErrBatterOut
	}

	ball := Ball{Runs: runs, Wicket: wicket, PlayerID: playerID}
	if wicket {
		score.Out = true
		if yet := inn.PlayersYetToBat(); len(yet) > 0 {
			ball.NextBatter = yet[0]
			inn.scores = append(inn.scores, PlayerScore{PlayerID: yet[0]})
		}
	}
	inn.balls = append(inn.balls, ball)
	inn.changed()
	return nil
}

// UndoLastBall takes back the most recent delivery, restoring the batter and
// sending back any replacement the delivery brought in. Undoing into an
// innings that has been followed by an empty one retracts the empty one.
func (inn *Innings) UndoLastBall() error {
	if len(inn.balls) == 0 {
		return ErrNothingToUndo
	}
	return inn.match.undoIn(inn)
}

// Declare closes the innings. There is no way back.
func (inn *Innings) Declare() error {
	if inn.IsComplete() || !inn.isCurrent() {
		return ErrInningsComplete
	}
	inn.declared = true
	inn.changed()
	return nil
}

func (inn *Innings) popBall() {
	last := inn.balls[len(inn.balls)-1]
	inn.balls = inn.balls[:len(inn.balls)-1]
	if !last.Wicket {
		return
	}
	if score := inn.score(last.PlayerID); score != nil {
		score.Out = false
	}
	if last.NextBatter == uuid.Nil {
		return
	}
	for i := len(inn.scores) - 1; i >= 0; i-- {
		if inn.scores[i].PlayerID == last.NextBatter {
			inn.scores = append(inn.scores[:i], inn.scores[i+1:]...)
			break
		}
	}
}

func (inn *Innings) score(playerID uuid.UUID) *PlayerScore {
	for i := range inn.scores {
		if inn.scores[i].PlayerID == playerID {
			return &inn.scores[i]
		}
	}
	return nil
}

func (inn *Innings) isCurrent() bool {
	return inn.match.CurrentInnings() == inn
}

func (inn *Innings) changed() {
	inn.match.changed()
}
