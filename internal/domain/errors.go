package domain

import "errors"

var (
	ErrInvalidOvers          = errors.New("overs must be a positive number or unlimited")
	ErrInvalidInningsPerTeam = errors.New("innings per team must be 1 or 2")
	ErrInvalidTeams          = errors.New("a match needs two distinct teams")

	ErrInvalidRuns       = errors.New("runs must be one of 0, 1, 2, 3, 4, 6")
	ErrInningsComplete   = errors.New("innings is complete")
	ErrInningsClosed     = errors.New("a later innings is already under way")
	ErrNotAtCrease       = errors.New("player is not batting in this innings")
	ErrBatterOut         = errors.New("batter is already out")
	ErrNothingToUndo     = errors.New("nothing to undo")
	ErrNoInnings         = errors.New("no innings has started")
	ErrMatchComplete     = errors.New("all innings have been played")
	ErrInningsInProgress = errors.New("current innings is not complete")
	ErrUnknownTeam       = errors.New("team is not part of this match")
	ErrSameTeamTwice     = errors.New("team batted in the previous innings")

	ErrTossComplete    = errors.New("toss already completed")
	ErrTossNotCalled   = errors.New("toss has not been called")
	ErrInvalidCall     = errors.New("call must be heads or tails")
	ErrInvalidDecision = errors.New("decision must be bat or bowl")

	ErrCorruptSnapshot     = errors.New("corrupt snapshot")
	ErrUnsupportedSnapshot = errors.New("unsupported snapshot version")
)
