package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type MarginKind string

const (
	ByRuns    MarginKind = "runs"
	ByWickets MarginKind = "wickets"
)

// Result is how a finished match was won. A chasing winner wins by the
// wickets it still had standing, a defending winner by the runs the chase
// fell short of the target.
type Result struct {
	Winner uuid.UUID  `json:"winner"`
	By     MarginKind `json:"by"`
	Margin int        `json:"margin"`
}

func (m *Match) Result() (Result, bool) {
	winner, ok := m.Winner()
	if !ok {
		return Result{}, false
	}
	last := m.CurrentInnings()
	if last.teamID == winner.id {
		return Result{
			Winner: winner.id,
			By:     ByWickets,
			Margin: last.Team().Size() - last.TotalWickets(),
		}, true
	}
	target, _ := m.Target()
	return Result{
		Winner: winner.id,
		By:     ByRuns,
		Margin: target - last.TotalRuns(),
	}, true
}

// Describe renders the result with the winner's name, e.g. "ABC won by 6 wickets".
func (r Result) Describe(winnerName string) string {
	return fmt.Sprintf("%s won by %d %s", winnerName, r.Margin, r.By)
}
