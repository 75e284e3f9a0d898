package domain

import (
	"github.com/google/uuid"
)

// Match owns two teams and the innings they play in strict alternation. It
// keeps itself moving: whenever the current innings completes, the next one
// starts for the other team or, after the final innings, the winner is set.
type Match struct {
	id              uuid.UUID
	teams           [2]Team
	innings         []*Innings
	oversPerInnings Overs
	inningsPerTeam  int
	completedToss   bool
	toss            Toss
	winner          uuid.UUID

	roster      Roster
	subscribers []func(Event)
}

func NewMatch(teams [2]Team, inningsPerTeam int, oversPerInnings Overs, roster Roster) (*Match, error) {
	return newMatch(uuid.New(), teams, inningsPerTeam, oversPerInnings, roster)
}

func newMatch(id uuid.UUID, teams [2]Team, inningsPerTeam int, oversPerInnings Overs, roster Roster) (*Match, error) {
	if inningsPerTeam != 1 && inningsPerTeam != 2 {
		return nil, ErrInvalidInningsPerTeam
	}
	if !oversPerInnings.Valid() {
		return nil, ErrInvalidOvers
	}
	if teams[0].id == uuid.Nil || teams[0].id == teams[1].id {
		return nil, ErrInvalidTeams
	}
	return &Match{
		id:              id,
		teams:           teams,
		oversPerInnings: oversPerInnings,
		inningsPerTeam:  inningsPerTeam,
		roster:          roster,
	}, nil
}

func (m *Match) ID() uuid.UUID {
	return m.id
}

func (m *Match) Teams() [2]Team {
	return m.teams
}

func (m *Match) Team(id uuid.UUID) (Team, bool) {
	for _, t := range m.teams {
		if t.id == id {
			return t, true
		}
	}
	return Team{}, false
}

// Opponent returns the team that is not teamID.
func (m *Match) Opponent(teamID uuid.UUID) Team {
	if m.teams[0].id == teamID {
		return m.teams[1]
	}
	return m.teams[0]
}

func (m *Match) TeamName(id uuid.UUID) string {
	t, ok := m.Team(id)
	if !ok || m.roster == nil {
		return ""
	}
	return t.Name(m.roster)
}

func (m *Match) Innings() []*Innings {
	innings := make([]*Innings, len(m.innings))
	copy(innings, m.innings)
	return innings
}

// CurrentInnings returns the last innings started, or nil before the toss.
func (m *Match) CurrentInnings() *Innings {
	if len(m.innings) == 0 {
		return nil
	}
	return m.innings[len(m.innings)-1]
}

func (m *Match) OversPerInnings() Overs {
	return m.oversPerInnings
}

func (m *Match) InningsPerTeam() int {
	return m.inningsPerTeam
}

func (m *Match) CompletedToss() bool {
	return m.completedToss
}

func (m *Match) Toss() Toss {
	return m.toss
}

func (m *Match) Winner() (Team, bool) {
	if m.winner == uuid.Nil {
		return Team{}, false
	}
	return m.Team(m.winner)
}

func (m *Match) scheduledInnings() int {
	return m.inningsPerTeam * 2
}

// Target is the total the team batting in the final scheduled innings needs
// to reach. It is only known once that innings has started.
func (m *Match) Target() (int, bool) {
	if len(m.innings) != m.scheduledInnings() {
		return 0, false
	}
	if m.inningsPerTeam == 2 {
		first := m.innings[0].teamID
		total := 0
		for _, inn := range m.innings {
			if inn.teamID == first {
				total += inn.TotalRuns()
			}
		}
		return total - m.innings[1].TotalRuns() + 1, true
	}
	return m.innings[0].TotalRuns() + 1, true
}

// RunsRequired is the target less the chasing side's runs so far.
func (m *Match) RunsRequired() (int, bool) {
	target, ok := m.Target()
	if !ok {
		return 0, false
	}
	left := target - m.CurrentInnings().TotalRuns()
	if left < 0 {
		left = 0
	}
	return left, true
}

func (m *Match) IsComplete() bool {
	if len(m.innings) != m.scheduledInnings() {
		return false
	}
	for _, inn := range m.innings {
		if !inn.IsComplete() {
			return false
		}
	}
	return true
}

func (m *Match) isFinal(inn *Innings) bool {
	return len(m.innings) == m.scheduledInnings() && m.CurrentInnings() == inn
}

// StartInnings starts the next innings with teamID batting. The toss uses it
// for the first innings; later innings are started by the match itself.
func (m *Match) StartInnings(teamID uuid.UUID) error {
	if len(m.innings) >= m.scheduledInnings() {
		return ErrMatchComplete
	}
	team, ok := m.Team(teamID)
	if !ok {
		return ErrUnknownTeam
	}
	if cur := m.CurrentInnings(); cur != nil {
		if !cur.IsComplete() {
			return ErrInningsInProgress
		}
		if cur.teamID == teamID {
			return ErrSameTeamTwice
		}
	}
	m.startInnings(team)
	m.changed()
	return nil
}

func (m *Match) startInnings(team Team) {
	inn := &Innings{
		id:          uuid.New(),
		teamID:      team.id,
		oversToPlay: m.oversPerInnings,
		match:       m,
	}
	for _, id := range team.players[:min(openingPair, len(team.players))] {
		inn.scores = append(inn.scores, PlayerScore{PlayerID: id})
	}
	m.innings = append(m.innings, inn)
	m.publish(Event{Type: EventInningsStarted, TeamID: team.id, Innings: len(m.innings)})
}

func (m *Match) CompleteToss() {
	m.completedToss = true
}

// AddBall records a delivery in the current innings.
func (m *Match) AddBall(runs int, wicket bool, playerID uuid.UUID) error {
	cur := m.CurrentInnings()
	if cur == nil {
		return ErrNoInnings
	}
	return cur.AddBall(runs, wicket, playerID)
}

func (m *Match) Declare() error {
	cur := m.CurrentInnings()
	if cur == nil {
		return ErrNoInnings
	}
	return cur.Declare()
}

// UndoLastBall takes back the last ball bowled in the match. When the current
// innings has not had a ball yet, the previous innings' last ball is undone
// and the empty innings is dropped.
func (m *Match) UndoLastBall() error {
	cur := m.CurrentInnings()
	if cur == nil {
		return ErrNothingToUndo
	}
	if len(cur.balls) > 0 {
		return m.undoIn(cur)
	}
	if len(m.innings) < 2 || cur.declared {
		return ErrNothingToUndo
	}
	prev := m.innings[len(m.innings)-2]
	if len(prev.balls) == 0 {
		return ErrNothingToUndo
	}
	return m.undoIn(prev)
}

func (m *Match) CanUndo() bool {
	cur := m.CurrentInnings()
	if cur == nil {
		return false
	}
	if len(cur.balls) > 0 {
		return true
	}
	if len(m.innings) < 2 || cur.declared {
		return false
	}
	return len(m.innings[len(m.innings)-2].balls) > 0
}

func (m *Match) index(inn *Innings) int {
	for i := range m.innings {
		if m.innings[i] == inn {
			return i
		}
	}
	return -1
}

func (m *Match) laterInningsEmpty(inn *Innings) bool {
	i := m.index(inn)
	if i < 0 {
		return false
	}
	for _, later := range m.innings[i+1:] {
		if len(later.balls) > 0 || later.declared {
			return false
		}
	}
	return true
}

func (m *Match) undoIn(inn *Innings) error {
	if len(inn.balls) == 0 {
		return ErrNothingToUndo
	}
	if !m.laterInningsEmpty(inn) {
		return ErrInningsClosed
	}
	i := m.index(inn)
	for _, later := range m.innings[i+1:] {
		m.publish(Event{Type: EventInningsRetracted, TeamID: later.teamID, Innings: m.index(later) + 1})
	}
	m.innings = m.innings[:i+1]
	inn.popBall()
	m.changed()
	return nil
}

// changed re-evaluates the progression rule against the current state. It
// is called after every mutation and is safe to call any number of times.
func (m *Match) changed() {
	for {
		cur := m.CurrentInnings()
		if cur == nil || !cur.IsComplete() {
			m.setWinner(uuid.Nil)
			return
		}
		if len(m.innings) == m.scheduledInnings() {
			target, _ := m.Target()
			if cur.TotalRuns() >= target {
				m.setWinner(cur.teamID)
			} else {
				m.setWinner(m.Opponent(cur.teamID).id)
			}
			return
		}
		m.startInnings(m.Opponent(cur.teamID))
	}
}

func (m *Match) setWinner(teamID uuid.UUID) {
	if m.winner == teamID {
		return
	}
	m.winner = teamID
	if teamID == uuid.Nil {
		m.publish(Event{Type: EventResultRevoked, Innings: len(m.innings)})
		return
	}
	m.publish(Event{Type: EventMatchWon, TeamID: teamID, Innings: len(m.innings)})
}
