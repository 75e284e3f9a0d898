package domain

import (
	"fmt"

	"github.com/google/uuid"
)

const SnapshotVersion = 1

// Snapshot is the complete serializable state of the player registry and
// every match.
type Snapshot struct {
	Version int             `json:"version"`
	Players []Player        `json:"players"`
	Matches []MatchSnapshot `json:"matches"`
}

type TeamSnapshot struct {
	ID      uuid.UUID   `json:"id"`
	Players []uuid.UUID `json:"players"`
}

type InningsSnapshot struct {
	ID          uuid.UUID     `json:"id"`
	Team        uuid.UUID     `json:"team"`
	Balls       []Ball        `json:"balls"`
	Scores      []PlayerScore `json:"scores"`
	OversToPlay Overs         `json:"oversToPlay"`
	Declared    bool          `json:"declared"`
}

type MatchSnapshot struct {
	ID              uuid.UUID         `json:"id"`
	Teams           [2]TeamSnapshot   `json:"teams"`
	Innings         []InningsSnapshot `json:"innings"`
	OversPerInnings Overs             `json:"oversPerInnings"`
	InningsPerTeam  int               `json:"inningsPerTeam"`
	CompletedToss   bool              `json:"completedToss"`
	Toss            Toss              `json:"toss"`
	Winner          uuid.UUID         `json:"winner"`
}

func (r *Registry) Snapshot() []Player {
	return r.List()
}

func RestoreRegistry(players []Player) *Registry {
	r := NewRegistry()
	for _, p := range players {
		r.put(p)
	}
	return r
}

func (m *Match) Snapshot() MatchSnapshot {
	s := MatchSnapshot{
		ID:              m.id,
		Innings:         make([]InningsSnapshot, 0, len(m.innings)),
		OversPerInnings: m.oversPerInnings,
		InningsPerTeam:  m.inningsPerTeam,
		CompletedToss:   m.completedToss,
		Toss:            m.toss,
		Winner:          m.winner,
	}
	for i, t := range m.teams {
		s.Teams[i] = TeamSnapshot{ID: t.id, Players: t.Players()}
	}
	for _, inn := range m.innings {
		s.Innings = append(s.Innings, InningsSnapshot{
			ID:          inn.id,
			Team:        inn.teamID,
			Balls:       inn.Balls(),
			Scores:      inn.Scores(),
			OversToPlay: inn.oversToPlay,
			Declared:    inn.declared,
		})
	}
	return s
}

// RestoreMatch rebuilds a live match from a snapshot. The structural rules
// the command surface upholds are checked here, since a snapshot may come
// from anywhere. The progression rule runs once after loading, so the winner
// is recomputed rather than trusted.
func RestoreMatch(s MatchSnapshot, roster Roster) (*Match, error) {
	teams := [2]Team{
		newTeam(s.Teams[0].ID, s.Teams[0].Players),
		newTeam(s.Teams[1].ID, s.Teams[1].Players),
	}
	m, err := newMatch(s.ID, teams, s.InningsPerTeam, s.OversPerInnings, roster)
	if err != nil {
		return nil, fmt.Errorf("%w: match %s: %v", ErrCorruptSnapshot, s.ID, err)
	}
	if len(s.Innings) > m.scheduledInnings() {
		return nil, fmt.Errorf("%w: match %s has %d innings", ErrCorruptSnapshot, s.ID, len(s.Innings))
	}
	m.completedToss = s.CompletedToss
	m.toss = s.Toss
	m.winner = s.Winner

	var previous uuid.UUID
	for i, is := range s.Innings {
		if _, ok := m.Team(is.Team); !ok {
			return nil, fmt.Errorf("%w: innings %d of match %s: %v", ErrCorruptSnapshot, i+1, s.ID, ErrUnknownTeam)
		}
		if is.Team == previous {
			return nil, fmt.Errorf("%w: innings %d of match %s: %v", ErrCorruptSnapshot, i+1, s.ID, ErrSameTeamTwice)
		}
		if !is.OversToPlay.Valid() {
			return nil, fmt.Errorf("%w: innings %d of match %s: %v", ErrCorruptSnapshot, i+1, s.ID, ErrInvalidOvers)
		}
		team, _ := m.Team(is.Team)
		if err := checkBallLog(team, is); err != nil {
			return nil, fmt.Errorf("%w: innings %d of match %s: %v", ErrCorruptSnapshot, i+1, s.ID, err)
		}
		previous = is.Team
		inn := &Innings{
			id:          is.ID,
			teamID:      is.Team,
			balls:       append([]Ball(nil), is.Balls...),
			scores:      append([]PlayerScore(nil), is.Scores...),
			oversToPlay: is.OversToPlay,
			declared:    is.Declared,
			match:       m,
		}
		m.innings = append(m.innings, inn)
	}
	m.changed()
	return m, nil
}

// checkBallLog requires every batter to belong to the batting team and every
// ball to be faced by a batter who came in.
func checkBallLog(team Team, is InningsSnapshot) error {
	batted := make(map[uuid.UUID]struct{}, len(is.Scores))
	for _, sc := range is.Scores {
		if !team.Has(sc.PlayerID) {
			return fmt.Errorf("batter %s: %w", sc.PlayerID, ErrNotAtCrease)
		}
		batted[sc.PlayerID] = struct{}{}
	}
	for n, b := range is.Balls {
		if !ValidRuns(b.Runs) {
			return fmt.Errorf("ball %d: %w", n+1, ErrInvalidRuns)
		}
		if _, ok := batted[b.PlayerID]; !ok {
			return fmt.Errorf("ball %d faced by %s: %w", n+1, b.PlayerID, ErrNotAtCrease)
		}
	}
	return nil
}
