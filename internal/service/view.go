package service

import (
	"github.com/google/uuid"
	"github.com/goserg/cricketscore/internal/domain"
)

// Views are plain copies of the computed state, safe to hand out after the
// service lock is released.

type PlayerRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type TeamView struct {
	ID      uuid.UUID   `json:"id"`
	Name    string      `json:"name"`
	Players []PlayerRef `json:"players"`
}

type BatterView struct {
	PlayerRef
	Out        bool          `json:"out"`
	Runs       int           `json:"runs"`
	BallsFaced int           `json:"ballsFaced"`
	StrikeRate float64       `json:"strikeRate"`
	Balls      []domain.Ball `json:"balls"`
}

type InningsView struct {
	ID             uuid.UUID    `json:"id"`
	Number         int          `json:"number"`
	Team           uuid.UUID    `json:"team"`
	TeamName       string       `json:"teamName"`
	Runs           int          `json:"runs"`
	Wickets        int          `json:"wickets"`
	Overs          float64      `json:"overs"`
	OversToPlay    domain.Overs `json:"oversToPlay"`
	RunRate        float64      `json:"runRate"`
	Summary        string       `json:"summary"`
	Complete       bool         `json:"complete"`
	Declared       bool         `json:"declared"`
	CanUndo        bool         `json:"canUndo"`
	Target         *int         `json:"target,omitempty"`
	BallsRemaining *int         `json:"ballsRemaining,omitempty"`
	Batters        []BatterView `json:"batters"`
	YetToBat       []PlayerRef  `json:"yetToBat"`
}

type MatchView struct {
	ID              uuid.UUID      `json:"id"`
	Teams           [2]TeamView    `json:"teams"`
	OversPerInnings domain.Overs   `json:"oversPerInnings"`
	InningsPerTeam  int            `json:"inningsPerTeam"`
	CompletedToss   bool           `json:"completedToss"`
	Toss            domain.Toss    `json:"toss"`
	Innings         []InningsView  `json:"innings"`
	Complete        bool           `json:"complete"`
	Winner          *uuid.UUID     `json:"winner,omitempty"`
	Result          *domain.Result `json:"result,omitempty"`
	ResultText      string         `json:"resultText,omitempty"`
	Target          *int           `json:"target,omitempty"`
	RunsRequired    *int           `json:"runsRequired,omitempty"`
	CanUndo         bool           `json:"canUndo"`
}

func (s *Service) ref(id uuid.UUID) PlayerRef {
	p, _ := s.players.Player(id)
	return PlayerRef{ID: id, Name: p.Name}
}

func (s *Service) refs(ids []uuid.UUID) []PlayerRef {
	refs := make([]PlayerRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, s.ref(id))
	}
	return refs
}

func (s *Service) matchView(m *domain.Match) MatchView {
	v := MatchView{
		ID:              m.ID(),
		OversPerInnings: m.OversPerInnings(),
		InningsPerTeam:  m.InningsPerTeam(),
		CompletedToss:   m.CompletedToss(),
		Toss:            m.Toss(),
		Innings:         []InningsView{},
		Complete:        m.IsComplete(),
		Target:          optional(m.Target()),
		RunsRequired:    optional(m.RunsRequired()),
		CanUndo:         m.CanUndo(),
	}
	for i, t := range m.Teams() {
		v.Teams[i] = TeamView{
			ID:      t.ID(),
			Name:    m.TeamName(t.ID()),
			Players: s.refs(t.Players()),
		}
	}
	for i, inn := range m.Innings() {
		v.Innings = append(v.Innings, s.inningsView(m, inn, i+1))
	}
	if winner, ok := m.Winner(); ok {
		id := winner.ID()
		v.Winner = &id
	}
	if res, ok := m.Result(); ok {
		v.Result = &res
		v.ResultText = res.Describe(m.TeamName(res.Winner))
	}
	return v
}

func (s *Service) inningsView(m *domain.Match, inn *domain.Innings, number int) InningsView {
	v := InningsView{
		ID:             inn.ID(),
		Number:         number,
		Team:           inn.TeamID(),
		TeamName:       m.TeamName(inn.TeamID()),
		Runs:           inn.TotalRuns(),
		Wickets:        inn.TotalWickets(),
		Overs:          inn.OversPlayed(),
		OversToPlay:    inn.OversToPlay(),
		RunRate:        inn.RunRate(),
		Summary:        inn.Summary(),
		Complete:       inn.IsComplete(),
		Declared:       inn.Declared(),
		CanUndo:        inn.CanUndo(),
		Target:         optional(inn.Target()),
		BallsRemaining: optional(inn.BallsRemaining()),
		Batters:        []BatterView{},
		YetToBat:       s.refs(inn.PlayersYetToBat()),
	}
	for _, line := range inn.Batters() {
		v.Batters = append(v.Batters, BatterView{
			PlayerRef:  s.ref(line.PlayerID),
			Out:        line.Out,
			Runs:       line.Runs,
			BallsFaced: line.BallsFaced,
			StrikeRate: line.StrikeRate,
			Balls:      line.Balls,
		})
	}
	return v
}

func optional(n int, ok bool) *int {
	if !ok {
		return nil
	}
	return &n
}
