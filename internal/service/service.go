package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/goserg/cricketscore/internal/config"
	"github.com/goserg/cricketscore/internal/domain"
	"github.com/goserg/cricketscore/internal/normalize"
	"github.com/goserg/cricketscore/internal/random"
	"github.com/goserg/cricketscore/internal/storage"
	"github.com/sirupsen/logrus"
)

// Service is the root store. It owns the player registry and every match,
// runs one command at a time and saves a snapshot after each mutation.
type Service struct {
	mu      sync.Mutex
	players *domain.Registry
	matches map[uuid.UUID]*domain.Match
	order   []uuid.UUID

	storage storage.SnapshotStorage
	rng     *rand.Rand
	cfg     config.Match
	log     *logrus.Entry
}

type Option func(*Service)

// WithRand replaces the crypto-seeded source used for shuffles and tosses.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		s.rng = rng
	}
}

func New(l *logrus.Logger, st storage.SnapshotStorage, cfg config.Match, opts ...Option) (*Service, error) {
	s := &Service{
		players: domain.NewRegistry(),
		matches: make(map[uuid.UUID]*domain.Match),
		storage: st,
		cfg:     cfg,
		log:     l.WithField("from", "service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		rng, err := random.New()
		if err != nil {
			return nil, err
		}
		s.rng = rng
	}
	return s, nil
}

// Load replaces the in-memory state with the stored snapshot. An empty
// storage leaves the service empty.
func (s *Service) Load(ctx context.Context) error {
	snap, err := s.storage.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNoSnapshot) {
			s.log.Info("no snapshot stored, starting empty")
			return nil
		}
		return fmt.Errorf("load snapshot: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.restore(snap); err != nil {
		return err
	}
	s.log.WithField("players", s.players.Count()).WithField("matches", len(s.order)).Info("snapshot loaded")
	return nil
}

func (s *Service) restore(snap domain.Snapshot) error {
	if snap.Version != domain.SnapshotVersion {
		return fmt.Errorf("%w: version %d", domain.ErrUnsupportedSnapshot, snap.Version)
	}
	players := domain.RestoreRegistry(snap.Players)
	matches := make(map[uuid.UUID]*domain.Match, len(snap.Matches))
	order := make([]uuid.UUID, 0, len(snap.Matches))
	for _, ms := range snap.Matches {
		if _, dup := matches[ms.ID]; dup {
			return fmt.Errorf("%w: match %s appears twice", domain.ErrCorruptSnapshot, ms.ID)
		}
		m, err := domain.RestoreMatch(ms, players)
		if err != nil {
			return err
		}
		matches[m.ID()] = m
		order = append(order, m.ID())
	}
	s.players = players
	s.matches = matches
	s.order = order
	for _, id := range order {
		s.watch(s.matches[id])
	}
	return nil
}

func (s *Service) watch(m *domain.Match) {
	m.Subscribe(func(e domain.Event) {
		log := s.log.WithField("match", e.MatchID).WithField("innings", e.Innings)
		if e.TeamID != uuid.Nil {
			log = log.WithField("team", m.TeamName(e.TeamID))
		}
		log.Info(string(e.Type))
	})
}

func (s *Service) snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		Version: domain.SnapshotVersion,
		Players: s.players.Snapshot(),
		Matches: make([]domain.MatchSnapshot, 0, len(s.order)),
	}
	for _, id := range s.order {
		snap.Matches = append(snap.Matches, s.matches[id].Snapshot())
	}
	return snap
}

// persist must be called with mu held. The in-memory state stays as it is
// when saving fails.
func (s *Service) persist(ctx context.Context) error {
	if err := s.storage.Save(ctx, s.snapshot()); err != nil {
		s.log.WithError(err).Error("save snapshot")
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *Service) AddPlayer(ctx context.Context, name string) (domain.Player, error) {
	name = normalize.Name(name)
	if name == "" {
		return domain.Player{}, ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.players.Add(name)
	s.log.WithField("player", p.ID).Debug("player added")
	if err := s.persist(ctx); err != nil {
		return domain.Player{}, err
	}
	return p, nil
}

// UpdatePlayer renames a player. Unknown ids are ignored.
func (s *Service) UpdatePlayer(ctx context.Context, id uuid.UUID, name string) error {
	name = normalize.Name(name)
	if name == "" {
		return ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.players.Update(id, name) {
		return nil
	}
	s.log.WithField("player", id).Debug("player renamed")
	return s.persist(ctx)
}

// RemovePlayer deletes a player from the registry. Matches keep referring to
// the id; their views show the player without a name.
func (s *Service) RemovePlayer(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.players.Remove(id) {
		return nil
	}
	s.log.WithField("player", id).Debug("player removed")
	return s.persist(ctx)
}

func (s *Service) GetPlayer(id uuid.UUID) (domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players.Player(id)
	if !ok {
		return domain.Player{}, ErrPlayerNotFound
	}
	return p, nil
}

func (s *Service) ListPlayers() []domain.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players.List()
}

func (s *Service) PlayersCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players.Count()
}

// AddMatch shuffles every registered player into two teams and creates a
// match between them.
func (s *Service) AddMatch(ctx context.Context, inningsPerTeam int, overs domain.Overs) (MatchView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	players := s.players.List()
	if len(players) < s.cfg.MinPlayers {
		return MatchView{}, fmt.Errorf("%w: have %d, need %d", ErrTooFewPlayers, len(players), s.cfg.MinPlayers)
	}
	ids := make([]uuid.UUID, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	squads := formTeams(ids, s.rng, s.cfg.ShareOddPlayer)
	teams := [2]domain.Team{domain.NewTeam(squads[0]), domain.NewTeam(squads[1])}
	m, err := domain.NewMatch(teams, inningsPerTeam, overs, s.players)
	if err != nil {
		return MatchView{}, err
	}
	s.watch(m)
	s.matches[m.ID()] = m
	s.order = append(s.order, m.ID())
	s.log.WithField("match", m.ID()).
		WithField("teams", m.TeamName(teams[0].ID())+" v "+m.TeamName(teams[1].ID())).
		Debug("match added")
	if err := s.persist(ctx); err != nil {
		return MatchView{}, err
	}
	return s.matchView(m), nil
}

// formTeams splits the shuffled squad in half by position. An odd player
// out joins both teams when share is set and the second team otherwise.
func formTeams(ids []uuid.UUID, rng *rand.Rand, share bool) [2][]uuid.UUID {
	shuffled := append([]uuid.UUID(nil), ids...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	half := len(shuffled) / 2
	first := append([]uuid.UUID(nil), shuffled[:half]...)
	second := append([]uuid.UUID(nil), shuffled[half:2*half]...)
	if len(shuffled)%2 == 1 {
		leftover := shuffled[len(shuffled)-1]
		if share {
			first = append(first, leftover)
		}
		second = append(second, leftover)
	}
	return [2][]uuid.UUID{first, second}
}

// DeleteMatch removes a match for good. Unknown ids are ignored.
func (s *Service) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[id]; !ok {
		return nil
	}
	delete(s.matches, id)
	for i := range s.order {
		if s.order[i] == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.log.WithField("match", id).Debug("match deleted")
	return s.persist(ctx)
}

func (s *Service) GetMatch(id uuid.UUID) (MatchView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[id]
	if !ok {
		return MatchView{}, ErrMatchNotFound
	}
	return s.matchView(m), nil
}

// ListMatches returns the matches in the order they were created.
func (s *Service) ListMatches() []MatchView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]MatchView, 0, len(s.order))
	for _, id := range s.order {
		views = append(views, s.matchView(s.matches[id]))
	}
	return views
}

func (s *Service) mutate(ctx context.Context, id uuid.UUID, command string, fn func(m *domain.Match) error) (MatchView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[id]
	if !ok {
		return MatchView{}, ErrMatchNotFound
	}
	log := s.log.WithField("match", id).WithField("command", command)
	if err := fn(m); err != nil {
		log.WithError(err).Debug("command rejected")
		return MatchView{}, err
	}
	log.Debug("command applied")
	if err := s.persist(ctx); err != nil {
		return MatchView{}, err
	}
	return s.matchView(m), nil
}

func (s *Service) StartInnings(ctx context.Context, matchID, teamID uuid.UUID) (MatchView, error) {
	return s.mutate(ctx, matchID, "start innings", func(m *domain.Match) error {
		return m.StartInnings(teamID)
	})
}

func (s *Service) CompleteToss(ctx context.Context, matchID uuid.UUID) (MatchView, error) {
	return s.mutate(ctx, matchID, "complete toss", func(m *domain.Match) error {
		m.CompleteToss()
		return nil
	})
}

func (s *Service) CallToss(ctx context.Context, matchID uuid.UUID) (MatchView, error) {
	return s.mutate(ctx, matchID, "call toss", func(m *domain.Match) error {
		_, err := m.CallToss(s.rng)
		return err
	})
}

func (s *Service) FlipCoin(ctx context.Context, matchID uuid.UUID, call domain.CoinSide) (MatchView, error) {
	return s.mutate(ctx, matchID, "flip coin", func(m *domain.Match) error {
		_, err := m.FlipCoin(call, s.rng)
		return err
	})
}

func (s *Service) DecideToss(ctx context.Context, matchID uuid.UUID, decision domain.TossDecision) (MatchView, error) {
	return s.mutate(ctx, matchID, "decide toss", func(m *domain.Match) error {
		return m.DecideToss(decision)
	})
}

func (s *Service) AddBall(ctx context.Context, matchID uuid.UUID, runs int, wicket bool, playerID uuid.UUID) (MatchView, error) {
	return s.mutate(ctx, matchID, "add ball", func(m *domain.Match) error {
		return m.AddBall(runs, wicket, playerID)
	})
}

// UndoLastBall takes back the last ball of the match, stepping back into the
// previous innings when the current one has not started.
func (s *Service) UndoLastBall(ctx context.Context, matchID uuid.UUID) (MatchView, error) {
	return s.mutate(ctx, matchID, "undo ball", func(m *domain.Match) error {
		return m.UndoLastBall()
	})
}

// UndoInningsBall takes back the last ball of the numbered innings (1-based).
func (s *Service) UndoInningsBall(ctx context.Context, matchID uuid.UUID, number int) (MatchView, error) {
	return s.mutate(ctx, matchID, "undo innings ball", func(m *domain.Match) error {
		innings := m.Innings()
		if number < 1 || number > len(innings) {
			return ErrInningsNotFound
		}
		return innings[number-1].UndoLastBall()
	})
}

func (s *Service) Declare(ctx context.Context, matchID uuid.UUID) (MatchView, error) {
	return s.mutate(ctx, matchID, "declare", func(m *domain.Match) error {
		return m.Declare()
	})
}

func (s *Service) Export() ([]byte, error) {
	s.mu.Lock()
	exportData := s.snapshot()
	s.mu.Unlock()
	return json.Marshal(exportData)
}

// Import replaces the whole state with an exported one. Nothing changes if
// the data does not restore cleanly.
func (s *Service) Import(ctx context.Context, data []byte) error {
	var importData domain.Snapshot
	if err := json.Unmarshal(data, &importData); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExport, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.restore(importData); err != nil {
		return err
	}
	s.log.WithField("players", s.players.Count()).WithField("matches", len(s.order)).Info("snapshot imported")
	return s.persist(ctx)
}
