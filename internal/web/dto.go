package web

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/goserg/cricketscore/internal/config"
	"github.com/goserg/cricketscore/internal/domain"
	"github.com/goserg/cricketscore/internal/normalize"
)

type playerRequest struct {
	Name string `json:"name"`
}

func (r playerRequest) Validate() error {
	if normalize.Name(r.Name) == "" {
		return errors.New("player name must not be empty")
	}
	return nil
}

// createMatch falls back to the configured defaults for omitted fields.
type createMatch struct {
	InningsPerTeam int           `json:"inningsPerTeam"`
	Overs          *domain.Overs `json:"overs"`
}

func (c createMatch) withDefaults(cfg config.Match) createMatch {
	if c.InningsPerTeam == 0 {
		c.InningsPerTeam = cfg.DefaultInningsPerTeam
	}
	if c.Overs == nil {
		overs := cfg.DefaultOvers
		c.Overs = &overs
	}
	return c
}

func (c createMatch) Validate() error {
	var err error
	if c.InningsPerTeam != 1 && c.InningsPerTeam != 2 {
		err = errors.Join(err, domain.ErrInvalidInningsPerTeam)
	}
	if c.Overs == nil || !c.Overs.Valid() {
		err = errors.Join(err, domain.ErrInvalidOvers)
	}
	return err
}

type startInnings struct {
	Team uuid.UUID `json:"team"`
}

func (r startInnings) Validate() error {
	if r.Team == uuid.Nil {
		return errors.New("batting team is required")
	}
	return nil
}

type flipCoin struct {
	Call domain.CoinSide `json:"call"`
}

func (r flipCoin) Validate() error {
	if r.Call != domain.Heads && r.Call != domain.Tails {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCall, r.Call)
	}
	return nil
}

type tossDecision struct {
	Decision domain.TossDecision `json:"decision"`
}

func (r tossDecision) Validate() error {
	if r.Decision != domain.Bat && r.Decision != domain.Bowl {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDecision, r.Decision)
	}
	return nil
}

type addBall struct {
	Runs   int       `json:"runs"`
	Wicket bool      `json:"wicket"`
	Player uuid.UUID `json:"player"`
}

func (b addBall) Validate() error {
	var err error
	if !domain.ValidRuns(b.Runs) {
		err = errors.Join(err, fmt.Errorf("%w: %d", domain.ErrInvalidRuns, b.Runs))
	}
	if b.Player == uuid.Nil {
		err = errors.Join(err, errors.New("batter is required"))
	}
	return err
}
