package domain

import (
	"math/rand"

	"github.com/google/uuid"
)

type CoinSide string

const (
	Heads CoinSide = "heads"
	Tails CoinSide = "tails"
)

type TossDecision string

const (
	Bat  TossDecision = "bat"
	Bowl TossDecision = "bowl"
)

// Toss records how the first innings was decided. Fields fill in as the toss
// proceeds: the calling team is drawn, it calls, the coin lands, the winner
// decides.
type Toss struct {
	CallingTeam uuid.UUID    `json:"callingTeam"`
	Call        CoinSide     `json:"call,omitempty"`
	Result      CoinSide     `json:"result,omitempty"`
	Winner      uuid.UUID    `json:"winner"`
	Decision    TossDecision `json:"decision,omitempty"`
}

// CallToss picks at random which team calls. Calling again before the coin
// is flipped draws again.
func (m *Match) CallToss(rng *rand.Rand) (Team, error) {
	if m.completedToss {
		return Team{}, ErrTossComplete
	}
	caller := m.teams[rng.Intn(2)]
	m.toss = Toss{CallingTeam: caller.id}
	return caller, nil
}

// FlipCoin resolves the calling team's call. The calling team wins the toss
// if the coin lands the way it called.
func (m *Match) FlipCoin(call CoinSide, rng *rand.Rand) (Toss, error) {
	if m.completedToss {
		return Toss{}, ErrTossComplete
	}
	if m.toss.CallingTeam == uuid.Nil {
		return Toss{}, ErrTossNotCalled
	}
	if call != Heads && call != Tails {
		return Toss{}, ErrInvalidCall
	}
	result := Tails
	if rng.Float64() > 0.5 {
		result = Heads
	}
	m.toss.Call = call
	m.toss.Result = result
	m.toss.Winner = m.toss.CallingTeam
	if call != result {
		m.toss.Winner = m.Opponent(m.toss.CallingTeam).id
	}
	return m.toss, nil
}

// DecideToss applies the toss winner's choice: the batting side's innings
// starts and the toss is completed.
func (m *Match) DecideToss(decision TossDecision) error {
	if m.completedToss {
		return ErrTossComplete
	}
	if m.toss.Winner == uuid.Nil {
		return ErrTossNotCalled
	}
	batting := m.toss.Winner
	switch decision {
	case Bat:
	case Bowl:
		batting = m.Opponent(m.toss.Winner).id
	default:
		return ErrInvalidDecision
	}
	if err := m.StartInnings(batting); err != nil {
		return err
	}
	m.toss.Decision = decision
	m.CompleteToss()
	return nil
}
