package domain

import (
	"github.com/google/uuid"
)

type EventType string

const (
	EventInningsStarted   EventType = "innings_started"
	EventInningsRetracted EventType = "innings_retracted"
	EventMatchWon         EventType = "match_won"
	EventResultRevoked    EventType = "result_revoked"
)

// Event reports a transition made by the match on its own. Innings is the
// 1-based position of the innings concerned.
type Event struct {
	Type    EventType
	MatchID uuid.UUID
	TeamID  uuid.UUID
	Innings int
}

// Subscribe registers fn to be called synchronously for every event.
func (m *Match) Subscribe(fn func(Event)) {
	m.subscribers = append(m.subscribers, fn)
}

func (m *Match) publish(e Event) {
	e.MatchID = m.id
	for _, fn := range m.subscribers {
		fn(e)
	}
}
