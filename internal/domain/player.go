package domain

import (
	"github.com/google/uuid"
)

type Player struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Roster resolves player references held by teams, balls and scores.
type Roster interface {
	Player(id uuid.UUID) (Player, bool)
}

// Registry is the player registry. Insertion order is display order.
// Removing a player does not touch matches that still reference it.
type Registry struct {
	players map[uuid.UUID]*Player
	order   []uuid.UUID
}

var _ Roster = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		players: make(map[uuid.UUID]*Player),
	}
}

func (r *Registry) Add(name string) Player {
	return r.put(Player{ID: uuid.New(), Name: name})
}

func (r *Registry) put(p Player) Player {
	if _, ok := r.players[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.players[p.ID] = &p
	return p
}

// Update renames a player. Unknown ids are ignored.
func (r *Registry) Update(id uuid.UUID, name string) bool {
	p, ok := r.players[id]
	if !ok {
		return false
	}
	p.Name = name
	return true
}

// Remove deletes a player. Unknown ids are ignored.
func (r *Registry) Remove(id uuid.UUID) bool {
	if _, ok := r.players[id]; !ok {
		return false
	}
	delete(r.players, id)
	for i := range r.order {
		if r.order[i] == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry) Player(id uuid.UUID) (Player, bool) {
	p, ok := r.players[id]
	if !ok {
		return Player{}, false
	}
	return *p, true
}

func (r *Registry) List() []Player {
	players := make([]Player, 0, len(r.order))
	for _, id := range r.order {
		players = append(players, *r.players[id])
	}
	return players
}

func (r *Registry) Count() int {
	return len(r.order)
}
