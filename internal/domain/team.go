package domain

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const teamNameLength = 3

// Team is a fixed grouping of players. Membership cannot change after the
// team is formed; the order of players is the batting order.
type Team struct {
	id      uuid.UUID
	players []uuid.UUID
}

func NewTeam(players []uuid.UUID) Team {
	return newTeam(uuid.New(), players)
}

func newTeam(id uuid.UUID, players []uuid.UUID) Team {
	members := make([]uuid.UUID, len(players))
	copy(members, players)
	return Team{id: id, players: members}
}

func (t Team) ID() uuid.UUID {
	return t.id
}

func (t Team) Players() []uuid.UUID {
	players := make([]uuid.UUID, len(t.players))
	copy(players, t.players)
	return players
}

func (t Team) Size() int {
	return len(t.players)
}

func (t Team) Has(playerID uuid.UUID) bool {
	return t.members().Contains(playerID)
}

func (t Team) members() mapset.Set[uuid.UUID] {
	return mapset.NewThreadUnsafeSet[uuid.UUID](t.players...)
}

// Name abbreviates the team from the first letter of each member's name,
// upper-cased and cut to three letters. Players missing from r are skipped.
func (t Team) Name(r Roster) string {
	initials := make([]rune, 0, len(t.players))
	for _, id := range t.players {
		p, ok := r.Player(id)
		if !ok {
			continue
		}
		for _, c := range p.Name {
			initials = append(initials, c)
			break
		}
	}
	name := []rune(cases.Upper(language.Und).String(string(initials)))
	if len(name) > teamNameLength {
		name = name[:teamNameLength]
	}
	return string(name)
}
