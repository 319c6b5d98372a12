package battle

import (
	"errors"

	"arena_ai/internal/config"
)

// Side identifies one of the two agents.
type Side int

const (
	SideA Side = 0
	SideB Side = 1
)

func (s Side) Opponent() Side { return 1 - s }

// ErrEmptyRoster marks a snapshot whose side has zero combatants. This
// is an input-contract violation and is rejected before any search.
var ErrEmptyRoster = errors.New("battle: empty roster")

type Pokemon struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
	Atk   int    `json:"atk"`
	Def   int    `json:"def"`
}

func (p *Pokemon) Alive() bool { return p.HP > 0 }

func (p *Pokemon) Ratio() float64 {
	if p.MaxHP <= 0 {
		return 0
	}
	return float64(p.HP) / float64(p.MaxHP)
}

// TakeDamage clamps HP at zero.
func (p *Pokemon) TakeDamage(dmg int) {
	if !p.Alive() {
		return
	}
	p.HP -= dmg
	if p.HP < 0 {
		p.HP = 0
	}
}

// Heal clamps HP at MaxHP. Fainted combatants cannot be healed.
func (p *Pokemon) Heal(amt int) {
	if !p.Alive() {
		return
	}
	p.HP += amt
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// Team is one side's roster plus its resources.
type Team struct {
	Name    string              `json:"name"`
	Roster  []Pokemon           `json:"roster"`
	Active  int                 `json:"active"`
	Elixirs map[config.Tier]int `json:"elixirs"`
	Coins   int                 `json:"coins"`
	Fuel    int                 `json:"fuel"`
}

func NewTeam(def config.TeamDef, startFuel, coins int) Team {
	t := Team{
		Name:    def.Name,
		Roster:  make([]Pokemon, len(def.Species)),
		Elixirs: map[config.Tier]int{},
		Coins:   coins,
		Fuel:    startFuel,
	}
	for i, sp := range def.Species {
		t.Roster[i] = Pokemon{
			Name: sp.Name, Type: sp.Type,
			HP: sp.MaxHP, MaxHP: sp.MaxHP,
			Atk: sp.Atk, Def: sp.Def,
		}
	}
	return t
}

func (t *Team) ActivePokemon() *Pokemon { return &t.Roster[t.Active] }

func (t *Team) AliveCount() int {
	n := 0
	for i := range t.Roster {
		if t.Roster[i].Alive() {
			n++
		}
	}
	return n
}

func (t *Team) TotalHP() int {
	hp := 0
	for i := range t.Roster {
		hp += t.Roster[i].HP
	}
	return hp
}

func (t *Team) Defeated() bool { return t.AliveCount() == 0 }

// advanceActive moves the active index to the first alive bench slot
// when the current active has fainted.
func (t *Team) advanceActive() {
	if t.Roster[t.Active].Alive() {
		return
	}
	for i := range t.Roster {
		if t.Roster[i].Alive() {
			t.Active = i
			return
		}
	}
}

func (t *Team) clone() Team {
	out := *t
	out.Roster = append([]Pokemon(nil), t.Roster...)
	out.Elixirs = make(map[config.Tier]int, len(t.Elixirs))
	for k, v := range t.Elixirs {
		out.Elixirs[k] = v
	}
	return out
}

// Snapshot is an immutable point-in-time battle state. The search
// never mutates a snapshot in place; every transition clones first.
type Snapshot struct {
	Teams     [2]Team `json:"teams"`
	Field     string  `json:"field"`
	Turn      Side    `json:"turn"`
	Defending [2]bool `json:"defending"`
}

func (s *Snapshot) Team(side Side) *Team { return &s.Teams[side] }

func (s *Snapshot) Clone() *Snapshot {
	out := *s
	out.Teams[0] = s.Teams[0].clone()
	out.Teams[1] = s.Teams[1].clone()
	return &out
}

// Validate rejects snapshots that violate the input contract.
func (s *Snapshot) Validate() error {
	for i := range s.Teams {
		if len(s.Teams[i].Roster) == 0 {
			return ErrEmptyRoster
		}
	}
	return nil
}

// Over reports whether either side is fully defeated.
func (s *Snapshot) Over() bool {
	return s.Teams[0].Defeated() || s.Teams[1].Defeated()
}
