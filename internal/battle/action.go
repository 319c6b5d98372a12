package battle

import (
	"errors"
	"fmt"

	"arena_ai/internal/config"
)

type ActionKind int

const (
	Attack ActionKind = iota
	Defend
	Heal
	Swap
)

func (k ActionKind) String() string {
	switch k {
	case Attack:
		return "attack"
	case Defend:
		return "defend"
	case Heal:
		return "heal"
	case Swap:
		return "swap"
	}
	return "?"
}

// Action is one side's move for a single turn. Tier is set for Heal,
// Target for Swap.
type Action struct {
	Kind   ActionKind  `json:"kind"`
	Tier   config.Tier `json:"tier,omitempty"`
	Target int         `json:"target,omitempty"`
}

func (a Action) String() string {
	switch a.Kind {
	case Heal:
		return fmt.Sprintf("heal(%s)", a.Tier)
	case Swap:
		return fmt.Sprintf("swap(%d)", a.Target)
	}
	return a.Kind.String()
}

// ErrIllegalAction marks an action applied outside its legal set. It
// indicates a legality-check bug, not a recoverable condition.
var ErrIllegalAction = errors.New("battle: illegal action")

// LegalActions enumerates every legal action for side, purely from the
// snapshot. Attack and Defend are always legal; Heal needs an elixir of
// that tier and a damaged active; Swap needs another alive combatant.
// Order is fixed: attack, defend, heals (Small, Medium, Large), swaps
// by bench index.
func LegalActions(s *Snapshot, side Side) []Action {
	t := s.Team(side)
	acts := []Action{{Kind: Attack}, {Kind: Defend}}

	active := t.ActivePokemon()
	if active.HP < active.MaxHP {
		for _, tier := range []config.Tier{config.TierSmall, config.TierMedium, config.TierLarge} {
			if t.Elixirs[tier] > 0 {
				acts = append(acts, Action{Kind: Heal, Tier: tier})
			}
		}
	}
	for i := range t.Roster {
		if i != t.Active && t.Roster[i].Alive() {
			acts = append(acts, Action{Kind: Swap, Target: i})
		}
	}
	return acts
}

// IsLegal reports whether a is in side's legal set.
func IsLegal(s *Snapshot, side Side, a Action) bool {
	for _, l := range LegalActions(s, side) {
		if l == a {
			return true
		}
	}
	return false
}
