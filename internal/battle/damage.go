package battle

import (
	"math"
	"math/rand"

	"arena_ai/internal/config"
	"arena_ai/internal/util"
)

// ExpectedDamage is the deterministic damage used while exploring
// hypothetical futures: base max(floor, atk - def/2), times the type
// advantage, times the field boost, no jitter.
func ExpectedDamage(cfg *config.GameConfig, att, def *Pokemon, field string) int {
	base := att.Atk - def.Def/2
	if base < cfg.Battle.DamageFloor {
		base = cfg.Battle.DamageFloor
	}
	mult := cfg.Advantage(att.Type, def.Type)
	if att.Type == field {
		mult *= cfg.Battle.FieldBoost
	}
	return int(math.Round(float64(base) * mult))
}

// RollDamage is the live-resolution damage: expected damage with a
// uniform jitter multiplier rolled from rng.
func RollDamage(cfg *config.GameConfig, att, def *Pokemon, field string, rng *rand.Rand) int {
	base := att.Atk - def.Def/2
	if base < cfg.Battle.DamageFloor {
		base = cfg.Battle.DamageFloor
	}
	mult := cfg.Advantage(att.Type, def.Type)
	if att.Type == field {
		mult *= cfg.Battle.FieldBoost
	}
	mult *= util.Jitter(rng, cfg.Battle.JitterMin, cfg.Battle.JitterMax)
	return int(math.Round(float64(base) * mult))
}

// ApplyPly applies one side's action to a fresh copy of s and returns
// the successor snapshot with the turn handed to the opponent. The
// acting side's defend flag is cleared first; Defend re-arms it, and an
// Attack against a defending opponent is halved. Fainted actives are
// replaced by the first alive bench slot. Deterministic: uses expected
// damage only.
func ApplyPly(cfg *config.GameConfig, s *Snapshot, side Side, act Action) *Snapshot {
	next := s.Clone()
	next.Defending[side] = false

	me := next.Team(side)
	opp := next.Team(side.Opponent())

	switch act.Kind {
	case Defend:
		next.Defending[side] = true
	case Swap:
		if act.Target >= 0 && act.Target < len(me.Roster) && me.Roster[act.Target].Alive() {
			me.Active = act.Target
		}
	case Heal:
		if me.Elixirs[act.Tier] > 0 {
			me.ActivePokemon().Heal(cfg.Economy.Elixirs[act.Tier].Heal)
			me.Elixirs[act.Tier]--
		}
	case Attack:
		atk := me.ActivePokemon()
		tgt := opp.ActivePokemon()
		if atk.Alive() && tgt.Alive() {
			dmg := ExpectedDamage(cfg, atk, tgt, next.Field)
			if next.Defending[side.Opponent()] {
				dmg = int(float64(dmg) * cfg.Battle.DefendFactor)
			}
			tgt.TakeDamage(dmg)
			opp.advanceActive()
		}
	}

	next.Turn = side.Opponent()
	return next
}

// TurnReport describes what happened in one simultaneous turn.
type TurnReport struct {
	Damage [2]int
	Healed [2]int
	Faints []string
}

// ResolveTurn resolves both sides' actions for one real turn the way
// the live battle does: swaps and heals land first, then both attacks
// with defend halving and jittered damage, then faint replacement.
func ResolveTurn(cfg *config.GameConfig, s *Snapshot, acts [2]Action, rng *rand.Rand) (*Snapshot, TurnReport) {
	next := s.Clone()
	var rep TurnReport

	for side := SideA; side <= SideB; side++ {
		t := next.Team(side)
		switch acts[side].Kind {
		case Swap:
			tgt := acts[side].Target
			if tgt >= 0 && tgt < len(t.Roster) && t.Roster[tgt].Alive() {
				t.Active = tgt
			}
		case Heal:
			tier := acts[side].Tier
			if t.Elixirs[tier] > 0 {
				before := t.ActivePokemon().HP
				t.ActivePokemon().Heal(cfg.Economy.Elixirs[tier].Heal)
				t.Elixirs[tier]--
				rep.Healed[side] = t.ActivePokemon().HP - before
			}
		}
	}

	defending := [2]bool{acts[0].Kind == Defend, acts[1].Kind == Defend}
	for side := SideA; side <= SideB; side++ {
		if acts[side].Kind != Attack {
			continue
		}
		atk := next.Team(side).ActivePokemon()
		tgt := next.Team(side.Opponent()).ActivePokemon()
		if !atk.Alive() || !tgt.Alive() {
			continue
		}
		dmg := RollDamage(cfg, atk, tgt, next.Field, rng)
		if defending[side.Opponent()] {
			dmg = int(float64(dmg) * cfg.Battle.DefendFactor)
		}
		tgt.TakeDamage(dmg)
		rep.Damage[side] = dmg
		if !tgt.Alive() {
			rep.Faints = append(rep.Faints, tgt.Name)
		}
	}

	next.Team(SideA).advanceActive()
	next.Team(SideB).advanceActive()
	next.Defending = [2]bool{}
	return next, rep
}
