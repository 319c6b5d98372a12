package battle

import "arena_ai/internal/config"

// Advice is the advisor's weighted recommendation over Heal and Swap.
type Advice map[ActionKind]float64

// Advisor evaluates the fuzzy rule table against a snapshot. The table
// is plain data; rules fire independently and combine by taking the
// maximum weight per action, so no combined weight can exceed 1.
type Advisor struct {
	game  *config.GameConfig
	rules *config.RulesConfig
}

func NewAdvisor(game *config.GameConfig, rules *config.RulesConfig) *Advisor {
	if rules == nil {
		rules = config.DefaultRules()
	}
	return &Advisor{game: game, rules: rules}
}

// Advise maps the snapshot to weights in [0,1] for Heal and Swap, as
// seen from side. The search treats these as an additive preference
// bias, never a hard override.
func (ad *Advisor) Advise(s *Snapshot, side Side) Advice {
	own := s.Team(side).ActivePokemon()
	enemy := s.Team(side.Opponent()).ActivePokemon()

	ownBand := ad.rules.Classify(own.Ratio())
	enemyBand := ad.rules.Classify(enemy.Ratio())
	disadvantaged := ad.game.Disadvantaged(own.Type, enemy.Type)

	out := Advice{}
	for _, r := range ad.rules.Rules {
		if !bandMatch(r.Own, ownBand) || !bandMatch(r.Enemy, enemyBand) {
			continue
		}
		if r.Disadvantage && !disadvantaged {
			continue
		}
		kind, ok := ruleAction(r.Action)
		if !ok {
			continue
		}
		if r.Weight > out[kind] {
			out[kind] = r.Weight
		}
	}
	return out
}

func bandMatch(want, got config.Band) bool {
	return want == config.BandAny || want == got
}

func ruleAction(name string) (ActionKind, bool) {
	switch name {
	case "heal":
		return Heal, true
	case "swap":
		return Swap, true
	}
	return 0, false
}
