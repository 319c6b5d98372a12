package battle

import (
	"math"
	"math/rand"

	"arena_ai/internal/config"
	"arena_ai/internal/util"
)

// Searcher picks one side's action by depth-limited minimax with
// alpha-beta pruning over per-ply snapshot transitions. The advisor's
// weights bias root branches; everything below the root is plain
// minimax so pruning stays value-exact.
type Searcher struct {
	cfg     *config.GameConfig
	advisor *Advisor
	rng     *rand.Rand
}

func NewSearcher(cfg *config.GameConfig, advisor *Advisor, rng *rand.Rand) *Searcher {
	return &Searcher{cfg: cfg, advisor: advisor, rng: rng}
}

// Evaluate scores a snapshot from pov's perspective: total HP margin
// plus an alive-count bonus per surviving combatant.
func Evaluate(cfg *config.GameConfig, s *Snapshot, pov Side) int {
	own := s.Team(pov)
	enemy := s.Team(pov.Opponent())
	return (own.TotalHP() - enemy.TotalHP()) +
		(own.AliveCount()-enemy.AliveCount())*cfg.Battle.AliveBonus
}

// ChooseAction returns the best action for side at the configured
// depth. A fully defeated side gets the no-op Defend without any
// search. Ties among equal-valued root actions break uniformly at
// random from the injected RNG.
func (sr *Searcher) ChooseAction(s *Snapshot, side Side) (Action, error) {
	if err := s.Validate(); err != nil {
		return Action{}, err
	}
	if s.Team(side).Defeated() {
		return Action{Kind: Defend}, nil
	}

	advice := sr.advisor.Advise(s, side)
	root := s.Clone()
	root.Turn = side

	acts := LegalActions(root, side)
	depth := sr.cfg.Battle.SearchDepth

	bestVal := math.Inf(-1)
	var best []Action
	for _, a := range acts {
		child := ApplyPly(sr.cfg, root, side, a)
		val := sr.search(child, side, depth-1, math.Inf(-1), math.Inf(1))
		val += advice[a.Kind] * sr.cfg.Battle.AdviceScale
		switch {
		case val > bestVal:
			bestVal = val
			best = best[:0]
			best = append(best, a)
		case val == bestVal:
			best = append(best, a)
		}
	}
	return best[util.Pick(sr.rng, len(best))], nil
}

func (sr *Searcher) search(s *Snapshot, pov Side, depth int, alpha, beta float64) float64 {
	if depth <= 0 || s.Over() {
		return float64(Evaluate(sr.cfg, s, pov))
	}
	mover := s.Turn
	acts := LegalActions(s, mover)

	if mover == pov {
		best := math.Inf(-1)
		for _, a := range acts {
			v := sr.search(ApplyPly(sr.cfg, s, mover, a), pov, depth-1, alpha, beta)
			if v > best {
				best = v
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, a := range acts {
		v := sr.search(ApplyPly(sr.cfg, s, mover, a), pov, depth-1, alpha, beta)
		if v < best {
			best = v
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
