// Package agent holds the per-side façade: a phase state machine that
// routes each decision tick to the pathfinder, the purchase planner,
// or the battle search.
package agent

import (
	"context"
	"errors"
	"math/rand"

	"github.com/looplab/fsm"

	"arena_ai/internal/battle"
	"arena_ai/internal/config"
	"arena_ai/internal/grid"
	"arena_ai/internal/shop"
)

const (
	PhaseIdle     = "idle"
	PhaseCatching = "catching"
	PhaseShopping = "shopping"
	PhaseBattling = "battling"
	PhaseDone     = "done"
)

const (
	EventStartCatching = "start_catching"
	EventStartShopping = "start_shopping"
	EventStartBattle   = "start_battle"
	EventFinish        = "finish"
)

// Agent drives one side. It owns no battle state beyond the Team
// handed to it; battle snapshots are read-only views built by the
// surrounding loop each turn.
type Agent struct {
	Name string
	Side battle.Side

	cfg      *config.GameConfig
	machine  *fsm.FSM
	searcher *battle.Searcher

	Team *battle.Team

	Pos     grid.Cell
	Caught  int
	targets []grid.Cell
	path    []grid.Cell
	pathIdx int
}

func New(name string, side battle.Side, cfg *config.GameConfig, rules *config.RulesConfig, team *battle.Team, rng *rand.Rand) *Agent {
	a := &Agent{
		Name:     name,
		Side:     side,
		cfg:      cfg,
		searcher: battle.NewSearcher(cfg, battle.NewAdvisor(cfg, rules), rng),
		Team:     team,
	}
	a.machine = fsm.NewFSM(
		PhaseIdle,
		fsm.Events{
			{Name: EventStartCatching, Src: []string{PhaseIdle}, Dst: PhaseCatching},
			{Name: EventStartShopping, Src: []string{PhaseCatching}, Dst: PhaseShopping},
			{Name: EventStartBattle, Src: []string{PhaseShopping}, Dst: PhaseBattling},
			{Name: EventFinish, Src: []string{PhaseBattling}, Dst: PhaseDone},
		},
		fsm.Callbacks{},
	)
	return a
}

func (a *Agent) Phase() string { return a.machine.Current() }

// EnterPhase fires the transition for the phase the surrounding loop
// is about to run. The loop owns phase timing; the façade only follows.
func (a *Agent) EnterPhase(event string) error {
	return a.machine.Event(context.Background(), event)
}

// SetTargets installs the target cells for the catching phase and
// places the agent at its spawn cell.
func (a *Agent) SetTargets(spawn grid.Cell, targets []grid.Cell) {
	a.Pos = spawn
	a.targets = append([]grid.Cell(nil), targets...)
	a.path = nil
	a.pathIdx = 0
	a.Caught = 0
}

// RemainingTargets reports how many targets are still uncaught.
func (a *Agent) RemainingTargets() int { return len(a.targets) }

// CatchTick advances the agent one movement tick: re-plan toward the
// nearest remaining target when there is no usable path, otherwise
// step one cell. Reaching a target consumes fuel and marks it caught.
// An unreachable target is not a fault; the agent holds position and
// re-plans next tick.
func (a *Agent) CatchTick(g *grid.Grid) (caught bool) {
	if len(a.targets) == 0 {
		return false
	}

	goal := a.nearestTarget()
	if a.Pos == goal {
		if a.Team.Fuel < a.cfg.Economy.FuelPerCatch {
			return false
		}
		a.Team.Fuel -= a.cfg.Economy.FuelPerCatch
		a.removeTarget(goal)
		a.Caught++
		a.path = nil
		a.pathIdx = 0
		return true
	}

	if a.pathIdx >= len(a.path)-1 || a.path[len(a.path)-1] != goal {
		path, err := grid.FindPath(g, a.Pos, goal)
		if errors.Is(err, grid.ErrNoPath) {
			a.path = nil
			a.pathIdx = 0
			return false
		}
		a.path = path
		a.pathIdx = 0
	}

	if a.pathIdx < len(a.path)-1 {
		a.pathIdx++
		a.Pos = a.path[a.pathIdx]
	}
	return false
}

func (a *Agent) nearestTarget() grid.Cell {
	best := a.targets[0]
	bestDist := grid.Manhattan(a.Pos, best)
	for _, t := range a.targets[1:] {
		if d := grid.Manhattan(a.Pos, t); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

func (a *Agent) removeTarget(c grid.Cell) {
	for i, t := range a.targets {
		if t == c {
			a.targets = append(a.targets[:i], a.targets[i+1:]...)
			return
		}
	}
}

// Shop spends the team's coins on elixirs, biggest heal first.
func (a *Agent) Shop() map[config.Tier]int {
	prices, heals := shop.Tables(a.cfg.Economy)
	plan := shop.PlanPurchases(a.Team.Coins, prices, heals)
	for tier, n := range plan {
		a.Team.Elixirs[tier] += n
	}
	a.Team.Coins -= shop.Cost(plan, prices)
	return plan
}

// BattleTick returns this side's action for the current snapshot. A
// defeated side yields the no-op Defend.
func (a *Agent) BattleTick(s *battle.Snapshot) (battle.Action, error) {
	return a.searcher.ChooseAction(s, a.Side)
}
