package agent

import (
	"testing"

	"arena_ai/internal/battle"
	"arena_ai/internal/config"
	"arena_ai/internal/grid"
	"arena_ai/internal/util"
)

func newTestAgent(t *testing.T) (*Agent, *config.GameConfig) {
	t.Helper()
	cfg := config.Default()
	team := battle.NewTeam(cfg.Teams[0], cfg.Economy.StartFuel, cfg.Economy.CoinsPerAgent)
	return New(cfg.Teams[0].Name, battle.SideA, cfg, nil, &team, util.New(1)), cfg
}

func TestPhaseTransitions(t *testing.T) {
	a, _ := newTestAgent(t)
	if a.Phase() != PhaseIdle {
		t.Fatalf("initial phase = %s, want idle", a.Phase())
	}

	// Skipping a phase is rejected.
	if err := a.EnterPhase(EventStartBattle); err == nil {
		t.Fatal("idle -> battling should be rejected")
	}

	steps := []struct {
		event string
		want  string
	}{
		{EventStartCatching, PhaseCatching},
		{EventStartShopping, PhaseShopping},
		{EventStartBattle, PhaseBattling},
		{EventFinish, PhaseDone},
	}
	for _, st := range steps {
		if err := a.EnterPhase(st.event); err != nil {
			t.Fatalf("EnterPhase(%s): %v", st.event, err)
		}
		if a.Phase() != st.want {
			t.Fatalf("phase = %s, want %s", a.Phase(), st.want)
		}
	}
}

func TestCatchTickWalksAndCatches(t *testing.T) {
	a, cfg := newTestAgent(t)
	g := grid.New(9, 9)
	a.SetTargets(grid.Cell{R: 4, C: 4}, []grid.Cell{{R: 4, C: 6}})

	fuelBefore := a.Team.Fuel
	caught := false
	for i := 0; i < 10 && !caught; i++ {
		caught = a.CatchTick(g)
	}
	if !caught {
		t.Fatal("target never caught on an open grid")
	}
	if a.Caught != 1 || a.RemainingTargets() != 0 {
		t.Fatalf("caught=%d remaining=%d, want 1 and 0", a.Caught, a.RemainingTargets())
	}
	if a.Team.Fuel != fuelBefore-cfg.Economy.FuelPerCatch {
		t.Fatalf("fuel = %d, want %d", a.Team.Fuel, fuelBefore-cfg.Economy.FuelPerCatch)
	}
	if a.Pos != (grid.Cell{R: 4, C: 6}) {
		t.Fatalf("agent at %v, want the target cell", a.Pos)
	}
}

func TestCatchTickHoldsWithoutFuel(t *testing.T) {
	a, _ := newTestAgent(t)
	g := grid.New(9, 9)
	a.SetTargets(grid.Cell{R: 4, C: 4}, []grid.Cell{{R: 4, C: 4}})
	a.Team.Fuel = 5 // below the per-catch cost

	for i := 0; i < 5; i++ {
		if a.CatchTick(g) {
			t.Fatal("caught a target without fuel")
		}
	}
	if a.RemainingTargets() != 1 {
		t.Fatal("target disappeared without being caught")
	}
}

func TestCatchTickUnreachableTargetHolds(t *testing.T) {
	a, _ := newTestAgent(t)
	g := grid.New(9, 9)
	goal := grid.Cell{R: 4, C: 6}
	for _, c := range []grid.Cell{{R: 3, C: 6}, {R: 5, C: 6}, {R: 4, C: 5}, {R: 4, C: 7}} {
		g.Block(c)
	}
	a.SetTargets(grid.Cell{R: 4, C: 2}, []grid.Cell{goal})

	pos := a.Pos
	for i := 0; i < 5; i++ {
		if a.CatchTick(g) {
			t.Fatal("caught an unreachable target")
		}
	}
	if a.Pos != pos {
		t.Fatalf("agent moved to %v while goal unreachable", a.Pos)
	}

	// Opening the wall lets the next re-plan succeed.
	open := grid.New(9, 9)
	moved := false
	for i := 0; i < 20; i++ {
		a.CatchTick(open)
		if a.Pos != pos {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatal("agent never re-planned after the path opened")
	}
}

func TestCatchTickPicksNearestTarget(t *testing.T) {
	a, _ := newTestAgent(t)
	g := grid.New(12, 12)
	near := grid.Cell{R: 5, C: 7}
	far := grid.Cell{R: 10, C: 10}
	a.SetTargets(grid.Cell{R: 5, C: 5}, []grid.Cell{far, near})

	for i := 0; i < 6; i++ {
		if a.CatchTick(g) {
			break
		}
	}
	if a.RemainingTargets() != 1 {
		t.Fatal("nearest target not caught first")
	}
	if a.Caught != 1 {
		t.Fatalf("caught = %d, want 1", a.Caught)
	}
}

func TestShopSpendsCoins(t *testing.T) {
	a, cfg := newTestAgent(t)
	plan := a.Shop()
	// Default budget 100 buys two Large elixirs.
	if plan[config.TierLarge] != 2 {
		t.Fatalf("plan = %v, want two Large", plan)
	}
	if a.Team.Elixirs[config.TierLarge] != 2 {
		t.Fatalf("elixirs = %v, purchases not stocked", a.Team.Elixirs)
	}
	if a.Team.Coins != cfg.Economy.CoinsPerAgent-100 {
		t.Fatalf("coins = %d, want 0 left", a.Team.Coins)
	}
}

func TestBattleTickReturnsLegalAction(t *testing.T) {
	a, cfg := newTestAgent(t)
	cfg.Battle.SearchDepth = 2
	s := &battle.Snapshot{
		Teams: [2]battle.Team{
			battle.NewTeam(cfg.Teams[0], 0, 0),
			battle.NewTeam(cfg.Teams[1], 0, 0),
		},
		Field: "Fire",
	}
	act, err := a.BattleTick(s)
	if err != nil {
		t.Fatalf("BattleTick: %v", err)
	}
	if !battle.IsLegal(s, battle.SideA, act) {
		t.Fatalf("BattleTick returned illegal action %v", act)
	}
}
