// Package sim runs complete three-phase matches headlessly: catching
// on a shared obstacle grid, elixir shopping, then the decision-tick
// battle loop. It owns real time and all live randomness; the decision
// engine underneath stays pure.
package sim

import (
	"encoding/json"

	"github.com/google/uuid"

	"arena_ai/internal/agent"
	"arena_ai/internal/battle"
	"arena_ai/internal/config"
	"arena_ai/internal/grid"
	"arena_ai/internal/util"
)

type Event struct {
	T       float64        `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Options struct {
	Game   *config.GameConfig
	Rules  *config.RulesConfig
	Seed   int64
	Record bool
}

type SideResult struct {
	Name    string `json:"name"`
	Caught  int    `json:"caught"`
	FuelEnd int    `json:"fuel_end"`
	HPEnd   int    `json:"hp_end"`
	Alive   int    `json:"alive"`
}

type Result struct {
	ID       string        `json:"id"`
	Seed     int64         `json:"seed"`
	Field    string        `json:"field"`
	Winner   string        `json:"winner"` // side name or "Draw"
	Turns    int           `json:"turns"`
	Duration float64       `json:"duration"`
	Sides    [2]SideResult `json:"sides"`
	Events   []Event       `json:"events,omitempty"`
}

// RunSingle plays one full match from a seed. Identical seeds and
// config produce identical results.
func RunSingle(opts Options) Result {
	cfg := opts.Game
	if cfg == nil {
		cfg = config.Default()
	}
	rng := util.New(opts.Seed)

	var events []Event
	now := 0.0
	emit := func(typ string, payload map[string]any) {
		if opts.Record {
			events = append(events, Event{T: now, Type: typ, Payload: payload})
		}
	}

	field := cfg.Types[rng.Intn(len(cfg.Types))]
	g := grid.Generate(cfg.Grid.W, cfg.Grid.H, cfg.Grid.Density, rng)

	// ---- Agents ----
	teams := [2]battle.Team{}
	agents := [2]*agent.Agent{}
	spawns := [2]grid.Cell{
		{R: cfg.Grid.H - 2, C: 1},
		{R: 1, C: cfg.Grid.W - 2},
	}
	for side := battle.SideA; side <= battle.SideB; side++ {
		def := cfg.Teams[side]
		teams[side] = battle.NewTeam(def, cfg.Economy.StartFuel, cfg.Economy.CoinsPerAgent)
		agents[side] = agent.New(def.Name, side, cfg, opts.Rules, &teams[side],
			util.New(opts.Seed+int64(side)*7919+1))

		targets := make([]grid.Cell, len(def.Species))
		for i := range targets {
			targets[i] = g.RandomOpenCell(rng)
		}
		agents[side].SetTargets(spawns[side], targets)
		emit("Spawn", map[string]any{
			"side": def.Name, "r": spawns[side].R, "c": spawns[side].C,
			"targets": targets, "fuel": teams[side].Fuel,
		})
	}

	// ---- Phase 1: catching ----
	for side := range agents {
		agents[side].EnterPhase(agent.EventStartCatching)
	}
	catchDone := func() bool {
		return agents[0].RemainingTargets() == 0 && agents[1].RemainingTargets() == 0
	}
	for now = 0; now < cfg.Timing.CatchTime && !catchDone(); now += cfg.Timing.MovementTick {
		for side := range agents {
			if agents[side].CatchTick(g) {
				emit("Catch", map[string]any{
					"side": agents[side].Name, "caught": agents[side].Caught,
					"fuel": agents[side].Team.Fuel,
				})
			}
		}
	}

	// ---- Phase 2: shopping ----
	for side := range agents {
		agents[side].EnterPhase(agent.EventStartShopping)
		plan := agents[side].Shop()
		emit("Purchase", map[string]any{
			"side": agents[side].Name, "plan": plan, "coins_left": agents[side].Team.Coins,
		})
	}

	// ---- Phase 3: battle ----
	for side := range agents {
		agents[side].EnterPhase(agent.EventStartBattle)
	}
	snap := &battle.Snapshot{Teams: teams, Field: field}
	emit("BattleStart", map[string]any{"field": field})

	turns := 0
	battleStart := now
	for ; now-battleStart < cfg.Timing.BattleTime && !snap.Over(); now += cfg.Battle.DecisionTick {
		var acts [2]battle.Action
		for side := battle.SideA; side <= battle.SideB; side++ {
			act, err := agents[side].BattleTick(snap)
			if err != nil {
				act = battle.Action{Kind: battle.Defend}
			}
			acts[side] = act
		}

		next, rep := battle.ResolveTurn(cfg, snap, acts, rng)
		turns++
		for side := battle.SideA; side <= battle.SideB; side++ {
			payload := map[string]any{
				"side":   agents[side].Name,
				"action": acts[side].String(),
				"active": next.Team(side).ActivePokemon().Name,
			}
			if rep.Damage[side] > 0 {
				payload["damage"] = rep.Damage[side]
			}
			if rep.Healed[side] > 0 {
				payload["healed"] = rep.Healed[side]
			}
			emit("Turn", payload)
		}
		for _, name := range rep.Faints {
			emit("Faint", map[string]any{"name": name})
		}
		snap = next
	}

	winner := decideWinner(snap, agents[0].Name, agents[1].Name)
	for side := range agents {
		agents[side].EnterPhase(agent.EventFinish)
	}
	emit("BattleEnd", map[string]any{"winner": winner, "turns": turns})

	res := Result{
		ID:       uuid.New().String(),
		Seed:     opts.Seed,
		Field:    field,
		Winner:   winner,
		Turns:    turns,
		Duration: now,
	}
	for side := battle.SideA; side <= battle.SideB; side++ {
		t := snap.Team(side)
		res.Sides[side] = SideResult{
			Name:    agents[side].Name,
			Caught:  agents[side].Caught,
			FuelEnd: t.Fuel,
			HPEnd:   t.TotalHP(),
			Alive:   t.AliveCount(),
		}
	}
	if opts.Record {
		res.Events = events
	}
	return res
}

func decideWinner(s *battle.Snapshot, nameA, nameB string) string {
	aDown, bDown := s.Team(battle.SideA).Defeated(), s.Team(battle.SideB).Defeated()
	switch {
	case aDown && bDown:
		return "Draw"
	case aDown:
		return nameB
	case bDown:
		return nameA
	}
	hpA, hpB := s.Team(battle.SideA).TotalHP(), s.Team(battle.SideB).TotalHP()
	switch {
	case hpA > hpB:
		return nameA
	case hpB > hpA:
		return nameB
	}
	return "Draw"
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
