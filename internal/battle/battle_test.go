package battle

import (
	"arena_ai/internal/config"
)

// testSnapshot builds a 3v3 snapshot from the default tables with full
// HP everywhere. Tests mutate the copy they get back.
func testSnapshot() (*config.GameConfig, *Snapshot) {
	cfg := config.Default()
	for i := range cfg.Teams {
		for j := range cfg.Teams[i].Species {
			sp := &cfg.Teams[i].Species[j]
			sp.MaxHP, sp.Atk, sp.Def = 100, 22, 10
		}
	}
	s := &Snapshot{
		Teams: [2]Team{
			NewTeam(cfg.Teams[0], 45, 100),
			NewTeam(cfg.Teams[1], 45, 100),
		},
		Field: "Water",
	}
	return cfg, s
}
