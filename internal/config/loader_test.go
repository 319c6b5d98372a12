package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAllMissingFilesFallsBack(t *testing.T) {
	game, rules, err := LoadAll(t.TempDir())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if game.Grid.W != 24 || game.Grid.H != 11 {
		t.Fatalf("grid = %dx%d, want built-in 24x11", game.Grid.W, game.Grid.H)
	}
	if len(rules.Rules) != 3 {
		t.Fatalf("rules = %d, want the 3 built-ins", len(rules.Rules))
	}
}

func TestLoadAllOverlaysYAML(t *testing.T) {
	dir := t.TempDir()
	gameYAML := []byte("grid:\n  w: 30\n  h: 15\nbattle:\n  search_depth: 4\n")
	if err := os.WriteFile(filepath.Join(dir, "game.yaml"), gameYAML, 0644); err != nil {
		t.Fatal(err)
	}
	rulesYAML := []byte("low_max: 0.25\nrules:\n  - { own: low, enemy: any, action: heal, weight: 0.5 }\n")
	if err := os.WriteFile(filepath.Join(dir, "rules.yaml"), rulesYAML, 0644); err != nil {
		t.Fatal(err)
	}

	game, rules, err := LoadAll(dir)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if game.Grid.W != 30 || game.Grid.H != 15 {
		t.Fatalf("grid = %dx%d, want overridden 30x15", game.Grid.W, game.Grid.H)
	}
	if game.Battle.SearchDepth != 4 {
		t.Fatalf("depth = %d, want 4", game.Battle.SearchDepth)
	}
	// Untouched sections keep their defaults.
	if game.Economy.StartFuel != 45 {
		t.Fatalf("start_fuel = %d, want default 45", game.Economy.StartFuel)
	}
	if rules.LowMax != 0.25 {
		t.Fatalf("low_max = %v, want 0.25", rules.LowMax)
	}
	if len(rules.Rules) != 1 || rules.Rules[0].Weight != 0.5 {
		t.Fatalf("rules = %+v, want the single override rule", rules.Rules)
	}
	if rules.HighMin != 0.70 {
		t.Fatalf("high_min = %v, want default 0.70", rules.HighMin)
	}
}

func TestLoadAllBadYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "game.yaml"), []byte("grid: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadAll(dir); err == nil {
		t.Fatal("malformed YAML accepted")
	}
}

func TestNormalizeFillsSpeciesStats(t *testing.T) {
	gc := &GameConfig{Teams: []TeamDef{{Name: "X", Species: []Species{{Name: "A", Type: "Fire"}}}}}
	gc.normalize()
	sp := gc.Teams[0].Species[0]
	if sp.MaxHP != 100 || sp.Atk != 22 || sp.Def != 10 {
		t.Fatalf("species defaults not filled: %+v", sp)
	}
	if gc.Battle.SearchDepth != 3 {
		t.Fatalf("search depth default = %d, want 3", gc.Battle.SearchDepth)
	}
}

func TestAdvantage(t *testing.T) {
	gc := Default()
	if got := gc.Advantage("Fire", "Electric"); got != 1.3 {
		t.Fatalf("Fire vs Electric = %v, want 1.3", got)
	}
	if got := gc.Advantage("Electric", "Fire"); got != 1.0 {
		t.Fatalf("reverse matchup = %v, want neutral 1.0", got)
	}
	if !gc.Disadvantaged("Electric", "Fire") {
		t.Fatal("Electric should be disadvantaged vs Fire")
	}
	if gc.Disadvantaged("Fire", "Electric") {
		t.Fatal("Fire should not be disadvantaged vs Electric")
	}
}
