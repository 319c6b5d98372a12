package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadAll reads game.yaml and rules.yaml from dir, starting from the
// built-in defaults. Missing files fall back to defaults.
func LoadAll(dir string) (*GameConfig, *RulesConfig, error) {
	gc := Default()
	rc := DefaultRules()
	if err := loadYAML(filepath.Join(dir, "game.yaml"), gc); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, nil, err
		}
	}
	if err := loadYAML(filepath.Join(dir, "rules.yaml"), rc); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, nil, err
		}
	}
	gc.normalize()
	return gc, rc, nil
}

func (gc *GameConfig) normalize() {
	for i := range gc.Teams {
		for j := range gc.Teams[i].Species {
			sp := &gc.Teams[i].Species[j]
			if sp.MaxHP == 0 {
				sp.MaxHP = 100
			}
			if sp.Atk == 0 {
				sp.Atk = 22
			}
			if sp.Def == 0 {
				sp.Def = 10
			}
		}
	}
	if gc.Battle.SearchDepth == 0 {
		gc.Battle.SearchDepth = 3
	}
	if gc.Battle.DefendFactor == 0 {
		gc.Battle.DefendFactor = 0.5
	}
	if gc.Timing.MovementTick == 0 {
		gc.Timing.MovementTick = 0.1
	}
}
