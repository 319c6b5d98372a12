package config

// Tier is one of the three elixir sizes.
type Tier string

const (
	TierSmall  Tier = "Small"
	TierMedium Tier = "Medium"
	TierLarge  Tier = "Large"
)

type ElixirSpec struct {
	Heal  int `yaml:"heal"`
	Price int `yaml:"price"`
}

type Species struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	MaxHP int    `yaml:"max_hp"`
	Atk   int    `yaml:"atk"`
	Def   int    `yaml:"def"`
}

type TeamDef struct {
	Name    string    `yaml:"name"`
	Species []Species `yaml:"species"`
}

type TypeMatchup struct {
	Attacker string  `yaml:"attacker"`
	Defender string  `yaml:"defender"`
	Mult     float64 `yaml:"mult"`
}

type GridConfig struct {
	W       int     `yaml:"w"`
	H       int     `yaml:"h"`
	Density float64 `yaml:"density"`
}

type EconomyConfig struct {
	StartFuel     int                 `yaml:"start_fuel"`
	FuelPerCatch  int                 `yaml:"fuel_per_catch"`
	CoinsPerAgent int                 `yaml:"coins_per_agent"`
	Elixirs       map[Tier]ElixirSpec `yaml:"elixirs"`
}

type BattleConfig struct {
	FieldBoost   float64 `yaml:"field_boost"`
	DamageFloor  int     `yaml:"damage_floor"`
	DefendFactor float64 `yaml:"defend_factor"`
	JitterMin    float64 `yaml:"jitter_min"`
	JitterMax    float64 `yaml:"jitter_max"`
	SearchDepth  int     `yaml:"search_depth"`
	AliveBonus   int     `yaml:"alive_bonus"`
	AdviceScale  float64 `yaml:"advice_scale"`
	DecisionTick float64 `yaml:"decision_tick"`
}

type TimingConfig struct {
	CatchTime    float64 `yaml:"catch_time"`
	BattleTime   float64 `yaml:"battle_time"`
	MovementTick float64 `yaml:"movement_tick"`
}

type GameConfig struct {
	Types    []string      `yaml:"types"`
	Matchups []TypeMatchup `yaml:"matchups"`
	Grid     GridConfig    `yaml:"grid"`
	Economy  EconomyConfig `yaml:"economy"`
	Battle   BattleConfig  `yaml:"battle"`
	Timing   TimingConfig  `yaml:"timing"`
	Teams    []TeamDef     `yaml:"teams"`
}

// Advantage reports the damage multiplier attacker's type gets against
// defender's type (1.0 when no matchup applies).
func (gc *GameConfig) Advantage(attacker, defender string) float64 {
	for _, m := range gc.Matchups {
		if m.Attacker == attacker && m.Defender == defender {
			return m.Mult
		}
	}
	return 1.0
}

// Disadvantaged reports whether own's type loses to enemy's type.
func (gc *GameConfig) Disadvantaged(own, enemy string) bool {
	return gc.Advantage(enemy, own) > 1.0
}

// Default returns the built-in game tables. The engine never requires
// asset files; LoadAll overlays YAML on top of these values.
func Default() *GameConfig {
	return &GameConfig{
		Types: []string{"Fire", "Electric", "Water"},
		Matchups: []TypeMatchup{
			{Attacker: "Fire", Defender: "Electric", Mult: 1.3},
			{Attacker: "Electric", Defender: "Water", Mult: 1.3},
			{Attacker: "Water", Defender: "Fire", Mult: 1.3},
		},
		Grid: GridConfig{W: 24, H: 11, Density: 0.08},
		Economy: EconomyConfig{
			StartFuel:     45,
			FuelPerCatch:  15,
			CoinsPerAgent: 100,
			Elixirs: map[Tier]ElixirSpec{
				TierSmall:  {Heal: 25, Price: 15},
				TierMedium: {Heal: 50, Price: 30},
				TierLarge:  {Heal: 80, Price: 50},
			},
		},
		Battle: BattleConfig{
			FieldBoost:   1.2,
			DamageFloor:  5,
			DefendFactor: 0.5,
			JitterMin:    0.8,
			JitterMax:    1.2,
			SearchDepth:  3,
			AliveBonus:   30,
			AdviceScale:  20,
			DecisionTick: 0.7,
		},
		Timing: TimingConfig{CatchTime: 30, BattleTime: 130, MovementTick: 0.1},
		Teams: []TeamDef{
			{Name: "Ash", Species: []Species{
				{Name: "Pikachu", Type: "Electric"},
				{Name: "Charmander", Type: "Fire"},
				{Name: "Squirtle", Type: "Water"},
			}},
			{Name: "Team Rocket", Species: []Species{
				{Name: "Meowth", Type: "Electric"},
				{Name: "Weezing", Type: "Fire"},
				{Name: "Wobbuffet", Type: "Water"},
			}},
		},
	}
}
