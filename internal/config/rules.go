package config

// Band is a crisp HP-ratio category.
type Band string

const (
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
	BandAny    Band = "any"
)

// FuzzyRule is one row of the advisor's rule table. Rules are data,
// evaluated in order; firing rules combine by max weight per action.
type FuzzyRule struct {
	Own          Band    `yaml:"own"`
	Enemy        Band    `yaml:"enemy"`
	Disadvantage bool    `yaml:"disadvantage"`
	Action       string  `yaml:"action"` // "heal" | "swap"
	Weight       float64 `yaml:"weight"`
}

type RulesConfig struct {
	LowMax  float64     `yaml:"low_max"`
	HighMin float64     `yaml:"high_min"`
	Rules   []FuzzyRule `yaml:"rules"`
}

func DefaultRules() *RulesConfig {
	return &RulesConfig{
		LowMax:  0.30,
		HighMin: 0.70,
		Rules: []FuzzyRule{
			{Own: BandLow, Enemy: BandHigh, Action: "heal", Weight: 0.90},
			{Own: BandMedium, Enemy: BandHigh, Action: "heal", Weight: 0.60},
			{Own: BandLow, Enemy: BandAny, Disadvantage: true, Action: "swap", Weight: 0.95},
		},
	}
}

// Classify maps an HP ratio to its crisp band.
func (rc *RulesConfig) Classify(ratio float64) Band {
	switch {
	case ratio < rc.LowMax:
		return BandLow
	case ratio > rc.HighMin:
		return BandHigh
	default:
		return BandMedium
	}
}
