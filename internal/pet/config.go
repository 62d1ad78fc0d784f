package pet

import (
	"fmt"
	"time"
)

const (
	DefaultMaxAge               = 100
	DefaultMaxFood              = 50
	DefaultMaxEnergy            = 50
	DefaultMinimumWakeupEnergy  = 1
	DefaultPoopingThreshold     = 3
	DefaultMaxPoop              = 3
	DefaultMaxTimeSpentDiseased = 20
	DefaultRiskOfDisease        = 5
	DefaultChanceOfHealing      = 50
	DefaultTickRate             = 1000
)

// Rules holds the limits and odds a pet lives by. A Rules value is never
// modified after a pet or session has been built from it.
type Rules struct {
	MaxAge               int `toml:"maxAge" yaml:"maxAge"`
	MaxFood              int `toml:"maxFood" yaml:"maxFood"`
	MaxEnergy            int `toml:"maxEnergy" yaml:"maxEnergy"`
	MinimumWakeupEnergy  int `toml:"minimumWakeupEnergy" yaml:"minimumWakeupEnergy"`
	PoopingThreshold     int `toml:"poopingThreshold" yaml:"poopingThreshold"`
	MaxPoop              int `toml:"maxPoop" yaml:"maxPoop"`
	MaxTimeSpentDiseased int `toml:"maxTimeSpentDiseased" yaml:"maxTimeSpentDiseased"`

	// Percentages, 0 to 100.
	RiskOfDisease   int `toml:"riskOfDisease" yaml:"riskOfDisease"`
	ChanceOfHealing int `toml:"chanceOfHealing" yaml:"chanceOfHealing"`

	// Milliseconds per tick.
	TickRate int `toml:"tickRate" yaml:"tickRate"`
}

func DefaultRules() Rules {
	return Rules{
		MaxAge:               DefaultMaxAge,
		MaxFood:              DefaultMaxFood,
		MaxEnergy:            DefaultMaxEnergy,
		MinimumWakeupEnergy:  DefaultMinimumWakeupEnergy,
		PoopingThreshold:     DefaultPoopingThreshold,
		MaxPoop:              DefaultMaxPoop,
		MaxTimeSpentDiseased: DefaultMaxTimeSpentDiseased,
		RiskOfDisease:        DefaultRiskOfDisease,
		ChanceOfHealing:      DefaultChanceOfHealing,
		TickRate:             DefaultTickRate,
	}
}

// TickInterval is the wall-clock time between two ticks.
func (r Rules) TickInterval() time.Duration {
	return time.Duration(r.TickRate) * time.Millisecond
}

// Validate reports the first rule that would let a pet break its own invariants.
func (r Rules) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"maxAge", r.MaxAge},
		{"maxFood", r.MaxFood},
		{"maxEnergy", r.MaxEnergy},
		{"poopingThreshold", r.PoopingThreshold},
		{"maxPoop", r.MaxPoop},
		{"maxTimeSpentDiseased", r.MaxTimeSpentDiseased},
		{"tickRate", r.TickRate},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("invalid rules: %s must be positive, got %d", p.name, p.value)
		}
	}

	if r.MinimumWakeupEnergy < 0 || r.MinimumWakeupEnergy > r.MaxEnergy {
		return fmt.Errorf("invalid rules: minimumWakeupEnergy must be between 0 and maxEnergy (%d), got %d", r.MaxEnergy, r.MinimumWakeupEnergy)
	}
	if r.RiskOfDisease < 0 || r.RiskOfDisease > 100 {
		return fmt.Errorf("invalid rules: riskOfDisease must be a percentage, got %d", r.RiskOfDisease)
	}
	if r.ChanceOfHealing < 0 || r.ChanceOfHealing > 100 {
		return fmt.Errorf("invalid rules: chanceOfHealing must be a percentage, got %d", r.ChanceOfHealing)
	}
	return nil
}
