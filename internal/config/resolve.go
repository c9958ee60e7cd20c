// resolve.go
package config

import (
	"fmt"

	"github.com/xtding233/protocol-playground/internal/rng"
)

// Built-in values used when neither the files nor the overrides set a field.
const (
	DefaultSides    = 6
	DefaultRolls    = 5
	DefaultTrials   = 10000
	DefaultLogLevel = "info"
)

// Overrides carries command-line overrides; nil means "not given".
type Overrides struct {
	Seed     *float64
	Sides    *int
	Rolls    *int
	Trials   *int
	LogLevel *string
}

// Resolve applies overrides on top of cfg, validates, and fills defaults.
func Resolve(cfg RawConfig, o Overrides) (Params, error) {
	merged := mergeRaw(cfg, overridesToRaw(o))
	if err := ValidateRaw(merged); err != nil {
		return Params{}, err
	}

	p := Params{
		Seed:     rng.DefaultSeed,
		A:        rng.DefaultParams.A,
		C:        rng.DefaultParams.C,
		M:        rng.DefaultParams.M,
		Sides:    DefaultSides,
		Rolls:    DefaultRolls,
		Trials:   DefaultTrials,
		LogLevel: DefaultLogLevel,
		Version:  merged.Version,
	}
	if g := merged.Generator; g != nil {
		if g.Seed != nil {
			p.Seed = *g.Seed
		}
		if g.A != nil {
			p.A = *g.A
		}
		if g.C != nil {
			p.C = *g.C
		}
		if g.M != nil {
			p.M = *g.M
		}
	}
	if merged.Die.Sides != nil {
		p.Sides = *merged.Die.Sides
	}
	if d := merged.Demo; d != nil {
		if d.Rolls != nil {
			p.Rolls = *d.Rolls
		}
		if d.Trials != nil {
			p.Trials = *d.Trials
		}
	}
	if merged.Log != nil && merged.Log.Level != "" {
		p.LogLevel = merged.Log.Level
	}

	// seed vs m can only be checked once defaults are in
	if _, err := p.NewGenerator(); err != nil {
		return Params{}, fmt.Errorf("%w: generator: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// NewGenerator builds a fresh LCG from the resolved params.
func (p Params) NewGenerator() (*rng.LCG, error) {
	return rng.NewLCGWithParams(p.Seed, rng.Params{A: p.A, C: p.C, M: p.M})
}

func overridesToRaw(o Overrides) RawConfig {
	var raw RawConfig
	if o.Seed != nil {
		raw.Generator = &GeneratorConfig{Seed: o.Seed}
	}
	raw.Die.Sides = o.Sides
	if o.Rolls != nil || o.Trials != nil {
		raw.Demo = &DemoConfig{Rolls: o.Rolls, Trials: o.Trials}
	}
	if o.LogLevel != nil {
		raw.Log = &LogConfig{Level: *o.LogLevel}
	}
	return raw
}
