package config

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

var ErrInvalidConfig = errors.New("config validation failed")

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// ValidateRaw checks semantic constraints of a RawConfig.
// Every violation is reported, not only the first one.
func ValidateRaw(cfg RawConfig) error {
	var errs error
	add := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf(format, args...))
	}

	// generator
	if g := cfg.Generator; g != nil {
		fields := []struct {
			name string
			v    *float64
		}{{"seed", g.Seed}, {"a", g.A}, {"c", g.C}, {"m", g.M}}
		for _, f := range fields {
			if f.v != nil && (math.IsNaN(*f.v) || math.IsInf(*f.v, 0)) {
				add("generator.%s must be finite", f.name)
			}
		}
		if g.M != nil && *g.M <= 0 {
			add("generator.m must be > 0")
		}
		if g.A != nil && *g.A < 0 {
			add("generator.a must be >= 0")
		}
		if g.C != nil && *g.C < 0 {
			add("generator.c must be >= 0")
		}
		if g.Seed != nil {
			if *g.Seed < 0 {
				add("generator.seed must be >= 0")
			}
			if g.M != nil && *g.M > 0 && *g.Seed >= *g.M {
				add("generator.seed must satisfy 0 <= seed < m")
			}
		}
	}

	// die.sides
	if cfg.Die.Sides != nil && *cfg.Die.Sides < 1 {
		add("die.sides must be >= 1")
	}

	// demo
	if cfg.Demo != nil {
		if cfg.Demo.Rolls != nil && *cfg.Demo.Rolls < 0 {
			add("demo.rolls must be >= 0")
		}
		if cfg.Demo.Trials != nil && *cfg.Demo.Trials < 1 {
			add("demo.trials must be >= 1")
		}
	}

	// log
	if cfg.Log != nil && cfg.Log.Level != "" && !logLevels[cfg.Log.Level] {
		add("log.level must be one of: debug, info, warn, error")
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}
	return nil
}
