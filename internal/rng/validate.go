package rng

import (
	"math"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateParams(seed float64, p Params) error {
	if !finite(seed) || !finite(p.A) || !finite(p.C) || !finite(p.M) {
		return ErrInvalidParams
	}
	if p.M <= 0 || p.A < 0 || p.C < 0 {
		return ErrInvalidParams
	}
	// seed must already satisfy the state invariant
	if seed < 0 || seed >= p.M {
		return ErrInvalidParams
	}
	// keep last*a+c exactly representable so mod stays exact
	if p.M*p.A+p.C >= 1<<53 {
		return ErrInvalidParams
	}
	return nil
}
