package rng

import (
	"errors"
	"math"
)

// DefaultSeed is the initial state of a generator built by NewLCG.
const DefaultSeed = 42.0

var ErrInvalidParams = errors.New("invalid lcg params; need finite m > 0, a,c >= 0, 0 <= seed < m and m*a+c < 2^53")

// Params are the recurrence constants: last = (last*A + C) mod M.
type Params struct {
	A float64 // multiplier
	C float64 // increment
	M float64 // modulus
}

// DefaultParams is the classic 139968 generator.
var DefaultParams = Params{A: 3877.0, C: 29573.0, M: 139968.0}

// LCG is a linear congruential generator over float64 state.
// Not safe for concurrent use; guard it externally if shared.
type LCG struct {
	last float64
	p    Params
}

// NewLCG returns a generator seeded with DefaultSeed and DefaultParams.
func NewLCG() *LCG {
	return &LCG{last: DefaultSeed, p: DefaultParams}
}

// NewLCGWithParams builds a generator with custom seed and constants.
func NewLCGWithParams(seed float64, p Params) (*LCG, error) {
	if err := validateParams(seed, p); err != nil {
		return nil, err
	}
	return &LCG{last: seed, p: p}, nil
}

// Float64 advances the state once and returns last/m, in [0, 1).
func (g *LCG) Float64() float64 {
	g.last = math.Mod(g.last*g.p.A+g.p.C, g.p.M)
	return g.last / g.p.M
}

// State reports the current value of last.
func (g *LCG) State() float64 { return g.last }

// Params reports the generator constants.
func (g *LCG) Params() Params { return g.p }
