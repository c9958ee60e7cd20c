package dice

import (
	"errors"

	"github.com/xtding233/protocol-playground/internal/rng"
)

var ErrInvalidSides = errors.New("invalid configuration: sides must be >= 1")

// Die maps one value of its source to a face in [1, sides].
// It keeps no state besides its configuration; the source is shared, not owned.
type Die struct {
	sides int
	src   rng.RandomSource
}

// NewDie creates a die with the given number of sides.
// A nil source defaults to a fresh rng.NewLCG().
func NewDie(sides int, src rng.RandomSource) (*Die, error) {
	if sides < 1 {
		return nil, ErrInvalidSides
	}
	if src == nil {
		src = rng.NewLCG()
	}
	return &Die{sides: sides, src: src}, nil
}

// Sides reports the configured face count.
func (d *Die) Sides() int { return d.sides }

// Roll consumes exactly one source value and truncates it onto [1, sides].
// No clamping: a source that breaks its [0,1) contract yields out-of-range faces.
func (d *Die) Roll() int {
	return int(d.src.Float64()*float64(d.sides)) + 1
}

// RollN rolls n times in order. n <= 0 returns nil.
func (d *Die) RollN(n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = d.Roll()
	}
	return out
}
