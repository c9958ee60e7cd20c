package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xtding233/protocol-playground/internal/rng"
)

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = errors.New("at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = errors.New("dice must have sides in [1, 1000000] and count in [1, 10000]")

// Upper bounds for a single Spec; larger requests would allocate unbounded memory.
const (
	maxDiceCount = 10000
	maxDiceSides = 1000000
)

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Sides int
	Count int
}

func (s Spec) valid() bool {
	return s.Sides >= 1 && s.Sides <= maxDiceSides &&
		s.Count >= 1 && s.Count <= maxDiceCount
}

func (s Spec) String() string {
	return fmt.Sprintf("%dd%d", s.Count, s.Sides)
}

// Roll captures the results for a single Spec.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Result captures every Roll of a request, in Spec order.
type Result struct {
	Rolls []Roll
	Total int
}

// RollSpecs rolls each spec against src, in slice order.
//
// All specs share the one source, so the outcome depends on the order of
// specs as well as on the state of src. A nil src uses a fresh rng.NewLCG().
//
//   - An empty specs slice returns ErrMissingDice.
//   - Any spec with Sides outside [1, maxDiceSides] or Count outside
//     [1, maxDiceCount] returns ErrInvalidDiceSpec.
func RollSpecs(src rng.RandomSource, specs []Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}
	for _, spec := range specs {
		if !spec.valid() {
			return Result{}, ErrInvalidDiceSpec
		}
	}
	if src == nil {
		src = rng.NewLCG()
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0
	for _, spec := range specs {
		d := &Die{sides: spec.Sides, src: src}
		results := d.RollN(spec.Count)
		rollTotal := 0
		for _, v := range results {
			rollTotal += v
		}
		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}
	return Result{Rolls: rolls, Total: total}, nil
}

// ParseSpec parses "NdM" notation; N is optional and defaults to 1 ("d20").
// Both numbers are plain digits: no sign, no spaces.
func ParseSpec(s string) (Spec, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	count, sides, ok := strings.Cut(raw, "d")
	if !ok {
		return Spec{}, fmt.Errorf("parse %q: %w", s, ErrInvalidDiceSpec)
	}
	n := 1
	if count != "" {
		v, ok := parseDigits(count)
		if !ok {
			return Spec{}, fmt.Errorf("parse %q: %w", s, ErrInvalidDiceSpec)
		}
		n = v
	}
	m, ok := parseDigits(sides)
	if !ok {
		return Spec{}, fmt.Errorf("parse %q: %w", s, ErrInvalidDiceSpec)
	}
	spec := Spec{Sides: m, Count: n}
	if !spec.valid() {
		return Spec{}, fmt.Errorf("parse %q: %w", s, ErrInvalidDiceSpec)
	}
	return spec, nil
}

// parseDigits accepts only ASCII digits; strconv.Atoi alone would take "+6".
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
