package rng

// Sequence replays a fixed list of values, wrapping around at the end.
// Useful to drive samplers deterministically in tests.
type Sequence struct {
	values []float64
	pos    int
}

// NewSequence returns a Sequence over values. An empty list always yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: append([]float64(nil), values...)}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return v
}
