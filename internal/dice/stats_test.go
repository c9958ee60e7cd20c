package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/protocol-playground/internal/rng"
)

func TestSimulateD6(t *testing.T) {
	d, err := NewDie(6, rng.NewLCG())
	require.NoError(t, err)

	st, err := Simulate(d, 60000)
	require.NoError(t, err)

	assert.Equal(t, 60000, st.Trials)
	assert.Equal(t, []int{9874, 9990, 10065, 10192, 9973, 9906}, st.Counts)
	assert.InDelta(t, 3.5019666666666667, st.Mean, 1e-9)
	assert.InDelta(t, 2.8934294655538406, st.Var, 1e-9)
	assert.Equal(t, 4.0, st.P50)
	assert.Equal(t, 6.0, st.P90)
	assert.Equal(t, 6.0, st.P99)
	assert.InDelta(t, 6.663, st.ChiSquare, 1e-9)
	// uniform enough not to reject at 1%
	assert.Greater(t, st.PValue, 0.01)
	assert.Less(t, st.PValue, 1.0)

	sum := 0.0
	for f := 1; f <= 6; f++ {
		sum += st.Frequency(f)
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.Zero(t, st.Frequency(0))
	assert.Zero(t, st.Frequency(7))
}

func TestSimulateOneSided(t *testing.T) {
	d, err := NewDie(1, nil)
	require.NoError(t, err)
	st, err := Simulate(d, 100)
	require.NoError(t, err)
	assert.Equal(t, []int{100}, st.Counts)
	assert.Equal(t, 1.0, st.Mean)
	assert.Zero(t, st.Var)
	assert.Zero(t, st.ChiSquare)
	assert.Equal(t, 1.0, st.PValue)
}

func TestSimulateRejectsNoTrials(t *testing.T) {
	d, err := NewDie(6, nil)
	require.NoError(t, err)
	_, err = Simulate(d, 0)
	require.ErrorIs(t, err, ErrInvalidTrials)
}
