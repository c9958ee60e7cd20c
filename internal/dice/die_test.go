package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/protocol-playground/internal/rng"
)

func TestD6FromSeed42(t *testing.T) {
	d, err := NewDie(6, rng.NewLCG())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 4, 5, 4}, d.RollN(5))
}

func TestD20FromSeed42(t *testing.T) {
	d, err := NewDie(20, nil)
	require.NoError(t, err)
	got := make([]int, 5)
	for i := range got {
		got[i] = d.Roll()
	}
	assert.Equal(t, []int{8, 15, 13, 16, 11}, got)
}

func TestRollBounds(t *testing.T) {
	d, err := NewDie(6, rng.NewLCG())
	require.NoError(t, err)
	for i := 0; i < 200_000; i++ {
		v := d.Roll()
		if v < 1 || v > 6 {
			t.Fatalf("roll out of [1,6]: %d at i=%d", v, i)
		}
	}
}

func TestOneSidedDieAlwaysOne(t *testing.T) {
	d, err := NewDie(1, rng.NewSeededRNG(9))
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		require.Equal(t, 1, d.Roll())
	}
}

func TestNewDieRejectsNonPositiveSides(t *testing.T) {
	for _, sides := range []int{0, -1, -6} {
		d, err := NewDie(sides, nil)
		require.ErrorIs(t, err, ErrInvalidSides, "sides=%d", sides)
		require.Nil(t, d)
	}
}

func TestRollMapsSourceValues(t *testing.T) {
	// edges of each bucket for a d4
	src := rng.NewSequence(0, 0.2499999, 0.25, 0.5, 0.75, 0.9999999)
	d, err := NewDie(4, src)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 3, 4, 4}, d.RollN(6))
}

func TestRollDoesNotClamp(t *testing.T) {
	// a source breaking its [0,1) contract leaks through untouched
	d, err := NewDie(6, rng.NewSequence(1.0))
	require.NoError(t, err)
	assert.Equal(t, 7, d.Roll())
}

func TestRollConsumesOneValuePerCall(t *testing.T) {
	shared := rng.NewLCG()
	d, err := NewDie(6, shared)
	require.NoError(t, err)
	d.Roll()
	d.Roll()

	ref := rng.NewLCG()
	ref.Float64()
	ref.Float64()
	assert.Equal(t, ref.State(), shared.State())
}

func TestRollNNonPositive(t *testing.T) {
	d, err := NewDie(6, nil)
	require.NoError(t, err)
	assert.Nil(t, d.RollN(0))
	assert.Nil(t, d.RollN(-3))
	assert.Equal(t, 6, d.Sides())
}
