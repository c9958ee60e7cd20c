package dice

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var ErrInvalidTrials = errors.New("trials must be >= 1")

// Stats summarizes a run of rolls.
type Stats struct {
	Trials int
	Counts []int // Counts[f-1] is how often face f came up
	Mean   float64
	Var    float64 // population variance
	StdDev float64
	P50    float64
	P90    float64
	P99    float64

	// Goodness of fit against a uniform die. A one-sided die has nothing to
	// test: ChiSquare is 0 and PValue is 1.
	ChiSquare float64
	PValue    float64

	// Optional: raw samples if caller needs histograms/exports
	Samples []int `json:"-"`
}

// Frequency returns the observed share of face f, or 0 if f is out of range.
func (s Stats) Frequency(face int) float64 {
	if face < 1 || face > len(s.Counts) || s.Trials == 0 {
		return 0
	}
	return float64(s.Counts[face-1]) / float64(s.Trials)
}

// Simulate rolls d trials times and summarizes the faces.
func Simulate(d *Die, trials int) (Stats, error) {
	if trials <= 0 {
		return Stats{}, ErrInvalidTrials
	}
	samples := d.RollN(trials)
	return calcStats(samples, d.Sides()), nil
}

// calcStats computes moments, percentiles and the chi-square fit for faces in [1, sides].
func calcStats(xs []int, sides int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	counts := make([]int, sides)
	fs := make([]float64, n)
	for i, v := range xs {
		if v >= 1 && v <= sides {
			counts[v-1]++
		}
		fs[i] = float64(v)
	}
	mean, variance := stat.PopMeanVariance(fs, nil)

	sorted := append([]float64(nil), fs...)
	sort.Float64s(sorted)
	quantile := func(p float64) float64 {
		return stat.Quantile(p, stat.Empirical, sorted, nil)
	}

	st := Stats{
		Trials:  n,
		Counts:  counts,
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     quantile(0.50),
		P90:     quantile(0.90),
		P99:     quantile(0.99),
		PValue:  1,
		Samples: xs,
	}
	if sides > 1 {
		obs := make([]float64, sides)
		exp := make([]float64, sides)
		for i, c := range counts {
			obs[i] = float64(c)
			exp[i] = float64(n) / float64(sides)
		}
		st.ChiSquare = stat.ChiSquare(obs, exp)
		st.PValue = distuv.ChiSquared{K: float64(sides - 1)}.Survival(st.ChiSquare)
	}
	return st
}
