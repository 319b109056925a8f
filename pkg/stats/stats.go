// Package stats provides summary statistics over scalar fitness values.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the fitness statistics of one generation.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Stdev  float64
}

// Summarize computes summary statistics for a set of fitness values.
// An empty input yields a zero Summary with NaN moments.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{
			Min:    math.NaN(),
			Max:    math.NaN(),
			Mean:   math.NaN(),
			Median: math.NaN(),
			Stdev:  math.NaN(),
		}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s := Summary{
		Count:  len(values),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.Stdev = stat.StdDev(sorted, nil)
	}
	return s
}
