package ec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarOrdering(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Fitness
		worse bool
	}{
		{"maximize smaller is worse", Maximizing(1), Maximizing(2), true},
		{"maximize larger is not worse", Maximizing(3), Maximizing(2), false},
		{"maximize equal is not worse", Maximizing(2), Maximizing(2), false},
		{"minimize larger is worse", Minimizing(5), Minimizing(2), true},
		{"minimize smaller is not worse", Minimizing(1), Minimizing(2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.worse, tt.a.Worse(tt.b))
		})
	}
}

func TestScalarEqual(t *testing.T) {
	assert.True(t, Maximizing(2).Equal(Maximizing(2)))
	assert.False(t, Maximizing(2).Equal(Maximizing(3)))
}

func TestBetter(t *testing.T) {
	assert.True(t, Better(Maximizing(3), Maximizing(1)))
	assert.False(t, Better(Maximizing(1), Maximizing(1)))
	assert.True(t, Better(Minimizing(1), Minimizing(3)))
}

func TestScalarValue(t *testing.T) {
	v, ok := ScalarValue(Maximizing(4.5))
	require.True(t, ok)
	assert.Equal(t, 4.5, v)

	_, ok = ScalarValue(nil)
	assert.False(t, ok)
}

func TestIndividualCloneIsDeep(t *testing.T) {
	ind := NewIndividual([]float64{1, 2, 3}, 0)
	ind.Fitness = Maximizing(6)

	clone := ind.Clone()
	clone.Candidate.([]float64)[0] = 99

	assert.Equal(t, []float64{1, 2, 3}, ind.Candidate)
	assert.Equal(t, ind.ID, clone.ID)
	assert.Equal(t, ind.Fitness, clone.Fitness)
}

func TestBestWorstAndSorting(t *testing.T) {
	pop := []*Individual{
		withFitness([]float64{2}, Maximizing(2)),
		withFitness([]float64{5}, Maximizing(5)),
		withFitness([]float64{1}, Maximizing(1)),
	}

	best, _ := ScalarValue(Best(pop).Fitness)
	worst, _ := ScalarValue(Worst(pop).Fitness)
	assert.Equal(t, 5.0, best)
	assert.Equal(t, 1.0, worst)

	SortBestToWorst(pop)
	assert.Equal(t, []float64{5, 2, 1}, ScalarValues(pop))

	SortWorstToBest(pop)
	assert.Equal(t, []float64{1, 2, 5}, ScalarValues(pop))
}

func TestBestWorstEmptyPopulation(t *testing.T) {
	// A replacer may shrink the population to nothing; pipeline
	// components lean on the nil return instead of panicking.
	assert.Nil(t, Best(nil))
	assert.Nil(t, Worst(nil))
	assert.Nil(t, Best([]*Individual{}))
	assert.Nil(t, Worst([]*Individual{}))
}

func TestCopyCandidate(t *testing.T) {
	original := []float64{1, 2}
	copied := CopyCandidate(original).([]float64)
	copied[0] = 9
	assert.Equal(t, []float64{1, 2}, original)

	ints := []int{3, 4}
	copiedInts := CopyCandidate(ints).([]int)
	copiedInts[0] = 9
	assert.Equal(t, []int{3, 4}, ints)

	// Unknown types pass through untouched.
	s := "tour-a-b-c"
	assert.Equal(t, s, CopyCandidate(s))
}

func withFitness(candidate interface{}, fit Fitness) *Individual {
	ind := NewIndividual(candidate, 0)
	ind.Fitness = fit
	return ind
}
