package emo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
)

func TestNSGAReplacerKeepsFirstFront(t *testing.T) {
	pop := []*ec.Individual{
		paretoInd(0, 0),
		paretoInd(0, 1),
	}
	offspring := []*ec.Individual{
		paretoInd(1, 5),
		paretoInd(3, 3),
	}

	next, err := NSGAReplacer{}.Replace(rand.New(rand.NewSource(1)), pop, nil, offspring, nil)
	require.NoError(t, err)
	require.Len(t, next, 2)
	for _, ind := range next {
		p := ind.Fitness.(Pareto)
		assert.NotEqual(t, []float64{0, 0}, p.Values)
		assert.NotEqual(t, []float64{0, 1}, p.Values)
	}
}

func TestNSGAReplacerTruncatesByCrowding(t *testing.T) {
	// One front of five mutually nondominated points; only four fit.
	// The most crowded interior point must be the casualty.
	pop := []*ec.Individual{
		paretoInd(0, 10),
		paretoInd(1, 9),
		paretoInd(1.1, 8.9),
		paretoInd(9, 1),
	}
	offspring := []*ec.Individual{paretoInd(10, 0)}

	next, err := NSGAReplacer{}.Replace(rand.New(rand.NewSource(1)), pop, nil, offspring, nil)
	require.NoError(t, err)
	require.Len(t, next, 4)

	// The bunched pair (1,9)/(1.1,8.9) loses exactly one member.
	bunched := 0
	for _, ind := range next {
		v := ind.Fitness.(Pareto).Values[0]
		if v == 1 || v == 1.1 {
			bunched++
		}
	}
	assert.Equal(t, 1, bunched)
}

func TestPAESReplacerDominanceDecidesFirst(t *testing.T) {
	parents := []*ec.Individual{paretoInd(2, 2)}

	better := []*ec.Individual{paretoInd(3, 3)}
	next, err := PAESReplacer{}.Replace(rand.New(rand.NewSource(1)), nil, parents, better, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3}, next[0].Fitness.(Pareto).Values)

	worse := []*ec.Individual{paretoInd(1, 1)}
	next, err = PAESReplacer{}.Replace(rand.New(rand.NewSource(1)), nil, parents, worse, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, next[0].Fitness.(Pareto).Values)
}

func TestPAESReplacerUsesGridDensityForTies(t *testing.T) {
	grid := &GridArchiver{Capacity: 10, Divisions: 1}

	// Seed the archive so one half of objective space is crowded.
	archive, err := grid.Archive(rand.New(rand.NewSource(1)), nil, nil, []*ec.Individual{
		paretoInd(1, 9),
		paretoInd(2, 8),
		paretoInd(9, 1),
	}, nil)
	require.NoError(t, err)
	require.Len(t, archive, 3)

	parent := paretoInd(1.5, 8.5) // crowded region
	child := paretoInd(8.5, 1.5)  // quiet region, mutually nondominated

	next, err := PAESReplacer{Grid: grid}.Replace(rand.New(rand.NewSource(1)), nil,
		[]*ec.Individual{parent}, []*ec.Individual{child}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{8.5, 1.5}, next[0].Fitness.(Pareto).Values)
}
