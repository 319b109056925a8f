package emo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
)

func paretoInd(values ...float64) *ec.Individual {
	ind := ec.NewIndividual(values, 0)
	ind.Fitness = NewPareto(values...)
	return ind
}

func TestFrontsPartitionThePopulation(t *testing.T) {
	pop := []*ec.Individual{
		paretoInd(1, 5), // front 0
		paretoInd(3, 3), // front 0
		paretoInd(0, 4), // dominated by (1,5)
		paretoInd(2, 2), // dominated by (3,3)
		paretoInd(0, 0), // dominated by everything
	}

	fronts := Fronts(pop)
	require.Len(t, fronts, 3)
	assert.Len(t, fronts[0], 2)
	assert.Len(t, fronts[1], 2)
	assert.Len(t, fronts[2], 1)

	total := 0
	for _, f := range fronts {
		total += len(f)
	}
	assert.Equal(t, len(pop), total)
}

func TestFrontMembersAreMutuallyNondominated(t *testing.T) {
	pop := []*ec.Individual{
		paretoInd(1, 5), paretoInd(2, 4), paretoInd(3, 3),
		paretoInd(1, 4), paretoInd(2, 2),
	}
	for _, front := range Fronts(pop) {
		for _, a := range front {
			for _, b := range front {
				if a != b {
					assert.False(t, a.WorseThan(b),
						"%v and %v share a front but one dominates", a.Fitness, b.Fitness)
				}
			}
		}
	}
}

func TestCrowdingDistanceBoundariesAreInfinite(t *testing.T) {
	front := []*ec.Individual{
		paretoInd(1, 5),
		paretoInd(2, 4),
		paretoInd(3, 3),
		paretoInd(4, 2),
		paretoInd(5, 1),
	}
	dist := CrowdingDistance(front)
	require.Len(t, dist, 5)

	assert.True(t, math.IsInf(dist[0], 1))
	assert.True(t, math.IsInf(dist[4], 1))
	for _, d := range dist[1:4] {
		assert.False(t, math.IsInf(d, 1))
		assert.GreaterOrEqual(t, d, 0.0)
	}
}

func TestCrowdingDistancePrefersIsolation(t *testing.T) {
	// The middle point sits in a gap; its neighbors are bunched.
	front := []*ec.Individual{
		paretoInd(0, 10),
		paretoInd(1, 9),
		paretoInd(2, 8),
		paretoInd(8, 2), // isolated
		paretoInd(9, 1),
		paretoInd(10, 0),
	}
	dist := CrowdingDistance(front)
	assert.Greater(t, dist[3], dist[1])
}

func TestCrowdingDistanceDegenerateFront(t *testing.T) {
	// All identical values: boundaries still infinite, interiors zero.
	front := []*ec.Individual{
		paretoInd(1, 1), paretoInd(1, 1), paretoInd(1, 1),
	}
	dist := CrowdingDistance(front)
	assert.Equal(t, 0.0, dist[1])
}
