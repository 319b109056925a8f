package emo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
)

func TestDominanceIsIrreflexive(t *testing.T) {
	tuples := []Pareto{
		NewPareto(1, 5),
		NewPareto(0, 0),
		{Values: []float64{3, 3}, Maximize: []bool{true, false}},
	}
	for _, p := range tuples {
		assert.False(t, p.Dominates(p), "%v must not dominate itself", p)
		assert.False(t, p.Worse(p))
	}
}

func TestDominanceIsAntisymmetric(t *testing.T) {
	a := NewPareto(2, 2)
	b := NewPareto(1, 1)
	assert.True(t, a.Dominates(b))
	assert.False(t, b.Dominates(a))
}

func TestIncomparablePairs(t *testing.T) {
	a := NewPareto(1, 5)
	b := NewPareto(5, 1)
	assert.False(t, a.Dominates(b))
	assert.False(t, b.Dominates(a))
	assert.False(t, a.Worse(b))
	assert.False(t, b.Worse(a))
	assert.False(t, a.Equal(b))
}

func TestDominanceRequiresStrictImprovement(t *testing.T) {
	a := NewPareto(1, 2)
	b := NewPareto(1, 2)
	assert.False(t, a.Dominates(b))
	assert.True(t, a.Equal(b))

	c := NewPareto(1, 3)
	assert.True(t, c.Dominates(a), "equal in one objective, better in the other")
}

func TestDirectionVector(t *testing.T) {
	// First objective maximized, second minimized.
	dirs := []bool{true, false}
	a := Pareto{Values: []float64{5, 1}, Maximize: dirs}
	b := Pareto{Values: []float64{4, 2}, Maximize: dirs}
	assert.True(t, a.Dominates(b))
	assert.True(t, b.Worse(a))
}

func TestDifferentArityIsIncomparable(t *testing.T) {
	a := NewPareto(1, 2)
	b := NewPareto(1, 2, 3)
	assert.False(t, a.Dominates(b))
	assert.False(t, a.Equal(b))
}

func TestParetoAgainstForeignFitness(t *testing.T) {
	p := NewPareto(1, 2)
	assert.False(t, p.Worse(ec.Maximizing(10)))
	assert.False(t, p.Equal(ec.Maximizing(10)))
}
