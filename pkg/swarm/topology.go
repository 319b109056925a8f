// Package swarm implements particle swarm optimization and ant-style
// trail construction on top of the evolutionary engine: both reuse the
// engine's control loop and express their update rules as pipeline
// operators.
package swarm

// Topology defines which particles inform each particle's social
// update. Neighborhoods are recomputed from the current population
// order every cycle, so index i always refers to the i-th individual
// of the population being updated.
type Topology interface {
	Neighborhood(i, n int) []int
}

// StarTopology makes every particle a neighbor of every other: the
// social attractor is the single best particle of the whole swarm.
type StarTopology struct{}

func (StarTopology) Neighborhood(i, n int) []int {
	all := make([]int, n)
	for j := range all {
		all[j] = j
	}
	return all
}

// RingTopology restricts each particle's neighborhood to a window of
// Size structurally adjacent particles (population order, wrapping),
// centered on the particle itself.
type RingTopology struct {
	Size int // default 3
}

func (t RingTopology) Neighborhood(i, n int) []int {
	size := t.Size
	if size <= 0 {
		size = 3
	}
	if size > n {
		size = n
	}
	window := make([]int, 0, size)
	start := i - size/2
	for j := 0; j < size; j++ {
		window = append(window, ((start+j)%n+n)%n)
	}
	return window
}
