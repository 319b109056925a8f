package emo

import (
	"math"
	"sort"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
)

// Fronts partitions a population into nondominated fronts. Front 0
// holds every individual no other individual dominates; front 1 holds
// those dominated only by front 0 members, and so on. The union of
// the fronts is the input population.
func Fronts(population []*ec.Individual) [][]*ec.Individual {
	remaining := append([]*ec.Individual(nil), population...)
	var fronts [][]*ec.Individual
	for len(remaining) > 0 {
		var front, rest []*ec.Individual
		for _, ind := range remaining {
			dominated := false
			for _, other := range remaining {
				if other != ind && ind.WorseThan(other) {
					dominated = true
					break
				}
			}
			if dominated {
				rest = append(rest, ind)
			} else {
				front = append(front, ind)
			}
		}
		if len(front) == 0 {
			// Cyclic comparisons cannot arise from a strict partial
			// order; guard against a malformed Fitness anyway.
			front = rest
			rest = nil
		}
		fronts = append(fronts, front)
		remaining = rest
	}
	return fronts
}

// CrowdingDistance computes the NSGA-II crowding distance of every
// member of a single front, returned parallel to the input. For each
// objective the front is sorted by that objective's value; the two
// boundary individuals get infinite distance and every interior one
// accumulates the normalized gap between its neighbors. Larger means
// more isolated.
func CrowdingDistance(front []*ec.Individual) []float64 {
	dist := make([]float64, len(front))
	if len(front) == 0 {
		return dist
	}
	first, ok := front[0].Fitness.(Pareto)
	if !ok {
		return dist
	}

	idx := make([]int, len(front))
	for m := range first.Values {
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return objective(front[idx[a]], m) < objective(front[idx[b]], m)
		})
		lo := objective(front[idx[0]], m)
		hi := objective(front[idx[len(idx)-1]], m)
		dist[idx[0]] = math.Inf(1)
		dist[idx[len(idx)-1]] = math.Inf(1)
		if hi == lo {
			continue
		}
		for i := 1; i < len(idx)-1; i++ {
			gap := objective(front[idx[i+1]], m) - objective(front[idx[i-1]], m)
			dist[idx[i]] += gap / (hi - lo)
		}
	}
	return dist
}

func objective(ind *ec.Individual, m int) float64 {
	if p, ok := ind.Fitness.(Pareto); ok && m < len(p.Values) {
		return p.Values[m]
	}
	return 0
}

// leastCrowded returns the indices of front ordered from most isolated
// to most crowded.
func leastCrowded(front []*ec.Individual) []int {
	dist := CrowdingDistance(front)
	order := make([]int, len(front))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return dist[order[a]] > dist[order[b]]
	})
	return order
}
