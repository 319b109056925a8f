package emo

import (
	"math/rand"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
)

// ParetoArchiver maintains an archive of mutually nondominated
// individuals. A candidate dominated by (or equal to) any member is
// rejected; an admitted candidate evicts every member it dominates.
// When Capacity is positive and exceeded, the most crowded members by
// crowding distance are evicted first, so the archive keeps a spread
// of the front rather than a cluster.
type ParetoArchiver struct {
	Capacity int // 0 means unbounded
}

func (a ParetoArchiver) Archive(r *rand.Rand, archive, offspring, population []*ec.Individual, args ec.Args) ([]*ec.Individual, error) {
	newArchive := append([]*ec.Individual(nil), archive...)
	for _, ind := range population {
		if ind.Fitness == nil {
			continue
		}
		reject := false
		kept := newArchive[:0:0]
		for _, member := range newArchive {
			if ind.WorseThan(member) || ind.Fitness.Equal(member.Fitness) {
				reject = true
			}
			if !ind.BetterThan(member) {
				kept = append(kept, member)
			}
		}
		if reject {
			continue
		}
		newArchive = append(kept, ind.Clone())
	}

	if a.Capacity > 0 {
		for len(newArchive) > a.Capacity {
			order := leastCrowded(newArchive)
			evict := order[len(order)-1]
			newArchive = append(newArchive[:evict], newArchive[evict+1:]...)
		}
	}
	return newArchive, nil
}

// GridArchiver is the PAES adaptive-grid archive: objective space is
// partitioned into a hypergrid whose per-cell occupancy stands in for
// crowding distance. Admission follows dominance; at capacity a
// mutually nondominated candidate only enters by displacing a member
// of the most crowded cell, and only when its own cell is less
// crowded.
//
// The archiver is stateful and must be shared with the PAESReplacer of
// the same run.
type GridArchiver struct {
	Capacity  int // default 100
	Divisions int // grid bisections per objective (default 1)

	smallest []float64
	largest  []float64
	counts   map[int]int
}

func (g *GridArchiver) Archive(r *rand.Rand, archive, offspring, population []*ec.Individual, args ec.Args) ([]*ec.Individual, error) {
	capacity := g.Capacity
	if capacity <= 0 {
		capacity = 100
	}

	newArchive := append([]*ec.Individual(nil), archive...)
	for _, ind := range population {
		p, ok := ind.Fitness.(Pareto)
		if !ok {
			continue
		}
		g.widen(p.Values)

		reject := false
		kept := newArchive[:0:0]
		for _, member := range newArchive {
			if ind.WorseThan(member) || ind.Fitness.Equal(member.Fitness) {
				reject = true
			}
			if !ind.BetterThan(member) {
				kept = append(kept, member)
			}
		}
		if reject {
			continue
		}
		newArchive = kept

		if len(newArchive) < capacity {
			newArchive = append(newArchive, ind.Clone())
			g.recount(newArchive)
			continue
		}
		// Full archive of mutual nondominance: displace from the most
		// crowded cell if the candidate lands somewhere quieter.
		g.recount(newArchive)
		crowdedCell, crowdedCount := g.mostCrowded()
		if g.cell(p.Values) == crowdedCell || g.Density(ind) >= crowdedCount {
			continue
		}
		for i, member := range newArchive {
			if g.cellOf(member) == crowdedCell {
				newArchive[i] = ind.Clone()
				break
			}
		}
		g.recount(newArchive)
	}
	g.recount(newArchive)
	return newArchive, nil
}

// Density reports how many archive members share the individual's grid
// cell.
func (g *GridArchiver) Density(ind *ec.Individual) int {
	p, ok := ind.Fitness.(Pareto)
	if !ok || g.counts == nil {
		return 0
	}
	return g.counts[g.cell(p.Values)]
}

func (g *GridArchiver) widen(values []float64) {
	if g.smallest == nil {
		g.smallest = append([]float64(nil), values...)
		g.largest = append([]float64(nil), values...)
		return
	}
	for i, v := range values {
		if i >= len(g.smallest) {
			break
		}
		if v < g.smallest[i] {
			g.smallest[i] = v
		}
		if v > g.largest[i] {
			g.largest[i] = v
		}
	}
}

func (g *GridArchiver) bins() int {
	divisions := g.Divisions
	if divisions <= 0 {
		divisions = 1
	}
	return 1 << divisions
}

func (g *GridArchiver) cell(values []float64) int {
	bins := g.bins()
	index := 0
	stride := 1
	for i, v := range values {
		if i >= len(g.smallest) {
			break
		}
		span := g.largest[i] - g.smallest[i]
		bin := 0
		if span > 0 {
			bin = int(float64(bins) * (v - g.smallest[i]) / span)
			if bin >= bins {
				bin = bins - 1
			}
			if bin < 0 {
				bin = 0
			}
		}
		index += bin * stride
		stride *= bins
	}
	return index
}

func (g *GridArchiver) cellOf(ind *ec.Individual) int {
	p, ok := ind.Fitness.(Pareto)
	if !ok {
		return -1
	}
	return g.cell(p.Values)
}

func (g *GridArchiver) recount(archive []*ec.Individual) {
	g.counts = make(map[int]int, len(archive))
	for _, member := range archive {
		if c := g.cellOf(member); c >= 0 {
			g.counts[c]++
		}
	}
}

func (g *GridArchiver) mostCrowded() (cell, count int) {
	cell = -1
	for c, n := range g.counts {
		if n > count {
			cell, count = c, n
		}
	}
	return cell, count
}
