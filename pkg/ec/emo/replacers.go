package emo

import (
	"math/rand"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
)

// NSGAReplacer performs NSGA-II environmental selection: the current
// population and the offspring are pooled, nondominated-sorted, and
// whole fronts fill the next population until one no longer fits;
// that front is truncated by descending crowding distance.
type NSGAReplacer struct{}

func (NSGAReplacer) Replace(r *rand.Rand, population, parents, offspring []*ec.Individual, args ec.Args) ([]*ec.Individual, error) {
	pool := append([]*ec.Individual(nil), population...)
	pool = append(pool, offspring...)

	target := len(population)
	next := make([]*ec.Individual, 0, target)
	for _, front := range Fronts(pool) {
		if len(next)+len(front) <= target {
			next = append(next, front...)
			continue
		}
		for _, i := range leastCrowded(front) {
			if len(next) == target {
				break
			}
			next = append(next, front[i])
		}
		break
	}
	return next, nil
}

// PAESReplacer pits each offspring against its parent. Dominance
// decides when it can; mutually nondominated pairs are settled by the
// shared grid archiver, preferring the contender in the less crowded
// region of objective space.
type PAESReplacer struct {
	Grid *GridArchiver
}

func (p PAESReplacer) Replace(r *rand.Rand, population, parents, offspring []*ec.Individual, args ec.Args) ([]*ec.Individual, error) {
	n := len(parents)
	if len(offspring) < n {
		n = len(offspring)
	}
	survivors := make([]*ec.Individual, 0, n)
	for i := 0; i < n; i++ {
		parent, child := parents[i], offspring[i]
		switch {
		case child.WorseThan(parent):
			survivors = append(survivors, parent)
		case child.BetterThan(parent):
			survivors = append(survivors, child)
		case p.Grid != nil && p.Grid.Density(child) < p.Grid.Density(parent):
			survivors = append(survivors, child)
		default:
			survivors = append(survivors, parent)
		}
	}
	return survivors, nil
}
