package ec

import "math/rand"

// DefaultArchiver returns the archive unchanged.
type DefaultArchiver struct{}

func (DefaultArchiver) Archive(r *rand.Rand, archive, offspring, population []*Individual, args Args) ([]*Individual, error) {
	return archive, nil
}

// PopulationArchiver replaces the archive with clones of the current
// population.
type PopulationArchiver struct{}

func (PopulationArchiver) Archive(r *rand.Rand, archive, offspring, population []*Individual, args Args) ([]*Individual, error) {
	newArchive := make([]*Individual, len(population))
	for i, ind := range population {
		newArchive[i] = ind.Clone()
	}
	return newArchive, nil
}

// BestArchiver keeps only the best solutions seen so far. Under scalar
// fitness the archive converges to the single best-ever individual;
// under a dominance-based fitness it forms a Pareto archive, since an
// entrant is rejected when any member beats it and evicts every member
// it beats.
type BestArchiver struct{}

func (BestArchiver) Archive(r *rand.Rand, archive, offspring, population []*Individual, args Args) ([]*Individual, error) {
	newArchive := append([]*Individual(nil), archive...)
	for _, ind := range population {
		if len(newArchive) == 0 {
			newArchive = append(newArchive, ind.Clone())
			continue
		}
		add := true
		kept := newArchive[:0:0]
		for _, a := range newArchive {
			if sameCandidate(ind, a) {
				add = false
				kept = append(kept, a)
				continue
			}
			if ind.WorseThan(a) {
				add = false
			}
			if !ind.BetterThan(a) {
				kept = append(kept, a)
			}
		}
		newArchive = kept
		if add {
			newArchive = append(newArchive, ind.Clone())
		}
	}
	return newArchive, nil
}

func sameCandidate(a, b *Individual) bool {
	if a.ID == b.ID {
		return true
	}
	x, okX := a.Candidate.([]float64)
	y, okY := b.Candidate.([]float64)
	if !okX || !okY || len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
