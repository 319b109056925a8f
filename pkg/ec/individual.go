package ec

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Individual pairs an opaque candidate solution with its fitness.
//
// Fitness is nil only between construction and the first evaluation;
// once assigned it is treated as immutable until an explicit
// re-evaluation replaces it.
type Individual struct {
	// ID identifies the individual across archives and migrations.
	ID        string
	Candidate interface{}
	Fitness   Fitness
	// Birthdate is the generation counter at creation time.
	Birthdate int
}

// NewIndividual creates an unevaluated individual for the given candidate.
func NewIndividual(candidate interface{}, birthdate int) *Individual {
	return &Individual{
		ID:        uuid.NewString(),
		Candidate: candidate,
		Birthdate: birthdate,
	}
}

// Clone returns a deep copy of the individual. The copy keeps the same
// ID: it is the same logical individual, protected from later mutation.
func (ind *Individual) Clone() *Individual {
	return &Individual{
		ID:        ind.ID,
		Candidate: CopyCandidate(ind.Candidate),
		Fitness:   ind.Fitness,
		Birthdate: ind.Birthdate,
	}
}

// WorseThan reports whether ind has strictly worse fitness than other.
// Both individuals must have been evaluated.
func (ind *Individual) WorseThan(other *Individual) bool {
	if ind.Fitness == nil || other.Fitness == nil {
		panic("ec: cannot compare individuals with unevaluated fitness")
	}
	return ind.Fitness.Worse(other.Fitness)
}

// BetterThan reports whether ind has strictly better fitness than other.
func (ind *Individual) BetterThan(other *Individual) bool {
	return other.WorseThan(ind)
}

func (ind *Individual) String() string {
	return fmt.Sprintf("%v : %v", ind.Candidate, ind.Fitness)
}

// Best returns the best individual of a population, or nil when the
// population is empty. Replacers may legitimately shrink a population
// to nothing, so callers inside the pipeline must handle nil.
func Best(population []*Individual) *Individual {
	if len(population) == 0 {
		return nil
	}
	best := population[0]
	for _, ind := range population[1:] {
		if ind.BetterThan(best) {
			best = ind
		}
	}
	return best
}

// Worst returns the worst individual of a population, or nil when the
// population is empty.
func Worst(population []*Individual) *Individual {
	if len(population) == 0 {
		return nil
	}
	worst := population[0]
	for _, ind := range population[1:] {
		if ind.WorseThan(worst) {
			worst = ind
		}
	}
	return worst
}

// SortBestToWorst stably sorts a population in place, best first.
func SortBestToWorst(population []*Individual) {
	sort.SliceStable(population, func(i, j int) bool {
		return population[i].BetterThan(population[j])
	})
}

// SortWorstToBest stably sorts a population in place, worst first.
func SortWorstToBest(population []*Individual) {
	sort.SliceStable(population, func(i, j int) bool {
		return population[i].WorseThan(population[j])
	})
}

// ScalarValues collects the scalar fitness values of a population,
// skipping individuals whose fitness is not scalar.
func ScalarValues(population []*Individual) []float64 {
	values := make([]float64, 0, len(population))
	for _, ind := range population {
		if v, ok := ScalarValue(ind.Fitness); ok {
			values = append(values, v)
		}
	}
	return values
}

// CopyCandidate deep-copies the common slice representations of a
// candidate. Unrecognized types are returned unchanged, which is safe
// for immutable values; mutable custom types should be copied by the
// operators that know their structure.
func CopyCandidate(candidate interface{}) interface{} {
	switch v := candidate.(type) {
	case []float64:
		cp := make([]float64, len(v))
		copy(cp, v)
		return cp
	case []int:
		cp := make([]int, len(v))
		copy(cp, v)
		return cp
	case []interface{}:
		cp := make([]interface{}, len(v))
		for i, e := range v {
			cp[i] = CopyCandidate(e)
		}
		return cp
	default:
		return candidate
	}
}
