package ec

import (
	"math"
	"math/rand"
)

// DefaultReplacer keeps the existing population, discarding offspring.
type DefaultReplacer struct{}

func (DefaultReplacer) Replace(r *rand.Rand, population, parents, offspring []*Individual, args Args) ([]*Individual, error) {
	return population, nil
}

// GenerationalReplacer replaces the population wholesale with the
// offspring, truncated to the previous size if larger. Weak elitism:
// the best NumElites of the current population join the offspring pool
// before truncation.
//
// With fewer offspring than population the next generation shrinks;
// the engine never re-pads it.
type GenerationalReplacer struct {
	NumElites int
}

func (g GenerationalReplacer) Replace(r *rand.Rand, population, parents, offspring []*Individual, args Args) ([]*Individual, error) {
	pool := append([]*Individual(nil), offspring...)
	if g.NumElites > 0 {
		elites := append([]*Individual(nil), population...)
		SortBestToWorst(elites)
		n := g.NumElites
		if n > len(elites) {
			n = len(elites)
		}
		pool = append(pool, elites[:n]...)
	}
	SortBestToWorst(pool)
	if len(pool) > len(population) {
		pool = pool[:len(population)]
	}
	return pool, nil
}

// SteadyStateReplacer replaces the worst individuals with the
// offspring, even when the offspring are less fit.
type SteadyStateReplacer struct{}

func (SteadyStateReplacer) Replace(r *rand.Rand, population, parents, offspring []*Individual, args Args) ([]*Individual, error) {
	survivors := append([]*Individual(nil), population...)
	SortWorstToBest(survivors)
	n := len(offspring)
	if n > len(survivors) {
		n = len(survivors)
	}
	copy(survivors[:n], offspring[:n])
	return survivors, nil
}

// TruncationReplacer keeps the best individuals from the union of the
// current population and the offspring, holding the size fixed.
type TruncationReplacer struct{}

func (TruncationReplacer) Replace(r *rand.Rand, population, parents, offspring []*Individual, args Args) ([]*Individual, error) {
	pool := append([]*Individual(nil), population...)
	pool = append(pool, offspring...)
	SortBestToWorst(pool)
	if len(pool) > len(population) {
		pool = pool[:len(population)]
	}
	return pool, nil
}

// PlusReplacer keeps the best individuals from the union of parents
// and offspring, holding the size fixed.
type PlusReplacer struct{}

func (PlusReplacer) Replace(r *rand.Rand, population, parents, offspring []*Individual, args Args) ([]*Individual, error) {
	pool := append([]*Individual(nil), parents...)
	pool = append(pool, offspring...)
	SortBestToWorst(pool)
	if len(pool) > len(population) {
		pool = pool[:len(population)]
	}
	return pool, nil
}

// CommaReplacer keeps the best offspring only. With fewer offspring
// than population the next generation shrinks.
type CommaReplacer struct{}

func (CommaReplacer) Replace(r *rand.Rand, population, parents, offspring []*Individual, args Args) ([]*Individual, error) {
	pool := append([]*Individual(nil), offspring...)
	SortBestToWorst(pool)
	if len(pool) > len(population) {
		pool = pool[:len(population)]
	}
	return pool, nil
}

// RandomReplacer replaces randomly chosen non-elite individuals with
// the offspring.
type RandomReplacer struct {
	NumElites int
}

func (rr RandomReplacer) Replace(r *rand.Rand, population, parents, offspring []*Individual, args Args) ([]*Individual, error) {
	survivors := append([]*Individual(nil), population...)
	SortBestToWorst(survivors)
	replaceable := len(survivors) - rr.NumElites
	if replaceable <= 0 {
		return survivors, nil
	}
	n := len(offspring)
	if n > replaceable {
		n = replaceable
	}
	perm := r.Perm(replaceable)
	for i := 0; i < n; i++ {
		survivors[rr.NumElites+perm[i]] = offspring[i]
	}
	return survivors, nil
}

// DistanceFunc measures the distance between two candidates for
// crowding replacement.
type DistanceFunc func(a, b interface{}) float64

// EuclideanDistance is the default crowding distance function for
// []float64 candidates. Non-numeric candidates compare as infinitely
// far apart.
func EuclideanDistance(a, b interface{}) float64 {
	x, okX := a.([]float64)
	y, okY := b.([]float64)
	if !okX || !okY {
		return math.Inf(1)
	}
	var sum float64
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		d := x[i] - y[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// CrowdingReplacer performs crowding replacement as a form of niching:
// each offspring competes against the closest of CrowdSize randomly
// sampled survivors and replaces it if better.
type CrowdingReplacer struct {
	CrowdSize int          // number of sampled survivors per offspring (default 2)
	Distance  DistanceFunc // default EuclideanDistance
}

func (c CrowdingReplacer) Replace(r *rand.Rand, population, parents, offspring []*Individual, args Args) ([]*Individual, error) {
	crowd := c.CrowdSize
	if crowd <= 0 {
		crowd = 2
	}
	distance := c.Distance
	if distance == nil {
		distance = EuclideanDistance
	}

	survivors := append([]*Individual(nil), population...)
	for _, o := range offspring {
		if len(survivors) == 0 {
			survivors = append(survivors, o)
			continue
		}
		k := crowd
		if k > len(survivors) {
			k = len(survivors)
		}
		sample := r.Perm(len(survivors))[:k]
		closest := sample[0]
		for _, idx := range sample[1:] {
			if distance(o.Candidate, survivors[idx].Candidate) < distance(o.Candidate, survivors[closest].Candidate) {
				closest = idx
			}
		}
		if o.BetterThan(survivors[closest]) {
			survivors[closest] = o
		}
	}
	return survivors, nil
}

// SimulatedAnnealingReplacer pits each parent against its offspring;
// a worse offspring may still survive with probability exp(-Δ/T).
// The temperature cools multiplicatively after every generation.
type SimulatedAnnealingReplacer struct {
	Temperature float64 // initial temperature (default 1.0)
	CoolingRate float64 // multiplicative cooling coefficient in (0,1) (default 0.99)

	current float64
}

func (s *SimulatedAnnealingReplacer) Replace(r *rand.Rand, population, parents, offspring []*Individual, args Args) ([]*Individual, error) {
	if s.current == 0 {
		s.current = s.Temperature
		if s.current == 0 {
			s.current = 1.0
		}
	}
	cooling := s.CoolingRate
	if cooling == 0 {
		cooling = 0.99
	}

	n := len(parents)
	if len(offspring) < n {
		n = len(offspring)
	}
	survivors := make([]*Individual, 0, n)
	for i := 0; i < n; i++ {
		p, o := parents[i], offspring[i]
		if !o.WorseThan(p) {
			survivors = append(survivors, o)
			continue
		}
		pv, okP := ScalarValue(p.Fitness)
		ov, okO := ScalarValue(o.Fitness)
		if okP && okO && r.Float64() < math.Exp(-math.Abs(pv-ov)/s.current) {
			survivors = append(survivors, o)
		} else {
			survivors = append(survivors, p)
		}
	}
	s.current *= cooling
	return survivors, nil
}
