package ec

import (
	"math/rand"
	"sort"

	"github.com/XiaoConstantine/evo-go/pkg/errors"
)

// Mutator is a per-candidate variation. Mutate lifts it into a
// Variator that applies it to each candidate independently.
type Mutator func(r *rand.Rand, candidate interface{}, args Args) (interface{}, error)

// Mutate adapts a Mutator into a Variator.
func Mutate(m Mutator) Variator {
	return VariatorFunc(func(r *rand.Rand, candidates []interface{}, args Args) ([]interface{}, error) {
		mutants := make([]interface{}, len(candidates))
		for i, c := range candidates {
			mutant, err := m(r, c, args)
			if err != nil {
				return nil, err
			}
			mutants[i] = mutant
		}
		return mutants, nil
	})
}

// Crossover recombines two parents into children. Cross lifts it into
// a Variator that pairs consecutive candidates (0 with 1, 2 with 3,
// ...); an unpaired trailing candidate passes through unchanged.
type Crossover func(r *rand.Rand, mom, dad []float64, args Args) ([][]float64, error)

// Cross adapts a Crossover into a Variator over []float64 candidates.
func Cross(c Crossover) Variator {
	return VariatorFunc(func(r *rand.Rand, candidates []interface{}, args Args) ([]interface{}, error) {
		children := make([]interface{}, 0, len(candidates))
		for i := 0; i+1 < len(candidates); i += 2 {
			mom, okM := candidates[i].([]float64)
			dad, okD := candidates[i+1].([]float64)
			if !okM || !okD {
				return nil, errors.New(errors.InvalidInput, "crossover requires []float64 candidates")
			}
			offspring, err := c(r, mom, dad, args)
			if err != nil {
				return nil, err
			}
			for _, child := range offspring {
				children = append(children, child)
			}
		}
		if len(candidates)%2 == 1 {
			children = append(children, candidates[len(candidates)-1])
		}
		return children, nil
	})
}

// GaussianMutation perturbs each component of a []float64 candidate
// with probability Rate by adding Gaussian noise. Out-of-range results
// are corrected by the engine's bounder after the variator chain.
type GaussianMutation struct {
	Rate  float64 // per-component mutation probability (default 0.1)
	Mean  float64
	Stdev float64 // default 1.0
}

func (m GaussianMutation) Vary(r *rand.Rand, candidates []interface{}, args Args) ([]interface{}, error) {
	rate := m.Rate
	if rate == 0 {
		rate = 0.1
	}
	stdev := m.Stdev
	if stdev == 0 {
		stdev = 1.0
	}
	mutants := make([]interface{}, len(candidates))
	for i, c := range candidates {
		cand, ok := c.([]float64)
		if !ok {
			return nil, errors.New(errors.InvalidInput, "gaussian mutation requires []float64 candidates")
		}
		mutant := make([]float64, len(cand))
		copy(mutant, cand)
		for j := range mutant {
			if r.Float64() < rate {
				mutant[j] += m.Mean + r.NormFloat64()*stdev
			}
		}
		mutants[i] = mutant
	}
	return mutants, nil
}

// NPointCrossover exchanges segments between parent pairs at Points
// randomly chosen cut positions.
type NPointCrossover struct {
	Points int     // number of cut points (default 1)
	Rate   float64 // probability a pair is crossed at all (default 1.0)
}

func (c NPointCrossover) Vary(r *rand.Rand, candidates []interface{}, args Args) ([]interface{}, error) {
	points := c.Points
	if points <= 0 {
		points = 1
	}
	rate := c.Rate
	if rate == 0 {
		rate = 1.0
	}
	return Cross(func(r *rand.Rand, mom, dad []float64, args Args) ([][]float64, error) {
		bro := append([]float64(nil), dad...)
		sis := append([]float64(nil), mom...)
		if r.Float64() >= rate {
			return [][]float64{bro, sis}, nil
		}
		n := len(mom)
		if len(dad) < n {
			n = len(dad)
		}
		numCuts := points
		if numCuts > n-1 {
			numCuts = n - 1
		}
		if numCuts < 1 {
			return [][]float64{bro, sis}, nil
		}
		cuts := r.Perm(n - 1)[:numCuts]
		for i := range cuts {
			cuts[i]++
		}
		sort.Ints(cuts)
		swap := true
		prev := 0
		for _, cut := range append(cuts, n) {
			if swap {
				for j := prev; j < cut; j++ {
					bro[j], sis[j] = sis[j], bro[j]
				}
			}
			swap = !swap
			prev = cut
		}
		return [][]float64{bro, sis}, nil
	}).Vary(r, candidates, args)
}

// UniformCrossover swaps each component between a parent pair with
// probability MixRate.
type UniformCrossover struct {
	Rate    float64 // probability a pair is crossed at all (default 1.0)
	MixRate float64 // per-component swap probability (default 0.5)
}

func (c UniformCrossover) Vary(r *rand.Rand, candidates []interface{}, args Args) ([]interface{}, error) {
	rate := c.Rate
	if rate == 0 {
		rate = 1.0
	}
	mix := c.MixRate
	if mix == 0 {
		mix = 0.5
	}
	return Cross(func(r *rand.Rand, mom, dad []float64, args Args) ([][]float64, error) {
		bro := append([]float64(nil), dad...)
		sis := append([]float64(nil), mom...)
		if r.Float64() < rate {
			n := len(bro)
			if len(sis) < n {
				n = len(sis)
			}
			for j := 0; j < n; j++ {
				if r.Float64() < mix {
					bro[j], sis[j] = sis[j], bro[j]
				}
			}
		}
		return [][]float64{bro, sis}, nil
	}).Vary(r, candidates, args)
}

// BlendCrossover draws each child component uniformly from the
// interval spanned by the parents, widened by Alpha times their gap.
type BlendCrossover struct {
	Rate  float64 // probability a pair is crossed at all (default 1.0)
	Alpha float64 // interval widening factor (default 0.1)
}

func (c BlendCrossover) Vary(r *rand.Rand, candidates []interface{}, args Args) ([]interface{}, error) {
	rate := c.Rate
	if rate == 0 {
		rate = 1.0
	}
	alpha := c.Alpha
	if alpha == 0 {
		alpha = 0.1
	}
	return Cross(func(r *rand.Rand, mom, dad []float64, args Args) ([][]float64, error) {
		bro := append([]float64(nil), dad...)
		sis := append([]float64(nil), mom...)
		if r.Float64() < rate {
			n := len(bro)
			if len(sis) < n {
				n = len(sis)
			}
			for j := 0; j < n; j++ {
				lo, hi := mom[j], dad[j]
				if lo > hi {
					lo, hi = hi, lo
				}
				spread := alpha * (hi - lo)
				bro[j] = lo - spread + r.Float64()*(hi-lo+2*spread)
				sis[j] = lo - spread + r.Float64()*(hi-lo+2*spread)
			}
		}
		return [][]float64{bro, sis}, nil
	}).Vary(r, candidates, args)
}
