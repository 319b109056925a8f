package ec

import (
	"math"
	"math/rand"
)

// NewGA configures an engine as a canonical genetic algorithm:
// rank selection, n-point crossover followed by Gaussian mutation, and
// generational replacement. Selection pressure, crossover points, and
// elitism can all be tuned through the operator fields afterward.
func NewGA(r *rand.Rand) *Engine {
	e := New(r)
	e.Selector = RankSelector{}
	e.Variators = []Variator{
		NPointCrossover{},
		GaussianMutation{},
	}
	e.Replacer = GenerationalReplacer{NumElites: 1}
	return e
}

// ESVariator performs self-adaptive evolution strategy mutation on
// strategized candidates (see Strategize): each candidate's strategy
// block is perturbed log-normally, then the solution block is mutated
// with the updated per-component step sizes.
type ESVariator struct {
	// Tau is the per-component learning rate. Zero means the usual
	// 1/sqrt(2*sqrt(n)).
	Tau float64
	// TauPrime is the global learning rate. Zero means 1/sqrt(2n).
	TauPrime float64
	// Epsilon floors the adapted step sizes (default 1e-10).
	Epsilon float64
}

func (v ESVariator) Vary(r *rand.Rand, candidates []interface{}, args Args) ([]interface{}, error) {
	eps := v.Epsilon
	if eps <= 0 {
		eps = 1e-10
	}
	mutants := make([]interface{}, len(candidates))
	for i, c := range candidates {
		values, ok := c.([]float64)
		if !ok || len(values)%2 != 0 || len(values) == 0 {
			mutants[i] = c
			continue
		}
		n := len(values) / 2
		tau := v.Tau
		if tau <= 0 {
			tau = 1.0 / math.Sqrt(2.0*math.Sqrt(float64(n)))
		}
		tauPrime := v.TauPrime
		if tauPrime <= 0 {
			tauPrime = 1.0 / math.Sqrt(2.0*float64(n))
		}
		mutant := make([]float64, len(values))
		global := r.NormFloat64()
		for j := 0; j < n; j++ {
			strategy := values[n+j] * math.Exp(tauPrime*global+tau*r.NormFloat64())
			strategy = max(strategy, eps)
			mutant[j] = values[j] + strategy*r.NormFloat64()
			mutant[n+j] = strategy
		}
		mutants[i] = mutant
	}
	return mutants, nil
}

// NewES configures an engine as a (mu+lambda) evolution strategy with
// self-adaptive mutation. The generator and evaluator passed to Evolve
// must be wrapped with Strategize and UnstrategizedEvaluator, and any
// user bounder belongs inside the engine's StrategyBounder so the
// strategy block stays positive.
func NewES(r *rand.Rand) *Engine {
	e := New(r)
	e.Variators = []Variator{ESVariator{}}
	e.Replacer = PlusReplacer{}
	e.Bounder = StrategyBounder{}
	return e
}

// NewSA configures an engine as simulated annealing: the single current
// solution is mutated and the annealing replacer decides whether the
// mutant is accepted. Run it with RunConfig.PopSize of 1; larger
// populations anneal independently in lockstep.
func NewSA(r *rand.Rand) *Engine {
	e := New(r)
	e.Variators = []Variator{GaussianMutation{Rate: 1.0}}
	e.Replacer = &SimulatedAnnealingReplacer{}
	return e
}
