package emo

import (
	"math/rand"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
)

// NewNSGA2 configures an engine as NSGA-II: binary tournament
// selection, blend crossover plus Gaussian mutation, nondominated
// sorting replacement, and an unbounded Pareto archive. Evaluators
// must return Pareto fitnesses.
func NewNSGA2(r *rand.Rand) *ec.Engine {
	e := ec.New(r)
	e.Selector = ec.TournamentSelector{TournamentSize: 2}
	e.Variators = []ec.Variator{
		ec.BlendCrossover{},
		ec.GaussianMutation{},
	}
	e.Replacer = NSGAReplacer{}
	e.Archiver = ParetoArchiver{}
	return e
}

// NewPAES configures an engine as the Pareto archived evolution
// strategy: a (1+1) mutation hill-climber whose acceptance and elitism
// both hinge on one adaptive grid archive. Run it with a small
// population (classically 1).
func NewPAES(r *rand.Rand) *ec.Engine {
	grid := &GridArchiver{}
	e := ec.New(r)
	e.Variators = []ec.Variator{ec.GaussianMutation{}}
	e.Replacer = PAESReplacer{Grid: grid}
	e.Archiver = grid
	return e
}
