package swarm

import (
	"context"
	"math"
	"math/rand"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
	"github.com/XiaoConstantine/evo-go/pkg/errors"
)

// Particle is a read-only view of one swarm member for observers and
// tests.
type Particle struct {
	Index    int
	Position []float64
	Velocity []float64
	Best     *ec.Individual
}

// PSO drives a particle swarm through the evolutionary engine. The
// swarm update rule lives in an internal variator, replacement is
// order-preserving wholesale, and personal bests are refreshed by an
// internal archiver once the moved particles have been re-evaluated.
//
// Candidates must be []float64 positions. The population must keep its
// size for the whole run; the particle state is indexed by population
// order.
type PSO struct {
	Engine *ec.Engine

	// Cognitive (φ1) and Social (φ2) are the attraction rates toward
	// the personal and neighborhood bests (defaults 2.0 and 2.1).
	Cognitive float64
	Social    float64
	// Topology defaults to StarTopology.
	Topology Topology
	// Constricted scales the velocity update by Clerc's constriction
	// coefficient, which requires φ1+φ2 > 4.
	Constricted bool

	pbest      []*ec.Individual
	velocities [][]float64
}

// NewPSO builds a swarm around a fresh engine on r.
func NewPSO(r *rand.Rand) *PSO {
	p := &PSO{
		Engine:    ec.New(r),
		Cognitive: 2.0,
		Social:    2.1,
		Topology:  StarTopology{},
	}
	p.Engine.Variators = []ec.Variator{ec.VariatorFunc(p.move)}
	p.Engine.Replacer = ec.ReplacerFunc(replaceInOrder)
	p.Engine.Archiver = ec.ArchiverFunc(p.updateBests)
	return p
}

// Evolve runs the swarm; see ec.Engine.Evolve for the contract.
func (p *PSO) Evolve(ctx context.Context, generator ec.Generator, evaluator ec.Evaluator, cfg ec.RunConfig) (*ec.Result, error) {
	p.pbest = nil
	p.velocities = nil
	return p.Engine.Evolve(ctx, generator, evaluator, cfg)
}

// Particles snapshots the current swarm state.
func (p *PSO) Particles() []Particle {
	pop := p.Engine.Population()
	particles := make([]Particle, 0, len(pop))
	for i, ind := range pop {
		particle := Particle{Index: i}
		if pos, ok := ind.Candidate.([]float64); ok {
			particle.Position = append([]float64(nil), pos...)
		}
		if i < len(p.velocities) {
			particle.Velocity = append([]float64(nil), p.velocities[i]...)
		}
		if i < len(p.pbest) {
			particle.Best = p.pbest[i]
		}
		particles = append(particles, particle)
	}
	return particles
}

// move is the swarm variator: one velocity and position update per
// particle per cycle.
func (p *PSO) move(r *rand.Rand, candidates []interface{}, args ec.Args) ([]interface{}, error) {
	pop := p.Engine.Population()
	if len(candidates) != len(pop) {
		return nil, errors.New(errors.InvalidInput, "swarm update requires one candidate per particle")
	}

	topology := p.Topology
	if topology == nil {
		topology = StarTopology{}
	}

	moved := make([]interface{}, len(candidates))
	for i, c := range candidates {
		x, ok := c.([]float64)
		if !ok {
			return nil, errors.New(errors.InvalidInput, "swarm candidates must be []float64")
		}
		if i >= len(p.velocities) {
			p.velocities = append(p.velocities, make([]float64, len(x)))
		}
		v := p.velocities[i]

		personal := p.bestPosition(i, x)
		neighborhood := x
		if n := p.neighborhoodBest(topology, i, pop); n != nil {
			neighborhood = n
		}

		k := 1.0
		if p.Constricted {
			phi := p.Cognitive + p.Social
			if phi > 4 {
				k = 2.0 / math.Abs(2.0-phi-math.Sqrt(phi*phi-4.0*phi))
			}
		}
		next := make([]float64, len(x))
		for d := range x {
			pb, nb := x[d], x[d]
			if d < len(personal) {
				pb = personal[d]
			}
			if d < len(neighborhood) {
				nb = neighborhood[d]
			}
			v[d] = k * (v[d] +
				p.Cognitive*r.Float64()*(pb-x[d]) +
				p.Social*r.Float64()*(nb-x[d]))
			next[d] = x[d] + v[d]
		}
		moved[i] = next
	}
	return moved, nil
}

func (p *PSO) bestPosition(i int, fallback []float64) []float64 {
	if i < len(p.pbest) {
		if pos, ok := p.pbest[i].Candidate.([]float64); ok {
			return pos
		}
	}
	return fallback
}

// neighborhoodBest returns the position of the fittest particle in i's
// topological neighborhood of the current population.
func (p *PSO) neighborhoodBest(topology Topology, i int, pop []*ec.Individual) []float64 {
	var best *ec.Individual
	for _, j := range topology.Neighborhood(i, len(pop)) {
		if j < 0 || j >= len(pop) {
			continue
		}
		if best == nil || pop[j].BetterThan(best) {
			best = pop[j]
		}
	}
	if best == nil {
		return nil
	}
	pos, ok := best.Candidate.([]float64)
	if !ok {
		return nil
	}
	return pos
}

// updateBests runs after replacement, when moved particles carry fresh
// fitness. It refreshes personal bests and keeps the swarm-wide best
// as the archive.
func (p *PSO) updateBests(r *rand.Rand, archive, offspring, population []*ec.Individual, args ec.Args) ([]*ec.Individual, error) {
	for i, ind := range population {
		if i >= len(p.pbest) {
			p.pbest = append(p.pbest, ind.Clone())
			continue
		}
		if ind.BetterThan(p.pbest[i]) {
			p.pbest[i] = ind.Clone()
		}
	}
	if best := ec.Best(population); best != nil {
		if len(archive) == 0 || best.BetterThan(archive[0]) {
			return []*ec.Individual{best.Clone()}, nil
		}
	}
	return archive, nil
}

func replaceInOrder(r *rand.Rand, population, parents, offspring []*ec.Individual, args ec.Args) ([]*ec.Individual, error) {
	if len(offspring) != len(population) {
		return nil, errors.New(errors.InvalidInput, "swarm replacement requires one offspring per particle")
	}
	return offspring, nil
}
