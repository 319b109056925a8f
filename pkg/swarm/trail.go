package swarm

import (
	"math"
	"math/rand"
	"sync"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
	"github.com/XiaoConstantine/evo-go/pkg/errors"
)

// Component is one building block of a constructed solution: an edge
// of a tour, an item of a knapsack. Name keys its pheromone trail;
// Heuristic is the problem's greedy desirability of picking it.
type Component struct {
	Name      string
	Value     interface{}
	Heuristic float64
}

// Trails is a pheromone store shared by the constructor and the trail
// updater, and safely shareable across concurrently evolving
// populations. Every value is floored at a small positive minimum so
// no option ever becomes unreachable.
type Trails struct {
	// Initial is the trail strength of a component never reinforced
	// (default 1.0/n is common; zero means the Floor).
	Initial float64
	// Floor is the minimum trail value (default 1e-9).
	Floor float64

	mu     sync.Mutex
	values map[string]float64
}

func (t *Trails) floor() float64 {
	if t.Floor > 0 {
		return t.Floor
	}
	return 1e-9
}

// Get returns the trail strength of name.
func (t *Trails) Get(name string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.get(name)
}

func (t *Trails) get(name string) float64 {
	if v, ok := t.values[name]; ok {
		return v
	}
	if t.Initial > 0 {
		return t.Initial
	}
	return t.floor()
}

// Evaporate decays every known trail by the factor (1-rho), clamped to
// the floor. It must run before reinforcement within one update.
func (t *Trails) Evaporate(rho float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for name, v := range t.values {
		v *= 1 - rho
		if v < t.floor() {
			v = t.floor()
		}
		t.values[name] = v
	}
}

// Reinforce adds amount to the trail of name.
func (t *Trails) Reinforce(name string, amount float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.values == nil {
		t.values = make(map[string]float64)
	}
	v := t.get(name) + amount
	if v < t.floor() {
		v = t.floor()
	}
	t.values[name] = v
}

// ConstructionProblem supplies the feasible next components of a
// partially built solution. An empty option set means the solution is
// complete.
type ConstructionProblem interface {
	Options(partial []Component) []Component
}

// Constructor builds candidates component by component, choosing each
// next component with probability proportional to
// trail^Alpha * heuristic^Beta over the feasible options. It replaces
// generic variation: every cycle each candidate is rebuilt from
// scratch under the current trails. Candidates are []Component.
type Constructor struct {
	Problem ConstructionProblem
	Trails  *Trails
	Alpha   float64 // trail exponent (default 1.0)
	Beta    float64 // heuristic exponent (default 2.0)
}

func (c Constructor) Generate(r *rand.Rand, args ec.Args) (interface{}, error) {
	if c.Problem == nil || c.Trails == nil {
		return nil, errors.New(errors.MissingComponent, "constructor requires a problem and a trail store")
	}
	var solution []Component
	for {
		options := c.Problem.Options(solution)
		if len(options) == 0 {
			return solution, nil
		}
		solution = append(solution, c.pick(r, options))
	}
}

func (c Constructor) Vary(r *rand.Rand, candidates []interface{}, args ec.Args) ([]interface{}, error) {
	rebuilt := make([]interface{}, len(candidates))
	for i := range candidates {
		solution, err := c.Generate(r, args)
		if err != nil {
			return nil, err
		}
		rebuilt[i] = solution
	}
	return rebuilt, nil
}

func (c Constructor) pick(r *rand.Rand, options []Component) Component {
	alpha := c.Alpha
	if alpha == 0 {
		alpha = 1.0
	}
	beta := c.Beta
	if beta == 0 {
		beta = 2.0
	}

	weights := make([]float64, len(options))
	var total float64
	for i, opt := range options {
		w := math.Pow(c.Trails.Get(opt.Name), alpha) * math.Pow(max(opt.Heuristic, 0), beta)
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return options[r.Intn(len(options))]
	}
	pick := r.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if pick < cum {
			return options[i]
		}
	}
	return options[len(options)-1]
}

// TrailUpdater is the archiver of an ant colony run: it keeps the
// best-ever solution as the archive and performs the trail update,
// evaporating every trail strictly before reinforcing the components
// of the archived best.
type TrailUpdater struct {
	Trails *Trails
	// EvaporationRate is ρ in trail *= (1-ρ) (default 0.1).
	EvaporationRate float64
	// LearningRate scales the reinforcement added to each component of
	// the best solution (default 0.1).
	LearningRate float64
}

func (u TrailUpdater) Archive(r *rand.Rand, archive, offspring, population []*ec.Individual, args ec.Args) ([]*ec.Individual, error) {
	if u.Trails == nil {
		return archive, nil
	}
	best := ec.Best(population)
	if best == nil {
		return archive, nil
	}
	if len(archive) == 0 || best.BetterThan(archive[0]) {
		archive = []*ec.Individual{best.Clone()}
	}

	rho := u.EvaporationRate
	if rho == 0 {
		rho = 0.1
	}
	lr := u.LearningRate
	if lr == 0 {
		lr = 0.1
	}

	u.Trails.Evaporate(rho)
	champion := archive[0]
	components, ok := champion.Candidate.([]Component)
	if !ok {
		return archive, nil
	}
	quality := solutionQuality(champion.Fitness)
	for _, comp := range components {
		u.Trails.Reinforce(comp.Name, lr*quality)
	}
	return archive, nil
}

// solutionQuality maps a scalar fitness to a positive reinforcement
// weight: the raw value when maximizing, its reciprocal when
// minimizing (shorter tours deposit more pheromone).
func solutionQuality(fit ec.Fitness) float64 {
	s, ok := fit.(ec.Scalar)
	if !ok {
		return 1
	}
	if s.Maximize {
		if s.Value > 0 {
			return s.Value
		}
		return 1
	}
	if s.Value > 0 {
		return 1 / s.Value
	}
	return 1
}

// NewACS configures an engine as an ant colony system around problem
// and a fresh trail store: trail-guided construction in place of
// variation, wholesale generational replacement, and the trail update
// as the archive step. The returned trails are shared with the
// constructor and may be shared further across island populations.
func NewACS(r *rand.Rand, problem ConstructionProblem) (*ec.Engine, *Trails) {
	trails := &Trails{Initial: 1.0}
	e := ec.New(r)
	e.Variators = []ec.Variator{Constructor{Problem: problem, Trails: trails}}
	e.Replacer = ec.GenerationalReplacer{NumElites: 1}
	e.Archiver = TrailUpdater{Trails: trails}
	return e, trails
}
