package ec

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/XiaoConstantine/evo-go/pkg/errors"
	"github.com/XiaoConstantine/evo-go/pkg/logging"
)

// Engine orchestrates the canonical evolutionary cycle:
// select, vary, evaluate, replace, migrate, archive, observe, terminate.
//
// The engine is the sole caller of every pipeline role; roles never
// call each other directly. The control loop is strictly
// single-threaded: each stage completes fully before the next runs.
// Any concurrency belongs inside the evaluator.
//
// Errors raised by a pipeline component are returned unwrapped and
// abort the run immediately; there is no meaningful notion of a
// partial generation. The engine performs no compatibility checks
// between operators: a selector and replacer with mismatched
// expectations surface as whatever error the downstream stage produces.
type Engine struct {
	Selector    Selector
	Variators   []Variator
	Replacer    Replacer
	Migrator    Migrator
	Archiver    Archiver
	Observers   []Observer
	Terminators []Terminator
	Bounder     Bounder

	rng    *rand.Rand
	logger *logging.Logger

	population  []*Individual
	archive     []*Individual
	generations int
	evaluations int

	terminationCause string
}

// New creates an engine around a single sequential random stream.
// Pipeline roles default to no-ops, except the terminator, which stops
// after the initial population so a misconfigured run cannot spin
// forever; real runs replace it.
func New(r *rand.Rand) *Engine {
	return &Engine{
		Selector:    DefaultSelector{},
		Replacer:    DefaultReplacer{},
		Migrator:    DefaultMigrator{},
		Archiver:    DefaultArchiver{},
		Terminators: []Terminator{ImmediateTerminator{}},
		rng:         r,
		logger:      logging.GetLogger(),
	}
}

// RunConfig carries the per-run settings of Evolve.
type RunConfig struct {
	// PopSize is the initial population size (default 100).
	PopSize int
	// Seeds are caller-supplied candidates prepended to the initial
	// population; they count toward PopSize.
	Seeds []interface{}
	// Args is the free-form option mapping forwarded to every
	// pipeline component.
	Args Args
}

// Result is the outcome of a completed run.
type Result struct {
	Population       []*Individual
	Archive          []*Individual
	Generations      int
	Evaluations      int
	TerminationCause string
}

// Rand exposes the engine's random stream for components that share it.
func (e *Engine) Rand() *rand.Rand { return e.rng }

// Population returns the current population. It is owned by the engine
// for the duration of a run and must not be mutated by callers.
func (e *Engine) Population() []*Individual { return e.population }

// Archive returns the current archive.
func (e *Engine) Archive() []*Individual { return e.archive }

// Generations returns the number of completed cycles.
func (e *Engine) Generations() int { return e.generations }

// Evaluations returns the number of fitness evaluations performed.
func (e *Engine) Evaluations() int { return e.evaluations }

// Evolve runs the evolutionary computation until a terminator fires or
// a pipeline component fails.
func (e *Engine) Evolve(ctx context.Context, generator Generator, evaluator Evaluator, cfg RunConfig) (*Result, error) {
	if generator == nil {
		return nil, errors.New(errors.MissingComponent, "no generator supplied")
	}
	if evaluator == nil {
		return nil, errors.New(errors.MissingComponent, "no evaluator supplied")
	}

	popSize := cfg.PopSize
	if popSize <= 0 {
		popSize = 100
	}
	args := cfg.Args
	if args == nil {
		args = Args{}
	}

	e.population = nil
	e.archive = nil
	e.generations = 0
	e.evaluations = 0
	e.terminationCause = ""

	// Build the initial candidate set: seeds first, generated fill after.
	initial := make([]interface{}, 0, popSize)
	for _, seed := range cfg.Seeds {
		initial = append(initial, CopyCandidate(seed))
	}
	e.logger.Debug(ctx, "generating initial population")
	for len(initial) < popSize {
		cs, err := generator.Generate(e.rng, args)
		if err != nil {
			return nil, err
		}
		initial = append(initial, cs)
	}

	e.logger.Debug(ctx, "evaluating initial population")
	fits, err := evaluator.Evaluate(initial, args)
	if err != nil {
		return nil, err
	}
	e.population = e.assemble(ctx, initial, fits, 0)
	e.evaluations = len(fits)
	e.logger.Debug(ctx, "population size is now %d", len(e.population))

	e.logger.Debug(ctx, "archiving initial population")
	if e.Archiver != nil {
		e.archive, err = e.Archiver.Archive(e.rng, e.archive, nil, e.snapshot(), args)
		if err != nil {
			return nil, err
		}
	}

	e.observe(args)

	for !e.shouldTerminate(args) {
		if err := errors.CheckContext(ctx, "evolve"); err != nil {
			return e.result(), err
		}

		// Select.
		e.logger.Debug(ctx, "selection at generation %d and evaluation %d", e.generations, e.evaluations)
		parents, err := e.Selector.Select(e.rng, e.snapshot(), args)
		if err != nil {
			return e.result(), err
		}
		e.logger.Debug(ctx, "selected %d parents", len(parents))

		// Vary: the parents' candidates are copied into a working set
		// that each variator replaces in pipeline order.
		offspringCS := make([]interface{}, len(parents))
		for i, p := range parents {
			offspringCS[i] = CopyCandidate(p.Candidate)
		}
		for _, op := range e.Variators {
			e.logger.Debug(ctx, "variation at generation %d and evaluation %d", e.generations, e.evaluations)
			offspringCS, err = op.Vary(e.rng, offspringCS, args)
			if err != nil {
				return e.result(), err
			}
		}
		if e.Bounder != nil {
			for i, cs := range offspringCS {
				offspringCS[i] = e.Bounder.Bound(cs, args)
			}
		}
		e.logger.Debug(ctx, "created %d offspring", len(offspringCS))

		// Evaluate offspring.
		e.logger.Debug(ctx, "evaluation at generation %d and evaluation %d", e.generations, e.evaluations)
		fits, err := evaluator.Evaluate(offspringCS, args)
		if err != nil {
			return e.result(), err
		}
		offspring := e.assemble(ctx, offspringCS, fits, e.generations+1)
		e.evaluations += len(fits)

		// Replace.
		e.logger.Debug(ctx, "replacement at generation %d and evaluation %d", e.generations, e.evaluations)
		e.population, err = e.Replacer.Replace(e.rng, e.population, parents, offspring, args)
		if err != nil {
			return e.result(), err
		}
		e.logger.Debug(ctx, "population size is now %d", len(e.population))

		// Migrate.
		if e.Migrator != nil {
			e.logger.Debug(ctx, "migration at generation %d and evaluation %d", e.generations, e.evaluations)
			e.population, err = e.Migrator.Migrate(e.rng, e.population, args)
			if err != nil {
				return e.result(), err
			}
		}

		// Archive.
		if e.Archiver != nil {
			e.logger.Debug(ctx, "archival at generation %d and evaluation %d", e.generations, e.evaluations)
			e.archive, err = e.Archiver.Archive(e.rng, e.archive, offspring, e.snapshot(), args)
			if err != nil {
				return e.result(), err
			}
			e.logger.Debug(ctx, "archive size is now %d", len(e.archive))
		}

		e.generations++
		e.observe(args)
	}

	return e.result(), nil
}

// assemble zips candidates with their fitnesses into individuals.
// A nil fitness excludes the candidate, matching the contract that an
// evaluator may decline to score a candidate. A short fitness slice
// silently truncates; the engine does not police evaluator cardinality.
func (e *Engine) assemble(ctx context.Context, candidates []interface{}, fits []Fitness, birthdate int) []*Individual {
	n := len(candidates)
	if len(fits) < n {
		n = len(fits)
	}
	individuals := make([]*Individual, 0, n)
	for i := 0; i < n; i++ {
		if fits[i] == nil {
			e.logger.Warn(ctx, "excluding candidate %v because fitness received as nil", candidates[i])
			continue
		}
		ind := NewIndividual(candidates[i], birthdate)
		ind.Fitness = fits[i]
		individuals = append(individuals, ind)
	}
	return individuals
}

// snapshot returns a shallow copy of the population slice so pipeline
// components can reorder it without disturbing the engine's copy.
func (e *Engine) snapshot() []*Individual {
	cp := make([]*Individual, len(e.population))
	copy(cp, e.population)
	return cp
}

func (e *Engine) observe(args Args) {
	for _, obs := range e.Observers {
		obs.Observe(e.snapshot(), e.generations, e.evaluations, args)
	}
}

func (e *Engine) shouldTerminate(args Args) bool {
	pop := e.snapshot()
	for _, term := range e.Terminators {
		if term.Terminate(pop, e.generations, e.evaluations, args) {
			e.terminationCause = fmt.Sprintf("%T", term)
			return true
		}
	}
	return false
}

func (e *Engine) result() *Result {
	return &Result{
		Population:       e.population,
		Archive:          e.archive,
		Generations:      e.generations,
		Evaluations:      e.evaluations,
		TerminationCause: e.terminationCause,
	}
}
