package ec

import "math/rand"

// Args is the free-form configuration mapping forwarded verbatim to
// every pipeline component. The engine never validates its keys.
type Args map[string]interface{}

// Int returns the int stored under key, or def if absent or mistyped.
func (a Args) Int(key string, def int) int {
	if v, ok := a[key].(int); ok {
		return v
	}
	return def
}

// Float returns the float64 stored under key, or def if absent or mistyped.
func (a Args) Float(key string, def float64) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// Bool returns the bool stored under key, or def if absent or mistyped.
func (a Args) Bool(key string, def bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return def
}

// String returns the string stored under key, or def if absent or mistyped.
func (a Args) String(key string, def string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return def
}

// Generator produces a single new candidate solution. It is invoked
// once per individual when the initial population is built.
type Generator interface {
	Generate(r *rand.Rand, args Args) (interface{}, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(r *rand.Rand, args Args) (interface{}, error)

func (f GeneratorFunc) Generate(r *rand.Rand, args Args) (interface{}, error) {
	return f(r, args)
}

// Evaluator assigns a fitness to every candidate. The returned slice
// must parallel the input: fitnesses[i] belongs to candidates[i]. Any
// concurrency lives entirely inside the evaluator; from the engine's
// point of view evaluation is synchronous.
type Evaluator interface {
	Evaluate(candidates []interface{}, args Args) ([]Fitness, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(candidates []interface{}, args Args) ([]Fitness, error)

func (f EvaluatorFunc) Evaluate(candidates []interface{}, args Args) ([]Fitness, error) {
	return f(candidates, args)
}

// Selector picks the parents for one generation. The number of parents
// is a selector decision and need not match the population size.
type Selector interface {
	Select(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error)
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error)

func (f SelectorFunc) Select(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error) {
	return f(r, population, args)
}

// Variator transforms a working set of candidates. When several
// variators are configured they form a pipeline: the output of one is
// the sole input of the next. The engine applies the bounder after the
// whole chain, so variators may produce out-of-range components.
type Variator interface {
	Vary(r *rand.Rand, candidates []interface{}, args Args) ([]interface{}, error)
}

// VariatorFunc adapts a function to the Variator interface.
type VariatorFunc func(r *rand.Rand, candidates []interface{}, args Args) ([]interface{}, error)

func (f VariatorFunc) Vary(r *rand.Rand, candidates []interface{}, args Args) ([]interface{}, error) {
	return f(r, candidates, args)
}

// Replacer merges the current population, the parents, and the
// offspring into the next population.
//
// The engine does not require the returned population to keep the
// previous size: it may legitimately shrink or grow between
// generations, and the engine never re-pads it. Implementations that
// assume a fixed size must enforce that themselves.
type Replacer interface {
	Replace(r *rand.Rand, population, parents, offspring []*Individual, args Args) ([]*Individual, error)
}

// ReplacerFunc adapts a function to the Replacer interface.
type ReplacerFunc func(r *rand.Rand, population, parents, offspring []*Individual, args Args) ([]*Individual, error)

func (f ReplacerFunc) Replace(r *rand.Rand, population, parents, offspring []*Individual, args Args) ([]*Individual, error) {
	return f(r, population, parents, offspring, args)
}

// Migrator incorporates individuals arriving from other concurrently
// evolving populations. Cross-population synchronization is the
// migrator's responsibility; the engine sees one population at a time.
type Migrator interface {
	Migrate(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error)
}

// MigratorFunc adapts a function to the Migrator interface.
type MigratorFunc func(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error)

func (f MigratorFunc) Migrate(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error) {
	return f(r, population, args)
}

// Archiver maintains the run's archive of notable individuals. It
// receives the offspring of the cycle and the new population and
// returns the updated archive. Archived individuals should be clones
// so later population mutation cannot corrupt them.
type Archiver interface {
	Archive(r *rand.Rand, archive, offspring, population []*Individual, args Args) ([]*Individual, error)
}

// ArchiverFunc adapts a function to the Archiver interface.
type ArchiverFunc func(r *rand.Rand, archive, offspring, population []*Individual, args Args) ([]*Individual, error)

func (f ArchiverFunc) Archive(r *rand.Rand, archive, offspring, population []*Individual, args Args) ([]*Individual, error) {
	return f(r, archive, offspring, population, args)
}

// Observer is invoked after every generation for side effects only.
type Observer interface {
	Observe(population []*Individual, numGenerations, numEvaluations int, args Args)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(population []*Individual, numGenerations, numEvaluations int, args Args)

func (f ObserverFunc) Observe(population []*Individual, numGenerations, numEvaluations int, args Args) {
	f(population, numGenerations, numEvaluations, args)
}

// Terminator decides whether the evolution should stop. Terminators in
// a list are checked in order and the first positive result
// short-circuits the rest.
type Terminator interface {
	Terminate(population []*Individual, numGenerations, numEvaluations int, args Args) bool
}

// TerminatorFunc adapts a function to the Terminator interface.
type TerminatorFunc func(population []*Individual, numGenerations, numEvaluations int, args Args) bool

func (f TerminatorFunc) Terminate(population []*Individual, numGenerations, numEvaluations int, args Args) bool {
	return f(population, numGenerations, numEvaluations, args)
}
