package ec

import (
	"fmt"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sourcegraph/conc/pool"

	"github.com/XiaoConstantine/evo-go/pkg/errors"
)

// CandidateEvaluator scores a single candidate. It is the natural unit
// for user fitness functions; wrap it with Serial or Parallel to get a
// batch Evaluator the engine can use.
type CandidateEvaluator func(candidate interface{}, args Args) (Fitness, error)

// Serial evaluates candidates one at a time in order.
func Serial(eval CandidateEvaluator) Evaluator {
	return EvaluatorFunc(func(candidates []interface{}, args Args) ([]Fitness, error) {
		fits := make([]Fitness, len(candidates))
		for i, c := range candidates {
			fit, err := eval(c, args)
			if err != nil {
				return nil, errors.WithFields(
					errors.Wrap(err, errors.EvaluationFailed, "candidate evaluation failed"),
					errors.Fields{"candidate_index": i})
			}
			fits[i] = fit
		}
		return fits, nil
	})
}

// ParallelEvaluator fans candidate evaluations out over a bounded pool
// of goroutines. Results land at the same index they were submitted
// from, so fitnesses stay aligned with candidates regardless of
// completion order.
type ParallelEvaluator struct {
	Eval CandidateEvaluator

	// MaxWorkers caps concurrent evaluations. Zero or negative means
	// one goroutine per candidate.
	MaxWorkers int
}

func (p ParallelEvaluator) Evaluate(candidates []interface{}, args Args) ([]Fitness, error) {
	fits := make([]Fitness, len(candidates))

	workers := p.MaxWorkers
	if workers <= 0 {
		workers = len(candidates)
	}
	if workers < 1 {
		workers = 1
	}

	wp := pool.New().WithMaxGoroutines(workers).WithErrors()
	for i, c := range candidates {
		i, c := i, c
		wp.Go(func() error {
			fit, err := p.Eval(c, args)
			if err != nil {
				return errors.WithFields(
					errors.Wrap(err, errors.EvaluationFailed, "candidate evaluation failed"),
					errors.Fields{"candidate_index": i})
			}
			fits[i] = fit
			return nil
		})
	}
	if err := wp.Wait(); err != nil {
		return nil, err
	}
	return fits, nil
}

// CachedEvaluator memoizes fitness by candidate value. Useful when the
// fitness function is expensive and the variators frequently revisit
// candidates, as discrete problems tend to.
type CachedEvaluator struct {
	inner Evaluator
	cache *gocache.Cache

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCachedEvaluator wraps inner with an in-memory cache whose entries
// expire after ttl. A non-positive ttl keeps entries for the lifetime
// of the evaluator.
func NewCachedEvaluator(inner Evaluator, ttl time.Duration) *CachedEvaluator {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &CachedEvaluator{
		inner: inner,
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

func (c *CachedEvaluator) Evaluate(candidates []interface{}, args Args) ([]Fitness, error) {
	fits := make([]Fitness, len(candidates))

	var missing []interface{}
	var missingIdx []int
	keys := make([]string, len(candidates))
	for i, cand := range candidates {
		keys[i] = candidateKey(cand)
		if v, ok := c.cache.Get(keys[i]); ok {
			fits[i] = v.(Fitness)
			c.hits.Add(1)
			continue
		}
		c.misses.Add(1)
		missing = append(missing, cand)
		missingIdx = append(missingIdx, i)
	}
	if len(missing) == 0 {
		return fits, nil
	}

	fresh, err := c.inner.Evaluate(missing, args)
	if err != nil {
		return nil, err
	}
	for j := 0; j < len(fresh) && j < len(missingIdx); j++ {
		i := missingIdx[j]
		fits[i] = fresh[j]
		c.cache.SetDefault(keys[i], fresh[j])
	}
	return fits, nil
}

// Hits reports how many candidate lookups were served from the cache.
func (c *CachedEvaluator) Hits() int64 { return c.hits.Load() }

// Misses reports how many candidate lookups fell through to the inner
// evaluator.
func (c *CachedEvaluator) Misses() int64 { return c.misses.Load() }

func candidateKey(candidate interface{}) string {
	return fmt.Sprintf("%v", candidate)
}
