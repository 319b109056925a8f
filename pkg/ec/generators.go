package ec

import "math/rand"

// Strategize wraps a real-valued generator so each candidate carries
// its own mutation strategy: the generated []float64 is extended with
// an equal-length block of strategy parameters drawn uniformly from
// [0, 1). Evolution strategies self-adapt by evolving that block along
// with the solution itself.
func Strategize(generator Generator) Generator {
	return GeneratorFunc(func(r *rand.Rand, args Args) (interface{}, error) {
		candidate, err := generator.Generate(r, args)
		if err != nil {
			return nil, err
		}
		values, ok := candidate.([]float64)
		if !ok {
			return candidate, nil
		}
		strategized := make([]float64, len(values), 2*len(values))
		copy(strategized, values)
		for range values {
			strategized = append(strategized, r.Float64())
		}
		return strategized, nil
	})
}

// UnstrategizedEvaluator adapts an evaluator written for plain
// candidates to candidates produced by Strategize: it strips the
// strategy half before delegating.
func UnstrategizedEvaluator(inner Evaluator) Evaluator {
	return EvaluatorFunc(func(candidates []interface{}, args Args) ([]Fitness, error) {
		stripped := make([]interface{}, len(candidates))
		for i, c := range candidates {
			if values, ok := c.([]float64); ok && len(values)%2 == 0 {
				stripped[i] = values[:len(values)/2]
			} else {
				stripped[i] = c
			}
		}
		return inner.Evaluate(stripped, args)
	})
}

// StrategyBounder applies Inner to the solution half of a strategized
// candidate and floors the strategy half at Epsilon so mutation step
// sizes never collapse to zero. Candidates that are not strategized
// []float64 slices go straight to Inner.
type StrategyBounder struct {
	Inner   Bounder
	Epsilon float64
}

func (b StrategyBounder) Bound(candidate interface{}, args Args) interface{} {
	values, ok := candidate.([]float64)
	if !ok || len(values)%2 != 0 {
		if b.Inner != nil {
			return b.Inner.Bound(candidate, args)
		}
		return candidate
	}
	n := len(values) / 2
	solution := append([]float64(nil), values[:n]...)
	if b.Inner != nil {
		if bounded, ok := b.Inner.Bound(solution, args).([]float64); ok {
			solution = bounded
		}
	}
	eps := b.Epsilon
	if eps <= 0 {
		eps = 1e-10
	}
	out := make([]float64, 0, len(values))
	out = append(out, solution...)
	for _, s := range values[n:] {
		out = append(out, max(s, eps))
	}
	return out
}
