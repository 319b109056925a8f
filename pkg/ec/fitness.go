package ec

import "fmt"

// Fitness is the value assigned to a candidate by an evaluator.
//
// Implementations define how two fitness values compare. For scalar
// fitness the comparison is a total order that already accounts for the
// optimization direction; for multiobjective fitness it is the Pareto
// dominance relation, which is only a partial order.
type Fitness interface {
	// Worse reports whether the receiver is strictly worse than other.
	Worse(other Fitness) bool
	// Equal reports whether the two fitness values are equal.
	Equal(other Fitness) bool
}

// Better reports whether a is strictly better than b.
func Better(a, b Fitness) bool {
	return b.Worse(a)
}

// Scalar is a single-objective fitness value. The direction is fixed at
// construction and must be the same for every individual in a run.
type Scalar struct {
	Value    float64
	Maximize bool
}

// Maximizing returns a scalar fitness where larger values are better.
func Maximizing(value float64) Scalar {
	return Scalar{Value: value, Maximize: true}
}

// Minimizing returns a scalar fitness where smaller values are better.
func Minimizing(value float64) Scalar {
	return Scalar{Value: value, Maximize: false}
}

func (s Scalar) Worse(other Fitness) bool {
	o := other.(Scalar)
	if s.Maximize {
		return s.Value < o.Value
	}
	return s.Value > o.Value
}

func (s Scalar) Equal(other Fitness) bool {
	o, ok := other.(Scalar)
	return ok && s.Value == o.Value
}

func (s Scalar) String() string {
	return fmt.Sprintf("%g", s.Value)
}

// ScalarValue extracts the underlying value from a scalar fitness.
// It reports false for nil or non-scalar fitness.
func ScalarValue(f Fitness) (float64, bool) {
	s, ok := f.(Scalar)
	if !ok {
		return 0, false
	}
	return s.Value, true
}
