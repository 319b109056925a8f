// Package emo extends the evolutionary engine with Pareto-based
// multiobjective optimization: dominance-ordered fitness tuples,
// nondominated sorting, crowding, and the NSGA-II and PAES presets.
package emo

import (
	"fmt"
	"strings"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
)

// Pareto is a multiobjective fitness: one value per objective with a
// per-objective optimization direction. It orders individuals by
// Pareto dominance, which is a strict partial order; incomparable
// pairs are neither Worse nor Equal in either direction.
type Pareto struct {
	Values []float64
	// Maximize holds one direction per objective. Nil means maximize
	// all; length one broadcasts.
	Maximize []bool
}

// NewPareto builds an all-maximizing Pareto fitness.
func NewPareto(values ...float64) Pareto {
	return Pareto{Values: values}
}

func (p Pareto) maximize(i int) bool {
	switch {
	case len(p.Maximize) == 0:
		return true
	case i >= len(p.Maximize):
		return p.Maximize[0]
	default:
		return p.Maximize[i]
	}
}

// Dominates reports whether p is no worse than other in every
// objective and strictly better in at least one. Tuples of different
// arity are incomparable.
func (p Pareto) Dominates(other Pareto) bool {
	if len(p.Values) != len(other.Values) {
		return false
	}
	strict := false
	for i, v := range p.Values {
		o := other.Values[i]
		if !p.maximize(i) {
			v, o = -v, -o
		}
		if v < o {
			return false
		}
		if v > o {
			strict = true
		}
	}
	return strict
}

// Worse reports whether other dominates p.
func (p Pareto) Worse(other ec.Fitness) bool {
	o, ok := other.(Pareto)
	if !ok {
		return false
	}
	return o.Dominates(p)
}

// Equal reports whether the tuples are identical in every objective.
func (p Pareto) Equal(other ec.Fitness) bool {
	o, ok := other.(Pareto)
	if !ok || len(p.Values) != len(o.Values) {
		return false
	}
	for i, v := range p.Values {
		if v != o.Values[i] {
			return false
		}
	}
	return true
}

func (p Pareto) String() string {
	parts := make([]string, len(p.Values))
	for i, v := range p.Values {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
