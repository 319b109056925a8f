package ec

import "math"

// Bounder maps out-of-range candidate components back into feasible
// space. The engine applies it to every offspring after the variator
// chain has run.
type Bounder interface {
	Bound(candidate interface{}, args Args) interface{}
}

// BounderFunc adapts a function to the Bounder interface.
type BounderFunc func(candidate interface{}, args Args) interface{}

func (f BounderFunc) Bound(candidate interface{}, args Args) interface{} {
	return f(candidate, args)
}

// ClampBounder clamps each component of a []float64 candidate between
// a lower and upper bound. Bounds of length one are broadcast across
// all components; otherwise they are matched index by index.
// Candidates of any other type pass through unchanged.
type ClampBounder struct {
	Lower []float64
	Upper []float64
}

// NewClampBounder creates a bounder with uniform bounds for every component.
func NewClampBounder(lower, upper float64) *ClampBounder {
	return &ClampBounder{Lower: []float64{lower}, Upper: []float64{upper}}
}

func (b *ClampBounder) Bound(candidate interface{}, args Args) interface{} {
	cand, ok := candidate.([]float64)
	if !ok || len(b.Lower) == 0 || len(b.Upper) == 0 {
		return candidate
	}
	for i, c := range cand {
		lo := b.Lower[min(i, len(b.Lower)-1)]
		hi := b.Upper[min(i, len(b.Upper)-1)]
		cand[i] = math.Max(math.Min(c, hi), lo)
	}
	return cand
}

// DiscreteBounder resolves each component of a []float64 candidate to
// the nearest legal value. When a component is equidistant to several
// legal values, the one appearing earliest in Values wins.
type DiscreteBounder struct {
	Values []float64
}

func (b *DiscreteBounder) Bound(candidate interface{}, args Args) interface{} {
	cand, ok := candidate.([]float64)
	if !ok || len(b.Values) == 0 {
		return candidate
	}
	for i, c := range cand {
		closest := b.Values[0]
		for _, v := range b.Values[1:] {
			if math.Abs(v-c) < math.Abs(closest-c) {
				closest = v
			}
		}
		cand[i] = closest
	}
	return cand
}
