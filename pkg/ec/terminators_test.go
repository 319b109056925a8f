package ec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerationTerminator(t *testing.T) {
	term := GenerationTerminator{Max: 3}
	assert.False(t, term.Terminate(nil, 2, 0, nil))
	assert.True(t, term.Terminate(nil, 3, 0, nil))
	assert.True(t, term.Terminate(nil, 4, 0, nil))
}

func TestEvaluationTerminator(t *testing.T) {
	term := EvaluationTerminator{Max: 100}
	assert.False(t, term.Terminate(nil, 0, 99, nil))
	assert.True(t, term.Terminate(nil, 0, 100, nil))
}

func TestTimeTerminatorClockStartsOnFirstCheck(t *testing.T) {
	term := &TimeTerminator{Max: time.Hour}
	assert.False(t, term.Terminate(nil, 0, 0, nil))
	assert.False(t, term.Terminate(nil, 1, 0, nil))

	expired := &TimeTerminator{Max: time.Nanosecond}
	assert.False(t, expired.Terminate(nil, 0, 0, nil))
	time.Sleep(time.Millisecond)
	assert.True(t, expired.Terminate(nil, 1, 0, nil))
}

func TestDiversityTerminator(t *testing.T) {
	converged := []*Individual{
		withFitness([]float64{1.0}, Maximizing(1)),
		withFitness([]float64{1.001}, Maximizing(1)),
	}
	spread := []*Individual{
		withFitness([]float64{0}, Maximizing(1)),
		withFitness([]float64{100}, Maximizing(1)),
	}

	term := DiversityTerminator{Min: 0.01}
	assert.True(t, term.Terminate(converged, 0, 0, nil))
	assert.False(t, term.Terminate(spread, 0, 0, nil))
}

func TestAverageFitnessTerminator(t *testing.T) {
	term := AverageFitnessTerminator{Tolerance: 0.1}

	converged := scalarPop(5.0, 5.01, 4.99)
	assert.True(t, term.Terminate(converged, 0, 0, nil))

	diverse := scalarPop(1, 5, 9)
	assert.False(t, term.Terminate(diverse, 0, 0, nil))
}

func TestAverageFitnessTerminatorMinimization(t *testing.T) {
	pop := []*Individual{
		withFitness([]float64{1}, Minimizing(1.0)),
		withFitness([]float64{1}, Minimizing(1.01)),
	}
	term := AverageFitnessTerminator{Tolerance: 0.1}
	assert.True(t, term.Terminate(pop, 0, 0, nil))
}

func TestNoImprovementTerminator(t *testing.T) {
	term := &NoImprovementTerminator{Max: 2}
	stale := scalarPop(5, 3)

	assert.False(t, term.Terminate(stale, 0, 0, nil), "first sight establishes the baseline")
	assert.False(t, term.Terminate(stale, 1, 0, nil))
	assert.False(t, term.Terminate(stale, 2, 0, nil))
	assert.True(t, term.Terminate(stale, 3, 0, nil))

	// An improvement resets the counter.
	term = &NoImprovementTerminator{Max: 2}
	assert.False(t, term.Terminate(scalarPop(5), 0, 0, nil))
	assert.False(t, term.Terminate(scalarPop(5), 1, 0, nil))
	assert.False(t, term.Terminate(scalarPop(6), 2, 0, nil))
	assert.False(t, term.Terminate(scalarPop(6), 3, 0, nil))
}
