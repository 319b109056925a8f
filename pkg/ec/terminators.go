package ec

import (
	"math"
	"time"

	"github.com/XiaoConstantine/evo-go/pkg/stats"
)

// ImmediateTerminator always stops. It is the engine default so a run
// without an explicit terminator ends after the initial population.
type ImmediateTerminator struct{}

func (ImmediateTerminator) Terminate(population []*Individual, numGenerations, numEvaluations int, args Args) bool {
	return true
}

// GenerationTerminator stops once the generation counter reaches Max.
type GenerationTerminator struct {
	Max int
}

func (t GenerationTerminator) Terminate(population []*Individual, numGenerations, numEvaluations int, args Args) bool {
	return numGenerations >= t.Max
}

// EvaluationTerminator stops once the evaluation counter reaches Max.
type EvaluationTerminator struct {
	Max int
}

func (t EvaluationTerminator) Terminate(population []*Individual, numGenerations, numEvaluations int, args Args) bool {
	return numEvaluations >= t.Max
}

// TimeTerminator stops after a wall-clock duration. The clock starts
// at the first termination check.
type TimeTerminator struct {
	Max   time.Duration
	start time.Time
}

func (t *TimeTerminator) Terminate(population []*Individual, numGenerations, numEvaluations int, args Args) bool {
	if t.start.IsZero() {
		t.start = time.Now()
		return false
	}
	return time.Since(t.start) >= t.Max
}

// DiversityTerminator stops when the largest pairwise distance between
// []float64 candidates falls below Min.
type DiversityTerminator struct {
	Min      float64
	Distance DistanceFunc // default EuclideanDistance
}

func (t DiversityTerminator) Terminate(population []*Individual, numGenerations, numEvaluations int, args Args) bool {
	distance := t.Distance
	if distance == nil {
		distance = EuclideanDistance
	}
	var largest float64
	for i := range population {
		for j := i + 1; j < len(population); j++ {
			d := distance(population[i].Candidate, population[j].Candidate)
			if !math.IsInf(d, 1) && d > largest {
				largest = d
			}
		}
	}
	return largest < t.Min
}

// AverageFitnessTerminator stops when the population's mean scalar
// fitness is within Tolerance of its best, signalling convergence.
type AverageFitnessTerminator struct {
	Tolerance float64 // default 0.001
}

func (t AverageFitnessTerminator) Terminate(population []*Individual, numGenerations, numEvaluations int, args Args) bool {
	tolerance := t.Tolerance
	if tolerance == 0 {
		tolerance = 0.001
	}
	values := ScalarValues(population)
	if len(values) == 0 {
		return false
	}
	sum := stats.Summarize(values)
	best := sum.Max
	if len(population) > 0 {
		if s, ok := population[0].Fitness.(Scalar); ok && !s.Maximize {
			best = sum.Min
		}
	}
	return math.Abs(best-sum.Mean) < tolerance
}

// NoImprovementTerminator stops after Max consecutive generations
// without a change in the best fitness.
type NoImprovementTerminator struct {
	Max int // default 10

	previous Fitness
	count    int
}

func (t *NoImprovementTerminator) Terminate(population []*Individual, numGenerations, numEvaluations int, args Args) bool {
	max := t.Max
	if max == 0 {
		max = 10
	}
	if len(population) == 0 {
		return false
	}
	current := Best(population).Fitness
	if t.previous == nil || !t.previous.Equal(current) {
		t.previous = current
		t.count = 0
		return false
	}
	if t.count >= max {
		return true
	}
	t.count++
	return false
}
