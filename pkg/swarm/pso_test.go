package swarm

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
)

func absEvaluator() ec.Evaluator {
	return ec.Serial(func(candidate interface{}, args ec.Args) (ec.Fitness, error) {
		x := candidate.([]float64)[0]
		return ec.Maximizing(-math.Abs(x)), nil
	})
}

func positionGenerator() ec.Generator {
	return ec.GeneratorFunc(func(r *rand.Rand, args ec.Args) (interface{}, error) {
		return []float64{r.Float64()*10 - 5}, nil
	})
}

func TestPSOPersonalBestsNeverRegress(t *testing.T) {
	p := NewPSO(rand.New(rand.NewSource(31)))
	p.Engine.Terminators = []ec.Terminator{ec.GenerationTerminator{Max: 1}}

	seeds := []interface{}{
		[]float64{-2},
		[]float64{1},
		[]float64{3},
	}
	before := []float64{-2, -1, -3} // -|x| of each seed

	result, err := p.Evolve(context.Background(), positionGenerator(), absEvaluator(), ec.RunConfig{
		PopSize: 3,
		Seeds:   seeds,
	})
	require.NoError(t, err)
	require.Len(t, result.Population, 3)

	require.Len(t, p.pbest, 3)
	for i, ind := range p.pbest {
		v, ok := ec.ScalarValue(ind.Fitness)
		require.True(t, ok)
		assert.GreaterOrEqual(t, v, before[i], "particle %d personal best regressed", i)
	}
}

func TestPSOBestUpdateHandlesEmptySwarm(t *testing.T) {
	p := NewPSO(rand.New(rand.NewSource(43)))

	archive, err := p.updateBests(p.Engine.Rand(), nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, archive)
}

func TestPSOConvergesTowardOptimum(t *testing.T) {
	p := NewPSO(rand.New(rand.NewSource(37)))
	p.Engine.Bounder = ec.NewClampBounder(-5, 5)
	p.Engine.Terminators = []ec.Terminator{ec.GenerationTerminator{Max: 50}}

	result, err := p.Evolve(context.Background(), positionGenerator(), absEvaluator(), ec.RunConfig{PopSize: 10})
	require.NoError(t, err)

	require.Len(t, result.Archive, 1)
	best, ok := ec.ScalarValue(result.Archive[0].Fitness)
	require.True(t, ok)
	assert.Greater(t, best, -0.5, "swarm best should close in on x=0")
}

func TestPSORingTopology(t *testing.T) {
	p := NewPSO(rand.New(rand.NewSource(41)))
	p.Topology = RingTopology{Size: 3}
	p.Engine.Terminators = []ec.Terminator{ec.GenerationTerminator{Max: 10}}

	result, err := p.Evolve(context.Background(), positionGenerator(), absEvaluator(), ec.RunConfig{PopSize: 6})
	require.NoError(t, err)
	assert.Len(t, result.Population, 6)
}

func TestPSOConstrictionCoefficient(t *testing.T) {
	p := NewPSO(rand.New(rand.NewSource(43)))
	p.Constricted = true
	p.Cognitive, p.Social = 2.05, 2.05
	p.Engine.Terminators = []ec.Terminator{ec.GenerationTerminator{Max: 30}}

	result, err := p.Evolve(context.Background(), positionGenerator(), absEvaluator(), ec.RunConfig{PopSize: 8})
	require.NoError(t, err)

	// Constricted velocities keep positions from diverging.
	for _, particle := range p.Particles() {
		require.Len(t, particle.Position, 1)
		assert.Less(t, math.Abs(particle.Position[0]), 100.0)
	}
	require.Len(t, result.Archive, 1)
}

func TestPSORejectsNonRealCandidates(t *testing.T) {
	p := NewPSO(rand.New(rand.NewSource(1)))
	p.Engine.Terminators = []ec.Terminator{ec.GenerationTerminator{Max: 1}}

	gen := ec.GeneratorFunc(func(r *rand.Rand, args ec.Args) (interface{}, error) {
		return "not a position", nil
	})
	eval := ec.EvaluatorFunc(func(candidates []interface{}, args ec.Args) ([]ec.Fitness, error) {
		fits := make([]ec.Fitness, len(candidates))
		for i := range fits {
			fits[i] = ec.Maximizing(0)
		}
		return fits, nil
	})

	_, err := p.Evolve(context.Background(), gen, eval, ec.RunConfig{PopSize: 2})
	require.Error(t, err)
}

func TestParticlesSnapshot(t *testing.T) {
	p := NewPSO(rand.New(rand.NewSource(47)))
	p.Engine.Terminators = []ec.Terminator{ec.GenerationTerminator{Max: 2}}

	_, err := p.Evolve(context.Background(), positionGenerator(), absEvaluator(), ec.RunConfig{PopSize: 4})
	require.NoError(t, err)

	particles := p.Particles()
	require.Len(t, particles, 4)
	for i, particle := range particles {
		assert.Equal(t, i, particle.Index)
		assert.Len(t, particle.Position, 1)
		assert.Len(t, particle.Velocity, 1)
		require.NotNil(t, particle.Best)
	}
}
