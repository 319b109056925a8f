// Package evo is a generic engine for population-based stochastic
// optimization: genetic algorithms, evolution strategies, simulated
// annealing, multiobjective NSGA-II and PAES, particle swarms, and
// ant-style trail construction, all driven by one control loop.
//
// The engine runs the canonical evolutionary cycle (generate,
// evaluate, select, vary, replace, migrate, archive, observe,
// terminate) and delegates every step to a pluggable pipeline role.
// Algorithms are just operator configurations; presets like ec.NewGA,
// emo.NewNSGA2, or swarm.NewPSO wire the classic ones.
//
// Key packages:
//
//   - ec: the engine, the pipeline contract (Generator, Evaluator,
//     Selector, Variator, Replacer, Migrator, Archiver, Observer,
//     Terminator, Bounder), and a catalog of classic operators.
//     Includes serial, parallel (bounded goroutine pool), and cached
//     evaluator wrappers.
//
//   - ec/emo: Pareto fitness tuples with per-objective directions,
//     nondominated sorting, crowding distance, capacity-bounded Pareto
//     and adaptive-grid archives, and the NSGA-II and PAES presets.
//
//   - swarm: particle swarm optimization over star and ring
//     topologies, and pheromone-trail construction (ant colony
//     system) with strict evaporate-then-reinforce trail updates.
//
//   - config: YAML run configuration with validation and defaults.
//
//   - runstore: SQLite persistence of per-generation fitness
//     statistics, pluggable as an observer.
//
//   - stats: fitness summary statistics used by observers and
//     convergence terminators.
//
// Minimal example, maximizing the sum of a real vector:
//
//	import (
//	    "context"
//	    "math/rand"
//
//	    "github.com/XiaoConstantine/evo-go/pkg/ec"
//	)
//
//	func main() {
//	    engine := ec.NewGA(rand.New(rand.NewSource(42)))
//	    engine.Bounder = ec.NewClampBounder(0, 1)
//	    engine.Terminators = []ec.Terminator{ec.GenerationTerminator{Max: 50}}
//
//	    generator := ec.GeneratorFunc(func(r *rand.Rand, args ec.Args) (interface{}, error) {
//	        c := make([]float64, 8)
//	        for i := range c {
//	            c[i] = r.Float64()
//	        }
//	        return c, nil
//	    })
//	    evaluator := ec.Serial(func(candidate interface{}, args ec.Args) (ec.Fitness, error) {
//	        var sum float64
//	        for _, v := range candidate.([]float64) {
//	            sum += v
//	        }
//	        return ec.Maximizing(sum), nil
//	    })
//
//	    result, _ := engine.Evolve(context.Background(), generator, evaluator, ec.RunConfig{PopSize: 50})
//	    _ = ec.Best(result.Population)
//	}
package evo
