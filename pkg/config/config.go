// Package config loads and validates run configuration for the
// optimization engine from YAML files.
package config

import (
	"time"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
)

// Config is the full configuration of an optimization run.
type Config struct {
	// Run holds the engine-level settings shared by every algorithm.
	Run RunConfig `yaml:"run,omitempty" validate:"omitempty"`

	// GA configures the genetic algorithm preset.
	GA GAConfig `yaml:"ga,omitempty" validate:"omitempty"`

	// PSO configures the particle swarm preset.
	PSO PSOConfig `yaml:"pso,omitempty" validate:"omitempty"`

	// ACS configures the ant colony preset.
	ACS ACSConfig `yaml:"acs,omitempty" validate:"omitempty"`

	// Logging configures log verbosity and destinations.
	Logging LoggingConfig `yaml:"logging,omitempty" validate:"omitempty"`

	// Store is the path of the SQLite run-statistics store. Empty
	// disables persistence.
	Store string `yaml:"store,omitempty"`
}

// RunConfig holds engine-level run settings.
type RunConfig struct {
	// Seed of the run's random stream. Zero seeds from the clock.
	Seed int64 `yaml:"seed,omitempty"`

	// PopSize is the initial population size.
	PopSize int `yaml:"pop_size,omitempty" validate:"omitempty,min=1"`

	// MaxGenerations stops the run after this many cycles.
	MaxGenerations int `yaml:"max_generations,omitempty" validate:"omitempty,min=0"`

	// MaxEvaluations stops the run after this many fitness evaluations.
	MaxEvaluations int `yaml:"max_evaluations,omitempty" validate:"omitempty,min=0"`

	// MaxDuration stops the run on wall-clock time.
	MaxDuration time.Duration `yaml:"max_duration,omitempty"`

	// MaxWorkers bounds the parallel evaluator's goroutines.
	MaxWorkers int `yaml:"max_workers,omitempty" validate:"omitempty,min=1"`
}

// GAConfig holds genetic algorithm operator rates.
type GAConfig struct {
	NumElites       int     `yaml:"num_elites,omitempty" validate:"omitempty,min=0"`
	TournamentSize  int     `yaml:"tournament_size,omitempty" validate:"omitempty,min=2"`
	CrossoverRate   float64 `yaml:"crossover_rate,omitempty" validate:"omitempty,gte=0,lte=1"`
	CrossoverPoints int     `yaml:"crossover_points,omitempty" validate:"omitempty,min=1"`
	MutationRate    float64 `yaml:"mutation_rate,omitempty" validate:"omitempty,gte=0,lte=1"`
	MutationStdev   float64 `yaml:"mutation_stdev,omitempty" validate:"omitempty,gt=0"`
}

// PSOConfig holds particle swarm parameters.
type PSOConfig struct {
	CognitiveRate float64 `yaml:"cognitive_rate,omitempty" validate:"omitempty,gt=0"`
	SocialRate    float64 `yaml:"social_rate,omitempty" validate:"omitempty,gt=0"`
	// Topology is "star" or "ring".
	Topology         string `yaml:"topology,omitempty" validate:"omitempty,oneof=star ring"`
	NeighborhoodSize int    `yaml:"neighborhood_size,omitempty" validate:"omitempty,min=2"`
	Constricted      bool   `yaml:"constricted,omitempty"`
}

// ACSConfig holds ant colony parameters.
type ACSConfig struct {
	Alpha           float64 `yaml:"alpha,omitempty" validate:"omitempty,gt=0"`
	Beta            float64 `yaml:"beta,omitempty" validate:"omitempty,gte=0"`
	EvaporationRate float64 `yaml:"evaporation_rate,omitempty" validate:"omitempty,gt=0,lt=1"`
	LearningRate    float64 `yaml:"learning_rate,omitempty" validate:"omitempty,gt=0"`
	InitialTrail    float64 `yaml:"initial_trail,omitempty" validate:"omitempty,gt=0"`
	TrailFloor      float64 `yaml:"trail_floor,omitempty" validate:"omitempty,gt=0"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`

	// File is an optional log file path in addition to the console.
	File string `yaml:"file,omitempty"`
}

// Args flattens the algorithm sections into the free-form option
// mapping forwarded to pipeline components, so custom operators can
// read the same configuration the presets were built from.
func (c *Config) Args() ec.Args {
	return ec.Args{
		"pop_size":          c.Run.PopSize,
		"max_generations":   c.Run.MaxGenerations,
		"max_evaluations":   c.Run.MaxEvaluations,
		"max_workers":       c.Run.MaxWorkers,
		"num_elites":        c.GA.NumElites,
		"tournament_size":   c.GA.TournamentSize,
		"crossover_rate":    c.GA.CrossoverRate,
		"crossover_points":  c.GA.CrossoverPoints,
		"mutation_rate":     c.GA.MutationRate,
		"mutation_stdev":    c.GA.MutationStdev,
		"cognitive_rate":    c.PSO.CognitiveRate,
		"social_rate":       c.PSO.SocialRate,
		"topology":          c.PSO.Topology,
		"neighborhood_size": c.PSO.NeighborhoodSize,
		"constricted":       c.PSO.Constricted,
		"alpha":             c.ACS.Alpha,
		"beta":              c.ACS.Beta,
		"evaporation_rate":  c.ACS.EvaporationRate,
		"learning_rate":     c.ACS.LearningRate,
	}
}

// Terminators builds the termination criteria the run section implies.
func (c *Config) Terminators() []ec.Terminator {
	var terms []ec.Terminator
	if c.Run.MaxGenerations > 0 {
		terms = append(terms, ec.GenerationTerminator{Max: c.Run.MaxGenerations})
	}
	if c.Run.MaxEvaluations > 0 {
		terms = append(terms, ec.EvaluationTerminator{Max: c.Run.MaxEvaluations})
	}
	if c.Run.MaxDuration > 0 {
		terms = append(terms, &ec.TimeTerminator{Max: c.Run.MaxDuration})
	}
	return terms
}
