package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
	"github.com/XiaoConstantine/evo-go/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 100, cfg.Run.PopSize)
	assert.Equal(t, 100, cfg.Run.MaxGenerations)
	assert.Equal(t, 2, cfg.GA.TournamentSize)
	assert.Equal(t, 0.1, cfg.GA.MutationRate)
	assert.Equal(t, 2.0, cfg.PSO.CognitiveRate)
	assert.Equal(t, "star", cfg.PSO.Topology)
	assert.Equal(t, 0.1, cfg.ACS.EvaporationRate)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
run:
  pop_size: 40
  max_evaluations: 5000
ga:
  mutation_rate: 0.25
pso:
  topology: ring
  neighborhood_size: 5
`))
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Run.PopSize)
	assert.Equal(t, 5000, cfg.Run.MaxEvaluations)
	// An explicit stopping criterion suppresses the generation default.
	assert.Equal(t, 0, cfg.Run.MaxGenerations)
	assert.Equal(t, 0.25, cfg.GA.MutationRate)
	assert.Equal(t, "ring", cfg.PSO.Topology)
	assert.Equal(t, 5, cfg.PSO.NeighborhoodSize)
	// Untouched sections still default.
	assert.Equal(t, 2.1, cfg.PSO.SocialRate)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative population", "run:\n  pop_size: -5\n"},
		{"mutation rate above one", "ga:\n  mutation_rate: 1.5\n"},
		{"unknown topology", "pso:\n  topology: mesh\n"},
		{"evaporation rate of one", "acs:\n  evaporation_rate: 1.0\n"},
		{"bad log level", "logging:\n  level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			var custom *errors.Error
			require.ErrorAs(t, err, &custom)
			assert.Equal(t, errors.ValidationFailed, custom.Code())
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("run: [not a mapping"))
	require.Error(t, err)
	var custom *errors.Error
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, errors.InvalidConfig, custom.Code())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("run:\n  pop_size: 7\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Run.PopSize)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestArgsFlattening(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GA.MutationRate = 0.3
	args := cfg.Args()

	assert.Equal(t, 0.3, args.Float("mutation_rate", 0))
	assert.Equal(t, 100, args.Int("pop_size", 0))
	assert.Equal(t, "star", args.String("topology", ""))
}

func TestLoggerFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.File = filepath.Join(t.TempDir(), "run.log")

	logger, err := cfg.Logger()
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestTerminatorsFromRunSection(t *testing.T) {
	cfg := &Config{}
	cfg.Run.MaxGenerations = 10
	cfg.Run.MaxDuration = time.Second

	terms := cfg.Terminators()
	require.Len(t, terms, 2)
	assert.IsType(t, ec.GenerationTerminator{}, terms[0])
	assert.IsType(t, &ec.TimeTerminator{}, terms[1])
}
