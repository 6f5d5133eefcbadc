package genetic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[GA]
pop_size        = 50
elitism         = 3
tournament_size = 5
crossover_rate  = 0.8
mutation_rate   = 0.1
mutation_sigma  = 0.2
weight_min      = -1.0
weight_max      = 1.0
target_fitness  = 0.25
max_generations = 40

[Network]
num_inputs  = 9
num_hidden  = 9
num_outputs = 9
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, config.GA.PopSize)
	assert.Equal(t, 3, config.GA.Elitism)
	assert.Equal(t, 5, config.GA.TournamentSize)
	assert.Equal(t, 0.8, config.GA.CrossoverRate)
	assert.Equal(t, 0.1, config.GA.MutationRate)
	assert.Equal(t, 0.2, config.GA.MutationSigma)
	assert.Equal(t, 0.25, config.GA.TargetFitness)
	assert.Equal(t, 40, config.GA.MaxGenerations)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `
[GA]
pop_size = 30
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	defaults := DefaultConfig()
	assert.Equal(t, 30, config.GA.PopSize)
	assert.Equal(t, defaults.GA.MutationRate, config.GA.MutationRate)
	assert.Equal(t, defaults.GA.CrossoverRate, config.GA.CrossoverRate)
	assert.Equal(t, defaults.Network, config.Network)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero pop size", func(c *Config) { c.GA.PopSize = 0 }},
		{"elitism >= pop size", func(c *Config) { c.GA.Elitism = c.GA.PopSize }},
		{"tournament too small", func(c *Config) { c.GA.TournamentSize = 1 }},
		{"crossover rate above 1", func(c *Config) { c.GA.CrossoverRate = 1.5 }},
		{"negative mutation rate", func(c *Config) { c.GA.MutationRate = -0.1 }},
		{"negative sigma", func(c *Config) { c.GA.MutationSigma = -1 }},
		{"inverted weight range", func(c *Config) { c.GA.WeightMin, c.GA.WeightMax = 1, -1 }},
		{"zero generations", func(c *Config) { c.GA.MaxGenerations = 0 }},
		{"wrong topology", func(c *Config) { c.Network.NumHidden = 16 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}
