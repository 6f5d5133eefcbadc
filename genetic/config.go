package genetic

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/Nrdias/AI-t2-tic-tac-toe/genetic/nn"
)

// Config stores the configuration parameters for the genetic algorithm.
type Config struct {
	GA      GAConfig
	Network NetworkConfig
}

// GAConfig holds the evolution hyper-parameters.
type GAConfig struct {
	PopSize        int     `ini:"pop_size"`
	Elitism        int     `ini:"elitism"`         // individuals copied untouched into the next generation
	TournamentSize int     `ini:"tournament_size"` // participants per parent-selection tournament
	CrossoverRate  float64 `ini:"crossover_rate"`  // probability a parent pair is blended rather than copied
	MutationRate   float64 `ini:"mutation_rate"`   // per-gene mutation probability
	MutationSigma  float64 `ini:"mutation_sigma"`  // std-dev of the gaussian perturbation
	WeightMin      float64 `ini:"weight_min"`
	WeightMax      float64 `ini:"weight_max"`
	TargetFitness  float64 `ini:"target_fitness"` // evolution stops once best fitness drops to this (lower is better)
	MaxGenerations int     `ini:"max_generations"`
}

// NetworkConfig declares the network topology the population encodes.
// The 9-9-9 topology is a layout contract with the 181-column population
// rows, so these are validated against the nn package constants rather than
// used to size anything.
type NetworkConfig struct {
	NumInputs  int `ini:"num_inputs"`
	NumHidden  int `ini:"num_hidden"`
	NumOutputs int `ini:"num_outputs"`
}

// DefaultConfig returns a ready-to-use configuration with the hyper-parameter
// defaults used for the quick-demo evolutions.
func DefaultConfig() *Config {
	return &Config{
		GA: GAConfig{
			PopSize:        120,
			Elitism:        4,
			TournamentSize: 2,
			CrossoverRate:  0.9,
			MutationRate:   0.08,
			MutationSigma:  0.15,
			WeightMin:      -1.0,
			WeightMax:      1.0,
			TargetFitness:  0.40,
			MaxGenerations: 600,
		},
		Network: NetworkConfig{
			NumInputs:  nn.NumInputs,
			NumHidden:  nn.NumHidden,
			NumOutputs: nn.NumOutputs,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file and validates
// them. Keys left out of the file keep their defaults.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := DefaultConfig()
	if err := cfg.Section("GA").MapTo(&config.GA); err != nil {
		return nil, fmt.Errorf("failed to map [GA] section: %w", err)
	}
	if err := cfg.Section("Network").MapTo(&config.Network); err != nil {
		return nil, fmt.Errorf("failed to map [Network] section: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for internally inconsistent values.
func (c *Config) Validate() error {
	if c.GA.PopSize <= 0 {
		return fmt.Errorf("config error: pop_size must be positive")
	}
	if c.GA.Elitism < 0 || c.GA.Elitism >= c.GA.PopSize {
		return fmt.Errorf("config error: elitism must be in [0, pop_size)")
	}
	if c.GA.TournamentSize < 2 || c.GA.TournamentSize > c.GA.PopSize {
		return fmt.Errorf("config error: tournament_size must be in [2, pop_size]")
	}
	if c.GA.CrossoverRate < 0 || c.GA.CrossoverRate > 1 {
		return fmt.Errorf("config error: crossover_rate must be between 0 and 1")
	}
	if c.GA.MutationRate < 0 || c.GA.MutationRate > 1 {
		return fmt.Errorf("config error: mutation_rate must be between 0 and 1")
	}
	if c.GA.MutationSigma < 0 {
		return fmt.Errorf("config error: mutation_sigma cannot be negative")
	}
	if c.GA.WeightMax < c.GA.WeightMin {
		return fmt.Errorf("config error: weight_max cannot be less than weight_min")
	}
	if c.GA.MaxGenerations <= 0 {
		return fmt.Errorf("config error: max_generations must be positive")
	}
	if c.Network.NumInputs != nn.NumInputs ||
		c.Network.NumHidden != nn.NumHidden ||
		c.Network.NumOutputs != nn.NumOutputs {
		return fmt.Errorf("config error: network topology must be %d-%d-%d to match the %d-column row layout",
			nn.NumInputs, nn.NumHidden, nn.NumOutputs, GeneCols)
	}
	return nil
}
