package genetic

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Nrdias/AI-t2-tic-tac-toe/genetic/nn"
)

// Row layout of the population matrix. Each row is one individual:
// columns 0..179 hold the flat network weights, column 180 holds the fitness.
const (
	WeightCols = nn.ParameterCount
	GeneCols   = WeightCols + 1
	FitnessCol = WeightCols
)

// Unevaluated marks the fitness of an individual that has not played yet.
// Fitness is a cost: lower is better, so +Inf sorts last.
var Unevaluated = math.Inf(1)

// FitnessFunc evaluates one individual and returns its fitness. The weights
// slice is the individual's 180 weight columns; implementations must treat it
// as read-only for the duration of the call. Evaluate may invoke it from
// multiple goroutines over distinct rows.
type FitnessFunc func(index int, weights []float64) (float64, error)

// Population is the in-memory population matrix of the genetic algorithm.
type Population struct {
	Config     *Config
	Rows       [][]float64 // PopSize rows of GeneCols columns each
	Generation int

	rng *rand.Rand
}

// PopulationStats summarizes the weight distribution and evaluation progress
// of a population.
type PopulationStats struct {
	WeightMin   float64
	WeightMax   float64
	WeightMean  float64
	WeightStdev float64
	Evaluated   int
	BestFitness float64 // +Inf when nothing has been evaluated yet
}

// NewPopulation creates an initial population with weights drawn uniformly
// from [weight_min, weight_max] and every fitness column set to Unevaluated.
func NewPopulation(config *Config, rng *rand.Rand) *Population {
	rows := make([][]float64, config.GA.PopSize)
	span := config.GA.WeightMax - config.GA.WeightMin
	for i := range rows {
		row := make([]float64, GeneCols)
		for j := 0; j < WeightCols; j++ {
			row[j] = config.GA.WeightMin + rng.Float64()*span
		}
		row[FitnessCol] = Unevaluated
		rows[i] = row
	}
	return &Population{Config: config, Rows: rows, rng: rng}
}

// Size returns the number of individuals.
func (p *Population) Size() int {
	return len(p.Rows)
}

// Weights returns a copy of an individual's 180 weight columns. The copy
// keeps callers from aliasing live rows that a later generation will
// overwrite in place.
func (p *Population) Weights(index int) []float64 {
	weights := make([]float64, WeightCols)
	copy(weights, p.Rows[index][:WeightCols])
	return weights
}

// Fitness returns an individual's fitness column.
func (p *Population) Fitness(index int) float64 {
	return p.Rows[index][FitnessCol]
}

// SetFitness writes an individual's fitness column.
func (p *Population) SetFitness(index int, fitness float64) {
	p.Rows[index][FitnessCol] = fitness
}

// Network decodes an individual's weight columns into a runnable network.
func (p *Population) Network(index int) (*nn.Network, error) {
	net, err := nn.Decode(p.Rows[index][:WeightCols])
	if err != nil {
		return nil, fmt.Errorf("failed to decode individual %d: %w", index, err)
	}
	return net, nil
}

// Best returns the index of the individual with the lowest fitness.
func (p *Population) Best() int {
	best := 0
	for i := 1; i < len(p.Rows); i++ {
		if p.Rows[i][FitnessCol] < p.Rows[best][FitnessCol] {
			best = i
		}
	}
	return best
}

// Evaluate scores every unevaluated individual with the given fitness
// function. Rows are evaluated concurrently: the forward pass is a pure
// function of its row, and each goroutine writes only its own fitness
// column, so distinct rows never contend.
func (p *Population) Evaluate(ctx context.Context, fn FitnessFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range p.Rows {
		if p.Rows[i][FitnessCol] != Unevaluated {
			continue // elites keep their score
		}
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fitness, err := fn(i, p.Rows[i][:WeightCols])
			if err != nil {
				return fmt.Errorf("fitness evaluation of individual %d failed: %w", i, err)
			}
			p.Rows[i][FitnessCol] = fitness
			return nil
		})
	}
	return g.Wait()
}

// Stats computes summary statistics over all weight columns and the fitness
// column.
func (p *Population) Stats() PopulationStats {
	weights := make([]float64, 0, len(p.Rows)*WeightCols)
	evaluated := 0
	bestFitness := math.Inf(1)
	for _, row := range p.Rows {
		weights = append(weights, row[:WeightCols]...)
		if f := row[FitnessCol]; f != Unevaluated {
			evaluated++
			if f < bestFitness {
				bestFitness = f
			}
		}
	}
	return PopulationStats{
		WeightMin:   MinFloat(weights),
		WeightMax:   MaxFloat(weights),
		WeightMean:  Mean(weights),
		WeightStdev: Stdev(weights),
		Evaluated:   evaluated,
		BestFitness: bestFitness,
	}
}
