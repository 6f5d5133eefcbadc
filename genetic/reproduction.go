package genetic

import (
	"context"
	"fmt"
	"sort"
)

// tournament picks one parent row index: TournamentSize distinct individuals
// compete and the lowest fitness wins.
func (p *Population) tournament() int {
	perm := p.rng.Perm(len(p.Rows))[:p.Config.GA.TournamentSize]
	best := perm[0]
	for _, i := range perm[1:] {
		if p.Rows[i][FitnessCol] < p.Rows[best][FitnessCol] {
			best = i
		}
	}
	return best
}

// crossover produces two children from two parent weight rows by
// whole-arithmetic blending: c1 = alpha*p1 + (1-alpha)*p2 and c2 mirrored,
// with alpha drawn anew per pair. With probability 1-crossover_rate the
// parents are copied through unchanged instead.
func (p *Population) crossover(parent1, parent2 []float64) ([]float64, []float64) {
	child1 := make([]float64, WeightCols)
	child2 := make([]float64, WeightCols)
	if p.rng.Float64() > p.Config.GA.CrossoverRate {
		copy(child1, parent1[:WeightCols])
		copy(child2, parent2[:WeightCols])
		return child1, child2
	}
	alpha := p.rng.Float64()
	for i := 0; i < WeightCols; i++ {
		child1[i] = alpha*parent1[i] + (1-alpha)*parent2[i]
		child2[i] = (1-alpha)*parent1[i] + alpha*parent2[i]
	}
	return child1, child2
}

// mutate perturbs each gene with probability mutation_rate by gaussian noise
// N(0, mutation_sigma), clamping the result back into the legal weight range.
func (p *Population) mutate(weights []float64) {
	ga := &p.Config.GA
	for i := range weights {
		if p.rng.Float64() < ga.MutationRate {
			weights[i] = clamp(weights[i]+p.rng.NormFloat64()*ga.MutationSigma, ga.WeightMin, ga.WeightMax)
		}
	}
}

// NextGeneration replaces the population in place with its offspring: the
// Elitism best rows survive untouched (fitness included), the remaining slots
// are filled by tournament selection, blend crossover and gaussian mutation.
// Every new row's fitness column is reset to Unevaluated.
func (p *Population) NextGeneration() {
	// Sort ascending by fitness so elites are the leading rows.
	sort.SliceStable(p.Rows, func(i, j int) bool {
		return p.Rows[i][FitnessCol] < p.Rows[j][FitnessCol]
	})

	ga := &p.Config.GA
	next := make([][]float64, 0, len(p.Rows))
	for i := 0; i < ga.Elitism; i++ {
		elite := make([]float64, GeneCols)
		copy(elite, p.Rows[i])
		next = append(next, elite)
	}

	for len(next) < ga.PopSize {
		parent1 := p.Rows[p.tournament()]
		parent2 := p.Rows[p.tournament()]
		child1, child2 := p.crossover(parent1, parent2)
		p.mutate(child1)
		p.mutate(child2)

		next = append(next, append(child1, Unevaluated))
		if len(next) < ga.PopSize {
			next = append(next, append(child2, Unevaluated))
		}
	}

	p.Rows = next
	p.Generation++
}

// Run drives the evolutionary loop: evaluate the population, report the
// generation, stop once the best fitness reaches target_fitness or the
// generation budget is spent, otherwise reproduce and repeat. Returns the
// index of the best individual in the final population.
func (p *Population) Run(ctx context.Context, fn FitnessFunc) (int, error) {
	ga := &p.Config.GA
	for gen := 0; gen < ga.MaxGenerations; gen++ {
		if err := p.Evaluate(ctx, fn); err != nil {
			return p.Best(), fmt.Errorf("generation %d failed: %w", p.Generation, err)
		}

		best := p.Best()
		fmt.Printf("Gen %3d  best fitness = %.3f\n", p.Generation, p.Fitness(best))

		if p.Fitness(best) <= ga.TargetFitness {
			return best, nil
		}
		p.NextGeneration()
	}

	// Budget spent; the last reproduction left unevaluated rows behind.
	if err := p.Evaluate(ctx, fn); err != nil {
		return p.Best(), fmt.Errorf("final evaluation failed: %w", err)
	}
	return p.Best(), nil
}
