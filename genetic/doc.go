// Package genetic evolves fixed-topology tic-tac-toe networks with a genetic
// algorithm over a population matrix.
//
// Each individual is one row of 181 columns: columns 0..179 are the flat
// weights of a 9-9-9 two-layer perceptron (see the nn subpackage for the
// layout and the forward pass), column 180 is the fitness, where lower is
// better. Selection, crossover and mutation operate directly on rows; the nn
// codec turns a row into a playable network and back.
//
// Basic usage:
//
//	config, err := genetic.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	pop := genetic.NewPopulation(config, rand.New(rand.NewSource(1)))
//	best, err := pop.Run(ctx, func(i int, weights []float64) (float64, error) {
//		net, err := nn.Decode(weights)
//		if err != nil {
//			return 0, err
//		}
//		return playMatches(net), nil // external game driver, lower is better
//	})
//	if err != nil {
//		log.Fatalf("Evolution failed: %v", err)
//	}
//	fmt.Printf("Best individual: %d (fitness %.3f)\n", best, pop.Fitness(best))
package genetic
