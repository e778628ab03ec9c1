package main

import (
	"errors"
	"io"
	"math/rand/v2"
	"sort"

	"github.com/JayPi4c/JavaNeuralNetwork/genetic"
	"github.com/JayPi4c/JavaNeuralNetwork/nn"
)

type scored struct {
	net *nn.Network
	mse float64
}

func runEvolve(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("evolve", stderr)
	population := fs.Int("population", 50, "networks per generation")
	generations := fs.Int("generations", 200, "generations to run")
	rate := fs.Float64("rate", 0.05, "per-cell mutation probability")
	elite := fs.Int("elite", 5, "best networks carried over unchanged")
	seed := fs.Uint64("seed", 1, "random seed")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *population < 2 || *elite < 1 || *elite > *population {
		return errors.New("need population >= 2 and 1 <= elite <= population")
	}

	logger := newLogger(stderr, *verbose)
	rng := rand.New(rand.NewPCG(*seed, ^*seed))

	pop := make([]scored, *population)
	for i := range pop {
		net, err := nn.NewFromConfig(nn.Config{
			LearningRate: 0.1,
			InputWidth:   2,
			OutputWidth:  1,
			HiddenWidths: []int{4},
			Rand:         rng,
		})
		if err != nil {
			return err
		}
		pop[i] = scored{net: net}
	}

	for gen := range *generations {
		if err := rank(pop); err != nil {
			return err
		}
		logger.Debug("generation", "n", gen, "best_mse", pop[0].mse)

		next := make([]scored, 0, len(pop))
		for _, s := range pop[:*elite] {
			next = append(next, scored{net: s.net})
		}
		for len(next) < len(pop) {
			a := pop[rng.IntN(*elite)].net
			b := pop[rng.IntN(len(pop)/2+1)].net
			child, err := genetic.Crossover(a, b, rng)
			if err != nil {
				return err
			}
			if err := genetic.Mutate(child, *rate, rng); err != nil {
				return err
			}
			next = append(next, scored{net: child})
		}
		pop = next
	}

	if err := rank(pop); err != nil {
		return err
	}
	logger.Info("evolution finished", "generations", *generations, "best_mse", pop[0].mse)
	return printTable(stdout, pop[0].net)
}

// rank scores every network on XOR and sorts best first.
func rank(pop []scored) error {
	for i := range pop {
		mse, err := pop[i].net.MeanSquaredError(xorInputs, xorTargets)
		if err != nil {
			return err
		}
		pop[i].mse = mse
	}
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].mse < pop[j].mse })
	return nil
}
