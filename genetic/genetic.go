// Copyright 2026 JavaNeuralNetwork Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package genetic provides mutation and crossover for evolving networks.
//
// Example:
//
//	child, err := genetic.Crossover(best, second, rng)
//	if err != nil {
//	    return err
//	}
//	err = genetic.Mutate(child, 0.05, rng)
package genetic

import (
	"math/rand/v2"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/genetic"
	"github.com/JayPi4c/JavaNeuralNetwork/nn"
)

// Errors reported by the operators.
var (
	ErrInvalidRate      = genetic.ErrInvalidRate
	ErrTopologyMismatch = genetic.ErrTopologyMismatch
)

// Mutate replaces each weight and bias cell of net, with independent
// probability rate, by a fresh value from [nn.InitMin, nn.InitMax].
// A nil rng uses the global source.
func Mutate(net *nn.Network, rate float64, rng *rand.Rand) error {
	return genetic.Mutate(net, rate, rng)
}

// Crossover returns a child of a and b taking each cell from either parent
// with equal probability. The parents must share a topology.
func Crossover(a, b *nn.Network, rng *rand.Rand) (*nn.Network, error) {
	return genetic.Crossover(a, b, rng)
}
