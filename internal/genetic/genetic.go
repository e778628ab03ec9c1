// Package genetic provides evolutionary operators over network parameters.
//
// The operators work only through the network's exported parameter view, so
// the network type itself carries no evolutionary state.
package genetic

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/matrix"
	"github.com/JayPi4c/JavaNeuralNetwork/internal/network"
)

var (
	// ErrInvalidRate reports a mutation rate outside [0, 1].
	ErrInvalidRate = errors.New("genetic: mutation rate must be in [0, 1]")
	// ErrTopologyMismatch reports parents whose layer widths differ.
	ErrTopologyMismatch = errors.New("genetic: parents have different topologies")
)

// Mutate visits every weight and bias cell of net and, with independent
// probability rate, replaces it with a fresh value drawn uniformly from
// [network.InitMin, network.InitMax].
//
// A nil rng uses the global source.
func Mutate(net *network.Network, rate float64, rng *rand.Rand) error {
	if !(rate >= 0 && rate <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidRate, rate)
	}
	for _, p := range net.Parameters() {
		data := p.Data()
		for i := range data {
			if unit(rng) < rate {
				data[i] = matrix.Uniform(rng, network.InitMin, network.InitMax)
			}
		}
	}
	return nil
}

// Crossover returns a child with a's topology, learning rate and activation
// whose cells are each taken from a or b with equal probability.
// Neither parent is modified.
func Crossover(a, b *network.Network, rng *rand.Rand) (*network.Network, error) {
	if !slices.Equal(a.Layers(), b.Layers()) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrTopologyMismatch, a.Layers(), b.Layers())
	}

	child := a.Copy()
	other := b.Parameters()
	for k, p := range child.Parameters() {
		data, src := p.Data(), other[k].Data()
		for i := range data {
			if unit(rng) < 0.5 {
				data[i] = src[i]
			}
		}
	}
	return child, nil
}

func unit(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}
