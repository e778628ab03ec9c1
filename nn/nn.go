// Copyright 2026 JavaNeuralNetwork Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"io"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/network"
)

// Network is a fully connected feed-forward neural network.
type Network = network.Network

// Config describes a network to construct with NewFromConfig.
type Config = network.Config

// Initial parameters are drawn uniformly from [InitMin, InitMax].
const (
	InitMin = network.InitMin
	InitMax = network.InitMax
)

// Errors reported by construction, query, training and persistence.
var (
	ErrInvalidTopology   = network.ErrInvalidTopology
	ErrDimensionMismatch = network.ErrDimensionMismatch
	ErrDeserialization   = network.ErrDeserialization
	ErrNilActivation     = network.ErrNilActivation
)

// New creates a network with random parameters and the sigmoid activation.
//
// Example:
//
//	net, err := nn.New(0.1, 784, 10, 128, 64) // two hidden layers
func New(learningRate float64, inputWidth, outputWidth int, hiddenWidths ...int) (*Network, error) {
	return network.New(learningRate, inputWidth, outputWidth, hiddenWidths...)
}

// NewFromConfig creates a network from cfg.
//
// Example:
//
//	net, err := nn.NewFromConfig(nn.Config{
//	    LearningRate: 0.05,
//	    InputWidth:   2,
//	    OutputWidth:  1,
//	    HiddenWidths: []int{8},
//	    Activation:   activation.Tanh,
//	    Rand:         rand.New(rand.NewPCG(1, 2)),
//	})
func NewFromConfig(cfg Config) (*Network, error) {
	return network.NewFromConfig(cfg)
}

// Deserialize reads a network written by Network.Serialize.
func Deserialize(r io.Reader) (*Network, error) {
	return network.Deserialize(r)
}

// Load reads a network written by Network.Save.
func Load(path string) (*Network, error) {
	return network.Load(path)
}
