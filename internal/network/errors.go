package network

import (
	"errors"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/matrix"
)

// Common errors.
var (
	// ErrInvalidTopology reports a construction parameter that cannot form a network.
	ErrInvalidTopology = errors.New("network: invalid topology")
	// ErrNilActivation reports an attempt to bind a nil activation function.
	ErrNilActivation = errors.New("network: activation function is nil")
	// ErrDeserialization wraps every failure to rebuild a network from a snapshot.
	ErrDeserialization = errors.New("network: deserialization failed")
	// ErrDimensionMismatch is matrix.ErrDimensionMismatch, re-exported for callers of Query and Train.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)
