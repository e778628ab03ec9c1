package network

import (
	"fmt"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/matrix"
	"github.com/JayPi4c/JavaNeuralNetwork/internal/parallel"
)

// QueryAll queries every input concurrently and returns the outputs in
// input order. The first failing input, by index, determines the error.
func (n *Network) QueryAll(inputs [][]float64) ([]*matrix.Matrix, error) {
	outputs := make([]*matrix.Matrix, len(inputs))
	err := parallel.ForErr(len(inputs), func(i int) error {
		out, err := n.QueryVector(inputs[i])
		if err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		outputs[i] = out
		return nil
	}, parallel.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return outputs, nil
}

// MeanSquaredError returns the mean over all samples and output units of
// the squared difference between target and network output.
func (n *Network) MeanSquaredError(inputs, targets [][]float64) (float64, error) {
	if len(inputs) != len(targets) {
		return 0, fmt.Errorf("%w: %d inputs but %d targets", ErrDimensionMismatch, len(inputs), len(targets))
	}
	if len(inputs) == 0 {
		return 0, nil
	}

	outputs, err := n.QueryAll(inputs)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i, out := range outputs {
		if len(targets[i]) != n.OutputWidth() {
			return 0, fmt.Errorf("%w: target %d has width %d, want %d",
				ErrDimensionMismatch, i, len(targets[i]), n.OutputWidth())
		}
		for j, y := range out.Data() {
			d := targets[i][j] - y
			sum += d * d
		}
	}
	return sum / float64(len(inputs)*n.OutputWidth()), nil
}
