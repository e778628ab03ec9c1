package network

import (
	"fmt"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/matrix"
)

// Query runs the forward pass for a 1 x InputWidth row vector and returns
// the output as an OutputWidth x 1 column vector.
//
// Query allocates all intermediates and never writes to the network.
func (n *Network) Query(input *matrix.Matrix) (*matrix.Matrix, error) {
	if err := checkRowVector("query input", input, n.InputWidth()); err != nil {
		return nil, err
	}
	results, err := n.forward(matrix.Transpose(input))
	if err != nil {
		return nil, err
	}
	return results[len(results)-1], nil
}

// QueryVector is Query for a raw input slice.
func (n *Network) QueryVector(input []float64) (*matrix.Matrix, error) {
	return n.Query(matrix.FromVector(input))
}

// Train runs one step of gradient descent on a single sample.
//
// input must be 1 x InputWidth and target 1 x OutputWidth. On error the
// network is left unchanged.
func (n *Network) Train(input, target *matrix.Matrix) error {
	if err := checkRowVector("train input", input, n.InputWidth()); err != nil {
		return err
	}
	if err := checkRowVector("train target", target, n.OutputWidth()); err != nil {
		return err
	}

	results, err := n.forward(matrix.Transpose(input))
	if err != nil {
		return err
	}

	last := len(n.weights)
	errs, err := matrix.Sub(matrix.Transpose(target), results[last])
	if err != nil {
		return fmt.Errorf("output error: %w", err)
	}

	// Updates are staged and committed together so a failure part way
	// through leaves the network untouched.
	weights := make([]*matrix.Matrix, last)
	biases := make([]*matrix.Matrix, last)

	for i := last - 1; i >= 0; i-- {
		gradient := matrix.Map(results[i+1], n.act.Deactivate)
		if err := gradient.Mult(errs); err != nil {
			return fmt.Errorf("layer %d gradient: %w", i, err)
		}
		gradient.Scale(n.learningRate)

		delta, err := matrix.Dot(gradient, matrix.Transpose(results[i]))
		if err != nil {
			return fmt.Errorf("layer %d weight delta: %w", i, err)
		}

		weights[i] = n.weights[i].Copy()
		if err := weights[i].Add(delta); err != nil {
			return fmt.Errorf("layer %d weight update: %w", i, err)
		}
		biases[i] = n.biases[i].Copy()
		if err := biases[i].Add(gradient); err != nil {
			return fmt.Errorf("layer %d bias update: %w", i, err)
		}

		if i > 0 {
			// Propagated through the weights as just updated.
			if errs, err = matrix.Dot(matrix.Transpose(weights[i]), errs); err != nil {
				return fmt.Errorf("layer %d error propagation: %w", i, err)
			}
		}
	}

	n.weights = weights
	n.biases = biases
	return nil
}

// TrainVector is Train for raw input and target slices.
func (n *Network) TrainVector(input, target []float64) error {
	return n.Train(matrix.FromVector(input), matrix.FromVector(target))
}

// forward threads the column vector x through every layer and returns all
// activations: results[0] is x, results[len(weights)] is the output.
func (n *Network) forward(x *matrix.Matrix) ([]*matrix.Matrix, error) {
	results := make([]*matrix.Matrix, 0, len(n.weights)+1)
	results = append(results, x)

	a := x
	for i, w := range n.weights {
		pre, err := matrix.Dot(w, a)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if err := pre.Add(n.biases[i]); err != nil {
			return nil, fmt.Errorf("layer %d bias: %w", i, err)
		}
		a = pre.Map(n.act.Activate)
		results = append(results, a)
	}
	return results, nil
}

func checkRowVector(what string, m *matrix.Matrix, width int) error {
	if m == nil {
		return fmt.Errorf("%w: %s is nil", ErrDimensionMismatch, what)
	}
	if m.Rows() != 1 || m.Cols() != width {
		return fmt.Errorf("%w: %s has shape [%d,%d], want [1,%d]",
			ErrDimensionMismatch, what, m.Rows(), m.Cols(), width)
	}
	return nil
}
