package network

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/activation"
	"github.com/JayPi4c/JavaNeuralNetwork/internal/matrix"
)

// Initial weights and biases are drawn uniformly from [InitMin, InitMax].
const (
	InitMin = -0.5
	InitMax = 0.5
)

// Network is a fully connected feed-forward network.
//
// Layer i+1 is computed from layer i as
//
//	a[i+1] = Activate(W[i]·a[i] + b[i])
//
// with W[i] of shape (layers[i+1], layers[i]) and b[i] of shape (layers[i+1], 1).
// Vectors are columns internally; callers pass row vectors.
//
// Query only reads parameters and may run concurrently with other Query
// calls. Train, SetActivationFunction and the genetic operators mutate
// parameters and need exclusive access.
type Network struct {
	layers       []int
	learningRate float64
	weights      []*matrix.Matrix
	biases       []*matrix.Matrix
	act          activation.Function
}

// Config describes a network to construct.
type Config struct {
	LearningRate float64             // Gradient-descent step size, > 0
	InputWidth   int                 // Width of the input layer, >= 1
	OutputWidth  int                 // Width of the output layer, >= 1
	HiddenWidths []int               // At least one hidden layer, each >= 1
	Activation   activation.Function // Defaults to activation.Sigmoid
	Rand         *rand.Rand          // Source for initial parameters; nil uses the global source
}

// New creates a network with randomly initialised parameters and the
// sigmoid activation.
//
// Example:
//
//	nn, err := network.New(0.1, 2, 1, 4)     // 2 inputs, one hidden layer of 4, 1 output
//	deep, err := network.New(0.05, 784, 10, 128, 64)
func New(learningRate float64, inputWidth, outputWidth int, hiddenWidths ...int) (*Network, error) {
	return NewFromConfig(Config{
		LearningRate: learningRate,
		InputWidth:   inputWidth,
		OutputWidth:  outputWidth,
		HiddenWidths: hiddenWidths,
	})
}

// NewFromConfig creates a network from cfg.
func NewFromConfig(cfg Config) (*Network, error) {
	layers, err := buildLayers(cfg)
	if err != nil {
		return nil, err
	}

	act := cfg.Activation
	if act == nil {
		act = activation.Sigmoid
	}

	n := &Network{
		layers:       layers,
		learningRate: cfg.LearningRate,
		weights:      make([]*matrix.Matrix, len(layers)-1),
		biases:       make([]*matrix.Matrix, len(layers)-1),
		act:          act,
	}
	for i := range n.weights {
		n.weights[i] = randomMatrix(cfg.Rand, layers[i+1], layers[i])
		n.biases[i] = randomMatrix(cfg.Rand, layers[i+1], 1)
	}
	return n, nil
}

func buildLayers(cfg Config) ([]int, error) {
	if math.IsNaN(cfg.LearningRate) || math.IsInf(cfg.LearningRate, 0) || cfg.LearningRate <= 0 {
		return nil, fmt.Errorf("%w: learning rate %v must be positive and finite", ErrInvalidTopology, cfg.LearningRate)
	}
	if cfg.InputWidth < 1 {
		return nil, fmt.Errorf("%w: input width %d", ErrInvalidTopology, cfg.InputWidth)
	}
	if cfg.OutputWidth < 1 {
		return nil, fmt.Errorf("%w: output width %d", ErrInvalidTopology, cfg.OutputWidth)
	}
	if len(cfg.HiddenWidths) == 0 {
		return nil, fmt.Errorf("%w: at least one hidden layer is required", ErrInvalidTopology)
	}

	layers := make([]int, 0, len(cfg.HiddenWidths)+2)
	layers = append(layers, cfg.InputWidth)
	for i, w := range cfg.HiddenWidths {
		if w < 1 {
			return nil, fmt.Errorf("%w: hidden layer %d width %d", ErrInvalidTopology, i, w)
		}
		layers = append(layers, w)
	}
	return append(layers, cfg.OutputWidth), nil
}

func randomMatrix(rng *rand.Rand, rows, cols int) *matrix.Matrix {
	m := matrix.New(rows, cols)
	if rng != nil {
		return m.RandomizeWith(rng, InitMin, InitMax)
	}
	return m.Randomize(InitMin, InitMax)
}

// Layers returns a copy of the layer widths, input first.
func (n *Network) Layers() []int {
	return append([]int(nil), n.layers...)
}

// InputWidth returns the width of the input layer.
func (n *Network) InputWidth() int {
	return n.layers[0]
}

// OutputWidth returns the width of the output layer.
func (n *Network) OutputWidth() int {
	return n.layers[len(n.layers)-1]
}

// LearningRate returns the fixed gradient-descent step size.
func (n *Network) LearningRate() float64 {
	return n.learningRate
}

// ActivationFunction returns the bound activation function.
func (n *Network) ActivationFunction() activation.Function {
	return n.act
}

// SetActivationFunction binds f for all later Query and Train calls.
//
// Stored parameters are left as they are, so switching mid-training changes
// the gradient from the next Train call on.
func (n *Network) SetActivationFunction(f activation.Function) error {
	if f == nil {
		return ErrNilActivation
	}
	n.act = f
	return nil
}

// Weights returns copies of the weight matrices.
func (n *Network) Weights() []*matrix.Matrix {
	return copyAll(n.weights)
}

// Biases returns copies of the bias vectors.
func (n *Network) Biases() []*matrix.Matrix {
	return copyAll(n.biases)
}

// Parameters returns the live weight matrices followed by the live bias
// vectors. Writes through the returned matrices change the network.
func (n *Network) Parameters() []*matrix.Matrix {
	params := make([]*matrix.Matrix, 0, len(n.weights)+len(n.biases))
	params = append(params, n.weights...)
	return append(params, n.biases...)
}

// Copy returns a deep copy sharing no storage with n.
func (n *Network) Copy() *Network {
	return &Network{
		layers:       n.Layers(),
		learningRate: n.learningRate,
		weights:      copyAll(n.weights),
		biases:       copyAll(n.biases),
		act:          n.act,
	}
}

func copyAll(ms []*matrix.Matrix) []*matrix.Matrix {
	out := make([]*matrix.Matrix, len(ms))
	for i, m := range ms {
		out[i] = m.Copy()
	}
	return out
}
