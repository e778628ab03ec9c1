package network

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/activation"
	"github.com/JayPi4c/JavaNeuralNetwork/internal/matrix"
)

func seeded(t *testing.T, lr float64, in, out int, hidden ...int) *Network {
	t.Helper()
	n, err := NewFromConfig(Config{
		LearningRate: lr,
		InputWidth:   in,
		OutputWidth:  out,
		HiddenWidths: hidden,
		Rand:         rand.New(rand.NewPCG(1, 2)),
	})
	require.NoError(t, err)
	return n
}

func TestNew_Topology(t *testing.T) {
	n, err := New(0.1, 2, 1, 4, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 4, 3, 1}, n.Layers())
	assert.Equal(t, 2, n.InputWidth())
	assert.Equal(t, 1, n.OutputWidth())
	assert.Equal(t, 0.1, n.LearningRate())
	assert.Equal(t, activation.NameSigmoid, n.ActivationFunction().Name())

	w := n.Weights()
	b := n.Biases()
	require.Len(t, w, 3)
	require.Len(t, b, 3)
	for i := range w {
		r, c := w[i].Shape()
		assert.Equal(t, n.Layers()[i+1], r)
		assert.Equal(t, n.Layers()[i], c)
		r, c = b[i].Shape()
		assert.Equal(t, n.Layers()[i+1], r)
		assert.Equal(t, 1, c)
	}
}

func TestNew_InitialRange(t *testing.T) {
	n, err := New(0.1, 20, 10, 30)
	require.NoError(t, err)
	for _, p := range n.Parameters() {
		for _, v := range p.Data() {
			assert.GreaterOrEqual(t, v, InitMin)
			assert.LessOrEqual(t, v, InitMax)
		}
	}
}

func TestNew_InvalidTopology(t *testing.T) {
	tests := []struct {
		name   string
		lr     float64
		in     int
		out    int
		hidden []int
	}{
		{"no hidden layers", 0.1, 2, 1, nil},
		{"zero input", 0.1, 0, 1, []int{2}},
		{"zero output", 0.1, 2, 0, []int{2}},
		{"zero hidden", 0.1, 2, 1, []int{3, 0}},
		{"negative hidden", 0.1, 2, 1, []int{-1}},
		{"zero learning rate", 0, 2, 1, []int{2}},
		{"negative learning rate", -0.1, 2, 1, []int{2}},
		{"NaN learning rate", math.NaN(), 2, 1, []int{2}},
		{"infinite learning rate", math.Inf(1), 2, 1, []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := New(tt.lr, tt.in, tt.out, tt.hidden...)
			require.ErrorIs(t, err, ErrInvalidTopology)
			assert.Nil(t, n)
		})
	}
}

func TestNew_Deterministic(t *testing.T) {
	a := seeded(t, 0.1, 3, 2, 5)
	b := seeded(t, 0.1, 3, 2, 5)
	pa, pb := a.Parameters(), b.Parameters()
	for i := range pa {
		assert.True(t, pa[i].Equal(pb[i]), "parameter %d", i)
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	n := seeded(t, 0.1, 2, 1, 3)

	layers := n.Layers()
	layers[0] = 99
	assert.Equal(t, 2, n.InputWidth())

	w := n.Weights()
	w[0].Fill(42)
	assert.NotEqual(t, 42.0, n.Weights()[0].At(0, 0))
}

func TestQuery_ZeroParameters(t *testing.T) {
	n := seeded(t, 0.1, 3, 2, 4)
	for _, p := range n.Parameters() {
		p.Fill(0)
	}

	out, err := n.QueryVector([]float64{1, -2, 3})
	require.NoError(t, err)
	r, c := out.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, c)
	for _, v := range out.Data() {
		assert.Equal(t, 0.5, v)
	}
}

func TestQuery_DimensionMismatch(t *testing.T) {
	n := seeded(t, 0.1, 3, 1, 2)

	tests := []struct {
		name  string
		input *matrix.Matrix
	}{
		{"nil", nil},
		{"too narrow", matrix.FromVector([]float64{1, 2})},
		{"too wide", matrix.FromVector([]float64{1, 2, 3, 4})},
		{"column vector", matrix.New(3, 1)},
		{"two rows", matrix.New(2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := n.Query(tt.input)
			require.ErrorIs(t, err, ErrDimensionMismatch)
			assert.Nil(t, out)
		})
	}
}

func TestQuery_DoesNotMutate(t *testing.T) {
	n := seeded(t, 0.1, 2, 2, 3)
	before := n.Copy()

	_, err := n.QueryVector([]float64{0.3, 0.7})
	require.NoError(t, err)
	assertSameParameters(t, before, n)
}

func TestQuery_Concurrent(t *testing.T) {
	n := seeded(t, 0.1, 4, 3, 8, 8)
	input := []float64{0.1, 0.2, 0.3, 0.4}
	want, err := n.QueryVector(input)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*matrix.Matrix, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = n.QueryVector(input)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.NotNil(t, got, "goroutine %d", i)
		assert.True(t, want.Equal(got), "goroutine %d", i)
	}
}

func TestTrain_ReducesError(t *testing.T) {
	n := seeded(t, 0.1, 1, 1, 3)
	input := []float64{0.9}
	target := []float64{0.81}

	sqErr := func() float64 {
		out, err := n.QueryVector(input)
		require.NoError(t, err)
		d := target[0] - out.At(0, 0)
		return d * d
	}

	require.NoError(t, n.TrainVector(input, target))
	afterOne := sqErr()

	for range 999 {
		require.NoError(t, n.TrainVector(input, target))
	}
	assert.Less(t, sqErr(), afterOne)
}

func TestTrain_SingleHiddenUnitByHand(t *testing.T) {
	const lr = 0.5
	n := seeded(t, lr, 1, 1, 1)
	// Parameters: weights[0], weights[1], biases[0], biases[1].
	params := n.Parameters()
	w0, w1, b0, b1 := 0.3, -0.2, 0.1, 0.05
	params[0].Set(0, 0, w0)
	params[1].Set(0, 0, w1)
	params[2].Set(0, 0, b0)
	params[3].Set(0, 0, b1)

	x, target := 0.8, 0.25
	sig := activation.Sigmoid.Activate

	h := sig(w0*x + b0)
	o := sig(w1*h + b1)
	e := target - o
	g1 := o * (1 - o) * e * lr
	w1n := w1 + g1*h
	b1n := b1 + g1
	eh := w1n * e
	g0 := h * (1 - h) * eh * lr
	w0n := w0 + g0*x
	b0n := b0 + g0

	require.NoError(t, n.TrainVector([]float64{x}, []float64{target}))

	w := n.Weights()
	b := n.Biases()
	assert.InDelta(t, w0n, w[0].At(0, 0), 1e-12)
	assert.InDelta(t, w1n, w[1].At(0, 0), 1e-12)
	assert.InDelta(t, b0n, b[0].At(0, 0), 1e-12)
	assert.InDelta(t, b1n, b[1].At(0, 0), 1e-12)
}

func TestTrain_DimensionMismatchLeavesNetworkUnchanged(t *testing.T) {
	n := seeded(t, 0.1, 2, 2, 3)
	before := n.Copy()

	err := n.TrainVector([]float64{1, 2, 3}, []float64{0, 1})
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assertSameParameters(t, before, n)

	err = n.TrainVector([]float64{1, 2}, []float64{0})
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assertSameParameters(t, before, n)

	err = n.Train(matrix.FromVector([]float64{1, 2}), nil)
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assertSameParameters(t, before, n)
}

func TestTrain_LearnsXOR(t *testing.T) {
	n, err := NewFromConfig(Config{
		LearningRate: 0.5,
		InputWidth:   2,
		OutputWidth:  1,
		HiddenWidths: []int{4},
		Rand:         rand.New(rand.NewPCG(7, 11)),
	})
	require.NoError(t, err)

	inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	targets := [][]float64{{0}, {1}, {1}, {0}}

	start, err := n.MeanSquaredError(inputs, targets)
	require.NoError(t, err)

	for epoch := range 5000 {
		i := epoch % len(inputs)
		require.NoError(t, n.TrainVector(inputs[i], targets[i]))
	}

	end, err := n.MeanSquaredError(inputs, targets)
	require.NoError(t, err)
	assert.Less(t, end, start)
}

func TestSetActivationFunction(t *testing.T) {
	n := seeded(t, 0.1, 2, 1, 2)

	require.ErrorIs(t, n.SetActivationFunction(nil), ErrNilActivation)
	assert.Equal(t, activation.NameSigmoid, n.ActivationFunction().Name())

	require.NoError(t, n.SetActivationFunction(activation.Identity))
	for _, p := range n.Parameters() {
		p.Fill(0)
	}
	out, err := n.QueryVector([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.At(0, 0))
}

func TestCopy_Independent(t *testing.T) {
	n := seeded(t, 0.1, 3, 2, 4, 4)
	c := n.Copy()

	assertSameParameters(t, n, c)
	assert.Equal(t, n.Layers(), c.Layers())
	assert.Equal(t, n.LearningRate(), c.LearningRate())

	input := []float64{0.1, 0.5, 0.9}
	a, err := n.QueryVector(input)
	require.NoError(t, err)
	b, err := c.QueryVector(input)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	require.NoError(t, c.TrainVector(input, []float64{1, 0}))
	after, err := n.QueryVector(input)
	require.NoError(t, err)
	assert.True(t, a.Equal(after), "training the copy changed the original")

	c.Parameters()[0].Fill(3)
	assert.NotEqual(t, 3.0, n.Weights()[0].At(0, 0))
}

func TestQueryAll(t *testing.T) {
	n := seeded(t, 0.1, 2, 1, 3)
	inputs := make([][]float64, 100)
	for i := range inputs {
		inputs[i] = []float64{float64(i) / 100, 1 - float64(i)/100}
	}

	outs, err := n.QueryAll(inputs)
	require.NoError(t, err)
	require.Len(t, outs, len(inputs))
	for i, in := range inputs {
		want, err := n.QueryVector(in)
		require.NoError(t, err)
		assert.True(t, want.Equal(outs[i]), "input %d", i)
	}

	inputs[40] = []float64{1}
	_, err = n.QueryAll(inputs)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMeanSquaredError(t *testing.T) {
	n := seeded(t, 0.1, 1, 2, 2)
	for _, p := range n.Parameters() {
		p.Fill(0)
	}

	// Output is always [0.5, 0.5].
	mse, err := n.MeanSquaredError([][]float64{{1}, {2}}, [][]float64{{1, 0}, {0.5, 0.5}})
	require.NoError(t, err)
	assert.InDelta(t, 0.125, mse, 1e-15)

	mse, err = n.MeanSquaredError(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, mse)

	_, err = n.MeanSquaredError([][]float64{{1}}, nil)
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = n.MeanSquaredError([][]float64{{1}}, [][]float64{{1}})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func assertSameParameters(t *testing.T, want, got *Network) {
	t.Helper()
	pw, pg := want.Parameters(), got.Parameters()
	require.Len(t, pg, len(pw))
	for i := range pw {
		assert.True(t, pw[i].Equal(pg[i]), "parameter %d differs", i)
	}
}
