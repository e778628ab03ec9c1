package genetic

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/network"
)

func newNet(t *testing.T, seed uint64, hidden ...int) *network.Network {
	t.Helper()
	n, err := network.NewFromConfig(network.Config{
		LearningRate: 0.1,
		InputWidth:   3,
		OutputWidth:  2,
		HiddenWidths: hidden,
		Rand:         rand.New(rand.NewPCG(seed, seed+1)),
	})
	require.NoError(t, err)
	return n
}

func TestMutate_ZeroRateKeepsParameters(t *testing.T) {
	n := newNet(t, 1, 4)
	before := n.Copy()

	require.NoError(t, Mutate(n, 0, rand.New(rand.NewPCG(5, 6))))

	pb, pn := before.Parameters(), n.Parameters()
	for i := range pb {
		assert.True(t, pb[i].Equal(pn[i]), "parameter %d", i)
	}
}

func TestMutate_FullRateReplacesEveryCell(t *testing.T) {
	n := newNet(t, 1, 4)
	for _, p := range n.Parameters() {
		p.Fill(7)
	}

	require.NoError(t, Mutate(n, 1, rand.New(rand.NewPCG(5, 6))))

	for _, p := range n.Parameters() {
		for _, v := range p.Data() {
			assert.GreaterOrEqual(t, v, network.InitMin)
			assert.LessOrEqual(t, v, network.InitMax)
		}
	}
}

func TestMutate_PartialRate(t *testing.T) {
	n := newNet(t, 1, 50)
	for _, p := range n.Parameters() {
		p.Fill(7)
	}

	require.NoError(t, Mutate(n, 0.3, rand.New(rand.NewPCG(9, 9))))

	var total, changed int
	for _, p := range n.Parameters() {
		for _, v := range p.Data() {
			total++
			if v != 7 {
				changed++
			}
		}
	}
	frac := float64(changed) / float64(total)
	assert.InDelta(t, 0.3, frac, 0.1)
}

func TestMutate_InvalidRate(t *testing.T) {
	n := newNet(t, 1, 2)
	for _, rate := range []float64{-0.1, 1.5, math.NaN()} {
		assert.ErrorIs(t, Mutate(n, rate, nil), ErrInvalidRate, "rate %v", rate)
	}
}

func TestCrossover_CellsFromParents(t *testing.T) {
	a := newNet(t, 1, 6)
	b := newNet(t, 2, 6)
	for _, p := range a.Parameters() {
		p.Fill(1)
	}
	for _, p := range b.Parameters() {
		p.Fill(2)
	}

	child, err := Crossover(a, b, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	assert.Equal(t, a.Layers(), child.Layers())

	var fromA, fromB int
	for _, p := range child.Parameters() {
		for _, v := range p.Data() {
			switch v {
			case 1:
				fromA++
			case 2:
				fromB++
			default:
				t.Fatalf("cell %v came from neither parent", v)
			}
		}
	}
	assert.Positive(t, fromA)
	assert.Positive(t, fromB)

	// Parents are untouched.
	for _, p := range a.Parameters() {
		for _, v := range p.Data() {
			require.Equal(t, 1.0, v)
		}
	}
}

func TestCrossover_Independent(t *testing.T) {
	a := newNet(t, 1, 3)
	b := newNet(t, 2, 3)

	child, err := Crossover(a, b, nil)
	require.NoError(t, err)

	child.Parameters()[0].Fill(9)
	assert.NotEqual(t, 9.0, a.Weights()[0].At(0, 0))
	assert.NotEqual(t, 9.0, b.Weights()[0].At(0, 0))
}

func TestCrossover_TopologyMismatch(t *testing.T) {
	a := newNet(t, 1, 3)
	b := newNet(t, 2, 4)

	child, err := Crossover(a, b, nil)
	require.ErrorIs(t, err, ErrTopologyMismatch)
	assert.Nil(t, child)
}
