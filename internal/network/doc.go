// Package network implements a fully connected feed-forward neural network
// trained by per-sample backpropagation.
//
// A network has an input layer, one or more hidden layers and an output
// layer. Parameters start uniform in [InitMin, InitMax]; all layers share a
// single activation function.
//
// Basic usage:
//
//	nn, err := network.New(0.1, 2, 1, 4)
//	if err != nil {
//	    return err
//	}
//	for range 10000 {
//	    _ = nn.TrainVector([]float64{0, 1}, []float64{1})
//	}
//	out, err := nn.QueryVector([]float64{0, 1})
//
// Networks round-trip through Serialize/Deserialize and Save/Load using the
// snapshot format of the serialization package.
package network
