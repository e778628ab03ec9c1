// Copyright 2026 JavaNeuralNetwork Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a fully connected feed-forward neural network.
//
// # Overview
//
// A network has an input layer, at least one hidden layer and an output
// layer. Every layer uses the same activation function, sigmoid by
// default. Training is per-sample backpropagation with a fixed learning
// rate.
//
// # Basic Usage
//
//	net, err := nn.New(0.1, 2, 1, 4) // 2 inputs, 4 hidden, 1 output
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for range 10000 {
//	    _ = net.TrainVector([]float64{1, 0}, []float64{1})
//	}
//
//	out, _ := net.QueryVector([]float64{1, 0}) // 1 x 1 column vector
//
// # Vectors
//
// Callers pass inputs and targets as 1 x width row vectors. Outputs come
// back as width x 1 column vectors.
//
// # Persistence
//
// Serialize and Save write a checksummed binary snapshot holding the
// topology, learning rate, activation name and every weight and bias.
// Deserialize and Load restore it; every failure wraps
// ErrDeserialization.
//
// # Concurrency
//
// Query and QueryAll may run concurrently. Train and SetActivationFunction
// need exclusive access.
package nn
