// Copyright 2026 JavaNeuralNetwork Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/JayPi4c/JavaNeuralNetwork/nn"
)

func ExampleNew() {
	net, err := nn.New(0.1, 2, 1, 4)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(net.Layers())
	// Output: [2 4 1]
}

func ExampleNew_invalidTopology() {
	_, err := nn.New(0.1, 2, 1)
	fmt.Println(err)
	// Output: network: invalid topology: at least one hidden layer is required
}

func ExampleNetwork_Query() {
	net, err := nn.New(0.1, 3, 2, 4)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range net.Parameters() {
		p.Fill(0)
	}
	out, err := net.QueryVector([]float64{0.1, 0.2, 0.3})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.Rows(), out.Cols(), out.Data())
	// Output: 2 1 [0.5 0.5]
}

func ExampleDeserialize() {
	net, err := nn.New(0.1, 2, 1, 3)
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	if err := net.Serialize(&buf); err != nil {
		log.Fatal(err)
	}
	restored, err := nn.Deserialize(&buf)
	if err != nil {
		log.Fatal(err)
	}

	a, _ := net.QueryVector([]float64{0.3, 0.6})
	b, _ := restored.QueryVector([]float64{0.3, 0.6})
	fmt.Println(a.Equal(b))
	// Output: true
}
