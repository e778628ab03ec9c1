// Copyright 2026 JavaNeuralNetwork Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation exposes the activation functions a network can bind.
//
// Deactivate takes the activated output y, not the pre-activation input:
// for the sigmoid it returns y(1-y).
//
// Custom functions are registered by name so serialized networks can be
// restored:
//
//	softsign := activation.Func{
//	    Label: "softsign",
//	    Act:   func(x float64) float64 { return x / (1 + math.Abs(x)) },
//	    Deact: func(y float64) float64 { return (1 - math.Abs(y)) * (1 - math.Abs(y)) },
//	}
//	if err := activation.Register(softsign); err != nil { ... }
package activation

import "github.com/JayPi4c/JavaNeuralNetwork/internal/activation"

// Function is an activation together with its derivative on the activated value.
type Function = activation.Function

// Func adapts a pair of closures to Function.
type Func = activation.Func

// Names of the built-in functions.
const (
	NameSigmoid  = activation.NameSigmoid
	NameTanh     = activation.NameTanh
	NameReLU     = activation.NameReLU
	NameIdentity = activation.NameIdentity
)

// Built-in functions, all registered by default.
var (
	Sigmoid  = activation.Sigmoid
	Tanh     = activation.Tanh
	ReLU     = activation.ReLU
	Identity = activation.Identity
)

// Registry errors.
var (
	ErrUnknown   = activation.ErrUnknown
	ErrEmptyName = activation.ErrEmptyName
)

// Register makes f available to Lookup under f.Name(), replacing any
// function previously registered under that name.
func Register(f Function) error {
	return activation.Register(f)
}

// Lookup returns the function registered under name.
func Lookup(name string) (Function, error) {
	return activation.Lookup(name)
}

// Names returns the registered names in sorted order.
func Names() []string {
	return activation.Names()
}
