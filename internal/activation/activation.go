// Package activation provides scalar activation functions paired with their
// derivatives.
//
// The derivative is always expressed in terms of the activated output y, not
// the pre-activation input x:
//
//	Sigmoid:  Activate(x) = 1 / (1 + e^-x)   Deactivate(y) = y(1 - y)
//	Tanh:     Activate(x) = tanh(x)          Deactivate(y) = 1 - y²
//	ReLU:     Activate(x) = max(0, x)        Deactivate(y) = 1 if y > 0 else 0
//	Identity: Activate(x) = x                Deactivate(y) = 1
package activation

import "math"

// Function is the capability pair bound to a network.
type Function interface {
	// Name identifies the function in persisted networks.
	Name() string
	// Activate maps a pre-activation value x to the output y.
	Activate(x float64) float64
	// Deactivate returns the derivative of Activate evaluated at the
	// point whose output is y.
	Deactivate(y float64) float64
}

// Func builds a Function from two closures.
//
// Example:
//
//	softsign := activation.Func{
//	    Label: "softsign",
//	    Act:   func(x float64) float64 { return x / (1 + math.Abs(x)) },
//	    Deact: func(y float64) float64 { return (1 - math.Abs(y)) * (1 - math.Abs(y)) },
//	}
type Func struct {
	Label string
	Act   func(x float64) float64
	Deact func(y float64) float64
}

// Name returns f.Label.
func (f Func) Name() string { return f.Label }

// Activate calls f.Act.
func (f Func) Activate(x float64) float64 { return f.Act(x) }

// Deactivate calls f.Deact.
func (f Func) Deactivate(y float64) float64 { return f.Deact(y) }

// Built-in names.
const (
	NameSigmoid  = "sigmoid"
	NameTanh     = "tanh"
	NameReLU     = "relu"
	NameIdentity = "identity"
)

// Sigmoid is the logistic function. It is the default for new networks.
var Sigmoid Function = Func{
	Label: NameSigmoid,
	Act:   sigmoid,
	Deact: func(y float64) float64 { return y * (1 - y) },
}

// Tanh is the hyperbolic tangent.
var Tanh Function = Func{
	Label: NameTanh,
	Act:   math.Tanh,
	Deact: func(y float64) float64 { return 1 - y*y },
}

// ReLU is the rectified linear unit.
var ReLU Function = Func{
	Label: NameReLU,
	Act:   func(x float64) float64 { return math.Max(0, x) },
	Deact: func(y float64) float64 {
		if y > 0 {
			return 1
		}
		return 0
	},
}

// Identity passes values through unchanged.
var Identity Function = Func{
	Label: NameIdentity,
	Act:   func(x float64) float64 { return x },
	Deact: func(float64) float64 { return 1 },
}

// sigmoid avoids exp overflow for large negative x.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}
