// Copyright ©2025 fdevinc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package findiff

import (
	"errors"
)

// GradientSpec represents a central difference approximation of the gradient of a scalar function.
//
// # Reference:
//
//   - https://en.wikipedia.org/wiki/Finite_difference_coefficient
//   - https://github.com/PatWie/CppNumericalSolvers
//
// # License
//
//   - https://github.com/PatWie/CppNumericalSolvers/blob/master/LICENSE
type GradientSpec struct {
	// N is the dimension of the evaluation point.
	N int
	// Function of which to estimate the partial derivatives.
	// The engine only evaluates it at stencil points, never retains the argument.
	Object Scalar
	// Accuracy order of the central difference stencil.
	Order Order
	// Step size of the coordinate perturbation.
	// The DefaultStep is used when Step is zero.
	Step float64
	gradCtx
}

type gradCtx struct {
	xx []float64
}

// Check the parameters and initialize gradCtx.
func (gs *GradientSpec) Check(x0, grad []float64) (err error) {

	switch {
	case gs.N <= 0:
		err = errors.New("negative dimensions")
	case gs.Order < Order2 || gs.Order > Order8:
		err = errors.New("unknown accuracy order")
	case gs.Object == nil:
		err = errors.New("object function is required")
	case gs.N != len(x0):
		return errors.New("invalid x0 dimensions")
	case gs.N != len(grad):
		return errors.New("invalid grad dimensions")
	}

	if err != nil {
		return
	}

	if len(gs.xx) != gs.N {
		gs.xx = make([]float64, gs.N)
	}
	return
}

// Gradient estimates the partial derivatives ∂𝒇/∂𝐱ᵢ of the object function at x0.
// The result is stored in the n-vector grad.
// Each coordinate costs one stencil of function evaluations and x0 is left untouched.
func (gs *GradientSpec) Gradient(x0, grad []float64) error {

	if err := gs.Check(x0, grad); err != nil {
		return err
	}

	eps := gs.Step
	if eps == 0 {
		eps = DefaultStep
	}

	co, of := coeff[gs.Order], offset[gs.Order]
	dd := 1.0 / (denom[gs.Order] * eps)

	fun, xx := gs.Object, gs.xx
	copy(xx, x0)
	for i := range xx {
		t := x0[i]
		d := 0.0
		for s, c := range co {
			xx[i] = t + of[s]*eps
			d += c * fun(xx)
			xx[i] = t
		}
		grad[i] = d * dd
	}
	return nil
}
