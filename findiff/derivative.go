// Copyright ©2025 fdevinc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package findiff

import (
	"errors"
)

// DerivativeSpec represents a central difference approximation of the derivative of a univariate function.
type DerivativeSpec struct {
	// Function of which to estimate the derivative.
	Object Univariate
	// Accuracy order of the central difference stencil.
	Order Order
	// Step size of the perturbation.
	// The DefaultStep is used when Step is zero.
	Step float64
}

// Check the parameters.
func (ds *DerivativeSpec) Check() error {
	switch {
	case ds.Order < Order2 || ds.Order > Order8:
		return errors.New("unknown accuracy order")
	case ds.Object == nil:
		return errors.New("object function is required")
	}
	return nil
}

// Derivative estimates d𝒇/d𝐱 of the object function at x.
func (ds *DerivativeSpec) Derivative(x float64) (float64, error) {

	if err := ds.Check(); err != nil {
		return 0, err
	}

	eps := ds.Step
	if eps == 0 {
		eps = DefaultStep
	}

	co, of := coeff[ds.Order], offset[ds.Order]

	fun, d := ds.Object, 0.0
	for s, c := range co {
		d += c * fun(x+of[s]*eps)
	}
	return d / (denom[ds.Order] * eps), nil
}
