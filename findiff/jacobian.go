// Copyright ©2025 fdevinc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package findiff

import (
	"errors"
)

// JacobianSpec represents a central difference approximation of the Jacobian of a vector function.
//
// # Reference:
//
//   - https://en.wikipedia.org/wiki/Finite_difference_coefficient
//   - https://github.com/PatWie/CppNumericalSolvers
//
// # License
//
//   - https://github.com/PatWie/CppNumericalSolvers/blob/master/LICENSE
type JacobianSpec struct {
	N, M int
	// Function of which to estimate the partial derivatives.
	// The argument x passed to this function is an n-vector.
	// The result is stored in an m-vector y.
	Object Vector
	// Accuracy order of the central difference stencil.
	Order Order
	// Step size of the coordinate perturbation.
	// The DefaultStep is used when Step is zero.
	Step float64
	jacCtx
}

type jacCtx struct {
	xx []float64
	fx []float64
}

// Check the parameters and initialize jacCtx.
func (js *JacobianSpec) Check(x0, jac []float64) (err error) {

	switch {
	case js.N <= 0 || js.M <= 0:
		err = errors.New("negative dimensions")
	case js.Order < Order2 || js.Order > Order8:
		err = errors.New("unknown accuracy order")
	case js.Object == nil:
		err = errors.New("object function is required")
	case js.N != len(x0):
		return errors.New("invalid x0 dimensions")
	case js.N*js.M != len(jac):
		return errors.New("invalid jac dimensions")
	}

	if err != nil {
		return
	}

	if len(js.xx) != js.N {
		js.xx = make([]float64, js.N)
	}
	if len(js.fx) != js.M {
		js.fx = make([]float64, js.M)
	}
	return
}

// Jacobian estimates the m×n matrix of partial derivatives ∂𝒇ᵣ/∂𝐱ᵢ of the object function at x0.
// The result is stored in row-major order: jac[i+r*n] holds ∂𝒇ᵣ/∂𝐱ᵢ.
// Each coordinate costs one stencil of function evaluations and x0 is left untouched.
func (js *JacobianSpec) Jacobian(x0, jac []float64) error {

	if err := js.Check(x0, jac); err != nil {
		return err
	}

	eps := js.Step
	if eps == 0 {
		eps = DefaultStep
	}

	co, of := coeff[js.Order], offset[js.Order]
	dd := 1.0 / (denom[js.Order] * eps)

	fun, xx, fx := js.Object, js.xx, js.fx
	n, m := js.N, js.M
	copy(xx, x0)
	for i := range xx {
		t := x0[i]
		col := jac[i:]
		dzero(m, col, n)
		for s, c := range co {
			xx[i] = t + of[s]*eps
			fun(xx, fx)
			daxpy(m, c, fx, 1, col, n)
			xx[i] = t
		}
		dscal(m, dd, col, n)
	}
	return nil
}
