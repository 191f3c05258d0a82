// Copyright ©2025 fdevinc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package findiff

import (
	"errors"
)

// HessianSpec represents a second difference approximation of the Hessian of a scalar function.
// Every entry uses the four point cross stencil (𝒇₁ - 𝒇₂ - 𝒇₃ + 𝒇₄)/h², so the
// result is only symmetric up to the stencil error.
//
// # Reference:
//
//   - https://en.wikipedia.org/wiki/Finite_difference#Multivariate_finite_differences
//   - https://github.com/PatWie/CppNumericalSolvers
type HessianSpec struct {
	// N is the dimension of the evaluation point.
	N int
	// Function of which to estimate the second partial derivatives.
	Object Scalar
	// Step size of the coordinate perturbation.
	// The DefaultHessianStep is used when Step is zero.
	Step float64
	hessCtx
}

type hessCtx struct {
	xx []float64
}

// Check the parameters and initialize hessCtx.
func (hs *HessianSpec) Check(x0, hess []float64) (err error) {

	switch {
	case hs.N <= 0:
		err = errors.New("negative dimensions")
	case hs.Object == nil:
		err = errors.New("object function is required")
	case hs.N != len(x0):
		return errors.New("invalid x0 dimensions")
	case hs.N*hs.N != len(hess):
		return errors.New("invalid hess dimensions")
	}

	if err != nil {
		return
	}

	if len(hs.xx) != hs.N {
		hs.xx = make([]float64, hs.N)
	}
	return
}

// Hessian estimates the n×n matrix of second partial derivatives ∂²𝒇/∂𝐱ᵢ∂𝐱ⱼ of the object function at x0.
// The result is stored in row-major order: hess[i*n+j] holds ∂²𝒇/∂𝐱ᵢ∂𝐱ⱼ.
// Each entry costs four function evaluations and x0 is left untouched.
func (hs *HessianSpec) Hessian(x0, hess []float64) error {

	if err := hs.Check(x0, hess); err != nil {
		return err
	}

	eps := hs.Step
	if eps == 0 {
		eps = DefaultHessianStep
	}

	fun, xx := hs.Object, hs.xx
	n, dd := hs.N, 1.0/(eps*eps)
	copy(xx, x0)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			f4 := fun(xx)
			xx[i] += eps
			xx[j] += eps
			f1 := fun(xx)
			xx[j] -= eps
			f2 := fun(xx)
			xx[j] += eps
			xx[i] -= eps
			f3 := fun(xx)
			hess[i*n+j] = (f1 - f2 - f3 + f4) * dd
			xx[i] = x0[i]
			xx[j] = x0[j]
		}
	}
	return nil
}
