// Copyright ©2025 fdevinc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradcheck

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/fdevinc/finite-diff/findiff"
)

// DefaultTol is the comparison tolerance used when the checker does not provide one.
const DefaultTol = 1e-4

// Checker verifies analytic derivatives against their central difference approximations.
// The zero value approximates with the Order2 stencil at the default step
// and compares with the DefaultTol tolerance.
type Checker struct {
	// Accuracy order of the approximation stencil.
	// The Hessian check ignores it, its stencil is fixed.
	Order findiff.Order
	// Step size of the stencil perturbation.
	// The findiff defaults apply when Step is zero.
	Step float64
	// Tol is the comparison tolerance.
	// The DefaultTol is used when Tol is zero.
	Tol float64
	// Log receives one debug event per disagreeing entry.
	Log *zerolog.Logger
}

func (ck *Checker) comparator() Comparator {
	tol := ck.Tol
	if tol == 0 {
		tol = DefaultTol
	}
	return Comparator{Tol: tol, Log: ck.Log}
}

// Gradient approximates the gradient of f at x and reports whether the
// analytic gradient grad agrees with it within the tolerance.
func (ck *Checker) Gradient(label string, x []float64, f findiff.Scalar, grad func(x, g []float64)) (bool, error) {

	if grad == nil {
		return false, errors.New("gradient function is required")
	}

	n := len(x)
	spec := findiff.GradientSpec{N: n, Object: f, Order: ck.Order, Step: ck.Step}

	approx := make([]float64, n)
	if err := spec.Gradient(x, approx); err != nil {
		return false, err
	}

	exact := make([]float64, n)
	grad(x, exact)
	return ck.comparator().Gradient(label, exact, approx)
}

// Jacobian approximates the m×n Jacobian of f at x and reports whether the
// analytic Jacobian jac agrees with it within the tolerance.
// Both Jacobians are flat row-major matrices holding ∂𝒇ᵣ/∂𝐱ᵢ at i+r*n.
func (ck *Checker) Jacobian(label string, m int, x []float64, f findiff.Vector, jac func(x, j []float64)) (bool, error) {

	switch {
	case jac == nil:
		return false, errors.New("jacobian function is required")
	case m <= 0:
		return false, errors.New("negative dimensions")
	}

	n := len(x)
	spec := findiff.JacobianSpec{N: n, M: m, Object: f, Order: ck.Order, Step: ck.Step}

	approx := make([]float64, n*m)
	if err := spec.Jacobian(x, approx); err != nil {
		return false, err
	}

	exact := make([]float64, n*m)
	jac(x, exact)
	return ck.comparator().Jacobian(label, m, n, exact, approx)
}

// Hessian approximates the n×n Hessian of f at x and reports whether the
// analytic Hessian hess agrees with it within the tolerance.
// Both Hessians are flat row-major matrices holding ∂²𝒇/∂𝐱ᵢ∂𝐱ⱼ at i*n+j.
func (ck *Checker) Hessian(label string, x []float64, f findiff.Scalar, hess func(x, h []float64)) (bool, error) {

	if hess == nil {
		return false, errors.New("hessian function is required")
	}

	n := len(x)
	spec := findiff.HessianSpec{N: n, Object: f, Step: ck.Step}

	approx := make([]float64, n*n)
	if err := spec.Hessian(x, approx); err != nil {
		return false, err
	}

	exact := make([]float64, n*n)
	hess(x, exact)
	return ck.comparator().Hessian(label, n, exact, approx)
}
