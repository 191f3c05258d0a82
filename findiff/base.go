// Copyright ©2025 fdevinc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package findiff

const (
	// DefaultStep is the perturbation magnitude used by the first derivative
	// stencils when the spec does not provide one.
	DefaultStep = 1e-8
	// DefaultHessianStep is the perturbation magnitude used by the second
	// difference stencil when the spec does not provide one.
	// The second difference divides by Step², so the first derivative default
	// would push the quotient below double precision resolution.
	DefaultHessianStep = 1e-5
)

// Scalar is an objective function 𝒇(𝐱) : ℝⁿ → ℝ.
// The argument x passed to this function is an n-vector.
type Scalar func(x []float64) float64

// Vector is an objective function 𝒇(𝐱) : ℝⁿ → ℝᵐ.
// The argument x passed to this function is an n-vector.
// The result is stored in an m-vector y.
type Vector func(x, y []float64)

// Univariate is an objective function 𝒇(𝐱) : ℝ → ℝ.
type Univariate func(x float64) float64

type Order int

const (
	// Order2 use the two point stencil with O(h²) truncation error.
	Order2 Order = iota
	// Order4 use the four point stencil with O(h⁴) truncation error.
	Order4
	// Order6 use the six point stencil with O(h⁶) truncation error.
	Order6
	// Order8 use the eight point stencil with O(h⁸) truncation error.
	Order8
)

// Central difference coefficients c₁ of the stencil ∑ₛ c₁[s]·𝒇(x + c₂[s]·h), indexed by Order.
//
// # Reference:
//
//   - https://en.wikipedia.org/wiki/Finite_difference_coefficient
var coeff = [4][]float64{
	{1, -1},
	{1, -8, 8, -1},
	{-1, 9, -45, 45, -9, 1},
	{3, -32, 168, -672, 672, -168, 32, -3},
}

// Stencil offsets c₂ in units of the step size h.
var offset = [4][]float64{
	{1, -1},
	{-2, -1, 1, 2},
	{-3, -2, -1, 1, 2, 3},
	{-4, -3, -2, -1, 1, 2, 3, 4},
}

// Denominators of the weighted sum, in units of h.
var denom = [4]float64{2, 12, 60, 840}
