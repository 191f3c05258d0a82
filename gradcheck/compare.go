// Copyright ©2025 fdevinc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradcheck

import (
	"errors"
	"math"

	"github.com/rs/zerolog"
)

// Comparator checks two derivative estimates for entrywise agreement.
// The entries x and y agree when |x-y| ≤ Tol·max(|x|,|y|,1), which makes Tol
// behave as a relative tolerance for large magnitudes and as an absolute
// tolerance near zero.
//
// # Reference:
//
//   - https://github.com/PatWie/CppNumericalSolvers
type Comparator struct {
	// Tol is the comparison tolerance. Zero demands exact agreement.
	Tol float64
	// Log receives one debug event per disagreeing entry.
	// No diagnostics are emitted when Log is nil. The verdict never depends on it.
	Log *zerolog.Logger
}

// Gradient reports whether the n-vectors x and y agree entrywise within the tolerance.
// Every entry is visited so that each disagreement is logged, even after the
// verdict is already settled.
func (c Comparator) Gradient(label string, x, y []float64) (bool, error) {

	switch {
	case c.Tol < 0:
		return false, errors.New("negative tolerance")
	case len(x) != len(y):
		return false, errors.New("invalid gradient dimensions")
	}

	same := true
	for i := range x {
		if diff := math.Abs(x[i] - y[i]); diff > c.Tol*scale(x[i], y[i]) {
			c.mismatch(label, i, -1, x[i], y[i], diff)
			same = false
		}
	}
	return same, nil
}

// Jacobian reports whether the rows×cols matrices x and y agree entrywise within the tolerance.
// Both matrices are flat row-major slices. Every entry is visited so that each
// disagreement is logged, even after the verdict is already settled.
func (c Comparator) Jacobian(label string, rows, cols int, x, y []float64) (bool, error) {

	switch {
	case c.Tol < 0:
		return false, errors.New("negative tolerance")
	case rows <= 0 || cols <= 0:
		return false, errors.New("negative dimensions")
	case rows*cols != len(x) || rows*cols != len(y):
		return false, errors.New("invalid jacobian dimensions")
	}

	same := true
	for r := 0; r < rows; r++ {
		for j := 0; j < cols; j++ {
			i := j + r*cols
			if diff := math.Abs(x[i] - y[i]); diff > c.Tol*scale(x[i], y[i]) {
				c.mismatch(label, r, j, x[i], y[i], diff)
				same = false
			}
		}
	}
	return same, nil
}

// Hessian reports whether the n×n matrices x and y agree entrywise within the tolerance.
func (c Comparator) Hessian(label string, n int, x, y []float64) (bool, error) {
	return c.Jacobian(label, n, n, x, y)
}

// scale is the larger magnitude of the compared entries, floored at one.
func scale(x, y float64) float64 {
	return math.Max(math.Max(math.Abs(x), math.Abs(y)), 1.0)
}

// mismatch emits the diagnostic record of one disagreeing entry.
// The relative differences may be ±Inf or NaN when an operand is zero,
// which zerolog encodes as strings.
func (c Comparator) mismatch(label string, r, col int, x, y, diff float64) {
	if c.Log == nil {
		return
	}
	e := c.Log.Debug().Float64("eps", c.Tol).Int("r", r)
	if col >= 0 {
		e = e.Int("c", col)
	}
	e.Float64("x", x).Float64("y", y).
		Float64("abs_diff", diff).
		Float64("rel_diff_x", diff/math.Abs(x)).
		Float64("rel_diff_y", diff/math.Abs(y)).
		Msg(label)
}
