// Copyright ©2025 fdevinc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package findiff

import (
	"math"
	"reflect"
	"testing"
)

func objQuad(x []float64) float64 {
	return x[0]*x[0] + x[1]*x[1]
}

func objAffine(x []float64) float64 {
	return 3*x[0] - 2*x[1] + 0.5*x[2] + 7
}

func TestGradQuad(t *testing.T) {

	x0 := []float64{1.0, 2.0}
	want := []float64{2.0, 4.0}

	grad := []float64{0, 0}
	for _, order := range []Order{Order2, Order4, Order6, Order8} {
		gs := GradientSpec{N: 2, Object: objQuad, Order: order, Step: 1e-6}
		if err := gs.Gradient(x0, grad); err != nil {
			t.Fatal("approx gradient failed", err)
		}
		if !almostEqual(grad, want, 1e-6) {
			t.Fatal("unexpected approx gradient result")
		}
	}

	// zero value falls back to Order2 and DefaultStep
	gs := GradientSpec{N: 2, Object: objQuad}
	if err := gs.Gradient(x0, grad); err != nil {
		t.Fatal("approx gradient failed", err)
	}
	if !almostEqual(grad, want, 1e-6) {
		t.Fatal("unexpected approx gradient result")
	}

	if !almostEqual(x0, []float64{1.0, 2.0}, 0) {
		t.Fatal("unexpected x0 mutation")
	}

}

func TestGradAffine(t *testing.T) {

	x0 := []float64{1.0, -2.0, 3.0}
	want := []float64{3.0, -2.0, 0.5}

	grad := make([]float64, 3)
	for _, order := range []Order{Order2, Order4, Order6, Order8} {
		for _, step := range []float64{1e-6, 1e-4, 1e-2} {
			gs := GradientSpec{N: 3, Object: objAffine, Order: order, Step: step}
			if err := gs.Gradient(x0, grad); err != nil {
				t.Fatal("approx gradient failed", err)
			}
			if !almostEqual(grad, want, 1e-7) {
				t.Fatal("unexpected approx gradient result")
			}
		}
	}

}

func TestGradConverge(t *testing.T) {

	obj := func(x []float64) float64 { return math.Exp(x[0]) }
	x0 := []float64{0.5}
	want := math.Exp(x0[0])

	steps := []float64{1e-2, 1e-1, 0.4, 0.4}
	grad := []float64{0}
	for order, h := range steps {
		gs := GradientSpec{N: 1, Object: obj, Order: Order(order)}

		gs.Step = h
		if err := gs.Gradient(x0, grad); err != nil {
			t.Fatal("approx gradient failed", err)
		}
		err1 := math.Abs(grad[0] - want)

		gs.Step = h / 2
		if err := gs.Gradient(x0, grad); err != nil {
			t.Fatal("approx gradient failed", err)
		}
		err2 := math.Abs(grad[0] - want)

		// halving the step shrinks the error by 2^acc
		acc := 2 * (order + 1)
		gain := math.Pow(2, float64(acc))
		switch {
		case err2 <= 0:
			t.Fatal("unexpected exact result")
		case err1/err2 < gain/2 || err1/err2 > gain*4:
			t.Fatal("unexpected convergence rate")
		}
	}

}

func TestGradReuse(t *testing.T) {

	gs := GradientSpec{N: 2, Object: objQuad, Order: Order4, Step: 1e-6}

	x0 := []float64{1.0, 2.0}
	grad1 := []float64{0, 0}
	grad2 := []float64{0, 0}

	if err := gs.Gradient(x0, grad1); err != nil {
		t.Fatal("approx gradient failed", err)
	}
	if err := gs.Gradient(x0, grad2); err != nil {
		t.Fatal("approx gradient failed", err)
	}
	if !almostEqual(grad1, grad2, 0) {
		t.Fatal("unexpected approx gradient result")
	}

}

func TestGradCheck(t *testing.T) {

	x0 := []float64{1.0, 2.0}
	grad := []float64{0, 0}

	for _, gs := range []GradientSpec{
		{N: 0, Object: objQuad},
		{N: -2, Object: objQuad},
		{N: 2, Object: objQuad, Order: Order(4)},
		{N: 2, Object: objQuad, Order: Order(-1)},
		{N: 2},
		{N: 3, Object: objQuad},
	} {
		if err := gs.Gradient(x0, grad); err == nil {
			t.Fatal("unexpected approx gradient status")
		}
	}

	gs := GradientSpec{N: 2, Object: objQuad}
	if err := gs.Gradient(x0, grad[:1]); err == nil {
		t.Fatal("unexpected approx gradient status")
	}

}

func almostEqual[T float64 | []float64](a, b T, tol float64) bool {
	equalWithinAbs := func(a, b float64) bool {
		return a == b || math.Abs(a-b) <= tol
	}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float64:
		return equalWithinAbs(any(a).(float64), any(b).(float64))
	case reflect.Slice:
		a, b := any(a).([]float64), any(b).([]float64)
		if len(a) != len(b) {
			return false
		}
		for i, a := range a {
			if !equalWithinAbs(a, b[i]) {
				return false
			}
		}
		return true
	default:
		panic("unknown type")
	}
}
