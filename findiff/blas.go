// Copyright ©2025 fdevinc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package findiff

// daxpy performs constant times a vector plus a vector operation.
func daxpy(n int, da float64, dx []float64, incx int, dy []float64, incy int) {
	if n <= 0 || da == 0.0 {
		return
	}
	if incx == 1 && incy == 1 {
		m := uint(n % 4)
		if m > uint(len(dx)) || m > uint(len(dy)) {
			panic("bound check error")
		}
		for i := uint(0); i < m; i++ {
			dy[i] += da * dx[i]
		}
		if n < 4 {
			return
		}
		for i := m; i < uint(n); i += 4 {
			x := dx[i : i+4 : i+4]
			y := dy[i : i+4 : i+4]
			y[0] += da * x[0]
			y[1] += da * x[1]
			y[2] += da * x[2]
			y[3] += da * x[3]
		}
	} else {
		lx, ly := uint(incx*(n-1)), uint(incy*(n-1))
		if lx >= uint(len(dx)) || ly >= uint(len(dy)) {
			panic("bound check error")
		}
		ix, iy := uint(0), uint(0)
		for ix <= lx && iy <= ly {
			dy[iy] += da * dx[ix]
			ix += uint(incx)
			iy += uint(incy)
		}
	}
}

// dscal scales a vector by a constant.
func dscal(n int, da float64, dx []float64, incx int) {
	if n <= 0 || incx <= 0 {
		return
	}
	if incx == 1 {
		m := uint(n % 5)
		if m > uint(len(dx)) {
			panic("bound check error")
		}
		for i := uint(0); i < m; i++ {
			dx[i] *= da
		}
		if n < 5 {
			return
		}
		for i := m; i < uint(n); i += 5 {
			d := dx[i : i+5 : i+5]
			d[0] *= da
			d[1] *= da
			d[2] *= da
			d[3] *= da
			d[4] *= da
		}
	} else {
		l := uint(incx * (n - 1))
		if l >= uint(len(dx)) {
			panic("bound check error")
		}
		for i := uint(0); i <= l; i += uint(incx) {
			dx[i] *= da
		}
	}
}

// dzero fills vector x with zero.
func dzero(n int, dx []float64, incx int) {
	if n <= 0 || incx <= 0 {
		return
	}
	if incx == 1 {
		m := uint(n % 5)
		if m > uint(len(dx)) {
			panic("bound check error")
		}
		for i := uint(0); i < m; i++ {
			dx[i] = 0
		}
		if n < 5 {
			return
		}
		for i := m; i < uint(n); i += 5 {
			d := dx[i : i+5 : i+5]
			d[0] = 0
			d[1] = 0
			d[2] = 0
			d[3] = 0
			d[4] = 0
		}
	} else {
		l := uint(incx * (n - 1))
		if l >= uint(len(dx)) {
			panic("bound check error")
		}
		for i := uint(0); i <= l; i += uint(incx) {
			dx[i] = 0
		}
	}
}
