// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pot

import "github.com/cpmech/gosl/fun"

// Heart implements the classic implicit heart surface
//
//   Φ = (x² + 9y²/4 + z² − 1)³ − x²z³ − (9/80)y²z³
//
// It takes no real parameters; Make still requires a one-element params
// slice for interface uniformity with the other kinds, and its value is
// ignored (§9 design note).
type Heart struct{}

// NewHeart allocates a Heart potential; p is accepted but unused
func NewHeart(p []float64) *Heart {
	return &Heart{}
}

// Value returns Φ(r)
func (o *Heart) Value(r []float64) float64 {
	x, y, z := r[0], r[1], r[2]
	core := x*x + 9./4.*y*y + z*z - 1
	return core*core*core - x*x*z*z*z - 9./80.*y*y*z*z*z
}

// Grad returns ∇Φ(r)
func (o *Heart) Grad(r []float64) []float64 {
	x, y, z := r[0], r[1], r[2]
	core := x*x + 9./4.*y*y + z*z - 1
	core2 := core * core
	gx := 3*core2*2*x - 2*x*z*z*z
	gy := 3*core2*9./2.*y - 9./40.*y*z*z*z
	gz := 3*core2*2*z - 3*x*x*z*z - 27./80.*y*y*z*z
	return []float64{gx, gy, gz}
}

// GetPrms gets (an example) of parameters; the single entry is a documented
// placeholder and is never read by Value/Grad
func (o *Heart) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "unused", V: 0},
	}
}
