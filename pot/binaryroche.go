// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pot

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// BinaryRoche implements the Roche potential of an aligned binary system
//
//   Φ = 1/‖r‖ + q・(1/‖r−(D,0,0)‖ − x/D²) + ½F²(1+q)(x²+y²) − Ω
//
// with p = (D, q, F, Ω)
type BinaryRoche struct {
	D, Q, F, Omega float64
}

// NewBinaryRoche allocates a BinaryRoche potential from p=(D,q,F,Ω)
func NewBinaryRoche(p []float64) *BinaryRoche {
	return &BinaryRoche{D: p[0], Q: p[1], F: p[2], Omega: p[3]}
}

// Value returns Φ(r)
func (o *BinaryRoche) Value(r []float64) float64 {
	x, y, z := r[0], r[1], r[2]
	d1 := math.Sqrt(x*x + y*y + z*z)
	dx := x - o.D
	d2 := math.Sqrt(dx*dx + y*y + z*z)
	return 1.0/d1 + o.Q*(1.0/d2-x/(o.D*o.D)) + 0.5*o.F*o.F*(1+o.Q)*(x*x+y*y) - o.Omega
}

// Grad returns ∇Φ(r)
func (o *BinaryRoche) Grad(r []float64) []float64 {
	x, y, z := r[0], r[1], r[2]
	rsq := x*x + y*y + z*z
	dx := x - o.D
	dsq := dx*dx + y*y + z*z
	gx := -x*math.Pow(rsq, -1.5) - o.Q*dx*math.Pow(dsq, -1.5) - o.Q/(o.D*o.D) + o.F*o.F*(1+o.Q)*x
	gy := -y*math.Pow(rsq, -1.5) - o.Q*y*math.Pow(dsq, -1.5) + o.F*o.F*(1+o.Q)*y
	gz := -z*math.Pow(rsq, -1.5) - o.Q*z*math.Pow(dsq, -1.5)
	return []float64{gx, gy, gz}
}

// GetPrms gets (an example) of parameters
func (o *BinaryRoche) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "D", V: 1},
		&fun.Prm{N: "q", V: 0.5},
		&fun.Prm{N: "F", V: 1},
		&fun.Prm{N: "Omega", V: 4},
	}
}
