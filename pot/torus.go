// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pot

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// Torus implements Φ = R_minor² − R_major² + 2・R_major・√(x²+y²) − (x²+y²+z²)
// with p = (R_major, R_minor)
type Torus struct {
	Rmajor, Rminor float64
}

// NewTorus allocates a Torus potential from p=(R_major,R_minor)
func NewTorus(p []float64) *Torus {
	return &Torus{Rmajor: p[0], Rminor: p[1]}
}

// Value returns Φ(r)
func (o *Torus) Value(r []float64) float64 {
	x, y, z := r[0], r[1], r[2]
	return o.Rminor*o.Rminor - o.Rmajor*o.Rmajor + 2*o.Rmajor*math.Sqrt(x*x+y*y) - (x*x + y*y + z*z)
}

// Grad returns ∇Φ(r)
func (o *Torus) Grad(r []float64) []float64 {
	x, y, z := r[0], r[1], r[2]
	rho := math.Sqrt(x*x + y*y)
	gx := 2*o.Rmajor*x/rho - 2*x
	gy := 2*o.Rmajor*y/rho - 2*y
	gz := -2 * z
	return []float64{gx, gy, gz}
}

// GetPrms gets (an example) of parameters
func (o *Torus) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "Rmajor", V: 1},
		&fun.Prm{N: "Rminor", V: 0.3},
	}
}
