// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pot

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// rotateRocheOmegaScale converts the rotation parameter F into an angular
// velocity ω = F・rotateRocheOmegaScale. The constant is
// √(4π²/(27・G・M_⊙・yr²)) in the unit system this catalogue is defined in
// and must be preserved bit-for-bit for reproducibility.
const rotateRocheOmegaScale = 0.54433105395181736

// RotateRoche implements the potential of a single rotating star
//
//   Φ = 1/Ω_norm − 1/‖r‖ − ½ω²(x²+y²),  ω = F・rotateRocheOmegaScale
//
// with p = (F, Ω_norm)
type RotateRoche struct {
	F, OmegaNorm float64
}

// NewRotateRoche allocates a RotateRoche potential from p=(F,Ω_norm)
func NewRotateRoche(p []float64) *RotateRoche {
	return &RotateRoche{F: p[0], OmegaNorm: p[1]}
}

// Value returns Φ(r)
func (o *RotateRoche) Value(r []float64) float64 {
	x, y, z := r[0], r[1], r[2]
	omega := o.F * rotateRocheOmegaScale
	rp := math.Sqrt(x*x + y*y + z*z)
	return 1.0/o.OmegaNorm - 1.0/rp - 0.5*omega*omega*(x*x+y*y)
}

// Grad returns ∇Φ(r)
func (o *RotateRoche) Grad(r []float64) []float64 {
	x, y, z := r[0], r[1], r[2]
	omega := o.F * rotateRocheOmegaScale
	rsq := x*x + y*y + z*z
	gx := x*math.Pow(rsq, -1.5) - omega*omega*x
	gy := y*math.Pow(rsq, -1.5) - omega*omega*y
	gz := z * math.Pow(rsq, -1.5)
	return []float64{gx, gy, gz}
}

// GetPrms gets (an example) of parameters
func (o *RotateRoche) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "F", V: 0.5},
		&fun.Prm{N: "OmegaNorm", V: 10},
	}
}
