// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pot

import "github.com/cpmech/gosl/fun"

// Sphere implements Φ = x²+y²+z² − R²
type Sphere struct {
	R float64
}

// NewSphere allocates a Sphere potential from p=(R)
func NewSphere(p []float64) *Sphere {
	return &Sphere{R: p[0]}
}

// Value returns Φ(r)
func (o *Sphere) Value(r []float64) float64 {
	return r[0]*r[0] + r[1]*r[1] + r[2]*r[2] - o.R*o.R
}

// Grad returns ∇Φ(r)
func (o *Sphere) Grad(r []float64) []float64 {
	return []float64{2 * r[0], 2 * r[1], 2 * r[2]}
}

// GetPrms gets (an example) of parameters
func (o *Sphere) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "R", V: 1},
	}
}
