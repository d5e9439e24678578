// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pot

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// MisalignedBinaryRoche implements the Roche potential of a binary system
// whose spin axis is misaligned from the orbital axis by Euler angles
// (θ,φ). The centrifugal term of BinaryRoche is replaced by a full
// quadratic form δ(r,θ,φ) in the rotated frame.
//
// p = (D, q, F, θ, φ, Ω)
type MisalignedBinaryRoche struct {
	D, Q, F, Theta, Phi, Omega float64
}

// NewMisalignedBinaryRoche allocates a MisalignedBinaryRoche potential
func NewMisalignedBinaryRoche(p []float64) *MisalignedBinaryRoche {
	return &MisalignedBinaryRoche{D: p[0], Q: p[1], F: p[2], Theta: p[3], Phi: p[4], Omega: p[5]}
}

// delta evaluates the rotated quadratic form replacing x²+y² in BinaryRoche
func (o *MisalignedBinaryRoche) delta(r []float64) float64 {
	x, y, z := r[0], r[1], r[2]
	sinT := math.Sin(o.Theta)
	sinP, cosP := math.Sin(o.Phi), math.Cos(o.Phi)
	return (1-cosP*cosP*sinT*sinT)*x*x +
		(1-sinP*sinP*sinT*sinT)*y*y +
		sinT*sinT*z*z -
		sinT*sinT*math.Sin(2*o.Phi)*x*y -
		math.Sin(2*o.Theta)*cosP*x*z -
		math.Sin(2*o.Theta)*sinP*y*z
}

// Value returns Φ(r)
func (o *MisalignedBinaryRoche) Value(r []float64) float64 {
	x, y, z := r[0], r[1], r[2]
	d1 := math.Sqrt(x*x + y*y + z*z)
	dx := x - o.D
	d2 := math.Sqrt(dx*dx + y*y + z*z)
	return 1.0/d1 + o.Q*(1.0/d2-x/(o.D*o.D)) + 0.5*o.F*o.F*(1+o.Q)*o.delta(r) - o.Omega
}

// Grad returns ∇Φ(r)
func (o *MisalignedBinaryRoche) Grad(r []float64) []float64 {
	x, y, z := r[0], r[1], r[2]
	sinT := math.Sin(o.Theta)
	sinP, cosP := math.Sin(o.Phi), math.Cos(o.Phi)
	sin2T, sin2P := math.Sin(2*o.Theta), math.Sin(2*o.Phi)

	rsq := x*x + y*y + z*z
	dx := x - o.D
	dsq := dx*dx + y*y + z*z

	ddx := 2*(1-cosP*cosP*sinT*sinT)*x - sinT*sinT*sin2P*y - sin2T*cosP*z
	ddy := 2*(1-sinP*sinP*sinT*sinT)*y - sinT*sinT*sin2P*x - sin2T*sinP*z
	ddz := 2*sinT*sinT*z - sin2T*cosP*x - sin2T*sinP*y

	half := 0.5 * o.F * o.F * (1 + o.Q)

	gx := -x*math.Pow(rsq, -1.5) - o.Q*dx*math.Pow(dsq, -1.5) - o.Q/(o.D*o.D) + half*ddx
	gy := -y*math.Pow(rsq, -1.5) - o.Q*y*math.Pow(dsq, -1.5) + half*ddy
	gz := -z*math.Pow(rsq, -1.5) - o.Q*z*math.Pow(dsq, -1.5) + half*ddz
	return []float64{gx, gy, gz}
}

// GetPrms gets (an example) of parameters
func (o *MisalignedBinaryRoche) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "D", V: 1},
		&fun.Prm{N: "q", V: 0.5},
		&fun.Prm{N: "F", V: 1},
		&fun.Prm{N: "theta", V: 0.1},
		&fun.Prm{N: "phi", V: 0},
		&fun.Prm{N: "Omega", V: 4},
	}
}
