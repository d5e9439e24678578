// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pot

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// checkGrad cross-checks Grad against a central-difference approximation of
// Value along each axis independently, the same style shp/testing.go uses
// to check shape-function derivatives
func checkGrad(tst *testing.T, label string, p Potential, r []float64, tol float64) {
	g := p.Grad(r)
	axis := []string{"x", "y", "z"}
	for i := 0; i < 3; i++ {
		i := i
		rr := make([]float64, 3)
		copy(rr, r)
		chk.DerivScaSca(tst, label+"/d"+axis[i], tol, g[i], r[i], 1e-3, chk.Verbose, func(x float64) (float64, error) {
			copy(rr, r)
			rr[i] = x
			return p.Value(rr), nil
		})
	}
}

func TestSphere(tst *testing.T) {
	chk.PrintTitle("Sphere")
	p, err := Make("Sphere", []float64{1.0})
	if err != nil {
		tst.Fatalf("Make failed: %v", err)
	}
	r := []float64{0.6, 0.5, 0.3}
	checkGrad(tst, "sphere", p, r, 1e-8)
	chk.Scalar(tst, "Φ(1,0,0)", 1e-15, p.Value([]float64{1, 0, 0}), 0)
}

func TestBinaryRoche(tst *testing.T) {
	chk.PrintTitle("BinaryRoche")
	p, err := Make("BinaryRoche", []float64{1.0, 0.5, 1.0, 4.0})
	if err != nil {
		tst.Fatalf("Make failed: %v", err)
	}
	checkGrad(tst, "binaryroche", p, []float64{0.3, 0.2, 0.1}, 1e-6)

	// defaulted Ω
	q, err := Make("BinaryRoche", []float64{1.0, 0.5, 1.0})
	if err != nil {
		tst.Fatalf("Make failed: %v", err)
	}
	chk.Scalar(tst, "Ω defaults to 0", 1e-15, q.(*BinaryRoche).Omega, 0)
}

func TestMisalignedBinaryRoche(tst *testing.T) {
	chk.PrintTitle("MisalignedBinaryRoche")
	p, err := Make("MisalignedBinaryRoche", []float64{1.0, 0.5, 1.0, 0.2, 0.1, 4.0})
	if err != nil {
		tst.Fatalf("Make failed: %v", err)
	}
	checkGrad(tst, "misaligned", p, []float64{0.3, 0.2, 0.1}, 1e-6)

	q, err := Make("MisalignedBinaryRoche", []float64{1.0, 0.5, 1.0, 0.2, 0.1})
	if err != nil {
		tst.Fatalf("Make failed: %v", err)
	}
	chk.Scalar(tst, "Ω defaults to 0", 1e-15, q.(*MisalignedBinaryRoche).Omega, 0)

	// aligned special case (θ=0) must match BinaryRoche
	aligned, _ := Make("MisalignedBinaryRoche", []float64{1.0, 0.5, 1.0, 0.0, 0.0, 4.0})
	plain, _ := Make("BinaryRoche", []float64{1.0, 0.5, 1.0, 4.0})
	r := []float64{0.3, 0.25, 0.1}
	chk.Scalar(tst, "θ=0 matches BinaryRoche", 1e-12, aligned.Value(r), plain.Value(r))
}

func TestRotateRoche(tst *testing.T) {
	chk.PrintTitle("RotateRoche")
	p, err := Make("RotateRoche", []float64{0.5, 10.0})
	if err != nil {
		tst.Fatalf("Make failed: %v", err)
	}
	checkGrad(tst, "rotateroche", p, []float64{0.3, 0.2, 0.1}, 1e-6)
}

func TestTorus(tst *testing.T) {
	chk.PrintTitle("Torus")
	p, err := Make("Torus", []float64{1.0, 0.3})
	if err != nil {
		tst.Fatalf("Make failed: %v", err)
	}
	checkGrad(tst, "torus", p, []float64{1.2, 0.1, 0.05}, 1e-6)
}

func TestHeart(tst *testing.T) {
	chk.PrintTitle("Heart")
	p, err := Make("Heart", []float64{0.0})
	if err != nil {
		tst.Fatalf("Make failed: %v", err)
	}
	checkGrad(tst, "heart", p, []float64{0.3, 0.2, -0.6}, 1e-6)
}

func TestMakeErrors(tst *testing.T) {
	chk.PrintTitle("Make errors")
	if _, err := Make("NotAPotential", []float64{1}); err == nil {
		tst.Fatalf("expected error for unknown kind")
	}
	if _, err := Make("Sphere", []float64{1, 2}); err == nil {
		tst.Fatalf("expected error for wrong arity")
	}
	if _, err := Make("BinaryRoche", []float64{1, 2}); err == nil {
		tst.Fatalf("expected error for wrong arity")
	}
}
