// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"
	"testing"

	"github.com/cpmech/gomarch/pot"
	"github.com/cpmech/gosl/chk"
)

// checkInvariants verifies, for every triangle of a table, that the
// projected centroid lies on the level set within 1e-6, that the area is
// positive and that the centroid normal points away from interior
func checkInvariants(tst *testing.T, tab Table, p pot.Potential, interior []float64) {
	for i := 0; i < tab.Len(); i++ {
		c := tab.Centroid[i]
		phi := p.Value([]float64{c[0], c[1], c[2]})
		if math.Abs(phi) > 1e-6 {
			tst.Fatalf("triangle %d: |Φ(centroid)|=%g exceeds tolerance", i, math.Abs(phi))
		}
		if tab.Area[i] <= 0 {
			tst.Fatalf("triangle %d: non-positive area %g", i, tab.Area[i])
		}
		n := tab.Normal[i]
		dir := n[0]*(c[0]-interior[0]) + n[1]*(c[1]-interior[1]) + n[2]*(c[2]-interior[2])
		if dir <= 0 {
			tst.Fatalf("triangle %d: centroid normal does not point outward (dir=%g)", i, dir)
		}
	}
}

func totalArea(tab Table) float64 {
	sum := 0.0
	for _, a := range tab.Area {
		sum += a
	}
	return sum
}

func TestFrameOrthonormal(tst *testing.T) {
	chk.PrintTitle("frame orthonormality")
	p, _ := pot.Make("Sphere", []float64{1.0})
	v := Project([]float64{1.1, 0.2, 0.05}, p)
	chk.Scalar(tst, "‖n‖", 1e-10, la2norm(v.N), 1)
	chk.Scalar(tst, "‖t1‖", 1e-10, la2norm(v.T1), 1)
	chk.Scalar(tst, "‖t2‖", 1e-10, la2norm(v.T2), 1)
	chk.Scalar(tst, "n·t1", 1e-10, dot(v.N, v.T1), 0)
	chk.Scalar(tst, "n·t2", 1e-10, dot(v.N, v.T2), 0)
	chk.Scalar(tst, "t1·t2", 1e-10, dot(v.T1, v.T2), 0)
	chk.Scalar(tst, "|Φ(r*)|", 1e-6, p.Value(v.R), 0)
}

func la2norm(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}

func TestSphereSmallMesh(tst *testing.T) {
	chk.PrintTitle("Sphere δ=0.5")
	tab, err := Discretize(0.5, 0, "Sphere", []float64{1.0})
	if err != nil {
		tst.Fatalf("Discretize failed: %v", err)
	}
	p, _ := pot.Make("Sphere", []float64{1.0})
	checkInvariants(tst, tab, p, []float64{0, 0, 0})

	c0 := tab.Centroid[0]
	r0 := math.Sqrt(c0[0]*c0[0] + c0[1]*c0[1] + c0[2]*c0[2])
	chk.Scalar(tst, "‖centroid0‖", 1e-6, r0, 1.0)

	area := totalArea(tab)
	if area < 12.0 || area > 13.2 {
		tst.Fatalf("total area %g outside [12.0,13.2]", area)
	}
}

func TestSphereTightMesh(tst *testing.T) {
	chk.PrintTitle("Sphere δ=0.1")
	tab, err := Discretize(0.1, 0, "Sphere", []float64{1.0})
	if err != nil {
		tst.Fatalf("Discretize failed: %v", err)
	}
	area := totalArea(tab)
	want := 4 * math.Pi
	if math.Abs(area-want)/want > 0.005 {
		tst.Fatalf("total area %g not within 0.5%% of 4π=%g", area, want)
	}
}

func TestSphereDenseMesh(tst *testing.T) {
	chk.PrintTitle("Sphere δ=0.05 triangle count")
	tab, err := Discretize(0.05, 0, "Sphere", []float64{1.0})
	if err != nil {
		tst.Fatalf("Discretize failed: %v", err)
	}
	if tab.Len() < 4000 {
		tst.Fatalf("expected >= 4000 triangles, got %d", tab.Len())
	}
}

func TestBudgetExhausted(tst *testing.T) {
	chk.PrintTitle("max_triangles cap")
	tab, err := Discretize(0.3, 10, "Sphere", []float64{1.0})
	if err != nil {
		tst.Fatalf("Discretize failed: %v", err)
	}
	if tab.Len() > 17 { // initial 6 plus at most one step's worth of new triangles, generously bounded
		tst.Fatalf("expected a small partial mesh, got %d triangles", tab.Len())
	}
}

func TestBinaryRocheCentroidBounds(tst *testing.T) {
	chk.PrintTitle("BinaryRoche δ=0.1")
	tab, err := Discretize(0.1, 0, "BinaryRoche", []float64{1.0, 0.5, 1.0, 4.0})
	if err != nil {
		tst.Fatalf("Discretize failed: %v", err)
	}
	p, _ := pot.Make("BinaryRoche", []float64{1.0, 0.5, 1.0, 4.0})
	for i := 0; i < tab.Len(); i++ {
		c := tab.Centroid[i]
		if math.Abs(p.Value(c[:])) > 1e-6 {
			tst.Fatalf("triangle %d: |Φ(centroid)| exceeds tolerance", i)
		}
		if c[0] < -0.5 || c[0] > 0.5 {
			tst.Fatalf("triangle %d: centroid x=%g outside [-0.5,0.5]", i, c[0])
		}
	}
}

func TestHeartBudget(tst *testing.T) {
	chk.PrintTitle("Heart max_triangles=50")
	tab, err := Discretize(0.1, 50, "Heart", []float64{0.0})
	if err != nil {
		tst.Fatalf("Discretize failed: %v", err)
	}
	if tab.Len() > 50 {
		tst.Fatalf("expected <= 50 triangles, got %d", tab.Len())
	}
	p, _ := pot.Make("Heart", []float64{0.0})
	for i := 0; i < tab.Len(); i++ {
		c := tab.Centroid[i]
		if math.Abs(p.Value(c[:])) > 1e-4 {
			tst.Fatalf("triangle %d: |Φ_heart(centroid)|=%g too large", i, math.Abs(p.Value(c[:])))
		}
	}
}

func TestTorusArea(tst *testing.T) {
	chk.PrintTitle("Torus δ=0.2")
	tab, err := Discretize(0.2, 0, "Torus", []float64{1.0, 0.3})
	if err != nil {
		tst.Fatalf("Discretize failed: %v", err)
	}
	area := totalArea(tab)
	want := 2 * math.Pi * 1.0 * 2 * math.Pi * 0.3
	if math.Abs(area-want)/want > 0.05 {
		tst.Fatalf("total area %g not within 5%% of %g", area, want)
	}
}

func TestRotateRocheNonEmpty(tst *testing.T) {
	chk.PrintTitle("RotateRoche δ=0.1")
	tab, err := Discretize(0.1, 0, "RotateRoche", []float64{0.5, 10.0})
	if err != nil {
		tst.Fatalf("Discretize failed: %v", err)
	}
	if tab.Len() == 0 {
		tst.Fatalf("expected a non-empty mesh")
	}
}

func TestDeterministic(tst *testing.T) {
	chk.PrintTitle("determinism")
	a, err := Discretize(0.2, 0, "Sphere", []float64{1.0})
	if err != nil {
		tst.Fatalf("Discretize failed: %v", err)
	}
	b, err := Discretize(0.2, 0, "Sphere", []float64{1.0})
	if err != nil {
		tst.Fatalf("Discretize failed: %v", err)
	}
	if a.Len() != b.Len() {
		tst.Fatalf("non-deterministic triangle count: %d vs %d", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if a.Area[i] != b.Area[i] || a.Centroid[i] != b.Centroid[i] {
			tst.Fatalf("non-deterministic output at row %d", i)
		}
	}
}

func TestRoundTripSides(tst *testing.T) {
	chk.PrintTitle("round-trip side lengths vs area")
	tab, err := Discretize(0.3, 0, "Sphere", []float64{1.0})
	if err != nil {
		tst.Fatalf("Discretize failed: %v", err)
	}
	for i := 0; i < tab.Len(); i++ {
		s1 := distance(tab.V0[i][:], tab.V1[i][:])
		s2 := distance(tab.V0[i][:], tab.V2[i][:])
		s3 := distance(tab.V2[i][:], tab.V1[i][:])
		s := 0.5 * (s1 + s2 + s3)
		area := math.Sqrt(s * (s - s1) * (s - s2) * (s - s3))
		if math.Abs(area-tab.Area[i]) > 1e-12 {
			tst.Fatalf("triangle %d: round-trip area mismatch %g vs %g", i, area, tab.Area[i])
		}
	}
}

func TestMakeErrorsPropagate(tst *testing.T) {
	chk.PrintTitle("Discretize propagates pot.Make errors")
	if _, err := Discretize(0.1, 0, "NotAPotential", []float64{1}); err == nil {
		tst.Fatalf("expected error for unknown kind")
	}
	if _, err := Discretize(0.1, 0, "Sphere", []float64{1, 2, 3}); err == nil {
		tst.Fatalf("expected error for wrong arity")
	}
}
