// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the advancing-front marching triangulation that
// turns an implicit potential's zero level set into a triangle mesh of
// approximately equilateral triangles.
package mesh

import (
	"math"

	"github.com/cpmech/gomarch/pot"
	"github.com/cpmech/gosl/la"
)

// Vertex is a point on the level set together with its local orthonormal
// frame (n, t1, t2) and the inverse Minv of the matrix whose columns are
// (n, t1, t2). Vertices are produced by Project and are never mutated after
// creation; they are copied by value into the front and the triangle list
// (§3 data model).
type Vertex struct {
	R    []float64   // position, len 3
	N    []float64   // unit outward normal, len 3
	T1   []float64   // tangent 1, len 3
	T2   []float64   // tangent 2, len 3
	Minv [][]float64 // 3x3 inverse of [n t1 t2], used to map world vectors into the local frame
}

// dot returns the dot product of two 3-vectors. gosl/la targets general
// n-dimensional vectors (VecNorm, VecAdd, ...); a literal 3-component dot
// product is fixed-size geometry specific to this package, so it is
// hand-rolled rather than reached for in la.
func dot(a, b []float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// cross returns the cross product a×b of two 3-vectors, for the same
// reason dot is hand-rolled above.
func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// NewVertex builds the vertex frame at r for the given potential (§4.2).
//
// NewVertex has no failure mode other than ∇Φ(r)=0, the DegenerateFrame
// precondition violation from spec §7: callers must never invoke it at a
// critical point of Φ. Behaviour in that case is undefined.
func NewVertex(r []float64, p pot.Potential) Vertex {
	g := p.Grad(r)
	nn := la.VecNorm(g)
	n := []float64{g[0] / nn, g[1] / nn, g[2] / nn}

	// deterministic tie-break (§3): avoid degeneracy near the z-axis in the
	// first branch, or near the y-axis in the second
	var t1 []float64
	if math.Abs(n[0]) > 0.5 || math.Abs(n[1]) > 0.5 {
		d := la.VecNorm([]float64{n[0], n[1]})
		t1 = []float64{n[1] / d, -n[0] / d, 0}
	} else {
		d := la.VecNorm([]float64{n[0], n[2]})
		t1 = []float64{-n[2] / d, 0, n[0] / d}
	}
	t2 := cross(n, t1)

	// M = [n t1 t2] has orthonormal columns, so Minv == Mᵀ (§9 design
	// note): the inverse is the transpose of the rows, not a
	// determinant/cofactor computation.
	minv := la.MatAlloc(3, 3)
	minv[0] = []float64{n[0], n[1], n[2]}
	minv[1] = []float64{t1[0], t1[1], t1[2]}
	minv[2] = []float64{t2[0], t2[1], t2[2]}

	return Vertex{
		R:    []float64{r[0], r[1], r[2]},
		N:    n,
		T1:   t1,
		T2:   t2,
		Minv: minv,
	}
}

// ToLocal maps a world-frame vector r into this vertex's local frame,
// i.e. computes Minv・r
func (v Vertex) ToLocal(r []float64) []float64 {
	ret := make([]float64, 3)
	la.MatVecMul(ret, 1, v.Minv, r)
	return ret
}

// ToWorld maps a local-frame vector r = (rn, rt1, rt2) back to world
// coordinates, i.e. computes n・rn + t1・rt1 + t2・rt2
func (v Vertex) ToWorld(r []float64) []float64 {
	ret := make([]float64, 3)
	for i := 0; i < 3; i++ {
		ret[i] = v.N[i]*r[0] + v.T1[i]*r[1] + v.T2[i]*r[2]
	}
	return ret
}
