// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/cpmech/gomarch/pot"
	"github.com/cpmech/gosl/la"
)

// seedOffset is the near-origin seed used to break symmetry at the start of
// every mesh (§4.5). It is not configurable; the initial point's exact
// position is irrelevant once Project snaps it onto the level set, only
// that it lies close enough to the surface for Newton's method to converge.
var seedOffset = []float64{-0.00002, 0, 0}

// Discretize triangulates the zero level set of the named potential into a
// mesh of approximately equilateral triangles of side ≈ delta (§6). It is
// the one library entry point; InvalidPotential/InvalidArity are returned
// as errors, ProjectionNonConvergent is logged and otherwise ignored, and
// BudgetExhausted returns a partial table with a nil error (§7). With
// maxTriangles > 0 no step is taken that would bring the table past
// maxTriangles; the six seed triangles are always emitted.
func Discretize(delta float64, maxTriangles int64, potential string, params []float64) (Table, error) {
	p, err := pot.Make(potential, params)
	if err != nil {
		return Table{}, err
	}
	tris := march(delta, maxTriangles, p)
	return pack(tris, p), nil
}

// march runs the advancing-front loop (§4.5) and returns the raw triangle
// list in creation order
func march(delta float64, maxTriangles int64, p pot.Potential) []Triangle {
	const pi3 = math.Pi / 3.0

	p0 := Project(seedOffset, p)

	hex := make([]Vertex, 6)
	for i := 0; i < 6; i++ {
		a := float64(i) * pi3
		q := []float64{
			p0.R[0] + delta*math.Cos(a)*p0.T1[0] + delta*math.Sin(a)*p0.T2[0],
			p0.R[1] + delta*math.Cos(a)*p0.T1[1] + delta*math.Sin(a)*p0.T2[1],
			p0.R[2] + delta*math.Cos(a)*p0.T1[2] + delta*math.Sin(a)*p0.T2[2],
		}
		hex[i] = Project(q, p)
	}

	var tris []Triangle
	for i := 0; i < 6; i++ {
		tris = append(tris, Triangle{V0: p0, V1: hex[i], V2: hex[(i+1)%6]})
	}

	front := NewFront(hex)

	// a front of two or one vertices bounds no area, so the loop stops once
	// fewer than three remain
	for front.Len() > 2 {
		k, omegaK := pickPivot(front)
		nt, domega := tessellationCount(omegaK)
		if maxTriangles > 0 && int64(len(tris)+nt) > maxTriangles {
			break
		}

		prevV := front.Prev(k)
		nextV := front.Next(k)
		pivot := front.At(k)

		newVerts := make([]Vertex, 0, nt-1)
		for j := 1; j < nt; j++ {
			pk := emitVertex(pivot, prevV, float64(j)*domega, delta, p)

			var va Vertex
			if j == 1 {
				va = prevV
			} else {
				va = newVerts[len(newVerts)-1]
			}
			tris = append(tris, Triangle{V0: va, V1: pk, V2: pivot})
			newVerts = append(newVerts, pk)
		}

		if nt == 1 {
			tris = append(tris, Triangle{V0: prevV, V1: nextV, V2: pivot})
		} else {
			tris = append(tris, Triangle{V0: newVerts[len(newVerts)-1], V1: nextV, V2: pivot})
		}

		front.Splice(k, newVerts)
	}

	return tris
}

// pickPivot performs the angle scan (§4.5 step 1) and returns the index of
// the front vertex with minimum interior angle plus that angle (step 2)
func pickPivot(front *Front) (int, float64) {
	m := front.Len()
	omega := make([]float64, m)
	for i := 0; i < m; i++ {
		pi := front.At(i)
		dPrev := make([]float64, 3)
		la.VecAdd2(dPrev, 1, front.Prev(i).R, -1, pi.R)
		dNext := make([]float64, 3)
		la.VecAdd2(dNext, 1, front.Next(i).R, -1, pi.R)
		lp := pi.ToLocal(dPrev)
		ln := pi.ToLocal(dNext)
		adiff := math.Atan2(ln[2], ln[1]) - math.Atan2(lp[2], lp[1])
		if adiff < 0 {
			adiff += 2 * math.Pi
		}
		omega[i] = math.Mod(adiff, 2*math.Pi)
	}
	k := argmin(omega)
	return k, omega[k]
}

// argmin returns the index of the smallest entry in a, using the source's
// strict-by-epsilon tie-break: an index only replaces the running minimum
// if it beats it by more than 1e-6, so the first vertex among near-ties
// wins (§9 open question, preserved for reproducibility)
func argmin(a []float64) int {
	min := 0
	for i := 1; i < len(a); i++ {
		if a[min]-a[i] > 1e-6 {
			min = i
		}
	}
	return min
}

// tessellationCount computes how many triangles to emit at a pivot whose
// interior angle is omega (§4.5 step 3), balancing triangle aspect ratio
// toward the ideal π/3
func tessellationCount(omega float64) (nt int, domega float64) {
	nt = int(3.0*omega/math.Pi) + 1
	domega = omega / float64(nt)
	if nt > 1 && domega < 0.8 {
		nt--
		domega = omega / float64(nt)
	}
	return
}

// emitVertex builds and projects the j-th new interior vertex at a pivot
// whose wedge is being split into nt triangles (§4.5 step 4): it rotates
// (prev-pivot) by angle around the pivot's normal, rescales the tangential
// part to length delta, and projects the result back onto the surface
func emitVertex(pivot, prev Vertex, angle, delta float64, p pot.Potential) Vertex {
	d := make([]float64, 3)
	la.VecAdd2(d, 1, prev.R, -1, pivot.R)
	local := pivot.ToLocal(d)
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	rotated := []float64{
		0,
		local[1]*cosA - local[2]*sinA,
		local[1]*sinA + local[2]*cosA,
	}
	norm := math.Sqrt(rotated[1]*rotated[1] + rotated[2]*rotated[2])
	rotated[1] *= delta / norm
	rotated[2] *= delta / norm

	world := pivot.ToWorld(rotated)
	q := []float64{pivot.R[0] + world[0], pivot.R[1] + world[1], pivot.R[2] + world[2]}
	return Project(q, p)
}
