// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/cpmech/gomarch/pot"
)

// Triangle is a triple (v0,v1,v2) of vertex frames, stored by value, wound
// so that (v1-v0)×(v2-v0) points along n at the centroid (§3)
type Triangle struct {
	V0, V1, V2 Vertex
}

// Table is the packed output of a mesh run: one row per triangle, in
// creation order (§4.6, §6). Columns are kept as named parallel slices
// instead of a bare [T][16]float64 so meshio can serialize them without
// column-index literals; Matrix reconstructs the literal 16-column layout
// spec.md §6 specifies.
type Table struct {
	Centroid [][3]float64 // cols 0..2:  centroid projected onto the surface
	Area     []float64    // col  3:     triangle area (Heron)
	V0       [][3]float64 // cols 4..6:  v0 position
	V1       [][3]float64 // cols 7..9:  v1 position
	V2       [][3]float64 // cols 10..12: v2 position
	Normal   [][3]float64 // cols 13..15: centroid normal (unit)
}

// Len returns the number of triangles in the table
func (t Table) Len() int {
	return len(t.Area)
}

// Matrix returns the (T,16) row-major table spec.md §6 specifies
func (t Table) Matrix() [][]float64 {
	rows := make([][]float64, t.Len())
	for i := range rows {
		row := make([]float64, 16)
		copy(row[0:3], t.Centroid[i][:])
		row[3] = t.Area[i]
		copy(row[4:7], t.V0[i][:])
		copy(row[7:10], t.V1[i][:])
		copy(row[10:13], t.V2[i][:])
		copy(row[13:16], t.Normal[i][:])
		rows[i] = row
	}
	return rows
}

// pack builds the output Table from the raw triangle list (§4.6): for each
// triangle it projects the centroid back onto the surface and computes the
// side lengths and area by Heron's formula.
func pack(tris []Triangle, p pot.Potential) Table {
	t := Table{
		Centroid: make([][3]float64, len(tris)),
		Area:     make([]float64, len(tris)),
		V0:       make([][3]float64, len(tris)),
		V1:       make([][3]float64, len(tris)),
		V2:       make([][3]float64, len(tris)),
		Normal:   make([][3]float64, len(tris)),
	}
	for i, tr := range tris {
		q := []float64{
			(tr.V0.R[0] + tr.V1.R[0] + tr.V2.R[0]) / 3.0,
			(tr.V0.R[1] + tr.V1.R[1] + tr.V2.R[1]) / 3.0,
			(tr.V0.R[2] + tr.V1.R[2] + tr.V2.R[2]) / 3.0,
		}
		c := Project(q, p)

		s1 := distance(tr.V0.R, tr.V1.R)
		s2 := distance(tr.V0.R, tr.V2.R)
		s3 := distance(tr.V2.R, tr.V1.R)
		s := 0.5 * (s1 + s2 + s3)
		area := math.Sqrt(s * (s - s1) * (s - s2) * (s - s3))

		t.Centroid[i] = [3]float64{c.R[0], c.R[1], c.R[2]}
		t.Area[i] = area
		t.V0[i] = [3]float64{tr.V0.R[0], tr.V0.R[1], tr.V0.R[2]}
		t.V1[i] = [3]float64{tr.V1.R[0], tr.V1.R[1], tr.V1.R[2]}
		t.V2[i] = [3]float64{tr.V2.R[0], tr.V2.R[1], tr.V2.R[2]}
		t.Normal[i] = [3]float64{c.N[0], c.N[1], c.N[2]}
	}
	return t
}

// distance returns the Euclidean distance between two 3-vectors
func distance(a, b []float64) float64 {
	return math.Sqrt(sqDist(a, b))
}
