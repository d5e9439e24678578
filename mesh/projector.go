// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gomarch/pot"
	"github.com/cpmech/gosl/io"
)

// projMaxIter is the hard iteration cap of the Newton-along-gradient
// projection (§4.3)
const projMaxIter = 100

// projWarnIter is the iteration count at or above which a non-converging
// projection logs a warning but is still accepted (§4.3, §7
// ProjectionNonConvergent: a soft failure, never an error return)
const projWarnIter = 90

// projTol is the squared-step-size convergence tolerance
const projTol = 1e-12

// Project finds r* near q with |Φ(r*)| small, by repeated steps
// r_{i+1} = r_i − Φ(r_i)・∇Φ(r_i)/‖∇Φ(r_i)‖², and returns its vertex frame
// (§4.3). Non-convergence after projWarnIter iterations is logged and does
// not abort the run; the mesher proceeds with the last iterate.
func Project(q []float64, p pot.Potential) Vertex {
	r := []float64{q[0], q[1], q[2]}
	ri := []float64{0, 0, 0}
	nIter := 0
	for sqDist(r, ri) > projTol && nIter < projMaxIter {
		ri[0], ri[1], ri[2] = r[0], r[1], r[2]
		g := p.Grad(ri)
		grsq := g[0]*g[0] + g[1]*g[1] + g[2]*g[2]
		s := p.Value(ri)
		r[0] = ri[0] - s*g[0]/grsq
		r[1] = ri[1] - s*g[1]/grsq
		r[2] = ri[2] - s*g[2]/grsq
		nIter++
	}
	if nIter >= projWarnIter {
		io.Pfyel("warning: projection did not converge (%d iterations)\n", nIter)
	}
	return NewVertex(r, p)
}

// sqDist returns the squared Euclidean distance between two 3-vectors
func sqDist(a, b []float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return dx*dx + dy*dy + dz*dz
}
