// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bytes"
	"fmt"

	"github.com/cpmech/gomarch/mesh"
	"github.com/cpmech/gosl/io"
)

// WriteOBJ serializes a triangle table as a minimal Wavefront OBJ (v/f
// lines only), for quick inspection in off-the-shelf 3-D viewers
func WriteOBJ(fn string, tab mesh.Table) error {
	pool := newPointPool()
	faces := make([][3]int, tab.Len())
	for i := 0; i < tab.Len(); i++ {
		faces[i] = [3]int{pool.id(tab.V0[i]), pool.id(tab.V1[i]), pool.id(tab.V2[i])}
	}

	var buf bytes.Buffer
	buf.WriteString("# gomarch equipotential mesh\n")
	for _, p := range pool.pts {
		fmt.Fprintf(&buf, "v %.15g %.15g %.15g\n", p[0], p[1], p[2])
	}
	for _, f := range faces {
		// OBJ face indices are 1-based
		fmt.Fprintf(&buf, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
	}

	return io.WriteFile(fn, &buf)
}
