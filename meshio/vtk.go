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

// pointKey quantizes a position to a fixed number of decimals so nearly
// coincident triangle corners collapse onto the same VTK/OBJ point
func pointKey(p [3]float64) string {
	const scale = 1e9
	return fmt.Sprintf("%.0f_%.0f_%.0f", p[0]*scale, p[1]*scale, p[2]*scale)
}

// pointPool deduplicates triangle-corner positions and assigns each a
// stable 0-based index in emission order
type pointPool struct {
	index map[string]int
	pts   [][3]float64
}

func newPointPool() *pointPool {
	return &pointPool{index: make(map[string]int)}
}

func (o *pointPool) id(p [3]float64) int {
	k := pointKey(p)
	if i, ok := o.index[k]; ok {
		return i
	}
	i := len(o.pts)
	o.index[k] = i
	o.pts = append(o.pts, p)
	return i
}

// WriteVTK serializes a triangle table as a legacy ASCII VTK POLYDATA file,
// grounded on tools/GenVtu.go's buffer-then-write-file shape. This is data
// export, not plotting: no pixel is produced.
func WriteVTK(fn string, tab mesh.Table) error {
	pool := newPointPool()
	faces := make([][3]int, tab.Len())
	for i := 0; i < tab.Len(); i++ {
		faces[i] = [3]int{pool.id(tab.V0[i]), pool.id(tab.V1[i]), pool.id(tab.V2[i])}
	}

	var buf bytes.Buffer
	buf.WriteString("# vtk DataFile Version 3.0\n")
	buf.WriteString("gomarch equipotential mesh\n")
	buf.WriteString("ASCII\n")
	buf.WriteString("DATASET POLYDATA\n")
	fmt.Fprintf(&buf, "POINTS %d float\n", len(pool.pts))
	for _, p := range pool.pts {
		fmt.Fprintf(&buf, "%.15g %.15g %.15g\n", p[0], p[1], p[2])
	}
	fmt.Fprintf(&buf, "POLYGONS %d %d\n", len(faces), 4*len(faces))
	for _, f := range faces {
		fmt.Fprintf(&buf, "3 %d %d %d\n", f[0], f[1], f[2])
	}

	return io.WriteFile(fn, &buf)
}
