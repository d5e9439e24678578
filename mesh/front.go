// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Front is the ordered circular sequence of boundary vertices P = [p0, ...,
// p(m-1)] the mesher advances (§3, §4.4). Neighbour indices wrap modulo the
// current length.
type Front struct {
	v []Vertex
}

// NewFront builds a front from an initial vertex sequence
func NewFront(v []Vertex) *Front {
	return &Front{v: v}
}

// Len returns the number of vertices currently on the front
func (f *Front) Len() int {
	return len(f.v)
}

// At returns the i-th vertex, wrapping modulo Len()
func (f *Front) At(i int) Vertex {
	m := len(f.v)
	return f.v[((i%m)+m)%m]
}

// Prev returns the front's vertex preceding index i (mod Len())
func (f *Front) Prev(i int) Vertex {
	return f.At(i - 1)
}

// Next returns the front's vertex following index i (mod Len())
func (f *Front) Next(i int) Vertex {
	return f.At(i + 1)
}

// Splice drops the vertex at position k and inserts ins there, producing
//
//	[p0, ..., p(k-1), ins[0], ..., ins[len(ins)-1], p(k+1), ..., p(m-1)]
//
// (§4.4). ins may be empty (nt=1 steps shrink the front by one). The new
// backing slice is built with a single pass of copy() calls rather than the
// source's Pstart/Pend auxiliary VertexArray objects (§9 design note).
func (f *Front) Splice(k int, ins []Vertex) {
	old := f.v
	m := len(old)
	newLen := m - 1 + len(ins)
	if newLen <= 0 {
		f.v = old[:0]
		return
	}
	nv := make([]Vertex, newLen)
	copy(nv, old[:k])
	copy(nv[k:], ins)
	copy(nv[k+len(ins):], old[k+1:])
	f.v = nv
}
