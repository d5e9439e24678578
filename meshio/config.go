// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio reads mesh-run configuration files and writes the
// resulting triangle table out to common 3-D interchange formats. Neither
// operation renders a pixel; both are pure data I/O, grounded on gofem's
// inp.ReadMat (config) and tools/GenVtu.go (export) respectively.
package meshio

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gomarch/pot"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// MeshConfig is the on-disk description of one mesh run, named after the
// same Model/Prms shape inp.Material uses for one constitutive model
type MeshConfig struct {
	Delta        float64  `json:"delta"`
	MaxTriangles int64    `json:"maxTriangles"`
	Potential    string   `json:"potential"`
	Prms         fun.Prms `json:"prms"`
}

// ReadConfig reads a .mesh.json file and flattens its named parameters into
// the positional slice mesh.Discretize expects, in the order pot.Make needs
// them (§4.7). Mirrors inp.ReadMat's read-file → unmarshal → derive shape.
func ReadConfig(dir, fn string) (cfg MeshConfig, params []float64, err error) {
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return
	}
	err = json.Unmarshal(b, &cfg)
	if err != nil {
		return
	}
	params, err = flattenParams(cfg.Potential, cfg.Prms)
	return
}

// flattenParams converts named parameters into the positional order
// pot.Make expects for the given kind. Missing names default to zero,
// mirroring pot.Make's own optional-Ω handling for BinaryRoche and
// MisalignedBinaryRoche.
func flattenParams(kind string, prms fun.Prms) ([]float64, error) {
	names, err := pot.ParamNames(kind)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}
	byName := make(map[string]float64, len(prms))
	for _, p := range prms {
		if !known[p.N] {
			return nil, chk.Err("mesh config: unknown parameter among %v for potential %q", prmNames(prms), kind)
		}
		byName[p.N] = p.V
	}
	out := make([]float64, len(names))
	for i, n := range names {
		v, ok := byName[n]
		if !ok {
			continue // left at zero, same default as pot.Make's arity fallback
		}
		out[i] = v
	}
	return out, nil
}

// prmNames extracts the names out of a fun.Prms for error messages
func prmNames(prms fun.Prms) []string {
	names := make([]string, len(prms))
	for i, p := range prms {
		names[i] = p.N
	}
	return names
}
