// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pot implements the catalogue of implicit scalar potentials whose
// zero level set the mesh package triangulates: single and binary Roche
// potentials (aligned, misaligned, rotating) plus the Sphere, Torus and
// Heart analytic surfaces used for testing and demonstration.
package pot

import (
	"errors"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Potential evaluates an implicit scalar field Φ(r) and its gradient ∇Φ(r).
// Implementations are immutable once constructed by Make.
type Potential interface {

	// Value returns Φ(r)
	Value(r []float64) float64

	// Grad returns ∇Φ(r) = (∂Φ/∂x, ∂Φ/∂y, ∂Φ/∂z)
	Grad(r []float64) []float64

	// GetPrms returns an example parameter set, named and documented, in
	// the same order Make expects them positionally
	GetPrms() fun.Prms
}

// sentinel errors. InvalidPotential and InvalidArity are the only two fatal
// construction failures (spec §7); everything else (non-convergent
// projection, exhausted triangle budget) is handled inside mesh, not here.
var (
	ErrInvalidPotential = errors.New("unavailable potential")
	ErrInvalidArity     = errors.New("wrong number of parameters for this type of potential")
)

// arities lists the accepted parameter-vector lengths for each kind, in the
// order checked: the first length never needs defaulting, the second (when
// present) defaults its trailing parameter to zero
var arities = map[string][]int{
	"Sphere":                {1},
	"BinaryRoche":           {4, 3},
	"MisalignedBinaryRoche": {6, 5},
	"RotateRoche":           {2},
	"Torus":                 {2},
	"Heart":                 {1},
}

// Make builds a Potential of the given kind from a positional parameter
// vector. It is the sole constructor of the registry (§4.1): dispatch on
// kind happens exactly once, here, not on every Value/Grad call.
func Make(kind string, params []float64) (Potential, error) {
	accepted, ok := arities[kind]
	if !ok {
		return nil, chk.Err("%v: kind=%q", ErrInvalidPotential, kind)
	}
	n := len(params)
	full := accepted[0]
	switch {
	case n == full:
		// ok, nothing to default
	case len(accepted) > 1 && n == accepted[1]:
		params = withDefaultTrailingZero(params, full)
	default:
		return nil, chk.Err("%v: kind=%q got=%d want=%v", ErrInvalidArity, kind, n, accepted)
	}
	switch kind {
	case "Sphere":
		return NewSphere(params), nil
	case "BinaryRoche":
		return NewBinaryRoche(params), nil
	case "MisalignedBinaryRoche":
		return NewMisalignedBinaryRoche(params), nil
	case "RotateRoche":
		return NewRotateRoche(params), nil
	case "Torus":
		return NewTorus(params), nil
	case "Heart":
		return NewHeart(params), nil
	}
	return nil, chk.Err("%v: kind=%q", ErrInvalidPotential, kind)
}

// withDefaultTrailingZero copies params into a full-length slice, leaving
// the missing trailing entry (e.g. Ω) at zero
func withDefaultTrailingZero(params []float64, full int) []float64 {
	out := make([]float64, full)
	copy(out, params)
	return out
}

// paramNames gives the canonical, full-arity, positional parameter names
// for each kind, in the order Make expects them. It exists so callers that
// carry named parameters (meshio.MeshConfig's fun.Prms) can flatten them
// into the positional slice Make takes, without constructing a throwaway
// Potential just to call GetPrms.
var paramNames = map[string][]string{
	"Sphere":                {"R"},
	"BinaryRoche":           {"D", "q", "F", "Omega"},
	"MisalignedBinaryRoche": {"D", "q", "F", "theta", "phi", "Omega"},
	"RotateRoche":           {"F", "OmegaNorm"},
	"Torus":                 {"Rmajor", "Rminor"},
	"Heart":                 {"unused"},
}

// ParamNames returns the full-arity positional parameter names for kind
func ParamNames(kind string) ([]string, error) {
	names, ok := paramNames[kind]
	if !ok {
		return nil, chk.Err("%v: kind=%q", ErrInvalidPotential, kind)
	}
	return names, nil
}
