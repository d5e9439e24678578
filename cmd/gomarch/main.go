// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gomarch triangulates the zero level set of an implicit potential
// and writes the resulting mesh to a VTK or OBJ file.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/cpmech/gomarch/mesh"
	"github.com/cpmech/gomarch/meshio"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors, mirroring the teacher's main.go recover block
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// flags
	delta := flag.Float64("delta", 0.1, "target triangle edge length")
	maxTri := flag.Int64("max", 0, "triangle budget; 0 means unlimited")
	potential := flag.String("pot", "Sphere", "potential kind: Sphere, BinaryRoche, MisalignedBinaryRoche, RotateRoche, Torus, Heart")
	paramsCsv := flag.String("params", "1.0", "comma-separated positional potential parameters")
	configFn := flag.String("config", "", "mesh-config .mesh.json file (overrides -delta/-max/-pot/-params)")
	batchGlob := flag.String("batch", "", "glob of .mesh.json files to mesh concurrently instead of a single run")
	out := flag.String("out", "mesh.vtk", "output file; .obj writes Wavefront OBJ, anything else writes VTK")
	workers := flag.Int("workers", 4, "worker-pool size for -batch")
	flag.Parse()

	if *batchGlob != "" {
		runBatch(*batchGlob, *workers)
		return
	}

	var d float64
	var mx int64
	var pot string
	var params []float64

	if *configFn != "" {
		cfg, p, err := meshio.ReadConfig(".", *configFn)
		if err != nil {
			panic(err)
		}
		d, mx, pot, params = cfg.Delta, cfg.MaxTriangles, cfg.Potential, p
	} else {
		d, mx, pot = *delta, *maxTri, *potential
		for _, s := range strings.Split(*paramsCsv, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				panic(err)
			}
			params = append(params, v)
		}
	}

	io.Pf("delta=%v max=%v potential=%q params=%v\n", d, mx, pot, params)

	tab, err := mesh.Discretize(d, mx, pot, params)
	if err != nil {
		panic(err)
	}
	io.Pforan("triangles = %d\n", tab.Len())

	if err := writeTable(*out, tab); err != nil {
		panic(err)
	}
}

// writeTable dispatches to WriteOBJ or WriteVTK based on file extension
func writeTable(fn string, tab mesh.Table) error {
	if strings.EqualFold(filepath.Ext(fn), ".obj") {
		return meshio.WriteOBJ(fn, tab)
	}
	return meshio.WriteVTK(fn, tab)
}

// runBatch meshes every config file matched by glob concurrently across a
// bounded worker pool of goroutines (§7 of the expanded spec): independent
// mesh runs, never concurrency inside a single run. Plain channels/sync are
// used here instead of gosl/mpi because this fans out in-process, single
// -machine work, not a distributed solve across MPI ranks (see DESIGN.md).
func runBatch(glob string, nworkers int) {
	files, err := filepath.Glob(glob)
	if err != nil {
		panic(err)
	}
	if nworkers < 1 {
		nworkers = 1
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	for w := 0; w < nworkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for fn := range jobs {
				dir, base := filepath.Split(fn)
				cfg, params, err := meshio.ReadConfig(dir, base)
				if err != nil {
					io.PfRed("%s: %v\n", fn, err)
					continue
				}
				tab, err := mesh.Discretize(cfg.Delta, cfg.MaxTriangles, cfg.Potential, params)
				if err != nil {
					io.PfRed("%s: %v\n", fn, err)
					continue
				}
				outFn := strings.TrimSuffix(fn, filepath.Ext(fn)) + ".vtk"
				if err := meshio.WriteVTK(outFn, tab); err != nil {
					io.PfRed("%s: %v\n", fn, err)
					continue
				}
				io.Pforan("%s -> %s (%d triangles)\n", fn, outFn, tab.Len())
			}
		}()
	}
	for _, fn := range files {
		jobs <- fn
	}
	close(jobs)
	wg.Wait()
}
