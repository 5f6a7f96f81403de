// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command spmvbench runs the spmv engine against a synthetic or
// MatrixMarket-loaded matrix, checks the result against the scalar
// reference implementation, and reports throughput.
//
// Usage:
//
//	spmvbench -graph grid2d -side 512 -workers 8
//	spmvbench -mtx matrix.mtx -iterations 20
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ajroetker/spmv/hwy"
	"github.com/ajroetker/spmv/spmv"
	"github.com/ajroetker/spmv/spmv/coogen"
	"github.com/ajroetker/spmv/spmv/mtx"
	"github.com/ajroetker/spmv/spmv/refcheck"
)

var (
	graphKind  = flag.String("graph", "grid2d", "Synthetic graph kind: grid2d, grid3d, wheel (ignored if -mtx is set)")
	side       = flag.Int("side", 256, "Grid side length for grid2d/grid3d")
	spokes     = flag.Int("spokes", 1000, "Spoke count for wheel")
	mtxPath    = flag.String("mtx", "", "Path to a MatrixMarket file; overrides -graph")
	workers    = flag.Int("workers", 0, "Merge-path worker regions, also the pool size (0 selects GOMAXPROCS * oversubscription regions on a GOMAXPROCS pool)")
	iterations = flag.Int("iterations", 10, "Number of timed Run calls against the same Engine")
	verify     = flag.Bool("verify", true, "Compare output against refcheck.Run")
)

func main() {
	flag.Parse()

	m, err := loadMatrix()
	if err != nil {
		fmt.Fprintf(os.Stderr, "spmvbench: %v\n", err)
		os.Exit(1)
	}

	x := make([]float32, m.ColDim)
	rng := rand.New(rand.NewSource(1))
	for i := range x {
		x[i] = rng.Float32()
	}

	cfg := spmv.DefaultConfig()
	cfg.Workers = *workers
	cfg.Iterations = *iterations

	e := spmv.NewEngine(cfg)
	defer e.Close()

	var y []float32
	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		y, err = e.Run(m, x)
		if err != nil {
			fmt.Fprintf(os.Stderr, "spmvbench: run %d: %v\n", i, err)
			os.Exit(1)
		}
	}
	elapsed := time.Since(start)

	if *verify {
		if err := refcheck.Compare(m, x, y, 1e-3); err != nil {
			fmt.Fprintf(os.Stderr, "spmvbench: verification failed: %v\n", err)
			os.Exit(1)
		}
	}

	perIter := elapsed / time.Duration(cfg.Iterations)
	nnz := m.NNZ()
	gnnzPerSec := float64(nnz) / perIter.Seconds() / 1e9
	fmt.Printf("rows=%d cols=%d nnz=%d workers=%d iterations=%d\n", m.RowDim, m.ColDim, nnz, e.Workers(), cfg.Iterations)
	fmt.Printf("dispatch=%s width=%d bytes\n", hwy.CurrentLevel(), hwy.CurrentWidth())
	fmt.Printf("total=%v per-iteration=%v throughput=%.3f GNNZ/s\n", elapsed, perIter, gnnzPerSec)
}

func loadMatrix() (spmv.Matrix, error) {
	if *mtxPath != "" {
		f, err := os.Open(*mtxPath)
		if err != nil {
			return spmv.Matrix{}, fmt.Errorf("open %s: %w", *mtxPath, err)
		}
		defer f.Close()
		return mtx.Read(f)
	}

	switch *graphKind {
	case "grid2d":
		return coogen.Grid2D5Point(*side, 1), nil
	case "grid3d":
		return coogen.Grid3D7Point(*side, 1), nil
	case "wheel":
		return coogen.Wheel(*spokes, 1), nil
	default:
		return spmv.Matrix{}, fmt.Errorf("unknown -graph %q (want grid2d, grid3d, or wheel)", *graphKind)
	}
}
