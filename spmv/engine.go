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

package spmv

import (
	"github.com/ajroetker/spmv/hwy/contrib/workerpool"
	"github.com/ajroetker/spmv/spmv/internal/segscan"
)

// Engine runs the segmented-reduction SpMV algorithm against a reusable
// worker pool. Create one with NewEngine and Close it when done; a single
// Engine may run many matrices (or the same matrix repeatedly, as
// cmd/spmvbench does for Config.Iterations) without re-spawning goroutines
// each time -- mirrors the teacher's workerpool.Pool reuse rationale.
type Engine struct {
	cfg  Config
	pool *workerpool.Pool
}

// NewEngine creates an Engine with its own persistent worker pool sized from
// cfg.Workers (or GOMAXPROCS if unset; the number of merge-path regions is
// still GOMAXPROCS*OverSubscriptionFactor, spread over the pool).
func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	workers := cfg.Workers
	if workers <= 0 {
		workers = 0 // workerpool.New(0) defaults to GOMAXPROCS
	}
	return &Engine{cfg: cfg, pool: workerpool.New(workers)}
}

// Close shuts down the Engine's worker pool. Safe to call more than once.
func (e *Engine) Close() {
	e.pool.Close()
}

// Workers reports the size of the Engine's persistent worker pool.
func (e *Engine) Workers() int {
	return e.pool.NumWorkers()
}

// Run computes y = m * x. It returns y of length m.RowDim; on validation
// error, y is nil.
func (e *Engine) Run(m Matrix, x []float32) ([]float32, error) {
	return e.RunStats(m, x, nil)
}

// RunStats is Run plus optional instrumentation: when stats is non-nil and
// e.cfg.CollectStats is true, it is populated with which worker finalized
// each row (-1 for BoundaryFixup).
func (e *Engine) RunStats(m Matrix, x []float32, stats *Stats) ([]float32, error) {
	if err := Validate(m, len(x)); err != nil {
		return nil, err
	}

	y := make([]float32, m.RowDim)
	if m.RowDim == 0 || len(m.RowIdx) == 0 {
		return y, nil
	}

	var finalizedBy []int
	if e.cfg.CollectStats && stats != nil {
		finalizedBy = make([]int, m.RowDim)
		for i := range finalizedBy {
			finalizedBy[i] = -1
		}
	}

	n := len(m.RowIdx)
	pathLen := m.RowDim + n
	workers := e.cfg.workerCount(pathLen)

	diag := func(w int) int { return w * pathLen / workers }

	blockPartials := make([]segscan.Pair, 2*workers)
	tileItems := e.cfg.TileItems()

	e.pool.ParallelForAtomic(workers, func(w int) {
		dStart, dEnd := diag(w), diag(w+1)
		first, last := runRegion(&m, x, y, dStart, dEnd, tileItems, w, finalizedBy)
		blockPartials[2*w] = first
		blockPartials[2*w+1] = last
	})

	fixup(blockPartials, y, e.cfg.FixupTileItems(), finalizedBy)

	if finalizedBy != nil {
		stats.FinalizedBy = finalizedBy
	}

	return y, nil
}

// Run computes y = m * x with a one-shot Engine built from cfg (a zero
// Config selects DefaultConfig). Prefer NewEngine directly when running many
// matrices, to reuse the worker pool.
func Run(m Matrix, x []float32, cfg Config) ([]float32, error) {
	e := NewEngine(cfg)
	defer e.Close()
	return e.Run(m, x)
}
