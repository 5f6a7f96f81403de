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

// Package spmv computes a sparse-matrix x dense-vector product for matrices
// stored in coordinate (COO) form, using a load-balanced segmented
// reduction over a merge-path decomposition of the nonzero stream across
// goroutine workers.
package spmv

import (
	"errors"
	"fmt"
	"runtime"
)

// Matrix is a sparse matrix in coordinate (COO) form. RowIdx must be
// non-decreasing; Run never mutates Matrix or the vector it is multiplied
// against.
type Matrix struct {
	RowIdx, ColIdx []int32
	Value          []float32
	RowDim, ColDim int
}

// NNZ returns the number of stored nonzero entries.
func (m Matrix) NNZ() int { return len(m.Value) }

var (
	// ErrNonMonotonicRows is returned when Matrix.RowIdx is not
	// non-decreasing.
	ErrNonMonotonicRows = errors.New("spmv: RowIdx is not non-decreasing")

	// ErrColOutOfRange is returned when a ColIdx entry falls outside
	// [0, ColDim).
	ErrColOutOfRange = errors.New("spmv: ColIdx out of range")

	// ErrRowOutOfRange is returned when a RowIdx entry falls outside
	// [0, RowDim).
	ErrRowOutOfRange = errors.New("spmv: RowIdx out of range")
)

// Validate checks Matrix and the multiplicand length against the invariants
// Run requires. It does not check len(RowIdx) == len(ColIdx) == len(Value)
// -- a length mismatch is a programmer error on a fixed-shape input and
// panics instead, matching the teacher's convention for "slice too small"
// conditions (see matvec.BaseMatVec in the teacher's original source).
func Validate(m Matrix, xLen int) error {
	if len(m.RowIdx) != len(m.ColIdx) || len(m.RowIdx) != len(m.Value) {
		panic("spmv: RowIdx, ColIdx, and Value must have equal length")
	}
	if xLen < m.ColDim {
		panic("spmv: x shorter than ColDim")
	}

	var prev int32 = -1
	for k, r := range m.RowIdx {
		if r < prev {
			return fmt.Errorf("%w: at index %d", ErrNonMonotonicRows, k)
		}
		prev = r
		if int(r) >= m.RowDim || r < 0 {
			return fmt.Errorf("%w: RowIdx[%d]=%d, RowDim=%d", ErrRowOutOfRange, k, r, m.RowDim)
		}
		if c := m.ColIdx[k]; int(c) >= m.ColDim || c < 0 {
			return fmt.Errorf("%w: ColIdx[%d]=%d, ColDim=%d", ErrColOutOfRange, k, c, m.ColDim)
		}
	}
	return nil
}

// Config tunes engine performance; every field affects throughput only, not
// correctness.
type Config struct {
	// WorkersPerGroup and ItemsPerLane size the per-region scratch arena a
	// worker flushes through the ReduceByKey scan: TileItems =
	// WorkersPerGroup * ItemsPerLane. Stands in for the reference design's
	// cooperative-group thread count and per-thread item count; Go has no
	// lockstep group to size, so this only bounds scratch reuse.
	WorkersPerGroup int
	ItemsPerLane    int

	// FixupWorkersPerGroup and FixupItemsPerLane size BoundaryFixup's tile
	// the same way, over blockPartials instead of the nonzero stream.
	FixupWorkersPerGroup int
	FixupItemsPerLane    int

	// OverSubscriptionFactor scales the default Workers count above
	// GOMAXPROCS, since merge-path regions are cheap to split further than
	// one per core.
	OverSubscriptionFactor int

	// Workers is the number of goroutine regions the merge path is split
	// into. Zero selects runtime.GOMAXPROCS(0) * OverSubscriptionFactor,
	// capped by the path length.
	Workers int

	// Iterations is how many times cmd/spmvbench repeats Run against a
	// reused Engine when benchmarking; Run itself ignores it.
	Iterations int

	// CollectStats, when true, makes RunStats populate a Stats value recording
	// which worker finalized each row (testable property 5: tail-flag
	// uniqueness). Off by default so production callers pay nothing for it.
	CollectStats bool
}

// DefaultConfig returns the Config used when a zero Config is passed to Run.
func DefaultConfig() Config {
	return Config{
		WorkersPerGroup:        64,
		ItemsPerLane:           10,
		FixupWorkersPerGroup:   256,
		FixupItemsPerLane:      4,
		OverSubscriptionFactor: 4,
		Iterations:             1,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.WorkersPerGroup <= 0 {
		c.WorkersPerGroup = d.WorkersPerGroup
	}
	if c.ItemsPerLane <= 0 {
		c.ItemsPerLane = d.ItemsPerLane
	}
	if c.FixupWorkersPerGroup <= 0 {
		c.FixupWorkersPerGroup = d.FixupWorkersPerGroup
	}
	if c.FixupItemsPerLane <= 0 {
		c.FixupItemsPerLane = d.FixupItemsPerLane
	}
	if c.OverSubscriptionFactor <= 0 {
		c.OverSubscriptionFactor = d.OverSubscriptionFactor
	}
	if c.Iterations <= 0 {
		c.Iterations = d.Iterations
	}
	return c
}

// TileItems is the C2 scratch-arena flush threshold.
func (c Config) TileItems() int { return c.WorkersPerGroup * c.ItemsPerLane }

// FixupTileItems is the C4 scratch-arena flush threshold.
func (c Config) FixupTileItems() int { return c.FixupWorkersPerGroup * c.FixupItemsPerLane }

// workerCount picks W given the merge path's total length, defaulting to
// GOMAXPROCS * OverSubscriptionFactor and never launching more workers than
// there is path to divide.
func (c Config) workerCount(pathLen int) int {
	w := c.Workers
	if w <= 0 {
		w = runtime.GOMAXPROCS(0) * c.OverSubscriptionFactor
	}
	if w > pathLen {
		w = pathLen
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Stats is optional per-run instrumentation, populated only when
// Config.CollectStats is set. It exists to drive testable property 5
// (tail-flag uniqueness) without costing anything when disabled.
type Stats struct {
	// FinalizedBy maps each row to the worker index whose tail flag wrote
	// it, or -1 for a row finalized by BoundaryFixup.
	FinalizedBy []int
}
