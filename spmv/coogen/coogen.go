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

// Package coogen builds synthetic COO matrices -- grid stencils and wheel
// graphs -- for exercising and benchmarking the spmv engine, standing in
// for the reference benchmark harness's graph generators (named out of
// scope for the core engine itself in the distilled spec, but needed by any
// complete repository's tests and benchmarks).
package coogen

import "github.com/ajroetker/spmv/spmv"

// entry is a COO triple before packing into a spmv.Matrix.
type entry struct {
	row, col int32
	value    float32
}

func build(rowDim, colDim int, entries []entry) spmv.Matrix {
	// Entries are copied in the order given, without sorting: the
	// generators below already emit rows in non-decreasing order, which
	// satisfies spmv.Matrix's RowIdx invariant, so a counting sort (as
	// mtx.Read uses for on-disk input) is not needed here.
	rows := make([]int32, len(entries))
	cols := make([]int32, len(entries))
	vals := make([]float32, len(entries))
	for i, e := range entries {
		rows[i] = e.row
		cols[i] = e.col
		vals[i] = e.value
	}
	return spmv.Matrix{RowIdx: rows, ColIdx: cols, Value: vals, RowDim: rowDim, ColDim: colDim}
}

// Grid2D5Point builds the COO matrix for a side x side 2D grid with a
// 5-point stencil (self, up, down, left, right -- whichever exist), each
// entry weighted weight. Node (r, c) has id r*side+c.
func Grid2D5Point(side int, weight float32) spmv.Matrix {
	n := side * side
	var entries []entry
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			id := int32(r*side + c)
			row := []entry{{id, id, weight}}
			if r > 0 {
				row = append(row, entry{id, id - int32(side), weight})
			}
			if c > 0 {
				row = append(row, entry{id, id - 1, weight})
			}
			if c < side-1 {
				row = append(row, entry{id, id + 1, weight})
			}
			if r < side-1 {
				row = append(row, entry{id, id + int32(side), weight})
			}
			entries = append(entries, row...)
		}
	}
	return build(n, n, entries)
}

// Grid3D7Point builds the COO matrix for a side x side x side 3D grid with
// a 7-point stencil (self plus the six axis neighbors that exist). Node
// (x, y, z) has id x*side*side + y*side + z.
func Grid3D7Point(side int, weight float32) spmv.Matrix {
	n := side * side * side
	var entries []entry
	at := func(x, y, z int) int32 { return int32(x*side*side + y*side + z) }
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			for z := 0; z < side; z++ {
				id := at(x, y, z)
				row := []entry{{id, id, weight}}
				if x > 0 {
					row = append(row, entry{id, at(x-1, y, z), weight})
				}
				if x < side-1 {
					row = append(row, entry{id, at(x+1, y, z), weight})
				}
				if y > 0 {
					row = append(row, entry{id, at(x, y-1, z), weight})
				}
				if y < side-1 {
					row = append(row, entry{id, at(x, y+1, z), weight})
				}
				if z > 0 {
					row = append(row, entry{id, at(x, y, z-1), weight})
				}
				if z < side-1 {
					row = append(row, entry{id, at(x, y, z+1), weight})
				}
				entries = append(entries, row...)
			}
		}
	}
	return build(n, n, entries)
}

// Wheel builds a wheel graph of spokes+1 nodes: node 0 is the hub,
// connected to every rim node 1..spokes, and the rim nodes form a cycle.
// Rows are symmetric (both directions of each edge are stored) plus a
// self-loop per node, so it behaves like an unweighted graph Laplacian's
// nonzero pattern.
func Wheel(spokes int, weight float32) spmv.Matrix {
	n := spokes + 1
	var entries []entry
	add := func(a, b int32) {
		entries = append(entries, entry{a, b, weight})
	}

	// Hub row: self-loop plus every spoke.
	add(0, 0)
	for s := 1; s <= spokes; s++ {
		add(0, int32(s))
	}

	for s := 1; s <= spokes; s++ {
		id := int32(s)
		prev := int32((s-2+spokes)%spokes + 1)
		next := int32(s%spokes + 1)
		add(id, 0)
		if prev != id {
			add(id, prev)
		}
		add(id, id)
		if next != id && next != prev {
			add(id, next)
		}
	}

	return build(n, n, entries)
}
