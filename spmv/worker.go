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
	"github.com/ajroetker/spmv/hwy"
	"github.com/ajroetker/spmv/spmv/internal/mergepath"
	"github.com/ajroetker/spmv/spmv/internal/segscan"
)

// rowRunSum computes sum(values[k] * x[cols[k]]) over one contiguous row
// run, gathering x through hwy.GatherIndex and accumulating with
// hwy.Mul/hwy.Add -- the same lane-chunked, scalar-tail shape as the
// teacher's vec.BaseDot, generalized from a dense dot product to an indexed
// (gathered) one.
func rowRunSum(values []float32, cols []int32, x []float32) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sum := hwy.Zero[float32]()
	lanes := sum.NumLanes()

	var i int
	for ; i+lanes <= n; i += lanes {
		idx := hwy.Load(cols[i:])
		xv := hwy.GatherIndex(x, idx)
		vv := hwy.Load(values[i:])
		sum = hwy.Add(sum, hwy.Mul(vv, xv))
	}

	total := float64(hwy.ReduceSum(sum))
	for ; i < n; i++ {
		total += float64(values[i]) * float64(x[cols[i]])
	}

	return total
}

// runRegion is the TileReducer (C2): it walks one worker's merge-path region
// [dStart, dEnd), emitting one segscan.Pair per row boundary crossed (an
// identity-valued "tail flag" pair) and one Pair per contiguous row-value
// run, and writes each row's finalized value to y as soon as its tail flag
// is scanned. tileItems bounds how many pairs accumulate in the reused
// scratch arena before a scan flush -- a throughput knob only, since Go has
// no cooperative-group lockstep barrier to size for.
func runRegion(m *Matrix, x []float32, y []float32, dStart, dEnd, tileItems, workerIdx int, finalizedBy []int) (first, last segscan.Pair) {
	n := len(m.RowIdx)
	segEnd := mergepath.SegEndOf(m.RowIdx)

	rowStart, valStart := mergepath.Search(dStart, m.RowDim, n, segEnd)
	rowEnd, valEnd := mergepath.Search(dEnd, m.RowDim, n, segEnd)

	row, val := rowStart, valStart
	carry := segscan.Pair{Row: int32(rowStart)}
	first = segscan.Pair{Row: int32(rowStart)}
	firstLatched := false

	if tileItems <= 0 {
		tileItems = 1
	}
	pairs := make([]segscan.Pair, 0, tileItems)
	tails := make([]bool, 0, tileItems)
	lastWasTail := false

	flush := func() {
		if len(pairs) == 0 {
			return
		}
		carry = segscan.ScanTile(pairs, carry)
		for i, tail := range tails {
			if !tail {
				continue
			}
			p := pairs[i]
			y[p.Row] = float32(p.Value)
			if finalizedBy != nil {
				finalizedBy[p.Row] = workerIdx
			}
			if p.Row == int32(rowStart) && !firstLatched {
				first.Value = p.Value
				firstLatched = true
			}
		}
		pairs = pairs[:0]
		tails = tails[:0]
	}

	for row < rowEnd || val < valEnd {
		if row < m.RowDim && segEnd(row) <= val {
			pairs = append(pairs, segscan.Pair{Row: int32(row)})
			tails = append(tails, true)
			row++
			lastWasTail = true
		} else {
			runEnd := min(segEnd(row), valEnd)
			sum := rowRunSum(m.Value[val:runEnd], m.ColIdx[val:runEnd], x)
			pairs = append(pairs, segscan.Pair{Row: int32(row), Value: sum})
			tails = append(tails, false)
			val = runEnd
			lastWasTail = false
		}
		if len(pairs) >= tileItems {
			flush()
		}
	}
	flush()

	// If the region's final local action closed rowStart's row, first
	// already carries this region's contribution to that row, so carry
	// must not restate it for fixup to add a second time. Zero it to an
	// identity contribution; only its Row is kept so a same-row neighbor
	// still combines cleanly. A later row closed at the end keeps its full
	// value in last, because fixup rewrites y for every row it sees there.
	last = carry
	if lastWasTail && last.Row == int32(rowStart) {
		last.Value = 0
	}
	return first, last
}
