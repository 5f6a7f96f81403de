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

// Package mergepath implements the binary search that splits the combined
// (row, value) path used by a segmented SpMV reduction into disjoint,
// evenly sized worker regions.
package mergepath

// SegEnd reports seg_end[row]: the index of the first nonzero belonging to
// a row greater than row, i.e. the upper-bound rank of row in a
// non-decreasing row-index array. Callers typically back this with a
// binary search over a COO matrix's RowIdx slice.
type SegEnd func(row int) int

// Search finds the split point (aOff, bOff) at diagonal d on the merge path
// formed by merging the row-boundary sequence A = segEnd (length rowDim)
// with the value-index identity sequence B = 0, 1, ..., n-1.
//
// It returns the unique (aOff, bOff) with aOff+bOff == d, 0 <= aOff <= rowDim,
// 0 <= bOff <= n, such that:
//
//	if aOff > 0 && bOff < n: segEnd(aOff-1) <= bOff
//	if bOff > 0 && aOff < rowDim: segEnd(aOff) > bOff-1
//
// Ties favor the segment side: when segEnd(row) == bOff, the split moves
// aOff past that row rather than consuming the value first. This is load
// bearing -- it is what makes an empty row terminate before attributing any
// value to it. Do not change the tie-break direction.
func Search(d, rowDim, n int, segEnd SegEnd) (aOff, bOff int) {
	lo := max(0, d-n)
	hi := min(rowDim, d)

	for lo < hi {
		mid := lo + (hi-lo+1)/2
		// segEnd(mid-1) <= B[d-mid] == d-mid: segment side wins ties, so
		// advancing mid (more rows consumed) is preferred when equal.
		if segEnd(mid-1) <= d-mid {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo, d - lo
}

// UpperBound returns the number of entries in rowIdx (assumed non-decreasing)
// that are <= row, i.e. the conceptual seg_end[row] for a COO matrix whose
// row indices have not been materialized into a separate boundary array.
func UpperBound(rowIdx []int32, row int32) int {
	lo, hi := 0, len(rowIdx)
	for lo < hi {
		mid := (lo + hi) / 2
		if rowIdx[mid] > row {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// SegEndOf builds a SegEnd view backed directly by a COO matrix's row-index
// array, avoiding a materialized seg_end[] of length rowDim.
func SegEndOf(rowIdx []int32) SegEnd {
	return func(row int) int {
		return UpperBound(rowIdx, int32(row))
	}
}
