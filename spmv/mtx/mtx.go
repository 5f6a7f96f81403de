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

// Package mtx reads sparse matrices in the NIST MatrixMarket coordinate
// format into spmv.Matrix, canonicalizing row order since on-disk entries
// are not required to be sorted by row the way spmv.Matrix requires.
package mtx

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ajroetker/spmv/hwy/contrib/algo"
	"github.com/ajroetker/spmv/spmv"
)

type canonEntry struct {
	row, col int32
	value    float32
}

// Read parses a MatrixMarket coordinate-format stream ("%%MatrixMarket
// matrix coordinate real general" and the "pattern"/"integer" field
// variants) into a spmv.Matrix. Entries may arrive in any order; Read
// canonicalizes them into row-sorted COO order via a counting sort.
func Read(r io.Reader) (spmv.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var rowDim, colDim int
	haveDims := false
	pattern := false

	var entries []canonEntry

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "%%MatrixMarket") {
			header := strings.Fields(line)
			if len(header) >= 4 && strings.EqualFold(header[3], "pattern") {
				pattern = true
			}
			continue
		}
		if strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if !haveDims {
			if len(fields) < 3 {
				return spmv.Matrix{}, fmt.Errorf("mtx: malformed size line %q", line)
			}
			var err error
			rowDim, err = strconv.Atoi(fields[0])
			if err != nil {
				return spmv.Matrix{}, fmt.Errorf("mtx: size line rows: %w", err)
			}
			colDim, err = strconv.Atoi(fields[1])
			if err != nil {
				return spmv.Matrix{}, fmt.Errorf("mtx: size line cols: %w", err)
			}
			nnz, err := strconv.Atoi(fields[2])
			if err != nil {
				return spmv.Matrix{}, fmt.Errorf("mtx: size line nnz: %w", err)
			}
			haveDims = true
			entries = make([]canonEntry, 0, nnz)
			continue
		}

		if len(fields) < 2 {
			return spmv.Matrix{}, fmt.Errorf("mtx: malformed entry line %q", line)
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return spmv.Matrix{}, fmt.Errorf("mtx: entry row: %w", err)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return spmv.Matrix{}, fmt.Errorf("mtx: entry col: %w", err)
		}

		value := float32(1)
		if !pattern {
			if len(fields) < 3 {
				return spmv.Matrix{}, fmt.Errorf("mtx: entry missing value %q", line)
			}
			v, err := strconv.ParseFloat(fields[2], 32)
			if err != nil {
				return spmv.Matrix{}, fmt.Errorf("mtx: entry value: %w", err)
			}
			value = float32(v)
		}

		// MatrixMarket indices are 1-based.
		entries = append(entries, canonEntry{row: int32(row - 1), col: int32(col - 1), value: value})
	}
	if err := sc.Err(); err != nil {
		return spmv.Matrix{}, fmt.Errorf("mtx: scan: %w", err)
	}
	if !haveDims {
		return spmv.Matrix{}, fmt.Errorf("mtx: missing size line")
	}

	rowIdx, colIdx, val := canonicalize(rowDim, entries)
	return spmv.Matrix{RowIdx: rowIdx, ColIdx: colIdx, Value: val, RowDim: rowDim, ColDim: colDim}, nil
}

// canonicalize performs a stable counting sort of entries by row, using
// algo.BasePrefixSum to turn per-row bucket counts into bucket start
// offsets -- the same prefix-sum idiom the teacher's algo package uses for
// posting-list delta decoding, repurposed here to turn "count of entries
// per row" into "running insertion offset per row".
func canonicalize(rowDim int, entries []canonEntry) ([]int32, []int32, []float32) {
	counts := make([]int64, rowDim)
	for _, e := range entries {
		counts[e.row]++
	}

	// After BasePrefixSum, counts[r] holds the number of entries in rows
	// 0..r inclusive, so counts[r-1] is the insertion cursor for row r.
	algo.BasePrefixSum(counts)

	n := len(entries)
	rowIdx := make([]int32, n)
	colIdx := make([]int32, n)
	val := make([]float32, n)
	cursor := make([]int64, rowDim)
	for r := 1; r < rowDim; r++ {
		cursor[r] = counts[r-1]
	}
	for _, e := range entries {
		i := cursor[e.row]
		cursor[e.row]++
		rowIdx[i] = e.row
		colIdx[i] = e.col
		val[i] = e.value
	}
	return rowIdx, colIdx, val
}
