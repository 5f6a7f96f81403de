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

// Package refcheck computes a scalar reference SpMV and compares it against
// the engine's output within a tolerance, for cmd/spmvbench and tests that
// want more confidence than bitwise equality can give across differently
// ordered reductions.
package refcheck

import (
	"fmt"

	"github.com/ajroetker/spmv/hwy/contrib/vec"
	"github.com/ajroetker/spmv/spmv"
)

// Run computes y = m * x sequentially, one row's dot product at a time, the
// same row-at-a-time shape as a dense BaseMatVec but walking each row's
// sparse run directly instead of a full-width column loop.
func Run(m spmv.Matrix, x []float32) []float32 {
	y := make([]float32, m.RowDim)
	n := len(m.RowIdx)
	row := 0
	for k := 0; k < n; {
		row = int(m.RowIdx[k])
		j := k
		for j < n && int(m.RowIdx[j]) == row {
			j++
		}
		y[row] = vec.BaseDot(m.Value[k:j], gatherX(x, m.ColIdx[k:j]))
		k = j
	}
	return y
}

func gatherX(x []float32, cols []int32) []float32 {
	out := make([]float32, len(cols))
	for i, c := range cols {
		out[i] = x[c]
	}
	return out
}

// Compare checks got against a freshly computed reference for m and x,
// returning an error describing the first row whose absolute error exceeds
// the bound max|x| * sum(|values in row r|) * eps + eps, which accounts for
// the worst-case rounding a row's dot product can accumulate regardless of
// the order partial sums were combined in; the trailing eps is an absolute
// floor for rows whose relative bound is zero.
func Compare(m spmv.Matrix, x []float32, got []float32, eps float32) error {
	want := Run(m, x)
	if len(got) != len(want) {
		return fmt.Errorf("refcheck: length mismatch: got %d, want %d", len(got), len(want))
	}

	maxX := float32(0)
	if len(x) > 0 {
		maxX = vec.BaseMax(absCopy(x))
	}

	rowAbsSum := make([]float32, m.RowDim)
	for k, r := range m.RowIdx {
		v := m.Value[k]
		if v < 0 {
			v = -v
		}
		rowAbsSum[r] += v
	}

	for r := range want {
		bound := maxX*rowAbsSum[r]*eps + eps
		diff := got[r] - want[r]
		if diff < 0 {
			diff = -diff
		}
		if diff > bound {
			return fmt.Errorf("refcheck: row %d: got %v, want %v (diff %v exceeds bound %v)", r, got[r], want[r], diff, bound)
		}
	}
	return nil
}

func absCopy(x []float32) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		if v < 0 {
			v = -v
		}
		out[i] = v
	}
	return out
}
