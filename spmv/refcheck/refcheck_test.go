package refcheck

import (
	"testing"

	"github.com/ajroetker/spmv/spmv"
)

func TestRun_BasicThreeRows(t *testing.T) {
	m := spmv.Matrix{
		RowIdx: []int32{0, 0, 1, 2},
		ColIdx: []int32{0, 1, 2, 0},
		Value:  []float32{2, 3, 4, 5},
		RowDim: 3, ColDim: 3,
	}
	x := []float32{1, 1, 1}
	y := Run(m, x)
	want := []float32{5, 4, 5}
	for i := range want {
		if y[i] != want[i] {
			t.Errorf("y[%d] = %v, want %v", i, y[i], want[i])
		}
	}
}

func TestCompare_WithinTolerance(t *testing.T) {
	m := spmv.Matrix{
		RowIdx: []int32{0, 0, 1},
		ColIdx: []int32{0, 1, 0},
		Value:  []float32{1, 1, 1},
		RowDim: 2, ColDim: 2,
	}
	x := []float32{1, 1}
	got := []float32{2.0000001, 1}
	if err := Compare(m, x, got, 1e-4); err != nil {
		t.Errorf("Compare: %v", err)
	}
}

func TestCompare_ExceedsTolerance(t *testing.T) {
	m := spmv.Matrix{
		RowIdx: []int32{0},
		ColIdx: []int32{0},
		Value:  []float32{1},
		RowDim: 1, ColDim: 1,
	}
	x := []float32{1}
	got := []float32{5}
	if err := Compare(m, x, got, 1e-4); err == nil {
		t.Error("expected error for large deviation")
	}
}

func TestCompare_LengthMismatch(t *testing.T) {
	m := spmv.Matrix{RowDim: 2, ColDim: 1}
	if err := Compare(m, []float32{1}, []float32{0}, 1e-4); err == nil {
		t.Error("expected error for length mismatch")
	}
}
