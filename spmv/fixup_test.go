package spmv

import (
	"testing"

	"github.com/ajroetker/spmv/spmv/internal/segscan"
)

func TestFixup_SingleWorker(t *testing.T) {
	// W == 1: fixup still runs, degenerating to scattering last[0].
	blockPartials := []segscan.Pair{{Row: 0, Value: 0}, {Row: 2, Value: 42}}
	y := make([]float32, 3)
	fixup(blockPartials, y, 256, nil)
	if y[2] != 42 {
		t.Errorf("y[2] = %v, want 42", y[2])
	}
}

func TestFixup_StraddlingRow(t *testing.T) {
	// Row 1 straddles workers 0 and 1: worker 0 leaves a partial sum of 3
	// for row 1 (never saw its tail flag), worker 1 starts row 1 with 4
	// more before moving to row 2.
	blockPartials := []segscan.Pair{
		{Row: 0, Value: 0}, // first[0]
		{Row: 1, Value: 3}, // last[0]
		{Row: 1, Value: 4}, // first[1]
		{Row: 2, Value: 9}, // last[1]
	}
	y := make([]float32, 3)
	fixup(blockPartials, y, 256, nil)

	if y[1] != 7 {
		t.Errorf("y[1] = %v, want 7", y[1])
	}
	if y[2] != 9 {
		t.Errorf("y[2] = %v, want 9", y[2])
	}
	if y[0] != 0 {
		t.Errorf("y[0] = %v, want 0 (first[0]'s closed-run total)", y[0])
	}
}

func TestFixup_TileBoundarySplitsRun(t *testing.T) {
	// Force a tiny tileItems so the run for row 1 spans two fixup tiles.
	blockPartials := []segscan.Pair{
		{Row: 0, Value: 0},
		{Row: 1, Value: 1},
		{Row: 1, Value: 1},
		{Row: 1, Value: 1},
		{Row: 2, Value: 5},
	}
	y := make([]float32, 3)
	fixup(blockPartials, y, 2, nil)

	if y[1] != 3 {
		t.Errorf("y[1] = %v, want 3", y[1])
	}
	if y[2] != 5 {
		t.Errorf("y[2] = %v, want 5", y[2])
	}
}
