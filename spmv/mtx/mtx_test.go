package mtx

import (
	"strings"
	"testing"
)

func TestRead_OutOfOrderEntries(t *testing.T) {
	// Entries deliberately out of row order, and one row (1) split across
	// non-adjacent lines, to exercise the counting-sort canonicalization.
	const doc = `%%MatrixMarket matrix coordinate real general
% a tiny fixture
3 3 4
2 1 5.0
1 1 2.0
3 2 1.5
1 3 3.0
`
	m, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if m.RowDim != 3 || m.ColDim != 3 {
		t.Fatalf("dims = %d x %d, want 3 x 3", m.RowDim, m.ColDim)
	}
	if m.NNZ() != 4 {
		t.Fatalf("NNZ = %d, want 4", m.NNZ())
	}
	for i := 1; i < len(m.RowIdx); i++ {
		if m.RowIdx[i] < m.RowIdx[i-1] {
			t.Fatalf("RowIdx not sorted: %v", m.RowIdx)
		}
	}

	// Row 0 (1-based row 1) should have two entries: col 0 value 2, col 2
	// value 3.
	var row0Cols []int32
	var row0Vals []float32
	for i, r := range m.RowIdx {
		if r == 0 {
			row0Cols = append(row0Cols, m.ColIdx[i])
			row0Vals = append(row0Vals, m.Value[i])
		}
	}
	if len(row0Cols) != 2 {
		t.Fatalf("row 0 has %d entries, want 2", len(row0Cols))
	}
	if row0Cols[0] != 0 || row0Cols[1] != 2 || row0Vals[0] != 2 || row0Vals[1] != 3 {
		t.Errorf("row 0 = cols %v vals %v, want cols [0 2] vals [2 3]", row0Cols, row0Vals)
	}
}

func TestRead_PatternMatrix(t *testing.T) {
	const doc = `%%MatrixMarket matrix coordinate pattern general
2 2 2
1 1
2 2
`
	m, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	for _, v := range m.Value {
		if v != 1 {
			t.Errorf("pattern entry value = %v, want 1", v)
		}
	}
}

func TestRead_MissingSizeLine(t *testing.T) {
	_, err := Read(strings.NewReader("%%MatrixMarket matrix coordinate real general\n"))
	if err == nil {
		t.Fatal("expected error for missing size line")
	}
}
