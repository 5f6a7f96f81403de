package coogen

import "testing"

func TestGrid2D5Point_Degree(t *testing.T) {
	const side = 4
	m := Grid2D5Point(side, 1)
	if m.RowDim != side*side || m.ColDim != side*side {
		t.Fatalf("dims = %d x %d, want %d x %d", m.RowDim, m.ColDim, side*side, side*side)
	}
	deg := make([]int, m.RowDim)
	for _, r := range m.RowIdx {
		deg[r]++
	}
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			id := r*side + c
			want := 1
			if r > 0 {
				want++
			}
			if r < side-1 {
				want++
			}
			if c > 0 {
				want++
			}
			if c < side-1 {
				want++
			}
			if deg[id] != want {
				t.Errorf("node (%d,%d) degree = %d, want %d", r, c, deg[id], want)
			}
		}
	}
	for i := 1; i < len(m.RowIdx); i++ {
		if m.RowIdx[i] < m.RowIdx[i-1] {
			t.Fatalf("RowIdx not sorted at %d: %v", i, m.RowIdx)
		}
	}
}

func TestGrid3D7Point_CornerDegree(t *testing.T) {
	const side = 3
	m := Grid3D7Point(side, 1)
	if m.RowDim != side*side*side {
		t.Fatalf("RowDim = %d, want %d", m.RowDim, side*side*side)
	}
	deg := make([]int, m.RowDim)
	for _, r := range m.RowIdx {
		deg[r]++
	}
	// Node (0,0,0) is a corner: self + 3 interior neighbors = 4.
	if deg[0] != 4 {
		t.Errorf("corner degree = %d, want 4", deg[0])
	}
	// Center node of a 3-side cube has all six neighbors: self + 6 = 7.
	centerID := 1*side*side + 1*side + 1
	if deg[centerID] != 7 {
		t.Errorf("center degree = %d, want 7", deg[centerID])
	}
}

func TestWheel_HubDegree(t *testing.T) {
	const spokes = 6
	m := Wheel(spokes, 1)
	if m.RowDim != spokes+1 {
		t.Fatalf("RowDim = %d, want %d", m.RowDim, spokes+1)
	}
	deg := make([]int, m.RowDim)
	for _, r := range m.RowIdx {
		deg[r]++
	}
	// Hub: self-loop plus one entry per spoke.
	if deg[0] != spokes+1 {
		t.Errorf("hub degree = %d, want %d", deg[0], spokes+1)
	}
	// Each rim node: hub + self + two ring neighbors = 4.
	for s := 1; s <= spokes; s++ {
		if deg[s] != 4 {
			t.Errorf("rim node %d degree = %d, want 4", s, deg[s])
		}
	}
	for i := 1; i < len(m.RowIdx); i++ {
		if m.RowIdx[i] < m.RowIdx[i-1] {
			t.Fatalf("RowIdx not sorted at %d: %v", i, m.RowIdx)
		}
	}
}

func TestWheel_TinySpokeCounts(t *testing.T) {
	// spokes=3: prev/next wrap-around must not double an edge with itself.
	m := Wheel(3, 2)
	if m.RowDim != 4 {
		t.Fatalf("RowDim = %d, want 4", m.RowDim)
	}
	for i := 1; i < len(m.RowIdx); i++ {
		if m.RowIdx[i] < m.RowIdx[i-1] {
			t.Fatalf("RowIdx not sorted at %d: %v", i, m.RowIdx)
		}
	}
}
