package segscan

import "testing"

func TestCombine(t *testing.T) {
	tests := []struct {
		name string
		a, b Pair
		want Pair
	}{
		{"same row accumulates", Pair{2, 3}, Pair{2, 4}, Pair{2, 7}},
		{"different row resets", Pair{2, 3}, Pair{5, 4}, Pair{5, 4}},
		{"identity on fresh row", Pair{0, 0}, Pair{3, 9}, Pair{3, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Combine(tt.a, tt.b); got != tt.want {
				t.Errorf("Combine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestInclusiveScan(t *testing.T) {
	pairs := []Pair{{0, 1}, {0, 2}, {1, 5}, {1, 1}, {1, 1}, {2, 0}}
	carry := Pair{0, 0}

	newCarry := InclusiveScan(pairs, carry)

	want := []Pair{{0, 1}, {0, 3}, {1, 5}, {1, 6}, {1, 7}, {2, 0}}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pairs[%d] = %v, want %v", i, pairs[i], want[i])
		}
	}
	if newCarry != want[len(want)-1] {
		t.Errorf("newCarry = %v, want %v", newCarry, want[len(want)-1])
	}
}

func TestInclusiveScan_CarryContinuesRun(t *testing.T) {
	// First tile ends mid-run on row 1; second tile continues row 1.
	carry := Pair{1, 10}
	tile2 := []Pair{{1, 1}, {1, 1}, {2, 5}}

	newCarry := InclusiveScan(tile2, carry)

	want := []Pair{{1, 11}, {1, 12}, {2, 5}}
	for i := range want {
		if tile2[i] != want[i] {
			t.Errorf("tile2[%d] = %v, want %v", i, tile2[i], want[i])
		}
	}
	if newCarry != (Pair{2, 5}) {
		t.Errorf("newCarry = %v, want {2 5}", newCarry)
	}
}

func TestExclusiveScan(t *testing.T) {
	pairs := []Pair{{0, 1}, {0, 2}, {1, 5}, {1, 1}, {2, 0}}
	carry := Pair{0, 0}

	newCarry := ExclusiveScan(pairs, carry)

	want := []Pair{{0, 0}, {0, 1}, {0, 3}, {1, 5}, {1, 6}}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pairs[%d] = %v, want %v", i, pairs[i], want[i])
		}
	}
	if newCarry != (Pair{2, 0}) {
		t.Errorf("newCarry = %v, want {2 0}", newCarry)
	}
}

func TestExclusiveScan_Empty(t *testing.T) {
	carry := Pair{3, 7}
	newCarry := ExclusiveScan(nil, carry)
	if newCarry != carry {
		t.Errorf("ExclusiveScan(nil, carry) = %v, want %v unchanged", newCarry, carry)
	}
}

func TestScanTile(t *testing.T) {
	pairs := []Pair{{4, 2}, {4, 3}}
	carry := ScanTile(pairs, Pair{4, 10})
	if carry != (Pair{4, 15}) {
		t.Errorf("ScanTile carry = %v, want {4 15}", carry)
	}
	if pairs[1] != (Pair{4, 15}) {
		t.Errorf("pairs[1] = %v, want {4 15}", pairs[1])
	}
}
