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

// Package segscan implements the ReduceByKey segmented scan used to turn a
// stream of (row, partial) pairs into per-row running sums, carrying a
// prefix across tiles so a sequence of tile-sized scans is equivalent to one
// scan over the whole stream.
package segscan

// Pair is one step on the merge path: the row it contributes to and the
// running reduction value for that row accumulated so far.
type Pair struct {
	Row   int32
	Value float64
}

// Combine is the ReduceByKey operator: equal rows reduce their values (in
// the order given -- addition here is not reassociated, so callers must feed
// pairs in left-to-right path order to keep results reproducible); distinct
// rows keep the right-hand pair verbatim, resetting the running reduction.
//
// Combine is associative given associative reduce, which is what makes
// InclusiveScan/ExclusiveScan over a sequence of Combine applications well
// defined regardless of how the sequence is tiled.
func Combine(a, b Pair) Pair {
	if a.Row == b.Row {
		return Pair{Row: b.Row, Value: a.Value + b.Value}
	}
	return b
}

// InclusiveScan scans pairs in place under Combine, seeded by carry, so that
// pairs[i] becomes the combine of carry and pairs[0..i]. It returns the new
// carry (equal to the scanned value of the last pair, or carry unchanged if
// pairs is empty).
func InclusiveScan(pairs []Pair, carry Pair) Pair {
	running := carry
	for i := range pairs {
		running = Combine(running, pairs[i])
		pairs[i] = running
	}
	return running
}

// ExclusiveScan scans pairs in place under Combine, seeded by carry, so that
// pairs[i] becomes the combine of carry and pairs[0..i-1] -- the running
// total strictly before pairs[i] was applied. It returns the new carry: the
// combine of carry and every original pair, i.e. what InclusiveScan's final
// entry would have been.
func ExclusiveScan(pairs []Pair, carry Pair) Pair {
	running := carry
	for i := range pairs {
		cur := pairs[i]
		pairs[i] = running
		running = Combine(running, cur)
	}
	return running
}

// ScanTile runs the tile-local inclusive scan used by a TileReducer worker:
// pairs is scanned in place and the tile's new running prefix is returned,
// ready to seed the next tile's ScanTile call.
func ScanTile(pairs []Pair, carry Pair) Pair {
	return InclusiveScan(pairs, carry)
}
