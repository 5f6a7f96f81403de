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

import "github.com/ajroetker/spmv/spmv/internal/segscan"

// fixup is the BoundaryFixup (C4): a single sequential pass over
// blockPartials (first[0], last[0], first[1], last[1], ...) that reconciles
// rows whose tail flag straddled a worker boundary. blockPartials is already
// non-decreasing by Row because workers were assigned contiguous merge-path
// ranges.
//
// fixup always runs, even for a single worker: that degenerates to scattering
// last[0] unconditionally, which is cheaper to keep unconditional than to
// special-case.
func fixup(blockPartials []segscan.Pair, y []float32, tileItems int, finalizedBy []int) {
	if len(blockPartials) == 0 {
		return
	}
	if tileItems <= 0 {
		tileItems = len(blockPartials)
	}

	running := segscan.Pair{Row: blockPartials[0].Row}
	prevRow := running.Row

	for start := 0; start < len(blockPartials); start += tileItems {
		end := min(start+tileItems, len(blockPartials))

		tile := make([]segscan.Pair, end-start)
		copy(tile, blockPartials[start:end])
		newRunning := segscan.ExclusiveScan(tile, running)

		for i, original := range blockPartials[start:end] {
			globalIdx := start + i
			isHead := globalIdx == 0 || original.Row != prevRow
			if isHead && globalIdx > 0 {
				// tile[i] holds the exclusive prefix just before original was
				// combined in -- the closed run's total for prevRow.
				y[prevRow] = float32(tile[i].Value)
				if finalizedBy != nil {
					finalizedBy[prevRow] = -1
				}
			}
			prevRow = original.Row
		}

		running = newRunning
	}

	y[running.Row] = float32(running.Value)
	if finalizedBy != nil {
		finalizedBy[running.Row] = -1
	}
}
