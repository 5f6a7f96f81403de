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

package hwy

// TailMask creates a mask with the first 'count' lanes active.
// This is useful for handling the tail (remainder) of an array
// when the size is not a multiple of the vector width.
//
// Example:
//
//	maxLanes := hwy.MaxLanes[float32]()
//	remaining := len(data) % maxLanes
//	if remaining > 0 {
//	    mask := hwy.TailMask[float32](remaining)
//	    v := hwy.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	    hwy.MaskStore(mask, result, output[len(output)-remaining:])
//	}
func TailMask[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	if count < 0 {
		count = 0
	}
	if count > maxLanes {
		count = maxLanes
	}

	bits := make([]bool, maxLanes)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}
