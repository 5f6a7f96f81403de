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

// Package algo provides algorithm utilities built on top of the hwy vector
// types. This package corresponds to Google Highway's hwy/contrib/algo
// directory.
//
// # Prefix Sum
//
// BasePrefixSum computes an inclusive running sum over a slice. spmv/mtx
// uses it to turn per-row nonzero counts into insertion cursors during COO
// canonicalization.
package algo
