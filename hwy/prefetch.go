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

import "unsafe"

// Prefetch hints the CPU to pull the cache line holding s[i] into L1.
// Out-of-range indices are ignored, so callers can prefetch a fixed
// distance ahead without bounds checks.
func Prefetch[T Lanes](s []T, i int) {
	if i < 0 || i >= len(s) {
		return
	}
	prefetch(uintptr(unsafe.Pointer(&s[i])))
}
