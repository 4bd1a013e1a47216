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
// Package algo provides the array drivers that apply lane functions across
// whole slices.
//
// Every driver walks its inputs in the same three stages: a loop over four
// vectors at a time that prefetches ahead of the current block, a loop over
// single vectors, and a tail that calls the same lane function on
// single-lane vectors. The lane function therefore sees exactly the same
// arithmetic for every element, whatever the length of the slice.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-jbm/hwy/contrib/algo"
//	    "github.com/ajroetker/go-jbm/hwy/contrib/math"
//	)
//
//	func Exp(dst, src []float64) {
//	    algo.Transform(dst, src, math.Exp[float64])
//	}
//
// Drivers never allocate and never retain their slices. The output may be
// the same slice as an input; partially overlapping slices are not
// supported.
package algo
