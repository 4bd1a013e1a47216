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

import "math"

// ConvertToInt32 converts float lanes to int32, truncating toward zero.
// Out-of-range lanes saturate to the int32 limits and NaN converts to 0,
// so the result is deterministic on every platform.
func ConvertToInt32[T Floats](v Vec[T]) Vec[int32] {
	r := Vec[int32]{n: v.n}
	for i := range r.n {
		x := float64(v.data[i])
		switch {
		case x != x:
			r.data[i] = 0
		case x >= math.MaxInt32:
			r.data[i] = math.MaxInt32
		case x <= math.MinInt32:
			r.data[i] = math.MinInt32
		default:
			r.data[i] = int32(x)
		}
	}
	return r
}

// ConvertToFloat converts int32 lanes to float lanes. The conversion is
// exact for float64 and for |e| < 2^24 with float32.
func ConvertToFloat[T Floats](v Vec[int32]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = T(v.data[i])
	}
	return r
}

// Floor rounds each lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math.Floor)
}

// mapFloat applies an exact float64 rounding function lane-wise. Rounding to
// an integer is exact in float64 for every float32 input, so the float32
// result is identical to a native float32 instruction.
func mapFloat[T Floats](v Vec[T], fn func(float64) float64) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = T(fn(float64(v.data[i])))
	}
	return r
}
