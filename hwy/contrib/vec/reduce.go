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
package vec

import (
	"github.com/ajroetker/go-jbm/hwy"
	"github.com/ajroetker/go-jbm/hwy/contrib/algo"
)

// Sum returns the sum of all elements, or 0 for an empty slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4}
//	result := Sum(data)  // 1 + 2 + 3 + 4 = 10
func Sum[T hwy.Floats](v []T) T {
	n := len(v)
	s0, s1, s2, s3 := hwy.Zero[T](), hwy.Zero[T](), hwy.Zero[T](), hwy.Zero[T]()
	lanes := s0.NumLanes()

	var i int
	for ; i+algo.Unroll*lanes <= n; i += algo.Unroll * lanes {
		hwy.Prefetch(v, i+algo.PrefetchDistance)
		x0, x1, x2, x3 := hwy.Load4(v[i:])
		s0 = hwy.Add(s0, x0)
		s1 = hwy.Add(s1, x1)
		s2 = hwy.Add(s2, x2)
		s3 = hwy.Add(s3, x3)
	}
	for ; i+lanes <= n; i += lanes {
		s0 = hwy.Add(s0, hwy.Load(v[i:]))
	}

	result := hwy.ReduceSum(hwy.Add(hwy.Add(s0, s1), hwy.Add(s2, s3)))
	for ; i < n; i++ {
		result += v[i]
	}
	return result
}

// Dot returns Σ a[i]·b[i] over the common length of a and b, using fused
// multiply-adds.
func Dot[T hwy.Floats](a, b []T) T {
	n := min(len(a), len(b))
	s0, s1, s2, s3 := hwy.Zero[T](), hwy.Zero[T](), hwy.Zero[T](), hwy.Zero[T]()
	lanes := s0.NumLanes()

	var i int
	for ; i+algo.Unroll*lanes <= n; i += algo.Unroll * lanes {
		hwy.Prefetch(a, i+algo.PrefetchDistance)
		hwy.Prefetch(b, i+algo.PrefetchDistance)
		a0, a1, a2, a3 := hwy.Load4(a[i:])
		b0, b1, b2, b3 := hwy.Load4(b[i:])
		s0 = hwy.MulAdd(a0, b0, s0)
		s1 = hwy.MulAdd(a1, b1, s1)
		s2 = hwy.MulAdd(a2, b2, s2)
		s3 = hwy.MulAdd(a3, b3, s3)
	}
	for ; i+lanes <= n; i += lanes {
		s0 = hwy.MulAdd(hwy.Load(a[i:]), hwy.Load(b[i:]), s0)
	}

	result := hwy.ReduceSum(hwy.Add(hwy.Add(s0, s1), hwy.Add(s2, s3)))
	for ; i < n; i++ {
		result += a[i] * b[i]
	}
	return result
}

// Max returns the largest element. It panics if v is empty.
//
// NaN elements are skipped unless v[0] is NaN, in which case the result is
// NaN.
func Max[T hwy.Floats](v []T) T {
	if len(v) == 0 {
		panic("vec: Max called on empty slice")
	}
	hi, _ := maxMin(v, true, false)
	return hi
}

// Min returns the smallest element. It panics if v is empty.
//
// NaN elements are skipped unless v[0] is NaN, in which case the result is
// NaN.
func Min[T hwy.Floats](v []T) T {
	if len(v) == 0 {
		panic("vec: Min called on empty slice")
	}
	_, lo := maxMin(v, false, true)
	return lo
}

// MaxMin returns the largest and smallest elements in one pass. It panics
// if v is empty.
func MaxMin[T hwy.Floats](v []T) (maxVal, minVal T) {
	if len(v) == 0 {
		panic("vec: MaxMin called on empty slice")
	}
	return maxMin(v, true, true)
}

// maxMin seeds every accumulator with v[0], so lanes never hold a value
// that is not in v.
func maxMin[T hwy.Floats](v []T, wantMax, wantMin bool) (maxVal, minVal T) {
	n := len(v)
	seed := hwy.Set(v[0])
	h0, h1, h2, h3 := seed, seed, seed, seed
	l0, l1, l2, l3 := seed, seed, seed, seed
	lanes := seed.NumLanes()

	var i int
	for ; i+algo.Unroll*lanes <= n; i += algo.Unroll * lanes {
		hwy.Prefetch(v, i+algo.PrefetchDistance)
		x0, x1, x2, x3 := hwy.Load4(v[i:])
		if wantMax {
			h0, h1, h2, h3 = hwy.Max(h0, x0), hwy.Max(h1, x1), hwy.Max(h2, x2), hwy.Max(h3, x3)
		}
		if wantMin {
			l0, l1, l2, l3 = hwy.Min(l0, x0), hwy.Min(l1, x1), hwy.Min(l2, x2), hwy.Min(l3, x3)
		}
	}
	for ; i+lanes <= n; i += lanes {
		x := hwy.Load(v[i:])
		if wantMax {
			h0 = hwy.Max(h0, x)
		}
		if wantMin {
			l0 = hwy.Min(l0, x)
		}
	}

	maxVal = hwy.ReduceMax(hwy.Max(hwy.Max(h0, h1), hwy.Max(h2, h3)))
	minVal = hwy.ReduceMin(hwy.Min(hwy.Min(l0, l1), hwy.Min(l2, l3)))
	for ; i < n; i++ {
		if v[i] > maxVal {
			maxVal = v[i]
		}
		if v[i] < minVal {
			minVal = v[i]
		}
	}
	return maxVal, minVal
}

// ArgMax returns the index of the first occurrence of Max(v). It panics if
// v is empty.
//
// Example:
//
//	data := []float32{3, 1, 4, 1, 5}
//	idx := ArgMax(data)  // 4 (index of value 5)
func ArgMax[T hwy.Floats](v []T) int {
	if len(v) == 0 {
		panic("vec: ArgMax called on empty slice")
	}
	return indexOf(v, Max(v))
}

// ArgMin returns the index of the first occurrence of Min(v). It panics if
// v is empty.
func ArgMin[T hwy.Floats](v []T) int {
	if len(v) == 0 {
		panic("vec: ArgMin called on empty slice")
	}
	return indexOf(v, Min(v))
}

// indexOf returns the first index holding target. A NaN target matches the
// first NaN element.
func indexOf[T hwy.Floats](v []T, target T) int {
	if target != target {
		for i, x := range v {
			if x != x {
				return i
			}
		}
		return 0
	}

	want := hwy.Set(target)
	lanes := want.NumLanes()
	var i int
	for ; i+lanes <= len(v); i += lanes {
		if j := hwy.FindFirstTrue(hwy.Equal(hwy.Load(v[i:]), want)); j >= 0 {
			return i + j
		}
	}
	for ; i < len(v); i++ {
		if v[i] == target {
			return i
		}
	}
	return 0
}
