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

// This file provides the portable implementations of the lane operations.
// Every operation works on the first NumLanes lanes of its operands; lanes
// beyond that are always zero.

// Load creates a vector by loading data from a slice.
// It loads min(len(src), MaxLanes[T]()) lanes.
func Load[T Lanes](src []T) Vec[T] {
	return LoadN(src, MaxLanes[T]())
}

// LoadN loads exactly min(n, len(src), MaxCapacity) lanes from src.
// LoadN(src, 1) is the single-lane vector used for array tails.
func LoadN[T Lanes](src []T, n int) Vec[T] {
	n = max(0, min(n, len(src), MaxCapacity))
	var v Vec[T]
	copy(v.data[:n], src[:n])
	v.n = n
	return v
}

// Load4 loads 4 consecutive vectors from a slice for 4x loop unrolling.
func Load4[T Lanes](src []T) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	lanes := MaxLanes[T]()
	v0 := Load(src)
	v1 := Load(src[lanes:])
	v2 := Load(src[lanes*2:])
	v3 := Load(src[lanes*3:])
	return v0, v1, v2, v3
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	return SetN(value, MaxLanes[T]())
}

// SetN creates a vector of n lanes set to value.
func SetN[T Lanes](value T, n int) Vec[T] {
	n = max(0, min(n, MaxCapacity))
	var v Vec[T]
	for i := range n {
		v.data[i] = value
	}
	v.n = n
	return v
}

// Zero returns a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

// GetLane returns lane i of v, or zero if i is out of range.
func GetLane[T Lanes](v Vec[T], i int) T {
	if i < 0 || i >= v.n {
		var zero T
		return zero
	}
	return v.data[i]
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes2(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes2(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes2(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] * b.data[i]
	}
	return r
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes2(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] / b.data[i]
	}
	return r
}

// Min returns the element-wise minimum. When b is NaN the result is a.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes2(a.n, b.n)}
	for i := range r.n {
		if b.data[i] < a.data[i] {
			r.data[i] = b.data[i]
		} else {
			r.data[i] = a.data[i]
		}
	}
	return r
}

// Max returns the element-wise maximum. When b is NaN the result is a.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes2(a.n, b.n)}
	for i := range r.n {
		if b.data[i] > a.data[i] {
			r.data[i] = b.data[i]
		} else {
			r.data[i] = a.data[i]
		}
	}
	return r
}

// Clamp limits each lane of v to [lo, hi].
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	return Min(Max(v, lo), hi)
}

// Sqrt computes the element-wise square root.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = T(math.Sqrt(float64(v.data[i])))
	}
	return r
}

// MulAdd performs fused multiply-add: a*b + c with a single rounding.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes3(a.n, b.n, c.n)}
	for i := range r.n {
		r.data[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return r
}

// NegMulAdd computes c - a*b with a single rounding.
func NegMulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes3(a.n, b.n, c.n)}
	for i := range r.n {
		r.data[i] = T(math.FMA(-float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return r
}

// ReduceSum sums all lanes. Lanes are added pairwise, so the result can
// differ from a left-to-right sum in the last bits.
func ReduceSum[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	return reduceTree(v, Add[T])
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	return reduceTree(v, Min[T])
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	return reduceTree(v, Max[T])
}

func compare[T Lanes](a, b Vec[T], pred func(x, y T) bool) Mask[T] {
	m := Mask[T]{n: lanes2(a.n, b.n)}
	for i := range m.n {
		if pred(a.data[i], b.data[i]) {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// Less performs element-wise a < b.
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// LessEqual performs element-wise a <= b.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// Greater performs element-wise a > b.
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual performs element-wise a >= b.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	return compare(v, v, func(x, y T) bool { return x != y })
}

// IsInf returns a mask indicating which lanes contain infinity.
// The sign parameter: 0 = either, > 0 = +Inf only, < 0 = -Inf only.
func IsInf[T Floats](v Vec[T], sign int) Mask[T] {
	return compare(v, v, func(x, _ T) bool { return math.IsInf(float64(x), sign) })
}

// IsFinite returns a mask indicating which lanes are neither NaN nor infinite.
func IsFinite[T Floats](v Vec[T]) Mask[T] {
	return compare(v, v, func(x, _ T) bool { return x-x == 0 })
}

// IfThenElse selects a where mask is true, b otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes3(mask.n, a.n, b.n)}
	for i := range r.n {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// IfThenElseZero returns a where mask is true, zero otherwise.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes2(mask.n, a.n)}
	for i := range r.n {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		}
	}
	return r
}

// IfThenZeroElse returns zero where mask is true, b otherwise.
func IfThenZeroElse[T Lanes](mask Mask[T], b Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes2(mask.n, b.n)}
	for i := range r.n {
		if mask.bits&(1<<uint(i)) == 0 {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// MaskAnd returns the lane-wise AND of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := lanes2(a.n, b.n)
	return Mask[T]{bits: a.bits & b.bits & lowBits(n), n: n}
}

// MaskOr returns the lane-wise OR of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := lanes2(a.n, b.n)
	return Mask[T]{bits: (a.bits | b.bits) & lowBits(n), n: n}
}

// MaskNot inverts every lane of m.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	return Mask[T]{bits: ^m.bits & lowBits(m.n), n: m.n}
}

// AllTrue reports whether every lane of m is active.
func AllTrue[T Lanes](m Mask[T]) bool {
	return m.AllTrue()
}

// AllFalse reports whether no lane of m is active.
func AllFalse[T Lanes](m Mask[T]) bool {
	return !m.AnyTrue()
}

// CountTrue returns the number of active lanes.
func CountTrue[T Lanes](m Mask[T]) int {
	return m.CountTrue()
}

// FindFirstTrue returns the index of the first active lane, or -1.
func FindFirstTrue[T Lanes](m Mask[T]) int {
	for i := range m.n {
		if m.bits&(1<<uint(i)) != 0 {
			return i
		}
	}
	return -1
}

// RebindMask reinterprets a mask for another lane type with the same lane
// count. It is how comparisons on float lanes select exponent lanes.
func RebindMask[U, T Lanes](m Mask[T]) Mask[U] {
	return Mask[U]{bits: m.bits, n: m.n}
}

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes2(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] & b.data[i]
	}
	return r
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes2(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] | b.data[i]
	}
	return r
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes2(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] ^ b.data[i]
	}
	return r
}

// AndNot computes (NOT a) AND b, following Highway's argument order.
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes2(a.n, b.n)}
	for i := range r.n {
		r.data[i] = ^a.data[i] & b.data[i]
	}
	return r
}

// ShiftLeft shifts every lane left by bits.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = v.data[i] << uint(bits)
	}
	return r
}

// ShiftRight shifts every lane right by bits. Signed lanes shift
// arithmetically.
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = v.data[i] >> uint(bits)
	}
	return r
}
