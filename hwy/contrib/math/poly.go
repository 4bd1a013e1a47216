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
package math

import (
	"unsafe"

	"github.com/ajroetker/go-jbm/hwy"
)

// Polynomial evaluates p[0] + p[1]*x + ... + p[k]*x^k by Horner's rule with
// one fused multiply-add per coefficient. An empty table evaluates to zero.
func Polynomial[T hwy.Floats](x hwy.Vec[T], p []T) hwy.Vec[T] {
	n := x.NumLanes()
	if len(p) == 0 {
		return hwy.SetN(T(0), n)
	}
	r := hwy.SetN(p[len(p)-1], n)
	for i := len(p) - 2; i >= 0; i-- {
		r = hwy.MulAdd(r, x, hwy.SetN(p[i], n))
	}
	return r
}

// Rational evaluates P(x) / (1 + x*Q(x)) where P has coefficients p[:m+1]
// and Q has p[m+1:]. The unit constant of the denominator is implied, so
// tables only store its remaining coefficients.
//
// There is no domain check: callers keep x where the denominator is away
// from zero.
func Rational[T hwy.Floats](x hwy.Vec[T], p []T, m int) hwy.Vec[T] {
	num := Polynomial(x, p[:m+1])
	if len(p) <= m+1 {
		return num
	}
	den := hwy.MulAdd(x, Polynomial(x, p[m+1:]), hwy.Set[T](1))
	return hwy.Div(num, den)
}

// Eval applies a vector function to a single value through a one-lane
// vector, which is the same path array tails take.
func Eval[T hwy.Floats](fn func(hwy.Vec[T]) hwy.Vec[T], x T) T {
	return hwy.GetLane(fn(hwy.SetN(x, 1)), 0)
}

// Eval2 is Eval for two-argument functions.
func Eval2[T hwy.Floats](fn func(a, b hwy.Vec[T]) hwy.Vec[T], a, b T) T {
	return hwy.GetLane(fn(hwy.SetN(a, 1), hwy.SetN(b, 1)), 0)
}

// coeffs returns the table matching T's precision without copying.
func coeffs[T hwy.Floats](c32 []float32, c64 []float64) []T {
	if hwy.IsFloat32[T]() {
		return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(c32))), len(c32))
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(c64))), len(c64))
}

// pick returns the constant matching T's precision.
func pick[T hwy.Floats](a32 float32, a64 float64) T {
	if hwy.IsFloat32[T]() {
		return T(a32)
	}
	return T(a64)
}

// pickInt returns the integer matching T's precision.
func pickInt[T hwy.Floats](a32, a64 int) int {
	if hwy.IsFloat32[T]() {
		return a32
	}
	return a64
}
