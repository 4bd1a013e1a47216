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
	stdmath "math"

	"github.com/ajroetker/go-jbm/hwy"
)

// Sinh computes the hyperbolic sine of each lane. Small arguments go
// through Expm1 to avoid cancellation; large ones are computed as
// (e^(|x|/2) / 2) * e^(|x|/2) so the intermediate does not overflow early.
//
// Special cases:
//   - Sinh(±0) = ±0
//   - Sinh(±Inf) = ±Inf
//   - Sinh(NaN) = NaN
func Sinh[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	half := hwy.Set[T](0.5)
	ax := hwy.Abs(x)
	u := Expm1(ax)
	near := hwy.Mul(half, hwy.Add(u, hwy.Div(u, hwy.Add(u, hwy.Set[T](1)))))
	e := Exp(hwy.Mul(half, ax))
	far := hwy.Mul(hwy.Mul(half, e), e)
	small := hwy.Less(ax, hwy.Set(pick[T](hyperBound_f32, hyperBound_f64)))
	return hwy.CopySign(hwy.IfThenElse(small, near, far), x)
}

// Cosh computes the hyperbolic cosine of each lane.
//
// Special cases:
//   - Cosh(±0) = 1
//   - Cosh(±Inf) = +Inf
//   - Cosh(NaN) = NaN
func Cosh[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	half := hwy.Set[T](0.5)
	ax := hwy.Abs(x)
	e := Exp(ax)
	near := hwy.Mul(half, hwy.Add(e, hwy.Div(hwy.Set[T](1), e)))
	eh := Exp(hwy.Mul(half, ax))
	far := hwy.Mul(hwy.Mul(half, eh), eh)
	small := hwy.Less(ax, hwy.Set(pick[T](hyperBound_f32, hyperBound_f64)))
	return hwy.IfThenElse(small, near, far)
}

// Tanh computes the hyperbolic tangent of each lane as u / (u + 2) with
// u = expm1(2|x|). Beyond a precision-specific bound the result is ±1.
//
// Special cases:
//   - Tanh(±0) = ±0
//   - Tanh(±Inf) = ±1
//   - Tanh(NaN) = NaN
func Tanh[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	ax := hwy.Abs(x)
	u := Expm1(hwy.Add(ax, ax))
	t := hwy.Div(u, hwy.Add(u, hwy.Set[T](2)))
	saturated := hwy.GreaterEqual(ax, hwy.Set(pick[T](hyperBound_f32, hyperBound_f64)))
	return hwy.CopySign(hwy.IfThenElse(saturated, one, t), x)
}

// Asinh computes the inverse hyperbolic sine of each lane as
// log1p(|x| + x^2 / (1 + sqrt(1 + x^2))), or log(|x|) + ln2 once x^2 no
// longer matters next to 1. The sign is copied from x.
//
// Special cases:
//   - Asinh(±0) = ±0
//   - Asinh(±Inf) = ±Inf
//   - Asinh(NaN) = NaN
func Asinh[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	ax := hwy.Abs(x)
	t := hwy.Mul(ax, ax)
	near := Log1p(hwy.Add(ax, hwy.Div(t, hwy.Add(one, hwy.Sqrt(hwy.Add(one, t))))))
	far := hwy.Add(Log(ax), hwy.Set(pick[T](ln2_f32, ln2_f64)))
	large := hwy.Greater(ax, hwy.Set(pick[T](hyperLarge_f32, hyperLarge_f64)))
	return hwy.CopySign(hwy.IfThenElse(large, far, near), x)
}

// Acosh computes the inverse hyperbolic cosine of each lane as
// log1p(t + sqrt(2t + t^2)) with t = x - 1, or log(x) + ln2 for large x.
//
// Special cases:
//   - Acosh(1) = 0
//   - Acosh(+Inf) = +Inf
//   - Acosh(x) = NaN for x < 1 and for NaN
func Acosh[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	t := hwy.Sub(x, one)
	near := Log1p(hwy.Add(t, hwy.Sqrt(hwy.MulAdd(t, t, hwy.Add(t, t)))))
	far := hwy.Add(Log(x), hwy.Set(pick[T](ln2_f32, ln2_f64)))
	large := hwy.Greater(x, hwy.Set(pick[T](hyperLarge_f32, hyperLarge_f64)))
	r := hwy.IfThenElse(large, far, near)
	return hwy.IfThenElse(hwy.Less(x, one), hwy.Set(T(stdmath.NaN())), r)
}

// Atanh computes the inverse hyperbolic tangent of each lane as
// log1p(2|x| / (1 - |x|)) / 2 with the sign of x.
//
// Special cases:
//   - Atanh(±0) = ±0
//   - Atanh(±1) = ±Inf
//   - Atanh(x) = NaN for |x| > 1 and for NaN
func Atanh[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	ax := hwy.Abs(x)
	r := Log1p(hwy.Div(hwy.Add(ax, ax), hwy.Sub(hwy.Set[T](1), ax)))
	return hwy.CopySign(hwy.Mul(hwy.Set[T](0.5), r), x)
}
