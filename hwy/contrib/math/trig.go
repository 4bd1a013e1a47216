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

// Mod computes x - d*floor(x/d) for each lane, so the result has the sign
// of d. When |x/d| reaches 1/epsilon the quotient no longer has a fractional
// part to recover and the lane collapses to d/2.
//
// Special cases:
//   - Mod(±Inf, d) = NaN
//   - Mod(x, 0) = NaN
//   - Mod(NaN, d) = Mod(x, NaN) = NaN
func Mod[T hwy.Floats](x, d hwy.Vec[T]) hwy.Vec[T] {
	f := hwy.FormatOf[T]()
	q := hwy.Floor(hwy.Div(x, d))
	r := hwy.NegMulAdd(q, d, x)
	huge := hwy.GreaterEqual(hwy.Abs(q), hwy.Set(T(1/f.Epsilon)))
	r = hwy.IfThenElse(huge, hwy.Mul(d, hwy.Set[T](0.5)), r)

	bad := hwy.MaskOr(hwy.MaskNot(hwy.IsFinite(x)), hwy.Equal(d, hwy.Zero[T]()))
	return hwy.IfThenElse(bad, hwy.Set(T(stdmath.NaN())), r)
}

// SinCos computes the sine and cosine of each lane with a shared argument
// reduction.
//
// Algorithm: |x| is reduced by the nearest multiple n of pi/2, subtracted
// in three parts so y = |x| - n*pi/2 keeps full precision even next to the
// zeros of sine and cosine. The quadrant n mod 4 selects which of the
// odd (sine) and even (cosine) cores supplies each result and its sign.
// Beyond 1/epsilon multiples of pi/2 the reduction has no fractional
// information left; those lanes take the value at pi.
//
// Special cases:
//   - Sin(±0) = ±0, Cos(±0) = 1
//   - ±Inf and NaN give NaN for both
func SinCos[T hwy.Floats](x hwy.Vec[T]) (s, c hwy.Vec[T]) {
	f := hwy.FormatOf[T]()
	ax := hwy.Abs(x)

	n := hwy.Floor(hwy.MulAdd(ax, hwy.Set(pick[T](invPio2_f32, invPio2_f64)), hwy.Set[T](0.5)))
	huge := hwy.GreaterEqual(n, hwy.Set(T(1/f.Epsilon)))
	n = hwy.IfThenElse(huge, hwy.Set[T](2), n)

	y := hwy.NegMulAdd(n, hwy.Set(pick[T](pio2A_f32, pio2A_f64)), ax)
	y = hwy.NegMulAdd(n, hwy.Set(pick[T](pio2B_f32, pio2B_f64)), y)
	y = hwy.NegMulAdd(n, hwy.Set(pick[T](pio2C_f32, pio2C_f64)), y)
	y = hwy.IfThenZeroElse(huge, y)

	u := hwy.Mul(y, y)
	sw := hwy.MulAdd(hwy.Mul(y, u), Polynomial(u, coeffs[T](sinPoly_f32, sinPoly_f64)), y)
	cw := hwy.MulAdd(u, Polynomial(u, coeffs[T](cosPoly_f32, cosPoly_f64)), hwy.Set[T](1))

	quadrant := hwy.NegMulAdd(hwy.Floor(hwy.Mul(n, hwy.Set[T](0.25))), hwy.Set[T](4), n)
	k := hwy.ConvertToInt32(quadrant)
	zero := hwy.SetLike(k, int32(0))
	one := hwy.SetLike(k, int32(1))
	two := hwy.SetLike(k, int32(2))
	swap := hwy.RebindMask[T](hwy.NotEqual(hwy.And(k, one), zero))
	negS := hwy.RebindMask[T](hwy.NotEqual(hwy.And(k, two), zero))
	negC := hwy.RebindMask[T](hwy.NotEqual(hwy.And(hwy.Add(k, one), two), zero))

	s = hwy.IfThenElse(swap, cw, sw)
	c = hwy.IfThenElse(swap, sw, cw)
	s = hwy.IfThenElse(negS, hwy.Neg(s), s)
	c = hwy.IfThenElse(negC, hwy.Neg(c), c)
	s = hwy.IfThenElse(hwy.SignBit(x), hwy.Neg(s), s)

	bad := hwy.MaskNot(hwy.IsFinite(x))
	nan := hwy.Set(T(stdmath.NaN()))
	return hwy.IfThenElse(bad, nan, s), hwy.IfThenElse(bad, nan, c)
}

// Sin computes the sine of each lane. See SinCos.
func Sin[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	s, _ := SinCos(x)
	return s
}

// Cos computes the cosine of each lane. See SinCos.
func Cos[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	_, c := SinCos(x)
	return c
}

// Tan computes the tangent of each lane as Sin(x)/Cos(x).
//
// Special cases:
//   - Tan(±0) = ±0
//   - ±Inf and NaN give NaN
func Tan[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	s, c := SinCos(x)
	return hwy.Div(s, c)
}
