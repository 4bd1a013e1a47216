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

import "github.com/ajroetker/go-jbm/hwy"

// erfcTail evaluates erfc for x >= 1 as exp(-x^2) * R(1/x) / x.
//
// x^2 is split through m, x rounded to a multiple of 1/128, so m^2 is exact
// and exp(-x^2) = exp(-m^2) * exp(-(2m(x-m) + (x-m)^2)) loses nothing to the
// rounding of x^2. Lanes at or past the cutoff are flushed to zero.
func erfcTail[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	m := hwy.Mul(hwy.Floor(hwy.MulAdd(x, hwy.Set[T](128), hwy.Set[T](0.5))), hwy.Set[T](1.0/128))
	f := hwy.Sub(x, m)
	mm := hwy.Mul(m, m)
	rest := hwy.MulAdd(hwy.Add(m, m), f, hwy.Mul(f, f))

	t := hwy.Div(hwy.Set[T](1), x)
	p := coeffs[T](erfcRational_f32, erfcRational_f64)
	h := hwy.Mul(Rational(t, p, pickInt[T](erfcNum_f32, erfcNum_f64)), t)

	r := hwy.Mul(Exp(hwy.Neg(mm)), hwy.Mul(Exp(hwy.Neg(rest)), h))
	return hwy.IfThenZeroElse(hwy.GreaterEqual(x, hwy.Set(pick[T](erfcCutoff_f32, erfcCutoff_f64))), r)
}

// erfCore evaluates erf on [-1, 1] as x * P(x^2).
func erfCore[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Mul(x, Polynomial(hwy.Mul(x, x), coeffs[T](erfPoly_f32, erfPoly_f64)))
}

// Erf computes the error function of each lane. Inside [-1, 1] it uses its
// own core; outside, erf(x) = ±(1 - erfc(|x|)).
//
// Special cases:
//   - Erf(±0) = ±0
//   - Erf(±Inf) = ±1
//   - Erf(NaN) = NaN
func Erf[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	ax := hwy.Abs(x)
	far := hwy.CopySign(hwy.Sub(hwy.Set[T](1), erfcTail(ax)), x)
	return hwy.IfThenElse(hwy.LessEqual(ax, hwy.Set[T](1)), erfCore(x), far)
}

// Erfc computes the complementary error function 1 - erf(x) of each lane:
// 1 - erf(x) inside [-1, 1], the tail core for x > 1, and 2 minus the tail
// core for x < -1.
//
// Special cases:
//   - Erfc(+Inf) = 0
//   - Erfc(-Inf) = 2
//   - Erfc(NaN) = NaN
func Erfc[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	ax := hwy.Abs(x)
	tail := erfcTail(ax)
	far := hwy.IfThenElse(hwy.Less(x, hwy.Zero[T]()), hwy.Sub(hwy.Set[T](2), tail), tail)
	near := hwy.Sub(hwy.Set[T](1), erfCore(x))
	return hwy.IfThenElse(hwy.LessEqual(ax, hwy.Set[T](1)), near, far)
}
