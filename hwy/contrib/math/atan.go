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

// Atan computes the arctangent of each lane.
//
// Algorithm: a rational core in z^2 covers z in [0, 1]. Larger magnitudes
// use atan(x) = pi/2 - atan(1/x), and the sign is copied from x.
//
// Special cases:
//   - Atan(±0) = ±0
//   - Atan(±Inf) = ±pi/2
//   - Atan(NaN) = NaN
func Atan[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	ax := hwy.Abs(x)
	inv := hwy.Greater(ax, one)
	z := hwy.IfThenElse(inv, hwy.Div(one, ax), ax)

	p := coeffs[T](atanRational_f32, atanRational_f64)
	a := hwy.Mul(z, Rational(hwy.Mul(z, z), p, pickInt[T](atanNum_f32, atanNum_f64)))

	hi := hwy.Set(pick[T](pio2Hi_f32, pio2Hi_f64))
	lo := hwy.Set(pick[T](pio2Lo_f32, pio2Lo_f64))
	a = hwy.IfThenElse(inv, hwy.Add(hwy.Sub(hi, a), lo), a)
	return hwy.CopySign(a, x)
}

// Atan2 computes the angle of the point (x, y) as atan(y/x), corrected by
// ±pi with the sign of y when x is negative. The result is in [-pi, pi].
//
// Special cases:
//   - Atan2(±0, x) = ±0 for x > 0 and ±pi for x < 0
//   - Atan2(y, ±0) = ±pi/2 with the sign of y, for y != 0
//   - Atan2(±0, ±0) and Atan2(±Inf, ±Inf) are NaN, since y/x is
//   - Atan2 of NaN is NaN
func Atan2[T hwy.Floats](y, x hwy.Vec[T]) hwy.Vec[T] {
	a := Atan(hwy.Div(y, x))
	pi := hwy.Set(pick[T](piHi_f32, piHi_f64))
	return hwy.Add(a, hwy.IfThenElseZero(hwy.SignBit(x), hwy.CopySign(pi, y)))
}

// Asin computes the arcsine of each lane as atan(x / sqrt(1 - x^2)), with
// 1 - x^2 formed as (1-x)(1+x) to keep precision near ±1.
//
// Special cases:
//   - Asin(±0) = ±0
//   - Asin(±1) = ±pi/2
//   - Asin(x) = NaN for |x| > 1 and for NaN
func Asin[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return Atan(hwy.Div(x, sqrt1mx2(x)))
}

// Acos computes the arccosine of each lane as atan(sqrt(1 - x^2) / x), plus
// pi for negative x.
//
// Special cases:
//   - Acos(1) = 0, Acos(-1) = pi, Acos(±0) = pi/2
//   - Acos(x) = NaN for |x| > 1 and for NaN
func Acos[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	a := Atan(hwy.Div(sqrt1mx2(x), x))
	pi := hwy.Set(pick[T](piHi_f32, piHi_f64))
	return hwy.Add(a, hwy.IfThenElseZero(hwy.SignBit(x), pi))
}

func sqrt1mx2[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	return hwy.Sqrt(hwy.Mul(hwy.Sub(one, x), hwy.Add(one, x)))
}
