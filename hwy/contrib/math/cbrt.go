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

// Cbrt computes the cube root of each lane.
//
// Algorithm: Frexp gives |x| = m * 2^e. The exponent is split as
// e = 3q + r with r in {0, 1, 2} by multiplying with the reciprocal of 3 in
// fixed point. A polynomial start value for m^(1/3) is refined with Newton
// steps, scaled by 2^q, and corrected by 2^(1/3) or 2^(2/3) for r = 1 or 2.
//
// Special cases:
//   - Cbrt(±0) = ±0
//   - Cbrt(±Inf) = ±Inf
//   - Cbrt(NaN) = NaN
func Cbrt[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	m, e := Frexp(hwy.Abs(x))

	// (e + 1203) * 43691 >> 17 is (e + 1203) / 3 for every exponent a
	// float64 can produce; 1203 = 3*401 keeps the numerator positive.
	q := hwy.Mul(hwy.Add(e, hwy.SetLike(e, int32(1203))), hwy.SetLike(e, int32(43691)))
	q = hwy.Sub(hwy.ShiftRight(q, 17), hwy.SetLike(e, int32(401)))
	r := hwy.Sub(e, hwy.Mul(q, hwy.SetLike(e, int32(3))))

	three := hwy.Set[T](3)
	y := Polynomial(m, coeffs[T](cbrtPoly_f32, cbrtPoly_f64))
	for range pickInt[T](1, 2) {
		yy := hwy.Mul(y, y)
		d := hwy.MulAdd(yy, y, hwy.Neg(m))
		y = hwy.Sub(y, hwy.Div(d, hwy.Mul(three, yy)))
	}
	y = Ldexp(y, q)

	one := hwy.SetLike(r, int32(1))
	two := hwy.SetLike(r, int32(2))
	y = hwy.IfThenElse(hwy.RebindMask[T](hwy.Equal(r, one)), hwy.Mul(y, hwy.Set(pick[T](cbrt2_f32, cbrt2_f64))), y)
	y = hwy.IfThenElse(hwy.RebindMask[T](hwy.Equal(r, two)), hwy.Mul(y, hwy.Set(pick[T](cbrt4_f32, cbrt4_f64))), y)
	y = hwy.CopySign(y, x)

	special := hwy.MaskOr(hwy.Equal(x, hwy.Zero[T]()), hwy.MaskNot(hwy.IsFinite(x)))
	return hwy.IfThenElse(special, x, y)
}
