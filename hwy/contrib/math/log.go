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

// Log2 computes the base-2 logarithm of each lane.
//
// Algorithm: Frexp gives x = m * 2^e; when m < sqrt(1/2) the pair is
// renormalized to (2m, e-1) so m lies in [sqrt(1/2), sqrt(2)). With
// s = (m-1)/(m+1) the result is e + s*P(s^2).
//
// Special cases:
//   - Log2(±0) = -Inf
//   - Log2(x < 0) = NaN
//   - Log2(+Inf) = +Inf
//   - Log2(NaN) = NaN
func Log2[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	m, e := Frexp(x)

	low := hwy.Less(m, hwy.Set(T(stdmath.Sqrt2/2)))
	m = hwy.IfThenElse(low, hwy.Add(m, m), m)
	e = hwy.IfThenElse(hwy.RebindMask[int32](low), hwy.Sub(e, hwy.SetLike(e, int32(1))), e)

	y := hwy.Sub(m, one)
	s := hwy.Div(y, hwy.Add(y, hwy.Set[T](2)))
	l := hwy.Mul(s, Polynomial(hwy.Mul(s, s), coeffs[T](log2Poly_f32, log2Poly_f64)))
	r := hwy.Add(hwy.ConvertToFloat[T](e), l)

	zero := hwy.Zero[T]()
	r = hwy.IfThenElse(hwy.Equal(x, zero), hwy.Set(T(stdmath.Inf(-1))), r)
	r = hwy.IfThenElse(hwy.Less(x, zero), hwy.Set(T(stdmath.NaN())), r)
	r = hwy.IfThenElse(hwy.IsInf(x, 1), x, r)
	return hwy.IfThenElse(hwy.IsNaN(x), x, r)
}

// Log computes the natural logarithm of each lane as Log2(x) * ln2.
// Special cases are those of Log2.
func Log[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Mul(Log2(x), hwy.Set(pick[T](ln2_f32, ln2_f64)))
}

// Log10 computes the base-10 logarithm of each lane as Log2(x) * log10(2).
// Special cases are those of Log2.
func Log10[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Mul(Log2(x), hwy.Set(pick[T](log10of2_f32, log10of2_f64)))
}

// Log1p computes log(1 + x) for each lane. The rounding error of 1 + x is
// removed with a first-order correction, so small x keep full accuracy.
//
// Special cases:
//   - Log1p(±0) = ±0
//   - Log1p(-1) = -Inf
//   - Log1p(x < -1) = NaN
//   - Log1p(+Inf) = +Inf
//   - Log1p(NaN) = NaN
func Log1p[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	u := hwy.Add(one, x)
	c := hwy.Div(hwy.Sub(hwy.Sub(u, one), x), u)
	r := hwy.Sub(Log(u), c)

	r = hwy.IfThenElse(hwy.Equal(u, one), x, r)
	r = hwy.IfThenElse(hwy.Equal(u, hwy.Zero[T]()), hwy.Set(T(stdmath.Inf(-1))), r)
	return hwy.IfThenElse(hwy.IsInf(x, 1), x, r)
}
