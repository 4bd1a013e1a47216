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

// expRange returns the clamp bounds for the exponent n of 2^n. Below the
// lower bound every result is +0, above the upper one every result is +Inf.
func expRange[T hwy.Floats]() (lo, hi float64) {
	f := hwy.FormatOf[T]()
	return -float64(f.Bias + int32(f.MantissaBits) + 2), float64(f.Bias + 2)
}

// exp2Core evaluates 2^f on [0, 1) and scales it by 2^n.
func exp2Core[T hwy.Floats](f, n hwy.Vec[T]) hwy.Vec[T] {
	p := Polynomial(f, coeffs[T](exp2Poly_f32, exp2Poly_f64))
	return Ldexp(p, hwy.ConvertToInt32(n))
}

// Exp2 computes 2^x for each lane.
//
// Algorithm: x = n + f with n = floor(x) and f in [0, 1); the result is
// 2^f from a polynomial core scaled by 2^n.
//
// Special cases:
//   - Exp2(+Inf) = +Inf
//   - Exp2(-Inf) = 0
//   - Exp2(NaN) = NaN
func Exp2[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	lo, hi := expRange[T]()
	x = hwy.Clamp(x, hwy.Set(T(lo)), hwy.Set(T(hi)))
	n := hwy.Floor(x)
	return exp2Core(hwy.Sub(x, n), n)
}

// Exp computes e^x for each lane.
//
// Algorithm: n = floor(x*log2(e)); the remainder r = x - n*ln2 is taken with
// a two-part ln2 so it stays exact, and e^x = 2^n * 2^(r*log2(e)).
//
// Special cases:
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(NaN) = NaN
func Exp[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	lo, hi := expRange[T]()
	x = hwy.Clamp(x, hwy.Set(T(lo*stdmath.Ln2)), hwy.Set(T(hi*stdmath.Ln2)))
	log2e := hwy.Set(pick[T](log2E_f32, log2E_f64))
	n := hwy.Floor(hwy.Mul(x, log2e))
	r := hwy.NegMulAdd(n, hwy.Set(pick[T](ln2Hi_f32, ln2Hi_f64)), x)
	r = hwy.NegMulAdd(n, hwy.Set(pick[T](ln2Lo_f32, ln2Lo_f64)), r)
	return exp2Core(hwy.Mul(r, log2e), n)
}

// Exp10 computes 10^x for each lane, reducing by a two-part log10(2) the
// same way Exp reduces by ln2.
//
// Special cases:
//   - Exp10(+Inf) = +Inf
//   - Exp10(-Inf) = 0
//   - Exp10(NaN) = NaN
func Exp10[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	lo, hi := expRange[T]()
	x = hwy.Clamp(x, hwy.Set(T(lo*stdmath.Log10E*stdmath.Ln2)), hwy.Set(T(hi*stdmath.Log10E*stdmath.Ln2)))
	log2of10 := hwy.Set(pick[T](log2of10_f32, log2of10_f64))
	n := hwy.Floor(hwy.Mul(x, log2of10))
	r := hwy.NegMulAdd(n, hwy.Set(pick[T](log10of2Hi_f32, log10of2Hi_f64)), x)
	r = hwy.NegMulAdd(n, hwy.Set(pick[T](log10of2Lo_f32, log10of2Lo_f64)), r)
	return exp2Core(hwy.Mul(r, log2of10), n)
}

// Expm1 computes e^x - 1 for each lane. Near zero, where the subtraction
// would cancel, a dedicated core evaluates x + x^2*P(x) directly.
//
// Special cases:
//   - Expm1(±0) = ±0
//   - Expm1(+Inf) = +Inf
//   - Expm1(-Inf) = -1
//   - Expm1(NaN) = NaN
func Expm1[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	small := hwy.Less(hwy.Abs(x), hwy.Set(T(stdmath.Ln2/2)))
	near := hwy.MulAdd(hwy.Mul(x, x), Polynomial(x, coeffs[T](expm1Poly_f32, expm1Poly_f64)), x)
	far := hwy.Sub(Exp(x), one)
	r := hwy.IfThenElse(small, near, far)
	return hwy.IfThenElse(hwy.Equal(x, hwy.Zero[T]()), x, r)
}

// Pow computes x^y as 2^(y*log2(x)). The relative error grows with
// |y*log2(x)|, so it is a few ULP only while that product stays modest.
//
// Special cases:
//   - Pow(x, ±0) = 1 for any x, including NaN
//   - Pow(1, y) = 1 for any y, including NaN
//   - Pow(x, y) = NaN for x < 0
//   - Pow(±0, y) = +0 for y > 0 and +Inf for y < 0
func Pow[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	r := Exp2(hwy.Mul(y, Log2(x)))
	trivial := hwy.MaskOr(hwy.Equal(y, hwy.Zero[T]()), hwy.Equal(x, one))
	return hwy.IfThenElse(trivial, one, r)
}
