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

// ldexpLimit bounds exponent arguments to Ldexp. Any scale beyond it already
// overflows or underflows every finite input.
const ldexpLimit = 2200

// Frexp splits each lane into a mantissa m with 0.5 <= |m| < 1 carrying the
// sign of x and an exponent e such that x = m * 2^e.
//
// Special cases:
//   - Frexp(±0) = ±0, 0
//   - Frexp(±Inf) = ±Inf, 0
//   - Frexp(NaN) = NaN, 0
//
// Subnormal inputs are normalized before the exponent is read.
func Frexp[T hwy.Floats](x hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[int32]) {
	f := hwy.FormatOf[T]()
	zero := hwy.Zero[T]()
	ax := hwy.Abs(x)

	sub := hwy.MaskAnd(hwy.Less(ax, hwy.Set(T(f.MinNormal))), hwy.NotEqual(ax, zero))
	scaled := hwy.IfThenElse(sub, hwy.Mul(x, hwy.Set(T(stdmath.Ldexp(1, f.MantissaBits)))), x)

	b := hwy.AsBits(scaled)
	expMask := hwy.SetLike(b, f.ExponentMask)
	field := hwy.Int32FromBits(hwy.ShiftRight(hwy.And(b, expMask), f.MantissaBits))
	e := hwy.Sub(field, hwy.SetLike(field, f.Bias-1))
	e = hwy.IfThenElse(hwy.RebindMask[int32](sub), hwy.Sub(e, hwy.SetLike(e, int32(f.MantissaBits))), e)

	half := hwy.SetLike(b, uint64(f.Bias-1)<<f.MantissaBits)
	m := hwy.FromBits[T](hwy.Or(hwy.AndNot(expMask, b), half))

	special := hwy.MaskOr(hwy.Equal(x, zero), hwy.MaskNot(hwy.IsFinite(x)))
	m = hwy.IfThenElse(special, x, m)
	e = hwy.IfThenZeroElse(hwy.RebindMask[int32](special), e)
	return m, e
}

// Ldexp computes x * 2^e lane-wise. The power of two is assembled from its
// bit pattern and applied in two halves, so results that land in the
// subnormal range and arguments that are themselves subnormal both round
// once at most.
//
// Special cases:
//   - Ldexp(±0, e) = ±0
//   - Ldexp(±Inf, e) = ±Inf
//   - Ldexp(NaN, e) = NaN
func Ldexp[T hwy.Floats](x hwy.Vec[T], e hwy.Vec[int32]) hwy.Vec[T] {
	e = hwy.Clamp(e, hwy.SetLike(e, int32(-ldexpLimit)), hwy.SetLike(e, int32(ldexpLimit)))
	e1 := hwy.ShiftRight(e, 1)
	e2 := hwy.Sub(e, e1)
	r := hwy.Mul(hwy.Mul(x, pow2[T](e1)), pow2[T](e2))

	special := hwy.MaskOr(hwy.Equal(x, hwy.Zero[T]()), hwy.MaskNot(hwy.IsFinite(x)))
	return hwy.IfThenElse(special, x, r)
}

// pow2 builds 2^e exactly. Exponents in the normal range set the exponent
// field, subnormal ones shift the implicit bit into the fraction, smaller
// ones give +0 and larger ones give +Inf.
func pow2[T hwy.Floats](e hwy.Vec[int32]) hwy.Vec[T] {
	f := hwy.FormatOf[T]()
	minSub := f.MinSubnormalExponent()

	normal := hwy.ShiftLeft(hwy.BitsFromInt32(hwy.Add(e, hwy.SetLike(e, f.Bias))), f.MantissaBits)
	shift := hwy.BitsFromInt32(hwy.Sub(e, hwy.SetLike(e, minSub)))
	subnormal := hwy.Shl(hwy.SetLike(shift, uint64(1)), shift)

	isNormal := hwy.RebindMask[uint64](hwy.GreaterEqual(e, hwy.SetLike(e, f.MinNormalExponent)))
	tooSmall := hwy.RebindMask[uint64](hwy.Less(e, hwy.SetLike(e, minSub)))
	tooLarge := hwy.RebindMask[uint64](hwy.Greater(e, hwy.SetLike(e, f.MaxExponent)))

	b := hwy.IfThenElse(isNormal, normal, subnormal)
	b = hwy.IfThenZeroElse(tooSmall, b)
	b = hwy.IfThenElse(tooLarge, hwy.SetLike(b, f.ExponentMask), b)
	return hwy.FromBits[T](b)
}
