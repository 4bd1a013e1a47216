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
package vec

import (
	"github.com/ajroetker/go-jbm/hwy"
	"github.com/ajroetker/go-jbm/hwy/contrib/algo"
	"github.com/ajroetker/go-jbm/hwy/contrib/math"
)

// Sqrt sets dst[i] = √src[i].
func Sqrt[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, hwy.Sqrt[T]) }

// Dbl sets dst[i] = 2·src[i].
func Dbl[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, dbl[T]) }

// Sqr sets dst[i] = src[i]².
func Sqr[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, sqr[T]) }

// Opposite sets dst[i] = -src[i], flipping the sign of zeros and NaNs too.
func Opposite[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, hwy.Neg[T]) }

// Reciprocal sets dst[i] = 1/src[i].
func Reciprocal[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, reciprocal[T]) }

// Abs sets dst[i] = |src[i]|.
func Abs[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, hwy.Abs[T]) }

func dbl[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] { return hwy.Add(x, x) }

func sqr[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] { return hwy.Mul(x, x) }

func reciprocal[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] { return hwy.Div(hwy.Set[T](1), x) }

// Exp sets dst[i] = e^src[i].
func Exp[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Exp[T]) }

// Exp2 sets dst[i] = 2^src[i].
func Exp2[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Exp2[T]) }

// Exp10 sets dst[i] = 10^src[i].
func Exp10[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Exp10[T]) }

// Expm1 sets dst[i] = e^src[i] - 1.
func Expm1[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Expm1[T]) }

// Log sets dst[i] = ln(src[i]).
func Log[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Log[T]) }

// Log2 sets dst[i] = log₂(src[i]).
func Log2[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Log2[T]) }

// Log10 sets dst[i] = log₁₀(src[i]).
func Log10[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Log10[T]) }

// Log1p sets dst[i] = ln(1 + src[i]).
func Log1p[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Log1p[T]) }

// Cbrt sets dst[i] = ∛src[i].
func Cbrt[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Cbrt[T]) }

// Sin sets dst[i] = sin(src[i]).
func Sin[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Sin[T]) }

// Cos sets dst[i] = cos(src[i]).
func Cos[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Cos[T]) }

// SinCos sets sin[i], cos[i] from src[i] with a single range reduction.
func SinCos[T hwy.Floats](sin, cos, src []T) { algo.Transform2Out(sin, cos, src, math.SinCos[T]) }

// Tan sets dst[i] = tan(src[i]).
func Tan[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Tan[T]) }

// Atan sets dst[i] = atan(src[i]).
func Atan[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Atan[T]) }

// Asin sets dst[i] = asin(src[i]).
func Asin[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Asin[T]) }

// Acos sets dst[i] = acos(src[i]).
func Acos[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Acos[T]) }

// Sinh sets dst[i] = sinh(src[i]).
func Sinh[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Sinh[T]) }

// Cosh sets dst[i] = cosh(src[i]).
func Cosh[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Cosh[T]) }

// Tanh sets dst[i] = tanh(src[i]).
func Tanh[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Tanh[T]) }

// Asinh sets dst[i] = asinh(src[i]).
func Asinh[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Asinh[T]) }

// Acosh sets dst[i] = acosh(src[i]).
func Acosh[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Acosh[T]) }

// Atanh sets dst[i] = atanh(src[i]).
func Atanh[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Atanh[T]) }

// Erf sets dst[i] = erf(src[i]).
func Erf[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Erf[T]) }

// Erfc sets dst[i] = erfc(src[i]).
func Erfc[T hwy.Floats](dst, src []T) { algo.Transform(dst, src, math.Erfc[T]) }
