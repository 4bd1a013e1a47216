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

// The *To operators combine two arrays elementwise and the *Scalar
// operators combine an array with one value. All of them stop at the
// shortest slice.

// AddTo sets dst[i] = a[i] + b[i].
func AddTo[T hwy.Floats](dst, a, b []T) { algo.Transform2(dst, a, b, hwy.Add[T]) }

// SubTo sets dst[i] = a[i] - b[i].
func SubTo[T hwy.Floats](dst, a, b []T) { algo.Transform2(dst, a, b, hwy.Sub[T]) }

// MulTo sets dst[i] = a[i] * b[i].
func MulTo[T hwy.Floats](dst, a, b []T) { algo.Transform2(dst, a, b, hwy.Mul[T]) }

// DivTo sets dst[i] = a[i] / b[i].
func DivTo[T hwy.Floats](dst, a, b []T) { algo.Transform2(dst, a, b, hwy.Div[T]) }

// MaxTo sets dst[i] = max(a[i], b[i]). A NaN in b yields a[i].
func MaxTo[T hwy.Floats](dst, a, b []T) { algo.Transform2(dst, a, b, hwy.Max[T]) }

// MinTo sets dst[i] = min(a[i], b[i]). A NaN in b yields a[i].
func MinTo[T hwy.Floats](dst, a, b []T) { algo.Transform2(dst, a, b, hwy.Min[T]) }

// ModTo sets dst[i] = a[i] - b[i]·floor(a[i]/b[i]).
func ModTo[T hwy.Floats](dst, a, b []T) { algo.Transform2(dst, a, b, math.Mod[T]) }

// PowTo sets dst[i] = a[i]^b[i].
func PowTo[T hwy.Floats](dst, a, b []T) { algo.Transform2(dst, a, b, math.Pow[T]) }

// Atan2To sets dst[i] = atan2(y[i], x[i]).
func Atan2To[T hwy.Floats](dst, y, x []T) { algo.Transform2(dst, y, x, math.Atan2[T]) }

// AddScalar sets dst[i] = src[i] + s.
func AddScalar[T hwy.Floats](dst, src []T, s T) { algo.TransformScalar(dst, src, s, hwy.Add[T]) }

// SubScalar sets dst[i] = src[i] - s.
func SubScalar[T hwy.Floats](dst, src []T, s T) { algo.TransformScalar(dst, src, s, hwy.Sub[T]) }

// MulScalar sets dst[i] = src[i] * s.
func MulScalar[T hwy.Floats](dst, src []T, s T) { algo.TransformScalar(dst, src, s, hwy.Mul[T]) }

// DivScalar sets dst[i] = src[i] / s.
func DivScalar[T hwy.Floats](dst, src []T, s T) { algo.TransformScalar(dst, src, s, hwy.Div[T]) }

// MaxScalar sets dst[i] = max(src[i], s).
func MaxScalar[T hwy.Floats](dst, src []T, s T) { algo.TransformScalar(dst, src, s, hwy.Max[T]) }

// MinScalar sets dst[i] = min(src[i], s).
func MinScalar[T hwy.Floats](dst, src []T, s T) { algo.TransformScalar(dst, src, s, hwy.Min[T]) }

// ModScalar sets dst[i] = src[i] mod s, with the sign of s.
func ModScalar[T hwy.Floats](dst, src []T, s T) { algo.TransformScalar(dst, src, s, math.Mod[T]) }

// PowScalar sets dst[i] = src[i]^s.
func PowScalar[T hwy.Floats](dst, src []T, s T) { algo.TransformScalar(dst, src, s, math.Pow[T]) }
