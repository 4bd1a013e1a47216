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
// Package vec provides named array operators and reductions over float32
// and float64 slices.
//
// Elementwise operators take the destination first and never allocate:
//
//	vec.Exp(dst, src)          // dst[i] = exp(src[i])
//	vec.AddTo(dst, a, b)       // dst[i] = a[i] + b[i]
//	vec.MulScalar(dst, src, 2) // dst[i] = src[i] * 2
//
// They are thin wrappers that hand a lane function from hwy or
// hwy/contrib/math to the drivers in hwy/contrib/algo, so every element of
// a slice goes through exactly the same arithmetic as a single lane.
//
// Reductions (Sum, Dot, Max, Min, MaxMin, ArgMax, ArgMin) keep four
// independent vector accumulators. Partial sums are therefore combined in a
// different order than a left-to-right loop, and Sum or Dot can differ from
// a naive loop in the last bits.
package vec
