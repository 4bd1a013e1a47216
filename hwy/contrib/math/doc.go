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
// Package math implements elementary functions on hwy vectors.
//
// Every function is written once against the portable hwy operations and
// works for float32 and float64 lanes at any vector width, including the
// single-lane vectors used for array tails. Each follows the same shape:
// reduce the argument to a short interval, evaluate a minimax polynomial or
// rational core, then undo the reduction. Edge cases (signed zeros,
// subnormals, infinities and NaN) are resolved with lane masks, never with
// per-lane branches.
//
// Results are faithful within a few ULP of the exact value over each
// function's documented domain; they are not correctly rounded.
//
// Example:
//
//	x := hwy.Load(input)
//	hwy.Store(math.Exp(x), output)
//
// For array-at-a-time use see the algo and vec packages.
package math
