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
// Package contrib groups the numeric packages built on hwy vectors.
//
// # Subpackages
//
//   - math: polynomial and rational evaluation, frexp/ldexp and the
//     elementary functions (exp, log, cbrt, trigonometric, hyperbolic, erf)
//   - solve: quadratic and cubic roots inside a bracket
//   - limiter: flux limiters for finite-volume schemes
//   - gauss: 7-point Gauss-Legendre quadrature
//   - algo: drivers that apply lane functions across slices
//   - vec: named array operators and reductions
//
// # Example
//
//	import (
//	    "github.com/ajroetker/go-jbm/hwy"
//	    "github.com/ajroetker/go-jbm/hwy/contrib/math"
//	    "github.com/ajroetker/go-jbm/hwy/contrib/vec"
//	)
//
//	// One vector at a time.
//	s, c := math.SinCos(hwy.Load(angles))
//
//	// Whole slices.
//	vec.Erfc(out, in)
//	total := vec.Sum(out)
//
// All functions accept float32 and float64 lanes and produce the same
// results at every vector width.
package contrib
