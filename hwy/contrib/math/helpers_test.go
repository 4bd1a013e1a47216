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
	"fmt"
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-jbm/hwy"
)

// forEachWidth runs fn once per supported vector width.
func forEachWidth(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	for _, w := range hwy.Widths {
		t.Run(fmt.Sprintf("width=%d", w), func(t *testing.T) {
			defer hwy.ForceWidth(w)()
			fn(t)
		})
	}
}

// apply runs a vector function over a slice: full vectors first, then
// single-lane vectors for the remainder.
func apply[T hwy.Floats](fn func(hwy.Vec[T]) hwy.Vec[T], in []T) []T {
	out := make([]T, len(in))
	lanes := hwy.MaxLanes[T]()
	i := 0
	for ; i+lanes <= len(in); i += lanes {
		hwy.Store(fn(hwy.Load(in[i:])), out[i:])
	}
	for ; i < len(in); i++ {
		hwy.Store(fn(hwy.LoadN(in[i:], 1)), out[i:])
	}
	return out
}

// ulps returns the distance between got and want in units of the last
// place of want, at T's precision.
func ulps[T hwy.Floats](got, want T) float64 {
	g, w := float64(got), float64(want)
	switch {
	case stdmath.IsNaN(g) && stdmath.IsNaN(w):
		return 0
	case g == w:
		return 0
	case stdmath.IsNaN(g) || stdmath.IsNaN(w) || stdmath.IsInf(g, 0) || stdmath.IsInf(w, 0):
		return stdmath.Inf(1)
	}
	aw := stdmath.Abs(w)
	var ulp float64
	if hwy.IsFloat32[T]() {
		ulp = float64(stdmath.Nextafter32(float32(aw), float32(stdmath.Inf(1)))) - aw
	} else {
		ulp = stdmath.Nextafter(aw, stdmath.Inf(1)) - aw
	}
	return stdmath.Abs(g-w) / ulp
}

// sample returns n points spread over [lo, hi], evenly or geometrically.
func sample[T hwy.Floats](lo, hi float64, n int, geometric bool) []T {
	xs := make([]T, 0, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		var x float64
		if geometric {
			x = stdmath.Exp(stdmath.Log(lo) + t*(stdmath.Log(hi)-stdmath.Log(lo)))
		} else {
			x = lo + (hi-lo)*t
		}
		v := T(x)
		if v == 0 || stdmath.IsInf(float64(v), 0) {
			continue
		}
		xs = append(xs, v)
	}
	return xs
}

// sameFloat reports whether a and b are the same value, treating all NaNs
// as equal and distinguishing signed zeros.
func sameFloat(a, b float64) bool {
	if stdmath.IsNaN(a) || stdmath.IsNaN(b) {
		return stdmath.IsNaN(a) && stdmath.IsNaN(b)
	}
	return a == b && stdmath.Signbit(a) == stdmath.Signbit(b)
}
