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
package gauss

import (
	"fmt"
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-jbm/hwy"
	"github.com/ajroetker/go-jbm/hwy/contrib/math"
)

func constant[T hwy.Floats](c T) func(hwy.Vec[T]) hwy.Vec[T] {
	return func(x hwy.Vec[T]) hwy.Vec[T] { return hwy.SetN(c, x.NumLanes()) }
}

func TestIntegralOfConstant(t *testing.T) {
	tests := []struct {
		c, a, b float64
	}{
		{1, 0, 1},
		{3, -2, 5},
		{-0.5, 10, 12},
		{2, 4, 4},
		{7, 1, -1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_over_%v_%v", tt.c, tt.a, tt.b), func(t *testing.T) {
			want := tt.c * (tt.b - tt.a)
			assert.InDelta(t, want, IntegralScalar(constant(tt.c), tt.a, tt.b), 1e-14*stdmath.Max(1, stdmath.Abs(want)))
			assert.InDelta(t, want, IntegralScalar(constant(float32(tt.c)), float32(tt.a), float32(tt.b)), 1e-5*stdmath.Max(1, stdmath.Abs(want)))
		})
	}
}

func TestWeightsSumToTwo(t *testing.T) {
	sum := weights[0]
	for _, w := range weights[1:] {
		sum += 2 * w
	}
	assert.InDelta(t, 2.0, sum, 1e-15)
	require.Len(t, nodes, (Points-1)/2)
}

func TestExactForPolynomials(t *testing.T) {
	// ∫₀¹ x^k dx = 1/(k+1), exact up to degree 13.
	for k := 0; k <= 13; k++ {
		f := func(x hwy.Vec[float64]) hwy.Vec[float64] {
			r := hwy.SetN(1.0, x.NumLanes())
			for range k {
				r = hwy.Mul(r, x)
			}
			return r
		}
		assert.InDelta(t, 1/float64(k+1), IntegralScalar(f, 0, 1.0), 1e-14, "degree %d", k)
	}
}

func TestTranscendentalIntegrands(t *testing.T) {
	assert.InDelta(t, 2.0, IntegralScalar(math.Sin[float64], 0, stdmath.Pi), 1e-9)
	assert.InDelta(t, stdmath.E-1, IntegralScalar(math.Exp[float64], 0, 1.0), 1e-13)
	assert.InDelta(t, 2*stdmath.Log(2)-1, IntegralScalar(math.Log[float64], 1, 2.0), 1e-9)
}

func TestIntegralLanes(t *testing.T) {
	for _, w := range hwy.Widths {
		t.Run(fmt.Sprintf("width%d", w), func(t *testing.T) {
			defer hwy.ForceWidth(w)()
			n := hwy.MaxLanes[float32]()
			lo, hi := make([]float32, n), make([]float32, n)
			for i := range n {
				lo[i], hi[i] = float32(i), float32(2*i+1)
			}
			got := Integral(func(x hwy.Vec[float32]) hwy.Vec[float32] { return hwy.Mul(x, x) }, hwy.Load(lo), hwy.Load(hi))
			require.Equal(t, n, got.NumLanes())
			for i := range n {
				a, b := float64(lo[i]), float64(hi[i])
				want := (b*b*b - a*a*a) / 3
				assert.InDelta(t, want, hwy.GetLane(got, i), 1e-5*want, "lane %d", i)
			}
		})
	}
}
