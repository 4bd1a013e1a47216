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
package solve

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-jbm/hwy"
)

func TestQuadratic(t *testing.T) {
	tests := []struct {
		name           string
		a, b, c, x1, x2 float64
		want           float64
	}{
		{"both roots in bracket", 1, 0, -4, -10, 10, 2},
		{"negative root", 1, 0, -4, -10, 0, -2},
		{"scaled", 2, -6, 4, 1.5, 3, 2},
		{"linear fallback", 0, 2, -4, -10, 10, 2},
		{"tiny leading coefficient", 1e-20, 2, -4, -10, 10, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuadraticScalar(tt.a, tt.b, tt.c, tt.x1, tt.x2))
		})
	}
}

func TestQuadraticReduced(t *testing.T) {
	// x² - 3x + 2 = (x - 1)(x - 2)
	assert.Equal(t, 2.0, QuadraticReducedScalar(-3.0, 2, 0, 5))
	assert.Equal(t, 1.0, QuadraticReducedScalar(-3.0, 2, 0, 1.5))
	assert.Equal(t, float32(1), QuadraticReducedScalar[float32](-3, 2, 0, 1.5))
}

func TestCubicThreeRealRoots(t *testing.T) {
	// (x - 1)(x - 2)(x - 3)
	tests := []struct {
		x1, x2 float64
		want   float64
	}{
		{0, 4, 3},
		{0, 1.5, 1},
		{1.5, 2.5, 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("[%v,%v]", tt.x1, tt.x2), func(t *testing.T) {
			got := CubicScalar(1, -6, 11, -6, tt.x1, tt.x2)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.InDelta(t, tt.want, CubicReducedScalar(-6, 11, -6, tt.x1, tt.x2), 1e-12)
		})
	}
}

func TestCubicOneRealRoot(t *testing.T) {
	assert.Equal(t, 2.0, CubicReducedScalar(0, 0, -8.0, 0, 10))
	assert.InDelta(t, 1.0, CubicReducedScalar(0, 1, -2.0, -5, 5), 1e-12)
	assert.InDelta(t, -3.0, CubicScalar(2, 6, 0.5, 1.5, -10, 10), 1e-12)
	assert.InDelta(t, float32(1), CubicReducedScalar[float32](0, 1, -2, -5, 5), 1e-5)
}

func TestCubicFallsBackToQuadratic(t *testing.T) {
	assert.Equal(t, 2.0, CubicScalar(0, 1, 0, -4.0, -10, 10))
	assert.Equal(t, -2.0, CubicScalar(0, 0, 2, 4.0, -10, 10))
}

func TestCubicRootInBracket(t *testing.T) {
	got := CubicScalar(1, -6, 11, -6.0, 0, 4)
	require.False(t, got != got, "root is NaN")
	ok := false
	for _, r := range []float64{1, 2, 3} {
		if d := got - r; d > -1e-12 && d < 1e-12 {
			ok = true
		}
	}
	assert.True(t, ok, "root %v not in {1, 2, 3}", got)
}

// Each lane solves its own equation (x - k)(x - k - 1)(x - k - 2) = 0 with
// the bracket around the middle root.
func TestCubicLanes(t *testing.T) {
	for _, w := range hwy.Widths {
		t.Run(fmt.Sprintf("width%d", w), func(t *testing.T) {
			defer hwy.ForceWidth(w)()
			n := hwy.MaxLanes[float64]()
			a, b, c, x1, x2 := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
			for i := range n {
				k := float64(i)
				r0, r1, r2 := k, k+1, k+2
				a[i] = -(r0 + r1 + r2)
				b[i] = r0*r1 + r0*r2 + r1*r2
				c[i] = -r0 * r1 * r2
				x1[i], x2[i] = k+0.5, k+1.5
			}
			got := CubicReduced(hwy.Load(a), hwy.Load(b), hwy.Load(c), hwy.Load(x1), hwy.Load(x2))
			require.Equal(t, n, got.NumLanes())
			for i := range n {
				assert.InDelta(t, float64(i+1), hwy.GetLane(got, i), 1e-9, "lane %d", i)
			}
		})
	}
}
