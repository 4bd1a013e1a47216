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
package algo

import (
	"fmt"
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"

	"github.com/ajroetker/go-jbm/hwy"
)

var sizes = []int{0, 1, 3, 7, 8, 15, 16, 31, 32, 63, 64, 100, 1000}

func forEachWidth(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	for _, w := range hwy.Widths {
		t.Run(fmt.Sprintf("width%d", w), func(t *testing.T) {
			defer hwy.ForceWidth(w)()
			fn(t)
		})
	}
}

func ramp(n int) []float64 {
	return lo.Times(n, func(i int) float64 { return float64(i)*0.25 - 3 })
}

func sqrPlus(x hwy.Vec[float64]) hwy.Vec[float64] {
	return hwy.MulAdd(x, x, x)
}

func TestTransform(t *testing.T) {
	forEachWidth(t, func(t *testing.T) {
		for _, n := range sizes {
			src := ramp(n)
			dst := make([]float64, n)
			Transform(dst, src, sqrPlus)

			want := lo.Map(src, func(x float64, _ int) float64 { return stdmath.FMA(x, x, x) })
			if diff := cmp.Diff(want, dst); diff != "" {
				t.Errorf("n=%d: Transform mismatch (-want +got):\n%s", n, diff)
			}
		}
	})
}

func TestTransformInPlace(t *testing.T) {
	forEachWidth(t, func(t *testing.T) {
		data := ramp(77)
		want := lo.Map(data, func(x float64, _ int) float64 { return -x })
		Transform(data, data, hwy.Neg[float64])
		if diff := cmp.Diff(want, data); diff != "" {
			t.Errorf("in-place Transform mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestTransformShortDestination(t *testing.T) {
	src := ramp(50)
	dst := make([]float64, 20)
	Transform(dst, src, sqrPlus)
	if dst[19] != stdmath.FMA(src[19], src[19], src[19]) {
		t.Errorf("dst[19] = %v", dst[19])
	}
}

func TestTransformVisitsEachElementOnce(t *testing.T) {
	forEachWidth(t, func(t *testing.T) {
		for _, n := range sizes {
			src := make([]float32, n)
			dst := make([]float32, n)
			lanes := 0
			Transform(dst, src, func(x hwy.Vec[float32]) hwy.Vec[float32] {
				lanes += x.NumLanes()
				return hwy.Add(x, hwy.Set[float32](1))
			})
			if lanes != n {
				t.Errorf("n=%d: lane function saw %d lanes", n, lanes)
			}
			for i, v := range dst {
				if v != 1 {
					t.Fatalf("n=%d: dst[%d] = %v", n, i, v)
				}
			}
		}
	})
}

func TestTransform2(t *testing.T) {
	forEachWidth(t, func(t *testing.T) {
		for _, n := range sizes {
			a := ramp(n)
			b := lo.Times(n, func(i int) float64 { return float64(n - i) })
			dst := make([]float64, n)
			Transform2(dst, a, b, hwy.Mul[float64])

			want := lo.Map(a, func(x float64, i int) float64 { return x * b[i] })
			if diff := cmp.Diff(want, dst); diff != "" {
				t.Errorf("n=%d: Transform2 mismatch (-want +got):\n%s", n, diff)
			}
		}
	})
}

func TestTransformScalar(t *testing.T) {
	forEachWidth(t, func(t *testing.T) {
		for _, n := range sizes {
			src := ramp(n)
			dst := make([]float64, n)
			TransformScalar(dst, src, 2.5, hwy.Sub[float64])

			want := lo.Map(src, func(x float64, _ int) float64 { return x - 2.5 })
			if diff := cmp.Diff(want, dst); diff != "" {
				t.Errorf("n=%d: TransformScalar mismatch (-want +got):\n%s", n, diff)
			}
		}
	})
}

func TestTransform2Out(t *testing.T) {
	split := func(x hwy.Vec[float64]) (hwy.Vec[float64], hwy.Vec[float64]) {
		return hwy.Floor(x), hwy.Sub(x, hwy.Floor(x))
	}
	forEachWidth(t, func(t *testing.T) {
		for _, n := range sizes {
			src := ramp(n)
			whole := make([]float64, n)
			frac := make([]float64, n)
			Transform2Out(whole, frac, src, split)

			wantWhole := lo.Map(src, func(x float64, _ int) float64 { return stdmath.Floor(x) })
			wantFrac := lo.Map(src, func(x float64, _ int) float64 { return x - stdmath.Floor(x) })
			if diff := cmp.Diff(wantWhole, whole); diff != "" {
				t.Errorf("n=%d: first output mismatch (-want +got):\n%s", n, diff)
			}
			if diff := cmp.Diff(wantFrac, frac); diff != "" {
				t.Errorf("n=%d: second output mismatch (-want +got):\n%s", n, diff)
			}
		}
	})
}

func BenchmarkTransform(b *testing.B) {
	src := ramp(4096)
	dst := make([]float64, len(src))
	b.SetBytes(int64(len(src) * 8))
	b.ReportAllocs()
	for b.Loop() {
		Transform(dst, src, sqrPlus)
	}
}
