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
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/samber/lo"

	"github.com/ajroetker/go-jbm/hwy"
	"github.com/ajroetker/go-jbm/hwy/contrib/math"
)

func linspace(n int, lo, hi float64) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

func TestBasicUnary(t *testing.T) {
	tests := []struct {
		name string
		op   func(dst, src []float64)
		ref  func(float64) float64
	}{
		{"Sqrt", Sqrt[float64], stdmath.Sqrt},
		{"Dbl", Dbl[float64], func(x float64) float64 { return 2 * x }},
		{"Sqr", Sqr[float64], func(x float64) float64 { return x * x }},
		{"Opposite", Opposite[float64], func(x float64) float64 { return -x }},
		{"Reciprocal", Reciprocal[float64], func(x float64) float64 { return 1 / x }},
		{"Abs", Abs[float64], stdmath.Abs},
	}
	forEachWidth(t, func(t *testing.T) {
		for _, tt := range tests {
			for _, n := range sizes {
				src := linspace(n, -7, 9)
				dst := make([]float64, n)
				tt.op(dst, src)
				want := lo.Map(src, func(x float64, _ int) float64 { return tt.ref(x) })
				if diff := cmp.Diff(want, dst, cmpopts.EquateNaNs()); diff != "" {
					t.Errorf("%s n=%d mismatch (-want +got):\n%s", tt.name, n, diff)
				}
			}
		}
	})
}

// Every array element must get exactly the value the lane function gives a
// single lane, whatever position it lands in.
func TestTranscendentalsMatchLaneFunction(t *testing.T) {
	tests := []struct {
		name   string
		op     func(dst, src []float64)
		lane   func(hwy.Vec[float64]) hwy.Vec[float64]
		lo, hi float64
	}{
		{"Exp", Exp[float64], math.Exp[float64], -700, 700},
		{"Exp2", Exp2[float64], math.Exp2[float64], -1000, 1000},
		{"Exp10", Exp10[float64], math.Exp10[float64], -300, 300},
		{"Expm1", Expm1[float64], math.Expm1[float64], -5, 5},
		{"Log", Log[float64], math.Log[float64], -1, 1e6},
		{"Log2", Log2[float64], math.Log2[float64], 0, 1e3},
		{"Log10", Log10[float64], math.Log10[float64], 1e-3, 1e9},
		{"Log1p", Log1p[float64], math.Log1p[float64], -1, 10},
		{"Cbrt", Cbrt[float64], math.Cbrt[float64], -1e4, 1e4},
		{"Sin", Sin[float64], math.Sin[float64], -100, 100},
		{"Cos", Cos[float64], math.Cos[float64], -100, 100},
		{"Tan", Tan[float64], math.Tan[float64], -1.5, 1.5},
		{"Atan", Atan[float64], math.Atan[float64], -50, 50},
		{"Asin", Asin[float64], math.Asin[float64], -1, 1},
		{"Acos", Acos[float64], math.Acos[float64], -1, 1},
		{"Sinh", Sinh[float64], math.Sinh[float64], -30, 30},
		{"Cosh", Cosh[float64], math.Cosh[float64], -30, 30},
		{"Tanh", Tanh[float64], math.Tanh[float64], -30, 30},
		{"Asinh", Asinh[float64], math.Asinh[float64], -1e5, 1e5},
		{"Acosh", Acosh[float64], math.Acosh[float64], 1, 1e5},
		{"Atanh", Atanh[float64], math.Atanh[float64], -1, 1},
		{"Erf", Erf[float64], math.Erf[float64], -6, 6},
		{"Erfc", Erfc[float64], math.Erfc[float64], -6, 30},
	}
	forEachWidth(t, func(t *testing.T) {
		for _, tt := range tests {
			src := linspace(101, tt.lo, tt.hi)
			dst := make([]float64, len(src))
			tt.op(dst, src)
			want := lo.Map(src, func(x float64, _ int) float64 { return math.Eval(tt.lane, x) })
			if diff := cmp.Diff(want, dst, cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		}
	})
}

func TestTranscendentalsAgainstStdlib(t *testing.T) {
	src := lo.Times(300, func(i int) float32 { return float32(i)*0.01 + 0.005 })
	dst := make([]float32, len(src))
	Log(dst, src)
	for i, x := range src {
		want := float32(stdmath.Log(float64(x)))
		if !cmp.Equal(dst[i], want, cmpopts.EquateApprox(1e-6, 1e-7)) {
			t.Errorf("Log(%v) = %v, want %v", x, dst[i], want)
		}
	}
}

func TestSinCos(t *testing.T) {
	forEachWidth(t, func(t *testing.T) {
		src := linspace(53, -20, 20)
		s := make([]float64, len(src))
		c := make([]float64, len(src))
		SinCos(s, c, src)

		wantSin := make([]float64, len(src))
		wantCos := make([]float64, len(src))
		Sin(wantSin, src)
		Cos(wantCos, src)
		if diff := cmp.Diff(wantSin, s); diff != "" {
			t.Errorf("sine output mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(wantCos, c); diff != "" {
			t.Errorf("cosine output mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBinaryArrays(t *testing.T) {
	tests := []struct {
		name string
		op   func(dst, a, b []float64)
		ref  func(a, b float64) float64
	}{
		{"AddTo", AddTo[float64], func(a, b float64) float64 { return a + b }},
		{"SubTo", SubTo[float64], func(a, b float64) float64 { return a - b }},
		{"MulTo", MulTo[float64], func(a, b float64) float64 { return a * b }},
		{"DivTo", DivTo[float64], func(a, b float64) float64 { return a / b }},
		{"MaxTo", MaxTo[float64], stdmath.Max},
		{"MinTo", MinTo[float64], stdmath.Min},
		{"ModTo", ModTo[float64], func(a, b float64) float64 { return math.Eval2(math.Mod[float64], a, b) }},
		{"PowTo", PowTo[float64], func(a, b float64) float64 { return math.Eval2(math.Pow[float64], a, b) }},
		{"Atan2To", Atan2To[float64], func(a, b float64) float64 { return math.Eval2(math.Atan2[float64], a, b) }},
	}
	forEachWidth(t, func(t *testing.T) {
		for _, tt := range tests {
			for _, n := range sizes {
				a := linspace(n, 0.5, 20)
				b := linspace(n, 3, -2.75)
				dst := make([]float64, n)
				tt.op(dst, a, b)
				want := lo.Map(a, func(x float64, i int) float64 { return tt.ref(x, b[i]) })
				if diff := cmp.Diff(want, dst, cmpopts.EquateNaNs()); diff != "" {
					t.Errorf("%s n=%d mismatch (-want +got):\n%s", tt.name, n, diff)
				}
			}
		}
	})
}

func TestBinaryScalar(t *testing.T) {
	tests := []struct {
		name string
		op   func(dst, src []float32, s float32)
		ref  func(a, b float32) float32
	}{
		{"AddScalar", AddScalar[float32], func(a, b float32) float32 { return a + b }},
		{"SubScalar", SubScalar[float32], func(a, b float32) float32 { return a - b }},
		{"MulScalar", MulScalar[float32], func(a, b float32) float32 { return a * b }},
		{"DivScalar", DivScalar[float32], func(a, b float32) float32 { return a / b }},
		{"MaxScalar", MaxScalar[float32], func(a, b float32) float32 { return max(a, b) }},
		{"MinScalar", MinScalar[float32], func(a, b float32) float32 { return min(a, b) }},
		{"ModScalar", ModScalar[float32], func(a, b float32) float32 { return math.Eval2(math.Mod[float32], a, b) }},
		{"PowScalar", PowScalar[float32], func(a, b float32) float32 { return math.Eval2(math.Pow[float32], a, b) }},
	}
	forEachWidth(t, func(t *testing.T) {
		for _, tt := range tests {
			for _, n := range sizes {
				src := lo.Times(n, func(i int) float32 { return float32(i)*0.37 - 4 })
				dst := make([]float32, n)
				tt.op(dst, src, 1.25)
				want := lo.Map(src, func(x float32, _ int) float32 { return tt.ref(x, 1.25) })
				if diff := cmp.Diff(want, dst, cmpopts.EquateNaNs()); diff != "" {
					t.Errorf("%s n=%d mismatch (-want +got):\n%s", tt.name, n, diff)
				}
			}
		}
	})
}

func TestModScalarKnownValues(t *testing.T) {
	src := []float64{7, -7, 0.5, 12}
	dst := make([]float64, len(src))
	ModScalar(dst, src, 3)
	want := []float64{1, 2, 0.5, 0}
	if diff := cmp.Diff(want, dst, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Errorf("ModScalar mismatch (-want +got):\n%s", diff)
	}
}

func TestOperatorsInPlace(t *testing.T) {
	data := linspace(45, 1, 45)
	want := lo.Map(data, func(x float64, _ int) float64 { return x * x })
	Sqr(data, data)
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("in-place Sqr mismatch (-want +got):\n%s", diff)
	}
}
