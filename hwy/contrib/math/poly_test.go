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
	"testing"

	"github.com/ajroetker/go-jbm/hwy"
)

func TestPolynomial(t *testing.T) {
	tests := []struct {
		name string
		p    []float64
		x    float64
		want float64
	}{
		{"empty", nil, 3, 0},
		{"constant", []float64{4}, 3, 4},
		{"linear", []float64{1, 2}, 3, 7},
		{"quadratic", []float64{1, 2, 3}, 2, 17},
		{"cubic", []float64{-1, 0, 0, 1}, 2, 7},
	}
	forEachWidth(t, func(t *testing.T) {
		for _, tt := range tests {
			x := hwy.Set(tt.x)
			got := Polynomial(x, tt.p)
			if got.NumLanes() != x.NumLanes() {
				t.Errorf("%s: %d lanes, want %d", tt.name, got.NumLanes(), x.NumLanes())
			}
			for i, v := range got.Data() {
				if v != tt.want {
					t.Errorf("%s: lane %d = %v, want %v", tt.name, i, v, tt.want)
				}
			}
		}
	})
}

func TestPolynomialTailLanes(t *testing.T) {
	got := Polynomial(hwy.SetN[float32](2, 1), []float32{5})
	if got.NumLanes() != 1 || hwy.GetLane(got, 0) != 5 {
		t.Errorf("Polynomial on a single lane = %v", got.Data())
	}
}

func TestRational(t *testing.T) {
	tests := []struct {
		name string
		p    []float64
		m    int
		x    float64
		want float64
	}{
		// (1 + 2x) / (1 + x*0.5)
		{"1_1", []float64{1, 2, 0.5}, 1, 2, 2.5},
		// (3) / (1 + x*(1 + x))
		{"0_2", []float64{3, 1, 1}, 0, 1, 1},
		{"numerator only", []float64{1, 2}, 1, 3, 7},
	}
	for _, tt := range tests {
		if got := Eval(func(v hwy.Vec[float64]) hwy.Vec[float64] { return Rational(v, tt.p, tt.m) }, tt.x); got != tt.want {
			t.Errorf("%s: Rational(%v) = %v, want %v", tt.name, tt.x, got, tt.want)
		}
	}
}

func TestCoefficientTables(t *testing.T) {
	tables := []struct {
		name     string
		f32      []float32
		f64      []float64
		num32    int
		num64    int
		rational bool
	}{
		{"exp2", exp2Poly_f32, exp2Poly_f64, 0, 0, false},
		{"expm1", expm1Poly_f32, expm1Poly_f64, 0, 0, false},
		{"log2", log2Poly_f32, log2Poly_f64, 0, 0, false},
		{"cbrt", cbrtPoly_f32, cbrtPoly_f64, 0, 0, false},
		{"sin", sinPoly_f32, sinPoly_f64, 0, 0, false},
		{"cos", cosPoly_f32, cosPoly_f64, 0, 0, false},
		{"erf", erfPoly_f32, erfPoly_f64, 0, 0, false},
		{"atan", atanRational_f32, atanRational_f64, atanNum_f32, atanNum_f64, true},
		{"erfc", erfcRational_f32, erfcRational_f64, erfcNum_f32, erfcNum_f64, true},
	}
	for _, tt := range tables {
		if got := coeffs[float32](tt.f32, tt.f64); len(got) != len(tt.f32) || &got[0] != &tt.f32[0] {
			t.Errorf("%s: float32 table not selected", tt.name)
		}
		if got := coeffs[float64](tt.f32, tt.f64); len(got) != len(tt.f64) || &got[0] != &tt.f64[0] {
			t.Errorf("%s: float64 table not selected", tt.name)
		}
		if tt.rational && (tt.num32 >= len(tt.f32)-1 || tt.num64 >= len(tt.f64)-1) {
			t.Errorf("%s: numerator degree leaves no denominator", tt.name)
		}
	}
}
