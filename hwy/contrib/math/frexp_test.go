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
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-jbm/hwy"
)

var frexpInputs = []float64{
	1, -1, 0.75, 3.5, -1234.5678, 1e300, -1e-300,
	stdmath.MaxFloat64, -stdmath.MaxFloat64,
	stdmath.SmallestNonzeroFloat64, -stdmath.SmallestNonzeroFloat64,
	0x1p-1022, 0x1.fffffffffffffp-1023, 1e-310, -3e-320,
}

var frexpInputs32 = []float32{
	1, -1, 0.75, 3.5, -1234.5678, 1e30, -1e-30,
	stdmath.MaxFloat32, stdmath.SmallestNonzeroFloat32, -stdmath.SmallestNonzeroFloat32,
	0x1p-126, 1e-40, -3e-44,
}

func frexp1[T hwy.Floats](x T) (T, int32) {
	m, e := Frexp(hwy.SetN(x, 1))
	return hwy.GetLane(m, 0), hwy.GetLane(e, 0)
}

func ldexp1[T hwy.Floats](x T, e int32) T {
	return hwy.GetLane(Ldexp(hwy.SetN(x, 1), hwy.SetN(e, 1)), 0)
}

func roundTrip[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	m, e := Frexp(v)
	return Ldexp(m, e)
}

func TestFrexp(t *testing.T) {
	forEachWidth(t, func(t *testing.T) {
		for _, x := range frexpInputs {
			m, e := frexp1(x)
			wm, we := stdmath.Frexp(x)
			if m != wm || int(e) != we {
				t.Errorf("Frexp(%v) = (%v, %d), want (%v, %d)", x, m, e, wm, we)
			}
		}
		for _, x := range frexpInputs32 {
			m, e := frexp1(x)
			wm, we := stdmath.Frexp(float64(x))
			if float64(m) != wm || int(e) != we {
				t.Errorf("Frexp(%v) = (%v, %d), want (%v, %d)", x, m, e, wm, we)
			}
		}
	})
}

func TestFrexpSpecialCases(t *testing.T) {
	for _, x := range []float64{0, negZ, inf, negInf, nan} {
		m, e := frexp1(x)
		if !sameFloat(m, x) || e != 0 {
			t.Errorf("Frexp(%v) = (%v, %d), want (%v, 0)", x, m, e, x)
		}
		m32, e32 := frexp1(float32(x))
		if !sameFloat(float64(m32), x) || e32 != 0 {
			t.Errorf("Frexp(float32(%v)) = (%v, %d), want (%v, 0)", x, m32, e32, x)
		}
	}
}

func TestFrexpLdexpRoundTrip(t *testing.T) {
	forEachWidth(t, func(t *testing.T) {
		xs := append([]float64{}, frexpInputs...)
		xs = append(xs, sample[float64](1e-320, 1e300, 999, true)...)
		got := apply(roundTrip[float64], xs)
		for i, x := range xs {
			if stdmath.Float64bits(got[i]) != stdmath.Float64bits(x) {
				t.Errorf("Ldexp(Frexp(%v)) = %v", x, got[i])
			}
		}

		xs32 := append([]float32{}, frexpInputs32...)
		xs32 = append(xs32, sample[float32](1e-44, 1e38, 999, true)...)
		got32 := apply(roundTrip[float32], xs32)
		for i, x := range xs32 {
			if stdmath.Float32bits(got32[i]) != stdmath.Float32bits(x) {
				t.Errorf("Ldexp(Frexp(%v)) = %v", x, got32[i])
			}
		}
	})
}

func TestLdexp(t *testing.T) {
	tests := []struct {
		x    float64
		e    int32
		want float64
	}{
		{1, -1074, stdmath.SmallestNonzeroFloat64},
		{1, -1075, 0},
		{-1, -1080, negZ},
		{1, 1023, 0x1p1023},
		{1, 1024, inf},
		{-1, 1024, negInf},
		{0.75, -1073, 0x1p-1073},
		{0x1p-1074, 1074, 1},
		{1, 100000, inf},
		{1, -100000, 0},
		{0, 5000, 0},
		{negZ, 7, negZ},
		{inf, -5000, inf},
		{nan, 3, nan},
	}
	for _, tt := range tests {
		if got := ldexp1(tt.x, tt.e); !sameFloat(got, tt.want) {
			t.Errorf("Ldexp(%v, %d) = %v, want %v", tt.x, tt.e, got, tt.want)
		}
	}

	// Normal-range mantissas round once, exactly like the scalar Ldexp.
	for _, x := range []float64{0.5, 0.75, 1, 1.2345, 1023.9, -7.25} {
		for e := int32(-1100); e <= 1100; e += 7 {
			got, want := ldexp1(x, e), stdmath.Ldexp(x, int(e))
			if stdmath.Float64bits(got) != stdmath.Float64bits(want) {
				t.Fatalf("Ldexp(%v, %d) = %v, want %v", x, e, got, want)
			}
			got32, want32 := ldexp1(float32(x), e), float32(stdmath.Ldexp(float64(float32(x)), int(e)))
			if e > -120 && stdmath.Float32bits(got32) != stdmath.Float32bits(want32) {
				t.Fatalf("Ldexp(float32(%v), %d) = %v, want %v", x, e, got32, want32)
			}
		}
	}
}
