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
// Package solve finds a real root of quadratic and cubic equations inside a
// caller-given bracket, lane by lane.
//
// The solvers are closed-form and branch-free: every candidate root is
// computed for every lane and the first one inside [x1, x2] is selected.
// They do not check that a root exists in the bracket. When none does, the
// result is one of the candidates (or NaN) and carries no meaning.
package solve

import (
	stdmath "math"

	"github.com/ajroetker/go-jbm/hwy"
	"github.com/ajroetker/go-jbm/hwy/contrib/math"
)

func negligible[T hwy.Floats](a hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Less(hwy.Abs(a), hwy.Set(T(hwy.FormatOf[T]().Epsilon)))
}

func outside[T hwy.Floats](x, x1, x2 hwy.Vec[T]) hwy.Mask[T] {
	return hwy.MaskOr(hwy.Less(x, x1), hwy.Greater(x, x2))
}

// QuadraticReduced solves x² + a·x + b = 0. It returns -a/2 + √((a/2)² - b)
// when that root lies in [x1, x2] and -a/2 - √((a/2)² - b) otherwise.
func QuadraticReduced[T hwy.Floats](a, b, x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	h := hwy.Mul(a, hwy.Set[T](-0.5))
	k := hwy.Sqrt(hwy.NegMulAdd(hwy.Set[T](1), b, hwy.Mul(h, h)))
	r1 := hwy.Add(h, k)
	r2 := hwy.Sub(h, k)
	return hwy.IfThenElse(outside(r1, x1, x2), r2, r1)
}

// Quadratic solves a·x² + b·x + c = 0. Lanes where |a| is below the
// precision epsilon are solved as the linear equation b·x + c = 0.
func Quadratic[T hwy.Floats](a, b, c, x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	linear := hwy.Neg(hwy.Div(c, b))
	reduced := QuadraticReduced(hwy.Div(b, a), hwy.Div(c, a), x1, x2)
	return hwy.IfThenElse(negligible(a), linear, reduced)
}

// CubicReduced solves x³ + a·x² + b·x + c = 0.
//
// The cubic is depressed with x = t - a/3. When it has three real roots
// they come from the trigonometric form, tried in the order of the phase
// offsets 0, 2π/3 and -2π/3 until one lands in [x1, x2]. Otherwise the
// single real root comes from Cardano's formula.
func CubicReduced[T hwy.Floats](a, b, c, x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	third := hwy.Set(T(1.0 / 3))
	a3 := hwy.Mul(a, third)
	a32 := hwy.Mul(a3, a3)
	p := hwy.Sub(hwy.Mul(b, third), a32)
	q := hwy.NegMulAdd(a3, a32, hwy.Mul(hwy.Sub(hwy.Mul(b, a3), c), hwy.Set[T](0.5)))
	disc := hwy.MulAdd(q, q, hwy.Mul(p, hwy.Mul(p, p)))

	// Three real roots.
	m := hwy.Sqrt(hwy.Neg(p))
	phi := hwy.Mul(math.Acos(hwy.Div(q, hwy.Mul(m, hwy.Mul(m, m)))), third)
	m2 := hwy.Add(m, m)
	shift := hwy.Set(T(2 * stdmath.Pi / 3))
	t0 := hwy.Sub(hwy.Mul(m2, math.Cos(phi)), a3)
	t1 := hwy.Sub(hwy.Mul(m2, math.Cos(hwy.Add(phi, shift))), a3)
	t2 := hwy.Sub(hwy.Mul(m2, math.Cos(hwy.Sub(phi, shift))), a3)
	out0 := outside(t0, x1, x2)
	trig := hwy.IfThenElse(out0, t1, t0)
	trig = hwy.IfThenElse(hwy.MaskAnd(out0, outside(t1, x1, x2)), t2, trig)

	// One real root.
	s := hwy.Sqrt(disc)
	cardano := hwy.Sub(hwy.Add(math.Cbrt(hwy.Add(q, s)), math.Cbrt(hwy.Sub(q, s))), a3)

	return hwy.IfThenElse(hwy.Less(disc, hwy.Zero[T]()), trig, cardano)
}

// Cubic solves a·x³ + b·x² + c·x + d = 0. Lanes where |a| is below the
// precision epsilon fall back to Quadratic(b, c, d).
func Cubic[T hwy.Floats](a, b, c, d, x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	quad := Quadratic(b, c, d, x1, x2)
	reduced := CubicReduced(hwy.Div(b, a), hwy.Div(c, a), hwy.Div(d, a), x1, x2)
	return hwy.IfThenElse(negligible(a), quad, reduced)
}

func lane[T hwy.Floats](x T) hwy.Vec[T] { return hwy.SetN(x, 1) }

// QuadraticReducedScalar is QuadraticReduced on single values.
func QuadraticReducedScalar[T hwy.Floats](a, b, x1, x2 T) T {
	return hwy.GetLane(QuadraticReduced(lane(a), lane(b), lane(x1), lane(x2)), 0)
}

// QuadraticScalar is Quadratic on single values.
func QuadraticScalar[T hwy.Floats](a, b, c, x1, x2 T) T {
	return hwy.GetLane(Quadratic(lane(a), lane(b), lane(c), lane(x1), lane(x2)), 0)
}

// CubicReducedScalar is CubicReduced on single values.
func CubicReducedScalar[T hwy.Floats](a, b, c, x1, x2 T) T {
	return hwy.GetLane(CubicReduced(lane(a), lane(b), lane(c), lane(x1), lane(x2)), 0)
}

// CubicScalar is Cubic on single values.
func CubicScalar[T hwy.Floats](a, b, c, d, x1, x2 T) T {
	return hwy.GetLane(Cubic(lane(a), lane(b), lane(c), lane(d), lane(x1), lane(x2)), 0)
}
