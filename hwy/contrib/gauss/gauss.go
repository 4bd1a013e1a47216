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
// Package gauss integrates lane functions with a 7-point Gauss-Legendre
// rule.
//
// The rule is exact for polynomials up to degree 13. Integral works lane by
// lane, so one call integrates a different interval in every lane.
package gauss

import "github.com/ajroetker/go-jbm/hwy"

// Points is the number of function evaluations per integral.
const Points = 7

// Abscissas of the positive nodes on [-1, 1]. The central node is 0.
var nodes = [...]float64{
	0.4058451513773971669066064120769615,
	0.7415311855993944398638647732807884,
	0.9491079123427585245261896840478513,
}

// weights[0] belongs to the central node, weights[i] to ±nodes[i-1].
var weights = [...]float64{
	0.4179591836734693877551020408163265,
	0.3818300505051189449503697754889751,
	0.2797053914892766679014677714237796,
	0.1294849661688696932706114326790820,
}

// Integral returns the integral of f over [x1, x2] in every lane.
//
// The interval is mapped onto [-1, 1] around its midpoint x = (x1+x2)/2
// with half-width h = (x2-x1)/2:
//
//	h·(w0·f(x) + Σ wi·(f(x - h·ai) + f(x + h·ai)))
func Integral[T hwy.Floats](f func(hwy.Vec[T]) hwy.Vec[T], x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	half := hwy.Set[T](0.5)
	x := hwy.Mul(hwy.Add(x1, x2), half)
	h := hwy.Mul(hwy.Sub(x2, x1), half)

	sum := hwy.Mul(hwy.Set(T(weights[0])), f(x))
	for i, a := range nodes {
		dx := hwy.Mul(h, hwy.Set(T(a)))
		pair := hwy.Add(f(hwy.Sub(x, dx)), f(hwy.Add(x, dx)))
		sum = hwy.MulAdd(hwy.Set(T(weights[i+1])), pair, sum)
	}
	return hwy.Mul(h, sum)
}

// IntegralScalar integrates f over the single interval [x1, x2].
func IntegralScalar[T hwy.Floats](f func(hwy.Vec[T]) hwy.Vec[T], x1, x2 T) T {
	return hwy.GetLane(Integral(f, hwy.SetN(x1, 1), hwy.SetN(x2, 1)), 0)
}
