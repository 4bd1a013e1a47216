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
package limiter

import "github.com/ajroetker/go-jbm/hwy"

func epsilon[T hwy.Floats]() hwy.Vec[T] {
	return hwy.Set(T(hwy.FormatOf[T]().Epsilon))
}

// limited evaluates fn on r = d1/d2 and zeroes the lanes where
// d1·d2 ≤ ε.
func limited[T hwy.Floats](d1, d2 hwy.Vec[T], fn func(r hwy.Vec[T]) hwy.Vec[T]) hwy.Vec[T] {
	flat := hwy.LessEqual(hwy.Mul(d1, d2), epsilon[T]())
	return hwy.IfThenZeroElse(flat, fn(hwy.Div(d1, d2)))
}

// Total returns 0: the first-order upwind scheme.
func Total[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return hwy.SetN(T(0), min(d1.NumLanes(), d2.NumLanes()))
}

// Null returns 1: the unlimited second-order scheme.
func Null[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return hwy.SetN(T(1), min(d1.NumLanes(), d2.NumLanes()))
}

// Centred returns d1/d2, or 0 where |d2| < ε.
func Centred[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	flat := hwy.Less(hwy.Abs(d2), epsilon[T]())
	return hwy.IfThenZeroElse(flat, hwy.Div(d1, d2))
}

// Superbee returns max(min(2r, 1), min(r, 2)).
func Superbee[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return limited(d1, d2, func(r hwy.Vec[T]) hwy.Vec[T] {
		one, two := hwy.Set[T](1), hwy.Set[T](2)
		return hwy.Max(hwy.Min(hwy.Add(r, r), one), hwy.Min(r, two))
	})
}

// Minmod returns min(r, 1).
func Minmod[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return limited(d1, d2, func(r hwy.Vec[T]) hwy.Vec[T] {
		return hwy.Min(r, hwy.Set[T](1))
	})
}

// VanLeer returns 2r/(1 + r).
func VanLeer[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return limited(d1, d2, func(r hwy.Vec[T]) hwy.Vec[T] {
		return hwy.Div(hwy.Add(r, r), hwy.Add(hwy.Set[T](1), r))
	})
}

// VanAlbada returns (r + r²)/(1 + r²).
func VanAlbada[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return limited(d1, d2, func(r hwy.Vec[T]) hwy.Vec[T] {
		r2 := hwy.Mul(r, r)
		return hwy.Div(hwy.Add(r, r2), hwy.Add(hwy.Set[T](1), r2))
	})
}

// Minsuper returns min(r, 2).
func Minsuper[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return limited(d1, d2, func(r hwy.Vec[T]) hwy.Vec[T] {
		return hwy.Min(r, hwy.Set[T](2))
	})
}

// Supermin returns min(2r, 1).
func Supermin[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return limited(d1, d2, func(r hwy.Vec[T]) hwy.Vec[T] {
		return hwy.Min(hwy.Add(r, r), hwy.Set[T](1))
	})
}

// MonotonizedCentral returns min(2r, (1 + r)/2, 2).
func MonotonizedCentral[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return limited(d1, d2, func(r hwy.Vec[T]) hwy.Vec[T] {
		mean := hwy.Mul(hwy.Add(hwy.Set[T](1), r), hwy.Set[T](0.5))
		return hwy.Min(hwy.Min(hwy.Add(r, r), mean), hwy.Set[T](2))
	})
}

// Mean returns (1 + r)/2, the average of Null and Centred.
func Mean[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return limited(d1, d2, func(r hwy.Vec[T]) hwy.Vec[T] {
		return hwy.Mul(hwy.Add(hwy.Set[T](1), r), hwy.Set[T](0.5))
	})
}
