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

import "github.com/ajroetker/go-jbm/hwy"

// PrefetchDistance is how many elements ahead of the current block the
// unrolled loops prefetch.
const PrefetchDistance = 256

// Unroll is the number of vectors processed per iteration of the main loop.
const Unroll = 4

// Transform sets dst[i] = fn(src[i]) for every i < min(len(dst), len(src)).
//
// Example:
//
//	algo.Transform(out, in, func(x hwy.Vec[float32]) hwy.Vec[float32] {
//	    return hwy.MulAdd(x, x, x) // x² + x
//	})
func Transform[T hwy.Floats](dst, src []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(dst), len(src))
	lanes := hwy.MaxLanes[T]()
	i := 0

	for ; i+Unroll*lanes <= n; i += Unroll * lanes {
		hwy.Prefetch(src, i+PrefetchDistance)
		x0, x1, x2, x3 := hwy.Load4(src[i:])
		y0, y1, y2, y3 := fn(x0), fn(x1), fn(x2), fn(x3)
		hwy.Store(y0, dst[i:])
		hwy.Store(y1, dst[i+lanes:])
		hwy.Store(y2, dst[i+2*lanes:])
		hwy.Store(y3, dst[i+3*lanes:])
	}

	for ; i+lanes <= n; i += lanes {
		hwy.Store(fn(hwy.Load(src[i:])), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = hwy.GetLane(fn(hwy.LoadN(src[i:], 1)), 0)
	}
}

// Transform2 sets dst[i] = fn(a[i], b[i]) for every i below the shortest
// of the three lengths.
func Transform2[T hwy.Floats](dst, a, b []T, fn func(a, b hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(dst), len(a), len(b))
	lanes := hwy.MaxLanes[T]()
	i := 0

	for ; i+Unroll*lanes <= n; i += Unroll * lanes {
		hwy.Prefetch(a, i+PrefetchDistance)
		hwy.Prefetch(b, i+PrefetchDistance)
		a0, a1, a2, a3 := hwy.Load4(a[i:])
		b0, b1, b2, b3 := hwy.Load4(b[i:])
		y0, y1, y2, y3 := fn(a0, b0), fn(a1, b1), fn(a2, b2), fn(a3, b3)
		hwy.Store(y0, dst[i:])
		hwy.Store(y1, dst[i+lanes:])
		hwy.Store(y2, dst[i+2*lanes:])
		hwy.Store(y3, dst[i+3*lanes:])
	}

	for ; i+lanes <= n; i += lanes {
		hwy.Store(fn(hwy.Load(a[i:]), hwy.Load(b[i:])), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = hwy.GetLane(fn(hwy.LoadN(a[i:], 1), hwy.LoadN(b[i:], 1)), 0)
	}
}

// TransformScalar sets dst[i] = fn(src[i], s), with s broadcast to every
// lane.
func TransformScalar[T hwy.Floats](dst, src []T, s T, fn func(a, b hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(dst), len(src))
	lanes := hwy.MaxLanes[T]()
	vs := hwy.Set(s)
	i := 0

	for ; i+Unroll*lanes <= n; i += Unroll * lanes {
		hwy.Prefetch(src, i+PrefetchDistance)
		x0, x1, x2, x3 := hwy.Load4(src[i:])
		y0, y1, y2, y3 := fn(x0, vs), fn(x1, vs), fn(x2, vs), fn(x3, vs)
		hwy.Store(y0, dst[i:])
		hwy.Store(y1, dst[i+lanes:])
		hwy.Store(y2, dst[i+2*lanes:])
		hwy.Store(y3, dst[i+3*lanes:])
	}

	for ; i+lanes <= n; i += lanes {
		hwy.Store(fn(hwy.Load(src[i:]), vs), dst[i:])
	}

	one := hwy.SetN(s, 1)
	for ; i < n; i++ {
		dst[i] = hwy.GetLane(fn(hwy.LoadN(src[i:], 1), one), 0)
	}
}

// Transform2Out sets dst1[i], dst2[i] = fn(src[i]) for lane functions with
// two results, such as a joint sine and cosine.
func Transform2Out[T hwy.Floats](dst1, dst2, src []T, fn func(hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T])) {
	n := min(len(dst1), len(dst2), len(src))
	lanes := hwy.MaxLanes[T]()
	i := 0

	for ; i+Unroll*lanes <= n; i += Unroll * lanes {
		hwy.Prefetch(src, i+PrefetchDistance)
		x0, x1, x2, x3 := hwy.Load4(src[i:])
		p0, q0 := fn(x0)
		p1, q1 := fn(x1)
		p2, q2 := fn(x2)
		p3, q3 := fn(x3)
		hwy.Store(p0, dst1[i:])
		hwy.Store(p1, dst1[i+lanes:])
		hwy.Store(p2, dst1[i+2*lanes:])
		hwy.Store(p3, dst1[i+3*lanes:])
		hwy.Store(q0, dst2[i:])
		hwy.Store(q1, dst2[i+lanes:])
		hwy.Store(q2, dst2[i+2*lanes:])
		hwy.Store(q3, dst2[i+3*lanes:])
	}

	for ; i+lanes <= n; i += lanes {
		p, q := fn(hwy.Load(src[i:]))
		hwy.Store(p, dst1[i:])
		hwy.Store(q, dst2[i:])
	}

	for ; i < n; i++ {
		p, q := fn(hwy.LoadN(src[i:], 1))
		dst1[i] = hwy.GetLane(p, 0)
		dst2[i] = hwy.GetLane(q, 0)
	}
}
