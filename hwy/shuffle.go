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
package hwy

// SlideDownLanes shifts all lanes down (toward lower indices) by offset.
// Upper lanes are filled with zeros and lanes that slide out are discarded.
// [1,2,3,4,5,6,7,8] with offset=2 -> [3,4,5,6,7,8,0,0]
func SlideDownLanes[T Lanes](v Vec[T], offset int) Vec[T] {
	r := Vec[T]{n: v.n}
	if offset <= 0 {
		return v
	}
	if offset >= v.n {
		return r
	}
	copy(r.data[:v.n-offset], v.data[offset:v.n])
	return r
}

// reduceTree folds the lanes of v pairwise, halving the active width each
// step the way a horizontal SIMD reduction does. Lane counts that are not a
// power of two fold the leftover lanes in order.
func reduceTree[T Lanes](v Vec[T], op func(a, b Vec[T]) Vec[T]) T {
	n := v.n
	for n > 1 && n&(n-1) == 0 {
		n /= 2
		v = op(v, SlideDownLanes(v, n))
	}
	acc := v.data[0]
	for i := 1; i < n; i++ {
		acc = GetLane(op(SetN(acc, 1), SetN(v.data[i], 1)), 0)
	}
	return acc
}
