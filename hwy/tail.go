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

// FirstN returns a MaxLanes-wide mask whose first n lanes are active.
func FirstN[T Lanes](n int) Mask[T] {
	lanes := MaxLanes[T]()
	return Mask[T]{bits: lowBits(max(0, min(n, lanes))), n: lanes}
}

// TailMask is FirstN under the name used for the remainder of an array
// whose length is not a multiple of MaxLanes:
//
//	if rem := len(x) % hwy.MaxLanes[float32](); rem > 0 {
//		m := hwy.TailMask[float32](rem)
//		v := hwy.MaskLoad(m, x[len(x)-rem:])
//		hwy.MaskStore(m, hwy.Mul(v, v), y[len(y)-rem:])
//	}
func TailMask[T Lanes](count int) Mask[T] {
	return FirstN[T](count)
}

// MaskLoad reads src only at the active lanes; the others are zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	v := Vec[T]{n: mask.n}
	for i := range min(len(src), mask.n) {
		if mask.bits>>uint(i)&1 != 0 {
			v.data[i] = src[i]
		}
	}
	return v
}

// MaskStore writes only the active lanes of v into dst.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	for i := range min(len(dst), v.n, mask.n) {
		if mask.bits>>uint(i)&1 != 0 {
			dst[i] = v.data[i]
		}
	}
}

// ProcessWithTail splits [0, size) into MaxLanes-sized blocks. It calls
// full with the offset of every complete block, then tail once with the
// offset and length of the remainder if there is one.
func ProcessWithTail[T Lanes](size int, full func(offset int), tail func(offset, count int)) {
	step := MaxLanes[T]()
	offset := 0
	for ; offset+step <= size; offset += step {
		full(offset)
	}
	if offset < size {
		tail(offset, size-offset)
	}
}
