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

// Package hwy provides portable lane vectors with runtime width dispatch.
//
// A Vec holds between 1 and MaxCapacity lanes of a 32- or 64-bit element
// type. The number of lanes of a freshly created vector is chosen by the
// width detected at startup (see CurrentWidth), so the same generic code
// runs at 128, 256 or 512 bits, and at a single lane for array tails.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-jbm/hwy"
//
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//	hwy.Store(hwy.MulAdd(a, b, hwy.Set[float64](1)), output)
//
// Binary operations produce as many lanes as the narrower operand, so
// broadcast constants created with Set combine with vectors of any width.
// Vectors are plain values: no operation allocates.
package hwy

import "golang.org/x/exp/constraints"

// MaxCapacity is the largest lane count a Vec can hold: 512 bits of
// 32-bit lanes.
const MaxCapacity = 16

// Floats is a constraint for floating-point lane types.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector of lanes.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data [MaxCapacity]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse, MaskLoad, and MaskStore to perform
// conditional operations.
type Mask[T Lanes] struct {
	// bits has bit i set if lane i is active.
	bits uint32
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits == lowBits(m.n)
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for b := m.bits; b != 0; b &= b - 1 {
		count++
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits&(1<<uint(i)) != 0
}

func lowBits(n int) uint32 {
	if n >= 32 {
		return ^uint32(0)
	}
	return uint32(1)<<uint(n) - 1
}

func lanes2(a, b int) int {
	return min(a, b)
}

func lanes3(a, b, c int) int {
	return min(a, b, c)
}
