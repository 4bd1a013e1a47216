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

import (
	"math"
	"unsafe"
)

// Format describes the IEEE-754 layout of a float lane type. All bit masks
// are expressed in the low bits of a uint64 so the same code handles both
// precisions through AsBits and FromBits.
type Format struct {
	// SignMask selects the sign bit.
	SignMask uint64
	// ExponentMask selects the biased exponent field.
	ExponentMask uint64
	// MantissaMask selects the stored fraction bits.
	MantissaMask uint64
	// MantissaBits is the width of the stored fraction (23 or 52).
	MantissaBits int
	// Bias is the exponent bias (127 or 1023).
	Bias int32
	// MinNormalExponent is the unbiased exponent of the smallest normal.
	MinNormalExponent int32
	// MaxExponent is the unbiased exponent of the largest finite value.
	MaxExponent int32
	// Epsilon is the distance from 1 to the next representable value.
	Epsilon float64
	// MinNormal is the smallest positive normal value.
	MinNormal float64
}

// MinSubnormalExponent returns the exponent of the smallest positive subnormal.
func (f Format) MinSubnormalExponent() int32 {
	return f.MinNormalExponent - int32(f.MantissaBits)
}

// Float32Format is the layout of float32.
var Float32Format = Format{
	SignMask:          0x80000000,
	ExponentMask:      0x7f800000,
	MantissaMask:      0x007fffff,
	MantissaBits:      23,
	Bias:              127,
	MinNormalExponent: -126,
	MaxExponent:       127,
	Epsilon:           0x1p-23,
	MinNormal:         0x1p-126,
}

// Float64Format is the layout of float64.
var Float64Format = Format{
	SignMask:          0x8000000000000000,
	ExponentMask:      0x7ff0000000000000,
	MantissaMask:      0x000fffffffffffff,
	MantissaBits:      52,
	Bias:              1023,
	MinNormalExponent: -1022,
	MaxExponent:       1023,
	Epsilon:           0x1p-52,
	MinNormal:         0x1p-1022,
}

// FormatOf returns the layout of T by value.
func FormatOf[T Floats]() Format {
	if IsFloat32[T]() {
		return Float32Format
	}
	return Float64Format
}

// IsFloat32 reports whether T is a 32-bit float type.
func IsFloat32[T Floats]() bool {
	var dummy T
	return unsafe.Sizeof(dummy) == 4
}

// AsBits reinterprets float lanes as their raw bit patterns. float32
// patterns occupy the low 32 bits of each lane.
func AsBits[T Floats](v Vec[T]) Vec[uint64] {
	r := Vec[uint64]{n: v.n}
	if IsFloat32[T]() {
		for i := range r.n {
			r.data[i] = uint64(math.Float32bits(float32(v.data[i])))
		}
		return r
	}
	for i := range r.n {
		r.data[i] = math.Float64bits(float64(v.data[i]))
	}
	return r
}

// FromBits reinterprets raw bit patterns as float lanes. For float32 only
// the low 32 bits of each lane are used.
func FromBits[T Floats](b Vec[uint64]) Vec[T] {
	r := Vec[T]{n: b.n}
	if IsFloat32[T]() {
		for i := range r.n {
			r.data[i] = T(math.Float32frombits(uint32(b.data[i])))
		}
		return r
	}
	for i := range r.n {
		r.data[i] = T(math.Float64frombits(b.data[i]))
	}
	return r
}

// BitsFromInt32 sign-extends int32 lanes into bit-pattern lanes.
func BitsFromInt32(v Vec[int32]) Vec[uint64] {
	r := Vec[uint64]{n: v.n}
	for i := range r.n {
		r.data[i] = uint64(int64(v.data[i]))
	}
	return r
}

// Int32FromBits keeps the low 32 bits of each bit-pattern lane as int32.
func Int32FromBits(v Vec[uint64]) Vec[int32] {
	r := Vec[int32]{n: v.n}
	for i := range r.n {
		r.data[i] = int32(uint32(v.data[i]))
	}
	return r
}

// Shl shifts each lane of v left by the matching lane of counts. Counts of
// the lane width or more produce zero.
func Shl[T UnsignedInts](v, counts Vec[T]) Vec[T] {
	r := Vec[T]{n: lanes2(v.n, counts.n)}
	for i := range r.n {
		r.data[i] = v.data[i] << uint64(counts.data[i])
	}
	return r
}

// SetLike broadcasts value into a vector with the lane count of like. It
// creates integer companions of float vectors, whose natural MaxLanes can
// differ from the float lane count.
func SetLike[U, T Lanes](like Vec[T], value U) Vec[U] {
	return SetN(value, like.n)
}

// Abs clears the sign bit of every lane. NaN payloads are preserved.
func Abs[T Floats](v Vec[T]) Vec[T] {
	f := FormatOf[T]()
	return FromBits[T](AndNot(SetN(f.SignMask, v.n), AsBits(v)))
}

// Neg flips the sign bit of every lane, including zeros and NaNs.
func Neg[T Floats](v Vec[T]) Vec[T] {
	f := FormatOf[T]()
	return FromBits[T](Xor(AsBits(v), SetN(f.SignMask, v.n)))
}

// CopySign returns lanes with the magnitude of mag and the sign of sign.
func CopySign[T Floats](mag, sign Vec[T]) Vec[T] {
	f := FormatOf[T]()
	s := SetN(f.SignMask, lanes2(mag.n, sign.n))
	return FromBits[T](Or(AndNot(s, AsBits(mag)), And(s, AsBits(sign))))
}

// SignBit returns a mask of the lanes whose sign bit is set, which includes
// -0 and negative NaNs.
func SignBit[T Floats](v Vec[T]) Mask[T] {
	f := FormatOf[T]()
	b := And(AsBits(v), SetN(f.SignMask, v.n))
	return RebindMask[T](NotEqual(b, Vec[uint64]{n: v.n}))
}
