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
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel identifies the instruction set the lane width was chosen for.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

var levelNames = [...]string{
	DispatchScalar: "scalar",
	DispatchSSE2:   "sse2",
	DispatchAVX2:   "avx2",
	DispatchAVX512: "avx512",
	DispatchNEON:   "neon",
}

func (d DispatchLevel) String() string {
	if d < 0 || int(d) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[d]
}

// NoSimdEnvVar names the environment variable that forces scalar mode.
const NoSimdEnvVar = "JBM_NO_SIMD"

// scalarWidth is the width used when no SIMD unit is detected or scalar
// mode is forced. It keeps several lanes so the unrolled loops still run.
const scalarWidth = 16

var (
	currentLevel DispatchLevel
	// currentWidth is in bytes; ForceWidth overrides it.
	currentWidth int
)

func init() {
	if NoSimdEnv() {
		currentLevel, currentWidth = DispatchScalar, scalarWidth
		return
	}
	currentLevel, currentWidth = detect()
}

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the vector width in bytes: 16 for SSE2 and NEON, 32
// for AVX2, 64 for AVX-512, or whatever ForceWidth last set.
func CurrentWidth() int { return currentWidth }

// CurrentName is CurrentLevel().String().
func CurrentName() string { return currentLevel.String() }

// NoSimdEnv reports whether JBM_NO_SIMD asks for scalar mode. Values that
// strconv.ParseBool understands are honoured; any other non-empty value
// counts as true.
func NoSimdEnv() bool {
	val, ok := os.LookupEnv(NoSimdEnvVar)
	if !ok || val == "" {
		return false
	}
	b, err := strconv.ParseBool(val)
	return err != nil || b
}

// MaxLanes returns how many T lanes fit in the current width, clamped to
// [1, MaxCapacity]. Under AVX2 that is 8 float32 or 4 float64 lanes.
func MaxLanes[T Lanes]() int {
	return lanesFor[T](currentWidth)
}

func lanesFor[T Lanes](width int) int {
	var zero T
	return max(1, min(width/int(unsafe.Sizeof(zero)), MaxCapacity))
}
