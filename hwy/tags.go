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

import "fmt"

// Tag names a vector shape by its width in bytes.
type Tag interface {
	Width() int
	Name() string
	// MaxLanes is the lane count of the element type the tag was made for.
	MaxLanes() int
}

// ScalableTag follows the runtime width, including ForceWidth overrides.
type ScalableTag[T Lanes] struct{}

func (ScalableTag[T]) Width() int { return currentWidth }
func (ScalableTag[T]) Name() string { return currentLevel.String() }
func (ScalableTag[T]) MaxLanes() int { return MaxLanes[T]() }

// FixedTag pins the width to Bytes regardless of what the CPU offers.
//
//	hwy.FixedTag[float32]{Bytes: 32}.MaxLanes() // 8
type FixedTag[T Lanes] struct {
	Bytes int
}

func (t FixedTag[T]) Width() int { return t.Bytes }
func (t FixedTag[T]) Name() string { return fmt.Sprintf("%dbit", 8*t.Bytes) }
func (t FixedTag[T]) MaxLanes() int { return lanesFor[T](t.Bytes) }

// Widths lists the widths ForceWidth accepts, narrowest first.
var Widths = []int{4, 8, 16, 32, 64}

// ForceWidth overrides the runtime vector width and returns a function that
// restores the previous one. Tests and benchmarks use it to cover every lane
// count. It must not race with running vector code.
//
// The width must be one of Widths.
func ForceWidth(width int) (restore func()) {
	if width < 4 || width > 64 || width&(width-1) != 0 {
		panic(fmt.Sprintf("hwy: ForceWidth: unsupported width %d", width))
	}
	prev := currentWidth
	currentWidth = width
	return func() { currentWidth = prev }
}
