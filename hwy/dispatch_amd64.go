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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func detect() (DispatchLevel, int) {
	x := cpu.X86
	switch {
	case x.HasAVX512F && x.HasAVX512DQ:
		return DispatchAVX512, 64
	case x.HasAVX2 && x.HasFMA:
		return DispatchAVX2, 32
	case x.HasSSE2:
		return DispatchSSE2, 16
	}
	return DispatchScalar, scalarWidth
}

// CPUFeatures reports the x86 features that influence width selection.
func CPUFeatures() map[string]bool {
	x := cpu.X86
	return map[string]bool{
		"sse2":     x.HasSSE2,
		"sse41":    x.HasSSE41,
		"avx":      x.HasAVX,
		"avx2":     x.HasAVX2,
		"fma":      x.HasFMA,
		"avx512f":  x.HasAVX512F,
		"avx512dq": x.HasAVX512DQ,
	}
}
