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

//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

// detect picks NEON, which every ARMv8-A core has. SVE widths are not used:
// the portable lanes top out at MaxCapacity anyway.
func detect() (DispatchLevel, int) {
	if cpu.ARM64.HasASIMD {
		return DispatchNEON, 16
	}
	return DispatchScalar, scalarWidth
}

// CPUFeatures reports the arm64 features that influence width selection.
func CPUFeatures() map[string]bool {
	a := cpu.ARM64
	return map[string]bool{
		"asimd":   a.HasASIMD,
		"fphp":    a.HasFPHP,
		"asimdhp": a.HasASIMDHP,
		"sve":     a.HasSVE,
	}
}
