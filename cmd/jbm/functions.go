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
package main

import (
	"errors"
	"fmt"
	stdmath "math"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"github.com/ajroetker/go-jbm/hwy"
	"github.com/ajroetker/go-jbm/hwy/contrib/gauss"
	"github.com/ajroetker/go-jbm/hwy/contrib/math"
)

var errUnknownFunction = errors.New("unknown function")

// function is a named lane function in both precisions with its standard
// library reference.
type function struct {
	f32 func(hwy.Vec[float32]) hwy.Vec[float32]
	f64 func(hwy.Vec[float64]) hwy.Vec[float64]
	ref func(float64) float64
}

func entry(f32 func(hwy.Vec[float32]) hwy.Vec[float32], f64 func(hwy.Vec[float64]) hwy.Vec[float64], ref func(float64) float64) function {
	return function{f32: f32, f64: f64, ref: ref}
}

var functions = map[string]function{
	"sqrt":  entry(hwy.Sqrt[float32], hwy.Sqrt[float64], stdmath.Sqrt),
	"abs":   entry(hwy.Abs[float32], hwy.Abs[float64], stdmath.Abs),
	"exp":   entry(math.Exp[float32], math.Exp[float64], stdmath.Exp),
	"exp2":  entry(math.Exp2[float32], math.Exp2[float64], stdmath.Exp2),
	"exp10": entry(math.Exp10[float32], math.Exp10[float64], func(x float64) float64 { return stdmath.Pow(10, x) }),
	"expm1": entry(math.Expm1[float32], math.Expm1[float64], stdmath.Expm1),
	"log":   entry(math.Log[float32], math.Log[float64], stdmath.Log),
	"log2":  entry(math.Log2[float32], math.Log2[float64], stdmath.Log2),
	"log10": entry(math.Log10[float32], math.Log10[float64], stdmath.Log10),
	"log1p": entry(math.Log1p[float32], math.Log1p[float64], stdmath.Log1p),
	"cbrt":  entry(math.Cbrt[float32], math.Cbrt[float64], stdmath.Cbrt),
	"sin":   entry(math.Sin[float32], math.Sin[float64], stdmath.Sin),
	"cos":   entry(math.Cos[float32], math.Cos[float64], stdmath.Cos),
	"tan":   entry(math.Tan[float32], math.Tan[float64], stdmath.Tan),
	"atan":  entry(math.Atan[float32], math.Atan[float64], stdmath.Atan),
	"asin":  entry(math.Asin[float32], math.Asin[float64], stdmath.Asin),
	"acos":  entry(math.Acos[float32], math.Acos[float64], stdmath.Acos),
	"sinh":  entry(math.Sinh[float32], math.Sinh[float64], stdmath.Sinh),
	"cosh":  entry(math.Cosh[float32], math.Cosh[float64], stdmath.Cosh),
	"tanh":  entry(math.Tanh[float32], math.Tanh[float64], stdmath.Tanh),
	"asinh": entry(math.Asinh[float32], math.Asinh[float64], stdmath.Asinh),
	"acosh": entry(math.Acosh[float32], math.Acosh[float64], stdmath.Acosh),
	"atanh": entry(math.Atanh[float32], math.Atanh[float64], stdmath.Atanh),
	"erf":   entry(math.Erf[float32], math.Erf[float64], stdmath.Erf),
	"erfc":  entry(math.Erfc[float32], math.Erfc[float64], stdmath.Erfc),
}

func functionNames() []string {
	names := lo.Keys(functions)
	slices.Sort(names)
	return names
}

func lookupFunction(name string) (function, error) {
	f, ok := functions[cases.Fold().String(name)]
	if !ok {
		return function{}, fmt.Errorf("%w %q (known: %v)", errUnknownFunction, name, functionNames())
	}
	return f, nil
}

// eval runs f on x through a single lane at the given precision.
func (f function) eval(x float64, precision int) float64 {
	if precision == 32 {
		return float64(math.Eval(f.f32, float32(x)))
	}
	return math.Eval(f.f64, x)
}

// reference returns the standard library value rounded to the precision.
func (f function) reference(x float64, precision int) float64 {
	if precision == 32 {
		return float64(float32(f.ref(float64(float32(x)))))
	}
	return f.ref(x)
}

// integral integrates f over [a, b] at the given precision.
func (f function) integral(a, b float64, precision int) float64 {
	if precision == 32 {
		return float64(gauss.IntegralScalar(f.f32, float32(a), float32(b)))
	}
	return gauss.IntegralScalar(f.f64, a, b)
}

// ulpDistance counts the representable values between a and b at the
// given precision. It is 0 for equal values, including two NaNs, and +Inf
// when only one of them is NaN.
func ulpDistance(a, b float64, precision int) float64 {
	if a != a || b != b {
		if a != a && b != b {
			return 0
		}
		return stdmath.Inf(1)
	}
	if a == b {
		return 0
	}
	if precision == 32 {
		return stdmath.Abs(float64(ordered32(float32(a)) - ordered32(float32(b))))
	}
	return stdmath.Abs(float64(ordered64(a)) - float64(ordered64(b)))
}

// ordered32 maps float32 bit patterns onto integers that sort like the
// floats they encode.
func ordered32(x float32) int64 {
	b := int64(stdmath.Float32bits(x))
	if b&(1<<31) != 0 {
		return -(b &^ (1 << 31))
	}
	return b
}

func ordered64(x float64) int64 {
	b := stdmath.Float64bits(x)
	if b&(1<<63) != 0 {
		return -int64(b &^ (1 << 63))
	}
	return int64(b)
}
