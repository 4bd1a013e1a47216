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
// Package limiter implements the flux limiters used by upwind and TVD
// finite-volume schemes.
//
// A limiter takes the two successive gradients d1 and d2 of a cell and
// returns the factor applied to the second-order correction. Except for
// Total, Null and Centred, every limiter is a function of the ratio
// r = d1/d2 and returns 0 whenever d1·d2 ≤ ε (the gradients change sign or
// one of them vanishes), where ε is the epsilon of the lane precision.
package limiter

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-jbm/hwy"
	"github.com/ajroetker/go-jbm/hwy/contrib/algo"
)

// Func is a limiter lane function.
type Func[T hwy.Floats] func(d1, d2 hwy.Vec[T]) hwy.Vec[T]

// Type selects a limiter. Values outside the named constants select Mean.
type Type int

// Limiter tags, in the order of their integer values.
const (
	TypeTotal Type = iota
	TypeNull
	TypeCentred
	TypeSuperbee
	TypeMinmod
	TypeVanLeer
	TypeVanAlbada
	TypeMinsuper
	TypeSupermin
	TypeMonotonizedCentral
	TypeMean
)

var names = [...]string{
	TypeTotal:              "total",
	TypeNull:               "null",
	TypeCentred:            "centred",
	TypeSuperbee:           "superbee",
	TypeMinmod:             "minmod",
	TypeVanLeer:            "van leer",
	TypeVanAlbada:          "van albada",
	TypeMinsuper:           "minsuper",
	TypeSupermin:           "supermin",
	TypeMonotonizedCentral: "monotonized central",
	TypeMean:               "mean",
}

// ErrUnknown is returned by ParseType for names that match no limiter.
var ErrUnknown = errors.New("limiter: unknown limiter")

// String returns the lower-case name of t, such as "van leer".
func (t Type) String() string {
	if t < 0 || int(t) >= len(names) {
		return names[TypeMean]
	}
	return names[t]
}

// Title returns the display name of t, such as "Van Leer".
func (t Type) Title() string {
	return cases.Title(language.English).String(t.String())
}

// key normalizes a limiter name so that case, spaces, hyphens and
// underscores do not matter.
func key(name string) string {
	name = cases.Fold().String(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, name)
}

// ParseType looks a limiter up by name. Matching ignores case and the
// separators in multi-word names, so "VanLeer", "van-leer" and "VAN LEER"
// all select TypeVanLeer. "centered" is accepted for TypeCentred.
func ParseType(name string) (Type, error) {
	k := key(name)
	for t, n := range names {
		if key(n) == k {
			return Type(t), nil
		}
	}
	if k == "centered" {
		return TypeCentred, nil
	}
	return TypeMean, fmt.Errorf("%w %q", ErrUnknown, name)
}

// Types lists every limiter in tag order.
func Types() []Type {
	ts := make([]Type, len(names))
	for i := range ts {
		ts[i] = Type(i)
	}
	return ts
}

// Select returns the lane function of t. Unrecognized tags select Mean.
func Select[T hwy.Floats](t Type) Func[T] {
	switch t {
	case TypeTotal:
		return Total[T]
	case TypeNull:
		return Null[T]
	case TypeCentred:
		return Centred[T]
	case TypeSuperbee:
		return Superbee[T]
	case TypeMinmod:
		return Minmod[T]
	case TypeVanLeer:
		return VanLeer[T]
	case TypeVanAlbada:
		return VanAlbada[T]
	case TypeMinsuper:
		return Minsuper[T]
	case TypeSupermin:
		return Supermin[T]
	case TypeMonotonizedCentral:
		return MonotonizedCentral[T]
	default:
		return Mean[T]
	}
}

// Apply sets dst[i] to the limiter t of d1[i] and d2[i].
func Apply[T hwy.Floats](t Type, dst, d1, d2 []T) {
	algo.Transform2(dst, d1, d2, Select[T](t))
}

// Eval evaluates the limiter t on single values.
func Eval[T hwy.Floats](t Type, d1, d2 T) T {
	return hwy.GetLane(Select[T](t)(hwy.SetN(d1, 1), hwy.SetN(d2, 1)), 0)
}
