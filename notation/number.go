/*
	Copyright 2025 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package notation

import "strconv"

type numberKind int8

const (
	absentNumber numberKind = iota
	integerNumber
	floatingNumber
)

// Numeric enumerates the Go types a Number may be built from.  Narrower
// integer types, such as byte, are deliberately not members.
type Numeric interface {
	int | int32 | int64 | float32 | float64
}

// Number is an optional number of either integer or floating kind.  Integer
// kinds render like Integer; floating kinds render like Double.
type Number struct {
	kind numberKind
	i    int64
	f    float64
}

// NewNumber returns a Number wrapping the provided value.
func NewNumber[T Numeric](v T) Number {
	switch n := any(v).(type) {
	case int:
		return Number{kind: integerNumber, i: int64(n)}
	case int32:
		return Number{kind: integerNumber, i: int64(n)}
	case int64:
		return Number{kind: integerNumber, i: n}
	case float32:
		return Number{kind: floatingNumber, f: float64(n)}
	case float64:
		return Number{kind: floatingNumber, f: n}
	}
	// Unreachable: Numeric is closed.
	return Number{}
}

// NumberOf returns a Number wrapping *v, or an absent Number if v is nil.
func NumberOf[T Numeric](v *T) Number {
	if v == nil {
		return Number{}
	}
	return NewNumber(*v)
}

// ValueAsString implements Value.
func (n Number) ValueAsString() (string, bool) {
	switch n.kind {
	case integerNumber:
		return strconv.FormatInt(n.i, 10), true
	case floatingNumber:
		return formatDouble(n.f), true
	default:
		return "", false
	}
}
