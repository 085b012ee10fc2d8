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

// Package notation defines utilities for assembling JavaScript-literal
// configuration text in Go:
//
// Value, implemented by anything renderable as a JavaScript literal;
//
// {type} values (type={String, Boolean, Integer, Double, Number, Date,
// Expression}) wrapping one optional typed value each.  The zero value of
// every one of these is absent, and absent values are dropped from the
// objects that hold them;
//
// Array, an ordered list of Values rendering as `[v1,v2]`;
//
// Property, PropertyProvider and Object, for assembling named, de-duplicated
// property lists rendering as `name:{p1,p2}`.
//
// A typical nested configuration is assembled with:
//
//	title := notation.NewObject("title").
//	  AddProperty("text", notation.NewString("Sales")).
//	  AddProperty("show", notation.Bool(true))
//	opts := notation.NewObject("").Add(title)
//	js, ok := opts.ValueAsString() // {title:{text:"Sales",show:true}}
package notation

import (
	"math"
	"reflect"
	"strconv"
)

// Value is implemented by types that can render themselves as a JavaScript
// literal.  ValueAsString returns false if the receiver is absent, in which
// case the enclosing object omits it.
type Value interface {
	ValueAsString() (string, bool)
}

// String is an optional string, rendered double-quoted.  No escaping is
// performed on the wrapped text.
type String struct {
	v   string
	set bool
}

// NewString returns a String wrapping the provided string.
func NewString(s string) String {
	return String{v: s, set: true}
}

// StringOf returns a String wrapping *s, or an absent String if s is nil.
func StringOf(s *string) String {
	if s == nil {
		return String{}
	}
	return NewString(*s)
}

// NonEmptyString returns a String wrapping s, or an absent String if s is
// empty.
func NonEmptyString(s string) String {
	if s == "" {
		return String{}
	}
	return NewString(s)
}

// ValueAsString implements Value.
func (s String) ValueAsString() (string, bool) {
	if !s.set {
		return "", false
	}
	return `"` + s.v + `"`, true
}

// Boolean is a three-state optional boolean.
type Boolean int8

// Boolean states.  The zero Boolean is AbsentBoolean.
const (
	AbsentBoolean Boolean = iota
	True
	False
)

// Bool returns the Boolean for the provided bool.
func Bool(b bool) Boolean {
	if b {
		return True
	}
	return False
}

// BoolOf returns the Boolean for *b, or AbsentBoolean if b is nil.
func BoolOf(b *bool) Boolean {
	if b == nil {
		return AbsentBoolean
	}
	return Bool(*b)
}

// ValueAsString implements Value.
func (b Boolean) ValueAsString() (string, bool) {
	switch b {
	case True:
		return "true", true
	case False:
		return "false", true
	default:
		return "", false
	}
}

// Integer is an optional integer, rendered as bare decimal digits.
type Integer struct {
	v   int64
	set bool
}

// NewInteger returns an Integer wrapping the provided int.
func NewInteger(i int) Integer {
	return Integer{v: int64(i), set: true}
}

// IntegerOf returns an Integer wrapping *i, or an absent Integer if i is nil.
func IntegerOf(i *int) Integer {
	if i == nil {
		return Integer{}
	}
	return NewInteger(*i)
}

// ValueAsString implements Value.
func (i Integer) ValueAsString() (string, bool) {
	if !i.set {
		return "", false
	}
	return strconv.FormatInt(i.v, 10), true
}

// Double is an optional floating-point number, always rendered with exactly
// three fraction digits.
type Double struct {
	v   float64
	set bool
}

// NewDouble returns a Double wrapping the provided float64.
func NewDouble(f float64) Double {
	return Double{v: f, set: true}
}

// DoubleOf returns a Double wrapping *f, or an absent Double if f is nil.
func DoubleOf(f *float64) Double {
	if f == nil {
		return Double{}
	}
	return NewDouble(*f)
}

// ValueAsString implements Value.
func (d Double) ValueAsString() (string, bool) {
	if !d.set {
		return "", false
	}
	return formatDouble(d.v), true
}

// formatDouble renders f with three decimals.  Non-finite values render as
// the JavaScript globals Infinity, -Infinity and NaN.
func formatDouble(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', 3, 64)
}

// Expression is an optional raw JavaScript expression, rendered verbatim.
// It is used to reference client-side objects such as renderers
// (`$.jqplot.BarRenderer`) that must not be quoted.
type Expression struct {
	v   string
	set bool
}

// NewExpression returns an Expression rendering as the provided code.
func NewExpression(code string) Expression {
	return Expression{v: code, set: true}
}

// ValueAsString implements Value.
func (e Expression) ValueAsString() (string, bool) {
	if !e.set {
		return "", false
	}
	return e.v, true
}

// isNil reports whether v is nil or a nil pointer, map, slice, or func
// stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
