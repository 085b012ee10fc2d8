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

import "strings"

// Array is an ordered list of Values.  Nil items are dropped on insertion.
// An empty Array renders as `[]`; a nil *Array is absent.
type Array[T Value] struct {
	items []T
}

// NewArray returns a new Array holding the provided non-nil items.
func NewArray[T Value](items ...T) *Array[T] {
	return (&Array[T]{}).AddAll(items...)
}

// Add appends v to the receiver if v is not nil.  It supports chaining.
func (a *Array[T]) Add(v T) *Array[T] {
	if !isNil(v) {
		a.items = append(a.items, v)
	}
	return a
}

// AddAll appends each non-nil provided item to the receiver in order.  It
// supports chaining.
func (a *Array[T]) AddAll(vs ...T) *Array[T] {
	for _, v := range vs {
		a.Add(v)
	}
	return a
}

// Items returns the receiver's items in insertion order.
func (a *Array[T]) Items() []T {
	if a == nil {
		return nil
	}
	ret := make([]T, len(a.items))
	copy(ret, a.items)
	return ret
}

// Len returns the number of items in the receiver.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// IsEmpty reports whether the receiver has no items.
func (a *Array[T]) IsEmpty() bool {
	return a.Len() == 0
}

// AsJavaScriptObjectNotation renders the receiver as `[v1,v2,...]`.  Items
// whose value is absent render as `null`, so positions are kept.
func (a *Array[T]) AsJavaScriptObjectNotation() string {
	if a.Len() == 0 {
		return "[]"
	}
	parts := make([]string, len(a.items))
	for idx, item := range a.items {
		str, ok := item.ValueAsString()
		if !ok {
			str = "null"
		}
		parts[idx] = str
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// ValueAsString implements Value.
func (a *Array[T]) ValueAsString() (string, bool) {
	if a == nil {
		return "", false
	}
	return a.AsJavaScriptObjectNotation(), true
}

// Strings returns a new Array of Strings wrapping the provided strings.
func Strings(strs ...string) *Array[String] {
	ret := &Array[String]{}
	for _, str := range strs {
		ret.Add(NewString(str))
	}
	return ret
}
