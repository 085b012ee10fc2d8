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

// Support is implemented by named fragments that render themselves as one
// member of an enclosing object, e.g. `name:value`.  AsJavaScriptObjectNotation
// returns false if the fragment has nothing to render.
type Support interface {
	PropertyName() string
	AsJavaScriptObjectNotation() (string, bool)
}

// Provider is implemented by types offering an ordered list of properties,
// allowing option groups to be merged into one another.
type Provider interface {
	Properties() []Support
}

// Property is a single named Value.
type Property struct {
	name  string
	value Value
}

// NewProperty returns a Property with the provided name and value.
func NewProperty(name string, value Value) Property {
	return Property{name: name, value: value}
}

// PropertyName implements Support.
func (p Property) PropertyName() string {
	return p.name
}

// Value returns the receiver's value.
func (p Property) Value() Value {
	return p.value
}

// AsJavaScriptObjectNotation renders the receiver as `name:value`.
func (p Property) AsJavaScriptObjectNotation() (string, bool) {
	if isNil(p.value) {
		return "", false
	}
	str, ok := p.value.ValueAsString()
	if !ok {
		return "", false
	}
	return p.name + ":" + str, true
}

// PropertyProvider is an ordered collection of Supports, unique by name.
// Adding a Support whose name is already present removes the earlier entry
// and appends the new one.
type PropertyProvider struct {
	props []Support
}

// NewPropertyProvider returns a new, empty PropertyProvider.
func NewPropertyProvider() *PropertyProvider {
	return &PropertyProvider{}
}

// Add adds the provided Support to the receiver.  Nil Supports are ignored.
// It supports chaining.
func (pp *PropertyProvider) Add(s Support) *PropertyProvider {
	if isNil(s) {
		return pp
	}
	name := s.PropertyName()
	for idx, prop := range pp.props {
		if prop.PropertyName() == name {
			pp.props = append(pp.props[:idx], pp.props[idx+1:]...)
			break
		}
	}
	pp.props = append(pp.props, s)
	return pp
}

// AddProperty adds a Property with the provided name and value to the
// receiver.  It supports chaining.
func (pp *PropertyProvider) AddProperty(name string, value Value) *PropertyProvider {
	return pp.Add(NewProperty(name, value))
}

// AddProperties adds each of the provided Provider's properties to the
// receiver in order.  It supports chaining.
func (pp *PropertyProvider) AddProperties(p Provider) *PropertyProvider {
	if isNil(p) {
		return pp
	}
	for _, prop := range p.Properties() {
		pp.Add(prop)
	}
	return pp
}

// Properties implements Provider.
func (pp *PropertyProvider) Properties() []Support {
	if pp == nil {
		return nil
	}
	ret := make([]Support, len(pp.props))
	copy(ret, pp.props)
	return ret
}

// Len returns the number of properties registered in the receiver, whether
// or not they render.
func (pp *PropertyProvider) Len() int {
	if pp == nil {
		return 0
	}
	return len(pp.props)
}

// TransformProperties renders all registered properties, skipping those with
// nothing to render, joined by `,`.
func (pp *PropertyProvider) TransformProperties() string {
	if pp == nil {
		return ""
	}
	parts := make([]string, 0, len(pp.props))
	for _, prop := range pp.props {
		if str, ok := prop.AsJavaScriptObjectNotation(); ok {
			parts = append(parts, str)
		}
	}
	return strings.Join(parts, ",")
}

// Object is a named collection of properties.  An Object with no rendering
// property is absent.
type Object struct {
	name  string
	props *PropertyProvider
}

// NewObject returns a new, empty Object with the provided name.  An Object
// with an empty name always renders without a name prefix.
func NewObject(name string) *Object {
	return &Object{
		name:  name,
		props: NewPropertyProvider(),
	}
}

// PropertyName implements Support.
func (o *Object) PropertyName() string {
	if o == nil {
		return ""
	}
	return o.name
}

// Add adds the provided Support, such as a nested Object, to the receiver.
// It supports chaining.
func (o *Object) Add(s Support) *Object {
	o.props.Add(s)
	return o
}

// AddProperty adds the provided named Value to the receiver.  It supports
// chaining.
func (o *Object) AddProperty(name string, value Value) *Object {
	o.props.AddProperty(name, value)
	return o
}

// AddProperties merges the provided Provider's properties into the receiver.
// It supports chaining.
func (o *Object) AddProperties(p Provider) *Object {
	o.props.AddProperties(p)
	return o
}

// Properties implements Provider.
func (o *Object) Properties() []Support {
	if o == nil {
		return nil
	}
	return o.props.Properties()
}

// TransformProperties renders the receiver's properties without braces.
func (o *Object) TransformProperties() string {
	if o == nil {
		return ""
	}
	return o.props.TransformProperties()
}

// AsJavaScriptObjectNotation renders the receiver as `name:{p1,p2,...}`, or
// as `{p1,p2,...}` if it has no name.  It returns false if no property
// renders.
func (o *Object) AsJavaScriptObjectNotation() (string, bool) {
	body, ok := o.ValueAsString()
	if !ok {
		return "", false
	}
	if o.name == "" {
		return body, true
	}
	return o.name + ":" + body, true
}

// ValueAsString renders the receiver as `{p1,p2,...}`, without its name, for
// use as an array item or a bare value.  It returns false if no property
// renders.
func (o *Object) ValueAsString() (string, bool) {
	body := o.TransformProperties()
	if body == "" {
		return "", false
	}
	return "{" + body + "}", true
}
