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

// Package testutil provides types and methods facilitating testing chart
// configuration construction.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cuioss/cui-jsf-components-sub005/notation"
	"github.com/google/go-cmp/cmp"
)

// PropertyComparator facilitates testing of option blocks, ensuring that a
// 'got' set of properties-under-test renders the same as a provided 'want'
// set of properties.
type PropertyComparator struct {
	got  []notation.Provider
	want []notation.Support
}

// NewPropertyComparator returns a new, empty PropertyComparator.
func NewPropertyComparator() *PropertyComparator {
	return &PropertyComparator{}
}

// WithTestProperties specifies the receiver's Providers-under-test.  Their
// properties are merged in order, as an owning object would.
func (pc *PropertyComparator) WithTestProperties(got ...notation.Provider) *PropertyComparator {
	pc.got = got
	return pc
}

// WithWantProperties specifies the properties the receiver's
// 'WithTestProperties' should render as, in order.
func (pc *PropertyComparator) WithWantProperties(want ...notation.Support) *PropertyComparator {
	pc.want = want
	return pc
}

// Compare the receiver's 'got' and 'want' properties, returning a
// difference message (empty if no difference) and a boolean indicating
// whether the two are different (true) or not (false).  Property order
// must be preserved.
func (pc *PropertyComparator) Compare(t *testing.T) (string, bool) {
	t.Helper()
	gotPP := notation.NewPropertyProvider()
	for _, p := range pc.got {
		gotPP.AddProperties(p)
	}
	wantPP := notation.NewPropertyProvider()
	for _, s := range pc.want {
		wantPP.Add(s)
	}
	got := PrettyPrint(gotPP)
	if diff := cmp.Diff(PrettyPrint(wantPP), got); diff != "" {
		return fmt.Sprintf("Got properties\n%s\ndiff (-want +got):\n%s", got, diff), true
	}
	return "", false
}

// PrettyPrint returns the rendered properties of the provided Provider, one
// per line.  Only for use in tests.
func PrettyPrint(p notation.Provider) string {
	lines := []string{}
	for _, prop := range p.Properties() {
		if str, ok := prop.AsJavaScriptObjectNotation(); ok {
			lines = append(lines, str)
		}
	}
	return strings.Join(lines, "\n")
}

// CompareNotation compares rendered JavaScript notation, raising an error on
// the provided testing.T if they differ.
func CompareNotation(t *testing.T, got, want string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Got notation %s, diff (-want +got):\n%s", got, diff)
	}
}

// CompareOptional compares a rendering that may be absent with a wanted
// rendering.  An empty want means the rendering must be absent.
func CompareOptional(t *testing.T, got string, ok bool, want string) {
	t.Helper()
	if want == "" {
		if ok {
			t.Errorf("Got notation %s, want absent", got)
		}
		return
	}
	if !ok {
		t.Errorf("Got absent notation, want %s", want)
		return
	}
	CompareNotation(t, got, want)
}
