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

package hook

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	clickCode = `$('#chart').bind('jqplotDataClick',function(ev,s,i,d){});`
	hoverCode = `$('#chart').bind('jqplotDataMouseOver',function(ev,s,i,d){});`
)

func TestManager(t *testing.T) {
	for _, test := range []struct {
		description string
		hooks       []FunctionProvider
		wantErrs    []error
		wantCode    string
	}{{
		description: "no hooks",
		wantCode:    "",
	}, {
		description: "single hook without delimiter",
		hooks:       []FunctionProvider{Function{ID: "click", Code: clickCode}},
		wantErrs:    []error{nil},
		wantCode:    clickCode,
	}, {
		description: "hooks concatenated in order",
		hooks: []FunctionProvider{
			Function{ID: "click", Code: clickCode},
			Function{ID: "hover", Code: hoverCode},
		},
		wantErrs: []error{nil, nil},
		wantCode: clickCode + hoverCode,
	}, {
		description: "duplicate identifier fails",
		hooks: []FunctionProvider{
			Function{ID: "click", Code: clickCode},
			Function{ID: "click", Code: hoverCode},
		},
		wantErrs: []error{nil, ErrDuplicateHook},
		wantCode: clickCode,
	}, {
		description: "invalid hooks fail",
		hooks: []FunctionProvider{
			nil,
			Function{ID: " ", Code: clickCode},
		},
		wantErrs: []error{ErrInvalidHook, ErrInvalidHook},
		wantCode: "",
	}} {
		t.Run(test.description, func(t *testing.T) {
			m := NewManager()
			for idx, h := range test.hooks {
				err := m.Add(h)
				if !errors.Is(err, test.wantErrs[idx]) {
					t.Fatalf("Add(#%d) yielded error %v, want %v", idx, err, test.wantErrs[idx])
				}
			}
			got := m.Code()
			if diff := cmp.Diff(test.wantCode, got); diff != "" {
				t.Errorf("Code() = %s, diff (-want +got):\n%s", got, diff)
			}
		})
	}
}

func TestNilManager(t *testing.T) {
	var m *Manager
	if m.Code() != "" || m.Len() != 0 {
		t.Errorf("nil Manager should be empty")
	}
}
