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

// Package hook manages named JavaScript callback snippets emitted after a
// chart's configuration statement, such as client-side event bindings.
package hook

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateHook is returned when a hook function with an already
	// registered identifier is added.
	ErrDuplicateHook = errors.New("duplicate hook function")
	// ErrInvalidHook is returned when a nil hook function, or one with a
	// blank identifier, is added.
	ErrInvalidHook = errors.New("invalid hook function")
)

// FunctionProvider is implemented by types contributing a hook function.
// FunctionCode should be self-terminating, e.g. end in `;`.
type FunctionProvider interface {
	Identifier() string
	FunctionCode() string
}

// Function is a FunctionProvider with fixed identifier and code.
type Function struct {
	ID   string
	Code string
}

// Identifier implements FunctionProvider.
func (f Function) Identifier() string {
	return f.ID
}

// FunctionCode implements FunctionProvider.
func (f Function) FunctionCode() string {
	return f.Code
}

// Manager holds a set of hook functions unique by identifier.
type Manager struct {
	providers []FunctionProvider
	ids       map[string]struct{}
}

// NewManager returns a new, empty Manager.
func NewManager() *Manager {
	return &Manager{
		ids: map[string]struct{}{},
	}
}

// Add registers the provided hook function.  It returns ErrDuplicateHook if
// a hook with the same identifier was already registered.
func (m *Manager) Add(p FunctionProvider) error {
	if p == nil || strings.TrimSpace(p.Identifier()) == "" {
		return ErrInvalidHook
	}
	id := p.Identifier()
	if _, ok := m.ids[id]; ok {
		return fmt.Errorf("%w `%s`", ErrDuplicateHook, id)
	}
	m.ids[id] = struct{}{}
	m.providers = append(m.providers, p)
	return nil
}

// Code returns the code of all registered hooks in registration order,
// without separators.
func (m *Manager) Code() string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range m.providers {
		sb.WriteString(p.FunctionCode())
	}
	return sb.String()
}

// Len returns the number of registered hooks.
func (m *Manager) Len() int {
	if m == nil {
		return 0
	}
	return len(m.providers)
}
