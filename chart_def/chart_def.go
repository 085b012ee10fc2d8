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

// Package chartdef decodes YAML chart definitions and builds them into
// jqplot charts.
//
// A definition names the chart's target element, lists its data series, and
// mirrors the jqplot option surface:
//
//	id: sales
//	data:
//	  - [3, 7, 2]
//	  - [[1, 2.5], [2, 4]]
//	options:
//	  title: {text: Sales}
//	  seriesDefaults:
//	    renderer: {type: bar, barWidth: 10}
//	hooks:
//	  - id: click
//	    code: "$('#sales').bind('jqplotDataClick', onClick);"
//
// Points are scalars (numbers, strings or booleans) or [x, y] pairs.  A
// definition without an id gets a generated one.
package chartdef

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cuioss/cui-jsf-components-sub005/hook"
	"github.com/cuioss/cui-jsf-components-sub005/jqplot"
	"github.com/cuioss/cui-jsf-components-sub005/notation"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// GeneratedIDPrefix prefixes the ids generated for definitions without one.
const GeneratedIDPrefix = "chart-"

var (
	// ErrEmptyDefinition is returned when a definition document is empty.
	ErrEmptyDefinition = errors.New("empty chart definition")
	// ErrInvalidPoint is returned when a data point is neither a scalar nor
	// an [x, y] pair.
	ErrInvalidPoint = errors.New("invalid data point")
	// ErrUnknownRenderer is returned when a renderer type is not supported.
	ErrUnknownRenderer = errors.New("unknown renderer")
)

// Hook is a hook function emitted after the chart statement.
type Hook struct {
	ID   string `yaml:"id"`
	Code string `yaml:"code"`
}

// Definition describes a single chart.
type Definition struct {
	// Name identifies the definition, e.g. by its file name.  It is not part
	// of the YAML document.
	Name string `yaml:"-"`

	ID               string   `yaml:"id"`
	NothingToDisplay *bool    `yaml:"nothingToDisplay"`
	Data             [][]any  `yaml:"data"`
	Options          *Options `yaml:"options"`
	Hooks            []Hook   `yaml:"hooks"`
}

// Parse decodes the provided YAML document into a Definition with the
// provided name.  Unknown fields are rejected.
func Parse(name string, data []byte) (*Definition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("chart definition `%s`: %w", name, ErrEmptyDefinition)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	def := &Definition{}
	if err := dec.Decode(def); err != nil {
		return nil, fmt.Errorf("chart definition `%s`: %w", name, err)
	}
	def.Name = name
	return def, nil
}

// LoadFile reads and parses the definition at the provided path.  The
// definition is named after the file, without its extension.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	return Parse(strings.TrimSuffix(base, filepath.Ext(base)), data)
}

// Build assembles the receiver into a chart.  Each call builds an
// independent chart tree.
func (d *Definition) Build() (*jqplot.JqPlot, error) {
	jp, err := d.build()
	if err != nil {
		return nil, fmt.Errorf("chart definition `%s`: %w", d.Name, err)
	}
	return jp, nil
}

func (d *Definition) build() (*jqplot.JqPlot, error) {
	b := jqplot.NewBuilder()
	id := d.ID
	if id == "" {
		id = GeneratedIDPrefix + uuid.NewString()
	}
	if err := b.UseChartID(id); err != nil {
		return nil, err
	}
	data := b.UseData()
	for idx, series := range d.Data {
		points := make([]notation.Value, 0, len(series))
		for pidx, raw := range series {
			point, err := pointValue(raw)
			if err != nil {
				return nil, fmt.Errorf("series %d, point %d: %w", idx, pidx, err)
			}
			points = append(points, point)
		}
		data.AddSeries(points...)
	}
	if d.Options != nil {
		if err := d.Options.apply(b.UseOptions()); err != nil {
			return nil, err
		}
	}
	jp, err := b.Build()
	if err != nil {
		return nil, err
	}
	for _, h := range d.Hooks {
		if err := jp.AddHookFunction(hookFunction(h)); err != nil {
			return nil, err
		}
	}
	if d.NothingToDisplay != nil {
		jp.SetNothingToDisplay(*d.NothingToDisplay)
	}
	return jp, nil
}

func hookFunction(h Hook) hook.Function {
	return hook.Function{ID: h.ID, Code: h.Code}
}

// pointValue converts a decoded data point into a Value.
func pointValue(raw any) (notation.Value, error) {
	if pair, ok := raw.([]any); ok {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: want an [x, y] pair, got %d values", ErrInvalidPoint, len(pair))
		}
		x, err := scalarValue(pair[0])
		if err != nil {
			return nil, err
		}
		y, err := scalarValue(pair[1])
		if err != nil {
			return nil, err
		}
		return jqplot.Point(x, y), nil
	}
	return scalarValue(raw)
}

// scalarValue converts a decoded YAML scalar into a Value.  Null becomes an
// absent value, rendered as null in its series.
func scalarValue(raw any) (notation.Value, error) {
	switch v := raw.(type) {
	case nil:
		return notation.Double{}, nil
	case int:
		return notation.NewNumber(v), nil
	case int64:
		return notation.NewNumber(v), nil
	case float64:
		return notation.NewNumber(v), nil
	case string:
		return notation.NewString(v), nil
	case bool:
		return notation.Bool(v), nil
	case time.Time:
		return notation.NewDateTime(v), nil
	}
	return nil, fmt.Errorf("%w: unsupported value %v (%T)", ErrInvalidPoint, raw, raw)
}

// apply calls set with *p if p is not nil.
func apply[T, R any](p *T, set func(T) R) {
	if p != nil {
		set(*p)
	}
}

// value converts an optional decoded scalar, such as an axis extent, into a
// Value.  Nil yields nil.
func value(raw any) (notation.Value, error) {
	if raw == nil {
		return nil, nil
	}
	return scalarValue(raw)
}
