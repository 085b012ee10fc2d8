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

// Package renderdispatcher provides Dispatcher, a type for rendering several
// independent charts, such as all the charts of one page, concurrently.
package renderdispatcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/cuioss/cui-jsf-components-sub005/jqplot"
	"github.com/cuioss/cui-jsf-components-sub005/plugin"
	"golang.org/x/sync/errgroup"
)

// ErrDuplicateChartID is returned when two charts of one batch draw into the
// same element.
var ErrDuplicateChartID = errors.New("multiple charts target element")

// Source represents a single chart configuration, such as a
// chartdef.Definition.  Each Build call must return an independent chart, so
// that Sources may be built concurrently.
type Source interface {
	Build() (*jqplot.JqPlot, error)
}

// Rendered is a single rendered chart.
type Rendered struct {
	ChartID string
	// Script is the chart statement, followed by its hook functions.
	Script string
	// Plugins lists the plugin scripts the chart requires.
	Plugins []string
}

// Dispatcher renders batches of charts, building at most a fixed number of
// them at once.
type Dispatcher struct {
	limit int
}

// New returns a *Dispatcher building at most limit charts concurrently.  A
// non-positive limit means no limit.
func New(limit int) *Dispatcher {
	return &Dispatcher{limit: limit}
}

// Render builds and renders a single chart.
func (d *Dispatcher) Render(src Source) (*Rendered, error) {
	jp, err := src.Build()
	if err != nil {
		return nil, err
	}
	return &Rendered{
		ChartID: jp.TargetID(),
		Script:  jp.AsJavaScriptObjectNotation(),
		Plugins: jp.Plugins(),
	}, nil
}

// RenderAll renders the provided charts concurrently, returning their
// renderings in input order.  The first failure cancels the remaining
// charts and is returned.
func (d *Dispatcher) RenderAll(ctx context.Context, srcs ...Source) ([]*Rendered, error) {
	ret := make([]*Rendered, len(srcs))
	errg, ctx := errgroup.WithContext(ctx)
	if d.limit > 0 {
		errg.SetLimit(d.limit)
	}
	for idx, src := range srcs {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := d.Render(src)
			if err != nil {
				return fmt.Errorf("chart %d: %w", idx, err)
			}
			ret[idx] = r
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, r := range ret {
		if _, ok := seen[r.ChartID]; ok {
			return nil, fmt.Errorf("%w `%s`", ErrDuplicateChartID, r.ChartID)
		}
		seen[r.ChartID] = struct{}{}
	}
	return ret, nil
}

// MergePlugins returns the de-duplicated plugins required by all provided
// charts, in first-use order.
func MergePlugins(rendered ...*Rendered) []string {
	s := plugin.NewSupport()
	for _, r := range rendered {
		if r != nil {
			s.Add(r.Plugins...)
		}
	}
	return s.Plugins()
}
