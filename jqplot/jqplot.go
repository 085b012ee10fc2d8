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

// Package jqplot assembles complete jqPlot chart statements: the data
// series, the options tree, and the hook functions emitted after the chart
// is created, together with the list of plugin scripts the page must load.
//
// A chart is typically assembled through a Builder:
//
//	b := jqplot.NewBuilder()
//	if err := b.UseChartID("sales"); err != nil { ... }
//	b.UseData().AddSeries(notation.NewNumber(3), notation.NewNumber(7))
//	b.UseOptions().SeriesDefaults().WithRenderer(rendereroptions.NewBar())
//	plot, err := b.Build()
//	...
//	script := plot.AsJavaScriptObjectNotation()
//	// $.jqplot("sales", [[3,7]], {seriesDefaults:{renderer:$.jqplot.BarRenderer}});
//	plugins := plot.Plugins() // [jqplot.barRenderer.min.js]
package jqplot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cuioss/cui-jsf-components-sub005/hook"
	"github.com/cuioss/cui-jsf-components-sub005/notation"
	"github.com/cuioss/cui-jsf-components-sub005/plugin"
)

// NothingToDisplay is the statement rendered for a suppressed chart.
const NothingToDisplay = "'';"

var (
	// ErrBlankChartID is returned when a chart is given a blank target id.
	ErrBlankChartID = errors.New("chart id must not be blank")
	// ErrChartIDAlreadySet is returned when a Builder's chart id is set twice.
	ErrChartIDAlreadySet = errors.New("chart id already set")
	// ErrMissingChartID is returned when a Builder is built without chart id.
	ErrMissingChartID = errors.New("chart id not set")
	// ErrMissingData is returned when a chart is created without data.
	ErrMissingData = errors.New("chart data not set")
)

// JqPlot is a single chart: the id of the element it is drawn into, its
// data, and its optional options.
type JqPlot struct {
	targetID         string
	data             *SeriesData
	options          *Options
	nothingToDisplay bool
	hooks            *hook.Manager
}

// New returns a new chart drawn into the element with the provided id.
// options may be nil.  A chart whose data holds no point displays nothing.
func New(targetID string, data *SeriesData, options *Options) (*JqPlot, error) {
	if strings.TrimSpace(targetID) == "" {
		return nil, ErrBlankChartID
	}
	if data == nil {
		return nil, fmt.Errorf("%w for chart `%s`", ErrMissingData, targetID)
	}
	return &JqPlot{
		targetID:         targetID,
		data:             data,
		options:          options,
		nothingToDisplay: data.IsEmpty(),
		hooks:            hook.NewManager(),
	}, nil
}

// TargetID returns the id of the element the chart is drawn into.
func (jp *JqPlot) TargetID() string {
	return jp.targetID
}

// NothingToDisplay reports whether the chart is suppressed.
func (jp *JqPlot) NothingToDisplay() bool {
	return jp.nothingToDisplay
}

// SetNothingToDisplay suppresses, or re-enables, the chart.
func (jp *JqPlot) SetNothingToDisplay(nothing bool) {
	jp.nothingToDisplay = nothing
}

// AddHookFunction registers a hook function emitted after the options' own
// hook functions.  It fails with hook.ErrDuplicateHook if the identifier is
// already registered on the chart.
func (jp *JqPlot) AddHookFunction(p hook.FunctionProvider) error {
	return jp.hooks.Add(p)
}

// AsJavaScriptObjectNotation renders the chart statement followed by all
// hook functions, or NothingToDisplay if the chart is suppressed.
func (jp *JqPlot) AsJavaScriptObjectNotation() string {
	if jp.nothingToDisplay {
		return NothingToDisplay
	}
	id, _ := notation.NewString(jp.targetID).ValueAsString()
	opts, ok := jp.options.Object().ValueAsString()
	if !ok {
		opts = "null"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "$.jqplot(%s, %s, %s);", id, jp.data.AsJavaScriptObjectNotation(), opts)
	sb.WriteString(jp.options.HookFunctionsCode())
	sb.WriteString(jp.hooks.Code())
	return sb.String()
}

// Plugins returns the de-duplicated file names of the plugins the chart's
// options require, or none if the chart is suppressed.
func (jp *JqPlot) Plugins() []string {
	if jp.nothingToDisplay {
		return []string{}
	}
	return plugin.NewSupport().AddConsumer(jp.options).Plugins()
}
