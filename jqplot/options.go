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

package jqplot

import (
	"github.com/cuioss/cui-jsf-components-sub005/axis"
	"github.com/cuioss/cui-jsf-components-sub005/color"
	"github.com/cuioss/cui-jsf-components-sub005/hook"
	"github.com/cuioss/cui-jsf-components-sub005/notation"
	"github.com/cuioss/cui-jsf-components-sub005/plugin"
)

// Options is the root of a chart's configuration tree.  Its option blocks
// are created on first access, and only blocks with at least one property
// set are rendered.
type Options struct {
	title                *Title
	axesDefaults         *axis.Axis
	axes                 *axis.Axes
	seriesDefaults       *Series
	series               []*Series
	legend               *Legend
	grid                 *Grid
	cursor               *Cursor
	highlighter          *Highlighter
	seriesColors         *color.Palette
	negativeSeriesColors *color.Palette
	stackSeries          notation.Boolean
	animate              notation.Boolean
	animateReplot        notation.Boolean
	captureRightClick    notation.Boolean
	hooks                *hook.Manager
}

// NewOptions returns a new, empty Options.
func NewOptions() *Options {
	return &Options{
		hooks: hook.NewManager(),
	}
}

// Title returns the chart title, creating it if necessary.
func (o *Options) Title() *Title {
	if o.title == nil {
		o.title = &Title{}
	}
	return o.title
}

// AxesDefaults returns the options shared by all axes, creating them if
// necessary.
func (o *Options) AxesDefaults() *axis.Axis {
	if o.axesDefaults == nil {
		o.axesDefaults = axis.New(axis.Defaults)
	}
	return o.axesDefaults
}

// Axes returns the chart axes, creating them if necessary.
func (o *Options) Axes() *axis.Axes {
	if o.axes == nil {
		o.axes = axis.NewAxes()
	}
	return o.axes
}

// SeriesDefaults returns the options shared by all series, creating them if
// necessary.
func (o *Options) SeriesDefaults() *Series {
	if o.seriesDefaults == nil {
		o.seriesDefaults = newSeriesDefaults()
	}
	return o.seriesDefaults
}

// AddSeries appends per-series options, in data order.  Nil entries are
// ignored.
func (o *Options) AddSeries(series ...*Series) *Options {
	for _, s := range series {
		if s != nil {
			o.series = append(o.series, s)
		}
	}
	return o
}

// Series returns the per-series options in data order.
func (o *Options) Series() []*Series {
	ret := make([]*Series, len(o.series))
	copy(ret, o.series)
	return ret
}

// Legend returns the chart legend, creating it if necessary.
func (o *Options) Legend() *Legend {
	if o.legend == nil {
		o.legend = &Legend{}
	}
	return o.legend
}

// Grid returns the chart grid, creating it if necessary.
func (o *Options) Grid() *Grid {
	if o.grid == nil {
		o.grid = &Grid{}
	}
	return o.grid
}

// Cursor returns the cursor options, creating them if necessary.
func (o *Options) Cursor() *Cursor {
	if o.cursor == nil {
		o.cursor = &Cursor{}
	}
	return o.cursor
}

// Highlighter returns the highlighter options, creating them if necessary.
func (o *Options) Highlighter() *Highlighter {
	if o.highlighter == nil {
		o.highlighter = &Highlighter{}
	}
	return o.highlighter
}

// WithSeriesColors specifies the palette series are colored from.
func (o *Options) WithSeriesColors(p *color.Palette) *Options {
	o.seriesColors = p
	return o
}

// WithNegativeSeriesColors specifies the palette negative values are colored
// from.
func (o *Options) WithNegativeSeriesColors(p *color.Palette) *Options {
	o.negativeSeriesColors = p
	return o
}

// WithStackSeries specifies whether series are stacked.
func (o *Options) WithStackSeries(stack bool) *Options {
	o.stackSeries = notation.Bool(stack)
	return o
}

// WithAnimate specifies whether the chart is animated on first draw.
func (o *Options) WithAnimate(animate bool) *Options {
	o.animate = notation.Bool(animate)
	return o
}

// WithAnimateReplot specifies whether the chart is animated on replot.
func (o *Options) WithAnimateReplot(animate bool) *Options {
	o.animateReplot = notation.Bool(animate)
	return o
}

// WithCaptureRightClick specifies whether right clicks raise chart events.
func (o *Options) WithCaptureRightClick(capture bool) *Options {
	o.captureRightClick = notation.Bool(capture)
	return o
}

// AddHookFunction registers a hook function emitted after the chart
// statement.  It fails with hook.ErrDuplicateHook if the identifier is
// already registered.
func (o *Options) AddHookFunction(p hook.FunctionProvider) error {
	if o.hooks == nil {
		o.hooks = hook.NewManager()
	}
	return o.hooks.Add(p)
}

// HookFunctionsCode returns the code of the receiver's hook functions.
func (o *Options) HookFunctionsCode() string {
	if o == nil {
		return ""
	}
	return o.hooks.Code()
}

// seriesArray returns the per-series options.  Unconfigured entries render
// as null, keeping positions aligned with the data.
func (o *Options) seriesArray() *notation.Array[*notation.Object] {
	if len(o.series) == 0 {
		return nil
	}
	ret := notation.NewArray[*notation.Object]()
	for _, s := range o.series {
		ret.Add(s.Object())
	}
	return ret
}

// Object returns the receiver as an unnamed object.
func (o *Options) Object() *notation.Object {
	if o == nil {
		return nil
	}
	return notation.NewObject("").
		Add(o.title.Object()).
		AddProperty("stackSeries", o.stackSeries).
		AddProperty("animate", o.animate).
		AddProperty("animateReplot", o.animateReplot).
		AddProperty("captureRightClick", o.captureRightClick).
		Add(o.seriesColors.Define()).
		Add(o.negativeSeriesColors.DefineNegative()).
		Add(o.axesDefaults.Object()).
		Add(o.axes.Object()).
		Add(o.seriesDefaults.Object()).
		AddProperty("series", o.seriesArray()).
		Add(o.legend.Object()).
		Add(o.grid.Object()).
		Add(o.cursor.Object()).
		Add(o.highlighter.Object())
}

// UsedPlugins implements plugin.Consumer, walking every configured block.
func (o *Options) UsedPlugins() []string {
	if o == nil {
		return nil
	}
	s := plugin.NewSupport().
		AddConsumer(o.axesDefaults, o.axes, o.seriesDefaults)
	for _, series := range o.series {
		s.AddConsumer(series)
	}
	s.AddConsumer(o.legend, o.cursor, o.highlighter)
	return s.Plugins()
}
