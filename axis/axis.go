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

// Package axis defines jqPlot axis options.
//
// A chart has up to four axes, xaxis, yaxis, x2axis and y2axis, collected in
// an Axes block, plus an axesDefaults block shared by all of them.  An axis
// may be given a specialized renderer, such as a date or category renderer,
// and its ticks and label may be drawn on canvas, which allows rotating them:
//
//	axes := axis.NewAxes()
//	axes.X().
//	  WithRenderer(axis.NewDateAxisRenderer()).
//	  WithTickInterval(notation.NewString("1 week")).
//	  WithCanvasTicks(true)
//	axes.X().TickOptions().WithFormatString("%b %#d").WithAngle(-30)
//
// The plugins needed by the configured renderers are reported by
// UsedPlugins.
package axis

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cuioss/cui-jsf-components-sub005/notation"
	"github.com/cuioss/cui-jsf-components-sub005/plugin"
)

// Name identifies one of a chart's axes.
type Name string

// Axis names.
const (
	X  Name = "xaxis"
	Y  Name = "yaxis"
	X2 Name = "x2axis"
	Y2 Name = "y2axis"

	// Defaults names the block of settings shared by all axes.
	Defaults Name = "axesDefaults"
)

// ErrUnknownAxis is returned when an axis outside xaxis, yaxis, x2axis and
// y2axis is requested from an Axes.
var ErrUnknownAxis = errors.New("unknown axis")

const (
	axesName = "axes"

	labelKey         = "label"
	minKey           = "min"
	maxKey           = "max"
	padKey           = "pad"
	numberTicksKey   = "numberTicks"
	tickIntervalKey  = "tickInterval"
	ticksKey         = "ticks"
	showTicksKey     = "showTicks"
	autoscaleKey     = "autoscale"
	rendererKey      = "renderer"
	rendererOptsKey  = "rendererOptions"
	tickOptionsKey   = "tickOptions"
	tickRendererKey  = "tickRenderer"
	labelRendererKey = "labelRenderer"

	formatStringKey = "formatString"
	angleKey        = "angle"
	fontSizeKey     = "fontSize"
	showGridlineKey = "showGridline"
	showMarkKey     = "showMark"
	showKey         = "show"
	prefixKey       = "prefix"

	sortMergedLabelsKey = "sortMergedLabels"
	tickInsetKey        = "tickInset"

	canvasAxisTickRenderer  = "$.jqplot.CanvasAxisTickRenderer"
	canvasAxisLabelRenderer = "$.jqplot.CanvasAxisLabelRenderer"
)

// Renderer is implemented by axis renderers.
type Renderer interface {
	plugin.Consumer
	// Renderer returns the client-side renderer to use.
	Renderer() notation.Expression
	// Object returns the renderer's `rendererOptions` block, which may be
	// absent.
	Object() *notation.Object
}

// DateAxisRenderer renders an axis of dates.
type DateAxisRenderer struct {
	tickInset notation.Double
}

// NewDateAxisRenderer returns a new DateAxisRenderer.
func NewDateAxisRenderer() *DateAxisRenderer {
	return &DateAxisRenderer{}
}

// WithTickInset specifies how many tick intervals to inset the first and
// last ticks from the axis edges.
func (r *DateAxisRenderer) WithTickInset(intervals float64) *DateAxisRenderer {
	r.tickInset = notation.NewDouble(intervals)
	return r
}

// Renderer implements Renderer.
func (r *DateAxisRenderer) Renderer() notation.Expression {
	return notation.NewExpression("$.jqplot.DateAxisRenderer")
}

// UsedPlugins implements plugin.Consumer.
func (r *DateAxisRenderer) UsedPlugins() []string {
	if r == nil {
		return nil
	}
	return []string{plugin.DateAxisRenderer}
}

// Object implements Renderer.
func (r *DateAxisRenderer) Object() *notation.Object {
	if r == nil {
		return nil
	}
	return notation.NewObject(rendererOptsKey).
		AddProperty(tickInsetKey, r.tickInset)
}

// CategoryAxisRenderer renders an axis of discrete, labeled categories.
type CategoryAxisRenderer struct {
	sortMergedLabels notation.Boolean
}

// NewCategoryAxisRenderer returns a new CategoryAxisRenderer.
func NewCategoryAxisRenderer() *CategoryAxisRenderer {
	return &CategoryAxisRenderer{}
}

// WithSortMergedLabels specifies whether labels merged from several series
// are sorted.
func (r *CategoryAxisRenderer) WithSortMergedLabels(sort bool) *CategoryAxisRenderer {
	r.sortMergedLabels = notation.Bool(sort)
	return r
}

// Renderer implements Renderer.
func (r *CategoryAxisRenderer) Renderer() notation.Expression {
	return notation.NewExpression("$.jqplot.CategoryAxisRenderer")
}

// UsedPlugins implements plugin.Consumer.
func (r *CategoryAxisRenderer) UsedPlugins() []string {
	if r == nil {
		return nil
	}
	return []string{plugin.CategoryAxisRenderer}
}

// Object implements Renderer.
func (r *CategoryAxisRenderer) Object() *notation.Object {
	if r == nil {
		return nil
	}
	return notation.NewObject(rendererOptsKey).
		AddProperty(sortMergedLabelsKey, r.sortMergedLabels)
}

// TickOptions configures how an axis' ticks are drawn.
type TickOptions struct {
	formatString notation.String
	angle        notation.Integer
	fontSize     notation.String
	prefix       notation.String
	show         notation.Boolean
	showGridline notation.Boolean
	showMark     notation.Boolean
}

// WithFormatString specifies the sprintf-style tick label format, e.g.
// "%.2f" or, on date axes, "%b %#d".
func (to *TickOptions) WithFormatString(format string) *TickOptions {
	to.formatString = notation.NonEmptyString(format)
	return to
}

// WithAngle specifies the tick label rotation in degrees.  It requires
// canvas ticks.
func (to *TickOptions) WithAngle(degrees int) *TickOptions {
	to.angle = notation.NewInteger(degrees)
	return to
}

// WithFontSize specifies the CSS font size of tick labels, e.g. "10pt".
func (to *TickOptions) WithFontSize(size string) *TickOptions {
	to.fontSize = notation.NonEmptyString(size)
	return to
}

// WithPrefix specifies text prepended to each tick label.
func (to *TickOptions) WithPrefix(prefix string) *TickOptions {
	to.prefix = notation.NonEmptyString(prefix)
	return to
}

// WithShow specifies whether ticks are shown at all.
func (to *TickOptions) WithShow(show bool) *TickOptions {
	to.show = notation.Bool(show)
	return to
}

// WithShowGridline specifies whether grid lines are drawn at ticks.
func (to *TickOptions) WithShowGridline(show bool) *TickOptions {
	to.showGridline = notation.Bool(show)
	return to
}

// WithShowMark specifies whether tick marks are drawn.
func (to *TickOptions) WithShowMark(show bool) *TickOptions {
	to.showMark = notation.Bool(show)
	return to
}

func (to *TickOptions) object() *notation.Object {
	return notation.NewObject(tickOptionsKey).
		AddProperty(formatStringKey, to.formatString).
		AddProperty(angleKey, to.angle).
		AddProperty(fontSizeKey, to.fontSize).
		AddProperty(prefixKey, to.prefix).
		AddProperty(showKey, to.show).
		AddProperty(showGridlineKey, to.showGridline).
		AddProperty(showMarkKey, to.showMark)
}

// Axis configures one axis, or the defaults shared by all axes.
type Axis struct {
	name         Name
	label        notation.String
	min          notation.Value
	max          notation.Value
	pad          notation.Double
	numberTicks  notation.Integer
	tickInterval notation.Value
	ticks        *notation.Array[notation.Value]
	showTicks    notation.Boolean
	autoscale    notation.Boolean
	renderer     Renderer
	tickOptions  TickOptions
	canvasTicks  bool
	canvasLabel  bool
}

// New returns a new Axis with the provided name.
func New(name Name) *Axis {
	return &Axis{name: name}
}

// Name returns the receiver's name.
func (a *Axis) Name() Name {
	return a.name
}

// WithLabel specifies the axis label.
func (a *Axis) WithLabel(label string) *Axis {
	a.label = notation.NonEmptyString(label)
	return a
}

// WithMin specifies the axis minimum, e.g. a Number or, on date axes, a Date.
func (a *Axis) WithMin(min notation.Value) *Axis {
	a.min = min
	return a
}

// WithMax specifies the axis maximum.
func (a *Axis) WithMax(max notation.Value) *Axis {
	a.max = max
	return a
}

// WithExtents sets the axis minimum and maximum to the lowest and highest of
// the provided values.  It does nothing if no values are provided.
func (a *Axis) WithExtents(extents ...float64) *Axis {
	if len(extents) == 0 {
		return a
	}
	min, max := math.MaxFloat64, -math.MaxFloat64
	for _, extent := range extents {
		min = math.Min(min, extent)
		max = math.Max(max, extent)
	}
	return a.WithMin(notation.NewDouble(min)).WithMax(notation.NewDouble(max))
}

// WithDateExtents sets the axis minimum and maximum to the earliest and
// latest of the provided times, rendered in the provided format.  It does
// nothing if no times are provided.
func (a *Axis) WithDateExtents(format notation.DateFormat, extents ...time.Time) *Axis {
	if len(extents) == 0 {
		return a
	}
	min, max := extents[0], extents[0]
	for _, extent := range extents[1:] {
		if extent.Before(min) {
			min = extent
		}
		if extent.After(max) {
			max = extent
		}
	}
	return a.WithMin(notation.NewDateWithFormat(min, format)).
		WithMax(notation.NewDateWithFormat(max, format))
}

// WithPad specifies the factor by which the data range is padded when the
// extents are computed automatically.
func (a *Axis) WithPad(pad float64) *Axis {
	a.pad = notation.NewDouble(pad)
	return a
}

// WithNumberTicks specifies the number of ticks.
func (a *Axis) WithNumberTicks(n int) *Axis {
	a.numberTicks = notation.NewInteger(n)
	return a
}

// WithTickInterval specifies the distance between ticks, a Number or, on
// date axes, a String such as "1 day".
func (a *Axis) WithTickInterval(interval notation.Value) *Axis {
	a.tickInterval = interval
	return a
}

// WithTicks specifies explicit tick values or labels.
func (a *Axis) WithTicks(ticks ...notation.Value) *Axis {
	a.ticks = notation.NewArray(ticks...)
	return a
}

// WithShowTicks specifies whether the axis' ticks are shown.
func (a *Axis) WithShowTicks(show bool) *Axis {
	a.showTicks = notation.Bool(show)
	return a
}

// WithAutoscale specifies whether the axis picks its own extents and ticks.
func (a *Axis) WithAutoscale(autoscale bool) *Axis {
	a.autoscale = notation.Bool(autoscale)
	return a
}

// WithRenderer specifies the axis renderer.
func (a *Axis) WithRenderer(r Renderer) *Axis {
	a.renderer = r
	return a
}

// WithCanvasTicks specifies whether tick labels are drawn on canvas, which
// allows rotating them.
func (a *Axis) WithCanvasTicks(canvas bool) *Axis {
	a.canvasTicks = canvas
	return a
}

// WithCanvasLabel specifies whether the axis label is drawn on canvas.
func (a *Axis) WithCanvasLabel(canvas bool) *Axis {
	a.canvasLabel = canvas
	return a
}

// TickOptions returns the axis' tick options for configuration.
func (a *Axis) TickOptions() *TickOptions {
	return &a.tickOptions
}

// Object returns the receiver as a named object.
func (a *Axis) Object() *notation.Object {
	if a == nil {
		return nil
	}
	obj := notation.NewObject(string(a.name)).
		AddProperty(labelKey, a.label).
		AddProperty(minKey, a.min).
		AddProperty(maxKey, a.max).
		AddProperty(padKey, a.pad).
		AddProperty(numberTicksKey, a.numberTicks).
		AddProperty(tickIntervalKey, a.tickInterval).
		AddProperty(ticksKey, a.ticks).
		AddProperty(showTicksKey, a.showTicks).
		AddProperty(autoscaleKey, a.autoscale)
	if a.renderer != nil {
		obj.AddProperty(rendererKey, a.renderer.Renderer()).
			Add(a.renderer.Object())
	}
	obj.Add(a.tickOptions.object())
	if a.canvasTicks {
		obj.AddProperty(tickRendererKey, notation.NewExpression(canvasAxisTickRenderer))
	}
	if a.canvasLabel {
		obj.AddProperty(labelRendererKey, notation.NewExpression(canvasAxisLabelRenderer))
	}
	return obj
}

// UsedPlugins implements plugin.Consumer.
func (a *Axis) UsedPlugins() []string {
	if a == nil {
		return nil
	}
	s := plugin.NewSupport()
	if a.renderer != nil {
		s.AddConsumer(a.renderer)
	}
	if a.canvasTicks {
		s.Add(plugin.CanvasTextRenderer, plugin.CanvasAxisTickRenderer)
	}
	if a.canvasLabel {
		s.Add(plugin.CanvasTextRenderer, plugin.CanvasAxisLabelRenderer)
	}
	return s.Plugins()
}

// Axes collects a chart's individual axes.
type Axes struct {
	axes map[Name]*Axis
}

// NewAxes returns a new Axes with no axis configured.
func NewAxes() *Axes {
	return &Axes{axes: map[Name]*Axis{}}
}

var chartAxes = []Name{X, Y, X2, Y2}

// Axis returns the named axis, creating it if necessary.  Only xaxis, yaxis,
// x2axis and y2axis belong to an Axes; any other name yields ErrUnknownAxis.
func (as *Axes) Axis(name Name) (*Axis, error) {
	for _, n := range chartAxes {
		if n == name {
			return as.axis(name), nil
		}
	}
	return nil, fmt.Errorf("%w `%s`", ErrUnknownAxis, name)
}

func (as *Axes) axis(name Name) *Axis {
	a, ok := as.axes[name]
	if !ok {
		a = New(name)
		as.axes[name] = a
	}
	return a
}

// X returns the primary x axis, creating it if necessary.
func (as *Axes) X() *Axis {
	return as.axis(X)
}

// Y returns the primary y axis, creating it if necessary.
func (as *Axes) Y() *Axis {
	return as.axis(Y)
}

// X2 returns the secondary x axis, creating it if necessary.
func (as *Axes) X2() *Axis {
	return as.axis(X2)
}

// Y2 returns the secondary y axis, creating it if necessary.
func (as *Axes) Y2() *Axis {
	return as.axis(Y2)
}

// ordered returns the configured axes in a fixed order.
func (as *Axes) ordered() []*Axis {
	ret := []*Axis{}
	for _, name := range chartAxes {
		if a, ok := as.axes[name]; ok {
			ret = append(ret, a)
		}
	}
	return ret
}

// Object returns the receiver as the `axes` object.
func (as *Axes) Object() *notation.Object {
	if as == nil {
		return nil
	}
	obj := notation.NewObject(axesName)
	for _, a := range as.ordered() {
		obj.Add(a.Object())
	}
	return obj
}

// UsedPlugins implements plugin.Consumer.
func (as *Axes) UsedPlugins() []string {
	if as == nil {
		return nil
	}
	s := plugin.NewSupport()
	for _, a := range as.ordered() {
		s.AddConsumer(a)
	}
	return s.Plugins()
}
