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
	"github.com/cuioss/cui-jsf-components-sub005/decoration"
	"github.com/cuioss/cui-jsf-components-sub005/notation"
	"github.com/cuioss/cui-jsf-components-sub005/plugin"
	rendereroptions "github.com/cuioss/cui-jsf-components-sub005/renderer_options"
)

const seriesDefaultsName = "seriesDefaults"

// AxisRef names the x or y axis a series is plotted against.
type AxisRef string

// Axis references.
const (
	XAxis  AxisRef = "xaxis"
	X2Axis AxisRef = "x2axis"
	YAxis  AxisRef = "yaxis"
	Y2Axis AxisRef = "y2axis"
)

// Series configures a single data series or, as the `seriesDefaults` block,
// every series of a chart.
type Series struct {
	name          string
	label         notation.String
	color         notation.String
	lineWidth     notation.Double
	showLine      notation.Boolean
	showMarker    notation.Boolean
	fill          notation.Boolean
	xAxis         notation.String
	yAxis         notation.String
	disableStack  notation.Boolean
	renderer      rendereroptions.RendererOptions
	markerOptions *MarkerOptions
	pointLabels   *PointLabels
	shadow        decoration.Shadow
}

// NewSeries returns a new, unconfigured Series.
func NewSeries() *Series {
	return &Series{}
}

func newSeriesDefaults() *Series {
	return &Series{name: seriesDefaultsName}
}

// WithLabel specifies the series label shown in the legend.
func (s *Series) WithLabel(label string) *Series {
	s.label = notation.NonEmptyString(label)
	return s
}

// WithColor specifies the CSS series color.
func (s *Series) WithColor(color string) *Series {
	s.color = notation.NonEmptyString(color)
	return s
}

// WithLineWidth specifies the series line width in pixels.
func (s *Series) WithLineWidth(px float64) *Series {
	s.lineWidth = notation.NewDouble(px)
	return s
}

// WithShowLine specifies whether a line connects the series points.
func (s *Series) WithShowLine(show bool) *Series {
	s.showLine = notation.Bool(show)
	return s
}

// WithShowMarker specifies whether markers are drawn at the series points.
func (s *Series) WithShowMarker(show bool) *Series {
	s.showMarker = notation.Bool(show)
	return s
}

// WithFill specifies whether the area below the series is filled.
func (s *Series) WithFill(fill bool) *Series {
	s.fill = notation.Bool(fill)
	return s
}

// WithAxes specifies the axes the series is plotted against.
func (s *Series) WithAxes(x, y AxisRef) *Series {
	s.xAxis = notation.NonEmptyString(string(x))
	s.yAxis = notation.NonEmptyString(string(y))
	return s
}

// WithDisableStack excludes the series from stacking.
func (s *Series) WithDisableStack(disable bool) *Series {
	s.disableStack = notation.Bool(disable)
	return s
}

// WithRenderer specifies the series renderer and its options.
func (s *Series) WithRenderer(r rendereroptions.RendererOptions) *Series {
	s.renderer = r
	return s
}

// MarkerOptions returns the series' marker options, creating them if
// necessary.
func (s *Series) MarkerOptions() *MarkerOptions {
	if s.markerOptions == nil {
		s.markerOptions = &MarkerOptions{}
	}
	return s.markerOptions
}

// PointLabels returns the series' point labels, creating them if necessary.
func (s *Series) PointLabels() *PointLabels {
	if s.pointLabels == nil {
		s.pointLabels = &PointLabels{}
	}
	return s.pointLabels
}

// Shadow returns the series' shadow decoration for configuration.
func (s *Series) Shadow() *decoration.Shadow {
	return &s.shadow
}

// Object returns the receiver as an object: named `seriesDefaults` for the
// defaults block, unnamed for an entry of the `series` array.
func (s *Series) Object() *notation.Object {
	if s == nil {
		return nil
	}
	obj := notation.NewObject(s.name).
		AddProperty("label", s.label).
		AddProperty("color", s.color).
		AddProperty("lineWidth", s.lineWidth).
		AddProperty("showLine", s.showLine).
		AddProperty("showMarker", s.showMarker).
		AddProperty("fill", s.fill).
		AddProperty("xaxis", s.xAxis).
		AddProperty("yaxis", s.yAxis).
		AddProperty("disableStack", s.disableStack)
	if s.renderer != nil {
		obj.AddProperty("renderer", s.renderer.Renderer()).
			Add(s.renderer.Object())
	}
	return obj.
		Add(s.markerOptions.Object()).
		Add(s.pointLabels.Object()).
		AddProperties(&s.shadow)
}

// UsedPlugins implements plugin.Consumer.
func (s *Series) UsedPlugins() []string {
	if s == nil {
		return nil
	}
	return plugin.NewSupport().
		AddConsumer(s.renderer, s.pointLabels).
		Plugins()
}
