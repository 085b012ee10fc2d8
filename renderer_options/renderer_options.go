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

// Package rendereroptions defines the options of jqPlot's series renderers.
//
// A series drawn by anything other than the default line renderer names its
// renderer and configures it through a `rendererOptions` block.  Each
// RendererOptions implementation here knows its renderer expression and the
// plugin script that provides it:
//
//	bar := rendereroptions.NewBar().
//	  WithBarDirection(rendereroptions.Horizontal).
//	  WithBarMargin(4)
//	bar.Shadow().WithShadow(false)
//	series.WithRendererOptions(bar)
//
// Bar, Pie and Donut renderers accept the shadow and highlight decorations.
package rendereroptions

import (
	"github.com/cuioss/cui-jsf-components-sub005/decoration"
	"github.com/cuioss/cui-jsf-components-sub005/notation"
	"github.com/cuioss/cui-jsf-components-sub005/plugin"
)

const (
	// Name is the property name of every renderer options block.
	Name = "rendererOptions"

	barPaddingKey   = "barPadding"
	barMarginKey    = "barMargin"
	barWidthKey     = "barWidth"
	barDirectionKey = "barDirection"
	varyBarColorKey = "varyBarColor"
	fillToZeroKey   = "fillToZero"

	diameterKey           = "diameter"
	paddingKey            = "padding"
	sliceMarginKey        = "sliceMargin"
	startAngleKey         = "startAngle"
	fillKey               = "fill"
	showDataLabelsKey     = "showDataLabels"
	dataLabelsKey         = "dataLabels"
	dataLabelThresholdKey = "dataLabelThreshold"
	innerDiameterKey      = "innerDiameter"
	ringMarginKey         = "ringMargin"
)

// RendererOptions is implemented by series renderer configurations.
type RendererOptions interface {
	plugin.Consumer
	// Renderer returns the client-side renderer to use.
	Renderer() notation.Expression
	// Object returns the `rendererOptions` block, which may be absent.
	Object() *notation.Object
}

// BarDirection is the direction bars grow in.
type BarDirection string

// Bar directions.
const (
	Vertical   BarDirection = "vertical"
	Horizontal BarDirection = "horizontal"
)

// Bar configures $.jqplot.BarRenderer.
type Bar struct {
	barPadding   notation.Integer
	barMargin    notation.Integer
	barWidth     notation.Integer
	barDirection notation.String
	varyBarColor notation.Boolean
	fillToZero   notation.Boolean
	shadow       decoration.Shadow
	highlight    decoration.Highlight
}

// NewBar returns a new Bar with all options unset.
func NewBar() *Bar {
	return &Bar{}
}

// WithBarPadding specifies the pixels between adjacent bars of a group.
func (b *Bar) WithBarPadding(px int) *Bar {
	b.barPadding = notation.NewInteger(px)
	return b
}

// WithBarMargin specifies the pixels between adjacent groups of bars.
func (b *Bar) WithBarMargin(px int) *Bar {
	b.barMargin = notation.NewInteger(px)
	return b
}

// WithBarWidth specifies a fixed bar width in pixels.
func (b *Bar) WithBarWidth(px int) *Bar {
	b.barWidth = notation.NewInteger(px)
	return b
}

// WithBarDirection specifies whether bars are vertical or horizontal.
func (b *Bar) WithBarDirection(dir BarDirection) *Bar {
	b.barDirection = notation.NonEmptyString(string(dir))
	return b
}

// WithVaryBarColor specifies whether each bar of a series takes its own
// color from the series colors.
func (b *Bar) WithVaryBarColor(vary bool) *Bar {
	b.varyBarColor = notation.Bool(vary)
	return b
}

// WithFillToZero specifies whether bars are filled from zero rather than
// from the axis minimum.
func (b *Bar) WithFillToZero(fill bool) *Bar {
	b.fillToZero = notation.Bool(fill)
	return b
}

// Shadow returns the bars' shadow decoration for configuration.
func (b *Bar) Shadow() *decoration.Shadow {
	return &b.shadow
}

// Highlight returns the bars' highlight decoration for configuration.
func (b *Bar) Highlight() *decoration.Highlight {
	return &b.highlight
}

// Renderer implements RendererOptions.
func (b *Bar) Renderer() notation.Expression {
	return notation.NewExpression("$.jqplot.BarRenderer")
}

// UsedPlugins implements plugin.Consumer.
func (b *Bar) UsedPlugins() []string {
	if b == nil {
		return nil
	}
	return []string{plugin.BarRenderer}
}

// Object implements RendererOptions.
func (b *Bar) Object() *notation.Object {
	if b == nil {
		return nil
	}
	return notation.NewObject(Name).
		AddProperty(barPaddingKey, b.barPadding).
		AddProperty(barMarginKey, b.barMargin).
		AddProperty(barWidthKey, b.barWidth).
		AddProperty(barDirectionKey, b.barDirection).
		AddProperty(varyBarColorKey, b.varyBarColor).
		AddProperty(fillToZeroKey, b.fillToZero).
		AddProperties(&b.shadow).
		AddProperties(&b.highlight)
}

// DataLabels selects what pie and donut slices are labeled with.
type DataLabels string

// Data label kinds.
const (
	PercentLabels DataLabels = "percent"
	ValueLabels   DataLabels = "value"
	LabelLabels   DataLabels = "label"
)

// Pie configures $.jqplot.PieRenderer.
type Pie struct {
	diameter           notation.Integer
	padding            notation.Integer
	sliceMargin        notation.Integer
	startAngle         notation.Integer
	fill               notation.Boolean
	showDataLabels     notation.Boolean
	dataLabels         notation.String
	dataLabelThreshold notation.Double
	shadow             decoration.Shadow
	highlight          decoration.Highlight
}

// NewPie returns a new Pie with all options unset.
func NewPie() *Pie {
	return &Pie{}
}

// WithDiameter specifies the outer diameter of the pie in pixels.
func (p *Pie) WithDiameter(px int) *Pie {
	p.diameter = notation.NewInteger(px)
	return p
}

// WithPadding specifies the pixels between the pie and the plot edges.
func (p *Pie) WithPadding(px int) *Pie {
	p.padding = notation.NewInteger(px)
	return p
}

// WithSliceMargin specifies the pixels between adjacent slices.
func (p *Pie) WithSliceMargin(px int) *Pie {
	p.sliceMargin = notation.NewInteger(px)
	return p
}

// WithStartAngle specifies the angle, in degrees, of the first slice.
func (p *Pie) WithStartAngle(degrees int) *Pie {
	p.startAngle = notation.NewInteger(degrees)
	return p
}

// WithFill specifies whether slices are filled.
func (p *Pie) WithFill(fill bool) *Pie {
	p.fill = notation.Bool(fill)
	return p
}

// WithDataLabels enables slice labels of the provided kind.
func (p *Pie) WithDataLabels(labels DataLabels) *Pie {
	p.showDataLabels = notation.True
	p.dataLabels = notation.NonEmptyString(string(labels))
	return p
}

// WithDataLabelThreshold specifies the minimum slice percentage, from 0 to
// 100, that is labeled.
func (p *Pie) WithDataLabelThreshold(percent float64) *Pie {
	p.dataLabelThreshold = notation.NewDouble(percent)
	return p
}

// Shadow returns the slices' shadow decoration for configuration.
func (p *Pie) Shadow() *decoration.Shadow {
	return &p.shadow
}

// Highlight returns the slices' highlight decoration for configuration.
func (p *Pie) Highlight() *decoration.Highlight {
	return &p.highlight
}

// Renderer implements RendererOptions.
func (p *Pie) Renderer() notation.Expression {
	return notation.NewExpression("$.jqplot.PieRenderer")
}

// UsedPlugins implements plugin.Consumer.
func (p *Pie) UsedPlugins() []string {
	if p == nil {
		return nil
	}
	return []string{plugin.PieRenderer}
}

// Object implements RendererOptions.
func (p *Pie) Object() *notation.Object {
	if p == nil {
		return nil
	}
	return notation.NewObject(Name).
		AddProperty(diameterKey, p.diameter).
		AddProperty(paddingKey, p.padding).
		AddProperty(sliceMarginKey, p.sliceMargin).
		AddProperty(startAngleKey, p.startAngle).
		AddProperty(fillKey, p.fill).
		AddProperty(showDataLabelsKey, p.showDataLabels).
		AddProperty(dataLabelsKey, p.dataLabels).
		AddProperty(dataLabelThresholdKey, p.dataLabelThreshold).
		AddProperties(&p.shadow).
		AddProperties(&p.highlight)
}

// Donut configures $.jqplot.DonutRenderer.  It accepts all Pie options plus
// its own ring options.
type Donut struct {
	pie           Pie
	innerDiameter notation.Integer
	ringMargin    notation.Integer
}

// NewDonut returns a new Donut with all options unset.
func NewDonut() *Donut {
	return &Donut{}
}

// Pie returns the receiver's pie options for configuration.
func (d *Donut) Pie() *Pie {
	return &d.pie
}

// WithInnerDiameter specifies the diameter of the innermost hole in pixels.
func (d *Donut) WithInnerDiameter(px int) *Donut {
	d.innerDiameter = notation.NewInteger(px)
	return d
}

// WithRingMargin specifies the pixels between adjacent rings.
func (d *Donut) WithRingMargin(px int) *Donut {
	d.ringMargin = notation.NewInteger(px)
	return d
}

// Renderer implements RendererOptions.
func (d *Donut) Renderer() notation.Expression {
	return notation.NewExpression("$.jqplot.DonutRenderer")
}

// UsedPlugins implements plugin.Consumer.
func (d *Donut) UsedPlugins() []string {
	if d == nil {
		return nil
	}
	return []string{plugin.DonutRenderer}
}

// Object implements RendererOptions.
func (d *Donut) Object() *notation.Object {
	if d == nil {
		return nil
	}
	return d.pie.Object().
		AddProperty(innerDiameterKey, d.innerDiameter).
		AddProperty(ringMarginKey, d.ringMargin)
}
