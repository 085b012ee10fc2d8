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
)

// engaged reports whether the provided object renders anything.
func engaged(obj *notation.Object) bool {
	_, ok := obj.AsJavaScriptObjectNotation()
	return ok
}

// Title configures the chart title.
type Title struct {
	text       notation.String
	show       notation.Boolean
	fontFamily notation.String
	fontSize   notation.String
	textAlign  notation.String
	textColor  notation.String
	escapeHTML notation.Boolean
}

// NewTitle returns a new Title with the provided text.
func NewTitle(text string) *Title {
	return (&Title{}).WithText(text)
}

// WithText specifies the title text.
func (t *Title) WithText(text string) *Title {
	t.text = notation.NonEmptyString(text)
	return t
}

// WithShow specifies whether the title is shown.
func (t *Title) WithShow(show bool) *Title {
	t.show = notation.Bool(show)
	return t
}

// WithFont specifies the CSS font family and size of the title.
func (t *Title) WithFont(family, size string) *Title {
	t.fontFamily = notation.NonEmptyString(family)
	t.fontSize = notation.NonEmptyString(size)
	return t
}

// WithTextAlign specifies the CSS text alignment of the title.
func (t *Title) WithTextAlign(align string) *Title {
	t.textAlign = notation.NonEmptyString(align)
	return t
}

// WithTextColor specifies the CSS color of the title.
func (t *Title) WithTextColor(color string) *Title {
	t.textColor = notation.NonEmptyString(color)
	return t
}

// WithEscapeHTML specifies whether the title text is HTML-escaped on the
// client.
func (t *Title) WithEscapeHTML(escape bool) *Title {
	t.escapeHTML = notation.Bool(escape)
	return t
}

// Object returns the receiver as the `title` object.
func (t *Title) Object() *notation.Object {
	if t == nil {
		return nil
	}
	return notation.NewObject("title").
		AddProperty("text", t.text).
		AddProperty("show", t.show).
		AddProperty("fontFamily", t.fontFamily).
		AddProperty("fontSize", t.fontSize).
		AddProperty("textAlign", t.textAlign).
		AddProperty("textColor", t.textColor).
		AddProperty("escapeHtml", t.escapeHTML)
}

// ZoomConstraint restricts cursor zooming to one axis.
type ZoomConstraint string

// Zoom constraints.
const (
	ZoomX    ZoomConstraint = "x"
	ZoomY    ZoomConstraint = "y"
	ZoomNone ZoomConstraint = "none"
)

// Cursor configures the cursor plugin: zooming and cursor tooltips.
type Cursor struct {
	show               notation.Boolean
	zoom               notation.Boolean
	looseZoom          notation.Boolean
	constrainZoomTo    notation.String
	clickReset         notation.Boolean
	dblClickReset      notation.Boolean
	showTooltip        notation.Boolean
	followMouse        notation.Boolean
	tooltipLocation    notation.String
	showVerticalLine   notation.Boolean
	showHorizontalLine notation.Boolean
}

// WithShow specifies whether the cursor is shown.
func (c *Cursor) WithShow(show bool) *Cursor {
	c.show = notation.Bool(show)
	return c
}

// WithZoom specifies whether the chart can be zoomed by dragging.
func (c *Cursor) WithZoom(zoom bool) *Cursor {
	c.zoom = notation.Bool(zoom)
	return c
}

// WithLooseZoom specifies whether zooming may pick rounded axis extents.
func (c *Cursor) WithLooseZoom(loose bool) *Cursor {
	c.looseZoom = notation.Bool(loose)
	return c
}

// WithConstrainZoomTo restricts zooming to one axis.
func (c *Cursor) WithConstrainZoomTo(constraint ZoomConstraint) *Cursor {
	c.constrainZoomTo = notation.NonEmptyString(string(constraint))
	return c
}

// WithClickReset specifies whether a click resets the zoom.
func (c *Cursor) WithClickReset(reset bool) *Cursor {
	c.clickReset = notation.Bool(reset)
	return c
}

// WithDblClickReset specifies whether a double click resets the zoom.
func (c *Cursor) WithDblClickReset(reset bool) *Cursor {
	c.dblClickReset = notation.Bool(reset)
	return c
}

// WithTooltip specifies whether a cursor position tooltip is shown, and
// whether it follows the mouse.
func (c *Cursor) WithTooltip(show, followMouse bool) *Cursor {
	return c.WithShowTooltip(show).WithFollowMouse(followMouse)
}

// WithShowTooltip specifies whether the cursor tooltip is shown.
func (c *Cursor) WithShowTooltip(show bool) *Cursor {
	c.showTooltip = notation.Bool(show)
	return c
}

// WithFollowMouse specifies whether the cursor tooltip follows the mouse.
func (c *Cursor) WithFollowMouse(follow bool) *Cursor {
	c.followMouse = notation.Bool(follow)
	return c
}

// WithTooltipLocation specifies the compass location, e.g. "se", of the
// tooltip.
func (c *Cursor) WithTooltipLocation(location string) *Cursor {
	c.tooltipLocation = notation.NonEmptyString(location)
	return c
}

// WithLines specifies whether vertical and horizontal cursor lines are shown.
func (c *Cursor) WithLines(vertical, horizontal bool) *Cursor {
	return c.WithVerticalLine(vertical).WithHorizontalLine(horizontal)
}

// WithVerticalLine specifies whether a vertical cursor line is shown.
func (c *Cursor) WithVerticalLine(show bool) *Cursor {
	c.showVerticalLine = notation.Bool(show)
	return c
}

// WithHorizontalLine specifies whether a horizontal cursor line is shown.
func (c *Cursor) WithHorizontalLine(show bool) *Cursor {
	c.showHorizontalLine = notation.Bool(show)
	return c
}

// Object returns the receiver as the `cursor` object.
func (c *Cursor) Object() *notation.Object {
	if c == nil {
		return nil
	}
	return notation.NewObject("cursor").
		AddProperty("show", c.show).
		AddProperty("zoom", c.zoom).
		AddProperty("looseZoom", c.looseZoom).
		AddProperty("constrainZoomTo", c.constrainZoomTo).
		AddProperty("clickReset", c.clickReset).
		AddProperty("dblClickReset", c.dblClickReset).
		AddProperty("showTooltip", c.showTooltip).
		AddProperty("followMouse", c.followMouse).
		AddProperty("tooltipLocation", c.tooltipLocation).
		AddProperty("showVerticalLine", c.showVerticalLine).
		AddProperty("showHorizontalLine", c.showHorizontalLine)
}

// UsedPlugins implements plugin.Consumer.  The cursor plugin is only needed
// once a cursor option is set.
func (c *Cursor) UsedPlugins() []string {
	if c == nil || !engaged(c.Object()) {
		return nil
	}
	return []string{plugin.Cursor}
}

// Highlighter configures the highlighter plugin: data point tooltips.
type Highlighter struct {
	show               notation.Boolean
	showMarker         notation.Boolean
	showTooltip        notation.Boolean
	sizeAdjust         notation.Double
	lineWidthAdjust    notation.Double
	tooltipLocation    notation.String
	tooltipAxes        notation.String
	tooltipOffset      notation.Integer
	formatString       notation.String
	useAxesFormatters  notation.Boolean
	bringSeriesToFront notation.Boolean
}

// WithShow specifies whether data points are highlighted.
func (h *Highlighter) WithShow(show bool) *Highlighter {
	h.show = notation.Bool(show)
	return h
}

// WithShowMarker specifies whether a marker is drawn on the highlighted
// point.
func (h *Highlighter) WithShowMarker(show bool) *Highlighter {
	h.showMarker = notation.Bool(show)
	return h
}

// WithShowTooltip specifies whether a tooltip is shown on the highlighted
// point.
func (h *Highlighter) WithShowTooltip(show bool) *Highlighter {
	h.showTooltip = notation.Bool(show)
	return h
}

// WithSizeAdjust specifies how many pixels larger the highlight marker is.
func (h *Highlighter) WithSizeAdjust(px float64) *Highlighter {
	h.sizeAdjust = notation.NewDouble(px)
	return h
}

// WithLineWidthAdjust specifies how many pixels wider the highlight line is.
func (h *Highlighter) WithLineWidthAdjust(px float64) *Highlighter {
	h.lineWidthAdjust = notation.NewDouble(px)
	return h
}

// WithTooltipLocation specifies the compass location, e.g. "ne", of the
// tooltip.
func (h *Highlighter) WithTooltipLocation(location string) *Highlighter {
	h.tooltipLocation = notation.NonEmptyString(location)
	return h
}

// WithTooltipAxes specifies which values the tooltip shows: "x", "y", "xy",
// "yx" or "both".
func (h *Highlighter) WithTooltipAxes(axes string) *Highlighter {
	h.tooltipAxes = notation.NonEmptyString(axes)
	return h
}

// WithTooltipOffset specifies the tooltip distance from the point in pixels.
func (h *Highlighter) WithTooltipOffset(px int) *Highlighter {
	h.tooltipOffset = notation.NewInteger(px)
	return h
}

// WithFormatString specifies the sprintf-style tooltip format.
func (h *Highlighter) WithFormatString(format string) *Highlighter {
	h.formatString = notation.NonEmptyString(format)
	return h
}

// WithUseAxesFormatters specifies whether tooltip values are formatted like
// axis ticks.
func (h *Highlighter) WithUseAxesFormatters(use bool) *Highlighter {
	h.useAxesFormatters = notation.Bool(use)
	return h
}

// WithBringSeriesToFront specifies whether the highlighted series is drawn
// on top.
func (h *Highlighter) WithBringSeriesToFront(front bool) *Highlighter {
	h.bringSeriesToFront = notation.Bool(front)
	return h
}

// Object returns the receiver as the `highlighter` object.
func (h *Highlighter) Object() *notation.Object {
	if h == nil {
		return nil
	}
	return notation.NewObject("highlighter").
		AddProperty("show", h.show).
		AddProperty("showMarker", h.showMarker).
		AddProperty("showTooltip", h.showTooltip).
		AddProperty("sizeAdjust", h.sizeAdjust).
		AddProperty("lineWidthAdjust", h.lineWidthAdjust).
		AddProperty("tooltipLocation", h.tooltipLocation).
		AddProperty("tooltipAxes", h.tooltipAxes).
		AddProperty("tooltipOffset", h.tooltipOffset).
		AddProperty("formatString", h.formatString).
		AddProperty("useAxesFormatters", h.useAxesFormatters).
		AddProperty("bringSeriesToFront", h.bringSeriesToFront)
}

// UsedPlugins implements plugin.Consumer.
func (h *Highlighter) UsedPlugins() []string {
	if h == nil || !engaged(h.Object()) {
		return nil
	}
	return []string{plugin.Highlighter}
}

// Placement positions the legend relative to the grid.
type Placement string

// Legend placements.
const (
	Inside      Placement = "inside"
	Outside     Placement = "outside"
	OutsideGrid Placement = "outsideGrid"
)

// Legend configures the chart legend.
type Legend struct {
	show          notation.Boolean
	location      notation.String
	placement     notation.String
	xOffset       notation.Integer
	yOffset       notation.Integer
	labels        *notation.Array[notation.String]
	enhanced      bool
	seriesToggle  notation.Boolean
	numberRows    notation.Integer
	numberColumns notation.Integer
}

// WithShow specifies whether the legend is shown.
func (l *Legend) WithShow(show bool) *Legend {
	l.show = notation.Bool(show)
	return l
}

// WithLocation specifies the compass location, e.g. "ne", of the legend.
func (l *Legend) WithLocation(location string) *Legend {
	l.location = notation.NonEmptyString(location)
	return l
}

// WithPlacement specifies where the legend is placed relative to the grid.
func (l *Legend) WithPlacement(placement Placement) *Legend {
	l.placement = notation.NonEmptyString(string(placement))
	return l
}

// WithOffsets specifies the legend offsets from its location, in pixels.
func (l *Legend) WithOffsets(x, y int) *Legend {
	return l.WithXOffset(x).WithYOffset(y)
}

// WithXOffset specifies the horizontal legend offset, in pixels.
func (l *Legend) WithXOffset(x int) *Legend {
	l.xOffset = notation.NewInteger(x)
	return l
}

// WithYOffset specifies the vertical legend offset, in pixels.
func (l *Legend) WithYOffset(y int) *Legend {
	l.yOffset = notation.NewInteger(y)
	return l
}

// WithLabels specifies the legend labels, overriding the series labels.
func (l *Legend) WithLabels(labels ...string) *Legend {
	l.labels = notation.Strings(labels...)
	return l
}

// WithEnhancedRenderer switches the legend to the enhanced legend renderer,
// which can toggle series and lay labels out in a grid.  Zero rows or
// columns are left to the renderer.
func (l *Legend) WithEnhancedRenderer(seriesToggle bool, rows, columns int) *Legend {
	l.enhanced = true
	l.seriesToggle = notation.Bool(seriesToggle)
	if rows > 0 {
		l.numberRows = notation.NewInteger(rows)
	}
	if columns > 0 {
		l.numberColumns = notation.NewInteger(columns)
	}
	return l
}

// Object returns the receiver as the `legend` object.
func (l *Legend) Object() *notation.Object {
	if l == nil {
		return nil
	}
	obj := notation.NewObject("legend").
		AddProperty("show", l.show).
		AddProperty("location", l.location).
		AddProperty("placement", l.placement).
		AddProperty("xoffset", l.xOffset).
		AddProperty("yoffset", l.yOffset).
		AddProperty("labels", l.labels)
	if l.enhanced {
		obj.AddProperty("renderer", notation.NewExpression("$.jqplot.EnhancedLegendRenderer")).
			Add(notation.NewObject("rendererOptions").
				AddProperty("seriesToggle", l.seriesToggle).
				AddProperty("numberRows", l.numberRows).
				AddProperty("numberColumns", l.numberColumns))
	}
	return obj
}

// UsedPlugins implements plugin.Consumer.
func (l *Legend) UsedPlugins() []string {
	if l == nil || !l.enhanced {
		return nil
	}
	return []string{plugin.EnhancedLegendRenderer}
}

// Grid configures the plot area behind the series.
type Grid struct {
	drawGridLines notation.Boolean
	gridLineColor notation.String
	gridLineWidth notation.Double
	background    notation.String
	borderColor   notation.String
	borderWidth   notation.Double
	drawBorder    notation.Boolean
	shadow        decoration.Shadow
}

// WithDrawGridLines specifies whether grid lines are drawn.
func (g *Grid) WithDrawGridLines(draw bool) *Grid {
	g.drawGridLines = notation.Bool(draw)
	return g
}

// WithGridLines specifies the CSS color and the pixel width of grid lines.
func (g *Grid) WithGridLines(color string, width float64) *Grid {
	return g.WithGridLineColor(color).WithGridLineWidth(width)
}

// WithGridLineColor specifies the CSS color of the grid lines.
func (g *Grid) WithGridLineColor(color string) *Grid {
	g.gridLineColor = notation.NonEmptyString(color)
	return g
}

// WithGridLineWidth specifies the width of the grid lines, in pixels.
func (g *Grid) WithGridLineWidth(width float64) *Grid {
	g.gridLineWidth = notation.NewDouble(width)
	return g
}

// WithBackground specifies the CSS background color of the plot area.
func (g *Grid) WithBackground(color string) *Grid {
	g.background = notation.NonEmptyString(color)
	return g
}

// WithBorder specifies whether a border is drawn, and its CSS color and
// pixel width.
func (g *Grid) WithBorder(draw bool, color string, width float64) *Grid {
	return g.WithDrawBorder(draw).WithBorderColor(color).WithBorderWidth(width)
}

// WithDrawBorder specifies whether a border is drawn around the plot area.
func (g *Grid) WithDrawBorder(draw bool) *Grid {
	g.drawBorder = notation.Bool(draw)
	return g
}

// WithBorderColor specifies the CSS color of the border.
func (g *Grid) WithBorderColor(color string) *Grid {
	g.borderColor = notation.NonEmptyString(color)
	return g
}

// WithBorderWidth specifies the border width, in pixels.
func (g *Grid) WithBorderWidth(width float64) *Grid {
	g.borderWidth = notation.NewDouble(width)
	return g
}

// Shadow returns the grid's shadow decoration for configuration.
func (g *Grid) Shadow() *decoration.Shadow {
	return &g.shadow
}

// Object returns the receiver as the `grid` object.
func (g *Grid) Object() *notation.Object {
	if g == nil {
		return nil
	}
	return notation.NewObject("grid").
		AddProperty("drawGridLines", g.drawGridLines).
		AddProperty("gridLineColor", g.gridLineColor).
		AddProperty("gridLineWidth", g.gridLineWidth).
		AddProperty("background", g.background).
		AddProperty("borderColor", g.borderColor).
		AddProperty("borderWidth", g.borderWidth).
		AddProperty("drawBorder", g.drawBorder).
		AddProperties(&g.shadow)
}

// MarkerStyle is the shape of a data point marker.
type MarkerStyle string

// Marker styles.
const (
	Circle        MarkerStyle = "circle"
	FilledCircle  MarkerStyle = "filledCircle"
	Diamond       MarkerStyle = "diamond"
	FilledDiamond MarkerStyle = "filledDiamond"
	Square        MarkerStyle = "square"
	FilledSquare  MarkerStyle = "filledSquare"
	MarkerX       MarkerStyle = "x"
	MarkerPlus    MarkerStyle = "plus"
	MarkerDash    MarkerStyle = "dash"
)

// MarkerOptions configures the markers drawn at data points.
type MarkerOptions struct {
	show      notation.Boolean
	style     notation.String
	size      notation.Double
	color     notation.String
	lineWidth notation.Double
	shadow    decoration.Shadow
}

// WithShow specifies whether markers are drawn.
func (m *MarkerOptions) WithShow(show bool) *MarkerOptions {
	m.show = notation.Bool(show)
	return m
}

// WithStyle specifies the marker shape.
func (m *MarkerOptions) WithStyle(style MarkerStyle) *MarkerOptions {
	m.style = notation.NonEmptyString(string(style))
	return m
}

// WithSize specifies the marker size in pixels.
func (m *MarkerOptions) WithSize(px float64) *MarkerOptions {
	m.size = notation.NewDouble(px)
	return m
}

// WithColor specifies the CSS marker color.
func (m *MarkerOptions) WithColor(color string) *MarkerOptions {
	m.color = notation.NonEmptyString(color)
	return m
}

// WithLineWidth specifies the width of unfilled marker outlines.
func (m *MarkerOptions) WithLineWidth(px float64) *MarkerOptions {
	m.lineWidth = notation.NewDouble(px)
	return m
}

// Shadow returns the markers' shadow decoration for configuration.
func (m *MarkerOptions) Shadow() *decoration.Shadow {
	return &m.shadow
}

// Object returns the receiver as the `markerOptions` object.
func (m *MarkerOptions) Object() *notation.Object {
	if m == nil {
		return nil
	}
	return notation.NewObject("markerOptions").
		AddProperty("show", m.show).
		AddProperty("style", m.style).
		AddProperty("size", m.size).
		AddProperty("color", m.color).
		AddProperty("lineWidth", m.lineWidth).
		AddProperties(&m.shadow)
}

// PointLabels configures the pointLabels plugin: value labels drawn next to
// data points.
type PointLabels struct {
	show          notation.Boolean
	location      notation.String
	edgeTolerance notation.Integer
	yPadding      notation.Integer
	formatString  notation.String
	stackedValue  notation.Boolean
}

// WithShow specifies whether point labels are drawn.
func (p *PointLabels) WithShow(show bool) *PointLabels {
	p.show = notation.Bool(show)
	return p
}

// WithLocation specifies the compass location, e.g. "n", of labels relative
// to their points.
func (p *PointLabels) WithLocation(location string) *PointLabels {
	p.location = notation.NonEmptyString(location)
	return p
}

// WithEdgeTolerance specifies how many pixels a label may overflow the grid
// before it is hidden.
func (p *PointLabels) WithEdgeTolerance(px int) *PointLabels {
	p.edgeTolerance = notation.NewInteger(px)
	return p
}

// WithYPadding specifies the vertical distance between labels and points.
func (p *PointLabels) WithYPadding(px int) *PointLabels {
	p.yPadding = notation.NewInteger(px)
	return p
}

// WithFormatString specifies the sprintf-style label format.
func (p *PointLabels) WithFormatString(format string) *PointLabels {
	p.formatString = notation.NonEmptyString(format)
	return p
}

// WithStackedValue specifies whether stacked series are labeled with their
// cumulative value.
func (p *PointLabels) WithStackedValue(stacked bool) *PointLabels {
	p.stackedValue = notation.Bool(stacked)
	return p
}

// Object returns the receiver as the `pointLabels` object.
func (p *PointLabels) Object() *notation.Object {
	if p == nil {
		return nil
	}
	return notation.NewObject("pointLabels").
		AddProperty("show", p.show).
		AddProperty("location", p.location).
		AddProperty("edgeTolerance", p.edgeTolerance).
		AddProperty("ypadding", p.yPadding).
		AddProperty("formatString", p.formatString).
		AddProperty("stackedValue", p.stackedValue)
}

// UsedPlugins implements plugin.Consumer.
func (p *PointLabels) UsedPlugins() []string {
	if p == nil || !engaged(p.Object()) {
		return nil
	}
	return []string{plugin.PointLabels}
}
