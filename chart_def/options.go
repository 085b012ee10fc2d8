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

package chartdef

import (
	"fmt"

	"github.com/cuioss/cui-jsf-components-sub005/axis"
	"github.com/cuioss/cui-jsf-components-sub005/color"
	"github.com/cuioss/cui-jsf-components-sub005/decoration"
	"github.com/cuioss/cui-jsf-components-sub005/jqplot"
	"github.com/cuioss/cui-jsf-components-sub005/notation"
	rendereroptions "github.com/cuioss/cui-jsf-components-sub005/renderer_options"
)

// Options mirrors jqplot.Options.
type Options struct {
	Title                *Title           `yaml:"title"`
	StackSeries          *bool            `yaml:"stackSeries"`
	Animate              *bool            `yaml:"animate"`
	AnimateReplot        *bool            `yaml:"animateReplot"`
	CaptureRightClick    *bool            `yaml:"captureRightClick"`
	SeriesColors         []string         `yaml:"seriesColors"`
	NegativeSeriesColors []string         `yaml:"negativeSeriesColors"`
	AxesDefaults         *Axis            `yaml:"axesDefaults"`
	Axes                 map[string]*Axis `yaml:"axes"`
	SeriesDefaults       *Series          `yaml:"seriesDefaults"`
	Series               []*Series        `yaml:"series"`
	Legend               *Legend          `yaml:"legend"`
	Grid                 *Grid            `yaml:"grid"`
	Cursor               *Cursor          `yaml:"cursor"`
	Highlighter          *Highlighter     `yaml:"highlighter"`
	Hooks                []Hook           `yaml:"hooks"`
}

func (o *Options) apply(opts *jqplot.Options) error {
	if o.Title != nil {
		o.Title.apply(opts.Title())
	}
	apply(o.StackSeries, opts.WithStackSeries)
	apply(o.Animate, opts.WithAnimate)
	apply(o.AnimateReplot, opts.WithAnimateReplot)
	apply(o.CaptureRightClick, opts.WithCaptureRightClick)
	if len(o.SeriesColors) > 0 {
		opts.WithSeriesColors(color.NewPalette("seriesColors", o.SeriesColors...))
	}
	if len(o.NegativeSeriesColors) > 0 {
		opts.WithNegativeSeriesColors(color.NewPalette("negativeSeriesColors", o.NegativeSeriesColors...))
	}
	if o.AxesDefaults != nil {
		if err := o.AxesDefaults.apply(opts.AxesDefaults()); err != nil {
			return fmt.Errorf("axesDefaults: %w", err)
		}
	}
	if len(o.Axes) > 0 {
		axes := map[axis.Name]*axis.Axis{}
		for name := range o.Axes {
			a, err := opts.Axes().Axis(axis.Name(name))
			if err != nil {
				return err
			}
			axes[axis.Name(name)] = a
		}
		for _, name := range []axis.Name{axis.X, axis.Y, axis.X2, axis.Y2} {
			a, ok := o.Axes[string(name)]
			if !ok || a == nil {
				continue
			}
			if err := a.apply(axes[name]); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	if o.SeriesDefaults != nil {
		if err := o.SeriesDefaults.apply(opts.SeriesDefaults()); err != nil {
			return fmt.Errorf("seriesDefaults: %w", err)
		}
	}
	for idx, s := range o.Series {
		series := jqplot.NewSeries()
		if s != nil {
			if err := s.apply(series); err != nil {
				return fmt.Errorf("series %d: %w", idx, err)
			}
		}
		opts.AddSeries(series)
	}
	if o.Legend != nil {
		o.Legend.apply(opts.Legend())
	}
	if o.Grid != nil {
		o.Grid.apply(opts.Grid())
	}
	if o.Cursor != nil {
		o.Cursor.apply(opts.Cursor())
	}
	if o.Highlighter != nil {
		o.Highlighter.apply(opts.Highlighter())
	}
	for _, h := range o.Hooks {
		if err := opts.AddHookFunction(hookFunction(h)); err != nil {
			return err
		}
	}
	return nil
}

// Title mirrors jqplot.Title.
type Title struct {
	Text       string `yaml:"text"`
	Show       *bool  `yaml:"show"`
	FontFamily string `yaml:"fontFamily"`
	FontSize   string `yaml:"fontSize"`
	TextAlign  string `yaml:"textAlign"`
	TextColor  string `yaml:"textColor"`
	EscapeHTML *bool  `yaml:"escapeHtml"`
}

func (t *Title) apply(title *jqplot.Title) {
	title.WithText(t.Text).
		WithFont(t.FontFamily, t.FontSize).
		WithTextAlign(t.TextAlign).
		WithTextColor(t.TextColor)
	apply(t.Show, title.WithShow)
	apply(t.EscapeHTML, title.WithEscapeHTML)
}

// TickOptions mirrors axis.TickOptions.
type TickOptions struct {
	FormatString string `yaml:"formatString"`
	Angle        *int   `yaml:"angle"`
	FontSize     string `yaml:"fontSize"`
	Prefix       string `yaml:"prefix"`
	Show         *bool  `yaml:"show"`
	ShowGridline *bool  `yaml:"showGridline"`
	ShowMark     *bool  `yaml:"showMark"`
}

func (t *TickOptions) apply(to *axis.TickOptions) {
	to.WithFormatString(t.FormatString).
		WithFontSize(t.FontSize).
		WithPrefix(t.Prefix)
	apply(t.Angle, to.WithAngle)
	apply(t.Show, to.WithShow)
	apply(t.ShowGridline, to.WithShowGridline)
	apply(t.ShowMark, to.WithShowMark)
}

// Axis mirrors axis.Axis.  Renderer is `date` or `category`.
type Axis struct {
	Label            string       `yaml:"label"`
	Min              any          `yaml:"min"`
	Max              any          `yaml:"max"`
	Pad              *float64     `yaml:"pad"`
	NumberTicks      *int         `yaml:"numberTicks"`
	TickInterval     any          `yaml:"tickInterval"`
	Ticks            []any        `yaml:"ticks"`
	ShowTicks        *bool        `yaml:"showTicks"`
	Autoscale        *bool        `yaml:"autoscale"`
	Renderer         string       `yaml:"renderer"`
	TickInset        *float64     `yaml:"tickInset"`
	SortMergedLabels *bool        `yaml:"sortMergedLabels"`
	CanvasTicks      bool         `yaml:"canvasTicks"`
	CanvasLabel      bool         `yaml:"canvasLabel"`
	TickOptions      *TickOptions `yaml:"tickOptions"`
}

func (a *Axis) apply(ax *axis.Axis) error {
	ax.WithLabel(a.Label).
		WithCanvasTicks(a.CanvasTicks).
		WithCanvasLabel(a.CanvasLabel)
	for _, bound := range []struct {
		raw any
		set func(notation.Value) *axis.Axis
	}{
		{a.Min, ax.WithMin},
		{a.Max, ax.WithMax},
		{a.TickInterval, ax.WithTickInterval},
	} {
		v, err := value(bound.raw)
		if err != nil {
			return err
		}
		if v != nil {
			bound.set(v)
		}
	}
	if len(a.Ticks) > 0 {
		ticks := make([]notation.Value, 0, len(a.Ticks))
		for _, raw := range a.Ticks {
			tick, err := scalarValue(raw)
			if err != nil {
				return err
			}
			ticks = append(ticks, tick)
		}
		ax.WithTicks(ticks...)
	}
	apply(a.Pad, ax.WithPad)
	apply(a.NumberTicks, ax.WithNumberTicks)
	apply(a.ShowTicks, ax.WithShowTicks)
	apply(a.Autoscale, ax.WithAutoscale)
	switch a.Renderer {
	case "":
	case "date":
		r := axis.NewDateAxisRenderer()
		apply(a.TickInset, r.WithTickInset)
		ax.WithRenderer(r)
	case "category":
		r := axis.NewCategoryAxisRenderer()
		apply(a.SortMergedLabels, r.WithSortMergedLabels)
		ax.WithRenderer(r)
	default:
		return fmt.Errorf("%w `%s`", ErrUnknownRenderer, a.Renderer)
	}
	if a.TickOptions != nil {
		a.TickOptions.apply(ax.TickOptions())
	}
	return nil
}

// Shadow mirrors decoration.Shadow.
type Shadow struct {
	Show   *bool    `yaml:"show"`
	Angle  *float64 `yaml:"angle"`
	Offset *float64 `yaml:"offset"`
	Depth  *int     `yaml:"depth"`
	Alpha  *float64 `yaml:"alpha"`
}

func (s *Shadow) apply(shadow *decoration.Shadow) {
	if s == nil {
		return
	}
	apply(s.Show, shadow.WithShadow)
	apply(s.Angle, shadow.WithAngle)
	apply(s.Offset, shadow.WithOffset)
	apply(s.Depth, shadow.WithDepth)
	apply(s.Alpha, shadow.WithAlpha)
}

// Highlight mirrors decoration.Highlight.
type Highlight struct {
	MouseOver *bool    `yaml:"mouseOver"`
	MouseDown *bool    `yaml:"mouseDown"`
	Color     string   `yaml:"color"`
	Colors    []string `yaml:"colors"`
}

func (h *Highlight) apply(highlight *decoration.Highlight) {
	if h == nil {
		return
	}
	apply(h.MouseOver, highlight.WithMouseOver)
	apply(h.MouseDown, highlight.WithMouseDown)
	highlight.WithColor(h.Color)
	if len(h.Colors) > 0 {
		highlight.WithColors(h.Colors...)
	}
}

// Renderer mirrors the series renderer options.  Type is `bar`, `pie` or
// `donut`; pie fields also apply to donuts.
type Renderer struct {
	Type string `yaml:"type"`

	BarPadding   *int   `yaml:"barPadding"`
	BarMargin    *int   `yaml:"barMargin"`
	BarWidth     *int   `yaml:"barWidth"`
	BarDirection string `yaml:"barDirection"`
	VaryBarColor *bool  `yaml:"varyBarColor"`
	FillToZero   *bool  `yaml:"fillToZero"`

	Diameter           *int     `yaml:"diameter"`
	Padding            *int     `yaml:"padding"`
	SliceMargin        *int     `yaml:"sliceMargin"`
	StartAngle         *int     `yaml:"startAngle"`
	Fill               *bool    `yaml:"fill"`
	DataLabels         string   `yaml:"dataLabels"`
	DataLabelThreshold *float64 `yaml:"dataLabelThreshold"`
	InnerDiameter      *int     `yaml:"innerDiameter"`
	RingMargin         *int     `yaml:"ringMargin"`

	Shadow    *Shadow    `yaml:"shadow"`
	Highlight *Highlight `yaml:"highlight"`
}

func (r *Renderer) build() (rendereroptions.RendererOptions, error) {
	switch r.Type {
	case "bar":
		bar := rendereroptions.NewBar()
		apply(r.BarPadding, bar.WithBarPadding)
		apply(r.BarMargin, bar.WithBarMargin)
		apply(r.BarWidth, bar.WithBarWidth)
		if r.BarDirection != "" {
			bar.WithBarDirection(rendereroptions.BarDirection(r.BarDirection))
		}
		apply(r.VaryBarColor, bar.WithVaryBarColor)
		apply(r.FillToZero, bar.WithFillToZero)
		r.Shadow.apply(bar.Shadow())
		r.Highlight.apply(bar.Highlight())
		return bar, nil
	case "pie":
		pie := rendereroptions.NewPie()
		r.applyPie(pie)
		return pie, nil
	case "donut":
		donut := rendereroptions.NewDonut()
		r.applyPie(donut.Pie())
		apply(r.InnerDiameter, donut.WithInnerDiameter)
		apply(r.RingMargin, donut.WithRingMargin)
		return donut, nil
	}
	return nil, fmt.Errorf("%w `%s`", ErrUnknownRenderer, r.Type)
}

func (r *Renderer) applyPie(pie *rendereroptions.Pie) {
	apply(r.Diameter, pie.WithDiameter)
	apply(r.Padding, pie.WithPadding)
	apply(r.SliceMargin, pie.WithSliceMargin)
	apply(r.StartAngle, pie.WithStartAngle)
	apply(r.Fill, pie.WithFill)
	if r.DataLabels != "" {
		pie.WithDataLabels(rendereroptions.DataLabels(r.DataLabels))
	}
	apply(r.DataLabelThreshold, pie.WithDataLabelThreshold)
	r.Shadow.apply(pie.Shadow())
	r.Highlight.apply(pie.Highlight())
}

// MarkerOptions mirrors jqplot.MarkerOptions.
type MarkerOptions struct {
	Show      *bool    `yaml:"show"`
	Style     string   `yaml:"style"`
	Size      *float64 `yaml:"size"`
	Color     string   `yaml:"color"`
	LineWidth *float64 `yaml:"lineWidth"`
	Shadow    *Shadow  `yaml:"shadow"`
}

// PointLabels mirrors jqplot.PointLabels.
type PointLabels struct {
	Show          *bool  `yaml:"show"`
	Location      string `yaml:"location"`
	EdgeTolerance *int   `yaml:"edgeTolerance"`
	YPadding      *int   `yaml:"ypadding"`
	FormatString  string `yaml:"formatString"`
	StackedValue  *bool  `yaml:"stackedValue"`
}

// Series mirrors jqplot.Series.  Its axes are named like `xaxis` or
// `y2axis`.
type Series struct {
	Label         string         `yaml:"label"`
	Color         string         `yaml:"color"`
	LineWidth     *float64       `yaml:"lineWidth"`
	ShowLine      *bool          `yaml:"showLine"`
	ShowMarker    *bool          `yaml:"showMarker"`
	Fill          *bool          `yaml:"fill"`
	XAxis         string         `yaml:"xaxis"`
	YAxis         string         `yaml:"yaxis"`
	DisableStack  *bool          `yaml:"disableStack"`
	Renderer      *Renderer      `yaml:"renderer"`
	MarkerOptions *MarkerOptions `yaml:"markerOptions"`
	PointLabels   *PointLabels   `yaml:"pointLabels"`
	Shadow        *Shadow        `yaml:"shadow"`
}

func (s *Series) apply(series *jqplot.Series) error {
	series.WithLabel(s.Label).WithColor(s.Color)
	apply(s.LineWidth, series.WithLineWidth)
	apply(s.ShowLine, series.WithShowLine)
	apply(s.ShowMarker, series.WithShowMarker)
	apply(s.Fill, series.WithFill)
	if s.XAxis != "" || s.YAxis != "" {
		series.WithAxes(jqplot.AxisRef(s.XAxis), jqplot.AxisRef(s.YAxis))
	}
	apply(s.DisableStack, series.WithDisableStack)
	if s.Renderer != nil {
		r, err := s.Renderer.build()
		if err != nil {
			return err
		}
		series.WithRenderer(r)
	}
	if m := s.MarkerOptions; m != nil {
		mo := series.MarkerOptions().
			WithStyle(jqplot.MarkerStyle(m.Style)).
			WithColor(m.Color)
		apply(m.Show, mo.WithShow)
		apply(m.Size, mo.WithSize)
		apply(m.LineWidth, mo.WithLineWidth)
		m.Shadow.apply(mo.Shadow())
	}
	if p := s.PointLabels; p != nil {
		pl := series.PointLabels().
			WithLocation(p.Location).
			WithFormatString(p.FormatString)
		apply(p.Show, pl.WithShow)
		apply(p.EdgeTolerance, pl.WithEdgeTolerance)
		apply(p.YPadding, pl.WithYPadding)
		apply(p.StackedValue, pl.WithStackedValue)
	}
	s.Shadow.apply(series.Shadow())
	return nil
}

// EnhancedLegend selects the enhanced legend renderer.
type EnhancedLegend struct {
	SeriesToggle  bool `yaml:"seriesToggle"`
	NumberRows    int  `yaml:"numberRows"`
	NumberColumns int  `yaml:"numberColumns"`
}

// Legend mirrors jqplot.Legend.
type Legend struct {
	Show      *bool           `yaml:"show"`
	Location  string          `yaml:"location"`
	Placement string          `yaml:"placement"`
	XOffset   *int            `yaml:"xoffset"`
	YOffset   *int            `yaml:"yoffset"`
	Labels    []string        `yaml:"labels"`
	Enhanced  *EnhancedLegend `yaml:"enhanced"`
}

func (l *Legend) apply(legend *jqplot.Legend) {
	apply(l.Show, legend.WithShow)
	legend.WithLocation(l.Location).WithPlacement(jqplot.Placement(l.Placement))
	apply(l.XOffset, legend.WithXOffset)
	apply(l.YOffset, legend.WithYOffset)
	if len(l.Labels) > 0 {
		legend.WithLabels(l.Labels...)
	}
	if e := l.Enhanced; e != nil {
		legend.WithEnhancedRenderer(e.SeriesToggle, e.NumberRows, e.NumberColumns)
	}
}

// Grid mirrors jqplot.Grid.
type Grid struct {
	DrawGridLines *bool    `yaml:"drawGridLines"`
	GridLineColor string   `yaml:"gridLineColor"`
	GridLineWidth *float64 `yaml:"gridLineWidth"`
	Background    string   `yaml:"background"`
	DrawBorder    *bool    `yaml:"drawBorder"`
	BorderColor   string   `yaml:"borderColor"`
	BorderWidth   *float64 `yaml:"borderWidth"`
	Shadow        *Shadow  `yaml:"shadow"`
}

func (g *Grid) apply(grid *jqplot.Grid) {
	apply(g.DrawGridLines, grid.WithDrawGridLines)
	grid.WithGridLineColor(g.GridLineColor)
	apply(g.GridLineWidth, grid.WithGridLineWidth)
	grid.WithBackground(g.Background)
	apply(g.DrawBorder, grid.WithDrawBorder)
	grid.WithBorderColor(g.BorderColor)
	apply(g.BorderWidth, grid.WithBorderWidth)
	g.Shadow.apply(grid.Shadow())
}

// Cursor mirrors jqplot.Cursor.
type Cursor struct {
	Show               *bool  `yaml:"show"`
	Zoom               *bool  `yaml:"zoom"`
	LooseZoom          *bool  `yaml:"looseZoom"`
	ConstrainZoomTo    string `yaml:"constrainZoomTo"`
	ClickReset         *bool  `yaml:"clickReset"`
	DblClickReset      *bool  `yaml:"dblClickReset"`
	ShowTooltip        *bool  `yaml:"showTooltip"`
	FollowMouse        *bool  `yaml:"followMouse"`
	TooltipLocation    string `yaml:"tooltipLocation"`
	ShowVerticalLine   *bool  `yaml:"showVerticalLine"`
	ShowHorizontalLine *bool  `yaml:"showHorizontalLine"`
}

func (c *Cursor) apply(cursor *jqplot.Cursor) {
	apply(c.Show, cursor.WithShow)
	apply(c.Zoom, cursor.WithZoom)
	apply(c.LooseZoom, cursor.WithLooseZoom)
	cursor.WithConstrainZoomTo(jqplot.ZoomConstraint(c.ConstrainZoomTo))
	apply(c.ClickReset, cursor.WithClickReset)
	apply(c.DblClickReset, cursor.WithDblClickReset)
	apply(c.ShowTooltip, cursor.WithShowTooltip)
	apply(c.FollowMouse, cursor.WithFollowMouse)
	cursor.WithTooltipLocation(c.TooltipLocation)
	apply(c.ShowVerticalLine, cursor.WithVerticalLine)
	apply(c.ShowHorizontalLine, cursor.WithHorizontalLine)
}

// Highlighter mirrors jqplot.Highlighter.
type Highlighter struct {
	Show               *bool    `yaml:"show"`
	ShowMarker         *bool    `yaml:"showMarker"`
	ShowTooltip        *bool    `yaml:"showTooltip"`
	SizeAdjust         *float64 `yaml:"sizeAdjust"`
	LineWidthAdjust    *float64 `yaml:"lineWidthAdjust"`
	TooltipLocation    string   `yaml:"tooltipLocation"`
	TooltipAxes        string   `yaml:"tooltipAxes"`
	TooltipOffset      *int     `yaml:"tooltipOffset"`
	FormatString       string   `yaml:"formatString"`
	UseAxesFormatters  *bool    `yaml:"useAxesFormatters"`
	BringSeriesToFront *bool    `yaml:"bringSeriesToFront"`
}

func (h *Highlighter) apply(hl *jqplot.Highlighter) {
	apply(h.Show, hl.WithShow)
	apply(h.ShowMarker, hl.WithShowMarker)
	apply(h.ShowTooltip, hl.WithShowTooltip)
	apply(h.SizeAdjust, hl.WithSizeAdjust)
	apply(h.LineWidthAdjust, hl.WithLineWidthAdjust)
	hl.WithTooltipLocation(h.TooltipLocation).
		WithTooltipAxes(h.TooltipAxes).
		WithFormatString(h.FormatString)
	apply(h.TooltipOffset, hl.WithTooltipOffset)
	apply(h.UseAxesFormatters, hl.WithUseAxesFormatters)
	apply(h.BringSeriesToFront, hl.WithBringSeriesToFront)
}
