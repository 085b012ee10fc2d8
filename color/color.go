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

// Package color supports declaring the color palettes charts cycle through
// when coloring their series.
//
// A Palette is an ordered sequence of HTML color strings: a color name or an
// RGB, RGBA, HSL, HSLA, or hex color specifier.  Series are colored from the
// palette in order, wrapping around when there are more series than colors.
// A palette is attached to a chart's options as its series colors:
//
//	blues := color.NewPalette("blues", "#08306b", "#2171b5", "#6baed6")
//	opts.WithSeriesColors(blues)
//
// or, for the colors of negative values in e.g. bar charts, as its negative
// series colors:
//
//	opts.WithNegativeSeriesColors(color.NewPalette("reds", "#67000d"))
//
// A single series may instead be given a fixed color with its own WithColor.
package color

import "github.com/cuioss/cui-jsf-components-sub005/notation"

const (
	seriesColorsKey         = "seriesColors"
	negativeSeriesColorsKey = "negativeSeriesColors"
)

// Default is jqPlot's own default series palette.
var Default = NewPalette("default",
	"#4bb2c5", "#EAA228", "#c5b47f", "#579575", "#839557", "#958c12",
	"#953579", "#4b5de4", "#d8b83f", "#ff5800", "#0085cc",
)

// Palette is a named, ordered sequence of colors.
type Palette struct {
	name   string
	colors []string
}

// NewPalette defines a new palette of the provided colors.
func NewPalette(name string, colors ...string) *Palette {
	return &Palette{
		name:   name,
		colors: colors,
	}
}

// Name returns the Palette's name.
func (p *Palette) Name() string {
	return p.name
}

// Colors returns the Palette's colors.
func (p *Palette) Colors() []string {
	ret := make([]string, len(p.colors))
	copy(ret, p.colors)
	return ret
}

// At returns the color used for the idx'th series.
func (p *Palette) At(idx int) string {
	if len(p.colors) == 0 || idx < 0 {
		return ""
	}
	return p.colors[idx%len(p.colors)]
}

// Array returns the receiver's colors as a JavaScript array.  A nil Palette
// yields a nil, and therefore absent, Array.
func (p *Palette) Array() *notation.Array[notation.String] {
	if p == nil {
		return nil
	}
	return notation.Strings(p.colors...)
}

// Define returns the receiver as the `seriesColors` option.
func (p *Palette) Define() notation.Property {
	return notation.NewProperty(seriesColorsKey, p.Array())
}

// DefineNegative returns the receiver as the `negativeSeriesColors` option.
func (p *Palette) DefineNegative() notation.Property {
	return notation.NewProperty(negativeSeriesColorsKey, p.Array())
}
