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

package color

import (
	"testing"

	"github.com/cuioss/cui-jsf-components-sub005/notation"
	testutil "github.com/cuioss/cui-jsf-components-sub005/test_util"
)

func TestPaletteDefinition(t *testing.T) {
	for _, test := range []struct {
		description string
		palettes    func() []notation.Support
		want        []notation.Support
	}{{
		description: "single palette",
		palettes: func() []notation.Support {
			return []notation.Support{NewPalette("grey", "grey").Define()}
		},
		want: []notation.Support{
			notation.NewProperty(seriesColorsKey, notation.Strings("grey")),
		},
	}, {
		description: "series and negative palettes",
		palettes: func() []notation.Support {
			return []notation.Support{
				NewPalette("fire", "yellow", "red").Define(),
				NewPalette("ice", "blue").DefineNegative(),
			}
		},
		want: []notation.Support{
			notation.NewProperty(seriesColorsKey, notation.Strings("yellow", "red")),
			notation.NewProperty(negativeSeriesColorsKey, notation.Strings("blue")),
		},
	}, {
		description: "palette redefinition overwrites previous",
		palettes: func() []notation.Support {
			return []notation.Support{
				NewPalette("royal", "blue", "purple").Define(),
				NewPalette("royal", "purple", "blue").Define(),
			}
		},
		want: []notation.Support{
			notation.NewProperty(seriesColorsKey, notation.Strings("purple", "blue")),
		},
	}, {
		description: "default palette is jqPlot's own",
		palettes: func() []notation.Support {
			return []notation.Support{Default.Define()}
		},
		want: []notation.Support{
			notation.NewProperty(seriesColorsKey, notation.Strings(
				"#4bb2c5", "#EAA228", "#c5b47f", "#579575", "#839557", "#958c12",
				"#953579", "#4b5de4", "#d8b83f", "#ff5800", "#0085cc",
			)),
		},
	}, {
		description: "nil palette is absent",
		palettes: func() []notation.Support {
			var p *Palette
			return []notation.Support{p.Define()}
		},
	}} {
		t.Run(test.description, func(t *testing.T) {
			obj := notation.NewObject("")
			for _, s := range test.palettes() {
				obj.Add(s)
			}
			if msg, failed := testutil.NewPropertyComparator().
				WithTestProperties(obj).
				WithWantProperties(test.want...).
				Compare(t); failed {
				t.Fatal(msg)
			}
		})
	}
}

func TestPaletteAt(t *testing.T) {
	p := NewPalette("traffic", "red", "amber", "green")
	for idx, want := range []string{"red", "amber", "green", "red", "amber"} {
		if got := p.At(idx); got != want {
			t.Errorf("At(%d) = %s, want %s", idx, got, want)
		}
	}
	if got := NewPalette("empty").At(3); got != "" {
		t.Errorf("At() on an empty palette = %s, want empty", got)
	}
	if got := Default.At(0); got != "#4bb2c5" {
		t.Errorf("Default.At(0) = %s, want #4bb2c5", got)
	}
}
