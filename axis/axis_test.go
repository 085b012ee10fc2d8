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

package axis

import (
	"errors"
	"testing"
	"time"

	"github.com/cuioss/cui-jsf-components-sub005/notation"
	"github.com/cuioss/cui-jsf-components-sub005/plugin"
	testutil "github.com/cuioss/cui-jsf-components-sub005/test_util"
	"github.com/google/go-cmp/cmp"
)

func TestAxes(t *testing.T) {
	jan1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, test := range []struct {
		description string
		build       func() *Axes
		want        string
		wantPlugins []string
	}{{
		description: "no axes",
		build:       NewAxes,
		wantPlugins: []string{},
	}, {
		description: "touched but unset axes are absent",
		build: func() *Axes {
			as := NewAxes()
			as.X()
			as.Y().TickOptions()
			return as
		},
		wantPlugins: []string{},
	}, {
		description: "numeric extents",
		build: func() *Axes {
			as := NewAxes()
			as.Y().WithExtents(3, -1.5, 2).WithLabel("Events").WithNumberTicks(5)
			return as
		},
		want:        `axes:{yaxis:{label:"Events",min:-1.500,max:3.000,numberTicks:5}}`,
		wantPlugins: []string{},
	}, {
		description: "axes are ordered regardless of creation order",
		build: func() *Axes {
			as := NewAxes()
			as.Y2().WithMin(notation.NewNumber(0))
			as.X().WithMax(notation.NewNumber(10))
			return as
		},
		want:        `axes:{xaxis:{max:10},y2axis:{min:0}}`,
		wantPlugins: []string{},
	}, {
		description: "date axis with canvas ticks",
		build: func() *Axes {
			as := NewAxes()
			as.X().
				WithRenderer(NewDateAxisRenderer()).
				WithDateExtents(notation.DateOnly, jan1.Add(48*time.Hour), jan1).
				WithTickInterval(notation.NewString("1 day")).
				WithCanvasTicks(true).
				TickOptions().WithFormatString("%b %#d").WithAngle(-30)
			return as
		},
		want: `axes:{xaxis:{min:"2025-01-01",max:"2025-01-03",tickInterval:"1 day",` +
			`renderer:$.jqplot.DateAxisRenderer,tickOptions:{formatString:"%b %#d",angle:-30},` +
			`tickRenderer:$.jqplot.CanvasAxisTickRenderer}}`,
		wantPlugins: []string{plugin.DateAxisRenderer, plugin.CanvasTextRenderer, plugin.CanvasAxisTickRenderer},
	}, {
		description: "category axes share plugins",
		build: func() *Axes {
			as := NewAxes()
			as.X().
				WithRenderer(NewCategoryAxisRenderer().WithSortMergedLabels(true)).
				WithTicks(notation.NewString("Q1"), notation.NewString("Q2")).
				WithCanvasLabel(true).
				WithLabel("Quarter")
			as.X2().WithRenderer(NewCategoryAxisRenderer()).WithCanvasTicks(true)
			return as
		},
		want: `axes:{xaxis:{label:"Quarter",ticks:["Q1","Q2"],renderer:$.jqplot.CategoryAxisRenderer,` +
			`rendererOptions:{sortMergedLabels:true},labelRenderer:$.jqplot.CanvasAxisLabelRenderer},` +
			`x2axis:{renderer:$.jqplot.CategoryAxisRenderer,tickRenderer:$.jqplot.CanvasAxisTickRenderer}}`,
		wantPlugins: []string{
			plugin.CategoryAxisRenderer, plugin.CanvasTextRenderer,
			plugin.CanvasAxisLabelRenderer, plugin.CanvasAxisTickRenderer,
		},
	}} {
		t.Run(test.description, func(t *testing.T) {
			as := test.build()
			got, ok := as.Object().AsJavaScriptObjectNotation()
			testutil.CompareOptional(t, got, ok, test.want)
			if diff := cmp.Diff(test.wantPlugins, as.UsedPlugins()); diff != "" {
				t.Errorf("UsedPlugins() diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAxesRejectsUnknownAxis(t *testing.T) {
	as := NewAxes()
	for _, name := range []Name{"y3axis", Defaults, ""} {
		a, err := as.Axis(name)
		if !errors.Is(err, ErrUnknownAxis) {
			t.Errorf("Axis(%q) yielded error %v, want %v", name, err, ErrUnknownAxis)
		}
		if a != nil {
			t.Errorf("Axis(%q) = %v, want nil", name, a)
		}
	}
	y2, err := as.Axis(Y2)
	if err != nil {
		t.Fatalf("Axis(%q) yielded unexpected error %v", Y2, err)
	}
	y2.WithLabel("secondary")
	if as.Y2() != y2 {
		t.Errorf("Axis(%q) and Y2() returned different axes", Y2)
	}
	got, ok := as.Object().AsJavaScriptObjectNotation()
	testutil.CompareOptional(t, got, ok, `axes:{y2axis:{label:"secondary"}}`)
}

func TestDefaultsAxis(t *testing.T) {
	defaults := New(Defaults).WithPad(1.2).WithShowTicks(false)
	defaults.TickOptions().WithFontSize("8pt")
	got, ok := defaults.Object().AsJavaScriptObjectNotation()
	testutil.CompareOptional(t, got, ok, `axesDefaults:{pad:1.200,showTicks:false,tickOptions:{fontSize:"8pt"}}`)
}
