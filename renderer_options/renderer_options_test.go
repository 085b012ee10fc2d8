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

package rendereroptions

import (
	"testing"

	"github.com/cuioss/cui-jsf-components-sub005/plugin"
	testutil "github.com/cuioss/cui-jsf-components-sub005/test_util"
	"github.com/google/go-cmp/cmp"
)

func TestRendererOptions(t *testing.T) {
	for _, test := range []struct {
		description  string
		build        func() RendererOptions
		wantObject   string
		wantRenderer string
		wantPlugins  []string
	}{{
		description:  "unset bar options are absent",
		build:        func() RendererOptions { return NewBar() },
		wantRenderer: "$.jqplot.BarRenderer",
		wantPlugins:  []string{plugin.BarRenderer},
	}, {
		description: "bar options with decorations",
		build: func() RendererOptions {
			bar := NewBar().
				WithBarDirection(Horizontal).
				WithBarMargin(4).
				WithBarPadding(2).
				WithFillToZero(true)
			bar.Shadow().WithShadow(false)
			bar.Highlight().WithMouseOver(true)
			return bar
		},
		wantObject:   `rendererOptions:{barPadding:2,barMargin:4,barDirection:"horizontal",fillToZero:true,shadow:false,highlightMouseOver:true}`,
		wantRenderer: "$.jqplot.BarRenderer",
		wantPlugins:  []string{plugin.BarRenderer},
	}, {
		description: "pie options",
		build: func() RendererOptions {
			return NewPie().
				WithDiameter(200).
				WithStartAngle(-90).
				WithDataLabels(PercentLabels).
				WithDataLabelThreshold(2.5)
		},
		wantObject:   `rendererOptions:{diameter:200,startAngle:-90,showDataLabels:true,dataLabels:"percent",dataLabelThreshold:2.500}`,
		wantRenderer: "$.jqplot.PieRenderer",
		wantPlugins:  []string{plugin.PieRenderer},
	}, {
		description: "donut options include pie options",
		build: func() RendererOptions {
			donut := NewDonut().WithInnerDiameter(40).WithRingMargin(3)
			donut.Pie().WithSliceMargin(2).Shadow().WithDepth(2)
			return donut
		},
		wantObject:   `rendererOptions:{sliceMargin:2,shadowDepth:2,innerDiameter:40,ringMargin:3}`,
		wantRenderer: "$.jqplot.DonutRenderer",
		wantPlugins:  []string{plugin.DonutRenderer},
	}} {
		t.Run(test.description, func(t *testing.T) {
			ro := test.build()
			got, ok := ro.Object().AsJavaScriptObjectNotation()
			testutil.CompareOptional(t, got, ok, test.wantObject)
			renderer, _ := ro.Renderer().ValueAsString()
			testutil.CompareNotation(t, renderer, test.wantRenderer)
			if diff := cmp.Diff(test.wantPlugins, ro.UsedPlugins()); diff != "" {
				t.Errorf("UsedPlugins() diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNilRendererOptions(t *testing.T) {
	for _, ro := range []RendererOptions{(*Bar)(nil), (*Pie)(nil), (*Donut)(nil)} {
		if ro.UsedPlugins() != nil {
			t.Errorf("nil %T uses plugins %v", ro, ro.UsedPlugins())
		}
		if ro.Object() != nil {
			t.Errorf("nil %T has an object", ro)
		}
	}
}
