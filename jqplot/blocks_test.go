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
	"testing"

	"github.com/cuioss/cui-jsf-components-sub005/notation"
	"github.com/cuioss/cui-jsf-components-sub005/plugin"
	rendereroptions "github.com/cuioss/cui-jsf-components-sub005/renderer_options"
	testutil "github.com/cuioss/cui-jsf-components-sub005/test_util"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type block interface {
	Object() *notation.Object
}

func TestBlocks(t *testing.T) {
	for _, test := range []struct {
		description string
		block       func() block
		want        string
		wantPlugins []string
	}{{
		description: "unconfigured cursor is absent and needs no plugin",
		block:       func() block { return &Cursor{} },
		wantPlugins: nil,
	}, {
		description: "cursor",
		block: func() block {
			return (&Cursor{}).
				WithShow(true).
				WithZoom(true).
				WithConstrainZoomTo(ZoomX).
				WithTooltip(true, false).
				WithLines(true, false)
		},
		want:        `cursor:{show:true,zoom:true,constrainZoomTo:"x",showTooltip:true,followMouse:false,showVerticalLine:true,showHorizontalLine:false}`,
		wantPlugins: []string{plugin.Cursor},
	}, {
		description: "highlighter",
		block: func() block {
			return (&Highlighter{}).
				WithShow(true).
				WithSizeAdjust(7.5).
				WithTooltipAxes("y").
				WithFormatString("%d").
				WithTooltipOffset(4)
		},
		want:        `highlighter:{show:true,sizeAdjust:7.500,tooltipAxes:"y",tooltipOffset:4,formatString:"%d"}`,
		wantPlugins: []string{plugin.Highlighter},
	}, {
		description: "title",
		block: func() block {
			return NewTitle("Sales").WithFont("Arial", "12pt").WithEscapeHTML(false)
		},
		want: `title:{text:"Sales",fontFamily:"Arial",fontSize:"12pt",escapeHtml:false}`,
	}, {
		description: "plain legend",
		block: func() block {
			return (&Legend{}).
				WithShow(true).
				WithPlacement(OutsideGrid).
				WithLocation("ne").
				WithOffsets(12, 0).
				WithLabels("a", "b")
		},
		want: `legend:{show:true,location:"ne",placement:"outsideGrid",xoffset:12,yoffset:0,labels:["a","b"]}`,
	}, {
		description: "grid with shadow",
		block: func() block {
			g := (&Grid{}).WithDrawGridLines(false).WithBorder(true, "#999", 1)
			g.Shadow().WithShadow(false)
			return g
		},
		want: `grid:{drawGridLines:false,borderColor:"#999",borderWidth:1.000,drawBorder:true,shadow:false}`,
	}, {
		description: "marker options",
		block: func() block {
			m := (&MarkerOptions{}).WithStyle(FilledDiamond).WithSize(9)
			m.Shadow().WithDepth(2)
			return m
		},
		want: `markerOptions:{style:"filledDiamond",size:9.000,shadowDepth:2}`,
	}, {
		description: "point labels",
		block: func() block {
			return (&PointLabels{}).WithShow(true).WithLocation("n").WithYPadding(3).WithStackedValue(true)
		},
		want:        `pointLabels:{show:true,location:"n",ypadding:3,stackedValue:true}`,
		wantPlugins: []string{plugin.PointLabels},
	}, {
		description: "series defaults with nested blocks",
		block: func() block {
			s := newSeriesDefaults().
				WithLineWidth(2).
				WithShowMarker(true).
				WithAxes(XAxis, Y2Axis).
				WithRenderer(rendereroptions.NewPie().WithDiameter(100))
			s.MarkerOptions().WithStyle(Square)
			s.PointLabels().WithShow(true)
			s.Shadow().WithShadow(true)
			return s
		},
		want: `seriesDefaults:{lineWidth:2.000,showMarker:true,xaxis:"xaxis",yaxis:"y2axis",` +
			`renderer:$.jqplot.PieRenderer,rendererOptions:{diameter:100},` +
			`markerOptions:{style:"square"},pointLabels:{show:true},shadow:true}`,
		wantPlugins: []string{plugin.PieRenderer, plugin.PointLabels},
	}, {
		description: "unconfigured point labels need no plugin",
		block: func() block {
			s := NewSeries().WithLabel("a")
			s.PointLabels()
			return s
		},
		want: `{label:"a"}`,
	}} {
		t.Run(test.description, func(t *testing.T) {
			b := test.block()
			got, ok := b.Object().AsJavaScriptObjectNotation()
			testutil.CompareOptional(t, got, ok, test.want)
			var gotPlugins []string
			if c, ok := b.(plugin.Consumer); ok {
				gotPlugins = c.UsedPlugins()
			}
			if diff := cmp.Diff(test.wantPlugins, gotPlugins, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("UsedPlugins() diff (-want +got):\n%s", diff)
			}
		})
	}
}
