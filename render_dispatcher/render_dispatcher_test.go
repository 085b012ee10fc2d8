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

package renderdispatcher

import (
	"context"
	"errors"
	"fmt"
	"testing"

	chartdef "github.com/cuioss/cui-jsf-components-sub005/chart_def"
	"github.com/cuioss/cui-jsf-components-sub005/jqplot"
	"github.com/cuioss/cui-jsf-components-sub005/plugin"
	"github.com/google/go-cmp/cmp"
)

var errBroken = errors.New("broken chart")

type brokenSource struct{}

func (brokenSource) Build() (*jqplot.JqPlot, error) {
	return nil, errBroken
}

func def(t *testing.T, yaml string) *chartdef.Definition {
	t.Helper()
	d, err := chartdef.Parse(t.Name(), []byte(yaml))
	if err != nil {
		t.Fatalf("failed to parse definition: %s", err)
	}
	return d
}

func TestRenderAll(t *testing.T) {
	bar := "id: bars\ndata: [[1, 2]]\noptions: {seriesDefaults: {renderer: {type: bar}}}\n"
	cursor := "id: zoomable\ndata: [[3]]\noptions: {cursor: {zoom: true}, seriesDefaults: {renderer: {type: bar}}}\n"
	plain := "id: plain\ndata: [[0]]\n"
	for _, test := range []struct {
		description string
		srcs        func(t *testing.T) []Source
		limit       int
		want        []*Rendered
		wantPlugins []string
		wantErr     error
	}{{
		description: "charts rendered in order",
		srcs: func(t *testing.T) []Source {
			return []Source{def(t, bar), def(t, plain), def(t, cursor)}
		},
		limit: 2,
		want: []*Rendered{{
			ChartID: "bars",
			Script:  `$.jqplot("bars", [[1,2]], {seriesDefaults:{renderer:$.jqplot.BarRenderer}});`,
			Plugins: []string{plugin.BarRenderer},
		}, {
			ChartID: "plain",
			Script:  `$.jqplot("plain", [[0]], null);`,
			Plugins: []string{},
		}, {
			ChartID: "zoomable",
			Script:  `$.jqplot("zoomable", [[3]], {seriesDefaults:{renderer:$.jqplot.BarRenderer},cursor:{zoom:true}});`,
			Plugins: []string{plugin.BarRenderer, plugin.Cursor},
		}},
		wantPlugins: []string{plugin.BarRenderer, plugin.Cursor},
	}, {
		description: "failure fails the batch",
		srcs: func(t *testing.T) []Source {
			return []Source{def(t, bar), brokenSource{}, def(t, plain)}
		},
		wantErr: errBroken,
	}, {
		description: "duplicate chart ids",
		srcs: func(t *testing.T) []Source {
			return []Source{def(t, plain), def(t, plain)}
		},
		wantErr: ErrDuplicateChartID,
	}} {
		t.Run(test.description, func(t *testing.T) {
			got, err := New(test.limit).RenderAll(context.Background(), test.srcs(t)...)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("RenderAll() yielded error %v, want %v", err, test.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("RenderAll() diff (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.wantPlugins, MergePlugins(got...)); diff != "" {
				t.Errorf("MergePlugins() diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srcs := make([]Source, 0, 8)
	for idx := 0; idx < 8; idx++ {
		srcs = append(srcs, def(t, fmt.Sprintf("id: c%d\ndata: [[%d]]\n", idx, idx)))
	}
	if _, err := New(1).RenderAll(ctx, srcs...); !errors.Is(err, context.Canceled) {
		t.Errorf("RenderAll() on a cancelled context yielded %v, want %v", err, context.Canceled)
	}
}
