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

package page

import (
	"strings"
	"testing"

	renderdispatcher "github.com/cuioss/cui-jsf-components-sub005/render_dispatcher"
	"github.com/google/go-cmp/cmp"
)

func TestCharts(t *testing.T) {
	bars := &renderdispatcher.Rendered{
		ChartID: "bars",
		Script:  `$.jqplot("bars", [[1,2]], {seriesDefaults:{renderer:$.jqplot.BarRenderer}});`,
		Plugins: []string{"jqplot.barRenderer.min.js"},
	}
	zoom := &renderdispatcher.Rendered{
		ChartID: "zoom",
		Script:  `$.jqplot("zoom", [[3]], {cursor:{zoom:true}});`,
		Plugins: []string{"jqplot.cursor.min.js", "jqplot.barRenderer.min.js"},
	}
	for _, test := range []struct {
		description  string
		pluginBase   string
		rendered     []*renderdispatcher.Rendered
		wantContains []string
		wantPlugins  int
	}{{
		description: "default plugin base",
		rendered:    []*renderdispatcher.Rendered{bars},
		wantContains: []string{
			`<script src="/jqplot/plugins/jqplot.barRenderer.min.js"></script>`,
			`<script>$.jqplot("bars", [[1,2]], {seriesDefaults:{renderer:$.jqplot.BarRenderer}});</script>`,
		},
		wantPlugins: 1,
	}, {
		description: "shared plugins loaded once",
		pluginBase:  "/static/js/",
		rendered:    []*renderdispatcher.Rendered{bars, nil, zoom},
		wantContains: []string{
			`<script src="/static/js/jqplot.barRenderer.min.js"></script>`,
			`<script src="/static/js/jqplot.cursor.min.js"></script>`,
			`<script>$.jqplot("zoom", [[3]], {cursor:{zoom:true}});</script>`,
		},
		wantPlugins: 2,
	}, {
		description: "nothing to render",
	}} {
		t.Run(test.description, func(t *testing.T) {
			html, err := New(test.pluginBase).Charts(test.rendered...)
			if err != nil {
				t.Fatalf("Charts() yielded unexpected error %s", err)
			}
			got := html.String()
			for _, want := range test.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Charts() = %s, missing %s", got, want)
				}
			}
			if diff := cmp.Diff(test.wantPlugins, strings.Count(got, " src=")); diff != "" {
				t.Errorf("plugin tag count diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEscapeScript(t *testing.T) {
	got := escapeScript(`$.jqplot("c", [["</script><b>"]], null);`)
	want := `$.jqplot("c", [["<\/script><b>"]], null);`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("escapeScript() diff (-want +got):\n%s", diff)
	}
}
