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

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cuioss/cui-jsf-components-sub005/page"
	renderdispatcher "github.com/cuioss/cui-jsf-components-sub005/render_dispatcher"
	"github.com/google/go-cmp/cmp"
)

type testSource struct {
	charts map[string]*renderdispatcher.Rendered
}

func (ts *testSource) RenderCharts(ctx context.Context, names ...string) ([]*renderdispatcher.Rendered, error) {
	req, err := RequestOf(ctx)
	if err != nil || req == nil {
		return nil, errors.New("no request in context")
	}
	ret := []*renderdispatcher.Rendered{}
	for _, name := range names {
		if name == "broken" {
			return nil, errors.New("oops")
		}
		r, ok := ts.charts[name]
		if !ok {
			return nil, fmt.Errorf("chart `%s`: %w", name, fs.ErrNotExist)
		}
		ret = append(ret, r)
	}
	return ret, nil
}

func newTestHandler() ChartHandler {
	return NewChartHandler(&testSource{
		charts: map[string]*renderdispatcher.Rendered{
			"bars": {
				ChartID: "bars",
				Script:  `$.jqplot("bars", [[1]], {seriesDefaults:{renderer:$.jqplot.BarRenderer}});`,
				Plugins: []string{"jqplot.barRenderer.min.js"},
			},
			"plain": {
				ChartID: "plain",
				Script:  `$.jqplot("plain", [[0]], null);`,
				Plugins: []string{},
			},
		},
	}, page.New("/p"))
}

func serve(h Handler, target string) *httptest.ResponseRecorder {
	path, _, _ := strings.Cut(target, "?")
	rec := httptest.NewRecorder()
	h.HandlersByPath()[path](rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetChart(t *testing.T) {
	for _, test := range []struct {
		description string
		target      string
		wantStatus  int
		wantResp    *ChartResponse
	}{{
		description: "single chart",
		target:      "/GetChart?name=bars",
		wantStatus:  http.StatusOK,
		wantResp: &ChartResponse{
			Script:  `$.jqplot("bars", [[1]], {seriesDefaults:{renderer:$.jqplot.BarRenderer}});`,
			Plugins: []string{"jqplot.barRenderer.min.js"},
		},
	}, {
		description: "several charts",
		target:      "/GetChart?name=plain&name=bars",
		wantStatus:  http.StatusOK,
		wantResp: &ChartResponse{
			Script:  `$.jqplot("plain", [[0]], null);$.jqplot("bars", [[1]], {seriesDefaults:{renderer:$.jqplot.BarRenderer}});`,
			Plugins: []string{"jqplot.barRenderer.min.js"},
		},
	}, {
		description: "missing name",
		target:      "/GetChart",
		wantStatus:  http.StatusBadRequest,
	}, {
		description: "unknown chart",
		target:      "/GetChart?name=nope",
		wantStatus:  http.StatusNotFound,
	}, {
		description: "failing chart",
		target:      "/GetChart?name=broken",
		wantStatus:  http.StatusInternalServerError,
	}} {
		t.Run(test.description, func(t *testing.T) {
			rec := serve(newTestHandler(), test.target)
			if rec.Code != test.wantStatus {
				t.Fatalf("got status %d, want %d (body %s)", rec.Code, test.wantStatus, rec.Body.String())
			}
			if test.wantResp == nil {
				return
			}
			got := &ChartResponse{}
			if err := json.Unmarshal(rec.Body.Bytes(), got); err != nil {
				t.Fatalf("failed to unmarshal response: %s", err)
			}
			if diff := cmp.Diff(test.wantResp, got); diff != "" {
				t.Errorf("response diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetChartPage(t *testing.T) {
	rec := serve(newTestHandler(), "/GetChartPage?name=bars")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("got content type %s, want text/html", got)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`<script src="/p/jqplot.barRenderer.min.js"></script>`,
		`$.jqplot("bars", [[1]]`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page %s missing %s", body, want)
		}
	}
}

func TestWrap(t *testing.T) {
	wrapped := 0
	h := newTestHandler().Wrap(func(hf HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			wrapped++
			w.Header().Add("X-Wrapped", "true")
			hf(w, req)
		}
	})
	for _, target := range []string{"/GetChart?name=plain", "/GetChartPage?name=plain"} {
		rec := serve(h, target)
		if rec.Header().Get("X-Wrapped") != "true" {
			t.Errorf("%s was not wrapped", target)
		}
	}
	if wrapped != 2 {
		t.Errorf("wrapper ran %d times, want 2", wrapped)
	}
}

func TestRequestOf(t *testing.T) {
	if req, err := RequestOf(context.Background()); req != nil || err != nil {
		t.Errorf("RequestOf(empty context) = %v, %v, want nil, nil", req, err)
	}
	if _, err := RequestOf(context.WithValue(context.Background(), httpReqKey, "nope")); err == nil {
		t.Errorf("RequestOf(bad context) should fail")
	}
}
