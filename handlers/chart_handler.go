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

// Package handlers provides HTTP handlers serving rendered charts.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/cuioss/cui-jsf-components-sub005/page"
	renderdispatcher "github.com/cuioss/cui-jsf-components-sub005/render_dispatcher"
)

// HandlerFunc is a HTTP handler function.
type HandlerFunc func(http.ResponseWriter, *http.Request)

// WrapFunc is a function that rewrites a HandlerFunc.
type WrapFunc func(HandlerFunc) HandlerFunc

// Handler describes a chart HTTP handler.
type Handler interface {
	HandlersByPath() map[string]func(http.ResponseWriter, *http.Request)
}

// ChartHandler is a Handler for chart requests.  It supports a Wrap method
// that wraps all handlers, e.g. adding cookies.
type ChartHandler interface {
	Handler
	Wrap(...WrapFunc) Handler
}

// ChartSource renders named charts.  An unknown chart name should yield an
// error wrapping fs.ErrNotExist.
type ChartSource interface {
	RenderCharts(ctx context.Context, names ...string) ([]*renderdispatcher.Rendered, error)
}

// ChartResponse is the JSON response to a chart request.
type ChartResponse struct {
	// Script holds the statements of all requested charts, in request order.
	Script string `json:"script"`
	// Plugins lists the plugin scripts to load before Script runs.
	Plugins []string `json:"plugins"`
}

const (
	chartMethod     = "/GetChart"
	chartPageMethod = "/GetChartPage"

	nameParam = "name"
)

type contextKey string

var (
	httpReqKey contextKey = "jqplot_http_req"
)

// RequestOf returns the http Request attached to the provided Context, or nil
// if no Request is attached.  Returns an error if something other than a
// Request is stored in the Context.
func RequestOf(ctx context.Context) (*http.Request, error) {
	reqIf := ctx.Value(httpReqKey)
	if reqIf == nil {
		return nil, nil
	}
	req, ok := reqIf.(*http.Request)
	if !ok {
		return nil, fmt.Errorf("expected *http.Request to be stored in context, but got something else")
	}
	return req, nil
}

// chartHandler is an http.Handler serving charts.
type chartHandler struct {
	source   ChartSource
	page     *page.Renderer
	wrappers []WrapFunc
}

// NewChartHandler returns a new Handler serving charts from the provided
// ChartSource, rendering chart pages with the provided page.Renderer.
func NewChartHandler(source ChartSource, pr *page.Renderer) ChartHandler {
	return &chartHandler{
		source: source,
		page:   pr,
	}
}

func (ch *chartHandler) Wrap(wrappers ...WrapFunc) Handler {
	ch.wrappers = append(ch.wrappers, wrappers...)
	return ch
}

// HandlersByPath returns a mapping of HTTP request path to HTTP handler for
// this Handler.
func (ch *chartHandler) HandlersByPath() map[string]func(http.ResponseWriter, *http.Request) {
	var chart HandlerFunc = ch.getChartHandler
	var chartPage HandlerFunc = ch.getChartPageHandler
	for _, wrapper := range ch.wrappers {
		chart = wrapper(chart)
		chartPage = wrapper(chartPage)
	}
	return map[string]func(http.ResponseWriter, *http.Request){
		chartMethod:     chart,
		chartPageMethod: chartPage,
	}
}

// render renders the charts named in the request, reporting any failure on
// w.  It returns false on failure.
func (ch *chartHandler) render(w http.ResponseWriter, req *http.Request) ([]*renderdispatcher.Rendered, bool) {
	if err := req.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	names := req.Form[nameParam]
	if len(names) == 0 {
		http.Error(w, "No chart name provided", http.StatusBadRequest)
		return nil, false
	}
	rendered, err := ch.source.RenderCharts(context.WithValue(req.Context(), httpReqKey, req), names...)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, fs.ErrNotExist) {
			status = http.StatusNotFound
		}
		http.Error(w, "Chart request failed: "+err.Error(), status)
		return nil, false
	}
	return rendered, true
}

func (ch *chartHandler) getChartHandler(w http.ResponseWriter, req *http.Request) {
	rendered, ok := ch.render(w, req)
	if !ok {
		return
	}
	scripts := make([]string, len(rendered))
	for idx, r := range rendered {
		scripts[idx] = r.Script
	}
	respStr, err := json.Marshal(&ChartResponse{
		Script:  strings.Join(scripts, ""),
		Plugins: renderdispatcher.MergePlugins(rendered...),
	})
	if err != nil {
		http.Error(w, "Failed to marshal response: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	fmt.Fprint(w, string(respStr))
}

func (ch *chartHandler) getChartPageHandler(w http.ResponseWriter, req *http.Request) {
	rendered, ok := ch.render(w, req)
	if !ok {
		return
	}
	html, err := ch.page.Charts(rendered...)
	if err != nil {
		http.Error(w, "Failed to render page: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html.String())
}
