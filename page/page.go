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

// Package page renders charts into HTML blocks for inclusion in a page: one
// script tag per required plugin, followed by the inline chart statements.
// The elements the charts are drawn into are owned by the hosting page.
package page

import (
	"strings"

	renderdispatcher "github.com/cuioss/cui-jsf-components-sub005/render_dispatcher"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"
)

// DefaultPluginBase is the URL path plugin scripts are served from by
// default.
const DefaultPluginBase = "/jqplot/plugins"

const chartsTemplate = `{{range .Plugins}}<script src="{{.}}"></script>
{{end}}{{range .Scripts}}<script>{{.}}</script>
{{end}}`

var chartsTmpl = template.Must(template.New("charts").Parse(chartsTemplate))

type chartsData struct {
	Plugins []safehtml.TrustedResourceURL
	Scripts []safehtml.Script
}

// Renderer renders charts into HTML.
type Renderer struct {
	pluginBase string
}

// New returns a new Renderer loading plugin scripts from the provided base
// URL.  The base URL is trusted: it comes from the server configuration, not
// from requests.  An empty base selects DefaultPluginBase.
func New(pluginBase string) *Renderer {
	if pluginBase == "" {
		pluginBase = DefaultPluginBase
	}
	return &Renderer{
		pluginBase: strings.TrimSuffix(pluginBase, "/"),
	}
}

// PluginURL returns the URL of the provided plugin file.
func (r *Renderer) PluginURL(plugin string) string {
	return r.pluginBase + "/" + plugin
}

// Charts renders the provided charts as one HTML block.  Plugins required by
// several charts are loaded once.
func (r *Renderer) Charts(rendered ...*renderdispatcher.Rendered) (safehtml.HTML, error) {
	data := chartsData{}
	for _, plugin := range renderdispatcher.MergePlugins(rendered...) {
		data.Plugins = append(data.Plugins,
			uncheckedconversions.TrustedResourceURLFromStringKnownToSatisfyTypeContract(r.PluginURL(plugin)))
	}
	for _, chart := range rendered {
		if chart == nil {
			continue
		}
		data.Scripts = append(data.Scripts,
			uncheckedconversions.ScriptFromStringKnownToSatisfyTypeContract(escapeScript(chart.Script)))
	}
	return chartsTmpl.ExecuteToHTML(data)
}

// escapeScript keeps chart text, such as labels, from closing the enclosing
// script element.  `<\/` denotes `</` in JavaScript strings.
func escapeScript(script string) string {
	return strings.ReplaceAll(script, "</", `<\/`)
}
