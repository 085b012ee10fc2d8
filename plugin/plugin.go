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

// Package plugin tracks which optional jqPlot plugin scripts a chart
// configuration needs.
//
// Option types that engage a plugin implement Consumer, returning the plugin
// files they, and everything they compose, require.  The full list is
// gathered with a Support when the page is rendered, not when options are
// set, so it reflects exactly what was configured:
//
//	plugins := plugin.NewSupport().AddConsumer(options).Plugins()
package plugin

// Plugin script files shipped with jqPlot.
const (
	BarRenderer             = "jqplot.barRenderer.min.js"
	PieRenderer             = "jqplot.pieRenderer.min.js"
	DonutRenderer           = "jqplot.donutRenderer.min.js"
	DateAxisRenderer        = "jqplot.dateAxisRenderer.min.js"
	CategoryAxisRenderer    = "jqplot.categoryAxisRenderer.min.js"
	CanvasTextRenderer      = "jqplot.canvasTextRenderer.min.js"
	CanvasAxisTickRenderer  = "jqplot.canvasAxisTickRenderer.min.js"
	CanvasAxisLabelRenderer = "jqplot.canvasAxisLabelRenderer.min.js"
	EnhancedLegendRenderer  = "jqplot.enhancedLegendRenderer.min.js"
	Cursor                  = "jqplot.cursor.min.js"
	Highlighter             = "jqplot.highlighter.min.js"
	PointLabels             = "jqplot.pointLabels.min.js"
)

// FileName returns the minified script file name of the named plugin, e.g.
// FileName("cursor") == "jqplot.cursor.min.js".
func FileName(name string) string {
	return "jqplot." + name + ".min.js"
}

// Consumer is implemented by option types that require plugin scripts.
// Implementations should include the plugins of every Consumer they compose,
// and should tolerate a nil receiver.
type Consumer interface {
	UsedPlugins() []string
}

// Support accumulates plugin file names, dropping duplicates and keeping
// the order of first discovery.
type Support struct {
	names []string
	seen  map[string]struct{}
}

// NewSupport returns a new, empty Support.
func NewSupport() *Support {
	return &Support{
		seen: map[string]struct{}{},
	}
}

// Add adds the provided plugin file names.  Empty names are ignored.  It
// supports chaining.
func (s *Support) Add(names ...string) *Support {
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := s.seen[name]; ok {
			continue
		}
		s.seen[name] = struct{}{}
		s.names = append(s.names, name)
	}
	return s
}

// AddConsumer adds the plugins used by each provided Consumer.  Nil
// Consumers are ignored.  It supports chaining.
func (s *Support) AddConsumer(consumers ...Consumer) *Support {
	for _, consumer := range consumers {
		if consumer == nil {
			continue
		}
		s.Add(consumer.UsedPlugins()...)
	}
	return s
}

// Plugins returns the accumulated plugin file names.
func (s *Support) Plugins() []string {
	ret := make([]string, len(s.names))
	copy(ret, s.names)
	return ret
}

// Len returns the number of accumulated plugins.
func (s *Support) Len() int {
	return len(s.names)
}
