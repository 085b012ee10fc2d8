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

package service

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "jqplot"
	subsystem = "service"
)

// Metrics represents chart service metrics.
type Metrics struct {
	renders      *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
}

// NewMetrics creates new chart service metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "renders_total",
				Help:      "Total number of chart renders.",
			},
			[]string{"result"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "definition_cache_lookups_total",
				Help:      "Total number of chart definition cache lookups.",
			},
			[]string{"result"},
		),
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.renders.Describe(ch)
	m.cacheLookups.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.renders.Collect(ch)
	m.cacheLookups.Collect(ch)
}

// check interfaces
var (
	_ prometheus.Collector = (*Metrics)(nil)
)
