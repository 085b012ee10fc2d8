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
	"fmt"
	"strings"
)

// Builder assembles a JqPlot.  Its data and options are created on first
// use; its chart id must be set exactly once.
type Builder struct {
	chartID string
	data    *SeriesData
	options *Options
}

// NewBuilder returns a new, empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// UseData returns the chart data, creating it if necessary.
func (b *Builder) UseData() *SeriesData {
	if b.data == nil {
		b.data = NewSeriesData()
	}
	return b.data
}

// UseOptions returns the chart options, creating them if necessary.
func (b *Builder) UseOptions() *Options {
	if b.options == nil {
		b.options = NewOptions()
	}
	return b.options
}

// UseChartID sets the id of the element the chart is drawn into.  It fails
// on a blank id, and on any call after the first successful one.
func (b *Builder) UseChartID(id string) error {
	if b.chartID != "" {
		return fmt.Errorf("%w: `%s`", ErrChartIDAlreadySet, b.chartID)
	}
	if strings.TrimSpace(id) == "" {
		return ErrBlankChartID
	}
	b.chartID = id
	return nil
}

// Build returns the assembled chart.  Options that were never used render
// as null.
func (b *Builder) Build() (*JqPlot, error) {
	if b.chartID == "" {
		return nil, ErrMissingChartID
	}
	if b.data == nil {
		return nil, fmt.Errorf("%w for chart `%s`", ErrMissingData, b.chartID)
	}
	return New(b.chartID, b.data, b.options)
}
