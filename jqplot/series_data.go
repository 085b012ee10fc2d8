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

import "github.com/cuioss/cui-jsf-components-sub005/notation"

// SeriesData holds a chart's data: an array of series, each an array of
// points.  A point is either a single value, plotted against its index, or
// an [x,y] pair built with Point.
type SeriesData struct {
	series *notation.Array[*notation.Array[notation.Value]]
}

// NewSeriesData returns a new SeriesData with no series.
func NewSeriesData() *SeriesData {
	return &SeriesData{
		series: notation.NewArray[*notation.Array[notation.Value]](),
	}
}

// AddSeries appends a series made of the provided points.  Nil points are
// dropped.  It supports chaining.
func (sd *SeriesData) AddSeries(points ...notation.Value) *SeriesData {
	sd.series.Add(notation.NewArray(points...))
	return sd
}

// Point returns an [x,y] data point.
func Point(x, y notation.Value) *notation.Array[notation.Value] {
	return notation.NewArray(x, y)
}

// Len returns the number of series in the receiver.
func (sd *SeriesData) Len() int {
	if sd == nil {
		return 0
	}
	return sd.series.Len()
}

// IsEmpty reports whether the receiver holds no data point at all.
func (sd *SeriesData) IsEmpty() bool {
	if sd == nil {
		return true
	}
	for _, s := range sd.series.Items() {
		if !s.IsEmpty() {
			return false
		}
	}
	return true
}

// AsJavaScriptObjectNotation renders the receiver as an array of arrays.
func (sd *SeriesData) AsJavaScriptObjectNotation() string {
	if sd == nil {
		return "[]"
	}
	return sd.series.AsJavaScriptObjectNotation()
}
