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

package notation

import (
	"fmt"
	"time"
)

// DateFormat selects how a Date is rendered.
type DateFormat int

// Supported date formats.
const (
	// DateOnly renders e.g. "2025-03-01".
	DateOnly DateFormat = iota
	// DateTimeFormat renders e.g. "2025-03-01 13:45:00".
	DateTimeFormat
	// DateTimeWithMilliseconds renders e.g. "2025-03-01 13:45:00.250".
	DateTimeWithMilliseconds
	// ISO8601 renders e.g. "2025-03-01T13:45:00.250+01:00".
	ISO8601
)

func (f DateFormat) layout() string {
	switch f {
	case DateTimeFormat:
		return "2006-01-02 15:04:05"
	case DateTimeWithMilliseconds:
		return "2006-01-02 15:04:05.000"
	case ISO8601:
		return "2006-01-02T15:04:05.000Z07:00"
	default:
		return time.DateOnly
	}
}

// ParseDateFormat returns the DateFormat with the provided name, one of
// "date", "datetime", "datetime_ms" or "iso8601".
func ParseDateFormat(name string) (DateFormat, error) {
	switch name {
	case "", "date":
		return DateOnly, nil
	case "datetime":
		return DateTimeFormat, nil
	case "datetime_ms":
		return DateTimeWithMilliseconds, nil
	case "iso8601":
		return ISO8601, nil
	}
	return DateOnly, fmt.Errorf("unsupported date format `%s`", name)
}

// Date is an optional point in time, rendered as quoted text in its
// DateFormat.
type Date struct {
	t      time.Time
	set    bool
	format DateFormat
}

// NewDate returns a Date rendering t as a calendar date.
func NewDate(t time.Time) Date {
	return NewDateWithFormat(t, DateOnly)
}

// NewDateTime returns a Date rendering t as a date and a time of day.
func NewDateTime(t time.Time) Date {
	return NewDateWithFormat(t, DateTimeFormat)
}

// NewDateWithFormat returns a Date rendering t with the provided format.
func NewDateWithFormat(t time.Time, format DateFormat) Date {
	return Date{t: t, set: true, format: format}
}

// DateOf returns a Date wrapping *t, or an absent Date if t is nil.
func DateOf(t *time.Time, format DateFormat) Date {
	if t == nil {
		return Date{format: format}
	}
	return NewDateWithFormat(*t, format)
}

// ValueAsString implements Value.
func (d Date) ValueAsString() (string, bool) {
	if !d.set {
		return "", false
	}
	return `"` + d.t.Format(d.format.layout()) + `"`, true
}
