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

// Package decoration supports option groups shared by several unrelated
// jqPlot option blocks, such as drop shadows and mouse highlighting.
//
// A decoration is a standalone value owned by the option block it decorates.
// The owner exposes it for configuration, and merges its properties into its
// own object when rendering:
//
//	bar := rendereroptions.NewBar()
//	bar.Shadow().WithShadow(true).WithDepth(3)
//
// Decorations implement notation.Provider.  Only the properties that were set
// are rendered.
package decoration

import "github.com/cuioss/cui-jsf-components-sub005/notation"

const (
	shadowKey       = "shadow"
	shadowAngleKey  = "shadowAngle"
	shadowOffsetKey = "shadowOffset"
	shadowDepthKey  = "shadowDepth"
	shadowAlphaKey  = "shadowAlpha"

	highlightMouseOverKey = "highlightMouseOver"
	highlightMouseDownKey = "highlightMouseDown"
	highlightColorsKey    = "highlightColors"
	highlightColorKey     = "highlightColor"
)

// Shadow configures the drop shadow of a rendered element.
type Shadow struct {
	show   notation.Boolean
	angle  notation.Double
	offset notation.Double
	depth  notation.Integer
	alpha  notation.Double
}

// WithShadow specifies whether a shadow is drawn.
func (s *Shadow) WithShadow(show bool) *Shadow {
	s.show = notation.Bool(show)
	return s
}

// WithAngle specifies the shadow angle, in degrees.
func (s *Shadow) WithAngle(degrees float64) *Shadow {
	s.angle = notation.NewDouble(degrees)
	return s
}

// WithOffset specifies the shadow offset from the element, in pixels.
func (s *Shadow) WithOffset(px float64) *Shadow {
	s.offset = notation.NewDouble(px)
	return s
}

// WithDepth specifies the number of strokes making up the shadow.
func (s *Shadow) WithDepth(strokes int) *Shadow {
	s.depth = notation.NewInteger(strokes)
	return s
}

// WithAlpha specifies the shadow opacity, between 0 and 1.
func (s *Shadow) WithAlpha(alpha float64) *Shadow {
	s.alpha = notation.NewDouble(alpha)
	return s
}

// Properties implements notation.Provider.
func (s *Shadow) Properties() []notation.Support {
	if s == nil {
		return nil
	}
	return notation.NewPropertyProvider().
		AddProperty(shadowKey, s.show).
		AddProperty(shadowAngleKey, s.angle).
		AddProperty(shadowOffsetKey, s.offset).
		AddProperty(shadowDepthKey, s.depth).
		AddProperty(shadowAlphaKey, s.alpha).
		Properties()
}

// Highlight configures how an element reacts to the mouse.
type Highlight struct {
	mouseOver notation.Boolean
	mouseDown notation.Boolean
	color     notation.String
	colors    *notation.Array[notation.String]
}

// WithMouseOver specifies whether the element is highlighted on mouse over.
func (h *Highlight) WithMouseOver(highlight bool) *Highlight {
	h.mouseOver = notation.Bool(highlight)
	return h
}

// WithMouseDown specifies whether the element is highlighted on mouse down.
func (h *Highlight) WithMouseDown(highlight bool) *Highlight {
	h.mouseDown = notation.Bool(highlight)
	return h
}

// WithColor specifies a single highlight color.
func (h *Highlight) WithColor(color string) *Highlight {
	h.color = notation.NonEmptyString(color)
	return h
}

// WithColors specifies per-element highlight colors.  Calling it again
// replaces the earlier colors.
func (h *Highlight) WithColors(colors ...string) *Highlight {
	h.colors = notation.Strings(colors...)
	return h
}

// Properties implements notation.Provider.
func (h *Highlight) Properties() []notation.Support {
	if h == nil {
		return nil
	}
	return notation.NewPropertyProvider().
		AddProperty(highlightMouseOverKey, h.mouseOver).
		AddProperty(highlightMouseDownKey, h.mouseDown).
		AddProperty(highlightColorKey, h.color).
		AddProperty(highlightColorsKey, h.colors).
		Properties()
}
