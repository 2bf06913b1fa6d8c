package element

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Color is a fill or stroke color. It renders either as a CSS color string or,
// for gradients, as a gradient object understood by the rendering engine.
//
// The zero Color renders as an empty string; use a pointer field to leave a
// color unset.
type Color struct {
	value    string
	gradient *gradient
}

// Named creates a color from any CSS color expression, passed through verbatim
// ("red", "#5470c6", "rgba(0,0,0,0.3)", "transparent").
func Named(name string) Color {
	return Color{value: name}
}

// Hex creates a color from a hex string. The leading '#' is optional and the
// digits are lower-cased. Supported lengths are 3, 4, 6 and 8 digits (RGB,
// RGBA, RRGGBB, RRGGBBAA); other inputs are passed through unchanged.
func Hex(hex string) Color {
	digits := strings.TrimPrefix(hex, "#")
	switch len(digits) {
	case 3, 4, 6, 8:
		for _, r := range digits {
			if !isHexDigit(r) {
				return Color{value: hex}
			}
		}
		return Color{value: "#" + strings.ToLower(digits)}
	default:
		return Color{value: hex}
	}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// RGB creates an opaque color from 8-bit channels, rendered as "rgb(r,g,b)".
func RGB(r, g, b uint8) Color {
	return Color{value: fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)}
}

// RGBA creates a color from 8-bit channels and an alpha in [0, 1], rendered
// as "rgba(r,g,b,a)". Alpha is not clamped.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{value: fmt.Sprintf("rgba(%d,%d,%d,%g)", r, g, b, a)}
}

// ColorStop is one stop of a gradient.
type ColorStop struct {
	Offset float64 `json:"offset"`
	Color  Color   `json:"color"`
}

// Stop creates a gradient stop at offset (0 to 1).
func Stop(offset float64, c Color) ColorStop {
	return ColorStop{Offset: offset, Color: c}
}

type gradient struct {
	Type       string      `json:"type"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	X2         *float64    `json:"x2,omitempty"`
	Y2         *float64    `json:"y2,omitempty"`
	R          *float64    `json:"r,omitempty"`
	ColorStops []ColorStop `json:"colorStops"`
}

// LinearGradient creates a linear gradient from (x, y) to (x2, y2), expressed
// as fractions of the bounding box.
func LinearGradient(x, y, x2, y2 float64, stops ...ColorStop) Color {
	return Color{gradient: &gradient{
		Type:       "linear",
		X:          x,
		Y:          y,
		X2:         &x2,
		Y2:         &y2,
		ColorStops: append([]ColorStop{}, stops...),
	}}
}

// RadialGradient creates a radial gradient centered at (x, y) with radius r,
// expressed as fractions of the bounding box.
func RadialGradient(x, y, r float64, stops ...ColorStop) Color {
	return Color{gradient: &gradient{
		Type:       "radial",
		X:          x,
		Y:          y,
		R:          &r,
		ColorStops: append([]ColorStop{}, stops...),
	}}
}

// IsGradient reports whether c is a linear or radial gradient.
func (c Color) IsGradient() bool {
	return c.gradient != nil
}

// String returns the CSS expression of a plain color, or the gradient type
// for gradients.
func (c Color) String() string {
	if c.gradient != nil {
		return c.gradient.Type + "-gradient"
	}
	return c.value
}

// MarshalJSON renders the color as a string or gradient object.
func (c Color) MarshalJSON() ([]byte, error) {
	if c.gradient != nil {
		return json.Marshal(c.gradient)
	}
	return json.Marshal(c.value)
}

// ParseColor turns a plain color expression into a Color: "#..." strings go
// through [Hex], anything else through [Named].
func ParseColor(s string) Color {
	if strings.HasPrefix(s, "#") {
		return Hex(s)
	}
	return Named(s)
}

// UnmarshalText decodes a plain color expression with [ParseColor].
func (c *Color) UnmarshalText(text []byte) error {
	*c = ParseColor(string(text))
	return nil
}
