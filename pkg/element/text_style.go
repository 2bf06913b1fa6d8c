package element

import "encoding/json"

// TextStyle is the font and color settings of a text fragment.
type TextStyle struct {
	f textStyleFields
}

type textStyleFields struct {
	Color      *Color   `json:"color,omitempty"`
	FontStyle  *string  `json:"fontStyle,omitempty"`
	FontWeight *string  `json:"fontWeight,omitempty"`
	FontFamily *string  `json:"fontFamily,omitempty"`
	FontSize   *float64 `json:"fontSize,omitempty"`
	LineHeight *float64 `json:"lineHeight,omitempty"`
}

// NewTextStyle returns a text style with every field unset.
func NewTextStyle() TextStyle { return TextStyle{} }

// Color sets the text color.
func (s TextStyle) Color(c Color) TextStyle { s.f.Color = &c; return s }

// FontStyle sets the font style ("normal", "italic", "oblique").
func (s TextStyle) FontStyle(v string) TextStyle { s.f.FontStyle = &v; return s }

// FontWeight sets the font weight ("normal", "bold", "600", ...).
func (s TextStyle) FontWeight(v string) TextStyle { s.f.FontWeight = &v; return s }

// FontFamily sets the font family.
func (s TextStyle) FontFamily(v string) TextStyle { s.f.FontFamily = &v; return s }

// FontSize sets the font size in pixels.
func (s TextStyle) FontSize(v float64) TextStyle { s.f.FontSize = &v; return s }

// LineHeight sets the line height in pixels.
func (s TextStyle) LineHeight(v float64) TextStyle { s.f.LineHeight = &v; return s }

// MarshalJSON renders the set fields only.
func (s TextStyle) MarshalJSON() ([]byte, error) { return json.Marshal(s.f) }

// LineStyle is the stroke settings of an axis, split line or series line.
type LineStyle struct {
	f lineStyleFields
}

type lineStyleFields struct {
	Color   *Color   `json:"color,omitempty"`
	Width   *float64 `json:"width,omitempty"`
	Type    *string  `json:"type,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
}

// NewLineStyle returns a line style with every field unset.
func NewLineStyle() LineStyle { return LineStyle{} }

// Color sets the stroke color.
func (s LineStyle) Color(c Color) LineStyle { s.f.Color = &c; return s }

// Width sets the stroke width.
func (s LineStyle) Width(v float64) LineStyle { s.f.Width = &v; return s }

// Type sets the dash type ("solid", "dashed", "dotted").
func (s LineStyle) Type(v string) LineStyle { s.f.Type = &v; return s }

// Opacity sets the stroke opacity.
func (s LineStyle) Opacity(v float64) LineStyle { s.f.Opacity = &v; return s }

// MarshalJSON renders the set fields only.
func (s LineStyle) MarshalJSON() ([]byte, error) { return json.Marshal(s.f) }

// ItemStyle is the fill and border settings of a series item.
type ItemStyle struct {
	f itemStyleFields
}

type itemStyleFields struct {
	Color        *Color   `json:"color,omitempty"`
	BorderColor  *Color   `json:"borderColor,omitempty"`
	BorderWidth  *float64 `json:"borderWidth,omitempty"`
	BorderRadius *float64 `json:"borderRadius,omitempty"`
	Opacity      *float64 `json:"opacity,omitempty"`
}

// NewItemStyle returns an item style with every field unset.
func NewItemStyle() ItemStyle { return ItemStyle{} }

// Color sets the fill color.
func (s ItemStyle) Color(c Color) ItemStyle { s.f.Color = &c; return s }

// BorderColor sets the border color.
func (s ItemStyle) BorderColor(c Color) ItemStyle { s.f.BorderColor = &c; return s }

// BorderWidth sets the border width.
func (s ItemStyle) BorderWidth(v float64) ItemStyle { s.f.BorderWidth = &v; return s }

// BorderRadius sets the corner radius.
func (s ItemStyle) BorderRadius(v float64) ItemStyle { s.f.BorderRadius = &v; return s }

// Opacity sets the fill opacity.
func (s ItemStyle) Opacity(v float64) ItemStyle { s.f.Opacity = &v; return s }

// MarshalJSON renders the set fields only.
func (s ItemStyle) MarshalJSON() ([]byte, error) { return json.Marshal(s.f) }

// Label is the text label attached to series items.
type Label struct {
	f labelFields
}

type labelFields struct {
	Show      *bool      `json:"show,omitempty"`
	Position  *string    `json:"position,omitempty"`
	Formatter *Formatter `json:"formatter,omitempty"`
	Color     *Color     `json:"color,omitempty"`
	FontSize  *float64   `json:"fontSize,omitempty"`
}

// NewLabel returns a label with every field unset.
func NewLabel() Label { return Label{} }

// Show sets label visibility.
func (l Label) Show(v bool) Label { l.f.Show = &v; return l }

// Position sets the label position ("top", "inside", "outside", ...).
func (l Label) Position(v string) Label { l.f.Position = &v; return l }

// Formatter sets the label template.
func (l Label) Formatter(v Formatter) Label { l.f.Formatter = &v; return l }

// Color sets the label color.
func (l Label) Color(c Color) Label { l.f.Color = &c; return l }

// FontSize sets the label font size.
func (l Label) FontSize(v float64) Label { l.f.FontSize = &v; return l }

// MarshalJSON renders the set fields only.
func (l Label) MarshalJSON() ([]byte, error) { return json.Marshal(l.f) }
