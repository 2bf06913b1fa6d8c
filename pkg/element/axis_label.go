package element

import "encoding/json"

// AxisLabel holds the label rendering rules of one axis.
type AxisLabel struct {
	f axisLabelFields
}

type axisLabelFields struct {
	Show      *bool      `json:"show,omitempty"`
	Distance  *float64   `json:"distance,omitempty"`
	FontSize  *float64   `json:"fontSize,omitempty"`
	Color     *Color     `json:"color,omitempty"`
	Formatter *Formatter `json:"formatter,omitempty"`
	Rotate    *float64   `json:"rotate,omitempty"`
	Interval  *float64   `json:"interval,omitempty"`
	Inside    *bool      `json:"inside,omitempty"`
	Padding   []float64  `json:"padding,omitzero"`
	TextStyle *TextStyle `json:"textStyle,omitempty"`
}

// NewAxisLabel returns an axis label with every field unset. It serializes
// to an empty object.
func NewAxisLabel() AxisLabel { return AxisLabel{} }

// Show sets label visibility.
func (a AxisLabel) Show(v bool) AxisLabel { a.f.Show = &v; return a }

// Distance sets the gap between the labels and the axis line.
func (a AxisLabel) Distance(v float64) AxisLabel { a.f.Distance = &v; return a }

// FontSize sets the label font size.
func (a AxisLabel) FontSize(v float64) AxisLabel { a.f.FontSize = &v; return a }

// Color sets the label color.
func (a AxisLabel) Color(c Color) AxisLabel { a.f.Color = &c; return a }

// Formatter sets the label template.
func (a AxisLabel) Formatter(v Formatter) AxisLabel { a.f.Formatter = &v; return a }

// Rotate sets the label rotation in degrees.
func (a AxisLabel) Rotate(v float64) AxisLabel { a.f.Rotate = &v; return a }

// Interval sets the tick interval between shown labels.
func (a AxisLabel) Interval(v float64) AxisLabel { a.f.Interval = &v; return a }

// Inside places labels inside the grid when true.
func (a AxisLabel) Inside(v bool) AxisLabel { a.f.Inside = &v; return a }

// Padding sets the label padding (top, right, bottom, left). Calling Padding
// with no values sets an empty padding, which is still emitted.
func (a AxisLabel) Padding(values ...float64) AxisLabel {
	a.f.Padding = append(make([]float64, 0, len(values)), values...)
	return a
}

// TextStyle sets the nested text style.
func (a AxisLabel) TextStyle(s TextStyle) AxisLabel { a.f.TextStyle = &s; return a }

// MarshalJSON renders the set fields only.
func (a AxisLabel) MarshalJSON() ([]byte, error) { return json.Marshal(a.f) }
