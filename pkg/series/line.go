package series

import (
	"encoding/json"

	"github.com/matzehuels/chartkit/pkg/element"
)

// Line is a line series.
type Line struct {
	f lineFields
}

type lineFields struct {
	common
	Stack      *string            `json:"stack,omitempty"`
	Smooth     *bool              `json:"smooth,omitempty"`
	SymbolSize *float64           `json:"symbolSize,omitempty"`
	LineStyle  *element.LineStyle `json:"lineStyle,omitempty"`
}

// NewLine returns a line series with every field unset.
func NewLine() Line { return Line{} }

// Type reports TypeLine.
func (Line) Type() Type { return TypeLine }

// Name sets the series name.
func (l Line) Name(v string) Line { l.f.Name = &v; return l }

// Data replaces the data list.
func (l Line) Data(points ...DataPoint) Line { l.f.common = l.f.withData(points); return l }

// Append adds points to the data list.
func (l Line) Append(points ...DataPoint) Line { l.f.common = l.f.withAppended(points); return l }

// ItemStyle sets the symbol paint.
func (l Line) ItemStyle(s element.ItemStyle) Line { l.f.ItemStyle = &s; return l }

// Label sets the per-point label.
func (l Line) Label(lb element.Label) Line { l.f.Label = &lb; return l }

// Stack groups lines sharing the same stack name.
func (l Line) Stack(v string) Line { l.f.Stack = &v; return l }

// Smooth draws the line as a curve when true.
func (l Line) Smooth(v bool) Line { l.f.Smooth = &v; return l }

// SymbolSize sets the point marker size.
func (l Line) SymbolSize(v float64) Line { l.f.SymbolSize = &v; return l }

// LineStyle sets the stroke.
func (l Line) LineStyle(s element.LineStyle) Line { l.f.LineStyle = &s; return l }

// MarshalJSON implements json.Marshaler.
func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type Type `json:"type"`
		lineFields
	}{TypeLine, l.f})
}
