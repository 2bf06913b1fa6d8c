package series

import (
	"encoding/json"

	"github.com/matzehuels/chartkit/pkg/element"
)

// Bar is a bar series.
type Bar struct {
	f barFields
}

type barFields struct {
	common
	Stack    *string `json:"stack,omitempty"`
	BarWidth *string `json:"barWidth,omitempty"`
}

// NewBar returns a bar series with every field unset.
func NewBar() Bar { return Bar{} }

// Type reports TypeBar.
func (Bar) Type() Type { return TypeBar }

// Name sets the series name shown in the legend and tooltip.
func (b Bar) Name(v string) Bar { b.f.Name = &v; return b }

// Data replaces the data list.
func (b Bar) Data(points ...DataPoint) Bar { b.f.common = b.f.withData(points); return b }

// Append adds points to the data list.
func (b Bar) Append(points ...DataPoint) Bar { b.f.common = b.f.withAppended(points); return b }

// ItemStyle sets the bar paint.
func (b Bar) ItemStyle(s element.ItemStyle) Bar { b.f.ItemStyle = &s; return b }

// Label sets the per-bar label.
func (b Bar) Label(l element.Label) Bar { b.f.Label = &l; return b }

// Stack groups bars sharing the same stack name on top of each other.
func (b Bar) Stack(v string) Bar { b.f.Stack = &v; return b }

// BarWidth sets the bar width ("40%", "12").
func (b Bar) BarWidth(v string) Bar { b.f.BarWidth = &v; return b }

// MarshalJSON implements json.Marshaler.
func (b Bar) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type Type `json:"type"`
		barFields
	}{TypeBar, b.f})
}
