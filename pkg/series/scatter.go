package series

import (
	"encoding/json"

	"github.com/matzehuels/chartkit/pkg/element"
)

// Scatter is a scatter series.
type Scatter struct {
	f scatterFields
}

type scatterFields struct {
	common
	SymbolSize *float64 `json:"symbolSize,omitempty"`
}

// NewScatter returns a scatter series with every field unset.
func NewScatter() Scatter { return Scatter{} }

// Type reports TypeScatter.
func (Scatter) Type() Type { return TypeScatter }

// Name sets the series name.
func (s Scatter) Name(v string) Scatter { s.f.Name = &v; return s }

// Data replaces the data list.
func (s Scatter) Data(points ...DataPoint) Scatter { s.f.common = s.f.withData(points); return s }

// Append adds points to the data list.
func (s Scatter) Append(points ...DataPoint) Scatter {
	s.f.common = s.f.withAppended(points)
	return s
}

// ItemStyle sets the marker paint.
func (s Scatter) ItemStyle(st element.ItemStyle) Scatter { s.f.ItemStyle = &st; return s }

// Label sets the per-point label.
func (s Scatter) Label(l element.Label) Scatter { s.f.Label = &l; return s }

// SymbolSize sets the marker size.
func (s Scatter) SymbolSize(v float64) Scatter { s.f.SymbolSize = &v; return s }

// MarshalJSON implements json.Marshaler.
func (s Scatter) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type Type `json:"type"`
		scatterFields
	}{TypeScatter, s.f})
}
