package series

import (
	"encoding/json"

	"github.com/matzehuels/chartkit/pkg/element"
)

// Pie is a pie or donut series.
type Pie struct {
	f pieFields
}

type pieFields struct {
	common
	Radius *[2]string `json:"radius,omitempty"`
	Center *[2]string `json:"center,omitempty"`
}

// NewPie returns a pie series with every field unset.
func NewPie() Pie { return Pie{} }

// Type reports TypePie.
func (Pie) Type() Type { return TypePie }

// Name sets the series name.
func (p Pie) Name(v string) Pie { p.f.Name = &v; return p }

// Data replaces the slice list. Slices are usually built with [NamedValue].
func (p Pie) Data(points ...DataPoint) Pie { p.f.common = p.f.withData(points); return p }

// Append adds slices.
func (p Pie) Append(points ...DataPoint) Pie { p.f.common = p.f.withAppended(points); return p }

// ItemStyle sets the slice paint.
func (p Pie) ItemStyle(s element.ItemStyle) Pie { p.f.ItemStyle = &s; return p }

// Label sets the slice label.
func (p Pie) Label(l element.Label) Pie { p.f.Label = &l; return p }

// Radius sets the inner and outer radius; it renders as [inner, outer].
// An inner radius other than "0" draws a donut.
func (p Pie) Radius(inner, outer string) Pie {
	r := [2]string{inner, outer}
	p.f.Radius = &r
	return p
}

// Center sets the pie center; it renders as [x, y].
func (p Pie) Center(x, y string) Pie {
	c := [2]string{x, y}
	p.f.Center = &c
	return p
}

// MarshalJSON implements json.Marshaler.
func (p Pie) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type Type `json:"type"`
		pieFields
	}{TypePie, p.f})
}
