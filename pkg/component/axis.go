package component

import (
	"encoding/json"

	"github.com/matzehuels/chartkit/pkg/element"
)

// AxisType is the scale of an [Axis].
type AxisType string

// Axis scales.
const (
	AxisCategory AxisType = "category"
	AxisValue    AxisType = "value"
	AxisTime     AxisType = "time"
	AxisLog      AxisType = "log"
)

// Axis is one cartesian axis, used for both xAxis and yAxis entries.
type Axis struct {
	f axisFields
}

type axisFields struct {
	Type        *AxisType          `json:"type,omitempty"`
	Name        *string            `json:"name,omitempty"`
	Data        []string           `json:"data,omitzero"`
	Min         *float64           `json:"min,omitempty"`
	Max         *float64           `json:"max,omitempty"`
	BoundaryGap *bool              `json:"boundaryGap,omitempty"`
	AxisLabel   *element.AxisLabel `json:"axisLabel,omitempty"`
	AxisLine    *axisLine          `json:"axisLine,omitempty"`
	SplitLine   *splitLine         `json:"splitLine,omitempty"`
}

type axisLine struct {
	Show      *bool              `json:"show,omitempty"`
	LineStyle *element.LineStyle `json:"lineStyle,omitempty"`
}

type splitLine struct {
	Show      *bool              `json:"show,omitempty"`
	LineStyle *element.LineStyle `json:"lineStyle,omitempty"`
}

// NewAxis returns an axis with every field unset.
func NewAxis() Axis { return Axis{} }

// Type sets the axis scale.
func (a Axis) Type(t AxisType) Axis { a.f.Type = &t; return a }

// Name sets the axis name.
func (a Axis) Name(v string) Axis { a.f.Name = &v; return a }

// Data sets the category labels. Calling Data with no labels sets an empty
// list, which is still emitted.
func (a Axis) Data(labels ...string) Axis {
	a.f.Data = append(make([]string, 0, len(labels)), labels...)
	return a
}

// Min sets the lower bound of the scale.
func (a Axis) Min(v float64) Axis { a.f.Min = &v; return a }

// Max sets the upper bound of the scale.
func (a Axis) Max(v float64) Axis { a.f.Max = &v; return a }

// BoundaryGap leaves a gap at both ends of a category axis when true.
func (a Axis) BoundaryGap(v bool) Axis { a.f.BoundaryGap = &v; return a }

// AxisLabel sets the label rules.
func (a Axis) AxisLabel(l element.AxisLabel) Axis { a.f.AxisLabel = &l; return a }

// AxisLine sets axis line visibility and stroke.
func (a Axis) AxisLine(show bool, style *element.LineStyle) Axis {
	a.f.AxisLine = &axisLine{Show: &show, LineStyle: copyLineStyle(style)}
	return a
}

// SplitLine sets split line visibility and stroke.
func (a Axis) SplitLine(show bool, style *element.LineStyle) Axis {
	a.f.SplitLine = &splitLine{Show: &show, LineStyle: copyLineStyle(style)}
	return a
}

func copyLineStyle(s *element.LineStyle) *element.LineStyle {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// MarshalJSON renders the set fields only.
func (a Axis) MarshalJSON() ([]byte, error) { return json.Marshal(a.f) }
