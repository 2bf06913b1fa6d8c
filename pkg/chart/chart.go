package chart

import (
	"encoding/json"
	"slices"

	"github.com/matzehuels/chartkit/pkg/component"
	"github.com/matzehuels/chartkit/pkg/element"
	"github.com/matzehuels/chartkit/pkg/series"
)

// Chart is the root configuration document. The zero value is an empty
// chart that serializes to {}.
//
// List setters (Title, XAxis, YAxis, Series, Graphic, Color) append; all
// other setters replace. Derived charts never share list storage with the
// chart they were derived from.
type Chart struct {
	f chartFields
}

type chartFields struct {
	Title             []component.Title    `json:"title,omitzero"`
	Tooltip           *component.Tooltip   `json:"tooltip,omitempty"`
	Legend            *component.Legend    `json:"legend,omitempty"`
	Grid              *component.Grid      `json:"grid,omitempty"`
	XAxis             []component.Axis     `json:"xAxis,omitzero"`
	YAxis             []component.Axis     `json:"yAxis,omitzero"`
	Series            []series.Series      `json:"series,omitzero"`
	Graphic           []component.Graphics `json:"graphic,omitzero"`
	Color             []element.Color      `json:"color,omitzero"`
	BackgroundColor   *element.Color       `json:"backgroundColor,omitempty"`
	TextStyle         *element.TextStyle   `json:"textStyle,omitempty"`
	Animation         *bool                `json:"animation,omitempty"`
	AnimationDuration *uint32              `json:"animationDuration,omitempty"`
	AnimationEasing   *element.Easing      `json:"animationEasing,omitempty"`
}

// New returns an empty chart.
func New() Chart { return Chart{} }

// Title appends a title component.
func (c Chart) Title(t component.Title) Chart {
	c.f.Title = append(slices.Clip(c.f.Title), t)
	return c
}

// Tooltip sets the tooltip component.
func (c Chart) Tooltip(t component.Tooltip) Chart { c.f.Tooltip = &t; return c }

// Legend sets the legend component.
func (c Chart) Legend(l component.Legend) Chart { c.f.Legend = &l; return c }

// Grid sets the cartesian grid.
func (c Chart) Grid(g component.Grid) Chart { c.f.Grid = &g; return c }

// XAxis appends a horizontal axis.
func (c Chart) XAxis(a component.Axis) Chart {
	c.f.XAxis = append(slices.Clip(c.f.XAxis), a)
	return c
}

// YAxis appends a vertical axis.
func (c Chart) YAxis(a component.Axis) Chart {
	c.f.YAxis = append(slices.Clip(c.f.YAxis), a)
	return c
}

// Series appends a data series. A nil series is ignored.
func (c Chart) Series(s series.Series) Chart {
	if s == nil {
		return c
	}
	c.f.Series = append(slices.Clip(c.f.Series), s)
	return c
}

// Graphic appends a graphic overlay.
func (c Chart) Graphic(g component.Graphics) Chart {
	c.f.Graphic = append(slices.Clip(c.f.Graphic), g)
	return c
}

// Color appends colors to the series palette. Calling Color with no
// arguments sets an empty palette, which is still emitted.
func (c Chart) Color(colors ...element.Color) Chart {
	c.f.Color = append(slices.Clip(c.f.Color), colors...)
	if c.f.Color == nil {
		c.f.Color = []element.Color{}
	}
	return c
}

// BackgroundColor sets the canvas background.
func (c Chart) BackgroundColor(v element.Color) Chart { c.f.BackgroundColor = &v; return c }

// TextStyle sets the global text style.
func (c Chart) TextStyle(s element.TextStyle) Chart { c.f.TextStyle = &s; return c }

// Animation turns the initial animation on or off.
func (c Chart) Animation(v bool) Chart { c.f.Animation = &v; return c }

// AnimationDuration sets the initial animation duration.
func (c Chart) AnimationDuration(v uint32) Chart { c.f.AnimationDuration = &v; return c }

// AnimationEasing sets the initial animation easing curve.
func (c Chart) AnimationEasing(e element.Easing) Chart { c.f.AnimationEasing = &e; return c }

// SeriesCount returns the number of series.
func (c Chart) SeriesCount() int { return len(c.f.Series) }

// MarshalJSON implements json.Marshaler.
func (c Chart) MarshalJSON() ([]byte, error) { return json.Marshal(c.f) }
