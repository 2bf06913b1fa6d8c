package component

import (
	"encoding/json"

	"github.com/matzehuels/chartkit/pkg/element"
)

// Title is a chart heading.
type Title struct {
	f titleFields
}

type titleFields struct {
	Show      *bool              `json:"show,omitempty"`
	Text      *string            `json:"text,omitempty"`
	Subtext   *string            `json:"subtext,omitempty"`
	Left      *string            `json:"left,omitempty"`
	Top       *string            `json:"top,omitempty"`
	TextStyle *element.TextStyle `json:"textStyle,omitempty"`
}

// NewTitle returns a title with every field unset.
func NewTitle() Title { return Title{} }

// Show sets title visibility.
func (t Title) Show(v bool) Title { t.f.Show = &v; return t }

// Text sets the main title text.
func (t Title) Text(v string) Title { t.f.Text = &v; return t }

// Subtext sets the subtitle text.
func (t Title) Subtext(v string) Title { t.f.Subtext = &v; return t }

// Left sets the horizontal placement ("center", "left", "20%", "40").
func (t Title) Left(v string) Title { t.f.Left = &v; return t }

// Top sets the vertical placement.
func (t Title) Top(v string) Title { t.f.Top = &v; return t }

// TextStyle sets the main title text style.
func (t Title) TextStyle(s element.TextStyle) Title { t.f.TextStyle = &s; return t }

// MarshalJSON renders the set fields only.
func (t Title) MarshalJSON() ([]byte, error) { return json.Marshal(t.f) }

// Legend lists the series names.
type Legend struct {
	f legendFields
}

type legendFields struct {
	Show   *bool    `json:"show,omitempty"`
	Data   []string `json:"data,omitzero"`
	Orient *string  `json:"orient,omitempty"`
	Left   *string  `json:"left,omitempty"`
	Top    *string  `json:"top,omitempty"`
}

// NewLegend returns a legend with every field unset.
func NewLegend() Legend { return Legend{} }

// Show sets legend visibility.
func (l Legend) Show(v bool) Legend { l.f.Show = &v; return l }

// Data sets the listed series names. Calling Data with no names sets an
// empty list, which is still emitted.
func (l Legend) Data(names ...string) Legend {
	l.f.Data = append(make([]string, 0, len(names)), names...)
	return l
}

// Orient sets the layout direction ("horizontal", "vertical").
func (l Legend) Orient(v string) Legend { l.f.Orient = &v; return l }

// Left sets the horizontal placement.
func (l Legend) Left(v string) Legend { l.f.Left = &v; return l }

// Top sets the vertical placement.
func (l Legend) Top(v string) Legend { l.f.Top = &v; return l }

// MarshalJSON renders the set fields only.
func (l Legend) MarshalJSON() ([]byte, error) { return json.Marshal(l.f) }

// Trigger selects what a [Tooltip] reacts to.
type Trigger string

// Tooltip triggers.
const (
	TriggerItem Trigger = "item"
	TriggerAxis Trigger = "axis"
	TriggerNone Trigger = "none"
)

// Tooltip is the hover popup.
type Tooltip struct {
	f tooltipFields
}

type tooltipFields struct {
	Show      *bool              `json:"show,omitempty"`
	Trigger   *Trigger           `json:"trigger,omitempty"`
	Formatter *element.Formatter `json:"formatter,omitempty"`
}

// NewTooltip returns a tooltip with every field unset.
func NewTooltip() Tooltip { return Tooltip{} }

// Show sets tooltip visibility.
func (t Tooltip) Show(v bool) Tooltip { t.f.Show = &v; return t }

// Trigger sets the trigger.
func (t Tooltip) Trigger(v Trigger) Tooltip { t.f.Trigger = &v; return t }

// Formatter sets the tooltip template.
func (t Tooltip) Formatter(v element.Formatter) Tooltip { t.f.Formatter = &v; return t }

// MarshalJSON renders the set fields only.
func (t Tooltip) MarshalJSON() ([]byte, error) { return json.Marshal(t.f) }

// Grid is the rectangle the cartesian axes are drawn in.
type Grid struct {
	f gridFields
}

type gridFields struct {
	Left         *string `json:"left,omitempty"`
	Right        *string `json:"right,omitempty"`
	Top          *string `json:"top,omitempty"`
	Bottom       *string `json:"bottom,omitempty"`
	ContainLabel *bool   `json:"containLabel,omitempty"`
}

// NewGrid returns a grid with every field unset.
func NewGrid() Grid { return Grid{} }

// Left sets the left inset ("10%", "40").
func (g Grid) Left(v string) Grid { g.f.Left = &v; return g }

// Right sets the right inset.
func (g Grid) Right(v string) Grid { g.f.Right = &v; return g }

// Top sets the top inset.
func (g Grid) Top(v string) Grid { g.f.Top = &v; return g }

// Bottom sets the bottom inset.
func (g Grid) Bottom(v string) Grid { g.f.Bottom = &v; return g }

// ContainLabel keeps axis labels inside the grid when true.
func (g Grid) ContainLabel(v bool) Grid { g.f.ContainLabel = &v; return g }

// MarshalJSON renders the set fields only.
func (g Grid) MarshalJSON() ([]byte, error) { return json.Marshal(g.f) }
