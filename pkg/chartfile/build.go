package chartfile

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/component"
	"github.com/matzehuels/chartkit/pkg/element"
	"github.com/matzehuels/chartkit/pkg/errors"
)

// Settings are the attach settings carried by a definition.
type Settings struct {
	Theme     chart.Theme
	Width     *uint32
	Height    *uint32
	ElementID string
}

// Settings resolves the theme and size keys.
func (d *Definition) Settings() (Settings, error) {
	theme, err := chart.ParseTheme(d.Theme)
	if err != nil {
		return Settings{}, err
	}
	s := Settings{Theme: theme, Width: d.Width, Height: d.Height, ElementID: d.ElementID}
	if s.ElementID != "" {
		if err := errors.ValidateElementID(s.ElementID); err != nil {
			return Settings{}, err
		}
	}
	return s, nil
}

// Chart builds the chart the definition describes.
func (d *Definition) Chart() (chart.Chart, error) {
	c := chart.New()
	for _, t := range d.Title {
		c = c.Title(t.build())
	}
	if d.Tooltip != nil {
		c = c.Tooltip(d.Tooltip.build())
	}
	if d.Legend != nil {
		c = c.Legend(d.Legend.build())
	}
	if d.Grid != nil {
		c = c.Grid(d.Grid.build())
	}
	for i, a := range d.XAxis {
		axis, err := a.build()
		if err != nil {
			return c, fmt.Errorf("x_axis[%d]: %w", i, err)
		}
		c = c.XAxis(axis)
	}
	for i, a := range d.YAxis {
		axis, err := a.build()
		if err != nil {
			return c, fmt.Errorf("y_axis[%d]: %w", i, err)
		}
		c = c.YAxis(axis)
	}
	for i, s := range d.Series {
		built, err := s.build()
		if err != nil {
			return c, fmt.Errorf("series[%d]: %w", i, err)
		}
		c = c.Series(built)
	}
	for i, g := range d.Graphic {
		built, err := g.build()
		if err != nil {
			return c, fmt.Errorf("graphic[%d]: %w", i, err)
		}
		c = c.Graphic(built)
	}
	if d.Color != nil {
		colors := make([]element.Color, len(d.Color))
		for i, s := range d.Color {
			colors[i] = element.ParseColor(s)
		}
		c = c.Color(colors...)
	}
	if d.BackgroundColor != nil {
		c = c.BackgroundColor(element.ParseColor(*d.BackgroundColor))
	}
	if d.TextStyle != nil {
		c = c.TextStyle(d.TextStyle.build())
	}
	if d.Animation != nil {
		c = c.Animation(*d.Animation)
	}
	if d.AnimationDuration != nil {
		c = c.AnimationDuration(*d.AnimationDuration)
	}
	if d.AnimationEasing != nil {
		e, err := element.ParseEasing(*d.AnimationEasing)
		if err != nil {
			return c, err
		}
		c = c.AnimationEasing(e)
	}
	return c, nil
}

func (t TitleDef) build() component.Title {
	out := component.NewTitle()
	if t.Text != nil {
		out = out.Text(*t.Text)
	}
	if t.Subtext != nil {
		out = out.Subtext(*t.Subtext)
	}
	if t.Left != nil {
		out = out.Left(*t.Left)
	}
	if t.Top != nil {
		out = out.Top(*t.Top)
	}
	if t.TextStyle != nil {
		out = out.TextStyle(t.TextStyle.build())
	}
	return out
}

func (t TooltipDef) build() component.Tooltip {
	out := component.NewTooltip()
	if t.Show != nil {
		out = out.Show(*t.Show)
	}
	if t.Trigger != nil {
		out = out.Trigger(component.Trigger(*t.Trigger))
	}
	if t.Formatter != nil {
		out = out.Formatter(element.Formatter(*t.Formatter))
	}
	return out
}

func (l LegendDef) build() component.Legend {
	out := component.NewLegend()
	if l.Show != nil {
		out = out.Show(*l.Show)
	}
	if l.Data != nil {
		out = out.Data(l.Data...)
	}
	if l.Orient != nil {
		out = out.Orient(*l.Orient)
	}
	if l.Left != nil {
		out = out.Left(*l.Left)
	}
	if l.Top != nil {
		out = out.Top(*l.Top)
	}
	return out
}

func (g GridDef) build() component.Grid {
	out := component.NewGrid()
	if g.Left != nil {
		out = out.Left(*g.Left)
	}
	if g.Right != nil {
		out = out.Right(*g.Right)
	}
	if g.Top != nil {
		out = out.Top(*g.Top)
	}
	if g.Bottom != nil {
		out = out.Bottom(*g.Bottom)
	}
	if g.ContainLabel != nil {
		out = out.ContainLabel(*g.ContainLabel)
	}
	return out
}

func (a AxisDef) build() (component.Axis, error) {
	out := component.NewAxis()
	if a.Type != nil {
		switch t := component.AxisType(*a.Type); t {
		case component.AxisCategory, component.AxisValue, component.AxisTime, component.AxisLog:
			out = out.Type(t)
		default:
			return out, errors.New(errors.ErrCodeInvalidInput, "unknown axis type %q", *a.Type)
		}
	}
	if a.Name != nil {
		out = out.Name(*a.Name)
	}
	if a.Data != nil {
		out = out.Data(a.Data...)
	}
	if a.Min != nil {
		out = out.Min(*a.Min)
	}
	if a.Max != nil {
		out = out.Max(*a.Max)
	}
	if a.BoundaryGap != nil {
		out = out.BoundaryGap(*a.BoundaryGap)
	}
	if a.SplitLine != nil {
		out = out.SplitLine(*a.SplitLine, nil)
	}
	if a.Label != nil {
		out = out.AxisLabel(a.Label.build())
	}
	return out, nil
}

func (l AxisLabelDef) build() element.AxisLabel {
	out := element.NewAxisLabel()
	if l.Show != nil {
		out = out.Show(*l.Show)
	}
	if l.Distance != nil {
		out = out.Distance(*l.Distance)
	}
	if l.FontSize != nil {
		out = out.FontSize(*l.FontSize)
	}
	if l.Color != nil {
		out = out.Color(element.ParseColor(*l.Color))
	}
	if l.Formatter != nil {
		out = out.Formatter(element.Formatter(*l.Formatter))
	}
	if l.Rotate != nil {
		out = out.Rotate(*l.Rotate)
	}
	if l.Interval != nil {
		out = out.Interval(*l.Interval)
	}
	if l.Inside != nil {
		out = out.Inside(*l.Inside)
	}
	if l.Padding != nil {
		out = out.Padding(l.Padding...)
	}
	return out
}

func (t TextDef) build() element.TextStyle {
	out := element.NewTextStyle()
	if t.Color != nil {
		out = out.Color(element.ParseColor(*t.Color))
	}
	if t.FontStyle != nil {
		out = out.FontStyle(*t.FontStyle)
	}
	if t.FontWeight != nil {
		out = out.FontWeight(*t.FontWeight)
	}
	if t.FontFamily != nil {
		out = out.FontFamily(*t.FontFamily)
	}
	if t.FontSize != nil {
		out = out.FontSize(*t.FontSize)
	}
	if t.LineHeight != nil {
		out = out.LineHeight(*t.LineHeight)
	}
	return out
}

func (l LabelDef) build() element.Label {
	out := element.NewLabel()
	if l.Show != nil {
		out = out.Show(*l.Show)
	}
	if l.Position != nil {
		out = out.Position(*l.Position)
	}
	if l.Formatter != nil {
		out = out.Formatter(element.Formatter(*l.Formatter))
	}
	if l.Color != nil {
		out = out.Color(element.ParseColor(*l.Color))
	}
	if l.FontSize != nil {
		out = out.FontSize(*l.FontSize)
	}
	return out
}

func (g GraphicDef) build() (component.Graphics, error) {
	out := component.NewGraphics()
	if g.ID != nil {
		out = out.ID(*g.ID)
	}
	if g.Type != nil {
		out = out.Type(component.GraphicType(*g.Type))
	}
	if g.Z != nil {
		out = out.Z(*g.Z)
	}
	if g.Shape != nil {
		out = out.Shape(g.Shape.build())
	}
	if g.Position != nil {
		if len(g.Position) != 2 {
			return out, errors.New(errors.ErrCodeInvalidInput, "position needs 2 values, got %d", len(g.Position))
		}
		out = out.Position(g.Position[0], g.Position[1])
	}
	if g.Rotation != nil {
		out = out.Rotation(*g.Rotation)
	}
	if g.Scale != nil {
		if len(g.Scale) != 2 {
			return out, errors.New(errors.ErrCodeInvalidInput, "scale needs 2 values, got %d", len(g.Scale))
		}
		out = out.Scale(g.Scale[0], g.Scale[1])
	}
	if g.Fill != nil || g.Stroke != nil || g.LineWidth != nil {
		style := component.NewStyle()
		if g.Fill != nil {
			style = style.Fill(element.ParseColor(*g.Fill))
		}
		if g.Stroke != nil {
			style = style.Stroke(element.ParseColor(*g.Stroke))
		}
		if g.LineWidth != nil {
			style = style.LineWidth(*g.LineWidth)
		}
		out = out.Style(style)
	}
	if g.Animation != nil {
		anim, err := g.Animation.build()
		if err != nil {
			return out, err
		}
		out = out.Animation(anim)
	}
	if g.Invisible != nil {
		out = out.Invisible(*g.Invisible)
	}
	return out, nil
}

func (s ShapeDef) build() component.Shape {
	out := component.NewShape()
	if s.R != nil {
		out = out.R(*s.R)
	}
	if s.Width != nil {
		out = out.Width(*s.Width)
	}
	if s.Height != nil {
		out = out.Height(*s.Height)
	}
	if s.X != nil {
		out = out.X(*s.X)
	}
	if s.Y != nil {
		out = out.Y(*s.Y)
	}
	return out
}

func (a AnimationDef) build() (component.GraphicAnimation, error) {
	out := component.NewGraphicAnimation()
	if a.Duration != nil {
		out = out.Duration(*a.Duration)
	}
	if a.Easing != nil {
		e, err := element.ParseEasing(*a.Easing)
		if err != nil {
			return out, err
		}
		out = out.Easing(e)
	}
	if a.Delay != nil {
		out = out.Delay(*a.Delay)
	}
	return out, nil
}
