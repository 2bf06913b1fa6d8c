package component

import (
	"encoding/json"

	"github.com/matzehuels/chartkit/pkg/element"
)

// GraphicType selects the primitive drawn by a [Graphics] overlay.
type GraphicType string

// Graphic primitives understood by the rendering engine.
const (
	GraphicCircle GraphicType = "circle"
	GraphicRect   GraphicType = "rect"
	GraphicRing   GraphicType = "ring"
	GraphicText   GraphicType = "text"
	GraphicImage  GraphicType = "image"
	GraphicLine   GraphicType = "line"
	GraphicGroup  GraphicType = "group"
)

// Graphics is one visual overlay drawn on top of the chart.
type Graphics struct {
	f graphicsFields
}

type graphicsFields struct {
	ID        *string           `json:"id,omitempty"`
	Type      *GraphicType      `json:"type,omitempty"`
	Z         *float64          `json:"z,omitempty"`
	Shape     *Shape            `json:"shape,omitempty"`
	Position  *[2]float64       `json:"position,omitempty"`
	Rotation  *float64          `json:"rotation,omitempty"`
	Scale     *[2]float64       `json:"scale,omitempty"`
	Style     *Style            `json:"style,omitempty"`
	Animation *GraphicAnimation `json:"animation,omitempty"`
	Invisible *bool             `json:"invisible,omitempty"`
}

// NewGraphics returns an overlay with every field unset.
func NewGraphics() Graphics { return Graphics{} }

// ID sets the overlay identity, used by the engine to merge updates.
func (g Graphics) ID(id string) Graphics { g.f.ID = &id; return g }

// Type sets the primitive kind.
func (g Graphics) Type(t GraphicType) Graphics { g.f.Type = &t; return g }

// Z sets the stacking order.
func (g Graphics) Z(z float64) Graphics { g.f.Z = &z; return g }

// Shape sets the geometry.
func (g Graphics) Shape(s Shape) Graphics { g.f.Shape = &s; return g }

// Position sets the placement; it renders as [x, y].
func (g Graphics) Position(x, y float64) Graphics {
	p := [2]float64{x, y}
	g.f.Position = &p
	return g
}

// Rotation sets the rotation. The unit is left to the caller.
func (g Graphics) Rotation(r float64) Graphics { g.f.Rotation = &r; return g }

// Scale sets the scale factors; it renders as [sx, sy].
func (g Graphics) Scale(x, y float64) Graphics {
	s := [2]float64{x, y}
	g.f.Scale = &s
	return g
}

// Style sets fill, stroke and line width.
func (g Graphics) Style(s Style) Graphics { g.f.Style = &s; return g }

// Animation sets the overlay transition.
func (g Graphics) Animation(a GraphicAnimation) Graphics { g.f.Animation = &a; return g }

// Invisible hides the overlay when true.
func (g Graphics) Invisible(v bool) Graphics { g.f.Invisible = &v; return g }

// MarshalJSON renders the set fields only.
func (g Graphics) MarshalJSON() ([]byte, error) { return json.Marshal(g.f) }

// Shape is the geometry of a graphic overlay: r for circles, width, height,
// x and y for rectangles.
type Shape struct {
	f shapeFields
}

type shapeFields struct {
	R      *float64 `json:"r,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
}

// NewShape returns a shape with every field unset.
func NewShape() Shape { return Shape{} }

// Circle is shorthand for NewShape().R(r).
func Circle(r float64) Shape { return NewShape().R(r) }

// Rect is shorthand for a rectangle at (x, y) of the given size.
func Rect(x, y, width, height float64) Shape {
	return NewShape().X(x).Y(y).Width(width).Height(height)
}

// R sets the circle radius.
func (s Shape) R(v float64) Shape { s.f.R = &v; return s }

// Width sets the rectangle width.
func (s Shape) Width(v float64) Shape { s.f.Width = &v; return s }

// Height sets the rectangle height.
func (s Shape) Height(v float64) Shape { s.f.Height = &v; return s }

// X sets the horizontal origin.
func (s Shape) X(v float64) Shape { s.f.X = &v; return s }

// Y sets the vertical origin.
func (s Shape) Y(v float64) Shape { s.f.Y = &v; return s }

// MarshalJSON renders the set fields only.
func (s Shape) MarshalJSON() ([]byte, error) { return json.Marshal(s.f) }

// Style is the paint of a graphic overlay.
type Style struct {
	f styleFields
}

type styleFields struct {
	Fill      *element.Color `json:"fill,omitempty"`
	Stroke    *element.Color `json:"stroke,omitempty"`
	LineWidth *float64       `json:"lineWidth,omitempty"`
}

// NewStyle returns a style with every field unset.
func NewStyle() Style { return Style{} }

// Fill sets the fill color.
func (s Style) Fill(c element.Color) Style { s.f.Fill = &c; return s }

// Stroke sets the stroke color.
func (s Style) Stroke(c element.Color) Style { s.f.Stroke = &c; return s }

// LineWidth sets the stroke width.
func (s Style) LineWidth(v float64) Style { s.f.LineWidth = &v; return s }

// MarshalJSON renders the set fields only.
func (s Style) MarshalJSON() ([]byte, error) { return json.Marshal(s.f) }

// GraphicAnimation is the transition of a graphic overlay. Unlike
// [element.Animation] every field is optional.
type GraphicAnimation struct {
	f graphicAnimationFields
}

type graphicAnimationFields struct {
	Duration *uint64         `json:"duration,omitempty"`
	Easing   *element.Easing `json:"easing,omitempty"`
	Delay    *uint64         `json:"delay,omitempty"`
}

// NewGraphicAnimation returns an animation with every field unset.
func NewGraphicAnimation() GraphicAnimation { return GraphicAnimation{} }

// Duration sets the transition duration.
func (a GraphicAnimation) Duration(v uint64) GraphicAnimation { a.f.Duration = &v; return a }

// Easing sets the easing curve.
func (a GraphicAnimation) Easing(e element.Easing) GraphicAnimation { a.f.Easing = &e; return a }

// Delay sets the delay before the transition starts.
func (a GraphicAnimation) Delay(v uint64) GraphicAnimation { a.f.Delay = &v; return a }

// MarshalJSON renders the set fields only.
func (a GraphicAnimation) MarshalJSON() ([]byte, error) { return json.Marshal(a.f) }
