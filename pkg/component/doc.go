// Package component provides the element builders that make up a chart: the
// graphic overlay primitives, titles, legends, tooltips, grids and axes.
//
// Every builder is an optional record. A builder constructed with no setters
// serializes to an empty object; each setter returns a new builder with
// exactly one field set, leaving the receiver untouched.
//
//	dot := component.NewGraphics().
//	    ID("marker").
//	    Type(component.GraphicCircle).
//	    Shape(component.NewShape().R(12)).
//	    Position(3.5, -2.0)
//	// {"id":"marker","type":"circle","shape":{"r":12},"position":[3.5,-2]}
//
// Tuple fields such as Position and Scale render as two-element arrays.
package component
