// Package chart provides the aggregate chart builder and its serializer.
//
// A [Chart] composes element builders from the component, series and
// element packages into the root configuration document handed to the
// rendering engine. [Serialize] produces that document.
//
// # Serialization rules
//
// Keys are lower camel case. Fields that were never set are absent from the
// output; fields set to a zero value (false, 0, an empty list) are present.
// Tuples such as a graphic's position render as arrays and easing curves
// render as their camelCase name. The output is deterministic: equal chart
// states produce byte-identical documents.
//
// # Example
//
//	c := chart.New().
//	    Title(component.NewTitle().Text("Weekly sales")).
//	    XAxis(component.NewAxis().Type(component.AxisCategory).Data("Mon", "Tue")).
//	    YAxis(component.NewAxis().Type(component.AxisValue)).
//	    Series(series.NewBar().Data(series.Values(120, 200)...))
//
//	doc, err := chart.Serialize(c)
package chart
