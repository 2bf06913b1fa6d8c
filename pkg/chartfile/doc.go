// Package chartfile decodes declarative chart definitions.
//
// A definition is a TOML, YAML or JSON document with snake_case keys that
// mirrors the chart builder. Every optional key that is absent stays unset
// in the built chart, so a file only produces the fields it names.
//
//	theme = "dark"
//	width = 800
//	height = 400
//
//	[[title]]
//	text = "Weekly sales"
//
//	[[x_axis]]
//	type = "category"
//	data = ["Mon", "Tue", "Wed"]
//
//	[[y_axis]]
//	type = "value"
//
//	[[series]]
//	type = "bar"
//	name = "sales"
//	data = [120, 200, 150]
//
// [Load] picks the decoder from the file extension.
package chartfile
