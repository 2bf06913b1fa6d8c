// Package element provides the primitive value types and small option records
// shared by every chart component.
//
// # Value Types
//
// [Color], [Formatter] and [Easing] are plain values with a fixed wire
// representation: colors render as CSS strings or gradient objects, formatters
// as template strings, easings as their lower camel case name ("cubicInOut").
//
// # Option Records
//
// [TextStyle], [LineStyle], [ItemStyle], [Label] and [AxisLabel] are optional
// records. Every field starts unset and is only emitted once a setter assigns
// it, regardless of the value assigned:
//
//	label := element.NewAxisLabel().Show(false).Rotate(0)
//	// {"show":false,"rotate":0}
//
// Setters use value receivers and return the updated record, so a record can
// be shared as a template and specialized without affecting the original:
//
//	base := element.NewTextStyle().FontSize(12)
//	bold := base.FontWeight("bold") // base is unchanged
//
// # Animation
//
// [Animation] describes a resize transition. [DefaultAnimation] yields a
// 100 duration with [Linear] easing, and [NewAnimation] falls back to [Linear]
// when no easing is given.
package element
