// Package series provides the data series builders of a chart.
//
// Every series renders its "type" key first, followed by the fields that
// were explicitly set:
//
//	series.NewBar().Name("sales").Data(series.Values(5, 20, 36)...)
//	// {"type":"bar","name":"sales","data":[5,20,36]}
//
// Series values are immutable; setters return a modified copy.
package series
