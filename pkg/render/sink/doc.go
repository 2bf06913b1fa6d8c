// Package sink writes serialized chart documents as output artifacts.
//
// [JSON] pretty-prints the document. [HTML] embeds it in a standalone page
// that loads echarts from a CDN, attaches the chart to a sized element and
// refreshes the layout on window resize.
package sink
