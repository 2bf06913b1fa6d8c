package series

import (
	"encoding/json"
	"slices"

	"github.com/matzehuels/chartkit/pkg/element"
)

// Type is the engine series type.
type Type string

// Series types.
const (
	TypeBar     Type = "bar"
	TypeLine    Type = "line"
	TypeScatter Type = "scatter"
	TypePie     Type = "pie"
)

// Series is one data series of a chart.
type Series interface {
	json.Marshaler
	// Type reports the series type rendered under the "type" key.
	Type() Type
}

var (
	_ Series = Bar{}
	_ Series = Line{}
	_ Series = Scatter{}
	_ Series = Pie{}
)

// common holds the fields shared by every series.
type common struct {
	Name      *string            `json:"name,omitempty"`
	Data      []DataPoint        `json:"data,omitzero"`
	ItemStyle *element.ItemStyle `json:"itemStyle,omitempty"`
	Label     *element.Label     `json:"label,omitempty"`
}

func (c common) withData(points []DataPoint) common {
	c.Data = append(make([]DataPoint, 0, len(points)), points...)
	return c
}

func (c common) withAppended(points []DataPoint) common {
	c.Data = append(slices.Clip(c.Data), points...)
	if c.Data == nil {
		c.Data = []DataPoint{}
	}
	return c
}
