package series

import (
	"encoding/json"
)

type pointKind uint8

const (
	pointValue pointKind = iota
	pointNamed
	pointPair
)

// DataPoint is one entry of a series data list. It renders as a plain
// number, a {"name","value"} object or an [x, y] pair depending on how it
// was constructed.
type DataPoint struct {
	kind  pointKind
	name  string
	value float64
	y     float64
}

// Value returns a plain numeric point.
func Value(v float64) DataPoint { return DataPoint{kind: pointValue, value: v} }

// NamedValue returns a point carrying a name, as used by pie slices.
func NamedValue(name string, v float64) DataPoint {
	return DataPoint{kind: pointNamed, name: name, value: v}
}

// Pair returns an [x, y] point, as used by scatter and value-axis line series.
func Pair(x, y float64) DataPoint { return DataPoint{kind: pointPair, value: x, y: y} }

// Values converts plain numbers to points.
func Values(vs ...float64) []DataPoint {
	points := make([]DataPoint, len(vs))
	for i, v := range vs {
		points[i] = Value(v)
	}
	return points
}

// MarshalJSON implements json.Marshaler.
func (p DataPoint) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case pointNamed:
		return json.Marshal(struct {
			Name  string  `json:"name"`
			Value float64 `json:"value"`
		}{p.name, p.value})
	case pointPair:
		return json.Marshal([2]float64{p.value, p.y})
	default:
		return json.Marshal(p.value)
	}
}

// UnmarshalJSON accepts the three rendered shapes.
func (p *DataPoint) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*p = Value(v)
		return nil
	}
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err == nil {
		*p = Pair(pair[0], pair[1])
		return nil
	}
	var named struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}
	if err := json.Unmarshal(data, &named); err != nil {
		return err
	}
	*p = NamedValue(named.Name, named.Value)
	return nil
}
