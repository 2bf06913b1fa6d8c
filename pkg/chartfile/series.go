package chartfile

import (
	"github.com/matzehuels/chartkit/pkg/element"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/series"
)

func (s SeriesDef) build() (series.Series, error) {
	var points []series.DataPoint
	if s.Data != nil {
		points = make([]series.DataPoint, len(s.Data))
		for i, v := range s.Data {
			p, err := dataPoint(v)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "data[%d]", i)
			}
			points[i] = p
		}
	}

	var style *element.ItemStyle
	if s.Color != nil {
		st := element.NewItemStyle().Color(element.ParseColor(*s.Color))
		style = &st
	}
	var label *element.Label
	if s.Label != nil {
		l := s.Label.build()
		label = &l
	}

	switch series.Type(s.Type) {
	case series.TypeBar:
		out := series.NewBar()
		if s.Name != nil {
			out = out.Name(*s.Name)
		}
		if points != nil {
			out = out.Data(points...)
		}
		if style != nil {
			out = out.ItemStyle(*style)
		}
		if label != nil {
			out = out.Label(*label)
		}
		if s.Stack != nil {
			out = out.Stack(*s.Stack)
		}
		if s.BarWidth != nil {
			out = out.BarWidth(*s.BarWidth)
		}
		return out, nil
	case series.TypeLine:
		out := series.NewLine()
		if s.Name != nil {
			out = out.Name(*s.Name)
		}
		if points != nil {
			out = out.Data(points...)
		}
		if style != nil {
			out = out.ItemStyle(*style)
		}
		if label != nil {
			out = out.Label(*label)
		}
		if s.Stack != nil {
			out = out.Stack(*s.Stack)
		}
		if s.Smooth != nil {
			out = out.Smooth(*s.Smooth)
		}
		if s.SymbolSize != nil {
			out = out.SymbolSize(*s.SymbolSize)
		}
		return out, nil
	case series.TypeScatter:
		out := series.NewScatter()
		if s.Name != nil {
			out = out.Name(*s.Name)
		}
		if points != nil {
			out = out.Data(points...)
		}
		if style != nil {
			out = out.ItemStyle(*style)
		}
		if label != nil {
			out = out.Label(*label)
		}
		if s.SymbolSize != nil {
			out = out.SymbolSize(*s.SymbolSize)
		}
		return out, nil
	case series.TypePie:
		out := series.NewPie()
		if s.Name != nil {
			out = out.Name(*s.Name)
		}
		if points != nil {
			out = out.Data(points...)
		}
		if style != nil {
			out = out.ItemStyle(*style)
		}
		if label != nil {
			out = out.Label(*label)
		}
		if s.Radius != nil {
			inner, outer, err := pair(s.Radius, "radius")
			if err != nil {
				return nil, err
			}
			out = out.Radius(inner, outer)
		}
		if s.Center != nil {
			x, y, err := pair(s.Center, "center")
			if err != nil {
				return nil, err
			}
			out = out.Center(x, y)
		}
		return out, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown series type %q (want bar, line, scatter or pie)", s.Type)
	}
}

func pair(values []string, key string) (string, string, error) {
	if len(values) != 2 {
		return "", "", errors.New(errors.ErrCodeInvalidInput, "%s needs 2 values, got %d", key, len(values))
	}
	return values[0], values[1], nil
}

// dataPoint converts one decoded data entry. Decoders produce int64, int,
// uint64 or float64 for numbers, []any for arrays and a string-keyed map
// for tables.
func dataPoint(v any) (series.DataPoint, error) {
	if n, ok := number(v); ok {
		return series.Value(n), nil
	}
	switch v := v.(type) {
	case []any:
		if len(v) != 2 {
			return series.DataPoint{}, errors.New(errors.ErrCodeInvalidInput, "pair needs 2 values, got %d", len(v))
		}
		x, okX := number(v[0])
		y, okY := number(v[1])
		if !okX || !okY {
			return series.DataPoint{}, errors.New(errors.ErrCodeInvalidInput, "pair values must be numbers")
		}
		return series.Pair(x, y), nil
	case map[string]any:
		for k := range v {
			if k != "name" && k != "value" {
				return series.DataPoint{}, errors.New(errors.ErrCodeInvalidInput, "unknown data key %q (want name or value)", k)
			}
		}
		name, _ := v["name"].(string)
		value, ok := number(v["value"])
		if !ok {
			return series.DataPoint{}, errors.New(errors.ErrCodeInvalidInput, "named value needs a numeric value")
		}
		return series.NamedValue(name, value), nil
	default:
		return series.DataPoint{}, errors.New(errors.ErrCodeInvalidInput, "unsupported data entry %v (%T)", v, v)
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
