package element

import (
	"encoding/json"
	"testing"
)

func marshalMap(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal(%s) error: %v", data, err)
	}
	return m
}

func TestAxisLabelEmpty(t *testing.T) {
	data, err := json.Marshal(NewAxisLabel())
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("json.Marshal(NewAxisLabel()) = %s, want {}", data)
	}
}

func TestAxisLabelFalsyValuesEmitted(t *testing.T) {
	label := NewAxisLabel().
		Show(false).
		Distance(0).
		Rotate(0).
		Inside(false).
		Padding()

	m := marshalMap(t, label)

	for _, key := range []string{"show", "distance", "rotate", "inside", "padding"} {
		if _, ok := m[key]; !ok {
			t.Errorf("key %q missing from %v", key, m)
		}
	}
	for _, key := range []string{"fontSize", "color", "formatter", "interval", "textStyle"} {
		if _, ok := m[key]; ok {
			t.Errorf("unset key %q present in %v", key, m)
		}
	}
	if m["show"] != false {
		t.Errorf("show = %v, want false", m["show"])
	}
	if pad, ok := m["padding"].([]any); !ok || len(pad) != 0 {
		t.Errorf("padding = %v, want []", m["padding"])
	}
}

func TestAxisLabelFull(t *testing.T) {
	label := NewAxisLabel().
		Show(true).
		Distance(8).
		FontSize(12).
		Color(Hex("#333")).
		Formatter("{value} kg").
		Rotate(45).
		Interval(2).
		Inside(true).
		Padding(1, 2, 3, 4).
		TextStyle(NewTextStyle().FontWeight("bold"))

	data, err := json.Marshal(label)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	want := `{"show":true,"distance":8,"fontSize":12,"color":"#333","formatter":"{value} kg","rotate":45,"interval":2,"inside":true,"padding":[1,2,3,4],"textStyle":{"fontWeight":"bold"}}`
	if string(data) != want {
		t.Errorf("json.Marshal() =\n%s\nwant\n%s", data, want)
	}
}

func TestAxisLabelSettersReturnDistinctValues(t *testing.T) {
	base := NewAxisLabel().FontSize(10)
	rotated := base.Rotate(30)
	padded := base.Padding(4)

	if _, ok := marshalMap(t, base)["rotate"]; ok {
		t.Error("Rotate() on a derived label changed the base label")
	}
	if _, ok := marshalMap(t, rotated)["padding"]; ok {
		t.Error("Padding() on a sibling label leaked into another derived label")
	}
	if _, ok := marshalMap(t, padded)["fontSize"]; !ok {
		t.Error("derived label lost a field set on its base")
	}
}

func TestAxisLabelLastSetWins(t *testing.T) {
	label := NewAxisLabel().Rotate(10).Rotate(20)
	if got := marshalMap(t, label)["rotate"]; got != float64(20) {
		t.Errorf("rotate = %v, want 20", got)
	}
}

func TestStyleRecords(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"empty text style", NewTextStyle(), `{}`},
		{"text style", NewTextStyle().Color(Named("red")).FontSize(0).LineHeight(20), `{"color":"red","fontSize":0,"lineHeight":20}`},
		{"line style", NewLineStyle().Width(2).Type("dashed"), `{"width":2,"type":"dashed"}`},
		{"item style", NewItemStyle().BorderWidth(0).Opacity(0.5), `{"borderWidth":0,"opacity":0.5}`},
		{"label", NewLabel().Show(true).Position("top").Formatter("{c}"), `{"show":true,"position":"top","formatter":"{c}"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatalf("json.Marshal() error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("json.Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}
