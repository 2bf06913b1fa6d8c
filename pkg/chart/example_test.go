package chart_test

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/component"
	"github.com/matzehuels/chartkit/pkg/element"
	"github.com/matzehuels/chartkit/pkg/series"
)

func ExampleSerialize() {
	c := chart.New().
		XAxis(component.NewAxis().Type(component.AxisCategory).Data("Mon", "Tue", "Wed")).
		YAxis(component.NewAxis().Type(component.AxisValue)).
		Series(series.NewLine().Data(series.Values(820, 932, 901)...).Smooth(true))

	doc, err := chart.Serialize(c)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(doc))
	// Output:
	// {"xAxis":[{"type":"category","data":["Mon","Tue","Wed"]}],"yAxis":[{"type":"value"}],"series":[{"type":"line","data":[820,932,901],"smooth":true}]}
}

func ExampleChart_Graphic() {
	badge := component.NewGraphics().
		Type(component.GraphicCircle).
		Shape(component.Circle(10)).
		Position(3.5, -2.0).
		Style(component.NewStyle().Fill(element.Named("tomato"))).
		Animation(component.NewGraphicAnimation().Easing(element.QuadraticInOut))

	fmt.Println(string(chart.MustSerialize(chart.New().Graphic(badge))))
	// Output:
	// {"graphic":[{"type":"circle","shape":{"r":10},"position":[3.5,-2],"style":{"fill":"tomato"},"animation":{"easing":"quadraticInOut"}}]}
}

func ExampleParseTheme() {
	th, err := chart.ParseTheme("dark")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(th.Name(), th.Builtin())
	// Output: dark true
}
