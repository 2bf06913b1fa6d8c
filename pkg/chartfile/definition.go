package chartfile

// Definition is a decoded chart file.
type Definition struct {
	Theme     string  `toml:"theme" yaml:"theme" json:"theme"`
	Width     *uint32 `toml:"width" yaml:"width" json:"width"`
	Height    *uint32 `toml:"height" yaml:"height" json:"height"`
	ElementID string  `toml:"element_id" yaml:"element_id" json:"element_id"`

	Title             []TitleDef   `toml:"title" yaml:"title" json:"title"`
	Tooltip           *TooltipDef  `toml:"tooltip" yaml:"tooltip" json:"tooltip"`
	Legend            *LegendDef   `toml:"legend" yaml:"legend" json:"legend"`
	Grid              *GridDef     `toml:"grid" yaml:"grid" json:"grid"`
	XAxis             []AxisDef    `toml:"x_axis" yaml:"x_axis" json:"x_axis"`
	YAxis             []AxisDef    `toml:"y_axis" yaml:"y_axis" json:"y_axis"`
	Series            []SeriesDef  `toml:"series" yaml:"series" json:"series"`
	Graphic           []GraphicDef `toml:"graphic" yaml:"graphic" json:"graphic"`
	Color             []string     `toml:"color" yaml:"color" json:"color"`
	BackgroundColor   *string      `toml:"background_color" yaml:"background_color" json:"background_color"`
	TextStyle         *TextDef     `toml:"text_style" yaml:"text_style" json:"text_style"`
	Animation         *bool        `toml:"animation" yaml:"animation" json:"animation"`
	AnimationDuration *uint32      `toml:"animation_duration" yaml:"animation_duration" json:"animation_duration"`
	AnimationEasing   *string      `toml:"animation_easing" yaml:"animation_easing" json:"animation_easing"`
}

// TitleDef describes a title component.
type TitleDef struct {
	Text      *string  `toml:"text" yaml:"text" json:"text"`
	Subtext   *string  `toml:"subtext" yaml:"subtext" json:"subtext"`
	Left      *string  `toml:"left" yaml:"left" json:"left"`
	Top       *string  `toml:"top" yaml:"top" json:"top"`
	TextStyle *TextDef `toml:"text_style" yaml:"text_style" json:"text_style"`
}

// TooltipDef describes the tooltip component.
type TooltipDef struct {
	Show      *bool   `toml:"show" yaml:"show" json:"show"`
	Trigger   *string `toml:"trigger" yaml:"trigger" json:"trigger"`
	Formatter *string `toml:"formatter" yaml:"formatter" json:"formatter"`
}

// LegendDef describes the legend component.
type LegendDef struct {
	Show   *bool    `toml:"show" yaml:"show" json:"show"`
	Data   []string `toml:"data" yaml:"data" json:"data"`
	Orient *string  `toml:"orient" yaml:"orient" json:"orient"`
	Left   *string  `toml:"left" yaml:"left" json:"left"`
	Top    *string  `toml:"top" yaml:"top" json:"top"`
}

// GridDef describes the cartesian grid.
type GridDef struct {
	Left         *string `toml:"left" yaml:"left" json:"left"`
	Right        *string `toml:"right" yaml:"right" json:"right"`
	Top          *string `toml:"top" yaml:"top" json:"top"`
	Bottom       *string `toml:"bottom" yaml:"bottom" json:"bottom"`
	ContainLabel *bool   `toml:"contain_label" yaml:"contain_label" json:"contain_label"`
}

// AxisDef describes one axis.
type AxisDef struct {
	Type        *string       `toml:"type" yaml:"type" json:"type"`
	Name        *string       `toml:"name" yaml:"name" json:"name"`
	Data        []string      `toml:"data" yaml:"data" json:"data"`
	Min         *float64      `toml:"min" yaml:"min" json:"min"`
	Max         *float64      `toml:"max" yaml:"max" json:"max"`
	BoundaryGap *bool         `toml:"boundary_gap" yaml:"boundary_gap" json:"boundary_gap"`
	SplitLine   *bool         `toml:"split_line" yaml:"split_line" json:"split_line"`
	Label       *AxisLabelDef `toml:"label" yaml:"label" json:"label"`
}

// AxisLabelDef describes axis label rules.
type AxisLabelDef struct {
	Show      *bool     `toml:"show" yaml:"show" json:"show"`
	Distance  *float64  `toml:"distance" yaml:"distance" json:"distance"`
	FontSize  *float64  `toml:"font_size" yaml:"font_size" json:"font_size"`
	Color     *string   `toml:"color" yaml:"color" json:"color"`
	Formatter *string   `toml:"formatter" yaml:"formatter" json:"formatter"`
	Rotate    *float64  `toml:"rotate" yaml:"rotate" json:"rotate"`
	Interval  *float64  `toml:"interval" yaml:"interval" json:"interval"`
	Inside    *bool     `toml:"inside" yaml:"inside" json:"inside"`
	Padding   []float64 `toml:"padding" yaml:"padding" json:"padding"`
}

// TextDef describes a text style.
type TextDef struct {
	Color      *string  `toml:"color" yaml:"color" json:"color"`
	FontStyle  *string  `toml:"font_style" yaml:"font_style" json:"font_style"`
	FontWeight *string  `toml:"font_weight" yaml:"font_weight" json:"font_weight"`
	FontFamily *string  `toml:"font_family" yaml:"font_family" json:"font_family"`
	FontSize   *float64 `toml:"font_size" yaml:"font_size" json:"font_size"`
	LineHeight *float64 `toml:"line_height" yaml:"line_height" json:"line_height"`
}

// SeriesDef describes one series. Data entries are numbers, [x, y] pairs
// or tables with name and value keys.
type SeriesDef struct {
	Type       string    `toml:"type" yaml:"type" json:"type"`
	Name       *string   `toml:"name" yaml:"name" json:"name"`
	Data       []any     `toml:"data" yaml:"data" json:"data"`
	Color      *string   `toml:"color" yaml:"color" json:"color"`
	Stack      *string   `toml:"stack" yaml:"stack" json:"stack"`
	Smooth     *bool     `toml:"smooth" yaml:"smooth" json:"smooth"`
	SymbolSize *float64  `toml:"symbol_size" yaml:"symbol_size" json:"symbol_size"`
	BarWidth   *string   `toml:"bar_width" yaml:"bar_width" json:"bar_width"`
	Radius     []string  `toml:"radius" yaml:"radius" json:"radius"`
	Center     []string  `toml:"center" yaml:"center" json:"center"`
	Label      *LabelDef `toml:"label" yaml:"label" json:"label"`
}

// LabelDef describes a series label.
type LabelDef struct {
	Show      *bool    `toml:"show" yaml:"show" json:"show"`
	Position  *string  `toml:"position" yaml:"position" json:"position"`
	Formatter *string  `toml:"formatter" yaml:"formatter" json:"formatter"`
	Color     *string  `toml:"color" yaml:"color" json:"color"`
	FontSize  *float64 `toml:"font_size" yaml:"font_size" json:"font_size"`
}

// GraphicDef describes a graphic overlay.
type GraphicDef struct {
	ID        *string       `toml:"id" yaml:"id" json:"id"`
	Type      *string       `toml:"type" yaml:"type" json:"type"`
	Z         *float64      `toml:"z" yaml:"z" json:"z"`
	Shape     *ShapeDef     `toml:"shape" yaml:"shape" json:"shape"`
	Position  []float64     `toml:"position" yaml:"position" json:"position"`
	Rotation  *float64      `toml:"rotation" yaml:"rotation" json:"rotation"`
	Scale     []float64     `toml:"scale" yaml:"scale" json:"scale"`
	Fill      *string       `toml:"fill" yaml:"fill" json:"fill"`
	Stroke    *string       `toml:"stroke" yaml:"stroke" json:"stroke"`
	LineWidth *float64      `toml:"line_width" yaml:"line_width" json:"line_width"`
	Animation *AnimationDef `toml:"animation" yaml:"animation" json:"animation"`
	Invisible *bool         `toml:"invisible" yaml:"invisible" json:"invisible"`
}

// ShapeDef describes graphic geometry.
type ShapeDef struct {
	R      *float64 `toml:"r" yaml:"r" json:"r"`
	Width  *float64 `toml:"width" yaml:"width" json:"width"`
	Height *float64 `toml:"height" yaml:"height" json:"height"`
	X      *float64 `toml:"x" yaml:"x" json:"x"`
	Y      *float64 `toml:"y" yaml:"y" json:"y"`
}

// AnimationDef describes a graphic transition.
type AnimationDef struct {
	Duration *uint64 `toml:"duration" yaml:"duration" json:"duration"`
	Easing   *string `toml:"easing" yaml:"easing" json:"easing"`
	Delay    *uint64 `toml:"delay" yaml:"delay" json:"delay"`
}
