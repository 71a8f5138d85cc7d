// Package charts builds the figure descriptions the chart widgets
// render client-side: plotly-style figures (traces + layout) and
// vega-lite specs. The builders only cover what the gallery uses; they
// are serialization helpers, not a plotting library.
package charts

// Figure is a plotly-style figure: a list of traces plus a layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one plotted dataset.
type Trace struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	Mode string `json:"mode,omitempty"`

	X []any `json:"x,omitempty"`
	Y []any `json:"y,omitempty"`
	Z any   `json:"z,omitempty"`

	// Theta/R drive polar traces.
	Theta []any `json:"theta,omitempty"`
	R     []any `json:"r,omitempty"`

	// A/B/C drive ternary traces.
	A []any `json:"a,omitempty"`
	B []any `json:"b,omitempty"`
	C []any `json:"c,omitempty"`

	Text          []string       `json:"text,omitempty"`
	Marker        *Marker        `json:"marker,omitempty"`
	Fill          string         `json:"fill,omitempty"`
	SelectedPoint any            `json:"selectedpoints,omitempty"`
	Dimensions    []Dimension    `json:"dimensions,omitempty"`
	Extra         map[string]any `json:"-"`
}

// Marker styles trace points.
type Marker struct {
	Color   any     `json:"color,omitempty"`
	Size    any     `json:"size,omitempty"`
	Symbol  string  `json:"symbol,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

// Dimension is one axis of a scatter-matrix trace.
type Dimension struct {
	Label  string `json:"label"`
	Values []any  `json:"values"`
}

// Layout holds figure-level presentation options.
type Layout struct {
	Title      string         `json:"title,omitempty"`
	Height     int            `json:"height,omitempty"`
	Autosize   bool           `json:"autosize,omitempty"`
	DragMode   string         `json:"dragmode,omitempty"`
	ShowLegend *bool          `json:"showlegend,omitempty"`
	Margin     *Margin        `json:"margin,omitempty"`
	Scene      map[string]any `json:"scene,omitempty"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Floats converts a float slice to the []any JSON traces carry.
func Floats(values []float64) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Ints converts an int slice to the []any JSON traces carry.
func Ints(values []int) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Strings converts a string slice to the []any JSON traces carry.
func Strings(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Bar builds a single-trace bar chart.
func Bar(x, y []float64, title string) Figure {
	return Figure{
		Data:   []Trace{{Type: "bar", X: Floats(x), Y: Floats(y)}},
		Layout: Layout{Title: title, Autosize: true},
	}
}

// Contour builds a contour plot over a z matrix.
func Contour(z [][]float64, title string) Figure {
	rows := make([]any, len(z))
	for i, row := range z {
		rows[i] = Floats(row)
	}
	return Figure{
		Data:   []Trace{{Type: "contour", Z: rows}},
		Layout: Layout{Title: title, Autosize: true},
	}
}

// Scatter builds a 2-D scatter trace figure.
func Scatter(x, y []float64, mode, title string) Figure {
	return Figure{
		Data:   []Trace{{Type: "scatter", Mode: mode, X: Floats(x), Y: Floats(y)}},
		Layout: Layout{Title: title, Autosize: true},
	}
}
