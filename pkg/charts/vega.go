package charts

// VegaSpec is a vega-lite specification, assembled as a plain map so
// the full grammar stays reachable without mirroring it in Go types.
type VegaSpec map[string]any

// VegaValues wraps row maps as an inline vega-lite data block.
func VegaValues(rows []map[string]any) map[string]any {
	return map[string]any{"values": rows}
}

// AreaHistogram builds the stepped area histogram the pickups example
// shows: one row per bin with "bin" and "count" fields.
type AreaHistogram struct {
	Title      string
	BinField   string
	CountField string
	BinTitle   string
	CountTitle string
	Color      string
	Height     int
}

// Spec assembles the vega-lite spec for the given bin counts.
func (h AreaHistogram) Spec(counts []int) VegaSpec {
	rows := make([]map[string]any, len(counts))
	for i, c := range counts {
		rows[i] = map[string]any{h.BinField: i, h.CountField: c}
	}
	color := h.Color
	if color == "" {
		color = "#1E88E5"
	}
	height := h.Height
	if height == 0 {
		height = 150
	}
	return VegaSpec{
		"$schema": "https://vega.github.io/schema/vega-lite/v5.json",
		"title":   h.Title,
		"width":   "container",
		"height":  height,
		"data":    VegaValues(rows),
		"mark": map[string]any{
			"type":        "area",
			"interpolate": "step-after",
			"color":       color,
			"line":        true,
		},
		"encoding": map[string]any{
			"x": map[string]any{
				"field": h.BinField,
				"type":  "quantitative",
				"title": h.BinTitle,
				"scale": map[string]any{"nice": false},
			},
			"y": map[string]any{
				"field": h.CountField,
				"type":  "quantitative",
				"title": h.CountTitle,
			},
		},
		"config": map[string]any{
			"axis": map[string]any{"grid": false},
			"view": map[string]any{"strokeWidth": 0},
		},
	}
}

// VegaChart builds a simple single-mark vega-lite chart from inline
// rows, used by the chart-selector example.
func VegaChart(title, mark string, rows []map[string]any, encoding map[string]any) VegaSpec {
	return VegaSpec{
		"$schema":  "https://vega.github.io/schema/vega-lite/v5.json",
		"title":    title,
		"width":    "container",
		"data":     VegaValues(rows),
		"mark":     mark,
		"encoding": encoding,
	}
}
