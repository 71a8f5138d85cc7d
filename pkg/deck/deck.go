// Package deck describes deck.gl scenes for the map examples. A Deck
// serializes to the JSON the map widget renders; layers carry their
// data rows inline and aggregation (hexagon binning) happens
// client-side in the rendering library.
package deck

// ViewState is the initial map viewport.
type ViewState struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      float64 `json:"zoom"`
	Pitch     float64 `json:"pitch,omitempty"`
	Bearing   float64 `json:"bearing,omitempty"`
}

// Layer is one deck.gl layer. Props holds the layer-type-specific
// options verbatim.
type Layer struct {
	Type  string         `json:"@@type"`
	Data  any            `json:"data,omitempty"`
	Props map[string]any `json:"-"`
}

// Tooltip configures the hover tooltip.
type Tooltip struct {
	HTML  string            `json:"html,omitempty"`
	Text  string            `json:"text,omitempty"`
	Style map[string]string `json:"style,omitempty"`
}

// Deck is a complete scene description.
type Deck struct {
	MapProvider      string    `json:"mapProvider,omitempty"`
	MapStyle         string    `json:"mapStyle,omitempty"`
	InitialViewState ViewState `json:"initialViewState"`
	Layers           []Layer   `json:"layers"`
	Tooltip          *Tooltip  `json:"tooltip,omitempty"`
}

// MarshalJSON flattens layer props next to the fixed fields, matching
// the deck.gl JSON form.
func (l Layer) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(l.Props)+2)
	for k, v := range l.Props {
		flat[k] = v
	}
	flat["@@type"] = l.Type
	if l.Data != nil {
		flat["data"] = l.Data
	}
	return marshalMap(flat)
}

// Hexagon builds an extruded hexagon aggregation layer over rows with
// lon/lat fields.
func Hexagon(data any, radius float64) Layer {
	return Layer{
		Type: "HexagonLayer",
		Data: data,
		Props: map[string]any{
			"getPosition":    []string{"lon", "lat"},
			"radius":         radius,
			"elevationScale": 4,
			"elevationRange": []int{0, 1000},
			"extruded":       true,
			"pickable":       true,
			"autoHighlight":  true,
		},
	}
}

// Scatterplot builds a point layer over rows with lon/lat fields.
func Scatterplot(data any, fillColor []int, radiusField string, radiusScale float64) Layer {
	return Layer{
		Type: "ScatterplotLayer",
		Data: data,
		Props: map[string]any{
			"getPosition":  []string{"lon", "lat"},
			"getFillColor": fillColor,
			"getRadius":    radiusField,
			"radiusScale":  radiusScale,
		},
	}
}

// TextLayer builds a label layer over rows with lon/lat and a text
// field.
func TextLayer(data any, textField string, size int) Layer {
	return Layer{
		Type: "TextLayer",
		Data: data,
		Props: map[string]any{
			"getPosition":          []string{"lon", "lat"},
			"getText":              textField,
			"getColor":             []int{0, 0, 0, 200},
			"getSize":              size,
			"getAlignmentBaseline": "bottom",
		},
	}
}

// Arc builds an arc layer between source and target coordinates.
func Arc(data any, widthField string, color []int) Layer {
	return Layer{
		Type: "ArcLayer",
		Data: data,
		Props: map[string]any{
			"getSourcePosition": []string{"lon", "lat"},
			"getTargetPosition": []string{"lon2", "lat2"},
			"getSourceColor":    color,
			"getTargetColor":    color,
			"getWidth":          widthField,
			"widthScale":        0.0001,
			"widthMinPixels":    3,
			"widthMaxPixels":    30,
			"autoHighlight":     true,
		},
	}
}
