package widgets

import "github.com/go-weft/weft/pkg/ui"

// Card is an elevated content surface.
type Card struct {
	Elevation int
	Rounded   any
	Classes   string
	Children  []ui.Noder
}

func (w Card) Node() *ui.Node {
	n := ui.El("v-card")
	if w.Elevation > 0 {
		n.Set("elevation", w.Elevation)
	}
	if w.Rounded != nil {
		n.Set("rounded", w.Rounded)
	}
	setCommon(n, w.Classes, "")
	return n.Add(w.Children...)
}

// CardTitle is a card heading. Text may contain client template
// expressions such as "{{ nycTitle }}".
type CardTitle struct {
	Text    string
	Classes string
}

func (w CardTitle) Node() *ui.Node {
	n := ui.El("v-card-title")
	n.Text = w.Text
	setCommon(n, w.Classes, "")
	return n
}

// CardText is a card body region.
type CardText struct {
	Classes  string
	Style    string
	Children []ui.Noder
}

func (w CardText) Node() *ui.Node {
	n := ui.El("v-card-text")
	setCommon(n, w.Classes, w.Style)
	return n.Add(w.Children...)
}

// Alert is an inline notice banner.
type Alert struct {
	Text     string
	Type     string
	Density  string
	Variant  string
	Closable bool
	Icon     string
	Classes  string
}

func (w Alert) Node() *ui.Node {
	n := ui.El("v-alert")
	n.Set("text", w.Text)
	if w.Type != "" {
		n.Set("type", w.Type)
	}
	if w.Density != "" {
		n.Set("density", w.Density)
	}
	if w.Variant != "" {
		n.Set("variant", w.Variant)
	}
	if w.Closable {
		n.Set("closable", true)
	}
	if w.Icon != "" {
		n.Set("icon", w.Icon)
	}
	setCommon(n, w.Classes, "")
	return n
}

// ProgressLinear is a horizontal activity bar whose visibility tracks a
// boolean state key (conventionally "busy" driven by the run loop).
type ProgressLinear struct {
	Active        ui.Binding
	Indeterminate bool
	Absolute      bool
	Bottom        bool
	Color         string
}

func (w ProgressLinear) Node() *ui.Node {
	n := ui.El("v-progress-linear").Bind("active", w.Active)
	if w.Indeterminate {
		n.Set("indeterminate", true)
	}
	if w.Absolute {
		n.Set("absolute", true)
	}
	if w.Bottom {
		n.Set("bottom", true)
	}
	if w.Color != "" {
		n.Set("color", w.Color)
	}
	return n
}

// TableHeader describes one column of a Table.
type TableHeader struct {
	Title string `json:"title"`
	Key   string `json:"key"`
}

// Table is a data table whose rows come from a state key holding a
// list of row maps. Search optionally binds the table's filter input.
type Table struct {
	Headers  []TableHeader
	ItemsKey ui.Binding
	Search   ui.Binding
	Density  string
	Classes  string
}

func (w Table) Node() *ui.Node {
	n := ui.El("v-data-table").Bind("items", w.ItemsKey)
	if len(w.Headers) > 0 {
		headers := make([]any, len(w.Headers))
		for i, h := range w.Headers {
			headers[i] = h
		}
		n.Set("headers", headers)
	}
	if w.Search.Key != "" {
		n.Bind("search", w.Search)
	}
	if w.Density != "" {
		n.Set("density", w.Density)
	}
	setCommon(n, w.Classes, "")
	return n
}
