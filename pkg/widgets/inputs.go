package widgets

import "github.com/go-weft/weft/pkg/ui"

// Slider binds a numeric range input to a state key.
type Slider struct {
	Model ui.Binding
	Min   float64
	Max   float64
	Step  float64
	// ThumbLabel shows the value bubble; "always" keeps it visible.
	ThumbLabel  any
	HideDetails bool
	Density     string
	Color       string
	TrackColor  string
	Classes     string
	Style       string
	// EndTrigger fires a server trigger when a drag interaction ends,
	// for work too heavy to run on every intermediate value.
	EndTrigger string
}

func (w Slider) Node() *ui.Node {
	n := ui.El("v-slider").Bind("modelValue", w.Model)
	n.Set("min", w.Min)
	n.Set("max", w.Max)
	if w.Step != 0 {
		n.Set("step", w.Step)
	}
	if w.ThumbLabel != nil {
		n.Set("thumbLabel", w.ThumbLabel)
	}
	if w.HideDetails {
		n.Set("hideDetails", true)
	}
	if w.Density != "" {
		n.Set("density", w.Density)
	}
	if w.Color != "" {
		n.Set("color", w.Color)
	}
	if w.TrackColor != "" {
		n.Set("trackColor", w.TrackColor)
	}
	if w.EndTrigger != "" {
		n.On("end", w.EndTrigger)
	}
	setCommon(n, w.Classes, w.Style)
	return n
}

// Select binds a dropdown selection to a state key. Items either come
// from a state key (ItemsKey) or are fixed (Items).
type Select struct {
	Model       ui.Binding
	ItemsKey    ui.Binding
	Items       []any
	Label       string
	HideDetails bool
	Density     string
	Variant     string
	Classes     string
	Style       string
}

func (w Select) Node() *ui.Node {
	n := ui.El("v-select").Bind("modelValue", w.Model)
	if w.ItemsKey.Key != "" {
		n.Bind("items", w.ItemsKey)
	} else if len(w.Items) > 0 {
		n.Set("items", w.Items)
	}
	if w.Label != "" {
		n.Set("label", w.Label)
	}
	if w.HideDetails {
		n.Set("hideDetails", true)
	}
	if w.Density != "" {
		n.Set("density", w.Density)
	}
	if w.Variant != "" {
		n.Set("variant", w.Variant)
	}
	setCommon(n, w.Classes, w.Style)
	return n
}

// Button fires a server trigger or evaluates a client expression.
type Button struct {
	Text string
	Icon string
	// Value marks the button's value inside a ButtonToggle.
	Value string
	// Click names the server trigger fired on click.
	Click string
	// ClickExpr is a client-side expression evaluated on click, for
	// pure-client mutations like theme toggles.
	ClickExpr string
	IconOnly  bool
	Disabled  bool
	Classes   string
}

func (w Button) Node() *ui.Node {
	n := ui.El("v-btn")
	n.Text = w.Text
	if w.Icon != "" {
		n.Add(Icon{Name: w.Icon})
	}
	if w.Value != "" {
		n.Set("value", w.Value)
	}
	if w.IconOnly {
		n.Set("icon", true)
	}
	if w.Disabled {
		n.Set("disabled", true)
	}
	if w.Click != "" {
		n.On("click", w.Click)
	}
	if w.ClickExpr != "" {
		n.Set("clickExpr", w.ClickExpr)
	}
	setCommon(n, w.Classes, "")
	return n
}

// ButtonToggle is an exclusive group of buttons bound to a state key.
type ButtonToggle struct {
	Model     ui.Binding
	Mandatory bool
	Density   string
	Rounded   any
	Buttons   []Button
}

func (w ButtonToggle) Node() *ui.Node {
	n := ui.El("v-btn-toggle").Bind("modelValue", w.Model)
	if w.Mandatory {
		n.Set("mandatory", true)
	}
	if w.Density != "" {
		n.Set("density", w.Density)
	}
	if w.Rounded != nil {
		n.Set("rounded", w.Rounded)
	}
	for _, b := range w.Buttons {
		n.Add(b)
	}
	return n
}

// Icon renders a named icon glyph.
type Icon struct {
	Name string
}

func (w Icon) Node() *ui.Node {
	n := ui.El("v-icon")
	n.Text = w.Name
	return n
}

// Checkbox binds a boolean to a state key.
type Checkbox struct {
	Model       ui.Binding
	Label       string
	HideDetails bool
	Density     string
}

func (w Checkbox) Node() *ui.Node {
	n := ui.El("v-checkbox").Bind("modelValue", w.Model)
	if w.Label != "" {
		n.Set("label", w.Label)
	}
	if w.HideDetails {
		n.Set("hideDetails", true)
	}
	if w.Density != "" {
		n.Set("density", w.Density)
	}
	return n
}

// Switch binds a boolean toggle to a state key.
type Switch struct {
	Model       ui.Binding
	Label       string
	HideDetails bool
	Color       string
}

func (w Switch) Node() *ui.Node {
	n := ui.El("v-switch").Bind("modelValue", w.Model)
	if w.Label != "" {
		n.Set("label", w.Label)
	}
	if w.HideDetails {
		n.Set("hideDetails", true)
	}
	if w.Color != "" {
		n.Set("color", w.Color)
	}
	return n
}

// TextField binds a text input to a state key.
type TextField struct {
	Model       ui.Binding
	Label       string
	HideDetails bool
	Density     string
	Variant     string
	Classes     string
	Style       string
}

func (w TextField) Node() *ui.Node {
	n := ui.El("v-text-field").Bind("modelValue", w.Model)
	if w.Label != "" {
		n.Set("label", w.Label)
	}
	if w.HideDetails {
		n.Set("hideDetails", true)
	}
	if w.Density != "" {
		n.Set("density", w.Density)
	}
	if w.Variant != "" {
		n.Set("variant", w.Variant)
	}
	setCommon(n, w.Classes, w.Style)
	return n
}

// Menu shows a dropdown of items anchored to an activator.
type Menu struct {
	Activator ui.Noder
	// ItemsKey binds the item list to a state key; selecting an item
	// fires SelectTrigger with the item as the "item" argument.
	ItemsKey      ui.Binding
	SelectTrigger string
}

func (w Menu) Node() *ui.Node {
	n := ui.El("v-menu")
	if w.Activator != nil {
		n.Add(ui.El("w-activator").Add(w.Activator))
	}
	list := ui.El("v-list").Bind("items", w.ItemsKey)
	if w.SelectTrigger != "" {
		list.On("select", w.SelectTrigger)
	}
	n.Add(list)
	return n
}

// List is an item list, optionally bound to a selection key.
type List struct {
	Model    ui.Binding
	Density  string
	Children []ui.Noder
}

func (w List) Node() *ui.Node {
	n := ui.El("v-list")
	if w.Model.Key != "" {
		n.Bind("selected", w.Model)
	}
	if w.Density != "" {
		n.Set("density", w.Density)
	}
	return n.Add(w.Children...)
}

// ListItem is one row of a List.
type ListItem struct {
	Title string
	Value string
	// Click names the server trigger fired on click.
	Click string
	// To is a client-side route target for router navigation.
	To string
}

func (w ListItem) Node() *ui.Node {
	n := ui.El("v-list-item")
	n.Set("title", w.Title)
	if w.Value != "" {
		n.Set("value", w.Value)
	}
	if w.Click != "" {
		n.On("click", w.Click)
	}
	if w.To != "" {
		n.Set("to", w.To)
	}
	return n
}

// ListGroup is a collapsible group of list items.
type ListGroup struct {
	Title    string
	Value    string
	Children []ui.Noder
}

func (w ListGroup) Node() *ui.Node {
	n := ui.El("v-list-group")
	n.Set("title", w.Title)
	if w.Value != "" {
		n.Set("value", w.Value)
	}
	return n.Add(w.Children...)
}
