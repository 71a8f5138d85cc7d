package widgets

import "github.com/go-weft/weft/pkg/ui"

// Container is a padded wrapper for page content.
type Container struct {
	Fluid   bool
	Classes string
	Style   string
	Children []ui.Noder
}

func (w Container) Node() *ui.Node {
	n := ui.El("v-container")
	if w.Fluid {
		n.Set("fluid", true)
	}
	setCommon(n, w.Classes, w.Style)
	return n.Add(w.Children...)
}

// Row is a horizontal grid row.
type Row struct {
	NoGutters bool
	Classes   string
	Children  []ui.Noder
}

func (w Row) Node() *ui.Node {
	n := ui.El("v-row")
	if w.NoGutters {
		n.Set("noGutters", true)
	}
	setCommon(n, w.Classes, "")
	return n.Add(w.Children...)
}

// Col is a grid column; Cols is out of 12, zero means auto.
type Col struct {
	Cols     int
	Classes  string
	Children []ui.Noder
}

func (w Col) Node() *ui.Node {
	n := ui.El("v-col")
	if w.Cols > 0 {
		n.Set("cols", w.Cols)
	}
	setCommon(n, w.Classes, "")
	return n.Add(w.Children...)
}

// Spacer pushes toolbar siblings apart.
type Spacer struct{}

func (Spacer) Node() *ui.Node { return ui.El("v-spacer") }

// Div is a plain block element.
type Div struct {
	Text     string
	Classes  string
	Style    string
	Children []ui.Noder
}

func (w Div) Node() *ui.Node {
	n := ui.El("div")
	n.Text = w.Text
	setCommon(n, w.Classes, w.Style)
	return n.Add(w.Children...)
}

// Paragraph is a text paragraph. Text may contain client template
// expressions over state keys.
type Paragraph struct {
	Text    string
	Classes string
}

func (w Paragraph) Node() *ui.Node {
	n := ui.El("p")
	n.Text = w.Text
	setCommon(n, w.Classes, "")
	return n
}

// Text is an inline text span. With a Model set the content follows
// the bound state key instead of the static Content.
type Text struct {
	Content string
	Model   ui.Binding
	Classes string
}

func (w Text) Node() *ui.Node {
	n := ui.El("span")
	if w.Model.Key != "" {
		n.Bind("text", w.Model)
	} else {
		n.Text = w.Content
	}
	setCommon(n, w.Classes, "")
	return n
}

func setCommon(n *ui.Node, classes, style string) {
	if classes != "" {
		n.Set("class", classes)
	}
	if style != "" {
		n.Set("style", style)
	}
}
