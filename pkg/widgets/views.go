package widgets

import "github.com/go-weft/weft/pkg/ui"

// View widgets display content produced on the server: figures, maps,
// rendered frames, and geometry. Each is addressed by an ID the server
// pushes payloads to, or by a state key holding a JSON spec.

// FigureView renders a plotly-style figure held in a state key.
type FigureView struct {
	// Model binds to the state key holding the figure JSON.
	Model          ui.Binding
	DisplayLogo    bool
	DisplayModeBar bool
	// SelectTrigger fires when the user selects points on the figure;
	// the selection arrives as the "points" event argument.
	SelectTrigger string
	Classes       string
	Style         string
}

func (w FigureView) Node() *ui.Node {
	n := ui.El("w-figure").Bind("figure", w.Model)
	n.Set("displayLogo", w.DisplayLogo)
	n.Set("displayModeBar", w.DisplayModeBar)
	if w.SelectTrigger != "" {
		n.On("selected", w.SelectTrigger)
	}
	setCommon(n, w.Classes, w.Style)
	return n
}

// VegaView renders a vega-lite spec held in a state key.
type VegaView struct {
	Model   ui.Binding
	Classes string
	Style   string
}

func (w VegaView) Node() *ui.Node {
	n := ui.El("w-vega").Bind("spec", w.Model)
	setCommon(n, w.Classes, w.Style)
	return n
}

// DeckView renders a deck.gl scene description held in a state key.
// MapboxKey is the opaque basemap credential; the view renders without
// a basemap when it is empty.
type DeckView struct {
	Model     ui.Binding
	MapboxKey string
	Classes   string
	Style     string
}

func (w DeckView) Node() *ui.Node {
	n := ui.El("w-deck").Bind("deck", w.Model)
	if w.MapboxKey != "" {
		n.Set("mapboxApiKey", w.MapboxKey)
	}
	setCommon(n, w.Classes, w.Style)
	return n
}

// ImageView shows a server-rendered still image held in a state key as
// a data URL (server-side chart rendering).
type ImageView struct {
	Model   ui.Binding
	Classes string
	Style   string
	// SizeKey, when set, reports the client viewport size into a state
	// key so the server can render at the displayed resolution.
	SizeKey string
}

func (w ImageView) Node() *ui.Node {
	n := ui.El("w-image").Bind("src", w.Model)
	if w.SizeKey != "" {
		n.Set("reportSize", w.SizeKey)
	}
	setCommon(n, w.Classes, w.Style)
	return n
}

// RemoteView displays frames rendered on the server and streamed to
// the client. Camera interaction events flow back as
// "<id>.interaction" triggers.
type RemoteView struct {
	// ID addresses server frame pushes to this view.
	ID string
	// InteractionEvents lists additional interactor events to forward
	// to the server with full payloads.
	InteractionEvents []string
	Classes           string
	Style             string
}

func (w RemoteView) Node() *ui.Node {
	n := ui.El("w-remote-view")
	n.Set("viewId", w.ID)
	n.On("interaction", w.ID+".interaction")
	for _, ev := range w.InteractionEvents {
		n.On(ev, w.ID+"."+ev)
	}
	setCommon(n, w.Classes, w.Style)
	return n
}

// LocalView renders geometry on the client. Mesh payloads are pushed
// by the server when the view updates.
type LocalView struct {
	ID      string
	Classes string
	Style   string
}

func (w LocalView) Node() *ui.Node {
	n := ui.El("w-local-view")
	n.Set("viewId", w.ID)
	setCommon(n, w.Classes, w.Style)
	return n
}

// RemoteLocalView switches between remote frames and local geometry
// according to a bound mode key ("remote" or "local").
type RemoteLocalView struct {
	ID      string
	Mode    ui.Binding
	Classes string
	Style   string
}

func (w RemoteLocalView) Node() *ui.Node {
	n := ui.El("w-remote-local-view").Bind("mode", w.Mode)
	n.Set("viewId", w.ID)
	n.On("interaction", w.ID+".interaction")
	setCommon(n, w.Classes, w.Style)
	return n
}

// Markdown renders markdown-derived HTML held in a state key.
type Markdown struct {
	Model   ui.Binding
	Classes string
}

func (w Markdown) Node() *ui.Node {
	n := ui.El("w-markdown").Bind("html", w.Model)
	setCommon(n, w.Classes, "")
	return n
}

// RouterLink navigates to a route on click without a server round
// trip. It writes the same state key the enclosing RouterView binds.
type RouterLink struct {
	Text string
	To   string
}

func (w RouterLink) Node() *ui.Node {
	n := ui.El("w-router-link").Set("to", w.To)
	n.Text = w.Text
	return n
}

// Route is one page of a RouterView, keyed by its path.
type Route struct {
	Path     string
	Children []ui.Noder
}

// RouterView is the mount point for route content in multi-page apps.
// The bound key holds the active path; only the matching Route's
// children are shown. ListItem.To writes the same key on click.
type RouterView struct {
	Model  ui.Binding
	Routes []Route
}

func (w RouterView) Node() *ui.Node {
	n := ui.El("w-router-view").Bind("route", w.Model)
	for _, r := range w.Routes {
		n.Add(ui.El("w-route").Set("value", r.Path).Add(r.Children...))
	}
	return n
}
