package widgets_test

import (
	"testing"

	"github.com/go-weft/weft/pkg/state"
	"github.com/go-weft/weft/pkg/ui"
	"github.com/go-weft/weft/pkg/widgets"
)

func TestSliderNode(t *testing.T) {
	n := widgets.Slider{
		Model:      ui.Bind("resolution", 6),
		Min:        3,
		Max:        60,
		Step:       1,
		ThumbLabel: true,
		EndTrigger: "view.end",
	}.Node()

	if n.Tag != "v-slider" {
		t.Fatalf("tag = %q, want v-slider", n.Tag)
	}
	if n.Bindings["modelValue"].Key != "resolution" {
		t.Errorf("model binding = %+v", n.Bindings["modelValue"])
	}
	if n.Props["min"] != 3.0 || n.Props["max"] != 60.0 {
		t.Errorf("range props = %v..%v", n.Props["min"], n.Props["max"])
	}
	if n.Events["end"] != "view.end" {
		t.Errorf("end trigger = %q", n.Events["end"])
	}
}

func TestSelectItemsFromStateOrStatic(t *testing.T) {
	bound := widgets.Select{
		Model:    ui.Bind("active_plot_name", "Contour"),
		ItemsKey: ui.BindKey("plots"),
	}.Node()
	if bound.Bindings["items"].Key != "plots" {
		t.Errorf("bound items = %+v", bound.Bindings)
	}

	fixed := widgets.Select{
		Model: ui.Bind("mode", "a"),
		Items: []any{"a", "b"},
	}.Node()
	items, ok := fixed.Props["items"].([]any)
	if !ok || len(items) != 2 {
		t.Errorf("static items = %+v", fixed.Props["items"])
	}
}

func TestButtonClickWiring(t *testing.T) {
	server := widgets.Button{Text: "Reset", Click: "view.reset_camera"}.Node()
	if server.Events["click"] != "view.reset_camera" {
		t.Errorf("server click = %+v", server.Events)
	}

	client := widgets.Button{
		IconOnly:  true,
		ClickExpr: "theme_mode = theme_mode == 'light' ? 'dark' : 'light'",
	}.Node()
	if client.Props["clickExpr"] == nil {
		t.Error("client expression not set")
	}
	if len(client.Events) != 0 {
		t.Errorf("client-only button should fire no server trigger: %+v", client.Events)
	}
}

func TestButtonToggleChildren(t *testing.T) {
	n := widgets.ButtonToggle{
		Model:     ui.Bind("view_mode", "local"),
		Mandatory: true,
		Buttons: []widgets.Button{
			{Value: "local", Icon: "mdi-laptop"},
			{Value: "remote", Icon: "mdi-remote"},
		},
	}.Node()

	if len(n.Children) != 2 {
		t.Fatalf("toggle children = %d, want 2", len(n.Children))
	}
	if n.Children[0].Props["value"] != "local" {
		t.Errorf("first toggle value = %v", n.Children[0].Props["value"])
	}
}

func TestTableHeadersAndSearch(t *testing.T) {
	n := widgets.Table{
		Headers: []widgets.TableHeader{
			{Title: "Name", Key: "name"},
			{Title: "Calories", Key: "calories"},
		},
		ItemsKey: ui.BindKey("rows"),
		Search:   ui.Bind("query", ""),
	}.Node()

	if n.Bindings["items"].Key != "rows" {
		t.Errorf("items binding = %+v", n.Bindings)
	}
	if n.Bindings["search"].Key != "query" {
		t.Errorf("search binding = %+v", n.Bindings)
	}
	headers, ok := n.Props["headers"].([]any)
	if !ok || len(headers) != 2 {
		t.Errorf("headers prop = %+v", n.Props["headers"])
	}
}

func TestRemoteViewInteractionTriggers(t *testing.T) {
	n := widgets.RemoteView{
		ID:                "cone",
		InteractionEvents: []string{"LeftButtonPress", "KeyDown"},
	}.Node()

	if n.Props["viewId"] != "cone" {
		t.Errorf("viewId = %v", n.Props["viewId"])
	}
	if n.Events["interaction"] != "cone.interaction" {
		t.Errorf("interaction trigger = %q", n.Events["interaction"])
	}
	if n.Events["LeftButtonPress"] != "cone.LeftButtonPress" {
		t.Errorf("custom event trigger = %q", n.Events["LeftButtonPress"])
	}
}

func TestViewWidgetsSeedDefaults(t *testing.T) {
	s := state.New()
	tree := ui.El("div").Add(
		widgets.RemoteLocalView{ID: "view", Mode: ui.Bind("view_mode", "local")},
		widgets.Markdown{Model: ui.Bind("md_content", "")},
	)
	ui.Serialize(tree, s)

	if got := s.String("view_mode"); got != "local" {
		t.Errorf("view_mode default = %q, want local", got)
	}
	if !s.Has("md_content") {
		t.Error("markdown content default not seeded")
	}
}

func TestRouterViewRoutes(t *testing.T) {
	n := widgets.RouterView{
		Model: ui.BindKey("route"),
		Routes: []widgets.Route{
			{Path: "/", Children: []ui.Noder{widgets.Paragraph{Text: "home"}}},
			{Path: "/foo", Children: []ui.Noder{widgets.Paragraph{Text: "foo"}}},
		},
	}.Node()

	if n.Tag != "w-router-view" {
		t.Fatalf("tag = %q, want w-router-view", n.Tag)
	}
	if n.Bindings["route"].Key != "route" {
		t.Errorf("route binding = %+v", n.Bindings["route"])
	}
	if len(n.Children) != 2 {
		t.Fatalf("got %d routes, want 2", len(n.Children))
	}
	if n.Children[1].Props["value"] != "/foo" {
		t.Errorf("second route value = %v", n.Children[1].Props["value"])
	}
}

func TestRouterLinkNode(t *testing.T) {
	n := widgets.RouterLink{Text: "Jump", To: "/foo"}.Node()
	if n.Tag != "w-router-link" || n.Props["to"] != "/foo" || n.Text != "Jump" {
		t.Errorf("node = %+v", n)
	}
}

func TestTextBoundOrStatic(t *testing.T) {
	static := widgets.Text{Content: "hello"}.Node()
	if static.Text != "hello" || len(static.Bindings) != 0 {
		t.Errorf("static text node = %+v", static)
	}

	bound := widgets.Text{Model: ui.BindKey("message")}.Node()
	if bound.Bindings["text"].Key != "message" {
		t.Errorf("bound text node = %+v", bound)
	}
}
