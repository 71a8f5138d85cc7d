package ui_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-weft/weft/pkg/state"
	"github.com/go-weft/weft/pkg/ui"
)

func TestNodeBuilders(t *testing.T) {
	n := ui.El("v-slider").
		Set("min", 3).
		Set("max", 60).
		Bind("modelValue", ui.Bind("resolution", 6)).
		On("end", "view.end")

	if n.Props["min"] != 3 || n.Props["max"] != 60 {
		t.Errorf("props not set: %+v", n.Props)
	}
	if n.Bindings["modelValue"].Key != "resolution" {
		t.Errorf("binding not set: %+v", n.Bindings)
	}
	if n.Events["end"] != "view.end" {
		t.Errorf("event not wired: %+v", n.Events)
	}
}

func TestSerializeRegistersDefaults(t *testing.T) {
	s := state.New()
	n := ui.El("v-slider").Bind("modelValue", ui.Bind("resolution", 6))

	tree := ui.Serialize(n, s)

	if got := s.Int("resolution"); got != 6 {
		t.Errorf("binding default not registered: resolution = %d, want 6", got)
	}
	if tree.Bind["modelValue"] != "resolution" {
		t.Errorf("wire binding = %q, want %q", tree.Bind["modelValue"], "resolution")
	}
}

func TestSerializeDoesNotOverwriteExistingValue(t *testing.T) {
	s := state.New()
	s.Declare("resolution")
	s.Set("resolution", 40)

	ui.Serialize(ui.El("v-slider").Bind("modelValue", ui.Bind("resolution", 6)), s)

	if got := s.Int("resolution"); got != 40 {
		t.Errorf("serialize overwrote live state: resolution = %d, want 40", got)
	}
}

func TestRebuildReflectsMutatedState(t *testing.T) {
	s := state.New()
	build := func() *ui.Node {
		return ui.El("div").Add(
			ui.El("v-slider").Bind("modelValue", ui.Bind("resolution", 6)),
		)
	}

	ui.Serialize(build(), s)
	s.Set("resolution", 12)
	ui.Serialize(build(), s)

	// Rebuilding replaces bindings but never reverts state to defaults.
	if got := s.Int("resolution"); got != 12 {
		t.Errorf("rebuild produced a stale read: resolution = %d, want 12", got)
	}
}

func TestFindHelpers(t *testing.T) {
	root := ui.El("div").Add(
		ui.El("v-select").Bind("modelValue", ui.Bind("active", "a")),
		ui.El("v-card").Add(ui.El("v-slider").Bind("modelValue", ui.BindKey("resolution"))),
	)

	if root.FindByTag("v-slider") == nil {
		t.Error("FindByTag failed to locate nested node")
	}
	if n := root.FindBound("resolution"); n == nil || n.Tag != "v-slider" {
		t.Errorf("FindBound located %+v, want the v-slider", n)
	}
	if root.FindBound("missing") != nil {
		t.Error("FindBound should return nil for unbound keys")
	}
}

func TestSinglePageScaffold(t *testing.T) {
	s := state.New()
	layout := ui.SinglePage{
		Title:      "Cone Application",
		FullHeight: true,
		Theme:      ui.Bind("theme_mode", "light"),
		Toolbar:    []ui.Noder{ui.El("v-spacer"), ui.El("v-slider")},
		Content:    []ui.Noder{ui.El("v-container")},
	}

	tree := ui.Serialize(layout.Node(), s)

	if tree.Tag != "w-layout" {
		t.Fatalf("root tag = %q, want w-layout", tree.Tag)
	}
	if got := s.String("theme_mode"); got != "light" {
		t.Errorf("theme default not seeded, got %q", got)
	}
	var tags []string
	layout.Node().Walk(func(n *ui.Node) { tags = append(tags, n.Tag) })
	want := []string{"w-layout", "w-app-bar", "w-app-icon", "w-title", "w-toolbar", "v-spacer", "v-slider", "w-content", "v-container"}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Errorf("scaffold structure (-want +got):\n%s", diff)
	}
}

func TestDrawerLayoutPlacesDrawerAfterAppBar(t *testing.T) {
	layout := ui.SinglePageWithDrawer{
		Title:  "Router",
		Drawer: []ui.Noder{ui.El("v-list")},
	}
	n := layout.Node()
	if len(n.Children) < 3 {
		t.Fatalf("expected app bar, drawer, content; got %d children", len(n.Children))
	}
	if n.Children[1].Tag != "w-drawer" {
		t.Errorf("second child = %q, want w-drawer", n.Children[1].Tag)
	}
}
