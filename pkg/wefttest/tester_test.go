package wefttest

import (
	"testing"

	"github.com/go-weft/weft/pkg/dispatch"
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/ui"
	"github.com/go-weft/weft/pkg/widgets"
)

func TestMountSeedsDefaults(t *testing.T) {
	at := NewAppTester(t)
	tree := at.Mount(ui.SinglePage{
		Title: "demo",
		Content: []ui.Noder{
			widgets.Slider{Model: ui.Bind("resolution", 6), Min: 3, Max: 60},
		},
	})
	if tree.Tag != "w-layout" {
		t.Errorf("root tag = %q", tree.Tag)
	}
	if at.State().Int("resolution") != 6 {
		t.Errorf("resolution = %d, want seeded 6", at.State().Int("resolution"))
	}
}

func TestSetRunsCallbacksAndFlushes(t *testing.T) {
	at := NewAppTester(t)
	at.State().Declare("area")
	at.OnChange("radius", func(ctx *dispatch.Context) {
		r := ctx.Float("radius")
		ctx.State.Set("area", r*r)
	})
	at.Flush()

	at.Set("radius", 3.0)
	changes := at.Flush()
	if changes["radius"] != 3.0 || changes["area"] != 9.0 {
		t.Errorf("changes = %v", changes)
	}
	if at.Flush() != nil {
		t.Error("second flush should be empty")
	}
}

func TestTriggerDeliversArgs(t *testing.T) {
	at := NewAppTester(t)
	var got string
	at.OnEvent("open", func(ctx *dispatch.Context) {
		got = ctx.Event.StringArg("item")
	})
	at.Trigger("open", map[string]any{"item": "Settings"})
	if got != "Settings" {
		t.Errorf("arg = %q, want Settings", got)
	}
}

func TestErrorsRecorded(t *testing.T) {
	at := NewAppTester(t)
	// Unregistered event is reported, not fatal.
	at.Trigger("nobody-home", nil)

	errs := at.Errors()
	if len(errs) != 1 || errs[0].Kind != errors.KindCallback {
		t.Fatalf("errors = %v", errs)
	}
}

func TestPanicsRecorded(t *testing.T) {
	at := NewAppTester(t)
	at.OnEvent("boom", func(*dispatch.Context) { panic("kaboom") })
	at.Trigger("boom", nil)

	panics := at.Panics()
	if len(panics) != 1 {
		t.Fatalf("panics = %v", panics)
	}
	if panics[0].Value != "kaboom" {
		t.Errorf("panic value = %v", panics[0].Value)
	}
}
