package server

import (
	"github.com/go-weft/weft/pkg/state"
	"github.com/go-weft/weft/pkg/ui"
)

// Client-to-server request methods.
const (
	// MethodConnect establishes a session and returns the initial
	// state snapshot and component tree.
	MethodConnect = "app.connect"
	// MethodStateUpdate writes one state key.
	MethodStateUpdate = "state.update"
	// MethodEventTrigger fires a named UI event.
	MethodEventTrigger = "event.trigger"
)

// Server-to-client notification methods.
const (
	// MethodStatePush carries changed state values.
	MethodStatePush = "state.push"
	// MethodUITree carries a full component tree replacement.
	MethodUITree = "ui.tree"
	// MethodViewFrame carries a rendered view image.
	MethodViewFrame = "view.frame"
	// MethodViewGeometry carries encoded mesh geometry for local views.
	MethodViewGeometry = "view.geometry"
)

// ConnectResult is the reply to app.connect.
type ConnectResult struct {
	Session string                 `json:"session"`
	App     string                 `json:"app"`
	State   map[string]state.Value `json:"state"`
	Tree    *ui.TreeNode           `json:"tree"`
}

// StateUpdateParams are the parameters of state.update.
type StateUpdateParams struct {
	Key   string      `json:"key"`
	Value state.Value `json:"value"`
}

// StatePushParams are the parameters of state.push. Values holds only
// the keys that changed since the previous push, at their latest
// values.
type StatePushParams struct {
	Values map[string]state.Value `json:"values"`
}

// UITreeParams are the parameters of ui.tree.
type UITreeParams struct {
	Tree *ui.TreeNode `json:"tree"`
}

// ViewFrameParams are the parameters of view.frame. Image is a PNG
// data URL.
type ViewFrameParams struct {
	View   string `json:"view"`
	Image  string `json:"image"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ViewGeometryParams are the parameters of view.geometry. Payload is
// base64-wrapped compressed CBOR, decoded by pkg/codec.
type ViewGeometryParams struct {
	View    string `json:"view"`
	Payload string `json:"payload"`
}
