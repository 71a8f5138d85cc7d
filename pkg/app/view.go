package app

import (
	"github.com/go-weft/weft/pkg/codec"
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/geometry"
	"github.com/go-weft/weft/pkg/render"
)

// RemoteView is a server-rendered 3D view. The server rasterizes the
// scene and ships PNG frames; clients display pixels only.
//
// Update must run before the app starts or inside a callback; both
// execute on the run loop.
type RemoteView struct {
	ID     string
	Scene  *render.Scene
	Camera render.Camera
	Width  int
	Height int

	app *App
}

// NewRemoteView registers a server-rendered view. The camera starts
// fitted to the scene.
func (a *App) NewRemoteView(id string, scene *render.Scene) *RemoteView {
	return &RemoteView{
		ID:     id,
		Scene:  scene,
		Camera: scene.ResetCamera(),
		Width:  800,
		Height: 600,
		app:    a,
	}
}

// Update renders the scene and pushes the frame to every session.
func (v *RemoteView) Update() error {
	img := render.Render(v.Scene, v.Camera, v.Width, v.Height)
	url, err := render.DataURL(img)
	if err != nil {
		werr := &errors.WeftError{Op: "view.Update", Kind: errors.KindRender, Key: v.ID, Err: err}
		errors.Report(werr)
		return werr
	}
	v.app.server.PushFrame(v.ID, url, v.Width, v.Height)
	return nil
}

// ResetCamera refits the camera to the scene bounds and re-renders.
func (v *RemoteView) ResetCamera() error {
	v.Camera = v.Scene.ResetCamera()
	return v.Update()
}

// Orbit rotates the camera around the scene and re-renders.
func (v *RemoteView) Orbit(azimuth, elevation float64) error {
	v.Camera = v.Camera.Orbit(azimuth, elevation)
	return v.Update()
}

// LocalView is a client-rendered 3D view. The server ships mesh
// geometry once per change; the client renders every frame itself.
type LocalView struct {
	ID string

	app *App
}

// NewLocalView registers a client-rendered view.
func (a *App) NewLocalView(id string) *LocalView {
	return &LocalView{ID: id, app: a}
}

// UpdateGeometry encodes the mesh and pushes it to every session.
func (v *LocalView) UpdateGeometry(mesh *geometry.Mesh) error {
	payload, err := codec.EncodePayload(mesh)
	if err != nil {
		werr := &errors.WeftError{Op: "view.UpdateGeometry", Kind: errors.KindRender, Key: v.ID, Err: err}
		errors.Report(werr)
		return werr
	}
	v.app.server.PushGeometry(v.ID, payload)
	return nil
}

// RemoteLocalView pairs a server-rendered and a client-rendered view
// of the same scene under one id; a state key selects which mode the
// client displays.
type RemoteLocalView struct {
	Remote *RemoteView
	Local  *LocalView
}

// NewRemoteLocalView registers both halves of a switchable view.
func (a *App) NewRemoteLocalView(id string, scene *render.Scene) *RemoteLocalView {
	return &RemoteLocalView{
		Remote: a.NewRemoteView(id, scene),
		Local:  a.NewLocalView(id),
	}
}

// Update pushes a fresh frame and, when mesh is non-nil, fresh
// geometry.
func (v *RemoteLocalView) Update(mesh *geometry.Mesh) error {
	if err := v.Remote.Update(); err != nil {
		return err
	}
	if mesh == nil {
		return nil
	}
	return v.Local.UpdateGeometry(mesh)
}
