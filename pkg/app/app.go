// Package app ties a weft application together: the state store, the
// callback dispatcher, and the network server, driven through a fixed
// startup sequence. An App moves strictly forward through its phases;
// once stopped it cannot be restarted.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-weft/weft/pkg/dispatch"
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/server"
	"github.com/go-weft/weft/pkg/state"
	"github.com/go-weft/weft/pkg/ui"
)

// Phase is a point in the application lifecycle.
type Phase int

const (
	// PhaseConstructed is the phase after New.
	PhaseConstructed Phase = iota
	// PhaseStateInitialized is reached after InitState.
	PhaseStateInitialized
	// PhaseUIBuilt is reached after BuildUI.
	PhaseUIBuilt
	// PhaseRunning is reached when Run starts serving.
	PhaseRunning
	// PhaseStopped is terminal.
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseConstructed:
		return "constructed"
	case PhaseStateInitialized:
		return "state-initialized"
	case PhaseUIBuilt:
		return "ui-built"
	case PhaseRunning:
		return "running"
	case PhaseStopped:
		return "stopped"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Options configure an App.
type Options struct {
	// Name is the application name shown to clients.
	Name string
	// Addr is the host:port to serve on. Defaults to localhost:8080.
	Addr string
	// Debug enables request logging.
	Debug bool
}

// App is one weft application.
type App struct {
	opts       Options
	store      *state.Store
	dispatcher *dispatch.Dispatcher
	server     *server.Server

	mu    sync.Mutex
	phase Phase

	root *ui.Node
	tree *ui.TreeNode

	cancel context.CancelFunc
}

// New constructs an application in PhaseConstructed.
func New(opts Options) *App {
	if opts.Addr == "" {
		opts.Addr = "localhost:8080"
	}
	a := &App{opts: opts}
	a.store = state.New()
	a.dispatcher = dispatch.New(a.store)
	a.server = server.New(server.Options{
		Addr:    opts.Addr,
		AppName: opts.Name,
		Debug:   opts.Debug,
	}, a.store, a.dispatcher, func() *ui.TreeNode { return a.tree })
	return a
}

// State returns the application's store. Outside callbacks it must
// only be touched before Run or through Do.
func (a *App) State() *state.Store { return a.store }

// Phase returns the current lifecycle phase.
func (a *App) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

func (a *App) advance(op string, from, to Phase) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase != from {
		return &errors.WeftError{
			Op:   op,
			Kind: errors.KindInit,
			Err:  fmt.Errorf("in phase %s, want %s", a.phase, from),
		}
	}
	a.phase = to
	return nil
}

// OnChange registers a callback for writes to a state key.
func (a *App) OnChange(key string, fn dispatch.Callback) {
	a.dispatcher.OnChange(key, fn)
}

// OnEvent registers a callback for a named UI event.
func (a *App) OnEvent(name string, fn dispatch.Callback) {
	a.dispatcher.OnEvent(name, fn)
}

// InitState runs fn to populate initial state. An error from fn is
// fatal: it aborts startup and is returned unchanged.
func (a *App) InitState(fn func(s *state.Store) error) error {
	if err := a.advance("app.InitState", PhaseConstructed, PhaseStateInitialized); err != nil {
		return err
	}
	if fn == nil {
		return nil
	}
	if err := fn(a.store); err != nil {
		a.mu.Lock()
		a.phase = PhaseStopped
		a.mu.Unlock()
		return &errors.WeftError{Op: "app.InitState", Kind: errors.KindInit, Err: err}
	}
	return nil
}

// BuildUI builds the component tree. Binding defaults declared in the
// tree are seeded into unset state keys here.
func (a *App) BuildUI(fn func() ui.Noder) error {
	if err := a.advance("app.BuildUI", PhaseStateInitialized, PhaseUIBuilt); err != nil {
		return err
	}
	if fn == nil {
		return &errors.WeftError{
			Op:   "app.BuildUI",
			Kind: errors.KindInit,
			Err:  fmt.Errorf("nil build function"),
		}
	}
	root := fn()
	if root == nil {
		return &errors.WeftError{
			Op:   "app.BuildUI",
			Kind: errors.KindInit,
			Err:  fmt.Errorf("build function returned no tree"),
		}
	}
	a.root = root.Node()
	a.tree = ui.Serialize(a.root, a.store)
	return nil
}

// RebuildUI re-runs serialization against the current root and pushes
// the new tree to every session. Callbacks use it after mutating the
// root's nodes.
func (a *App) RebuildUI() {
	if a.root == nil {
		return
	}
	a.tree = ui.Serialize(a.root, a.store)
	a.server.PushTree(a.tree)
}

// Root returns the built component tree, or nil before BuildUI.
func (a *App) Root() *ui.Node { return a.root }

// Run serves the application until ctx is cancelled or Stop is called.
// It blocks for the lifetime of the server.
func (a *App) Run(ctx context.Context) error {
	if err := a.advance("app.Run", PhaseUIBuilt, PhaseRunning); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()

	port, err := a.server.Start()
	if err != nil {
		a.mu.Lock()
		a.phase = PhaseStopped
		a.mu.Unlock()
		return &errors.WeftError{Op: "app.Run", Kind: errors.KindInit, Err: err}
	}
	if a.opts.Debug {
		fmt.Printf("[weft] %s serving on port %d\n", a.opts.Name, port)
	}

	err = a.server.Run(ctx)
	a.server.Stop()
	a.mu.Lock()
	a.phase = PhaseStopped
	a.mu.Unlock()
	if err == context.Canceled {
		return nil
	}
	return err
}

// Stop cancels Run. It is safe to call from any goroutine.
func (a *App) Stop() {
	a.mu.Lock()
	cancel := a.cancel
	a.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Do runs f on the application's run loop and waits for it. Background
// goroutines use it to touch state safely; resulting changes are
// pushed before Do returns.
func (a *App) Do(f func()) {
	a.server.Do(f)
}

// Server exposes the underlying network server.
func (a *App) Server() *server.Server { return a.server }
