// Package wefttest provides an in-process harness for testing weft
// applications without a network server. It drives the same store,
// dispatcher, and serialization paths the server uses, and records
// reported errors for assertions.
package wefttest

import (
	"sync"
	"testing"

	"github.com/go-weft/weft/pkg/dispatch"
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/state"
	"github.com/go-weft/weft/pkg/ui"
)

// AppTester exercises application callbacks and UI trees in isolation.
type AppTester struct {
	store      *state.Store
	dispatcher *dispatch.Dispatcher
	root       *ui.Node
	tree       *ui.TreeNode

	recorder *errorRecorder
}

// NewAppTester creates a tester that records reported errors and
// restores the global error handler via t.Cleanup.
func NewAppTester(t *testing.T) *AppTester {
	store := state.New()
	tester := &AppTester{
		store:      store,
		dispatcher: dispatch.New(store),
		recorder:   &errorRecorder{},
	}
	errors.SetHandler(tester.recorder)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return tester
}

// State returns the tester's store.
func (a *AppTester) State() *state.Store { return a.store }

// Dispatcher returns the tester's dispatcher.
func (a *AppTester) Dispatcher() *dispatch.Dispatcher { return a.dispatcher }

// OnChange registers a change callback.
func (a *AppTester) OnChange(key string, fn dispatch.Callback) {
	a.dispatcher.OnChange(key, fn)
}

// OnEvent registers an event callback.
func (a *AppTester) OnEvent(name string, fn dispatch.Callback) {
	a.dispatcher.OnEvent(name, fn)
}

// Mount builds and serializes a component tree, seeding binding
// defaults into the store exactly as a connect would.
func (a *AppTester) Mount(root ui.Noder) *ui.TreeNode {
	a.root = root.Node()
	a.tree = ui.Serialize(a.root, a.store)
	return a.tree
}

// Tree returns the last mounted serialized tree, or nil.
func (a *AppTester) Tree() *ui.TreeNode { return a.tree }

// Root returns the last mounted node tree, or nil.
func (a *AppTester) Root() *ui.Node { return a.root }

// Set writes a state key, running change callbacks synchronously.
func (a *AppTester) Set(key string, value state.Value) {
	a.store.Set(key, value)
}

// Trigger fires a named event with optional arguments.
func (a *AppTester) Trigger(name string, args map[string]any) {
	a.dispatcher.Fire(&dispatch.Event{Name: name, Args: args})
}

// TriggerEvent fires a fully populated event.
func (a *AppTester) TriggerEvent(event *dispatch.Event) {
	a.dispatcher.Fire(event)
}

// Flush returns the coalesced changes a server would push now, or nil
// when nothing is dirty.
func (a *AppTester) Flush() map[string]state.Value {
	var changes map[string]state.Value
	a.store.Flush(func(c map[string]state.Value) { changes = c })
	return changes
}

// Errors returns every error reported since the tester was created.
func (a *AppTester) Errors() []*errors.WeftError {
	return a.recorder.errors()
}

// Panics returns every recovered panic reported since the tester was
// created.
func (a *AppTester) Panics() []*errors.PanicError {
	return a.recorder.panics()
}

// errorRecorder collects reports instead of logging them.
type errorRecorder struct {
	mu      sync.Mutex
	errs    []*errors.WeftError
	panicks []*errors.PanicError
}

func (r *errorRecorder) HandleError(err *errors.WeftError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *errorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panicks = append(r.panicks, err)
}

func (r *errorRecorder) errors() []*errors.WeftError {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*errors.WeftError, len(r.errs))
	copy(out, r.errs)
	return out
}

func (r *errorRecorder) panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*errors.PanicError, len(r.panicks))
	copy(out, r.panicks)
	return out
}
