// Package dispatch routes state changes and UI events to registered
// callbacks. Callbacks for one trigger fire in registration order; a
// panic inside a callback is recovered at the dispatch boundary and the
// process continues with whatever state the store reached.
package dispatch

import (
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/state"
)

// TriggerKind distinguishes the two callback trigger types.
type TriggerKind int

const (
	// TriggerChange fires when a state key is written.
	TriggerChange TriggerKind = iota
	// TriggerEvent fires when a named UI event arrives from a session.
	TriggerEvent
)

func (k TriggerKind) String() string {
	if k == TriggerEvent {
		return "event"
	}
	return "change"
}

// Event carries the payload of a UI-originated trigger.
type Event struct {
	// Name is the trigger name the client fired.
	Name string `json:"name"`
	// Position is the cursor position, when the event has one.
	Position *Position `json:"position,omitempty"`
	// Key is the keyboard key, when the event has one.
	Key string `json:"key,omitempty"`
	// Pressed and Released report button/key edge state.
	Pressed  bool `json:"pressed,omitempty"`
	Released bool `json:"released,omitempty"`
	// Args holds any additional event arguments.
	Args map[string]any `json:"args,omitempty"`
}

// Position is a cursor location in client coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Arg returns a named event argument, or nil.
func (e *Event) Arg(name string) any {
	if e == nil || e.Args == nil {
		return nil
	}
	return e.Args[name]
}

// StringArg returns a named event argument as a string.
func (e *Event) StringArg(name string) string {
	if s, ok := e.Arg(name).(string); ok {
		return s
	}
	return ""
}

// Context is handed to every callback. It carries the store explicitly;
// callbacks never reach state through ambient globals.
type Context struct {
	// State is the application's store.
	State *state.Store
	// Key is the changed state key for change-triggered callbacks,
	// empty for event-triggered ones.
	Key string
	// Event is the payload for event-triggered callbacks, nil for
	// change-triggered ones.
	Event *Event
}

// Int is shorthand for ctx.State.Int.
func (c *Context) Int(key string) int { return c.State.Int(key) }

// Float is shorthand for ctx.State.Float.
func (c *Context) Float(key string) float64 { return c.State.Float(key) }

// String is shorthand for ctx.State.String.
func (c *Context) String(key string) string { return c.State.String(key) }

// Bool is shorthand for ctx.State.Bool.
func (c *Context) Bool(key string) bool { return c.State.Bool(key) }

// Callback is a registered trigger function.
type Callback func(ctx *Context)

// Registration is one row of the dispatcher's registration table.
type Registration struct {
	Kind    TriggerKind
	Trigger string
}

// Dispatcher owns the callback registration table for one application.
type Dispatcher struct {
	store  *state.Store
	events map[string][]Callback
	table  []Registration
}

// New returns a dispatcher bound to store.
func New(store *state.Store) *Dispatcher {
	return &Dispatcher{
		store:  store,
		events: make(map[string][]Callback),
	}
}

// OnChange registers fn for writes to key. The store invokes it
// synchronously on every effective Set, wrapped in panic recovery.
func (d *Dispatcher) OnChange(key string, fn Callback) {
	if fn == nil {
		return
	}
	d.table = append(d.table, Registration{Kind: TriggerChange, Trigger: key})
	d.store.OnChange(key, func(k string, _ state.Value) {
		defer errors.Recover("dispatch.change:" + k)
		fn(&Context{State: d.store, Key: k})
	})
}

// OnEvent registers fn for the named UI event.
func (d *Dispatcher) OnEvent(name string, fn Callback) {
	if fn == nil {
		return
	}
	d.table = append(d.table, Registration{Kind: TriggerEvent, Trigger: name})
	d.events[name] = append(d.events[name], fn)
}

// Fire delivers a UI event to every callback registered for its name,
// in registration order. A panicking callback is recovered and logged;
// remaining callbacks still run. Unknown events are reported as
// callback warnings and dropped.
func (d *Dispatcher) Fire(event *Event) {
	if event == nil {
		return
	}
	callbacks := d.events[event.Name]
	if len(callbacks) == 0 {
		errors.Report(&errors.WeftError{
			Op:   "dispatch.Fire",
			Kind: errors.KindCallback,
			Key:  event.Name,
			Err:  &errors.UnknownKeyError{Key: event.Name},
		})
		return
	}
	for _, fn := range callbacks {
		func() {
			defer errors.Recover("dispatch.event:" + event.Name)
			fn(&Context{State: d.store, Event: event})
		}()
	}
}

// Registrations returns the registration table in registration order.
func (d *Dispatcher) Registrations() []Registration {
	out := make([]Registration, len(d.table))
	copy(out, d.table)
	return out
}
