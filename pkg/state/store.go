// Package state implements the reactive key/value store that backs every
// Weft application. Widget properties bind to state keys by name; writes
// notify change handlers synchronously and mark keys dirty for the next
// push to connected sessions.
package state

import (
	"reflect"
	"sort"

	"github.com/go-weft/weft/pkg/errors"
)

// Value is any JSON-encodable state value: scalars, strings, lists,
// or nested maps.
type Value = any

// Handler observes writes to a single state key.
type Handler func(key string, value Value)

// Store maps state keys to their current values.
//
// Store is NOT thread-safe. All access must happen on the application's
// run loop; background goroutines hand work to the loop instead of
// touching the store directly.
type Store struct {
	values   map[string]Value
	handlers map[string][]Handler
	declared map[string]bool
	dirty    map[string]bool
	depth    int
}

// New returns an empty store.
func New() *Store {
	return &Store{
		values:   make(map[string]Value),
		handlers: make(map[string][]Handler),
		declared: make(map[string]bool),
		dirty:    make(map[string]bool),
	}
}

// Declare marks a key as referenced by a binding or handler. Writes to
// undeclared, unset keys are reported as unknown-key warnings.
func (s *Store) Declare(key string) {
	s.declared[key] = true
}

// Has reports whether the key currently holds a value.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Get returns the current value for key, or nil if unset.
func (s *Store) Get(key string) Value {
	return s.values[key]
}

// GetOr returns the current value for key, or def if unset.
func (s *Store) GetOr(key string, def Value) Value {
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// Set writes a value and synchronously invokes every handler registered
// for key, in registration order. A handler that itself calls Set on
// another key is processed depth-first before the outer Set returns.
//
// Writing a value deep-equal to the current one is a no-op; this is
// what terminates re-entrant handler cycles. Writing a key that no
// binding or handler has declared emits a non-fatal warning and still
// takes effect.
func (s *Store) Set(key string, value Value) {
	if old, ok := s.values[key]; ok && reflect.DeepEqual(old, value) {
		return
	}
	if !s.declared[key] && !s.Has(key) {
		errors.Warn("state.Set", key, &errors.UnknownKeyError{Key: key})
	}
	s.values[key] = value
	s.dirty[key] = true

	s.depth++
	for _, h := range s.handlers[key] {
		h(key, value)
	}
	s.depth--
}

// SetDefault writes a value only if the key is unset. It declares the
// key and does not invoke handlers or mark the key dirty beyond the
// initial write; defaults are part of first-paint state, not changes.
func (s *Store) SetDefault(key string, value Value) {
	s.Declare(key)
	if s.Has(key) {
		return
	}
	s.values[key] = value
	s.dirty[key] = true
}

// OnChange registers a handler for writes to key. Handlers for the same
// key fire in registration order. Handlers are never removed; they live
// for the process lifetime.
func (s *Store) OnChange(key string, h Handler) {
	if h == nil {
		return
	}
	s.Declare(key)
	s.handlers[key] = append(s.handlers[key], h)
}

// Keys returns all set keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a shallow copy of the current state.
func (s *Store) Snapshot() map[string]Value {
	snap := make(map[string]Value, len(s.values))
	for k, v := range s.values {
		snap[k] = v
	}
	return snap
}

// Flush hands the dirty key set (latest values only) to sink and clears
// it. Rapid repeated writes to one key between flushes coalesce to a
// single entry. Flush does nothing when no key is dirty.
func (s *Store) Flush(sink func(changes map[string]Value)) {
	if len(s.dirty) == 0 || sink == nil {
		return
	}
	changes := make(map[string]Value, len(s.dirty))
	for k := range s.dirty {
		changes[k] = s.values[k]
	}
	s.dirty = make(map[string]bool)
	sink(changes)
}
