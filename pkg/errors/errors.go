// Package errors provides structured error handling for the Weft framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates an initialization error. Init errors are fatal:
	// the application aborts startup with a diagnostic.
	KindInit
	// KindCallback indicates an error recovered at the callback dispatch
	// boundary. Callback errors are logged and the session continues.
	KindCallback
	// KindBinding indicates a widget binding that referenced a state key
	// with no value. Binding errors resolve to the declared default.
	KindBinding
	// KindTransport indicates a session transport (websocket/RPC) error.
	KindTransport
	// KindRender indicates a server-side rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindCallback:
		return "callback"
	case KindBinding:
		return "binding"
	case KindTransport:
		return "transport"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WeftError represents a structured error in the Weft framework.
type WeftError struct {
	// Op is the operation that failed (e.g., "server.handleConnect").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Key is the state key or trigger name involved, if applicable.
	Key string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WeftError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s [%s] key=%s: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WeftError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "dispatch.Fire").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// UnknownKeyError signals a write to a state key that no binding or
// handler references. It is reported as a warning, never fatal: the
// write still takes effect.
type UnknownKeyError struct {
	// Key is the unreferenced state key.
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("state key %q is not referenced by any binding or handler", e.Key)
}

// ErrorHandler receives errors reported by the Weft framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WeftError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
