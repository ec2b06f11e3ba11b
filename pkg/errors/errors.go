// Package errors provides structured error reporting for snapstep controls.
//
// Control operations never return errors: invalid configuration self-heals
// and malformed gesture sequences are ignored. What remains reportable is
// host-side failure, such as a value listener that panics during a timer
// tick or a configuration file that cannot be read. Those are routed to a
// process-wide [ErrorHandler].
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
	// KindConfig indicates a configuration loading or parsing failure.
	KindConfig
	// KindCallback indicates a panic inside a host-supplied listener.
	KindCallback
	// KindScheduler indicates a panic inside an autorepeat tick.
	KindScheduler
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindCallback:
		return "callback"
	case KindScheduler:
		return "scheduler"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured error attributed to an operation and, when known,
// to a specific control instance.
type Error struct {
	// Op is the operation that failed (e.g., "config.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Control is the id of the control involved, if any.
	Control string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Control != "" {
		return fmt.Sprintf("%s [%s] control=%s: %v", e.Op, e.Kind, e.Control, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "stepper.notify").
	Op string
	// Kind is KindCallback or KindScheduler when the recovering helper
	// knows where the panic came from.
	Kind ErrorKind
	// Control is the id of the control whose callback panicked, if any.
	Control string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	switch {
	case e.Op != "" && e.Control != "":
		return fmt.Sprintf("panic in %s control=%s: %v", e.Op, e.Control, e.Value)
	case e.Op != "":
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	default:
		return fmt.Sprintf("panic: %v", e.Value)
	}
}

// ErrorHandler receives errors reported by snapstep.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
