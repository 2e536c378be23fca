// Package errors provides structured error handling for NumberFlow.
//
// Nothing in the widget engine returns errors across Flow.Update; the few
// recoverable failures (config parsing, font loading, text measurement) are
// reported here and the caller degrades to a default.
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
	// KindConfig indicates a configuration load or parse failure.
	KindConfig
	// KindMeasure indicates a text measurement failure.
	KindMeasure
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindMeasure:
		return "measure"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FlowError represents a structured error in NumberFlow.
type FlowError struct {
	// Op is the operation that failed (e.g., "text.FontMeasurer.Measure").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Value is the display value being processed, if applicable.
	Value string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FlowError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s [%s] value=%q: %v", e.Op, e.Kind, e.Value, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.SpringIntegrator.step").
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

// ErrorHandler receives errors reported by NumberFlow.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FlowError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
