// Package errors provides structured error handling for components.
//
// Every failure raised by the component core is a programmer-contract violation:
// an unimplemented Element, a bind request for an undeclared property, or an
// assignment to a property the component does not expose. They are returned (or,
// for Element, panicked) at the point of violation and never retried.
//
// Callers match them with the standard library:
//
//	if errors.Is(err, comperrors.ErrPropertyNotFound) { ... }
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
	// KindNotImplemented indicates Element was called on a component that
	// does not provide one.
	KindNotImplemented
	// KindPropertyNotFound indicates a bind request for a key that no layer
	// of the prototype chain declares.
	KindPropertyNotFound
	// KindPropertyNotAssignable indicates an assignment to a key the component
	// does not expose, or exposes without a setter.
	KindPropertyNotAssignable
	// KindNotCallable indicates a call through a property that holds no function.
	KindNotCallable
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotImplemented:
		return "not-implemented"
	case KindPropertyNotFound:
		return "property-not-found"
	case KindPropertyNotAssignable:
		return "property-not-assignable"
	case KindNotCallable:
		return "not-callable"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// sentinel is a comparable error value used as the root of a ComponentError chain.
type sentinel string

func (s sentinel) Error() string { return string(s) }

const (
	// ErrNotImplemented is the root of every KindNotImplemented error.
	ErrNotImplemented = sentinel("component is not implemented")
	// ErrPropertyNotFound is the root of every KindPropertyNotFound error.
	ErrPropertyNotFound = sentinel("property not found")
	// ErrPropertyNotAssignable is the root of every KindPropertyNotAssignable error.
	ErrPropertyNotAssignable = sentinel("property not assignable")
	// ErrNotCallable is the root of every KindNotCallable error.
	ErrNotCallable = sentinel("property is not callable")
	// ErrPropertyType reports a value whose type does not match the property.
	ErrPropertyType = sentinel("property type mismatch")
	// ErrReadOnly reports a write to a property that has no setter.
	ErrReadOnly = sentinel("property is read-only")
)

// ComponentError represents a structured error raised by the component core.
type ComponentError struct {
	// Op is the operation that failed (e.g., "component.BindProperties").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Key is the property key involved, if any.
	Key string
	// Component is the type name of the component, if known.
	Component string
	// Err is the underlying error. It always wraps the sentinel for Kind.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ComponentError) Error() string {
	switch {
	case e.Key != "" && e.Component != "":
		return fmt.Sprintf("%s [%s] component=%s key=%s: %v", e.Op, e.Kind, e.Component, e.Key, e.Err)
	case e.Key != "":
		return fmt.Sprintf("%s [%s] key=%s: %v", e.Op, e.Kind, e.Key, e.Err)
	case e.Component != "":
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}

// NotImplemented returns the error raised by an Element that was not overridden.
func NotImplemented(op, component string) *ComponentError {
	return &ComponentError{
		Op:        op,
		Kind:      KindNotImplemented,
		Component: component,
		Err:       ErrNotImplemented,
		Timestamp: time.Now(),
	}
}

// PropertyNotFound returns the error raised when key resolves nowhere.
func PropertyNotFound(op, key string) *ComponentError {
	return &ComponentError{
		Op:        op,
		Kind:      KindPropertyNotFound,
		Key:       key,
		Err:       ErrPropertyNotFound,
		Timestamp: time.Now(),
	}
}

// PropertyNotAssignable returns the error raised when key cannot be written.
// A non-nil cause is wrapped alongside ErrPropertyNotAssignable.
func PropertyNotAssignable(op, key string, cause error) *ComponentError {
	err := error(ErrPropertyNotAssignable)
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrPropertyNotAssignable, cause)
	}
	return &ComponentError{
		Op:        op,
		Kind:      KindPropertyNotAssignable,
		Key:       key,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// NotCallable returns the error raised when key holds no function.
func NotCallable(op, key string) *ComponentError {
	return &ComponentError{
		Op:        op,
		Kind:      KindNotCallable,
		Key:       key,
		Err:       ErrNotCallable,
		Timestamp: time.Now(),
	}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "component.Render").
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

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ErrorHandler receives errors reported by the component core.
type ErrorHandler interface {
	// HandleError is called when a component error is reported.
	HandleError(err *ComponentError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
