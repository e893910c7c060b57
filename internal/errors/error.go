package errors

import (
	"errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig     Category = "config"
	CategoryRuntime    Category = "runtime"
	CategoryNavigation Category = "navigation"
	CategoryProtocol   Category = "protocol"
	CategoryCLI        Category = "cli"
)

// RouterError is a structured error with a registry code, suggestion and detail.
type RouterError struct {
	// Code is a unique error identifier (e.g., "R001").
	Code string

	// Category is the error type (config, runtime, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of this occurrence.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *RouterError) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	if e.Code != "" {
		return e.Code + ": " + msg
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *RouterError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target carries the same code.
func (e *RouterError) Is(target error) bool {
	var t *RouterError
	if !errors.As(target, &t) || t == nil {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithDetail adds a detailed explanation to the error.
func (e *RouterError) WithDetail(d string) *RouterError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detail to the error.
func (e *RouterError) WithDetailf(format string, args ...any) *RouterError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *RouterError) WithSuggestion(s string) *RouterError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *RouterError) Wrap(err error) *RouterError {
	e.Wrapped = err
	return e
}

// New creates a RouterError from a registered error code.
func New(code string) *RouterError {
	template, ok := registry[code]
	if !ok {
		return &RouterError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &RouterError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new RouterError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *RouterError {
	return &RouterError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a RouterError.
// Errors that already carry a code are returned unchanged.
func FromError(err error, code string) *RouterError {
	if err == nil {
		return nil
	}
	var re *RouterError
	if errors.As(err, &re) && re.Code != "" {
		return re
	}
	return New(code).Wrap(err)
}

// CodeOf returns the registry code carried by err, or "" if none.
func CodeOf(err error) string {
	var re *RouterError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}
