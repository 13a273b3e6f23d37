// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error types and error handling utilities for the collection layer.

package api

import (
	"errors"
	"fmt"
)

// Sentinel errors used across the library. All structured errors unwrap
// to one of these, so errors.Is works regardless of which entry point
// produced the failure.
var (
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrEmptyCollection        = errors.New("collection is empty")
	ErrConcurrentModification = errors.New("collection modified during iteration")
	ErrInvalidOperation       = errors.New("operation not valid in current state")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeEmptyCollection
	ErrCodeConcurrentModification
	ErrCodeInvalidOperation
)

// sentinel maps an ErrorCode to its sentinel for unwrapping.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeEmptyCollection:
		return ErrEmptyCollection
	case ErrCodeConcurrentModification:
		return ErrConcurrentModification
	case ErrCodeInvalidOperation:
		return ErrInvalidOperation
	}
	return nil
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel matching the error code.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
