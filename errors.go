// Copyright (C) 2026 The json17 Authors. All Rights Reserved.

package json17

import (
	"errors"
	"fmt"
)

// Errors reported by accessors and indexing operations. Errors returned by
// the methods of Value wrap these sentinels, adding the kinds, index, or key
// concerned; use errors.Is to classify them.
var (
	// ErrTypeMismatch means an accessor was invoked against a Value holding
	// an incompatible kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIndexOutOfRange means a read-only array index was at or beyond the
	// end of the array.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrKeyNotFound means a read-only object lookup named an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTooDeep means the input exceeded the configured nesting depth limit.
	ErrTooDeep = errors.New("too deeply nested")
)

// ParseError is the concrete type of errors reported by Load and Parse.
type ParseError struct {
	Offset  int    // byte offset in the source where parsing failed
	Message string // description of the failure

	err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Message, e.Offset)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.err }
