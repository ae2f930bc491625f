// Copyright (C) 2026 The json17 Authors. All Rights Reserved.

package json17

import (
	"bufio"
	"io"
)

// A Source is the capability required of a parser input: reading one byte at
// a time, with io.EOF as the explicit end-of-input signal. A NUL byte in the
// input is ordinary data, not a terminator.
//
// Source is satisfied natively by *strings.Reader, *bytes.Reader, and
// *bufio.Reader; use NewSource to adapt any other io.Reader.
type Source interface {
	ReadByte() (byte, error)
}

// NewSource adapts r into a Source. If r already provides byte-at-a-time
// reads it is used directly; otherwise it is wrapped in a buffered reader.
func NewSource(r io.Reader) Source {
	if s, ok := r.(Source); ok {
		return s
	}
	return bufio.NewReader(r)
}

// SourceFunc adapts a byte-producer callback into a Source, the adapter for
// input cursors that are not io.Readers. The function returns io.EOF when
// the input is exhausted.
type SourceFunc func() (byte, error)

// ReadByte satisfies the Source interface.
func (f SourceFunc) ReadByte() (byte, error) { return f() }
