// Copyright (C) 2026 The json17 Authors. All Rights Reserved.

package json17

import (
	"bufio"
	"io"
)

// A Sink is the capability set required of a dump target: writing one byte,
// a run of bytes, or a literal string.
//
// Sink is satisfied natively by *bytes.Buffer, *strings.Builder, and
// *bufio.Writer; use NewSink to adapt any other io.Writer.
type Sink interface {
	io.Writer
	io.ByteWriter
	WriteString(s string) (int, error)
}

// NewSink adapts w into a Sink. If w already provides the full capability
// set it is used directly; otherwise it is wrapped in a buffered writer,
// which the caller must flush (Dump does this itself).
func NewSink(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return bufio.NewWriter(w)
}

// SinkFunc adapts a byte-consumer callback into a Sink, the adapter for
// output cursors that are not io.Writers.
type SinkFunc func(byte) error

// WriteByte satisfies the Sink interface.
func (f SinkFunc) WriteByte(b byte) error { return f(b) }

// Write satisfies the Sink interface.
func (f SinkFunc) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := f(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString satisfies the Sink interface.
func (f SinkFunc) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if err := f(s[i]); err != nil {
			return i, err
		}
	}
	return len(s), nil
}
