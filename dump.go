// Copyright (C) 2026 The json17 Authors. All Rights Reserved.

package json17

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tpsoete/json17/internal/escape"

	"go4.org/mem"
)

// DumpOptions carries the settings for serializing a Value to JSON text.
type DumpOptions struct {
	// Indent selects the layout: negative produces fully compact output with
	// no newlines, zero produces a newline per element with no leading fill,
	// and a positive value produces that many IndentChar per nesting level.
	Indent int

	// IndentChar is the fill character for positive Indent. Zero means ' '.
	IndentChar byte

	// EnsureASCII escapes every byte at or above 0x80 as \u00XX. The
	// escaping is byte-wise, so multi-byte UTF-8 sequences are escaped per
	// byte rather than per code point; see escape.Quote.
	EnsureASCII bool
}

// Compact are the default dump settings: no newlines or indentation.
var Compact = DumpOptions{Indent: -1, IndentChar: ' '}

func dumpOpt(opts []DumpOptions) DumpOptions {
	if len(opts) == 0 {
		return Compact
	}
	opt := opts[0]
	if opt.IndentChar == 0 {
		opt.IndentChar = ' '
	}
	return opt
}

// indentRunSize is the length of the cached run of fill characters. Deeper
// fills are emitted as repeated writes of the run plus a remainder.
const indentRunSize = 64

// A dumpContext wraps a Sink with the layout state of a dump in progress.
// Write errors are sticky: after the first failure all writes are skipped
// and the error is reported once at the end.
type dumpContext struct {
	w    Sink
	opt  DumpOptions
	fill int // current fill width in characters; -1 in compact mode
	run  [indentRunSize]byte
	err  error
}

func newDumpContext(w Sink, opt DumpOptions) *dumpContext {
	d := &dumpContext{w: w, opt: opt}
	if opt.Indent < 0 {
		d.fill = -1
	} else if opt.Indent > 0 {
		for i := range d.run {
			d.run[i] = opt.IndentChar
		}
	}
	return d
}

func (d *dumpContext) byteOut(b byte) {
	if d.err == nil {
		d.err = d.w.WriteByte(b)
	}
}

func (d *dumpContext) bytesOut(p []byte) {
	if d.err == nil {
		_, d.err = d.w.Write(p)
	}
}

func (d *dumpContext) stringOut(s string) {
	if d.err == nil {
		_, d.err = d.w.WriteString(s)
	}
}

// newline advances to the next line and writes the current fill. In compact
// mode it writes nothing; at fill 0 only the newline itself is written.
func (d *dumpContext) newline() {
	if d.fill < 0 {
		return
	}
	d.byteOut('\n')
	for n := d.fill; n > 0 && d.err == nil; n -= indentRunSize {
		d.bytesOut(d.run[:min(n, indentRunSize)])
	}
}

func (d *dumpContext) push() {
	if d.fill >= 0 {
		d.fill += d.opt.Indent
	}
}

func (d *dumpContext) pop() {
	if d.fill >= 0 {
		d.fill -= d.opt.Indent
	}
}

// Dump serializes v as JSON text to w. In non-compact mode a single trailing
// newline follows the document, the conventional layout for stream targets.
func (v *Value[P]) Dump(w io.Writer, opts ...DumpOptions) error {
	opt := dumpOpt(opts)
	s := NewSink(w)
	d := newDumpContext(s, opt)
	v.dump(d)
	if opt.Indent >= 0 {
		d.byteOut('\n')
	}
	if d.err != nil {
		return d.err
	}
	if b, ok := s.(*bufio.Writer); ok {
		return b.Flush()
	}
	return nil
}

// DumpTo serializes v as JSON text to the sink s, with no trailing newline.
func (v *Value[P]) DumpTo(s Sink, opts ...DumpOptions) error {
	d := newDumpContext(s, dumpOpt(opts))
	v.dump(d)
	return d.err
}

// DumpString serializes v as JSON text and returns it as a string.
func (v *Value[P]) DumpString(opts ...DumpOptions) string {
	var sb strings.Builder
	d := newDumpContext(&sb, dumpOpt(opts))
	v.dump(d)
	return sb.String()
}

func (v *Value[P]) dump(d *dumpContext) {
	switch v.kind {
	case NullType:
		d.stringOut("null")
	case BoolType:
		if v.b {
			d.stringOut("true")
		} else {
			d.stringOut("false")
		}
	case NumberType:
		dumpNumber(d, v.n)
	case StringType:
		dumpString(d, v.cell().s)
	case ArrayType:
		a := v.cell().a
		if len(a) == 0 {
			d.stringOut("[]")
			return
		}
		d.byteOut('[')
		d.push()
		for i := range a {
			if i > 0 {
				d.byteOut(',')
			}
			d.newline()
			a[i].dump(d)
		}
		d.pop()
		d.newline()
		d.byteOut(']')
	case ObjectType:
		o := &v.cell().o
		if o.Len() == 0 {
			d.stringOut("{}")
			return
		}
		d.byteOut('{')
		d.push()
		for i, m := range o.members {
			if i > 0 {
				d.byteOut(',')
			}
			d.newline()
			dumpString(d, m.Key)
			d.stringOut(": ")
			m.Value.dump(d)
		}
		d.pop()
		d.newline()
		d.byteOut('}')
	}
}

// dumpNumber writes the JSON representation of n. Non-finite values have no
// JSON literal and are written as null. Integral values within the 32-bit
// range print bare, without a decimal point; everything else prints with 17
// significant digits, enough to round-trip a float64 exactly.
func dumpNumber(d *dumpContext, n float64) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		d.stringOut("null")
		return
	}
	if math.Abs(n) <= math.MaxInt32 && math.Trunc(n) == n {
		d.stringOut(strconv.FormatInt(int64(n), 10))
		return
	}
	d.stringOut(strconv.FormatFloat(n, 'g', 17, 64))
}

func dumpString(d *dumpContext, s string) {
	d.byteOut('"')
	d.bytesOut(escape.Quote(mem.S(s), d.opt.EnsureASCII))
	d.byteOut('"')
}
