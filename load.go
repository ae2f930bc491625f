// Copyright (C) 2026 The json17 Authors. All Rights Reserved.

package json17

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tpsoete/json17/internal/escape"

	"go4.org/mem"
)

// LoadOptions carries the settings for parsing JSON text into a Value.
type LoadOptions struct {
	// MaxDepth limits the nesting depth of arrays and objects, bounding the
	// parser's recursion on adversarial input. Zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultMaxDepth is the nesting depth limit applied when LoadOptions does
// not specify one.
const DefaultMaxDepth = 1000

// Load parses one JSON document from src into v, replacing its previous
// contents. On failure it returns a *ParseError describing the first
// offending position, and the contents of v are unspecified and must be
// discarded. Input following the document is left unread and not validated.
func (v *Value[P]) Load(src Source, opts ...LoadOptions) (err error) {
	p := &parser[P]{src: src, maxDepth: DefaultMaxDepth}
	if len(opts) != 0 && opts[0].MaxDepth > 0 {
		p.maxDepth = opts[0].MaxDepth
	}
	defer p.recoverParseError(&err)

	v.SetNull()
	ch, ok := p.nonspace()
	if !ok {
		p.failf("unexpected end of input")
	}
	p.parseValue(v, ch)
	return nil
}

// LoadString parses one JSON document from s into v. See Load.
func (v *Value[P]) LoadString(s string, opts ...LoadOptions) error {
	return v.Load(strings.NewReader(s), opts...)
}

// LoadBytes parses one JSON document from data into v. See Load.
func (v *Value[P]) LoadBytes(data []byte, opts ...LoadOptions) error {
	return v.Load(bytes.NewReader(data), opts...)
}

// Parse parses and returns one JSON document from src.
func Parse[P Policy](src Source, opts ...LoadOptions) (Value[P], error) {
	var v Value[P]
	err := v.Load(src, opts...)
	return v, err
}

// ParseString parses and returns one JSON document from s.
func ParseString[P Policy](s string, opts ...LoadOptions) (Value[P], error) {
	var v Value[P]
	err := v.LoadString(s, opts...)
	return v, err
}

// A parser consumes bytes from a Source and builds a Value tree by recursive
// descent with a single byte of lookahead. Each parse subroutine consumes
// its own input and returns the next not-yet-consumed, whitespace-skipped
// byte to its caller, with ok false once the source is exhausted. Failures
// panic with a *ParseError, recovered at the Load boundary.
type parser[P Policy] struct {
	src      Source
	off      int // bytes consumed so far
	depth    int // current container nesting
	maxDepth int
}

func (p *parser[P]) recoverParseError(errp *error) {
	if x := recover(); x != nil {
		if pe, ok := x.(*ParseError); ok {
			*errp = pe
			return
		}
		panic(x)
	}
}

func (p *parser[P]) failf(msg string, args ...any) {
	panic(&ParseError{Offset: p.off, Message: fmt.Sprintf(msg, args...)})
}

func (p *parser[P]) failErr(err error) {
	panic(&ParseError{Offset: p.off, Message: err.Error(), err: err})
}

// read returns the next input byte, or ok false at end of input.
func (p *parser[P]) read() (byte, bool) {
	b, err := p.src.ReadByte()
	if err == io.EOF {
		return 0, false
	} else if err != nil {
		p.failErr(err)
	}
	p.off++
	return b, true
}

func isSpace(b byte) bool { return b == ' ' || b == '\r' || b == '\n' || b == '\t' }
func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// nonspace returns the next non-whitespace input byte, or ok false.
func (p *parser[P]) nonspace() (byte, bool) {
	for {
		b, ok := p.read()
		if !ok || !isSpace(b) {
			return b, ok
		}
	}
}

// parseValue dispatches on the first byte of a value. ch must already be
// non-whitespace.
func (p *parser[P]) parseValue(v *Value[P], ch byte) (byte, bool) {
	switch {
	case isDigit(ch) || ch == '-':
		return p.parseNumber(v, ch)
	case ch == '"':
		return p.parseString(v.SetString())
	case ch == '[':
		p.enter()
		next, ok := p.parseArray(v.SetArray())
		p.depth--
		return next, ok
	case ch == '{':
		p.enter()
		next, ok := p.parseObject(v.SetObject())
		p.depth--
		return next, ok
	case ch == 't':
		p.literal("rue")
		v.SetBool(true)
		return p.nonspace()
	case ch == 'f':
		p.literal("alse")
		v.SetBool(false)
		return p.nonspace()
	case ch == 'n':
		p.literal("ull")
		v.SetNull()
		return p.nonspace()
	}
	p.failf("unexpected character %q", ch)
	panic("unreachable")
}

func (p *parser[P]) enter() {
	p.depth++
	if p.depth > p.maxDepth {
		panic(&ParseError{
			Offset:  p.off,
			Message: fmt.Sprintf("%v (depth limit %d)", ErrTooDeep, p.maxDepth),
			err:     ErrTooDeep,
		})
	}
}

// literal consumes the remaining bytes of a true/false/null constant,
// matching them one by one.
func (p *parser[P]) literal(rest string) {
	for i := 0; i < len(rest); i++ {
		ch, ok := p.read()
		if !ok || ch != rest[i] {
			p.failf("malformed constant")
		}
	}
}

// parseNumber accumulates a number digit by digit. ch is the already-read
// first byte and must be '-' or a digit. The result is stored into v.
func (p *parser[P]) parseNumber(v *Value[P], ch byte) (byte, bool) {
	neg := ch == '-'
	if neg {
		c, ok := p.read()
		if !ok || !isDigit(c) {
			p.failf("missing digits after minus sign")
		}
		ch = c
	}

	var num float64
	var ok bool
	if ch != '0' {
		for {
			num = num*10 + float64(ch-'0')
			ch, ok = p.read()
			if !ok || !isDigit(ch) {
				break
			}
		}
	} else {
		// A leading zero stands alone; 0.5 is valid, 05 scans as two numbers.
		ch, ok = p.read()
	}

	if ok && ch == '.' {
		base := 1.0
		for {
			ch, ok = p.read()
			if !ok || !isDigit(ch) {
				break
			}
			base /= 10
			num += base * float64(ch-'0')
		}
	}

	if ok && (ch == 'e' || ch == 'E') {
		ch, ok = p.read()
		if !ok {
			p.failf("missing exponent digits")
		}
		eneg := ch == '-'
		if ch == '-' || ch == '+' {
			ch, ok = p.read()
		}
		if !ok || !isDigit(ch) {
			p.failf("missing exponent digits")
		}
		expo := int(ch - '0')
		for {
			ch, ok = p.read()
			if !ok || !isDigit(ch) {
				break
			}
			expo = expo*10 + int(ch-'0')
		}
		if eneg {
			expo = -expo
		}
		num *= math.Pow(10, float64(expo))
	}

	if neg {
		num = -num
	}
	v.SetNumber(num)
	if ok && isSpace(ch) {
		return p.nonspace()
	}
	return ch, ok
}

// parseString consumes a string body up to the unescaped closing quote,
// validating escape sequences as it goes, then decodes the collected bytes.
// The opening quote must already be consumed.
func (p *parser[P]) parseString(out *string) (byte, bool) {
	var buf []byte
	for {
		ch, ok := p.read()
		if !ok {
			p.failf("unterminated string")
		}
		if ch == '"' {
			break
		}
		if ch != '\\' {
			buf = append(buf, ch)
			continue
		}
		esc, ok := p.read()
		if !ok {
			p.failf("unterminated string")
		}
		switch esc {
		case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			buf = append(buf, '\\', esc)
		case 'u':
			buf = append(buf, '\\', 'u')
			for i := 0; i < 4; i++ {
				h, ok := p.read()
				if !ok || !isHexDigit(h) {
					p.failf("invalid Unicode escape")
				}
				buf = append(buf, h)
			}
		default:
			p.failf("invalid %q after escape", esc)
		}
	}
	dec, err := escape.Unquote(mem.B(buf))
	if err != nil {
		p.failErr(err)
	}
	*out = string(dec)
	return p.nonspace()
}

// parseArray consumes the elements of an array. The opening bracket must
// already be consumed; the closing bracket is consumed before returning.
func (p *parser[P]) parseArray(out *Array[P]) (byte, bool) {
	ch, ok := p.nonspace()
	if !ok {
		p.failf("unterminated array")
	}
	if ch == ']' {
		return p.nonspace()
	}
	for {
		*out = append(*out, Value[P]{})
		ch, ok = p.parseValue(&(*out)[len(*out)-1], ch)
		if !ok {
			p.failf("unterminated array")
		}
		if ch == ']' {
			return p.nonspace()
		}
		if ch != ',' {
			p.failf(`got %q, want "," or "]"`, ch)
		}
		ch, ok = p.nonspace()
		if !ok {
			p.failf("unterminated array")
		}
	}
}

// parseObject consumes the members of an object. The opening brace must
// already be consumed; the closing brace is consumed before returning.
// A duplicate key replaces the member parsed earlier.
func (p *parser[P]) parseObject(out *Object[P]) (byte, bool) {
	ch, ok := p.nonspace()
	if !ok {
		p.failf("unterminated object")
	}
	if ch == '}' {
		return p.nonspace()
	}
	for {
		if ch != '"' {
			p.failf(`got %q, want a "-quoted object key`, ch)
		}
		var key string
		ch, ok = p.parseString(&key)
		if !ok {
			p.failf("unterminated object")
		}
		if ch != ':' {
			p.failf(`got %q, want ":"`, ch)
		}
		ch, ok = p.nonspace()
		if !ok {
			p.failf("unterminated object")
		}
		var val Value[P]
		ch, ok = p.parseValue(&val, ch)
		out.Set(key, val)
		if !ok {
			p.failf("unterminated object")
		}
		if ch == '}' {
			return p.nonspace()
		}
		if ch != ',' {
			p.failf(`got %q, want "," or "}"`, ch)
		}
		ch, ok = p.nonspace()
		if !ok {
			p.failf("unterminated object")
		}
	}
}
