// Copyright (C) 2026 The json17 Authors. All Rights Reserved.

package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as the body of a JSON string, without the enclosing
// quotation marks. Control bytes below 0x20 use the named two-character
// escapes where one exists and \u00XX otherwise; 0x7f is escaped as \u007f.
//
// When ensureASCII is set, every byte at or above 0x80 is escaped as \u00XX
// as well. This is a byte-wise transformation: multi-byte UTF-8 sequences
// are escaped byte by byte, not decoded into code-point escapes.
func Quote(src mem.RO, ensureASCII bool) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch {
		case b == '"' || b == '\\':
			buf = append(buf, '\\', b)
		case b < ' ':
			if e := controlEsc[b]; e != 0 {
				buf = append(buf, '\\', e)
			} else {
				buf = appendHexEsc(buf, b)
			}
		case b == 0x7f:
			buf = appendHexEsc(buf, b)
		case b >= 0x80 && ensureASCII:
			buf = appendHexEsc(buf, b)
		default:
			buf = append(buf, b)
		}
	}
	return buf
}

func appendHexEsc(buf []byte, b byte) []byte {
	return append(buf, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
}
