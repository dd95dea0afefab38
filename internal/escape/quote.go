// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// shortEsc maps control and special bytes to their two-byte escapes.
// A zero entry means the byte has no short form.
var shortEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'"':  '"',
	'\\': '\\',
}

const hexDigit = "0123456789abcdef"

// AppendQuote appends the JSON string encoding of src to dst, including the
// enclosing quotation marks, and returns the extended slice.
//
// Control characters without a short escape are written as \u00XX. Bytes that
// are not valid UTF-8 are written as \ufffd, so the encoding is lossy for
// such input.
func AppendQuote(dst []byte, src mem.RO) []byte {
	dst = append(dst, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		switch {
		case r < utf8.RuneSelf:
			if int(r) < len(shortEsc) && shortEsc[r] != 0 {
				dst = append(dst, '\\', shortEsc[r])
			} else if r < ' ' {
				dst = append(dst, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			} else {
				dst = append(dst, byte(r))
			}
		case r == utf8.RuneError:
			dst = append(dst, `\ufffd`...)
		case r == '\u2028', r == '\u2029':
			dst = append(dst, '\\', 'u', '2', '0', '2', hexDigit[r&15])
		default:
			dst = utf8.AppendRune(dst, r)
		}
	}
	return append(dst, '"')
}
