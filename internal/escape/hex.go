// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the escape syntax of JSON strings.
package escape

import (
	"unicode/utf16"

	"go4.org/mem"
)

// ParseHex4 decodes the four hexadecimal digits at the front of src as a
// UTF-16 code unit. It reports false if src is shorter than four bytes or if
// any of the first four bytes is not a hex digit.
func ParseHex4(src mem.RO) (rune, bool) {
	if src.Len() < 4 {
		return 0, false
	}
	var v rune
	for i := range 4 {
		b := src.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, false
		}
	}
	return v, true
}

// IsHighSurrogate reports whether r is the leading half of a surrogate pair.
func IsHighSurrogate(r rune) bool { return r >= 0xd800 && r <= 0xdbff }

// IsLowSurrogate reports whether r is the trailing half of a surrogate pair.
func IsLowSurrogate(r rune) bool { return r >= 0xdc00 && r <= 0xdfff }

// Combine returns the code point encoded by the surrogate pair (hi, lo).
// The caller must ensure that hi and lo are high and low surrogates.
func Combine(hi, lo rune) rune { return utf16.DecodeRune(hi, lo) }
