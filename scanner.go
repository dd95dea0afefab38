// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"math"
	"strconv"

	"go4.org/mem"
)

// Literal spellings of the JSON constants.
var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

// peek returns the byte at the cursor, or 0 at the end of the input.
// Use atEnd to distinguish the end of input from a NUL byte.
func (c *parser) peek() byte { return c.at(c.pos) }

func (c *parser) at(i int) byte {
	if i < c.in.Len() {
		return c.in.At(i)
	}
	return 0
}

func (c *parser) atEnd() bool { return c.pos >= c.in.Len() }

// skipSpace advances the cursor past any whitespace.
func (c *parser) skipSpace() {
	for isSpace(c.peek()) {
		c.pos++
	}
}

// parseLiteral consumes the constant lit and sets v to t.
// Precondition: the cursor is at the first byte of lit.
func (c *parser) parseLiteral(v *Value, lit mem.RO, t Tag) error {
	if !mem.HasPrefix(c.in.SliceFrom(c.pos), lit) {
		return c.fail(InvalidValue, c.pos)
	}
	c.pos += lit.Len()
	v.setTag(t)
	return nil
}

// parseNumber consumes a number and sets v to its value.  The syntax is
// checked completely before conversion, so a malformed number consumes no
// input.
func (c *parser) parseNumber(v *Value) error {
	end, ok := c.scanNumber()
	if !ok {
		return c.fail(InvalidValue, c.pos)
	}
	text := c.in.SliceFrom(c.pos).SliceTo(end - c.pos)
	f, err := strconv.ParseFloat(text.StringCopy(), 64)
	if math.IsInf(f, 0) {
		return c.fail(NumberTooBig, c.pos)
	} else if err != nil && !errors.Is(err, strconv.ErrRange) {
		return c.fail(InvalidValue, c.pos)
	}
	v.SetNumber(f)
	c.pos = end
	return nil
}

// scanNumber reports the end offset of the number beginning at the cursor,
// and whether the number is well-formed. It does not move the cursor.
//
//	number = [ "-" ] int [ frac ] [ exp ]
//	   int = "0" / digit1-9 *digit
//	  frac = "." 1*digit
//	   exp = ("e" / "E") [ "-" / "+" ] 1*digit
func (c *parser) scanNumber() (int, bool) {
	i := c.pos
	if c.at(i) == '-' {
		i++
	}
	start := i
	if !isDigit(c.at(i)) {
		return i, false
	}
	for isDigit(c.at(i)) {
		i++
	}
	if hasExtraLeadingZeroes(c.at(start), i-start) {
		return i, false
	}

	// If a decimal point follows, there must be at least one digit.
	if c.at(i) == '.' {
		i++
		if !isDigit(c.at(i)) {
			return i, false
		}
		for isDigit(c.at(i)) {
			i++
		}
	}

	// If an exponent follows, there must be at least one digit after the
	// optional sign.
	if ch := c.at(i); ch == 'e' || ch == 'E' {
		i++
		if ch := c.at(i); ch == '-' || ch == '+' {
			i++
		}
		if !isDigit(c.at(i)) {
			return i, false
		}
		for isDigit(c.at(i)) {
			i++
		}
	}
	return i, true
}

// hasExtraLeadingZeroes reports whether the integer part of a number, whose
// first digit is first and whose length is n digits, has redundant leading
// zeroes, disallowed by the grammar.
//
// OK: 0, 0.1, -1.0, -0.1 are all OK.
// Bad: -01, 01.2, -01.0, 00.1.
func hasExtraLeadingZeroes(first byte, n int) bool { return first == '0' && n > 1 }

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
