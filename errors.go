// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the ways a parse can fail. An ErrorKind is itself an
// error, so errors.Is(err, k) reports whether err is a failure of kind k.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
// OK is never returned as an error; it is what KindOf reports for nil.
const (
	OK                       ErrorKind = iota // no error
	ExpectValue                               // input is empty or only whitespace
	InvalidValue                              // malformed literal or number
	RootNotSingular                           // text follows the root value
	NumberTooBig                              // number out of float64 range
	MissQuotationMark                         // unterminated string
	InvalidStringEscape                       // unknown character after backslash
	InvalidStringChar                         // unescaped control character in a string
	InvalidUnicodeHex                         // \u not followed by four hex digits
	InvalidUnicodeSurrogate                   // unpaired UTF-16 surrogate in \u escape
	MissCommaOrSquareBracket                  // array element not followed by "," or "]"
	MissKey                                   // object member does not begin with a string
	MissColon                                 // object key not followed by ":"
	MissCommaOrCurlyBracket                   // object member not followed by "," or "}"
)

var kindStr = [...]string{
	OK:                       "ok",
	ExpectValue:              "expected a value",
	InvalidValue:             "invalid value",
	RootNotSingular:          "extra input after value",
	NumberTooBig:             "number out of range",
	MissQuotationMark:        "missing closing quotation mark",
	InvalidStringEscape:      "invalid escape in string",
	InvalidStringChar:        "invalid character in string",
	InvalidUnicodeHex:        "invalid hex digits in Unicode escape",
	InvalidUnicodeSurrogate:  "invalid surrogate in Unicode escape",
	MissCommaOrSquareBracket: `expected "," or "]"`,
	MissKey:                  "expected object key",
	MissColon:                `expected ":"`,
	MissCommaOrCurlyBracket:  `expected "," or "}"`,
}

func (k ErrorKind) String() string {
	if int(k) >= len(kindStr) {
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
	return kindStr[k]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// KindOf reports the ErrorKind of err. It returns OK if err == nil, and
// InvalidValue if err is not a parse error.
func KindOf(err error) ErrorKind {
	if err == nil {
		return OK
	}
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return InvalidValue
}

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Kind     ErrorKind
	Offset   int     // byte offset of the error in the input, 0-based
	Location LineCol // line and column of Offset

	err error // the underlying cause, if any
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	if s.err != nil {
		return fmt.Sprintf("at %s: %s: %v", s.Location, s.Kind, s.err)
	}
	return fmt.Sprintf("at %s: %s", s.Location, s.Kind)
}

// Unwrap supports error wrapping. It returns the kind of s, followed by the
// underlying cause if there is one.
func (s *SyntaxError) Unwrap() []error {
	if s.err != nil {
		return []error{s.Kind, s.err}
	}
	return []error{s.Kind}
}
