// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"bytes"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/creachadair/jvalue/internal/escape"
	"github.com/creachadair/jvalue/internal/stack"
	"github.com/tailscale/hujson"
	"go4.org/mem"
)

// DefaultStackSize is the initial capacity of the scratch stacks used to
// assemble strings, arrays, and objects during a parse.
const DefaultStackSize = stack.DefaultSize

// DefaultMaxDepth is the default limit on the nesting depth of arrays and
// objects in a parsed value.
const DefaultMaxDepth = 10000

// A Parser parses JSON text into values. The zero value is ready for use and
// parses standard JSON.
//
// A Parser holds only configuration. Once configured, it is safe for use by
// concurrent goroutines; each call to Parse allocates its own scratch state.
type Parser struct {
	stackSize int  // initial scratch capacity; 0 means the default
	maxDepth  int  // nesting limit; 0 means the default
	comments  bool // accept JWCC comments and trailing commas
}

// NewParser constructs a Parser with default settings.
func NewParser() *Parser { return new(Parser) }

// StackSize sets the initial capacity of the scratch stacks used during a
// parse. If n <= 0, DefaultStackSize is used. It returns p to permit chaining.
func (p *Parser) StackSize(n int) *Parser { p.stackSize = max(n, 0); return p }

// MaxDepth sets the maximum nesting depth of arrays and objects. An input
// nested more deeply is rejected with InvalidValue at the bracket that
// exceeds the limit. If n <= 0, DefaultMaxDepth is used. It returns p to
// permit chaining.
func (p *Parser) MaxDepth(n int) *Parser { p.maxDepth = max(n, 0); return p }

// AllowComments configures p to accept (true) or reject (false) JWCC input,
// that is, JSON extended with line comments (// ...), block comments
// (/* ... */), and trailing commas in arrays and objects. Comments are a
// non-standard extension of JSON. It returns p to permit chaining.
func (p *Parser) AllowComments(ok bool) *Parser { p.comments = ok; return p }

var stdParser Parser

// Parse parses input as a single JSON value and stores the result in v, using
// the default Parser settings.
func Parse(v *Value, input []byte) error { return stdParser.Parse(v, input) }

// ParseString parses input as a single JSON value and stores the result in v,
// using the default Parser settings.
func ParseString(v *Value, input string) error { return stdParser.Parse(v, []byte(input)) }

// Parse parses input as a single JSON value, optionally surrounded by
// whitespace, and stores the result in v. Any previous contents of v are
// released. In case of error, v is null and the error has concrete type
// [*SyntaxError].
func (p *Parser) Parse(v *Value, input []byte) error {
	v.Free()
	depth := p.maxDepth
	if depth == 0 {
		depth = DefaultMaxDepth
	}
	if !p.comments {
		return p.parse(v, input, depth)
	}

	// The JWCC parser has no nesting limit of its own.
	if off, ok := checkDepth(mem.B(input), depth); !ok {
		return newSyntaxError(mem.B(input), InvalidValue, off, nil)
	}

	// Standardization blanks out comments and trailing commas, leaving the
	// offsets of everything else unchanged.
	std, jerr := hujson.Standardize(bytes.Clone(input))
	if jerr == nil {
		return p.parse(v, std, depth)
	}

	// The input is not valid JWCC. If it fails as plain JSON no earlier than
	// the JWCC error, report the more specific kind; otherwise a comment got
	// in the way, and the JWCC error describes the problem.
	joff := jwccOffset(mem.B(input), jerr)
	err := p.parse(v, input, depth)
	if serr, ok := err.(*SyntaxError); ok && serr.Offset >= joff {
		serr.err = jerr
		return serr
	} else if err == nil {
		return nil // plain JSON the JWCC parser does not accept
	}
	return newSyntaxError(mem.B(input), InvalidValue, joff, jerr)
}

func (p *Parser) parse(v *Value, input []byte, depth int) error {
	c := newParser(mem.B(input), p.stackSize, depth)
	err := c.parseRoot(v)
	c.release()
	if err != nil {
		v.Free()
		serr := err.(*SyntaxError)
		serr.Location = locate(c.in, serr.Offset)
		return serr
	}
	return nil
}

func newSyntaxError(in mem.RO, kind ErrorKind, off int, cause error) *SyntaxError {
	return &SyntaxError{Kind: kind, Offset: off, Location: locate(in, off), err: cause}
}

// jwccOffset returns the offset in input of the failure reported by err from
// the JWCC parser, which reports a 1-based line and column.
func jwccOffset(input mem.RO, err error) int {
	var line, col int
	if _, serr := fmt.Sscanf(err.Error(), "hujson: line %d, column %d:", &line, &col); serr != nil {
		return 0
	}
	return offsetOf(input, LineCol{Line: line, Column: col - 1})
}

// checkDepth reports whether the arrays and objects of input nest no deeper
// than limit, skipping strings and comments. If not, it also returns the
// offset of the first bracket past the limit.
func checkDepth(input mem.RO, limit int) (int, bool) {
	depth := 0
	for i := 0; i < input.Len(); i++ {
		switch ch := input.At(i); ch {
		case '[', '{':
			depth++
			if depth > limit {
				return i, false
			}
		case ']', '}':
			depth--
		case '"':
			for i++; i < input.Len() && input.At(i) != '"'; i++ {
				if input.At(i) == '\\' {
					i++
				}
			}
		case '/':
			switch {
			case i+1 >= input.Len():
			case input.At(i+1) == '/':
				if j := mem.IndexByte(input.SliceFrom(i), '\n'); j >= 0 {
					i += j
				} else {
					i = input.Len()
				}
			case input.At(i+1) == '*':
				if j := mem.Index(input.SliceFrom(i+2), mem.S("*/")); j >= 0 {
					i += j + 3
				} else {
					i = input.Len()
				}
			}
		}
	}
	return 0, true
}

// parser is the state of a single call to Parse.
type parser struct {
	in  mem.RO
	pos int // offset of the cursor in the input

	depth, maxDepth int // current and maximum nesting of arrays and objects

	text *stack.Stack[byte]   // string contents
	elts *stack.Stack[Value]  // array elements
	mems *stack.Stack[Member] // object members
}

func newParser(in mem.RO, size, maxDepth int) *parser {
	return &parser{
		in:       in,
		maxDepth: maxDepth,
		text:     stack.New[byte](size),
		elts:     stack.New[Value](size),
		mems:     stack.New[Member](size),
	}
}

// release discards the scratch stacks. Every rule pops or rewinds what it
// pushes, whether it succeeds or fails, so the stacks must be empty here.
func (c *parser) release() {
	c.text.Release()
	c.elts.Release()
	c.mems.Release()
}

func (c *parser) fail(kind ErrorKind, off int) error {
	return &SyntaxError{Kind: kind, Offset: off}
}

// enter records the start of an array or object at the cursor, and reports
// an error if that exceeds the nesting limit.
func (c *parser) enter() error {
	if c.depth >= c.maxDepth {
		return c.fail(InvalidValue, c.pos)
	}
	c.depth++
	return nil
}

func (c *parser) leave() { c.depth-- }

// parseRoot parses a single value that must constitute the whole input.
func (c *parser) parseRoot(v *Value) error {
	c.skipSpace()
	if err := c.parseValue(v); err != nil {
		return err
	}
	c.skipSpace()
	if !c.atEnd() {
		return c.fail(RootNotSingular, c.pos)
	}
	return nil
}

// parseValue parses a value of any type starting at the cursor, which must
// not be at whitespace.
func (c *parser) parseValue(v *Value) error {
	switch c.peek() {
	case 't':
		return c.parseLiteral(v, litTrue, True)
	case 'f':
		return c.parseLiteral(v, litFalse, False)
	case 'n':
		return c.parseLiteral(v, litNull, Null)
	case '"':
		return c.parseString(v)
	case '[':
		return c.parseArray(v)
	case '{':
		return c.parseObject(v)
	default:
		if c.atEnd() {
			return c.fail(ExpectValue, c.pos)
		}
		return c.parseNumber(v)
	}
}

// parseString parses a quoted string and sets v to its contents.
// Precondition: the cursor is at the opening quotation mark.
func (c *parser) parseString(v *Value) error {
	text, err := c.parseText()
	if err != nil {
		return err
	}
	v.SetString(text)
	return nil
}

// parseText parses a quoted string and returns its decoded contents. The
// result aliases the text stack and is valid only until the next push.
// Precondition: the cursor is at the opening quotation mark.
func (c *parser) parseText() ([]byte, error) {
	mark := c.text.Top()
	c.pos++ // opening quote
	for {
		if c.atEnd() {
			c.text.Rewind(mark)
			return nil, c.fail(MissQuotationMark, c.pos)
		}
		switch ch := c.in.At(c.pos); {
		case ch == '"':
			c.pos++
			return c.text.Pop(c.text.Top() - mark), nil
		case ch == '\\':
			if err := c.parseEscape(); err != nil {
				c.text.Rewind(mark)
				return nil, err
			}
		case ch < ' ':
			c.text.Rewind(mark)
			return nil, c.fail(InvalidStringChar, c.pos)
		default:
			c.text.Put(ch)
			c.pos++
		}
	}
}

// parseEscape decodes a single escape sequence onto the text stack.
// Precondition: the cursor is at the backslash.
func (c *parser) parseEscape() error {
	start := c.pos
	if start+1 >= c.in.Len() {
		return c.fail(MissQuotationMark, c.in.Len())
	}
	esc := c.in.At(start + 1)
	c.pos += 2
	switch esc {
	case '"', '\\', '/':
		c.text.Put(esc)
	case 'b':
		c.text.Put('\b')
	case 'f':
		c.text.Put('\f')
	case 'n':
		c.text.Put('\n')
	case 'r':
		c.text.Put('\r')
	case 't':
		c.text.Put('\t')
	case 'u':
		r, err := c.parseUnicode(start)
		if err != nil {
			return err
		}
		utf8.EncodeRune(c.text.Push(utf8.RuneLen(r)), r)
	default:
		return c.fail(InvalidStringEscape, start)
	}
	return nil
}

// parseUnicode decodes the hex digits of a \u escape whose backslash is at
// offset start, combining a surrogate pair if present.
// Precondition: the cursor is just after the "u".
func (c *parser) parseUnicode(start int) (rune, error) {
	hi, ok := escape.ParseHex4(c.in.SliceFrom(c.pos))
	if !ok {
		return 0, c.fail(InvalidUnicodeHex, start)
	}
	c.pos += 4
	if escape.IsLowSurrogate(hi) {
		return 0, c.fail(InvalidUnicodeSurrogate, start)
	} else if !escape.IsHighSurrogate(hi) {
		return hi, nil
	}

	// A high surrogate must be followed at once by an escaped low surrogate.
	if c.peek() != '\\' || c.at(c.pos+1) != 'u' {
		return 0, c.fail(InvalidUnicodeSurrogate, start)
	}
	lo, ok := escape.ParseHex4(c.in.SliceFrom(c.pos + 2))
	if !ok {
		return 0, c.fail(InvalidUnicodeHex, c.pos)
	} else if !escape.IsLowSurrogate(lo) {
		return 0, c.fail(InvalidUnicodeSurrogate, start)
	}
	c.pos += 6
	return escape.Combine(hi, lo), nil
}

// parseArray parses an array and sets v to it.
// Precondition: the cursor is at the open bracket.
func (c *parser) parseArray(v *Value) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	c.pos++ // [
	c.skipSpace()
	if c.peek() == ']' {
		c.pos++
		v.SetArray()
		return nil
	}

	mark := c.elts.Top()
	for {
		// Parse into a local, since a nested array may move the stack.
		var elt Value
		if err := c.parseValue(&elt); err != nil {
			c.elts.Rewind(mark)
			return err
		}
		c.elts.Put(elt)
		c.skipSpace()

		switch c.peek() {
		case ',':
			c.pos++
			c.skipSpace()
		case ']':
			c.pos++
			elts := c.elts.Pop(c.elts.Top() - mark)
			v.setArray(slices.Clone(elts))
			clear(elts)
			return nil
		default:
			c.elts.Rewind(mark)
			return c.fail(MissCommaOrSquareBracket, c.pos)
		}
	}
}

// parseObject parses an object and sets v to it.
// Precondition: the cursor is at the open brace.
func (c *parser) parseObject(v *Value) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	c.pos++ // {
	c.skipSpace()
	if c.peek() == '}' {
		c.pos++
		v.SetObject()
		return nil
	}

	mark := c.mems.Top()
	fail := func(err error) error {
		c.mems.Rewind(mark)
		return err
	}
	for {
		if c.peek() != '"' {
			return fail(c.fail(MissKey, c.pos))
		}
		key, err := c.parseText()
		if err != nil {
			return fail(err)
		}
		m := Member{Key: bytes.Clone(key)}

		c.skipSpace()
		if c.peek() != ':' {
			return fail(c.fail(MissColon, c.pos))
		}
		c.pos++
		c.skipSpace()
		if err := c.parseValue(&m.Value); err != nil {
			return fail(err)
		}
		c.mems.Put(m)
		c.skipSpace()

		switch c.peek() {
		case ',':
			c.pos++
			c.skipSpace()
		case '}':
			c.pos++
			mems := c.mems.Pop(c.mems.Top() - mark)
			v.setObject(slices.Clone(mems))
			clear(mems)
			return nil
		default:
			return fail(c.fail(MissCommaOrCurlyBracket, c.pos))
		}
	}
}
