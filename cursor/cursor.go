// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the structure of a JSON value.
package cursor

import (
	"fmt"

	"github.com/creachadair/jvalue"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method.  This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path(v *jvalue.Value, path ...any) (*jvalue.Value, error) {
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Value(), nil
}

// A Cursor is a pointer that navigates into the structure of a jvalue.Value.
type Cursor struct {
	org *jvalue.Value
	stk []*jvalue.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin *jvalue.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() *jvalue.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() *jvalue.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []*jvalue.Value {
	return append([]*jvalue.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are either strings (denoting object
// keys), integers (denoting offsets into arrays or objects), functions (see
// below), or nil.  If the path cannot be completely consumed, traversal stops
// and an error is recorded. Use Err to recover the error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string selects the value of the first member with that key.
//
// If a path element is an integer, the corresponding value must be an array or
// object, and the integer selects an element of the array, or the value of a
// member of the object, by position. Negative indices count backward from the
// end (-1 is last, -2 second last). An error is reported if the index is out
// of bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(*jvalue.Value) (*jvalue.Value, error)
//
// If the function reports an error, traversal stops and the error is recorded.
// A nil path element does nothing.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			if cur.Type() != jvalue.Object {
				return c.setErrorf("cannot traverse %v with %q", cur.Type(), t)
			}
			m := cur.Find(t)
			if m == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(&m.Value)

		case int:
			switch cur.Type() {
			case jvalue.Array:
				i, ok := fixArrayBound(cur.ArrayLen(), t)
				if !ok {
					return c.setErrorf("array index %d out of bounds (n=%d)", t, cur.ArrayLen())
				}
				cur = c.push(cur.Element(i))
			case jvalue.Object:
				i, ok := fixArrayBound(cur.ObjectLen(), t)
				if !ok {
					return c.setErrorf("object index %d out of bounds (n=%d)", t, cur.ObjectLen())
				}
				cur = c.push(&cur.Member(i).Value)
			default:
				return c.setErrorf("cannot traverse %v with %v", cur.Type(), t)
			}

		case func(*jvalue.Value) (*jvalue.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// Do nothing.

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v *jvalue.Value) *jvalue.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
