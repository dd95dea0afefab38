// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/creachadair/jvalue/internal/escape"
	"go4.org/mem"
)

// Tag identifies the type of JSON value held by a Value.
type Tag byte

// Constants defining the valid Tag values.
const (
	Null   Tag = iota // constant: null
	False             // constant: false
	True              // constant: true
	Number            // number
	String            // string
	Array             // array [ ... ]
	Object            // object { ... }
)

var tagStr = [...]string{
	Null:   "null",
	False:  "false",
	True:   "true",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (t Tag) String() string {
	if int(t) >= len(tagStr) {
		return fmt.Sprintf("Tag(%d)", t)
	}
	return tagStr[t]
}

// A Value is a JSON value. The zero Value is null.
//
// Only the payload matching the current tag is meaningful; the others are
// always zero. A Value exclusively owns its payload: strings are copied in,
// and array elements and object members are not shared with other values.
type Value struct {
	tag Tag
	num float64
	str []byte
	arr []Value
	obj []Member
}

// A Member is a single key-value pair belonging to an object.
type Member struct {
	Key   []byte
	Value Value
}

// Type reports the type of v.
func (v *Value) Type() Tag { return v.tag }

// Number returns the numeric value of v. It panics if v is not a number.
func (v *Value) Number() float64 { v.want(Number); return v.num }

// Boolean reports whether v is true. It panics if v is not true or false.
func (v *Value) Boolean() bool {
	if v.tag != True && v.tag != False {
		panic(fmt.Sprintf("jvalue: %v value used as a Boolean", v.tag))
	}
	return v.tag == True
}

// Bytes returns the contents of a string value. The result may contain NUL
// bytes, and aliases the storage of v; the caller must not modify it.
// Bytes panics if v is not a string.
func (v *Value) Bytes() []byte { v.want(String); return v.str }

// Len returns the length in bytes of a string value.
// It panics if v is not a string.
func (v *Value) Len() int { v.want(String); return len(v.str) }

// ArrayLen returns the number of elements in an array value.
// It panics if v is not an array.
func (v *Value) ArrayLen() int { v.want(Array); return len(v.arr) }

// Element returns a pointer to the element of an array value at index i.
// It panics if v is not an array or i is out of range.
func (v *Value) Element(i int) *Value { v.want(Array); return &v.arr[i] }

// ObjectLen returns the number of members in an object value.
// It panics if v is not an object.
func (v *Value) ObjectLen() int { v.want(Object); return len(v.obj) }

// Member returns a pointer to the member of an object value at index i.
// It panics if v is not an object or i is out of range.
func (v *Value) Member(i int) *Member { v.want(Object); return &v.obj[i] }

// Find returns the first member of an object value with the given key, or
// nil if there is none. It panics if v is not an object.
func (v *Value) Find(key string) *Member {
	v.want(Object)
	for i, m := range v.obj {
		if mem.B(m.Key).Equal(mem.S(key)) {
			return &v.obj[i]
		}
	}
	return nil
}

// Free releases the contents of v and resets it to null. Calling Free on a
// null value has no effect.
func (v *Value) Free() { *v = Value{} }

// SetNull releases the contents of v and sets it to null.
func (v *Value) SetNull() { v.Free() }

// SetBoolean releases the contents of v and sets it to true or false.
func (v *Value) SetBoolean(b bool) {
	v.Free()
	if b {
		v.tag = True
	} else {
		v.tag = False
	}
}

// SetNumber releases the contents of v and sets it to the number f.
func (v *Value) SetNumber(f float64) {
	v.Free()
	v.tag = Number
	v.num = f
}

// SetString releases the contents of v and sets it to a string containing a
// copy of s. The string may contain NUL bytes.
func (v *Value) SetString(s []byte) {
	cp := append(make([]byte, 0, len(s)), s...)
	v.Free()
	v.tag = String
	v.str = cp
}

// SetArray releases the contents of v and sets it to an array holding deep
// copies of elts. Later changes to elts do not affect v, nor vice versa.
func (v *Value) SetArray(elts ...Value) {
	cp := make([]Value, len(elts))
	for i := range elts {
		cp[i] = elts[i].Clone()
	}
	v.setArray(cp)
}

// SetObject releases the contents of v and sets it to an object holding deep
// copies of ms, in order. Later changes to ms do not affect v, nor vice versa.
func (v *Value) SetObject(ms ...Member) {
	cp := make([]Member, len(ms))
	for i, m := range ms {
		cp[i] = Member{Key: slices.Clone(m.Key), Value: m.Value.Clone()}
	}
	v.setObject(cp)
}

// setArray sets v to an array that takes ownership of elts.
func (v *Value) setArray(elts []Value) { v.Free(); v.tag = Array; v.arr = elts }

// setObject sets v to an object that takes ownership of ms.
func (v *Value) setObject(ms []Member) { v.Free(); v.tag = Object; v.obj = ms }

// Clone returns a deep copy of v that shares no storage with it.
func (v *Value) Clone() Value {
	out := Value{tag: v.tag, num: v.num}
	switch v.tag {
	case String:
		out.str = append(make([]byte, 0, len(v.str)), v.str...)
	case Array:
		out.arr = make([]Value, len(v.arr))
		for i := range v.arr {
			out.arr[i] = v.arr[i].Clone()
		}
	case Object:
		out.obj = make([]Member, len(v.obj))
		for i, m := range v.obj {
			out.obj[i] = Member{
				Key:   append(make([]byte, 0, len(m.Key)), m.Key...),
				Value: m.Value.Clone(),
			}
		}
	}
	return out
}

// String renders a short description of v for diagnostics. Strings are shown
// quoted; arrays and objects are summarized by their length.
func (v *Value) String() string {
	switch v.tag {
	case Number:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case String:
		return string(escape.AppendQuote(nil, mem.B(v.str)))
	case Array:
		return fmt.Sprintf("Array(len=%d)", len(v.arr))
	case Object:
		return fmt.Sprintf("Object(len=%d)", len(v.obj))
	default:
		return v.tag.String()
	}
}

// setTag releases the contents of v and sets its tag, for payload-free types.
func (v *Value) setTag(t Tag) { v.Free(); v.tag = t }

func (v *Value) want(t Tag) {
	if v.tag != t {
		panic(fmt.Sprintf("jvalue: %v value used as %v", v.tag, t))
	}
}
