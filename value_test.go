// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jvalue_test

import (
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestAccessors(t *testing.T) {
	var v jvalue.Value
	if got := v.Type(); got != jvalue.Null {
		t.Errorf("Zero value: got %v, want null", got)
	}

	v.SetBoolean(true)
	if v.Type() != jvalue.True || !v.Boolean() {
		t.Errorf("SetBoolean(true): got %v", v.Type())
	}
	v.SetBoolean(false)
	if v.Type() != jvalue.False || v.Boolean() {
		t.Errorf("SetBoolean(false): got %v", v.Type())
	}

	v.SetNumber(1234.5)
	if v.Type() != jvalue.Number || v.Number() != 1234.5 {
		t.Errorf("SetNumber: got %v", &v)
	}

	v.SetString([]byte("a\x00b"))
	if v.Type() != jvalue.String || v.Len() != 3 {
		t.Errorf("SetString: got %v", &v)
	}
	if diff := cmp.Diff([]byte("a\x00b"), v.Bytes()); diff != "" {
		t.Errorf("Bytes (-want, +got):\n%s", diff)
	}

	v.SetString(nil)
	if v.Type() != jvalue.String || v.Len() != 0 {
		t.Errorf("SetString(nil): got %v", &v)
	}

	v.SetNull()
	if v.Type() != jvalue.Null {
		t.Errorf("SetNull: got %v", v.Type())
	}
}

func TestSetStringCopies(t *testing.T) {
	buf := []byte("hello")
	var v jvalue.Value
	v.SetString(buf)
	buf[0] = 'j'
	if got := string(v.Bytes()); got != "hello" {
		t.Errorf("Bytes after modifying input: got %q, want %q", got, "hello")
	}

	// Setting a value from its own contents is safe.
	v.SetString(v.Bytes()[1:])
	if got := string(v.Bytes()); got != "ello" {
		t.Errorf("Bytes after self-assignment: got %q, want %q", got, "ello")
	}
}

func TestFree(t *testing.T) {
	var v jvalue.Value
	if err := jvalue.ParseString(&v, `{"a": ["b", 1]}`); err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	v.Free()
	if got := v.Type(); got != jvalue.Null {
		t.Errorf("Free: got %v, want null", got)
	}
	v.Free() // a second free is a no-op
	if got := v.Type(); got != jvalue.Null {
		t.Errorf("Free again: got %v, want null", got)
	}

	var z jvalue.Value
	z.Free()
	if got := z.Type(); got != jvalue.Null {
		t.Errorf("Free zero: got %v, want null", got)
	}
}

func TestCompound(t *testing.T) {
	var a, s, n jvalue.Value
	s.SetString([]byte("x"))
	n.SetNumber(2)
	a.SetArray(s, n)

	var obj jvalue.Value
	obj.SetObject(
		jvalue.Member{Key: []byte("list"), Value: a},
		jvalue.Member{Key: []byte("t")},
	)
	obj.Member(1).Value.SetBoolean(true)

	if got := obj.ObjectLen(); got != 2 {
		t.Fatalf("ObjectLen: got %d, want 2", got)
	}
	if got := render(&obj); got != `{"list":["x",2],"t":true}` {
		t.Errorf("Object: got %s", got)
	}
	if m := obj.Find("t"); m == nil || !m.Value.Boolean() {
		t.Errorf("Find(t): got %+v", m)
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf("Find(nonesuch): got %+v, want nil", m)
	}

	c := obj.Clone()
	c.Find("list").Value.Element(0).SetString([]byte("changed"))
	if got := render(&obj); got != `{"list":["x",2],"t":true}` {
		t.Errorf("Original after changing clone: got %s", got)
	}
	if got := render(&c); got != `{"list":["changed",2],"t":true}` {
		t.Errorf("Clone: got %s", got)
	}

	var empty jvalue.Value
	empty.SetArray()
	if empty.Type() != jvalue.Array || empty.ArrayLen() != 0 {
		t.Errorf("Empty array: got %v", &empty)
	}
}

func TestSetCompoundCopies(t *testing.T) {
	var one, inner, outer jvalue.Value
	one.SetNumber(1)
	inner.SetArray(one)
	outer.SetArray(inner)

	outer.Element(0).Element(0).SetNumber(5)
	if got := inner.Element(0).Number(); got != 1 {
		t.Errorf("Inner after changing outer: got %v, want 1", got)
	}
	inner.Element(0).SetString([]byte("x"))
	if got := render(&outer); got != "[[5]]" {
		t.Errorf("Outer after changing inner: got %s, want [[5]]", got)
	}

	key := []byte("k")
	var obj jvalue.Value
	obj.SetObject(jvalue.Member{Key: key, Value: inner})
	key[0] = 'z'
	inner.SetNull()
	if got := render(&obj); got != `{"k":["x"]}` {
		t.Errorf("Object after changing arguments: got %s", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"null", "null"},
		{"true", "true"},
		{"false", "false"},
		{"-2.5e-3", "-0.0025"},
		{`"a\"b\u0001"`, `"a\"b\u0001"`},
		{"[1, 2, 3]", "Array(len=3)"},
		{`{"a": {}}`, "Object(len=1)"},
	}
	for _, test := range tests {
		var v jvalue.Value
		if err := jvalue.ParseString(&v, test.input); err != nil {
			t.Errorf("Parse %#q: unexpected error: %v", test.input, err)
		} else if got := v.String(); got != test.want {
			t.Errorf("String %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestTagString(t *testing.T) {
	tags := []jvalue.Tag{
		jvalue.Null, jvalue.False, jvalue.True, jvalue.Number,
		jvalue.String, jvalue.Array, jvalue.Object, jvalue.Tag(99),
	}
	var got []string
	for _, tag := range tags {
		got = append(got, tag.String())
	}
	want := []string{"null", "false", "true", "number", "string", "array", "object", "Tag(99)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tag names (-want, +got):\n%s", diff)
	}
}

func TestContract(t *testing.T) {
	var null, num, str, arr, obj jvalue.Value
	num.SetNumber(1)
	str.SetString([]byte("s"))
	arr.SetArray()
	obj.SetObject()

	mtest.MustPanic(t, func() { null.Number() })
	mtest.MustPanic(t, func() { null.Boolean() })
	mtest.MustPanic(t, func() { num.Boolean() })
	mtest.MustPanic(t, func() { num.Bytes() })
	mtest.MustPanic(t, func() { num.Len() })
	mtest.MustPanic(t, func() { str.Number() })
	mtest.MustPanic(t, func() { str.ArrayLen() })
	mtest.MustPanic(t, func() { arr.Element(0) })
	mtest.MustPanic(t, func() { arr.ObjectLen() })
	mtest.MustPanic(t, func() { obj.Member(0) })
	mtest.MustPanic(t, func() { obj.Element(0) })
	mtest.MustPanic(t, func() { arr.Find("x") })
}
