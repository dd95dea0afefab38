// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jvalue implements a JSON parser that builds a tree of tagged values.
//
// # Parsing
//
// Call Parse with a complete JSON text to populate a Value. The input must
// contain exactly one JSON value, optionally surrounded by whitespace. The
// input is not NUL-terminated: a NUL byte where a value should begin is an
// InvalidValue, not the end of input (ExpectValue). For example:
//
//	var v jvalue.Value
//	if err := jvalue.Parse(&v, input); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	log.Printf("Parsed a %v", v.Type())
//
// In case of error, the returned error has concrete type *jvalue.SyntaxError,
// which reports the ErrorKind and the location of the problem, and the Value
// is left as null. Use KindOf or errors.Is to check for a particular kind:
//
//	if errors.Is(err, jvalue.NumberTooBig) {
//	   log.Print("Number out of range")
//	}
//
// To change the default behaviour, construct a Parser:
//
//	p := jvalue.NewParser().AllowComments(true)
//	err := p.Parse(&v, input)
//
// Arrays and objects may nest at most DefaultMaxDepth levels deep unless
// the Parser sets a different MaxDepth. With AllowComments, input that is
// not valid JWCC is reported with the underlying diagnostic wrapped in the
// *SyntaxError, at the location where the input goes wrong.
//
// A Parser holds only configuration, and may be shared by concurrent
// goroutines once configured. Each call to Parse uses its own scratch state.
//
// # Values
//
// A Value holds one of the JSON types, reported by its Type method:
//
//	Tag     | Accessors
//	------- | ----------------------------------------
//	Null    | --
//	False   | Boolean
//	True    | Boolean
//	Number  | Number
//	String  | Bytes, Len
//	Array   | ArrayLen, Element
//	Object  | ObjectLen, Member, Find
//
// Calling an accessor on a value of the wrong type panics. The zero Value is
// null. The Set methods replace the contents of a value, and Free resets it
// to null.
package jvalue
