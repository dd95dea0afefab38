// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/jvalue/internal/escape"
	"go4.org/mem"
)

func TestAppendQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"bad \xff byte", `"bad \ufffd byte"`},
		{"h\u00e9llo \U0001d11e", "\"h\u00e9llo \U0001d11e\""},
	}
	for _, test := range tests {
		got := string(escape.AppendQuote(nil, mem.S(test.input)))
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestParseHex4(t *testing.T) {
	tests := []struct {
		input string
		want  rune
		ok    bool
	}{
		{"0000", 0, true},
		{"0041", 'A', true},
		{"00e9", '\u00e9', true},
		{"D834rest", 0xd834, true},
		{"aBcD", 0xabcd, true},
		{"", 0, false},
		{"12", 0, false},
		{"00x9", 0, false},
		{"019 ", 0, false},
	}
	for _, test := range tests {
		got, ok := escape.ParseHex4(mem.S(test.input))
		if ok != test.ok || got != test.want {
			t.Errorf("ParseHex4(%q): got (%U, %v), want (%U, %v)",
				test.input, got, ok, test.want, test.ok)
		}
	}
}

func TestSurrogates(t *testing.T) {
	if !escape.IsHighSurrogate(0xd834) || escape.IsLowSurrogate(0xd834) {
		t.Error("0xD834 should be a high surrogate only")
	}
	if !escape.IsLowSurrogate(0xdd1e) || escape.IsHighSurrogate(0xdd1e) {
		t.Error("0xDD1E should be a low surrogate only")
	}
	if escape.IsHighSurrogate('A') || escape.IsLowSurrogate('A') {
		t.Error("'A' is not a surrogate")
	}
	if got, want := escape.Combine(0xd834, 0xdd1e), rune(0x1d11e); got != want {
		t.Errorf("Combine: got %U, want %U", got, want)
	}
}
