// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtrace_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jtrace"
	"github.com/google/go-cmp/cmp"
)

// scanAll returns the tokens of input up to the end of input or the first
// error, whichever comes first.
func scanAll(s *jtrace.Scanner) ([]jtrace.Token, error) {
	var got []jtrace.Token
	for {
		if err := s.Next(); err != nil {
			return got, err
		}
		if s.Token() == jtrace.EndOfInput {
			return got, nil
		}
		got = append(got, s.Token())
	}
}

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jtrace.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jtrace.Token{jtrace.True, jtrace.False, jtrace.Null}},

		// Punctuation
		{"{ [ ] } , :", []jtrace.Token{
			jtrace.LBrace, jtrace.LSquare, jtrace.RSquare, jtrace.RBrace, jtrace.Comma, jtrace.Colon,
		}},

		// Strings
		{`"" "a b c" "a\"b\\c"`, []jtrace.Token{jtrace.String, jtrace.String, jtrace.String}},
		{"\"a\\\nb\\\tc\"", []jtrace.Token{jtrace.String}},
		{"\"\x01 raw control\"", []jtrace.Token{jtrace.String}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100 1e5`, []jtrace.Token{
			jtrace.Number, jtrace.Number, jtrace.Number,
			jtrace.Number, jtrace.Number, jtrace.Number, jtrace.Number, jtrace.Number,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jtrace.Token{
			jtrace.LBrace, jtrace.True, jtrace.Comma, jtrace.String, jtrace.Colon,
			jtrace.Number, jtrace.Null, jtrace.LSquare, jtrace.RSquare, jtrace.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jtrace.Token{
			jtrace.LBrace,
			jtrace.String, jtrace.Colon, jtrace.True, jtrace.Comma,
			jtrace.String, jtrace.Colon,
			jtrace.LSquare,
			jtrace.Null, jtrace.Comma, jtrace.Number, jtrace.Comma, jtrace.Number,
			jtrace.RSquare,
			jtrace.RBrace,
		}},
		{`"a",1,true
       false["b"]
       `, []jtrace.Token{
			jtrace.String, jtrace.Comma, jtrace.Number, jtrace.Comma, jtrace.True,
			jtrace.False, jtrace.LSquare, jtrace.String, jtrace.RSquare,
		}},
	}

	for _, test := range tests {
		got, err := scanAll(jtrace.NewScanner([]byte(test.input)))
		if err != nil {
			t.Errorf("Next failed: %v", err)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerText(t *testing.T) {
	const input = `{"key": -0.5e+3, "v": [true, "a\"b"]}`
	want := []string{`{`, `"key"`, `:`, `-0.5e+3`, `,`, `"v"`, `:`, `[`, `true`, `,`, `"a\"b"`, `]`, `}`}

	var got []string
	s := jtrace.NewScanner([]byte(input))
	for s.Next() == nil && s.Token() != jtrace.EndOfInput {
		got = append(got, string(s.Text()))
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Input: %#q\nText: (-want, +got)\n%s", input, diff)
	}
}

func TestScannerEndOfInput(t *testing.T) {
	s := jtrace.NewScanner([]byte("  null  "))
	if err := s.Next(); err != nil || s.Token() != jtrace.Null {
		t.Fatalf("Next: got %v, %v; want null, nil", s.Token(), err)
	}
	for i := 0; i < 3; i++ {
		if err := s.Next(); err != nil {
			t.Fatalf("Next %d: unexpected error: %v", i+1, err)
		} else if s.Token() != jtrace.EndOfInput {
			t.Errorf("Next %d: got %v, want %v", i+1, s.Token(), jtrace.EndOfInput)
		}
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  jtrace.ErrorKind
		estr  string
	}{
		{`1.`, jtrace.InvalidNumber, `at 1:2: invalid number: no digits after decimal point`},
		{`1.x`, jtrace.InvalidNumber, `at 1:2: invalid number: no digits after decimal point`},
		{`01`, jtrace.InvalidNumber, `at 1:1: invalid number: extra leading zeroes`},
		{`-01`, jtrace.InvalidNumber, `at 1:2: invalid number: extra leading zeroes`},
		{`-`, jtrace.InvalidNumber, `at 1:1: invalid number: want digit after sign`},
		{`-x`, jtrace.InvalidNumber, `at 1:1: invalid number: want digit after sign`},
		{`2e`, jtrace.InvalidNumber, `at 1:2: invalid number: missing exponent digits`},
		{`2E+`, jtrace.InvalidNumber, `at 1:3: invalid number: missing exponent digits`},

		{"\"a\tb\"", jtrace.UnterminatedOrControlChar,
			`at 1:3: unterminated string or control character: unescaped control '\t'`},
		{"[\n\"a\nb\"]", jtrace.UnterminatedOrControlChar,
			`at 3:0: unterminated string or control character: unescaped control '\n'`},
		{`"abc`, jtrace.UnterminatedOrControlChar,
			`at 1:4: unterminated string or control character: unterminated string`},
		{`"abc\`, jtrace.UnterminatedOrControlChar,
			`at 1:5: unterminated string or control character: unterminated escape`},

		{`"a\tb"`, jtrace.InvalidEscape, `at 1:4: invalid escape: invalid 't' after escape`},
		{`"\u0041"`, jtrace.InvalidEscape, `at 1:3: invalid escape: invalid 'u' after escape`},
		{`"\/"`, jtrace.InvalidEscape, `at 1:3: invalid escape: invalid '/' after escape`},

		{`+1`, jtrace.UnexpectedChar, `at 1:1: unexpected character: unexpected '+'`},
		{"\x00", jtrace.UnexpectedChar, `at 1:1: unexpected character: unexpected '\x00'`},
		{`tru`, jtrace.UnexpectedChar, `at 1:3: unexpected character: unknown constant "tru"`},
		{`nulls`, jtrace.UnexpectedChar, `at 1:5: unexpected character: unknown constant "nulls"`},
		{`xyz`, jtrace.UnexpectedChar, `at 1:1: unexpected character: unexpected 'x'`},
	}
	for _, test := range tests {
		_, err := scanAll(jtrace.NewScanner([]byte(test.input)))
		if err == nil {
			t.Errorf("Input: %#q: got nil, want error", test.input)
			continue
		}
		var lerr *jtrace.LexError
		if !errors.As(err, &lerr) {
			t.Errorf("Input: %#q: got %T, want *LexError", test.input, err)
		}
		if !errors.Is(err, test.kind) {
			t.Errorf("Input: %#q: got %v, want kind %v", test.input, err, test.kind)
		}
		if diff := cmp.Diff(test.estr, err.Error()); diff != "" {
			t.Errorf("Input: %#q\nError: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerStandardEscapes(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{`"\"\\\/\b\f\n\r\t"`, true},
		{`"\u0000\u01fc\uAA9c"`, true},
		{"\"a\\\nb\"", true}, // the default escapes are still accepted
		{`"\u12"`, false},
		{`"\u12x4"`, false},
		{`"\x"`, false},
		{"\"\x01\"", false}, // raw control characters are rejected
		{"\"a\tb\"", false},
	}
	for _, test := range tests {
		s := jtrace.NewScanner([]byte(test.input))
		s.AllowStandardEscapes(true)
		got, err := scanAll(s)
		if test.ok {
			if err != nil {
				t.Errorf("Input: %#q: unexpected error: %v", test.input, err)
			} else if diff := cmp.Diff([]jtrace.Token{jtrace.String}, got); diff != "" {
				t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
			}
		} else if err == nil {
			t.Errorf("Input: %#q: got %v, want error", test.input, got)
		} else {
			t.Logf("Input: %#q: got expected error: %v", test.input, err)
		}
	}
}

func TestQuote(t *testing.T) {
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
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 ` + "\ufffd" + `"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
	}
	for _, test := range tests {
		got := jtrace.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestScannerLoc(t *testing.T) {
	type tokPos struct {
		Tok jtrace.Token
		Pos string
	}
	tests := []struct {
		input string
		want  []tokPos
	}{
		{"", nil},
		{"{ }", []tokPos{{jtrace.LBrace, "1:0-1"}, {jtrace.RBrace, "1:2-3"}}},
		{`"foo" 12`, []tokPos{{jtrace.String, "1:0-5"}, {jtrace.Number, "1:6-8"}}},
		{"true\n false\n", []tokPos{{jtrace.True, "1:0-4"}, {jtrace.False, "2:1-6"}}},
		{"\"a\\\nb\"\n null", []tokPos{{jtrace.String, "1:0-2:2"}, {jtrace.Null, "3:1-5"}}},
		{"[1,\n 2\n]", []tokPos{
			{jtrace.LSquare, "1:0-1"}, {jtrace.Number, "1:1-2"}, {jtrace.Comma, "1:2-3"},
			{jtrace.Number, "2:1-2"}, {jtrace.RSquare, "3:0-1"},
		}},
	}
	for _, tc := range tests {
		var got []tokPos
		s := jtrace.NewScanner([]byte(tc.input))
		for s.Next() == nil && s.Token() != jtrace.EndOfInput {
			got = append(got, tokPos{s.Token(), s.Location().String()})
		}
		if err := s.Err(); err != nil {
			t.Errorf("Next failed: %v", err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                        // missing quotes
		{`"missing quote`, ``, true},          // missing quotes
		{`missing quote"`, ``, true},          // missing quotes
		{`""`, ``, false},                     // ok
		{`"ok go"`, "ok go", false},           // ok
		{"\"a\\\nb\\\tc\"", "a\nb\tc", false}, // raw newline and tab escapes
		{`"abc\ndef"`, "abc\ndef", false},     // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false}, // C escapes
		{`"a \u0026 b"`, "a & b", false},      // short Unicode escape
		{`"\u"`, ``, true},                    // incomplete Unicode escape
		{`"\u00"`, ``, true},                  // incomplete Unicode escape
		{`"\u00x9"`, "\ufffd", false},         // invalid Unicode escape
		{`"\q"`, "\ufffd", false},             // unknown escape
		{`"a\"b"`, `a"b`, false},              // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},       // ok
	}

	for _, test := range tests {
		got, err := jtrace.Unquote([]byte(test.input))
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}
