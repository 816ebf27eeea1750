// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtrace

import (
	"fmt"
	"strings"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid    Token = iota // invalid token
	EndOfInput              // end of input
	LBrace                  // left brace "{"
	RBrace                  // right brace "}"
	LSquare                 // left square bracket "["
	RSquare                 // right square bracket "]"
	Comma                   // comma ","
	Colon                   // colon ":"
	Number                  // number
	String                  // quoted string
	True                    // constant: true
	False                   // constant: false
	Null                    // constant: null
)

var tokenStr = [...]string{
	Invalid:    "invalid token",
	EndOfInput: "end of input",
	LBrace:     `"{"`,
	RBrace:     `"}"`,
	LSquare:    `"["`,
	RSquare:    `"]"`,
	Comma:      `","`,
	Colon:      `":"`,
	Number:     "number",
	String:     "string",
	True:       "true",
	False:      "false",
	Null:       "null",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// IsLiteral reports whether t is a token that forms a complete value by
// itself: a string, number, or constant.
func (t Token) IsLiteral() bool { return t >= Number && t <= Null }

// A Scanner reads lexical tokens from an in-memory input. Each call to Next
// advances the scanner to the next token, or reports an error.
type Scanner struct {
	src []byte
	std bool // allow standard JSON escapes
	tok Token
	err error

	pos, end int // start and end offsets of current token

	// Apparent line and column offsets (0-based)
	pline, pcol int
	eline, ecol int
}

// NewScanner constructs a new lexical scanner that consumes input from src.
// The scanner does not modify src, and token text refers into it.
func NewScanner(src []byte) *Scanner { return &Scanner{src: src} }

// AllowStandardEscapes configures the scanner to accept (true) or reject
// (false) the full set of string escapes defined by RFC 8259.
//
// By default the only escapes accepted in a string are a backslash followed
// by a quotation mark, a backslash, a raw newline, or a raw tab. When
// standard escapes are enabled, \/ \b \f \n \r \t and \uXXXX are accepted as
// well, and every raw control character in a string is rejected.
func (s *Scanner) AllowStandardEscapes(ok bool) { s.std = ok }

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, the token is EndOfInput and Next returns nil;
// further calls continue to report EndOfInput.
func (s *Scanner) Next() error {
	s.err = nil
	s.tok = Invalid
	s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol

	for {
		ch, ok := s.next()
		if !ok {
			s.tok = EndOfInput
			return nil
		}

		// Discard whitespace.
		if isSpace(ch) {
			s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol
			continue
		}

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			s.tok = t
			return nil
		}

		// Handle numbers.
		if isNumStart(ch) {
			return s.scanNumber(ch)
		}

		// Handle string values.
		if ch == '"' {
			return s.scanString()
		}

		// Handle constants: true, false, null
		var want mem.RO
		switch ch {
		case 't':
			s.tok = True
			want = mem.S("true")
		case 'f':
			s.tok = False
			want = mem.S("false")
		case 'n':
			s.tok = Null
			want = mem.S("null")
		default:
			return s.failf(UnexpectedChar, "unexpected %q", ch)
		}
		s.readWhile(isNameByte)
		if got := mem.B(s.Text()); !got.Equal(want) {
			return s.failf(UnexpectedChar, "unknown constant %q", got.StringCopy())
		}
		return nil // OK, token is already set
	}
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token. The slice refers to
// the input buffer and must not be modified.
func (s *Scanner) Text() []byte { return s.src[s.pos:s.end] }

// Copy returns a copy of the undecoded text of the current token.
func (s *Scanner) Copy() []byte { return append([]byte(nil), s.Text()...) }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline + 1, Column: s.pcol},
		Last:  LineCol{Line: s.eline + 1, Column: s.ecol},
	}
}

func (s *Scanner) scanString() error {
	for {
		ch, ok := s.next()
		if !ok {
			return s.failf(UnterminatedOrControlChar, "unterminated string")
		}
		switch {
		case ch == '"':
			s.tok = String
			return nil
		case ch == '\\':
			if err := s.scanEscape(); err != nil {
				return err
			}
		case ch == '\t' || ch == '\n' || (s.std && ch < ' '):
			return s.failf(UnterminatedOrControlChar, "unescaped control %q", ch)
		}
	}
}

// scanEscape consumes the remainder of an escape sequence whose leading
// backslash has already been read.
func (s *Scanner) scanEscape() error {
	ch, ok := s.next()
	if !ok {
		return s.failf(UnterminatedOrControlChar, "unterminated escape")
	}
	switch ch {
	case '"', '\\', '\n', '\t':
		return nil
	}
	if s.std {
		switch ch {
		case '/', 'b', 'f', 'n', 'r', 't':
			return nil
		case 'u':
			return s.readHex4()
		}
	}
	return s.failf(InvalidEscape, "invalid %q after escape", ch)
}

func (s *Scanner) scanNumber(start byte) error {
	if start == '-' {
		// If there is a leading sign, we need at least one digit.
		// Otherwise, we already have one in start.
		if ch, ok := s.peek(); !ok || !isDigit(ch) {
			return s.failf(InvalidNumber, "want digit after sign")
		}
		start, _ = s.next()
	}

	// A leading zero must be the only digit of the integer part.
	// That is: 0.12 is OK, 01.2 is not.
	if start == '0' {
		if ch, ok := s.peek(); ok && isDigit(ch) {
			return s.failf(InvalidNumber, "extra leading zeroes")
		}
	} else {
		s.readWhile(isDigit)
	}

	// If a decimal point follows, consume a fractional part.
	if s.accept('.') && s.readWhile(isDigit) == 0 {
		return s.failf(InvalidNumber, "no digits after decimal point")
	}

	// If an exponent follows, consume it.
	if s.accept('e') || s.accept('E') {
		if !s.accept('+') {
			s.accept('-')
		}
		if s.readWhile(isDigit) == 0 {
			return s.failf(InvalidNumber, "missing exponent digits")
		}
	}
	s.tok = Number
	return nil
}

// next consumes and returns the next byte of input, reporting false at the
// end of the input.
func (s *Scanner) next() (byte, bool) {
	if s.end >= len(s.src) {
		return 0, false
	}
	ch := s.src[s.end]
	s.end++
	if ch == '\n' {
		s.eline++
		s.ecol = 0
	} else {
		s.ecol++
	}
	return ch, true
}

// peek returns the next byte of input without consuming it.
func (s *Scanner) peek() (byte, bool) {
	if s.end >= len(s.src) {
		return 0, false
	}
	return s.src[s.end], true
}

// accept consumes the next byte if it equals want, and reports whether it
// did so.
func (s *Scanner) accept(want byte) bool {
	if ch, ok := s.peek(); ok && ch == want {
		s.next()
		return true
	}
	return false
}

// readWhile consumes bytes matching f from the input until the end of input
// or until a byte not matching f is found, and reports the number of bytes
// consumed.
func (s *Scanner) readWhile(f func(byte) bool) int {
	var nr int
	for {
		ch, ok := s.peek()
		if !ok || !f(ch) {
			return nr
		}
		s.next()
		nr++
	}
}

// readHex4 reads exactly 4 hexadecimal digits from the input.
func (s *Scanner) readHex4() error {
	for i := 0; i < 4; i++ {
		ch, ok := s.next()
		if !ok {
			return s.failf(UnterminatedOrControlChar, "incomplete Unicode escape")
		} else if !isHexDigit(ch) {
			return s.failf(InvalidEscape, "invalid Unicode escape: not a hex digit: %q", ch)
		}
	}
	return nil
}

func (s *Scanner) failf(kind ErrorKind, msg string, args ...any) error {
	s.tok = Invalid
	s.err = &LexError{
		Kind:     kind,
		Location: LineCol{Line: s.eline + 1, Column: s.ecol},
		Message:  fmt.Sprintf(msg, args...),
	}
	return s.err
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNameByte(ch byte) bool { return ch >= 'a' && ch <= 'z' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
