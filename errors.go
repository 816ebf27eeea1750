// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtrace

import "fmt"

// ErrorKind classifies a lexical or syntax error. The kinds are themselves
// errors, so that callers can test for them with errors.Is:
//
//	if errors.Is(err, jtrace.InvalidNumber) { ... }
type ErrorKind byte

// Constants defining the lexical error kinds, reported by a *LexError.
const (
	InvalidNumber             ErrorKind = iota + 1 // malformed digits, fraction, or exponent
	UnterminatedOrControlChar                      // raw control byte or missing close quote in a string
	InvalidEscape                                  // backslash followed by an unsupported character
	UnexpectedChar                                 // byte matches no token rule
)

// Constants defining the syntax error kinds, reported by a *SyntaxError.
const (
	UnexpectedToken               ErrorKind = iota + 16 // lookahead cannot begin or continue the production
	TrailingCommaOrMissingElement                       // comma not followed by a member or value
	UnconsumedInput                                     // input remains after a complete document
	NestingTooDeep                                      // objects and arrays nested beyond the limit
)

var kindStr = map[ErrorKind]string{
	InvalidNumber:             "invalid number",
	UnterminatedOrControlChar: "unterminated string or control character",
	InvalidEscape:             "invalid escape",
	UnexpectedChar:            "unexpected character",

	UnexpectedToken:               "unexpected token",
	TrailingCommaOrMissingElement: "trailing comma or missing element",
	UnconsumedInput:               "unconsumed input",
	NestingTooDeep:                "nesting too deep",
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string {
	if s, ok := kindStr[k]; ok {
		return s
	}
	return fmt.Sprintf("error kind %d", byte(k))
}

// IsLexical reports whether k is one of the lexical error kinds.
func (k ErrorKind) IsLexical() bool { return k >= InvalidNumber && k <= UnexpectedChar }

// LexError is the concrete type of errors reported by the Scanner.
type LexError struct {
	Kind     ErrorKind
	Location LineCol
	Message  string
}

// Error satisfies the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("at %s: %v: %s", e.Location, e.Kind, e.Message)
}

// Unwrap supports error wrapping.
func (e *LexError) Unwrap() error { return e.Kind }

// SyntaxError is the concrete type of errors reported by the parser when the
// token stream does not match the JSON grammar.
type SyntaxError struct {
	Kind     ErrorKind
	Location LineCol
	Message  string
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %v: %s", e.Location, e.Kind, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.Kind }
