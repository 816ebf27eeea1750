// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jtrace implements a JSON scanner, and is the root of a small
// toolkit for parsing JSON documents into syntax trees and tracing their
// structure.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON held in memory.
// Construct a scanner from a byte slice and call its Next method to iterate
// over the tokens. Next advances to the next input token and returns nil, or
// reports an error:
//
//	s := jtrace.NewScanner(input)
//	for s.Next() == nil && s.Token() != jtrace.EndOfInput {
//	   log.Printf("Next token: %v %q", s.Token(), s.Text())
//	}
//
// At the end of the input the token is EndOfInput, and further calls to Next
// continue to report it. A non-nil error from Next has concrete type
// *LexError:
//
//	if err := s.Err(); err != nil {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//
// # Strings
//
// By default the scanner accepts only four escapes in a string: a backslash
// followed by a quotation mark, a backslash, a raw newline, or a raw tab.
// A raw tab or newline that is not escaped is an error. Call
// AllowStandardEscapes to accept the full set of escapes from RFC 8259.
//
// # Errors
//
// Lexical errors have type *LexError and syntax errors reported by the
// parser in package ast have type *SyntaxError. Both carry the line and
// column of the failure and unwrap to an ErrorKind, which may be checked
// with errors.Is:
//
//	if errors.Is(err, jtrace.TrailingCommaOrMissingElement) {
//	   // ...
//	}
//
// # Syntax trees
//
// Package ast builds syntax trees from JSON source with a recursive-descent
// parser, and renders them as an indented structural trace. Package
// cmd/jtrace is a command-line front end for both.
package jtrace
