// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"slices"
	"strings"

	"github.com/creachadair/jtrace"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 10000

// Options control the behavior of the parser. A nil *Options is ready for
// use and provides default settings.
type Options struct {
	// MaxDepth is the maximum nesting depth of objects and arrays. If zero,
	// DefaultMaxDepth is used; if negative, nesting is not limited.
	MaxDepth int

	// StandardEscapes enables the full set of RFC 8259 string escapes.
	// See jtrace.Scanner.AllowStandardEscapes.
	StandardEscapes bool
}

func (o *Options) maxDepth() int {
	if o == nil || o.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o *Options) standardEscapes() bool { return o != nil && o.StandardEscapes }

// Parse parses src as a single JSON document with default options.
func Parse(src []byte) (*Document, error) { return (*Options)(nil).Parse(src) }

// ParseString parses src as a single JSON document with default options.
func ParseString(src string) (*Document, error) { return Parse([]byte(src)) }

// Parse parses src as a single JSON document. The entire input must consist
// of exactly one value, optionally surrounded by whitespace.
//
// Parsing is all-or-nothing: in case of error, no document is returned. A
// lexical error has concrete type *jtrace.LexError, and a grammar error has
// concrete type *jtrace.SyntaxError. Both unwrap to a jtrace.ErrorKind.
func (o *Options) Parse(src []byte) (_ *Document, err error) {
	p := &parser{s: jtrace.NewScanner(src), max: o.maxDepth()}
	p.s.AllowStandardEscapes(o.standardEscapes())
	defer recoverParseError(&err)

	p.advance()
	v := p.parseValue()
	if tok := p.s.Token(); tok != jtrace.EndOfInput {
		p.fail(jtrace.UnconsumedInput, "expected %v, got %v", jtrace.EndOfInput, tok)
	}
	return &Document{Value: v}, nil
}

// A parser is a recursive-descent parser for the JSON grammar:
//
//	Document := Value EndOfInput
//	Value    := Object | Array | String | Number | True | False | Null
//	Object   := "{" (Member ("," Member)*)? "}"
//	Member   := String ":" Value
//	Array    := "[" (Value ("," Value)*)? "]"
//
// The current token of the scanner is the lookahead. Each production
// begins with its first token as the lookahead, and returns with the
// lookahead on the first token following it.
type parser struct {
	s     *jtrace.Scanner
	depth int
	max   int
}

func recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		switch err := perr.(type) {
		case *jtrace.SyntaxError:
			*errp = err
		case *jtrace.LexError:
			*errp = err
		default:
			panic(perr)
		}
	}
}

// parseValue consumes a single value of any type.
func (p *parser) parseValue() Value {
	switch tok := p.s.Token(); tok {
	case jtrace.LBrace:
		return p.parseObject()
	case jtrace.LSquare:
		return p.parseArray()
	case jtrace.String, jtrace.Number, jtrace.True, jtrace.False, jtrace.Null:
		sp := p.s.Span()
		lit := &Literal{pos: sp.Pos, end: sp.End, kind: tok, text: string(p.s.Text())}
		p.advance()
		return lit
	default:
		p.fail(jtrace.UnexpectedToken, "expected value, got %v", tok)
		return nil // not reached
	}
}

// parseObject consumes an object and its members.
// Precondition: token == LBrace.
func (p *parser) parseObject() *Object {
	p.enter()
	obj := &Object{pos: p.s.Span().Pos}
	p.advance()

	if tok := p.s.Token(); tok != jtrace.RBrace {
		p.require(jtrace.RBrace, jtrace.String)
		for {
			obj.Members.Add(p.parseMember())

			// Check whether we have more members (",") or are done ("}").
			if p.require(jtrace.Comma, jtrace.RBrace) == jtrace.RBrace {
				break
			}
			p.advance()
			if tok := p.s.Token(); tok != jtrace.String {
				p.fail(jtrace.TrailingCommaOrMissingElement, "expected %v after %v, got %v",
					jtrace.String, jtrace.Comma, tok)
			}
		}
	}
	obj.end = p.s.Span().End
	p.advance()
	p.leave()
	return obj
}

// parseMember consumes a single "key": value member.
// Precondition: token == String.
func (p *parser) parseMember() *Member {
	sp, key := p.s.Span(), p.s.Text()
	mem := &Member{pos: sp.Pos, Key: string(key[1 : len(key)-1])}
	p.advance()
	p.expect(jtrace.Colon)
	mem.Value = p.parseValue()
	mem.end = mem.Value.Span().End
	return mem
}

// parseArray consumes an array and its elements.
// Precondition: token == LSquare.
func (p *parser) parseArray() *Array {
	p.enter()
	arr := &Array{pos: p.s.Span().Pos}
	p.advance()

	if tok := p.s.Token(); tok != jtrace.RSquare {
		for {
			arr.Elements.Add(p.parseValue())

			// Check whether we have more elements (",") or are done ("]").
			if p.require(jtrace.Comma, jtrace.RSquare) == jtrace.RSquare {
				break
			}
			p.advance()
			if tok := p.s.Token(); !startsValue(tok) {
				p.fail(jtrace.TrailingCommaOrMissingElement, "expected value after %v, got %v",
					jtrace.Comma, tok)
			}
		}
	}
	arr.end = p.s.Span().End
	p.advance()
	p.leave()
	return arr
}

// advance discards the current token and scans the next one.
func (p *parser) advance() {
	if err := p.s.Next(); err != nil {
		panic(err)
	}
}

// expect advances past the current token if it is tok, or fails.
func (p *parser) expect(tok jtrace.Token) {
	p.require(tok)
	p.advance()
}

// require fails unless the current token is one of tokens, which it returns.
func (p *parser) require(tokens ...jtrace.Token) jtrace.Token {
	tok := p.s.Token()
	if !slices.Contains(tokens, tok) {
		p.fail(jtrace.UnexpectedToken, "%s", tokLabel(tokens, tok))
	}
	return tok
}

func (p *parser) enter() {
	p.depth++
	if p.max > 0 && p.depth > p.max {
		p.fail(jtrace.NestingTooDeep, "more than %d nested values", p.max)
	}
}

func (p *parser) leave() { p.depth-- }

func (p *parser) fail(kind jtrace.ErrorKind, msg string, args ...any) {
	panic(&jtrace.SyntaxError{
		Kind:     kind,
		Location: p.s.Location().First,
		Message:  fmt.Sprintf(msg, args...),
	})
}

// startsValue reports whether tok is in the FIRST set of Value.
func startsValue(tok jtrace.Token) bool {
	return tok == jtrace.LBrace || tok == jtrace.LSquare || tok.IsLiteral()
}

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []jtrace.Token, got jtrace.Token) string {
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, last)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
