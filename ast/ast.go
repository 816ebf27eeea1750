// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON documents, a parser
// that constructs syntax trees from JSON source, and a writer that renders
// syntax trees as an indented structural trace.
//
// A tree is owned by its Document: each Object owns its members and each
// Array owns its elements, and no node is shared between two parents.
package ast

import (
	"strconv"
	"strings"

	"github.com/creachadair/jtrace"
)

// A Value is an arbitrary JSON value. The concrete type of a Value is always
// one of *Object, *Array, or *Literal.
type Value interface {
	// Span reports the location of the value in the source text.
	Span() jtrace.Span

	// JSON renders the value as compact JSON text.
	JSON() string

	isValue()
}

func newSpan(pos, end int) jtrace.Span { return jtrace.Span{Pos: pos, End: end} }

// A Document is the root of a parsed input, holding exactly one value.
type Document struct {
	Value Value
}

// Span reports the location of the document's value.
func (d *Document) Span() jtrace.Span { return d.Value.Span() }

// JSON renders the document's value as compact JSON text.
func (d *Document) JSON() string { return d.Value.JSON() }

// An Object is a collection of key-value members.
type Object struct {
	pos, end int
	Members  List[*Member]
}

// Span satisfies the Value interface.
func (o *Object) Span() jtrace.Span { return newSpan(o.pos, o.end) }

// JSON satisfies the Value interface.
func (o *Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.Members.items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Find returns the first member of o with the given key, or nil.
// The key is compared to the undecoded source text of each member key.
func (o *Object) Find(key string) *Member {
	for m := range o.Members.All() {
		if m.Key == key {
			return m
		}
	}
	return nil
}

func (*Object) isValue() {}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	pos, end int

	// Key is the source text of the key without its quotation marks.
	// Escape sequences are not decoded; see Unquote.
	Key   string
	Value Value
}

// Span reports the location of the member, from the key to the end of the
// value.
func (m *Member) Span() jtrace.Span { return newSpan(m.pos, m.end) }

// Unquote returns the key of m with its escape sequences decoded.
func (m *Member) Unquote() string {
	dec, err := jtrace.Unquote([]byte(`"` + m.Key + `"`))
	if err != nil {
		panic(err)
	}
	return string(dec)
}

// JSON renders the member as a JSON "key":value pair.
func (m *Member) JSON() string { return jtrace.Quote(m.Unquote()) + ":" + m.Value.JSON() }

// An Array is a sequence of values.
type Array struct {
	pos, end int
	Elements List[Value]
}

// Span satisfies the Value interface.
func (a *Array) Span() jtrace.Span { return newSpan(a.pos, a.end) }

// JSON satisfies the Value interface.
func (a *Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.Elements.items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (*Array) isValue() {}

// A Literal is a string, number, or constant value. Its source text is kept
// as written; numeric and string conversions are done on demand.
type Literal struct {
	pos, end int
	kind     jtrace.Token
	text     string
}

// Span satisfies the Value interface.
func (d *Literal) Span() jtrace.Span { return newSpan(d.pos, d.end) }

// Kind reports the token type of the literal: one of jtrace.String,
// jtrace.Number, jtrace.True, jtrace.False, or jtrace.Null.
func (d *Literal) Kind() jtrace.Token { return d.kind }

// Text returns the source text of the literal. For a string this includes
// the quotation marks.
func (d *Literal) Text() string { return d.text }

// JSON satisfies the Value interface.
func (d *Literal) JSON() string {
	if d.kind == jtrace.String {
		return jtrace.Quote(d.Unquote())
	}
	return d.text
}

// Int64 returns the value of a number literal as an int64.
// It panics if d is not a number representable as an int64.
func (d *Literal) Int64() int64 {
	v, err := strconv.ParseInt(d.number(), 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Float64 returns the value of a number literal as a float64.
// It panics if d is not a number.
func (d *Literal) Float64() float64 {
	v, err := strconv.ParseFloat(d.number(), 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Bool returns the value of a true or false literal.
// It panics if d is not a Boolean constant.
func (d *Literal) Bool() bool {
	switch d.kind {
	case jtrace.True:
		return true
	case jtrace.False:
		return false
	}
	panic("literal " + d.text + " is not a Boolean")
}

// Unquote returns the decoded contents of a string literal.
// It panics if d is not a string.
func (d *Literal) Unquote() string {
	if d.kind != jtrace.String {
		panic("literal " + d.text + " is not a string")
	}
	dec, err := jtrace.Unquote([]byte(d.text))
	if err != nil {
		panic(err)
	}
	return string(dec)
}

func (d *Literal) number() string {
	if d.kind != jtrace.Number {
		panic("literal " + d.text + " is not a number")
	}
	return d.text
}

func (*Literal) isValue() {}
