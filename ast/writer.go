// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bufio"
	"io"
	"strings"

	"github.com/creachadair/jtrace"
)

// A Writer carries the settings for rendering a syntax tree as an indented
// trace of its grammar nodes. A zero value is ready for use with default
// settings.
//
// The trace is a diagnostic view and is not valid JSON. Each object, array,
// or member value is labelled, and its contents are written one level deeper
// between braces:
//
//	Json
//	{
//	  Value
//	  {
//	    Array
//	    {
//	      "a"
//	      1
//	    }
//	  }
//	}
//
// A member value is prefixed by its key, as in "key":Value or "key":1.
//
// Keys and literals are written exactly as they appear in the source. A
// string containing a backslash followed by a raw newline therefore spans
// more than one line of the trace.
type Writer struct {
	// Indent is the text written once per nesting level. If empty, two
	// spaces are used.
	Indent string

	// If not nil, Color is used to highlight labels, keys, and literals.
	Color *Colorizer
}

func (tw Writer) indent() string {
	if tw.Indent == "" {
		return "  "
	}
	return tw.Indent
}

// Write renders a trace of doc to w with default settings.
func Write(w io.Writer, doc *Document) error {
	var tw Writer
	return tw.Write(w, doc)
}

// WriteToString renders a trace of doc to a string with default settings.
func WriteToString(doc *Document) string {
	var sb strings.Builder
	Write(&sb, doc) // a strings.Builder does not fail
	return sb.String()
}

// Write renders a trace of doc to w using the settings from tw.
func (tw Writer) Write(w io.Writer, doc *Document) error {
	t := &tracer{w: bufio.NewWriter(w), indent: tw.indent(), color: tw.Color}
	t.beginLine()
	t.label("Json")
	t.endLine()
	t.beginBlock()
	t.writeValue(doc.Value, "")
	t.endBlock()
	return t.w.Flush()
}

// A tracer holds the state of a single Write call. Errors are recorded by
// the bufio.Writer and reported by Flush.
type tracer struct {
	w      *bufio.Writer
	indent string
	color  *Colorizer
	level  int
}

// writeValue writes v, prefixed by key if it is not empty.
func (t *tracer) writeValue(v Value, key string) {
	t.beginLine()
	if key != "" {
		t.colored(t.color.key(), key)
	}
	switch v := v.(type) {
	case *Object:
		t.label("Value")
		t.endLine()
		t.beginBlock()
		t.writeObject(v)
		t.endBlock()
	case *Array:
		t.label("Value")
		t.endLine()
		t.beginBlock()
		t.writeArray(v)
		t.endBlock()
	case *Literal:
		t.colored(t.color.literal(v.Kind()), v.Text())
		t.endLine()
	}
}

func (t *tracer) writeObject(o *Object) {
	t.beginLine()
	t.label("Object")
	t.endLine()
	t.beginBlock()
	for m := range o.Members.All() {
		t.writeValue(m.Value, `"`+m.Key+`":`)
	}
	t.endBlock()
}

func (t *tracer) writeArray(a *Array) {
	t.beginLine()
	t.label("Array")
	t.endLine()
	t.beginBlock()
	for v := range a.Elements.All() {
		t.writeValue(v, "")
	}
	t.endBlock()
}

func (t *tracer) beginBlock() {
	t.beginLine()
	t.w.WriteString("{\n")
	t.level++
}

func (t *tracer) endBlock() {
	t.level--
	t.beginLine()
	t.w.WriteString("}\n")
}

func (t *tracer) beginLine() {
	for range t.level {
		t.w.WriteString(t.indent)
	}
}

func (t *tracer) endLine() { t.w.WriteByte('\n') }

func (t *tracer) label(s string) { t.colored(t.color.label(), s) }

func (t *tracer) colored(code, s string) {
	if code == "" {
		t.w.WriteString(s)
		return
	}
	t.w.WriteString(code)
	t.w.WriteString(s)
	t.w.WriteString(t.color.Reset)
}

// A Colorizer holds terminal escape sequences used to highlight parts of a
// trace. An empty code leaves that part unhighlighted.
type Colorizer struct {
	Label    string
	Key      string
	String   string
	Number   string
	Constant string // true, false, null
	Reset    string
}

// DefaultColorizer is a Colorizer using ANSI terminal colors.
var DefaultColorizer = &Colorizer{
	Label:    "\x1b[1m",
	Key:      "\x1b[34m",
	String:   "\x1b[32m",
	Number:   "\x1b[33m",
	Constant: "\x1b[36m",
	Reset:    "\x1b[0m",
}

func (c *Colorizer) label() string {
	if c == nil {
		return ""
	}
	return c.Label
}

func (c *Colorizer) key() string {
	if c == nil {
		return ""
	}
	return c.Key
}

func (c *Colorizer) literal(kind jtrace.Token) string {
	if c == nil {
		return ""
	}
	switch kind {
	case jtrace.String:
		return c.String
	case jtrace.Number:
		return c.Number
	default:
		return c.Constant
	}
}
