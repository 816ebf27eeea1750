// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jtrace parses a JSON document and prints a trace of its syntax
// tree, or the document itself as compact JSON.
//
// Usage:
//
//	jtrace [flags] [input.json]
//
// If no input file is named, the document is read from stdin.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jtrace/ast"
	"github.com/creachadair/jtrace/ast/cursor"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/tailscale/hujson"
)

// options are the command-line flags and arguments.
type options struct {
	Input  string `arg:"" optional:"" type:"path" help:"Input JSON file (default stdin)."`
	Output string `short:"o" type:"path" help:"Write output to this file (default stdout)."`
	Config string `short:"c" type:"path" help:"Read settings from this YAML file."`

	JSON            bool   `name:"json" negatable:"" help:"Print compact JSON instead of a syntax trace."`
	JWCC            bool   `name:"jwcc" negatable:"" help:"Accept comments and trailing commas in the input."`
	StandardEscapes bool   `negatable:"" help:"Accept all RFC 8259 escapes in strings."`
	MaxDepth        int    `help:"Maximum nesting depth (negative for no limit)."`
	Indent          int    `help:"Spaces per nesting level in the trace."`
	Color           string `help:"Highlight the trace: auto, always, or never."`
	Select          string `short:"s" help:"Render only the value at this dot-separated path."`
}

var cli options

func main() {
	log.SetFlags(0)
	log.SetPrefix("jtrace: ")
	ctx := kong.Parse(&cli,
		kong.Name("jtrace"),
		kong.Description("Parse a JSON document and trace its syntax tree."),
		kong.UsageOnError(),
	)

	s, err := loadSettings(cli.Config)
	if err != nil {
		log.Fatalf("Loading settings: %v", err)
	}
	s = s.merge(settings{
		JSON:            cli.JSON,
		JWCC:            cli.JWCC,
		StandardEscapes: cli.StandardEscapes,
		MaxDepth:        cli.MaxDepth,
		Indent:          cli.Indent,
		Color:           cli.Color,
		Select:          cli.Select,
	}, flagsSet(ctx))
	if err := s.check(); err != nil {
		log.Fatal(err)
	}

	input, err := readInput(cli.Input)
	if err != nil {
		log.Fatalf("Reading input: %v", err)
	}
	if cli.Output != "" {
		if err := runToFile(s, input, cli.Output); err != nil {
			log.Fatalf("%s: %v", inputName(cli.Input), err)
		}
		return
	}

	doc, err := prepare(s, input)
	if err != nil {
		log.Fatalf("%s: %v", inputName(cli.Input), err)
	}
	var out io.Writer = os.Stdout
	useColor := s.Color == "always" || (s.Color == "auto" && isatty.IsTerminal(os.Stdout.Fd()))
	if useColor {
		out = colorable.NewColorableStdout()
	}
	if err := render(s, doc, out, useColor); err != nil {
		log.Fatalf("Writing output: %v", err)
	}
}

// flagsSet reports the names of the flags given on the command line.
func flagsSet(ctx *kong.Context) map[string]bool {
	set := make(map[string]bool)
	for _, p := range ctx.Path {
		if p.Flag != nil && !p.Resolved {
			set[p.Flag.Name] = true
		}
	}
	return set
}

// run parses input according to s and writes the rendered result to w.
func run(s settings, input []byte, w io.Writer, useColor bool) error {
	doc, err := prepare(s, input)
	if err != nil {
		return err
	}
	return render(s, doc, w, useColor)
}

// runToFile parses input according to s and writes the rendered result to
// the file at path. The file is created only if parsing succeeds.
func runToFile(s settings, input []byte, path string) error {
	doc, err := prepare(s, input)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	werr := render(s, doc, f, s.Color == "always")
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}

// prepare parses input according to s and returns the document to render.
func prepare(s settings, input []byte) (*ast.Document, error) {
	if s.JWCC {
		std, err := hujson.Standardize(input)
		if err != nil {
			return nil, fmt.Errorf("standardizing input: %w", err)
		}
		input = std
	}

	opts := &ast.Options{MaxDepth: s.MaxDepth, StandardEscapes: s.StandardEscapes}
	doc, err := opts.Parse(input)
	if err != nil {
		return nil, err
	}
	if s.Select != "" {
		v, err := cursor.Path(doc.Value, cursor.ParsePath(s.Select)...)
		if err != nil {
			return nil, fmt.Errorf("select %q: %w", s.Select, err)
		}
		doc = &ast.Document{Value: v}
	}
	return doc, nil
}

// render writes doc to w as compact JSON or as a trace, according to s.
func render(s settings, doc *ast.Document, w io.Writer, useColor bool) error {
	if s.JSON {
		_, err := fmt.Fprintln(w, doc.JSON())
		return err
	}
	tw := ast.Writer{Indent: strings.Repeat(" ", s.Indent)}
	if useColor {
		tw.Color = ast.DefaultColorizer
	}
	return tw.Write(w, doc)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func inputName(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}
