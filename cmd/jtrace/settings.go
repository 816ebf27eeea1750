// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// settings control how the input is parsed and rendered. They may be loaded
// from a YAML file and are overridden by command-line flags.
type settings struct {
	JSON            bool   `yaml:"json"`
	JWCC            bool   `yaml:"jwcc"`
	StandardEscapes bool   `yaml:"standard_escapes"`
	MaxDepth        int    `yaml:"max_depth"`
	Indent          int    `yaml:"indent"`
	Color           string `yaml:"color"`
	Select          string `yaml:"select"`
}

func defaultSettings() settings { return settings{Indent: 2, Color: "auto"} }

// loadSettings reads settings from the YAML file at path, on top of the
// defaults. If path is empty, the defaults are returned.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing %q: %w", path, err)
	}
	return s, s.check()
}

// merge returns a copy of s in which each field named in set is replaced by
// the corresponding field of o. Names are the command-line flag names.
func (s settings) merge(o settings, set map[string]bool) settings {
	if set["json"] {
		s.JSON = o.JSON
	}
	if set["jwcc"] {
		s.JWCC = o.JWCC
	}
	if set["standard-escapes"] {
		s.StandardEscapes = o.StandardEscapes
	}
	if set["max-depth"] {
		s.MaxDepth = o.MaxDepth
	}
	if set["indent"] {
		s.Indent = o.Indent
	}
	if set["color"] {
		s.Color = o.Color
	}
	if set["select"] {
		s.Select = o.Select
	}
	return s
}

func (s settings) check() error {
	switch s.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color setting %q (want auto, always, or never)", s.Color)
	}
	if s.Indent <= 0 {
		return fmt.Errorf("invalid indent %d (want a positive number of spaces)", s.Indent)
	}
	return nil
}
