/*
Package rangefmt renders range maps for fixed-width consoles.

Rendering is line-oriented: one entry per line in ascending interval order,
with intervals and value collections colored separately. Output is clipped
to a configurable line width, which by default follows the terminal.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package rangefmt

import (
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/ranges"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

// tracer writes to trace with key 'ranges'
func tracer() tracing.Trace {
	return tracing.Select("ranges")
}

// Role identifies a class of output tokens for coloring.
type Role int8

const (
	// RoleInterval colors the interval notation of an entry.
	RoleInterval Role = iota
	// RoleValues colors the value collection of an entry.
	RoleValues
	// RolePunctuation colors the separators between tokens.
	RolePunctuation
)

// Formatter renders entries of a range map with a color palette. It is to
// be used for consoles with a fixed width font.
type Formatter struct {
	colors map[Role]*color.Color
}

// NewFormatter creates a new formatter.
//
// colors is a map from token roles to display colors. It may contain just a
// subset of the roles; uncolored roles print plain. A nil map selects a
// default palette.
func NewFormatter(colors map[Role]*color.Color) *Formatter {
	fw := &Formatter{colors: colors}
	if colors == nil {
		fw.colors = makeDefaultPalette()
	}
	return fw
}

func makeDefaultPalette() map[Role]*color.Color {
	palette := map[Role]*color.Color{
		RoleInterval: color.New(color.FgBlue),
		RoleValues:   color.New(color.FgRed),
	}
	return palette
}

// styledToken outputs one token, colored if the palette has a color for its
// role.
func (fw *Formatter) styledToken(s string, role Role, w io.Writer) {
	if c, ok := fw.colors[role]; ok {
		c.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// Config describes output properties for formatting.
type Config struct {
	// LineWidth is the target line length in fixed width positions; longer
	// lines are clipped. Zero means unclipped.
	LineWidth int
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			config.LineWidth = lineWidthFor(w)
		}
		tracer().Debugf("terminal line width = %d", config.LineWidth)
	} else {
		config.LineWidth = 65
	}
	return config
}

// lineWidthFor derives a usable line width from the terminal width, leaving
// a margin on wide terminals and enforcing a floor of 10 on tiny ones.
func lineWidthFor(w int) int {
	if w > 65 {
		return w - 10
	} else if w > 30 {
		return w - 5
	} else if w > 10 {
		return w
	}
	return 10
}

// Print outputs a range map to stdout. If config is nil, a heuristic will
// create a config from the current terminal's properties (if stdout is
// interactive).
func Print[K cmp.Ordered, V any](m ranges.MultiMap[K, V], config *Config, fw *Formatter) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Output(m, os.Stdout, config, fw)
}

// Output formats a range map to w, one entry per line in ascending order.
func Output[K cmp.Ordered, V any](m ranges.MultiMap[K, V], w io.Writer, config *Config, fw *Formatter) error {
	if fw == nil {
		fw = NewFormatter(nil)
	}
	if config == nil {
		config = &Config{}
	}
	for iv, values := range m.AsMapOfRanges().All() {
		ivToken := iv.String()
		valToken := fmt.Sprintf("%v", values)
		valToken = clip(valToken, config.LineWidth, len([]rune(ivToken))+1)
		fw.styledToken(ivToken, RoleInterval, w)
		fw.styledToken("=", RolePunctuation, w)
		fw.styledToken(valToken, RoleValues, w)
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// clip shortens a token so the whole line fits into width positions, used
// runes already taken. Clipped tokens end in an ellipsis.
func clip(s string, width, used int) string {
	if width <= 0 {
		return s
	}
	room := width - used
	runes := []rune(s)
	if len(runes) <= room {
		return s
	}
	if room < 1 {
		return "…"
	}
	return string(runes[:room-1]) + "…"
}
