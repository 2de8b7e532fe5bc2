// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the revql CLI.
//
// Styling is gated on an explicit Renderer rather than ambient state:
// color is applied only when stdout is a terminal, NO_COLOR is unset,
// and the caller did not disable it. Disabled rendering returns input
// strings unchanged, so piped output stays clean.
package ux

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// revql color palette
var (
	ColorType     = lipgloss.Color("#2ECC71") // Green - type names
	ColorTerminal = lipgloss.Color("#E74C3C") // Red - the matched terminal
	ColorHeading  = lipgloss.Color("#2CD7C7") // Bright teal - headings
	ColorWarning  = lipgloss.Color("#F4D03F") // Gold/amber - warnings
	ColorError    = lipgloss.Color("#E74C3C") // Red - errors
	ColorMuted    = lipgloss.Color("#2C4A54") // Slate - separators, counts
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Heading  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Type     lipgloss.Style
	Terminal lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
}{
	Heading:  lipgloss.NewStyle().Bold(true).Foreground(ColorHeading),
	Bold:     lipgloss.NewStyle().Bold(true),
	Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
	Type:     lipgloss.NewStyle().Foreground(ColorType),
	Terminal: lipgloss.NewStyle().Bold(true).Foreground(ColorTerminal),
	Warning:  lipgloss.NewStyle().Foreground(ColorWarning),
	Error:    lipgloss.NewStyle().Foreground(ColorError),
}

// Renderer applies styles when color output is enabled and passes
// strings through unchanged otherwise.
//
// # Thread Safety
//
// Renderer is immutable after construction and safe for concurrent use.
type Renderer struct {
	enabled bool
}

// NewRenderer creates a renderer for stdout.
//
// Color is enabled only when all hold:
//   - noColor is false
//   - the NO_COLOR environment variable is unset (https://no-color.org)
//   - stdout is a terminal
func NewRenderer(noColor bool) *Renderer {
	enabled := !noColor &&
		os.Getenv("NO_COLOR") == "" &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
	return &Renderer{enabled: enabled}
}

// NewPlainRenderer creates a renderer that never styles. Used for tests
// and machine-readable output paths.
func NewPlainRenderer() *Renderer {
	return &Renderer{enabled: false}
}

// Enabled reports whether the renderer applies styles.
func (r *Renderer) Enabled() bool {
	return r.enabled
}

// TypeName styles a schema type name.
func (r *Renderer) TypeName(s string) string {
	return r.apply(Styles.Type, s)
}

// FieldName styles a field name. Field names render unstyled so the
// type and terminal colors carry the emphasis.
func (r *Renderer) FieldName(s string) string {
	return s
}

// Terminal styles the matched terminal name.
func (r *Renderer) Terminal(s string) string {
	return r.apply(Styles.Terminal, s)
}

// Heading styles a section heading.
func (r *Renderer) Heading(s string) string {
	return r.apply(Styles.Heading, s)
}

// Muted styles secondary text such as separators and counts.
func (r *Renderer) Muted(s string) string {
	return r.apply(Styles.Muted, s)
}

// Error styles an error message.
func (r *Renderer) Error(s string) string {
	return r.apply(Styles.Error, s)
}

// Arrow returns the path step separator.
func (r *Renderer) Arrow() string {
	return r.Muted(" -> ")
}

func (r *Renderer) apply(style lipgloss.Style, s string) string {
	if !r.enabled {
		return s
	}
	return style.Render(s)
}
