// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

// APIVersion is the JSON output schema version.
const APIVersion = "1.0"

// Exit codes for the command layer.
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitBadArgs = 2
)

// Operation kinds a match is reported against.
const (
	OpQuery    = "query"
	OpMutation = "mutation"
)

// Scope restricts which name kinds the predicate evaluates.
type Scope string

const (
	// ScopeEither evaluates both type names and field names.
	ScopeEither Scope = "either"

	// ScopeType evaluates type names only.
	ScopeType Scope = "type"

	// ScopeField evaluates field names only.
	ScopeField Scope = "field"
)

// Options configures a search run.
type Options struct {
	// Term is the search term. Must not be empty.
	Term string

	// Containing selects substring matching instead of exact equality.
	// Both modes are case-sensitive.
	Containing bool

	// Scope restricts matching to type names, field names, or both.
	Scope Scope

	// ShowRelay disables pruning of Relay pagination artifacts.
	ShowRelay bool

	// Workers bounds concurrent root-field walks. Zero or negative
	// means runtime.NumCPU.
	Workers int
}

// PathStep is one step of a traversal path.
//
// A field selection step carries both the owning type and the field
// name. A polymorphic fan-out step (descending from a union or
// interface into a possible concrete type) carries the concrete type
// name only.
type PathStep struct {
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`
}

// Name returns the step's display name: the field name for a field
// selection, the concrete type name for a fan-out step.
func (s PathStep) Name() string {
	if s.Field != "" {
		return s.Field
	}
	return s.Type
}

// TerminalKind distinguishes what satisfied the predicate.
type TerminalKind string

const (
	TerminalType  TerminalKind = "type"
	TerminalField TerminalKind = "field"
)

// Terminal is the type or field that satisfied the predicate.
type Terminal struct {
	Kind TerminalKind `json:"kind"`
	Name string       `json:"name"`

	// On is the type declaring a field terminal. Empty for type
	// terminals.
	On string `json:"on,omitempty"`
}

// Match is one distinct path from a root operation field to a terminal
// satisfying the predicate.
type Match struct {
	// Operation is "query" or "mutation".
	Operation string `json:"operation"`

	// RootField is the operation field the path starts from.
	RootField string `json:"root_field"`

	// Steps is the path in root-to-leaf order. The first step selects
	// RootField on the root type; a field terminal's selecting step is
	// the last element.
	Steps []PathStep `json:"steps"`

	Terminal Terminal `json:"terminal"`
}

// StepNames returns the display names of the path's steps in order.
func (m Match) StepNames() []string {
	names := make([]string, len(m.Steps))
	for i, s := range m.Steps {
		names[i] = s.Name()
	}
	return names
}

// Result is the aggregated outcome of a search run.
type Result struct {
	APIVersion string  `json:"api_version"`
	Term       string  `json:"term"`
	Scope      Scope   `json:"scope"`
	Containing bool    `json:"containing"`
	ShowRelay  bool    `json:"show_relay"`
	Matches    []Match `json:"matches"`
	TotalCount int     `json:"total_count"`
}
