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

import "strings"

// Predicate decides whether a candidate name satisfies the search
// criteria. GraphQL identifiers are case-sensitive, so both exact and
// containing modes are case-sensitive.
type Predicate struct {
	term       string
	containing bool
	scope      Scope
}

// NewPredicate builds a predicate from the run options.
func NewPredicate(term string, containing bool, scope Scope) Predicate {
	if scope == "" {
		scope = ScopeEither
	}
	return Predicate{term: term, containing: containing, scope: scope}
}

// MatchesType reports whether a type name satisfies the predicate.
func (p Predicate) MatchesType(name string) bool {
	return p.scope != ScopeField && p.matches(name)
}

// MatchesField reports whether a field name satisfies the predicate.
func (p Predicate) MatchesField(name string) bool {
	return p.scope != ScopeType && p.matches(name)
}

func (p Predicate) matches(name string) bool {
	if p.containing {
		return strings.Contains(name, p.term)
	}
	return name == p.term
}
