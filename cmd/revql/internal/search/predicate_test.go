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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPredicate_Exact verifies exact mode accepts only equality,
// case-sensitively.
func TestPredicate_Exact(t *testing.T) {
	p := NewPredicate("User", false, ScopeEither)

	assert.True(t, p.MatchesType("User"))
	assert.False(t, p.MatchesType("user"))
	assert.False(t, p.MatchesType("UserEdge"))
	assert.False(t, p.MatchesType("AdminUser"))
}

// TestPredicate_Containing verifies substring mode, still
// case-sensitive.
func TestPredicate_Containing(t *testing.T) {
	p := NewPredicate("User", true, ScopeEither)

	assert.True(t, p.MatchesType("User"))
	assert.True(t, p.MatchesType("UserEdge"))
	assert.True(t, p.MatchesType("AdminUser"))
	assert.False(t, p.MatchesType("user"))
	assert.False(t, p.MatchesType("USERS"))
}

// TestPredicate_TypeScope verifies type scope rejects field candidates.
func TestPredicate_TypeScope(t *testing.T) {
	p := NewPredicate("name", false, ScopeType)

	assert.True(t, p.MatchesType("name"))
	assert.False(t, p.MatchesField("name"))
}

// TestPredicate_FieldScope verifies field scope rejects type
// candidates.
func TestPredicate_FieldScope(t *testing.T) {
	p := NewPredicate("name", false, ScopeField)

	assert.True(t, p.MatchesField("name"))
	assert.False(t, p.MatchesType("name"))
}

// TestPredicate_EitherScope verifies both kinds are evaluated, and an
// empty scope defaults to either.
func TestPredicate_EitherScope(t *testing.T) {
	p := NewPredicate("name", false, Scope(""))

	assert.True(t, p.MatchesType("name"))
	assert.True(t, p.MatchesField("name"))
}
