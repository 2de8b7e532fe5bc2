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

func sampleMatch() Match {
	return Match{
		Operation: OpQuery,
		RootField: "user",
		Steps: []PathStep{
			{Type: "Query", Field: "user"},
			{Type: "User", Field: "name"},
		},
		Terminal: Terminal{Kind: TerminalField, Name: "name", On: "User"},
	}
}

// TestAggregator_DropsDuplicates verifies identical matches collapse to
// one, keeping first-seen position.
func TestAggregator_DropsDuplicates(t *testing.T) {
	agg := newAggregator()

	agg.add(sampleMatch())
	agg.add(sampleMatch())

	assert.Len(t, agg.matches(), 1)
}

// TestAggregator_DistinctPathsKept verifies matches differing only in
// path are both kept.
func TestAggregator_DistinctPathsKept(t *testing.T) {
	agg := newAggregator()

	direct := sampleMatch()
	viaFriend := sampleMatch()
	viaFriend.Steps = []PathStep{
		{Type: "Query", Field: "user"},
		{Type: "User", Field: "friend"},
		{Type: "User", Field: "name"},
	}

	agg.add(direct)
	agg.add(viaFriend)

	out := agg.matches()
	assert.Len(t, out, 2)
	assert.Equal(t, direct, out[0])
	assert.Equal(t, viaFriend, out[1])
}

// TestAggregator_DistinctTerminalsKept verifies a type terminal and a
// field terminal on the same path are distinct.
func TestAggregator_DistinctTerminalsKept(t *testing.T) {
	agg := newAggregator()

	fieldMatch := sampleMatch()
	typeMatch := sampleMatch()
	typeMatch.Terminal = Terminal{Kind: TerminalType, Name: "name"}

	agg.add(fieldMatch)
	agg.add(typeMatch)

	assert.Len(t, agg.matches(), 2)
}

// TestAggregator_EmptyIsNotNil verifies zero matches yield an empty
// slice so JSON output renders [] rather than null.
func TestAggregator_EmptyIsNotNil(t *testing.T) {
	agg := newAggregator()

	out := agg.matches()
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
