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

// aggregator deduplicates matches while preserving first-seen order.
// The walk is deterministic, so first-seen order is stable across runs.
type aggregator struct {
	seen map[string]struct{}
	out  []Match
}

func newAggregator() *aggregator {
	return &aggregator{seen: make(map[string]struct{})}
}

func (a *aggregator) add(m Match) {
	key := m.key()
	if _, dup := a.seen[key]; dup {
		return
	}
	a.seen[key] = struct{}{}
	a.out = append(a.out, m)
}

func (a *aggregator) matches() []Match {
	if a.out == nil {
		return []Match{}
	}
	return a.out
}

// key flattens the (operation, root field, terminal, path) identity.
// Names cannot contain the separator: GraphQL identifiers are
// [_A-Za-z][_0-9A-Za-z]*.
func (m Match) key() string {
	var b strings.Builder
	b.WriteString(m.Operation)
	b.WriteByte('|')
	b.WriteString(m.RootField)
	b.WriteByte('|')
	b.WriteString(string(m.Terminal.Kind))
	b.WriteByte('|')
	b.WriteString(m.Terminal.Name)
	b.WriteByte('|')
	b.WriteString(m.Terminal.On)
	for _, s := range m.Steps {
		b.WriteByte('|')
		b.WriteString(s.Type)
		b.WriteByte('.')
		b.WriteString(s.Field)
	}
	return b.String()
}
