// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package schema

import "strings"

// Relay pagination artifacts are classified by naming convention, the
// only signal an introspection document carries. The heuristics can
// misfire on hand-written types that happen to follow the convention;
// the --show-relay flag exists for exactly that case.

// relayFieldNames are the connection-machinery field names that carry no
// domain meaning of their own.
var relayFieldNames = map[string]struct{}{
	"edges":    {},
	"node":     {},
	"pageInfo": {},
	"cursor":   {},
}

// IsRelayType reports whether a type is a Relay pagination artifact:
// a *Connection or *Edge wrapper, or PageInfo itself.
func IsRelayType(t *TypeDef) bool {
	if t == nil {
		return false
	}
	return t.Name == "PageInfo" ||
		strings.HasSuffix(t.Name, "Edge") ||
		strings.HasSuffix(t.Name, "Connection")
}

// IsRelayField reports whether a field is connection machinery rather
// than domain data.
//
// A field only counts as machinery when its owner is itself a Relay
// artifact or a Node implementer; a domain type that happens to declare
// a field named "cursor" keeps it.
func IsRelayField(f FieldDef, owner *TypeDef) bool {
	if owner == nil {
		return false
	}
	if _, ok := relayFieldNames[f.Name]; !ok {
		return false
	}
	return IsRelayType(owner) || owner.Implements("Node")
}
