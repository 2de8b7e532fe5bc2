// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package introspection loads raw GraphQL introspection documents.
//
// This package owns everything up to (and including) the point where a
// schema document is known to be well shaped. It deserializes the standard
// introspection JSON (the result of the canonical IntrospectionQuery),
// accepts both bare and "data"-wrapped envelopes, and validates the shape
// before any downstream code sees it.
//
// # Sources
//
// A document can come from three places, selected by the source string:
//
//   - a file path
//   - "-" for stdin
//   - an http(s):// URL, in which case the standard introspection query
//     is POSTed to the endpoint
//
// # Shape Validation
//
// Structural requirements (types present, every type named and kinded)
// are declared as validator tags on the document model and enforced in
// Parse. A document that fails validation is rejected with
// ErrInvalidDocument before a catalog is ever built; the reachability
// engine never touches raw JSON.
package introspection
