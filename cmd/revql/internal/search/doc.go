// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package search implements reverse lookup over a schema catalog: find
// every Query and Mutation root field whose response graph reaches a
// type or field matching a predicate, and report the paths.
//
// # Description
//
// The Engine performs a depth-first, path-sensitive walk from each root
// field. Cycle suppression is path-local: a type already on the active
// path is still scanned for field-name matches, but its type match is
// not re-emitted and the walk does not descend through it again. This
// terminates on any schema (the visited set strictly grows along every
// path) while still reporting the same type via distinct independent
// paths.
//
// Union and interface types fan out into their possible concrete types;
// the concrete type name becomes an explicit path step. Wrapping
// modifiers (list, non-null) are transparent throughout.
//
// Relay pagination artifacts (connections, edges, PageInfo) are pruned
// from the walk entirely unless Options.ShowRelay is set. Pruning is a
// traversal rule, not a display filter: the generic edges/node/cursor
// machinery recurs across unrelated connection types and would
// otherwise bury domain matches in noise.
//
// Root-field walks are independent and run concurrently over the
// immutable catalog; results are stitched back into root-then-
// declaration order, so output is deterministic for a given document.
//
// # Thread Safety
//
// An Engine is safe for concurrent Search calls; all per-walk state is
// local.
package search
