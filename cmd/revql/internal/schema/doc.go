// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package schema provides the typed, immutable view of an introspection
// document that the search engine traverses.
//
// The Catalog is built exactly once from a loaded document and never
// mutated afterwards. Every type reference in the document is resolved
// against the catalog at build time; a dangling reference is fatal
// (ErrUnknownType), because reachability conclusions drawn from a
// partially resolvable schema would be misleading.
//
// # Architecture
//
//	┌─────────────┐    ┌──────────────┐    ┌─────────────────┐
//	│ raw document │───▶│ Build        │───▶│ Catalog         │
//	│ (introspec-  │    │ (convert +   │    │ name → TypeDef  │
//	│  tion pkg)   │    │  verify refs)│    │ roots resolved  │
//	└─────────────┘    └──────────────┘    └─────────────────┘
//
// Union and interface possible types are stored as name references and
// resolved through the catalog at traversal time, which keeps the
// catalog itself acyclic by construction.
//
// # Thread Safety
//
// A built Catalog is immutable and safe for concurrent use.
package schema
