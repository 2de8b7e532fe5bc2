// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package introspection

// Type kind constants as they appear in introspection JSON.
//
// LIST and NON_NULL never appear as the kind of a named type; they only
// occur inside TypeRef wrapper chains.
const (
	KindScalar      = "SCALAR"
	KindObject      = "OBJECT"
	KindInterface   = "INTERFACE"
	KindUnion       = "UNION"
	KindEnum        = "ENUM"
	KindInputObject = "INPUT_OBJECT"
	KindList        = "LIST"
	KindNonNull     = "NON_NULL"
)

// Schema is the __schema payload of an introspection document.
//
// # Fields
//
//   - QueryType: Name of the root query type. Required downstream, but
//     its absence is a catalog-level error (MissingQueryRoot), not a
//     shape error: the JSON itself is still well formed without it.
//   - MutationType: Name of the root mutation type. Optional.
//   - Types: Every named type in the schema. Must be non-empty.
type Schema struct {
	QueryType    *RootRef `json:"queryType"`
	MutationType *RootRef `json:"mutationType"`
	Types        []Type   `json:"types" validate:"required,min=1,dive"`
}

// RootRef names a root operation type.
type RootRef struct {
	Name string `json:"name" validate:"required"`
}

// Type is one named type record from __schema.types.
type Type struct {
	Kind string `json:"kind" validate:"required,oneof=SCALAR OBJECT INTERFACE UNION ENUM INPUT_OBJECT"`
	Name string `json:"name" validate:"required"`

	// Fields is present for OBJECT and INTERFACE kinds, null otherwise.
	Fields []Field `json:"fields" validate:"omitempty,dive"`

	// Interfaces lists the interfaces an OBJECT implements.
	Interfaces []TypeRef `json:"interfaces"`

	// PossibleTypes lists the concrete types of a UNION or INTERFACE.
	PossibleTypes []TypeRef `json:"possibleTypes"`
}

// Field is a single field record on an OBJECT or INTERFACE type.
type Field struct {
	Name string  `json:"name" validate:"required"`
	Type TypeRef `json:"type"`
}

// TypeRef is a (possibly wrapped) reference to a type.
//
// Wrapper kinds (LIST, NON_NULL) carry no name and chain through OfType;
// the innermost reference names the actual type.
type TypeRef struct {
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

// Named returns the innermost named reference of a wrapper chain.
//
// Returns the receiver itself when it is not a wrapper. A chain that
// bottoms out without a name (truncated document) returns the innermost
// element unchanged; the catalog treats the empty name as unresolvable.
func (r *TypeRef) Named() *TypeRef {
	cur := r
	for cur.OfType != nil {
		cur = cur.OfType
	}
	return cur
}

// envelope covers the two accepted document shapes: the bare __schema
// payload and the {"data": {"__schema": ...}} wrapping produced by
// GraphQL servers.
type envelope struct {
	Data   *envelopeData `json:"data"`
	Schema *Schema       `json:"__schema"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type envelopeData struct {
	Schema *Schema `json:"__schema"`
}
