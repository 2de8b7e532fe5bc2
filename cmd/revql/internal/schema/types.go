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

// TypeKind classifies a named type.
type TypeKind string

const (
	KindScalar      TypeKind = "SCALAR"
	KindObject      TypeKind = "OBJECT"
	KindInterface   TypeKind = "INTERFACE"
	KindUnion       TypeKind = "UNION"
	KindEnum        TypeKind = "ENUM"
	KindInputObject TypeKind = "INPUT_OBJECT"
)

// HasFields reports whether types of this kind carry field definitions.
func (k TypeKind) HasFields() bool {
	return k == KindObject || k == KindInterface
}

// HasPossibleTypes reports whether types of this kind fan out to a set
// of concrete object types.
func (k TypeKind) HasPossibleTypes() bool {
	return k == KindUnion || k == KindInterface
}

// Modifier is a single wrapping modifier on a type reference.
type Modifier string

const (
	ModList    Modifier = "LIST"
	ModNonNull Modifier = "NON_NULL"
)

// TypeRef references a named type plus its wrapping modifiers,
// outermost first.
//
// Modifiers are transparent to reachability: only Name matters when the
// engine decides where a field leads. They are retained for structural
// equality and rendering.
type TypeRef struct {
	Name      string
	Modifiers []Modifier
}

// Equal reports structural equality: same named type and the same
// modifier sequence.
func (r TypeRef) Equal(other TypeRef) bool {
	if r.Name != other.Name || len(r.Modifiers) != len(other.Modifiers) {
		return false
	}
	for i, m := range r.Modifiers {
		if m != other.Modifiers[i] {
			return false
		}
	}
	return true
}

// String renders the reference in SDL-like notation, e.g. "[User!]!".
func (r TypeRef) String() string {
	// Render inside-out: walk modifiers from the innermost wrapper.
	s := r.Name
	for i := len(r.Modifiers) - 1; i >= 0; i-- {
		switch r.Modifiers[i] {
		case ModNonNull:
			s += "!"
		case ModList:
			s = "[" + s + "]"
		}
	}
	return s
}

// FieldDef is a field on an OBJECT or INTERFACE type.
//
// A FieldDef is owned by exactly one declaring type and never shared.
type FieldDef struct {
	Name string
	Type TypeRef
}

// TypeDef is a named node in the schema graph.
//
// Fields is populated for OBJECT and INTERFACE kinds; PossibleTypes for
// UNION and INTERFACE kinds (interfaces carry both). Possible types and
// interfaces are name references resolved through the Catalog, not
// embedded copies.
type TypeDef struct {
	Name          string
	Kind          TypeKind
	Fields        []FieldDef
	Interfaces    []string
	PossibleTypes []string
}

// Implements reports whether the type declares the named interface.
func (t *TypeDef) Implements(iface string) bool {
	for _, name := range t.Interfaces {
		if name == iface {
			return true
		}
	}
	return false
}
