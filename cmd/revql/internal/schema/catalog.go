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

import (
	"fmt"

	"github.com/AleutianAI/revql/cmd/revql/internal/introspection"
)

// Catalog is the immutable name index over a schema's types.
//
// # Description
//
// Catalog provides O(1) lookups by type name and resolves wrapped type
// references to their underlying named type. Built once from a loaded
// document; every reference is verified during Build, so lookups after
// a successful Build cannot dangle.
//
// # Thread Safety
//
// Catalog is immutable after Build and safe for concurrent use.
type Catalog struct {
	types  []TypeDef
	byName map[string]*TypeDef

	queryType    *TypeDef
	mutationType *TypeDef
}

// Build constructs a Catalog from a loaded introspection document.
//
// # Description
//
// Converts the raw document into the typed model, indexes types by name
// in declaration order, resolves the root operation types, and verifies
// that every type reference (field return types, interfaces, possible
// types) lands on a catalogued type.
//
// # Inputs
//
//   - doc: The validated document. Must not be nil.
//
// # Outputs
//
//   - *Catalog: The built catalog. Never nil on success.
//   - error: ErrMissingQueryRoot if the document has no resolvable Query
//     type; ErrUnknownType (as *UnknownTypeError) on any dangling
//     reference.
func Build(doc *introspection.Schema) (*Catalog, error) {
	if doc == nil {
		return nil, fmt.Errorf("doc must not be nil")
	}

	c := &Catalog{
		types:  make([]TypeDef, 0, len(doc.Types)),
		byName: make(map[string]*TypeDef, len(doc.Types)),
	}

	for _, raw := range doc.Types {
		def := TypeDef{
			Name: raw.Name,
			Kind: TypeKind(raw.Kind),
		}
		for _, f := range raw.Fields {
			ref, err := convertRef(&f.Type, raw.Name, f.Name)
			if err != nil {
				return nil, err
			}
			def.Fields = append(def.Fields, FieldDef{Name: f.Name, Type: ref})
		}
		for _, iface := range raw.Interfaces {
			def.Interfaces = append(def.Interfaces, iface.Named().Name)
		}
		for _, pt := range raw.PossibleTypes {
			def.PossibleTypes = append(def.PossibleTypes, pt.Named().Name)
		}
		c.types = append(c.types, def)
	}

	// Index after the slice is complete so pointers stay valid.
	for i := range c.types {
		c.byName[c.types[i].Name] = &c.types[i]
	}

	if err := c.verifyReferences(); err != nil {
		return nil, err
	}

	if doc.QueryType == nil || doc.QueryType.Name == "" {
		return nil, ErrMissingQueryRoot
	}
	query, ok := c.byName[doc.QueryType.Name]
	if !ok {
		return nil, fmt.Errorf("%w: query root %q not in type list", ErrMissingQueryRoot, doc.QueryType.Name)
	}
	c.queryType = query

	// Mutations are optional; a named but absent mutation root is a
	// malformed document, not a missing feature.
	if doc.MutationType != nil && doc.MutationType.Name != "" {
		mutation, ok := c.byName[doc.MutationType.Name]
		if !ok {
			return nil, &UnknownTypeError{TypeName: doc.MutationType.Name}
		}
		c.mutationType = mutation
	}

	return c, nil
}

// verifyReferences checks that every name reference resolves.
func (c *Catalog) verifyReferences() error {
	for i := range c.types {
		t := &c.types[i]
		for _, f := range t.Fields {
			if _, ok := c.byName[f.Type.Name]; !ok {
				return &UnknownTypeError{TypeName: f.Type.Name, Owner: t.Name, Field: f.Name}
			}
		}
		for _, name := range t.Interfaces {
			if _, ok := c.byName[name]; !ok {
				return &UnknownTypeError{TypeName: name, Owner: t.Name}
			}
		}
		for _, name := range t.PossibleTypes {
			if _, ok := c.byName[name]; !ok {
				return &UnknownTypeError{TypeName: name, Owner: t.Name}
			}
		}
	}
	return nil
}

// convertRef flattens a raw wrapper chain into a TypeRef.
func convertRef(raw *introspection.TypeRef, owner, field string) (TypeRef, error) {
	var ref TypeRef
	cur := raw
	for cur != nil && cur.OfType != nil {
		switch cur.Kind {
		case introspection.KindList:
			ref.Modifiers = append(ref.Modifiers, ModList)
		case introspection.KindNonNull:
			ref.Modifiers = append(ref.Modifiers, ModNonNull)
		}
		cur = cur.OfType
	}
	if cur == nil || cur.Name == "" {
		return TypeRef{}, &UnknownTypeError{Owner: owner, Field: field}
	}
	ref.Name = cur.Name
	return ref, nil
}

// Resolve looks up a type by name.
//
// # Outputs
//
//   - *TypeDef: The type definition.
//   - error: ErrUnknownType (as *UnknownTypeError) if absent.
func (c *Catalog) Resolve(name string) (*TypeDef, error) {
	t, ok := c.byName[name]
	if !ok {
		return nil, &UnknownTypeError{TypeName: name}
	}
	return t, nil
}

// Underlying strips all wrapping modifiers from a reference and resolves
// the named type.
func (c *Catalog) Underlying(ref TypeRef) (*TypeDef, error) {
	return c.Resolve(ref.Name)
}

// QueryType returns the root query type. Never nil on a built catalog.
func (c *Catalog) QueryType() *TypeDef {
	return c.queryType
}

// MutationType returns the root mutation type, or nil when the document
// has none.
func (c *Catalog) MutationType() *TypeDef {
	return c.mutationType
}

// Types returns all type definitions in declaration order.
//
// The returned slice is the catalog's own backing storage; callers must
// not modify it.
func (c *Catalog) Types() []TypeDef {
	return c.types
}

// Len returns the number of catalogued types.
func (c *Catalog) Len() int {
	return len(c.types)
}
