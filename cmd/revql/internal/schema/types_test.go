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
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTypeKind_HasFields covers which kinds carry field definitions.
func TestTypeKind_HasFields(t *testing.T) {
	assert.True(t, KindObject.HasFields())
	assert.True(t, KindInterface.HasFields())
	assert.False(t, KindUnion.HasFields())
	assert.False(t, KindScalar.HasFields())
	assert.False(t, KindEnum.HasFields())
	assert.False(t, KindInputObject.HasFields())
}

// TestTypeKind_HasPossibleTypes covers polymorphic kinds.
func TestTypeKind_HasPossibleTypes(t *testing.T) {
	assert.True(t, KindUnion.HasPossibleTypes())
	assert.True(t, KindInterface.HasPossibleTypes())
	assert.False(t, KindObject.HasPossibleTypes())
}

// TestTypeRef_Equal verifies structural equality over name and
// modifier sequence.
func TestTypeRef_Equal(t *testing.T) {
	a := TypeRef{Name: "User", Modifiers: []Modifier{ModNonNull, ModList}}
	b := TypeRef{Name: "User", Modifiers: []Modifier{ModNonNull, ModList}}
	c := TypeRef{Name: "User", Modifiers: []Modifier{ModList, ModNonNull}}
	d := TypeRef{Name: "Post", Modifiers: []Modifier{ModNonNull, ModList}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.True(t, TypeRef{Name: "ID"}.Equal(TypeRef{Name: "ID"}))
}

// TestTypeRef_String verifies SDL-style rendering.
func TestTypeRef_String(t *testing.T) {
	tests := []struct {
		ref  TypeRef
		want string
	}{
		{TypeRef{Name: "User"}, "User"},
		{TypeRef{Name: "User", Modifiers: []Modifier{ModNonNull}}, "User!"},
		{TypeRef{Name: "User", Modifiers: []Modifier{ModList}}, "[User]"},
		// NON_NULL list of NON_NULL User, outermost first
		{TypeRef{Name: "User", Modifiers: []Modifier{ModNonNull, ModList, ModNonNull}}, "[User!]!"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ref.String())
		})
	}
}

// TestTypeDef_Implements verifies interface membership lookup.
func TestTypeDef_Implements(t *testing.T) {
	td := &TypeDef{Name: "User", Kind: KindObject, Interfaces: []string{"Node", "Actor"}}

	assert.True(t, td.Implements("Node"))
	assert.True(t, td.Implements("Actor"))
	assert.False(t, td.Implements("Entity"))
}
