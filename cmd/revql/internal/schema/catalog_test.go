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
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/revql/cmd/revql/internal/introspection"
)

// testDoc builds a small consistent document: Query.user: User!,
// User.name: String, User.posts: [Post].
func testDoc() *introspection.Schema {
	str := introspection.TypeRef{Kind: introspection.KindScalar, Name: "String"}
	user := introspection.TypeRef{Kind: introspection.KindObject, Name: "User"}
	post := introspection.TypeRef{Kind: introspection.KindObject, Name: "Post"}

	return &introspection.Schema{
		QueryType: &introspection.RootRef{Name: "Query"},
		Types: []introspection.Type{
			{
				Kind: introspection.KindObject,
				Name: "Query",
				Fields: []introspection.Field{
					{Name: "user", Type: introspection.TypeRef{Kind: introspection.KindNonNull, OfType: &user}},
				},
			},
			{
				Kind: introspection.KindObject,
				Name: "User",
				Fields: []introspection.Field{
					{Name: "name", Type: str},
					{Name: "posts", Type: introspection.TypeRef{Kind: introspection.KindList, OfType: &post}},
				},
			},
			{
				Kind: introspection.KindObject,
				Name: "Post",
				Fields: []introspection.Field{
					{Name: "title", Type: str},
				},
			},
			{Kind: introspection.KindScalar, Name: "String"},
		},
	}
}

// TestBuild_ResolvesRoots verifies the query root resolves and an
// absent mutation root is simply nil.
func TestBuild_ResolvesRoots(t *testing.T) {
	catalog, err := Build(testDoc())
	require.NoError(t, err)

	require.NotNil(t, catalog.QueryType())
	assert.Equal(t, "Query", catalog.QueryType().Name)
	assert.Nil(t, catalog.MutationType())
	assert.Equal(t, 4, catalog.Len())
}

// TestBuild_ConvertsWrappers verifies wrapper chains flatten into
// outermost-first modifier sequences around the innermost name.
func TestBuild_ConvertsWrappers(t *testing.T) {
	catalog, err := Build(testDoc())
	require.NoError(t, err)

	user, err := catalog.Resolve("User")
	require.NoError(t, err)

	require.Len(t, user.Fields, 2)
	assert.Equal(t, TypeRef{Name: "String"}, user.Fields[0].Type)
	assert.Equal(t, TypeRef{Name: "Post", Modifiers: []Modifier{ModList}}, user.Fields[1].Type)

	query := catalog.QueryType()
	assert.Equal(t, TypeRef{Name: "User", Modifiers: []Modifier{ModNonNull}}, query.Fields[0].Type)
}

// TestBuild_MissingQueryRoot verifies a document without a query type
// fails fast.
func TestBuild_MissingQueryRoot(t *testing.T) {
	d := testDoc()
	d.QueryType = nil

	_, err := Build(d)
	assert.ErrorIs(t, err, ErrMissingQueryRoot)
}

// TestBuild_QueryRootNotInTypeList verifies a named but absent query
// root is also MissingQueryRoot.
func TestBuild_QueryRootNotInTypeList(t *testing.T) {
	d := testDoc()
	d.QueryType = &introspection.RootRef{Name: "Ghost"}

	_, err := Build(d)
	assert.ErrorIs(t, err, ErrMissingQueryRoot)
}

// TestBuild_DanglingFieldReference verifies a field naming an absent
// type aborts the build with the referencing location.
func TestBuild_DanglingFieldReference(t *testing.T) {
	d := testDoc()
	d.Types[1].Fields = append(d.Types[1].Fields, introspection.Field{
		Name: "avatar",
		Type: introspection.TypeRef{Kind: introspection.KindObject, Name: "Image"},
	})

	_, err := Build(d)
	require.ErrorIs(t, err, ErrUnknownType)

	var ute *UnknownTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "Image", ute.TypeName)
	assert.Equal(t, "User", ute.Owner)
	assert.Equal(t, "avatar", ute.Field)
}

// TestBuild_DanglingPossibleType verifies union members are verified at
// build time too.
func TestBuild_DanglingPossibleType(t *testing.T) {
	d := testDoc()
	d.Types = append(d.Types, introspection.Type{
		Kind: introspection.KindUnion,
		Name: "Feed",
		PossibleTypes: []introspection.TypeRef{
			{Kind: introspection.KindObject, Name: "Missing"},
		},
	})

	_, err := Build(d)
	assert.ErrorIs(t, err, ErrUnknownType)
}

// TestBuild_MutationRootNotInTypeList verifies a named mutation root
// that does not resolve is a malformed document.
func TestBuild_MutationRootNotInTypeList(t *testing.T) {
	d := testDoc()
	d.MutationType = &introspection.RootRef{Name: "Ghost"}

	_, err := Build(d)
	assert.ErrorIs(t, err, ErrUnknownType)
}

// TestBuild_TruncatedWrapperChain verifies a wrapper bottoming out
// without a name is unresolvable.
func TestBuild_TruncatedWrapperChain(t *testing.T) {
	d := testDoc()
	d.Types[0].Fields[0].Type = introspection.TypeRef{Kind: introspection.KindNonNull}

	_, err := Build(d)
	assert.ErrorIs(t, err, ErrUnknownType)
}

// TestCatalog_Resolve verifies lookup of present and absent names.
func TestCatalog_Resolve(t *testing.T) {
	catalog, err := Build(testDoc())
	require.NoError(t, err)

	post, err := catalog.Resolve("Post")
	require.NoError(t, err)
	assert.Equal(t, KindObject, post.Kind)

	_, err = catalog.Resolve("Nope")
	assert.ErrorIs(t, err, ErrUnknownType)
}

// TestCatalog_Underlying verifies modifier stripping.
func TestCatalog_Underlying(t *testing.T) {
	catalog, err := Build(testDoc())
	require.NoError(t, err)

	ref := TypeRef{Name: "Post", Modifiers: []Modifier{ModNonNull, ModList}}
	post, err := catalog.Underlying(ref)
	require.NoError(t, err)
	assert.Equal(t, "Post", post.Name)
}

// TestCatalog_DeclarationOrder verifies Types preserves document
// order, which the engine depends on for determinism.
func TestCatalog_DeclarationOrder(t *testing.T) {
	catalog, err := Build(testDoc())
	require.NoError(t, err)

	names := make([]string, 0, catalog.Len())
	for _, td := range catalog.Types() {
		names = append(names, td.Name)
	}
	assert.Equal(t, []string{"Query", "User", "Post", "String"}, names)
}
