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
	"errors"
	"fmt"
)

// Sentinel errors for catalog construction and lookup.
var (
	// ErrMissingQueryRoot indicates the document lacks a Query type.
	// Nothing can be searched without one.
	ErrMissingQueryRoot = errors.New("document has no query root type")

	// ErrUnknownType indicates a type reference names a type absent
	// from the catalog: a malformed or truncated document.
	ErrUnknownType = errors.New("unknown type")
)

// UnknownTypeError provides details about a dangling type reference.
type UnknownTypeError struct {
	// TypeName is the name that failed to resolve. Empty when the
	// reference carried no name at all (truncated wrapper chain).
	TypeName string

	// Owner and Field identify the referencing field, when the
	// reference came from one.
	Owner string
	Field string
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	name := e.TypeName
	if name == "" {
		name = "(unnamed)"
	}
	if e.Owner != "" && e.Field != "" {
		return fmt.Sprintf("unknown type %q referenced by %s.%s", name, e.Owner, e.Field)
	}
	return fmt.Sprintf("unknown type %q", name)
}

// Unwrap returns the sentinel error.
func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}
