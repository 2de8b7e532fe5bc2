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

import (
	"errors"
	"fmt"
)

// Sentinel errors for document loading.
var (
	// ErrInvalidDocument indicates the JSON does not conform to the
	// introspection shape (malformed JSON, missing __schema, empty data,
	// failed shape validation).
	ErrInvalidDocument = errors.New("invalid introspection document")

	// ErrFetchFailed indicates the endpoint fetch did not produce a
	// usable introspection response.
	ErrFetchFailed = errors.New("introspection fetch failed")
)

// FetchError provides details about a failed endpoint fetch.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching introspection from %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching introspection from %s: %v", e.URL, e.Err)
}

// Unwrap returns the sentinel error.
func (e *FetchError) Unwrap() error {
	return ErrFetchFailed
}
