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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultFetchTimeout bounds an endpoint fetch when the caller does not
// set one.
const DefaultFetchTimeout = 30 * time.Second

// StdinSource is the source string selecting stdin.
const StdinSource = "-"

// validate is the shared validator instance. validator.Validate caches
// struct metadata, so a single instance is reused across loads.
var validate = validator.New()

// LoadOptions configures document loading.
type LoadOptions struct {
	// Headers are extra HTTP headers for endpoint fetches, as "Key: Value"
	// strings. Ignored for file and stdin sources.
	Headers []string

	// Timeout bounds an endpoint fetch. Zero means DefaultFetchTimeout.
	Timeout time.Duration

	// Stdin overrides the stdin reader. Nil means os.Stdin. Used by tests.
	Stdin io.Reader

	// Client overrides the HTTP client. Nil means a client with the
	// configured timeout. Used by tests.
	Client *http.Client
}

// Load reads, decodes, and shape-validates an introspection document.
//
// # Description
//
// The source selects where the document comes from: "-" reads stdin, an
// http(s):// URL fetches via the standard introspection query, anything
// else is a file path.
//
// # Inputs
//
//   - ctx: Context for cancellation. Must not be nil.
//   - source: File path, "-", or endpoint URL. Must not be empty.
//   - opts: Load options. The zero value is valid.
//
// # Outputs
//
//   - *Schema: The validated __schema payload. Never nil on success.
//   - error: Non-nil on failure. Wraps ErrInvalidDocument for shape
//     problems and ErrFetchFailed for endpoint problems.
func Load(ctx context.Context, source string, opts LoadOptions) (*Schema, error) {
	if ctx == nil {
		return nil, fmt.Errorf("ctx must not be nil")
	}
	if source == "" {
		return nil, fmt.Errorf("source must not be empty")
	}

	var data []byte
	var err error

	switch {
	case source == StdinSource:
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err = io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	case IsEndpoint(source):
		data, err = fetch(ctx, source, opts)
		if err != nil {
			return nil, err
		}
	default:
		data, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("reading document: %w", err)
		}
	}

	return Parse(data)
}

// Parse decodes and shape-validates introspection JSON.
//
// # Description
//
// Accepts both the bare __schema payload and the data-wrapped envelope a
// GraphQL server returns. A wrapped document with null data is rejected:
// a document nothing can be searched in is fatal rather than an empty
// success.
//
// # Outputs
//
//   - *Schema: The validated payload. Never nil on success.
//   - error: Non-nil on failure, wrapping ErrInvalidDocument.
func Parse(data []byte) (*Schema, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: parsing JSON: %v", ErrInvalidDocument, err)
	}

	schema := env.Schema
	if schema == nil {
		if env.Data == nil {
			if len(env.Errors) > 0 {
				return nil, fmt.Errorf("%w: server returned errors: %s",
					ErrInvalidDocument, env.Errors[0].Message)
			}
			return nil, fmt.Errorf("%w: empty document (no __schema and no data)", ErrInvalidDocument)
		}
		schema = env.Data.Schema
	}
	if schema == nil {
		return nil, fmt.Errorf("%w: document has no __schema", ErrInvalidDocument)
	}

	if err := validate.Struct(schema); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return schema, nil
}

// IsEndpoint reports whether the source string is an http(s) URL.
func IsEndpoint(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// fetch POSTs the introspection query to a GraphQL endpoint.
func fetch(ctx context.Context, url string, opts LoadOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(map[string]string{"query": Query})
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for _, h := range opts.Headers {
		key, value, ok := strings.Cut(h, ":")
		if !ok {
			return nil, fmt.Errorf("invalid header %q: expected \"Key: Value\"", h)
		}
		req.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	return data, nil
}
