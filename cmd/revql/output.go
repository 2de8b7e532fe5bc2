// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/AleutianAI/revql/cmd/revql/internal/search"
	"github.com/AleutianAI/revql/pkg/ux"
)

// =============================================================================
// OUTPUT HELPERS
// =============================================================================

// outputError reports a fatal error on stderr, or as a JSON envelope on
// stdout when scripting mode is on.
func outputError(renderer *ux.Renderer, msg string, err error) {
	if flagJSONOutput {
		envelope := map[string]interface{}{
			"api_version": search.APIVersion,
			"success":     false,
			"error":       err.Error(),
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		encoder.Encode(envelope)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", renderer.Error("Error:"), msg, err)
}

// outputJSON writes the result envelope to stdout.
func outputJSON(result *search.Result) int {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
		return search.ExitError
	}
	return search.ExitSuccess
}

// outputText writes human-readable matches to stdout.
func outputText(renderer *ux.Renderer, result *search.Result) {
	mode := "exact"
	if result.Containing {
		mode = "containing"
	}
	fmt.Printf("Matches for %s (%s scope, %s):\n\n",
		renderer.Heading(fmt.Sprintf("%q", result.Term)), result.Scope, mode)

	if result.TotalCount == 0 {
		fmt.Println("  No matches found.")
		return
	}

	for _, m := range result.Matches {
		fmt.Printf("  %-9s %s  %s\n",
			m.Operation, renderPath(renderer, m), renderer.Muted(annotate(m)))
	}

	fmt.Printf("\nFound %d matches\n", result.TotalCount)
}

// renderPath joins the path's step names with arrows. Fan-out steps
// show the concrete type name; a field terminal's final step carries
// the terminal color.
func renderPath(renderer *ux.Renderer, m search.Match) string {
	parts := make([]string, 0, len(m.Steps))
	for i, s := range m.Steps {
		last := i == len(m.Steps)-1
		switch {
		case last && m.Terminal.Kind == search.TerminalField:
			parts = append(parts, renderer.Terminal(s.Name()))
		case s.Field == "":
			parts = append(parts, renderer.TypeName(s.Name()))
		default:
			parts = append(parts, renderer.FieldName(s.Name()))
		}
	}
	return strings.Join(parts, renderer.Arrow())
}

// annotate describes what the path reached. Styled by the caller as a
// whole, so no nested styles here.
func annotate(m search.Match) string {
	if m.Terminal.Kind == search.TerminalType {
		return fmt.Sprintf("(type %s)", m.Terminal.Name)
	}
	return fmt.Sprintf("(field %s.%s)", m.Terminal.On, m.Terminal.Name)
}
