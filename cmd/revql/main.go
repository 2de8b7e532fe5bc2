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
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/revql/cmd/revql/internal/introspection"
	"github.com/AleutianAI/revql/cmd/revql/internal/search"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	// Predicate flags
	flagContaining bool
	flagTypeOnly   bool
	flagFieldOnly  bool

	// Traversal flags
	flagShowRelay bool

	// Output flags
	flagJSONOutput bool
	flagNoColor    bool

	// Loader flags
	flagHeaders []string
	flagTimeout time.Duration

	// Run-mode flags
	flagWatch   bool
	flagVerbose bool
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// rootCmd is the single revql command.
var rootCmd = &cobra.Command{
	Use:   "revql FILE SEARCH",
	Short: "Reverse lookup over a GraphQL schema",
	Long: `Find every Query and Mutation operation whose response graph can reach
a type or field matching SEARCH, and report the paths.

FILE is an introspection JSON document: a file path, "-" for stdin, or
an http(s):// GraphQL endpoint (fetched via the standard introspection
query).

By default both type names and field names are evaluated with exact,
case-sensitive matching, and Relay pagination artifacts (connections,
edges, PageInfo) are pruned from the traversal.

Examples:
  revql schema.json User
  revql schema.json user --field --containing
  revql schema.json Order --type --show-relay
  revql https://api.example.com/graphql Invoice --header "Authorization: Bearer $TOKEN"
  revql schema.json User --json | jq '.matches[].steps'`,
	Args: cobra.ExactArgs(2),
	Run:  runSearch,
}

// =============================================================================
// COMMAND INITIALIZATION
// =============================================================================

func init() {
	rootCmd.Flags().BoolVarP(&flagContaining, "containing", "c", false,
		"Match names containing SEARCH as a substring instead of exactly")
	rootCmd.Flags().BoolVarP(&flagTypeOnly, "type", "t", false,
		"Search type names only")
	rootCmd.Flags().BoolVarP(&flagFieldOnly, "field", "f", false,
		"Search field names only")
	rootCmd.Flags().BoolVar(&flagShowRelay, "show-relay", false,
		"Do not prune Relay connection artifacts")
	rootCmd.Flags().BoolVar(&flagJSONOutput, "json", false,
		"Output as JSON for scripting")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false,
		"Disable colored output")
	rootCmd.Flags().StringArrayVar(&flagHeaders, "header", nil,
		"Extra HTTP header for endpoint fetches, as \"Key: Value\" (repeatable)")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", introspection.DefaultFetchTimeout,
		"Endpoint fetch timeout")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false,
		"Re-run the search whenever FILE changes (file inputs only)")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false,
		"Enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		applyConfigDefaults(cmd)
	}

	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(search.ExitBadArgs)
	}
}
