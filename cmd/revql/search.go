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
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/revql/cmd/revql/internal/introspection"
	"github.com/AleutianAI/revql/cmd/revql/internal/schema"
	"github.com/AleutianAI/revql/cmd/revql/internal/search"
	"github.com/AleutianAI/revql/pkg/logging"
	"github.com/AleutianAI/revql/pkg/ux"
)

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// runSearch executes the reverse lookup.
func runSearch(cmd *cobra.Command, args []string) {
	source := args[0]
	term := args[1]

	level := logging.LevelInfo
	if flagVerbose {
		level = logging.LevelDebug
	}
	logger := logging.New(logging.Config{Level: level, Service: "revql"})

	if flagTypeOnly && flagFieldOnly {
		fmt.Fprintln(os.Stderr, "Error: --type and --field are mutually exclusive")
		os.Exit(search.ExitBadArgs)
	}

	scope := search.ScopeEither
	switch {
	case flagTypeOnly:
		scope = search.ScopeType
	case flagFieldOnly:
		scope = search.ScopeField
	}

	opts := search.Options{
		Term:       term,
		Containing: flagContaining,
		Scope:      scope,
		ShowRelay:  flagShowRelay,
	}

	// JSON mode is for scripting; never style it.
	renderer := ux.NewRenderer(flagNoColor || flagJSONOutput)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagWatch {
		if source == introspection.StdinSource || introspection.IsEndpoint(source) {
			fmt.Fprintln(os.Stderr, "Error: --watch requires a file input")
			os.Exit(search.ExitBadArgs)
		}
		os.Exit(runWatch(ctx, logger, renderer, source, opts))
	}

	os.Exit(executeSearch(ctx, logger, renderer, source, opts))
}

// executeSearch runs one load-build-search cycle and returns an exit
// code.
func executeSearch(ctx context.Context, logger *logging.Logger, renderer *ux.Renderer, source string, opts search.Options) int {
	start := time.Now()

	doc, err := introspection.Load(ctx, source, introspection.LoadOptions{
		Headers: flagHeaders,
		Timeout: flagTimeout,
	})
	if err != nil {
		outputError(renderer, "Failed to load document", err)
		return search.ExitError
	}
	logger.Debug("document loaded", "source", source, "types", len(doc.Types))

	catalog, err := schema.Build(doc)
	if err != nil {
		outputError(renderer, "Failed to build catalog", err)
		return search.ExitError
	}
	logger.Debug("catalog built",
		"types", catalog.Len(),
		"mutation_present", catalog.MutationType() != nil,
	)

	engine, err := search.New(catalog, opts)
	if err != nil {
		outputError(renderer, "Invalid search options", err)
		return search.ExitError
	}

	result, err := engine.Search(ctx)
	if err != nil {
		outputError(renderer, "Search failed", err)
		return search.ExitError
	}
	logger.Debug("search finished",
		"matches", result.TotalCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if flagJSONOutput {
		return outputJSON(result)
	}
	outputText(renderer, result)
	return search.ExitSuccess
}
