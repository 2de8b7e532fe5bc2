// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/revql/cmd/revql/internal/schema"
)

// Engine walks the schema graph from the root operation fields.
//
// # Thread Safety
//
// Safe for concurrent use; per-walk state is local to each Search call.
type Engine struct {
	catalog *schema.Catalog
	pred    Predicate
	opts    Options
}

// New creates an Engine over a built catalog.
//
// # Inputs
//
//   - catalog: The immutable catalog. Must not be nil.
//   - opts: Run options. Term must not be empty.
//
// # Outputs
//
//   - *Engine: The engine. Never nil on success.
//   - error: Non-nil on invalid arguments.
func New(catalog *schema.Catalog, opts Options) (*Engine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog must not be nil")
	}
	if opts.Term == "" {
		return nil, fmt.Errorf("search term must not be empty")
	}
	if opts.Scope == "" {
		opts.Scope = ScopeEither
	}
	switch opts.Scope {
	case ScopeEither, ScopeType, ScopeField:
	default:
		return nil, fmt.Errorf("invalid scope %q", opts.Scope)
	}
	return &Engine{
		catalog: catalog,
		pred:    NewPredicate(opts.Term, opts.Containing, opts.Scope),
		opts:    opts,
	}, nil
}

// rootJob is one independent root-field walk.
type rootJob struct {
	operation string
	root      *schema.TypeDef
	field     schema.FieldDef
}

// Search walks every root field and returns the deduplicated matches.
//
// # Description
//
// Root-field walks run concurrently; results are stitched back into
// query-then-mutation, declaration order before aggregation, so output
// order is deterministic for a given document.
//
// # Inputs
//
//   - ctx: Context for cancellation. Must not be nil.
//
// # Outputs
//
//   - *Result: The aggregated matches. Never nil on success.
//   - error: Non-nil on cancellation or a dangling type reference
//     (wraps schema.ErrUnknownType).
func (e *Engine) Search(ctx context.Context) (*Result, error) {
	if ctx == nil {
		return nil, fmt.Errorf("ctx must not be nil")
	}

	var jobs []rootJob
	query := e.catalog.QueryType()
	for _, f := range query.Fields {
		jobs = append(jobs, rootJob{operation: OpQuery, root: query, field: f})
	}
	if mutation := e.catalog.MutationType(); mutation != nil {
		for _, f := range mutation.Fields {
			jobs = append(jobs, rootJob{operation: OpMutation, root: mutation, field: f})
		}
	}

	results := make([][]Match, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			w := &walker{
				catalog:   e.catalog,
				pred:      e.pred,
				showRelay: e.opts.ShowRelay,
				operation: job.operation,
				rootField: job.field.Name,
			}
			if err := w.run(gctx, job.root, job.field); err != nil {
				return err
			}
			results[i] = w.matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	agg := newAggregator()
	for _, matches := range results {
		for _, m := range matches {
			agg.add(m)
		}
	}
	matches := agg.matches()

	return &Result{
		APIVersion: APIVersion,
		Term:       e.opts.Term,
		Scope:      e.opts.Scope,
		Containing: e.opts.Containing,
		ShowRelay:  e.opts.ShowRelay,
		Matches:    matches,
		TotalCount: len(matches),
	}, nil
}

func (e *Engine) workers() int {
	if e.opts.Workers > 0 {
		return e.opts.Workers
	}
	return runtime.NumCPU()
}

// walker holds the state of one root-field walk.
type walker struct {
	catalog   *schema.Catalog
	pred      Predicate
	showRelay bool
	operation string
	rootField string
	matches   []Match
}

// run starts the walk at a root operation field.
//
// The root field itself is an operation name, not a match candidate;
// evaluation starts at its result type.
func (w *walker) run(ctx context.Context, root *schema.TypeDef, f schema.FieldDef) error {
	target, err := w.catalog.Underlying(f.Type)
	if err != nil {
		return err
	}
	if w.pruned(target) {
		return nil
	}
	steps := []PathStep{{Type: root.Name, Field: f.Name}}
	return w.walk(ctx, target, steps, map[string]bool{})
}

// walk visits one type on the active path.
//
// visited holds the type names already on the path. Re-entering one of
// them still scans its fields for name matches but neither re-emits the
// type match nor descends, which bounds recursion depth by the type
// count.
func (w *walker) walk(ctx context.Context, t *schema.TypeDef, steps []PathStep, visited map[string]bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	first := !visited[t.Name]

	if first && w.pred.MatchesType(t.Name) {
		w.emit(steps, Terminal{Kind: TerminalType, Name: t.Name})
	}

	for _, g := range t.Fields {
		if !w.showRelay && schema.IsRelayField(g, t) {
			continue
		}
		if w.pred.MatchesField(g.Name) {
			w.emit(extend(steps, PathStep{Type: t.Name, Field: g.Name}),
				Terminal{Kind: TerminalField, Name: g.Name, On: t.Name})
		}
		if !first {
			continue
		}
		target, err := w.catalog.Underlying(g.Type)
		if err != nil {
			return err
		}
		if w.pruned(target) {
			continue
		}
		err = w.walk(ctx, target,
			extend(steps, PathStep{Type: t.Name, Field: g.Name}),
			extendVisited(visited, t.Name))
		if err != nil {
			return err
		}
	}

	if first && t.Kind.HasPossibleTypes() {
		for _, name := range t.PossibleTypes {
			possible, err := w.catalog.Resolve(name)
			if err != nil {
				return err
			}
			if w.pruned(possible) {
				continue
			}
			// The concrete type name is an explicit path step with no
			// field: the traversal chose a branch, not a selection.
			err = w.walk(ctx, possible,
				extend(steps, PathStep{Type: possible.Name}),
				extendVisited(visited, t.Name))
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *walker) pruned(t *schema.TypeDef) bool {
	return !w.showRelay && schema.IsRelayType(t)
}

func (w *walker) emit(steps []PathStep, terminal Terminal) {
	w.matches = append(w.matches, Match{
		Operation: w.operation,
		RootField: w.rootField,
		Steps:     slices.Clone(steps),
		Terminal:  terminal,
	})
}

// extend returns a fresh path with one more step. Copying on every
// extension keeps sibling branches from aliasing a shared backing
// array.
func extend(steps []PathStep, step PathStep) []PathStep {
	out := make([]PathStep, len(steps), len(steps)+1)
	copy(out, steps)
	return append(out, step)
}

// extendVisited returns a fresh visited set including name. Visitation
// state is copy-on-recurse, never shared across branches.
func extendVisited(visited map[string]bool, name string) map[string]bool {
	out := make(map[string]bool, len(visited)+1)
	for k := range visited {
		out[k] = true
	}
	out[name] = true
	return out
}
