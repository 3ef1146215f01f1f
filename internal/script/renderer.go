// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file implements the renderer: caller-field validation, decode-order
// resolution, field layering, template execution, and persistence.
//
// Why validate caller fields against the template instead of a fixed list?
//
// Field values are deliberately unconstrained, so the only misuse worth
// catching is a field the template cannot place: a typo like "mem" against a
// template that reads "memory" would otherwise vanish silently and the job
// would run with the default. The template's own referenced-field set is the
// single source of truth, so trimming or extending a dialect never leaves a
// stale validation list behind.
package script

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/sweepgridgo/internal/ctxlog"
	"github.com/vk/sweepgridgo/internal/sweep"
)

// computedFields are derived from the compiled plan on every render. A
// caller value for one of these wins the merge, but it is almost always a
// mistake, so the renderer logs a warning when it happens.
var computedFields = map[string]struct{}{
	"num_jobs":         {},
	"param_arr_init":   {},
	"param_val_assign": {},
	"param_list":       {},
}

// Renderer renders submission scripts for a single scheduler dialect.
type Renderer struct {
	dialect *Dialect
}

// NewRenderer returns a renderer for the named scheduler.
func NewRenderer(scheduler string) (*Renderer, error) {
	d, err := Lookup(scheduler)
	if err != nil {
		return nil, err
	}
	return &Renderer{dialect: d}, nil
}

// Dialect returns the dialect this renderer targets.
func (r *Renderer) Dialect() *Dialect {
	return r.dialect
}

// Render produces the submission script text for one sweep. Every caller
// field must be referenced by the dialect template. Params are decoded in
// declaration order unless order names a different permutation, and the
// first decoded parameter varies fastest across array indices.
func (r *Renderer) Render(ctx context.Context, fields map[string]any, params []sweep.Param, order []string) (string, error) {
	if err := r.validateFields(fields); err != nil {
		return "", err
	}

	plan, err := Plan(params, order)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.dialect.Execute(&buf, r.layerFields(ctx, fields, plan)); err != nil {
		return "", fmt.Errorf("executing %s template: %w", r.dialect.Name, err)
	}
	return buf.String(), nil
}

// Write renders the script and persists it to path, creating missing parent
// directories and truncating any existing file. A render failure writes
// nothing.
func (r *Renderer) Write(ctx context.Context, path string, fields map[string]any, params []sweep.Param, order []string) error {
	text, err := r.Render(ctx, fields, params, order)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating script directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing script %q: %w", path, err)
	}

	ctxlog.FromContext(ctx).Info("Submission script written.", "path", path, "bytes", len(text))
	return nil
}

// validateFields rejects caller fields the template never reads. Keys are
// checked in sorted order so the reported field is deterministic.
func (r *Renderer) validateFields(fields map[string]any) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !r.dialect.HasField(name) {
			return fmt.Errorf("%w: %q is not used by the %s template", ErrUnknownField, name, r.dialect.Name)
		}
	}
	return nil
}

// layerFields merges the three field layers: dialect defaults under the
// computed sweep fields under the caller's overrides.
func (r *Renderer) layerFields(ctx context.Context, caller map[string]any, plan *sweep.Plan) map[string]any {
	merged := make(map[string]any, len(r.dialect.Defaults)+len(computedFields)+len(caller))
	for k, v := range r.dialect.Defaults {
		merged[k] = v
	}

	merged["num_jobs"] = plan.UpperBound()
	merged["param_arr_init"] = plan.InitBlock()
	merged["param_val_assign"] = plan.AssignBlock()
	merged["param_list"] = paramList(plan.Names())

	logger := ctxlog.FromContext(ctx)
	for k, v := range caller {
		if _, computed := computedFields[k]; computed {
			logger.Warn("Caller field shadows a computed sweep field.", "field", k)
		}
		merged[k] = v
	}
	return merged
}

// paramList renders the reference comment's variable list, in decode order,
// e.g. "${c}, ${a}, ${b}".
func paramList(names []string) string {
	refs := make([]string, len(names))
	for i, name := range names {
		refs[i] = "${" + name + "}"
	}
	return strings.Join(refs, ", ")
}

// Plan resolves the decode order and compiles the sweep without rendering
// a script. Callers that only need the index arithmetic, like explain
// output, get exactly the plan a render of the same sweep would use.
func Plan(params []sweep.Param, order []string) (*sweep.Plan, error) {
	ordered, err := orderParams(params, order)
	if err != nil {
		return nil, err
	}
	return sweep.Compile(ordered)
}

// orderParams rearranges params into the explicit decode order. A nil or
// empty order keeps declaration order; anything else must be an exact
// permutation of the parameter names.
func orderParams(params []sweep.Param, order []string) ([]sweep.Param, error) {
	if len(order) == 0 {
		return params, nil
	}

	byName := make(map[string]sweep.Param, len(params))
	for _, p := range params {
		byName[p.Name] = p
	}

	ordered := make([]sweep.Param, 0, len(params))
	seen := make(map[string]struct{}, len(order))
	for _, name := range order {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q appears twice in order", ErrOrderMismatch, name)
		}
		seen[name] = struct{}{}

		p, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a sweep parameter", ErrOrderMismatch, name)
		}
		ordered = append(ordered, p)
	}
	for _, p := range params {
		if _, ok := seen[p.Name]; !ok {
			return nil, fmt.Errorf("%w: %q is missing from order", ErrOrderMismatch, p.Name)
		}
	}
	return ordered, nil
}
