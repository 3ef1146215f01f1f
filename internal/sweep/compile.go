// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file turns an ordered parameter list into a Plan: the combination
// count plus the per-parameter bash fragments, with a Go-side decoder that
// mirrors the emitted arithmetic exactly.
package sweep

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Param pairs a parameter name with the values it sweeps over. The slice
// order given to Compile is the decode order: the first parameter varies
// fastest across consecutive array indices.
type Param struct {
	Name   string
	Values Values
}

// CompiledParam is one parameter's slot in a compiled plan.
type CompiledParam struct {
	Name   string
	Values Values

	// Init declares the <name>_values bash array.
	Init string

	// Assign extracts the parameter's value from the residual index.
	Assign string

	// Advance shifts the residual index past this parameter's digit. It is
	// empty for the last parameter, whose residual nothing reads.
	Advance string
}

// Plan is the immutable result of compiling a sweep. JobCount is the number
// of combinations; valid array indices are [0, JobCount).
type Plan struct {
	JobCount int64
	Params   []CompiledParam
}

// Compile validates the parameters and builds their mixed-radix decoding
// plan. Names must be distinct shell identifiers and every value source must
// enumerate at least one value, so a successful compile always has
// JobCount >= 1.
func Compile(params []Param) (*Plan, error) {
	if len(params) == 0 {
		return nil, ErrEmptySweep
	}

	seen := make(map[string]struct{}, len(params))
	compiled := make([]CompiledParam, 0, len(params))
	jobCount := int64(1)

	for _, p := range params {
		if !ValidIdent(p.Name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, p.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParam, p.Name)
		}
		seen[p.Name] = struct{}{}

		n := p.Values.Len()
		if n == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyValues, p.Name)
		}

		init, err := arrayLiteral(p.Name, p.Values)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}

		compiled = append(compiled, CompiledParam{
			Name:    p.Name,
			Values:  p.Values,
			Init:    init,
			Assign:  assignLine(p.Name),
			Advance: advanceLine(p.Name),
		})
		jobCount *= int64(n)
	}

	// The final division would only produce a residual nothing reads.
	compiled[len(compiled)-1].Advance = ""

	return &Plan{JobCount: jobCount, Params: compiled}, nil
}

// UpperBound returns the highest valid array index, JobCount-1. A sweep with
// a single combination has bound 0: exactly one task runs.
func (p *Plan) UpperBound() int64 {
	return p.JobCount - 1
}

// Names returns the parameter names in decode order.
func (p *Plan) Names() []string {
	names := make([]string, len(p.Params))
	for i, cp := range p.Params {
		names[i] = cp.Name
	}
	return names
}

// InitBlock returns the newline-joined array declarations, one line per
// parameter, in decode order.
func (p *Plan) InitBlock() string {
	lines := make([]string, len(p.Params))
	for i, cp := range p.Params {
		lines[i] = cp.Init
	}
	return strings.Join(lines, "\n")
}

// AssignBlock returns the newline-joined extraction ladder: each parameter's
// assignment followed by its residual update, in decode order.
func (p *Plan) AssignBlock() string {
	var lines []string
	for _, cp := range p.Params {
		lines = append(lines, cp.Assign)
		if cp.Advance != "" {
			lines = append(lines, cp.Advance)
		}
	}
	return strings.Join(lines, "\n")
}

// At decodes a flat array index into one value per parameter, in decode
// order. It performs the same modulo/divide ladder the emitted bash runs, so
// tests and the CLI can inspect any task's combination without a scheduler.
func (p *Plan) At(index int64) ([]cty.Value, error) {
	if index < 0 || index >= p.JobCount {
		return nil, fmt.Errorf("%w: %d is not in [0, %d)", ErrIndexOutOfRange, index, p.JobCount)
	}
	values := make([]cty.Value, len(p.Params))
	rem := index
	for i, cp := range p.Params {
		n := int64(cp.Values.Len())
		values[i] = cp.Values.At(int(rem % n))
		rem /= n
	}
	return values, nil
}
