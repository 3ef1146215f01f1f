// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the two value sources a parameter can sweep over: an
// explicit list of scalars, and an integer range that is never materialized.
//
// Why a closed interface instead of one struct with optional fields?
//
// A list and a range want different compiled output. A list becomes a bash
// array literal holding every element; a range becomes a seq invocation that
// the shell expands at dispatch time, so a million-element range costs one
// line of script. Keeping them as distinct types behind a sealed interface
// forces every consumer through an exhaustive type switch, so adding a third
// source later breaks loudly at the switch instead of silently mis-rendering.
package sweep

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Values is the closed set of value sources a parameter can sweep over.
// The only implementations are List and Range.
type Values interface {
	// Len reports how many values are enumerated.
	Len() int

	// At returns the value at index i, 0 <= i < Len().
	At(i int) cty.Value

	sealed()
}

// List is an explicit sequence of scalar values, kept in declaration order.
type List struct {
	Elems []cty.Value
}

// NewList wraps the given scalars as a List. Element types are checked at
// compile time, not here, so adapters can build lists before validating.
func NewList(elems ...cty.Value) List {
	return List{Elems: elems}
}

func (l List) Len() int { return len(l.Elems) }

func (l List) At(i int) cty.Value { return l.Elems[i] }

func (l List) sealed() {}

// Range enumerates integers from From (inclusive) to To (exclusive) in
// increments of Step. A negative step enumerates downwards.
type Range struct {
	From int64
	To   int64
	Step int64
}

// NewRange validates and returns a Range. A zero step is rejected; an
// interval that runs opposite its step sign is legal here and simply
// enumerates nothing, which Compile reports as an empty parameter.
func NewRange(from, to, step int64) (Range, error) {
	if step == 0 {
		return Range{}, fmt.Errorf("%w: range(%d, %d, 0)", ErrInvalidRange, from, to)
	}
	return Range{From: from, To: to, Step: step}, nil
}

// Len reports how many integers the range enumerates.
func (r Range) Len() int {
	switch {
	case r.Step > 0:
		if r.To <= r.From {
			return 0
		}
		return int((r.To - r.From + r.Step - 1) / r.Step)
	case r.Step < 0:
		if r.To >= r.From {
			return 0
		}
		return int((r.From - r.To - r.Step - 1) / -r.Step)
	default:
		return 0
	}
}

// At returns the i-th enumerated integer as a cty number.
func (r Range) At(i int) cty.Value {
	return cty.NumberIntVal(r.From + int64(i)*r.Step)
}

// Last returns the final integer the range enumerates. It is only
// meaningful when Len() > 0.
func (r Range) Last() int64 {
	return r.From + int64(r.Len()-1)*r.Step
}

func (r Range) sealed() {}
