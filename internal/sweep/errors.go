// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package sweep

import "errors"

// Validation errors returned by Compile and the value constructors. Each is
// wrapped with the offending parameter name or value; match with errors.Is.
var (
	// ErrEmptySweep reports a sweep with no parameters at all.
	ErrEmptySweep = errors.New("sweep has no parameters")

	// ErrEmptyValues reports a parameter whose value source enumerates
	// nothing, including ranges that run opposite their step sign.
	ErrEmptyValues = errors.New("parameter has no values")

	// ErrInvalidIdentifier reports a parameter name that cannot be used as a
	// shell variable name.
	ErrInvalidIdentifier = errors.New("parameter name is not a valid shell identifier")

	// ErrDuplicateParam reports a parameter name that appears more than once
	// in the same sweep.
	ErrDuplicateParam = errors.New("duplicate parameter name")

	// ErrInvalidRange reports a range with a zero step.
	ErrInvalidRange = errors.New("range step must not be zero")

	// ErrUnsupportedValue reports a value no shell literal can express, such
	// as a null, a list, or an object.
	ErrUnsupportedValue = errors.New("unsupported value type")

	// ErrIndexOutOfRange reports an array index outside [0, JobCount).
	ErrIndexOutOfRange = errors.New("array index out of range")
)
