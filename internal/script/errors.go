// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package script

import "errors"

// Errors returned by the renderer. Each is wrapped with the offending name;
// match with errors.Is.
var (
	// ErrUnknownScheduler reports a scheduler name with no registered
	// dialect.
	ErrUnknownScheduler = errors.New("unknown scheduler dialect")

	// ErrUnknownField reports a caller field the dialect template never
	// references.
	ErrUnknownField = errors.New("unknown template field")

	// ErrOrderMismatch reports an explicit order that is not a permutation
	// of the sweep's parameter names.
	ErrOrderMismatch = errors.New("order does not match sweep parameters")
)
