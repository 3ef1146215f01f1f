// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package script renders scheduler submission scripts around a compiled
// parameter sweep.
//
// A render layers three sources of template fields, later layers winning:
// the dialect's default field values, the fields computed from the compiled
// plan (the inclusive array bound and the bash init/extraction fragments),
// and finally the caller's overrides. The chosen dialect supplies the
// template text and defaults; the sweep package supplies the fragments; this
// package owns field validation, layering, template execution, and
// persistence.
package script
