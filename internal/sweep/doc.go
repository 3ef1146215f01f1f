// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package sweep compiles an ordered list of named parameters into the shell
// arithmetic a scheduler job array needs to decode its task index into one
// concrete value per parameter.
//
// # The index decomposition
//
// A sweep over parameters p1..pk with n1..nk values each has N = n1*...*nk
// combinations, one array task per combination. The task index is read as a
// number in a mixed-radix system where parameter i owns the digit of weight
// n1*...*n(i-1): repeatedly take the index modulo the parameter's value
// count to pick its value, then divide the index by that count and move on.
// The first parameter in the supplied order therefore varies fastest between
// consecutive indices, and the mapping from index to combination is a
// bijection over [0, N).
//
// Why compile to shell text instead of resolving values here?
//
// The scheduler hands each task nothing but its numeric index, long after
// this process has exited. The only place the decoding can run is inside the
// submitted script itself, so Compile emits the modulo/divide ladder as bash
// fragments and the renderer splices them into the submission template. The
// same arithmetic is mirrored in Go by Plan.At, which exists so the mapping
// can be verified exhaustively in tests and inspected from the CLI without
// submitting anything.
package sweep
