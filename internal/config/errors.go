package config

import "errors"

// ErrDuplicateSweep reports a sweep name defined by more than one block or
// file. Wrapped with both source files; match with errors.Is.
var ErrDuplicateSweep = errors.New("duplicate sweep name")
