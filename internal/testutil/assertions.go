package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertScriptWritten checks the log output within a HarnessResult to confirm
// that the named script was persisted. It abstracts the log attribute format,
// making tests more resilient to internal refactoring.
func AssertScriptWritten(t *testing.T, result *HarnessResult, name string) {
	t.Helper()

	require.True(t,
		strings.Contains(result.LogOutput, "Submission script written.") &&
			strings.Contains(result.LogOutput, name),
		"expected log output for written script %q was not found in logs", name,
	)
}

// AssertArrayBound checks that a rendered script declares the job array with
// the given inclusive upper bound.
func AssertArrayBound(t *testing.T, script string, upper int64) {
	t.Helper()

	require.Contains(t, script, fmt.Sprintf("--array=0-%d", upper),
		"expected the script's array directive to span 0-%d", upper)
}
