package testutil

import (
	"testing"

	"github.com/vk/sweepgridgo/internal/config"
)

// RunHCLSweepTest provides a simplified harness for testing a single sweep
// HCL string. It wraps the main system test harness and returns the loaded
// sweeps alongside the run result.
func RunHCLSweepTest(t *testing.T, sweepHCL string) (*HarnessResult, []*config.Sweep) {
	t.Helper()

	files := map[string]string{
		"main.hcl": sweepHCL,
	}

	result := RunSystemTest(t, files)

	if result.App != nil && result.App.Model() != nil {
		return result, result.App.Model().Sweeps
	}

	return result, nil
}
