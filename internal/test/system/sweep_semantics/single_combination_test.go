package system

import (
	"strings"
	"testing"

	"github.com/vk/sweepgridgo/internal/testutil"
)

// Test for: single combination sweep
func TestSweepSemantics_SingleCombination(t *testing.T) {
	// --- Arrange ---
	// One parameter with one value still dispatches a one-task array, and
	// task 0 must decode to that value.
	hcl := `
		sweep "solo" {
			param "only" {
				values = ["x"]
			}
		}
	`

	// --- Act ---
	result, _ := testutil.RunHCLSweepTest(t, hcl)

	// --- Assert ---
	if result.Err != nil {
		t.Fatalf("run returned an unexpected error: %v", result.Err)
	}

	script := result.Script(t, "solo.sh")
	testutil.AssertArrayBound(t, script, 0)

	if !strings.Contains(script, "only_values=( x )") {
		t.Errorf("expected the single-value array declaration, got:\n%s", script)
	}
	if !strings.Contains(script, "only=${only_values[$(( trial % ${#only_values[@]} ))]}") {
		t.Errorf("expected the extraction line for the only parameter, got:\n%s", script)
	}
	// The last parameter never advances the residual index.
	if strings.Contains(script, "trial=$(( trial / ${#only_values[@]} ))") {
		t.Errorf("a single-parameter sweep should emit no residual update, got:\n%s", script)
	}
}
