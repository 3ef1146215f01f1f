package system

import (
	"strings"
	"testing"

	"github.com/vk/sweepgridgo/internal/testutil"
)

// Test for: dialect defaults fill unset fields
func TestScriptRendering_DefaultsFillUnsetFields(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			sweep "bare" {
				param "a" {
					values = [1]
				}
			}
		`,
	}

	// --- Act ---
	result := testutil.RunSystemTest(t, files)

	// --- Assert ---
	if result.Err != nil {
		t.Fatalf("run returned an unexpected error: %v", result.Err)
	}

	script := result.Script(t, "bare.sh")
	for _, directive := range []string{
		"#SBATCH --job-name=myjob",
		"#SBATCH --mem=64GB",
		"#SBATCH --nodes=1",
		"#SBATCH --cpus-per-task=16",
		"#SBATCH --time=0-0:0:0",
		"#SBATCH --reservation=nqit",
	} {
		if !strings.Contains(script, directive) {
			t.Errorf("expected default directive %q, got:\n%s", directive, script)
		}
	}
}

// Test for: caller override shadows a computed field
func TestScriptRendering_ComputedFieldShadowWarnsAndWins(t *testing.T) {
	// --- Arrange ---
	// num_jobs is derived from the parameter space; a caller supplying it
	// anyway gets their value in the script plus a warning in the logs.
	files := map[string]string{
		"main.hcl": `
			sweep "shadowed" {
				fields {
					num_jobs = 5
				}

				param "a" {
					values = [1, 2, 3]
				}
			}
		`,
	}

	// --- Act ---
	result := testutil.RunSystemTest(t, files)

	// --- Assert ---
	if result.Err != nil {
		t.Fatalf("run returned an unexpected error: %v", result.Err)
	}

	script := result.Script(t, "shadowed.sh")
	if !strings.Contains(script, "#SBATCH --array=0-5") {
		t.Errorf("expected the caller's num_jobs in the array directive, got:\n%s", script)
	}
	if !strings.Contains(result.LogOutput, "Caller field shadows a computed sweep field.") {
		t.Error("expected a shadow warning in the logs")
	}
}
