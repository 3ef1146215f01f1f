package system

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vk/sweepgridgo/internal/app"
	"github.com/vk/sweepgridgo/internal/testutil"
)

// Test for: first parameter varies fastest
func TestSweepSemantics_FirstParamVariesFastest(t *testing.T) {
	// --- Arrange ---
	// With a declared first, consecutive indices step through a's values
	// before b moves at all.
	files := map[string]string{
		"main.hcl": `
			sweep "pair" {
				param "a" {
					values = [1, 2, 3]
				}
				param "b" {
					values = [10, 20]
				}
			}
		`,
	}

	testCases := []struct {
		index int64
		want  string
	}{
		{0, "sweep \"pair\": index 0 of 0-5\n  a=1\n  b=10\n"},
		{1, "sweep \"pair\": index 1 of 0-5\n  a=2\n  b=10\n"},
		{3, "sweep \"pair\": index 3 of 0-5\n  a=1\n  b=20\n"},
		{5, "sweep \"pair\": index 5 of 0-5\n  a=3\n  b=20\n"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("index_%d", tc.index), func(t *testing.T) {
			// --- Act ---
			result := testutil.RunSystemTestWithConfig(t, files, func(cfg *app.Config) {
				cfg.Explain = true
				cfg.ExplainIndex = tc.index
				cfg.LogLevel = "error"
			})

			// --- Assert ---
			if result.Err != nil {
				t.Fatalf("explain run returned an unexpected error: %v", result.Err)
			}
			if diff := cmp.Diff(tc.want, result.LogOutput); diff != "" {
				t.Errorf("explain output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
