package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/sweepgridgo/internal/app"
	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/internal/hcl_adapter"
	"github.com/vk/sweepgridgo/internal/yaml_adapter"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a system test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	OutputDir string
}

// Script reads the named rendered script from the run's output directory.
func (r *HarnessResult) Script(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(r.OutputDir, name))
	require.NoError(t, err, "expected rendered script %q to exist", name)
	return string(content)
}

// HasScript reports whether the named script exists under the run's output
// directory.
func (r *HarnessResult) HasScript(name string) bool {
	_, err := os.Stat(filepath.Join(r.OutputDir, name))
	return err == nil
}

// RunSystemTest provides a standardized harness for running system tests
// with the default render-to-files configuration.
func RunSystemTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunSystemTestWithConfig(t, files, nil)
}

// RunSystemTestWithConfig provides a standardized harness for running system
// tests. The configure callback can adjust the app configuration before the
// app is constructed, e.g. to enable print or explain mode.
func RunSystemTestWithConfig(t *testing.T, files map[string]string, configure func(cfg *app.Config)) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir, err := os.MkdirTemp("", ".tmp-system-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	sweepsDir := filepath.Join(tmpDir, "sweeps")
	outDir := filepath.Join(tmpDir, "out")
	require.NoError(t, os.Mkdir(sweepsDir, 0755))
	require.NoError(t, os.Mkdir(outDir, 0755))

	// 2. Write all sweep definition files under the sweeps directory.
	//    The test provides relative paths (e.g. "nested/more.yaml"), which
	//    naturally creates the subdirectory structure.
	for name, content := range files {
		filePath := filepath.Join(sweepsDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	// 3. Configure the app to use the dedicated, non-overlapping subdirectories.
	appConfig := &app.Config{
		SweepPath:   sweepsDir,
		OutputDir:   outDir,
		LogLevel:    "debug",
		LogFormat:   "text",
		WorkerCount: 4,
	}
	if configure != nil {
		configure(appConfig)
	}

	logBuffer := &SafeBuffer{}
	loaders := []config.Loader{hcl_adapter.NewLoader(), yaml_adapter.NewLoader()}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if os.Getenv("SGGO_TEST_LOGS") == "true" {
					t.Logf("--- HARNESS RECOVERED PANIC ---\n%q", fmt.Sprintf("%v", r))
				}
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, loaders...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
			App:       nil,
			OutputDir: outDir,
		}
	}

	runErr := testApp.Run(context.Background())

	if os.Getenv("SGGO_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		OutputDir: outDir,
	}
}
