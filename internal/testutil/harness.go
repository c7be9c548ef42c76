// Package testutil provides shared helpers for integration-style tests:
// a thread-safe log buffer and a harness that runs the full application
// against fixture files written to a temporary directory.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/argdocgo/internal/app"
)

// HarnessResult holds the outcomes of an end-to-end render run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RenderFixture provides a standardized harness for end-to-end tests: it
// writes the given fixture files into a temporary directory, runs the full
// application against them, and returns the rendered output, the log
// output, and any error (including recovered startup panics).
//
// Fixture paths are relative; files under "params/" are loaded through the
// manifest path and files under "specs/" through the spec path. The
// configure hook, when non-nil, may adjust the app config before startup.
func RenderFixture(t *testing.T, files map[string]string, configure func(*app.Config)) *HarnessResult {
	t.Helper()
	return RenderFixtureWithContext(context.Background(), t, files, configure)
}

// RenderFixtureWithContext is RenderFixture with a caller-provided context.
func RenderFixtureWithContext(ctx context.Context, t *testing.T, files map[string]string, configure func(*app.Config)) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	paramsDir := filepath.Join(tmpDir, "params")
	specsDir := filepath.Join(tmpDir, "specs")
	require.NoError(t, os.Mkdir(paramsDir, 0o755))
	require.NoError(t, os.Mkdir(specsDir, 0o755))

	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	appConfig := &app.Config{
		SpecPath:   specsDir,
		ParamsPath: paramsDir,
		Format:     "numpy",
		IgnoreArgs: []string{"self", "cls"},
		LogFormat:  "text",
		LogLevel:   "debug",
	}
	if configure != nil {
		configure(appConfig)
	}

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(outBuffer, logBuffer, appConfig)
	}()

	if panicErr != nil {
		return &HarnessResult{
			Output:    outBuffer.String(),
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx)

	return &HarnessResult{
		Output:    outBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
