//go:build unix

package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunsChildAndPrintsSummary(t *testing.T) {
	var out bytes.Buffer
	app := newApp(&out)

	err := app.Run(context.Background(), []string{"cpu", "sh", "-c", ":"})
	require.NoError(t, err)

	assert.Equal(t, 0, app.ExitCode())
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.Contains(t, lines[1], "user")
	assert.Contains(t, lines[1], "sys")
	assert.Contains(t, lines[1], "mem")
	assert.True(t, strings.HasPrefix(lines[2], "└"))
}

func TestChildFlagsPassThroughVerbatim(t *testing.T) {
	var out bytes.Buffer
	app := newApp(&out)

	// "-c" belongs to sh, not to cpu.
	err := app.Run(context.Background(), []string{"cpu", "sh", "-c", "exit 3"})
	require.NoError(t, err)
	assert.Equal(t, 3, app.ExitCode())
}

func TestVerboseFlagAddsDetails(t *testing.T) {
	var out bytes.Buffer
	app := newApp(&out)

	err := app.Run(context.Background(), []string{"cpu", "-v", "sh", "-c", ":"})
	require.NoError(t, err)

	assert.Equal(t, 0, app.ExitCode())
	assert.Contains(t, out.String(), "Detailed metrics")
	assert.Contains(t, out.String(), "Time:")
	assert.Contains(t, out.String(), "Memory:")
	assert.Contains(t, out.String(), "Process:")
	assert.Equal(t, 1, strings.Count(out.String(), "└"))
}

func TestSpawnFailurePrintsNoReport(t *testing.T) {
	var out bytes.Buffer
	app := newApp(&out)

	err := app.Run(context.Background(), []string{"cpu", "cpu-test-no-such-command"})
	require.NoError(t, err)
	assert.Equal(t, 127, app.ExitCode())
	assert.NotContains(t, out.String(), "┌")
}
