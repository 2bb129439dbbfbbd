//go:build unix

package runner_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/require"

	"github.com/Jarred-Sumner/cpu/internal/runner"
	"github.com/Jarred-Sumner/cpu/internal/usage"
)

type capture struct {
	renders atomic.Int32
	snap    usage.Snapshot
}

func (c *capture) render(snap usage.Snapshot) {
	c.snap = snap
	c.renders.Add(1)
}

func newSession(command string, args ...string) (*runner.Session, *capture) {
	c := &capture{}
	logger := slog.New(tint.NewHandler(io.Discard, nil))
	return runner.New(command, args, c.render, logger), c
}

func TestExitCodePropagation(t *testing.T) {
	s, c := newSession("sh", "-c", "exit 7")
	code := s.Run(context.Background())

	require.Equal(t, 7, code)
	require.Equal(t, int32(1), c.renders.Load())
	require.NotNil(t, c.snap.ExitCode)
	require.Equal(t, 7, *c.snap.ExitCode)
}

func TestZeroExitCode(t *testing.T) {
	s, c := newSession("sh", "-c", ":")
	code := s.Run(context.Background())

	require.Equal(t, 0, code)
	require.Equal(t, int32(1), c.renders.Load())
	require.False(t, c.snap.Signaled())
}

func TestWallClockMeasurement(t *testing.T) {
	s, c := newSession("sh", "-c", "sleep 1")
	code := s.Run(context.Background())

	require.Equal(t, 0, code)
	require.Equal(t, int32(1), c.renders.Load())
	require.GreaterOrEqual(t, c.snap.WallTime, time.Second)
	require.Less(t, c.snap.WallTime, 3*time.Second)
}

func TestSpawnFailureSkipsReport(t *testing.T) {
	s, c := newSession("cpu-test-no-such-command")
	code := s.Run(context.Background())

	require.Equal(t, 127, code)
	require.Equal(t, int32(0), c.renders.Load())
}

func TestNotRunnableExitsNonZero(t *testing.T) {
	s, c := newSession("/")
	code := s.Run(context.Background())

	require.Equal(t, 126, code)
	require.Equal(t, int32(0), c.renders.Load())
}

func TestContextCancelKillsChild(t *testing.T) {
	s, c := newSession("sh", "-c", "sleep 30")
	s.KillWait = 2 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	code := s.Run(ctx)

	require.Less(t, time.Since(start), 10*time.Second)
	require.Equal(t, 128+int(syscall.SIGKILL), code)
	require.Equal(t, int32(1), c.renders.Load())
	require.True(t, c.snap.Signaled())
	require.Equal(t, syscall.SIGKILL, c.snap.TermSignal)
}

func TestInterruptSignalKillsChild(t *testing.T) {
	s, c := newSession("sh", "-c", "sleep 30")
	s.KillWait = 2 * time.Second

	codeCh := make(chan int, 1)
	go func() {
		codeCh <- s.Run(context.Background())
	}()

	// Give Run time to install its handler and spawn the child, then
	// deliver a real interrupt to ourselves.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case code := <-codeCh:
		require.Equal(t, 128+int(syscall.SIGKILL), code)
		require.Equal(t, int32(1), c.renders.Load())
	case <-time.After(10 * time.Second):
		t.Fatal("run did not finish after interrupt")
	}
}
