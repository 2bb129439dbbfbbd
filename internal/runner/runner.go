// Package runner spawns the timed child process with inherited stdio, waits
// for it across the normal, interrupted and teardown paths, and hands the
// captured usage snapshot to a render callback at most once.
package runner

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/Jarred-Sumner/cpu/internal/usage"
)

// Shell-convention exit codes for spawn failures.
const (
	exitNotFound    = 127
	exitNotRunnable = 126
)

// defaultKillWait bounds how long an interrupted run waits for the child's
// exit status and resource accounting before giving up on the report.
const defaultKillWait = 10 * time.Millisecond

// RenderFunc consumes the single snapshot a run produces.
type RenderFunc func(usage.Snapshot)

// Session owns the one tracked child and the print-once latch. It is built
// per invocation and passed by reference to every termination trigger.
type Session struct {
	command string
	args    []string
	render  RenderFunc
	log     *slog.Logger

	// KillWait bounds the wait for usage data after an interrupt.
	KillWait time.Duration

	child   *exec.Cmd
	started time.Time
	printed atomic.Bool
}

// New prepares a session for one command invocation.
func New(command string, args []string, render RenderFunc, log *slog.Logger) *Session {
	return &Session{
		command:  command,
		args:     args,
		render:   render,
		log:      log,
		KillWait: defaultKillWait,
	}
}

// Run spawns the child, waits for it to terminate and returns the exit code
// the tool itself should report. Arguments reach the child verbatim; stdio
// is inherited, so only resource accounting is observed. Cancelling ctx is
// equivalent to an interrupt signal.
func (s *Session) Run(ctx context.Context) int {
	s.child = exec.Command(s.command, s.args...)
	s.child.Stdin = os.Stdin
	s.child.Stdout = os.Stdout
	s.child.Stderr = os.Stderr

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	s.started = time.Now()
	if err := s.child.Start(); err != nil {
		s.log.Error("failed to start command", "command", s.command, "err", err)
		if errors.Is(err, exec.ErrNotFound) {
			return exitNotFound
		}
		return exitNotRunnable
	}

	done := make(chan error, 1)
	go func() { done <- s.child.Wait() }()

	defer s.teardown(done)

	select {
	case err := <-done:
		return s.finalize(err, true)
	case <-interrupt:
	case <-ctx.Done():
	}

	// Interrupted: forward termination to the child, then wait briefly for
	// its accounting to land. If it doesn't, the report is skipped rather
	// than hanging the tool on an unresponsive child.
	s.kill()
	select {
	case waitErr := <-done:
		return s.finalize(waitErr, true)
	case <-time.After(s.KillWait):
		return s.finalize(nil, false)
	}
}

// kill forwards termination to the child. The child may already have
// exited; that race is benign and the error is swallowed.
func (s *Session) kill() {
	if s.child == nil || s.child.Process == nil {
		return
	}
	_ = s.child.Process.Kill()
}

// teardown is the last-chance trigger: if no other path finalized, reap the
// child and produce the final snapshot.
func (s *Session) teardown(done <-chan error) {
	if s.printed.Load() {
		return
	}
	s.kill()
	select {
	case err := <-done:
		s.finalize(err, true)
	case <-time.After(s.KillWait):
		s.finalize(nil, false)
	}
}

// finalize captures the snapshot and renders it. All trigger paths funnel
// through here; the latch guarantees at most one render per process
// lifetime. waited must only be true once the Wait call has returned —
// ProcessState is not safe to read before that. Returns the tool's exit
// code.
func (s *Session) finalize(waitErr error, waited bool) int {
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			s.log.Error("failed to wait for command", "err", waitErr)
		}
	}

	var snap usage.Snapshot
	var ok bool
	if waited {
		snap, ok = usage.FromProcessState(s.child.ProcessState, time.Since(s.started))
	}

	if s.printed.CompareAndSwap(false, true) && ok {
		s.render(snap)
	}
	return s.exitCode(snap, ok, waited)
}

// exitCode mirrors the child's exit status: its code when it produced one,
// 128+signal when it was signal-terminated, and 128+SIGINT when the run was
// interrupted before any status became available.
func (s *Session) exitCode(snap usage.Snapshot, ok, waited bool) int {
	if ok {
		if snap.ExitCode != nil {
			return *snap.ExitCode
		}
		return 128 + int(snap.TermSignal)
	}
	if waited {
		if ps := s.child.ProcessState; ps != nil && ps.ExitCode() >= 0 {
			return ps.ExitCode()
		}
	}
	return 128 + int(syscall.SIGINT)
}
