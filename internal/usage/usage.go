// Package usage captures a resource-accounting snapshot of a finished child
// process. A Snapshot is built once, after the child has been waited on, and
// is never mutated afterwards.
package usage

import (
	"os"
	"syscall"
	"time"
)

// Snapshot holds the resource usage of a single terminated child process.
type Snapshot struct {
	WallTime  time.Duration
	CPUUser   time.Duration
	CPUSystem time.Duration

	// PeakResident is the maximum resident set size in bytes.
	PeakResident int64

	VoluntaryCtxSwitches   int64
	InvoluntaryCtxSwitches int64

	// IOIn and IOOut count block input/output operations.
	IOIn  int64
	IOOut int64

	// ExitCode is nil when the child was terminated by a signal before
	// producing an exit code; TermSignal then names that signal.
	ExitCode   *int
	TermSignal syscall.Signal
}

// Signaled reports whether the child was terminated by a signal.
func (s Snapshot) Signaled() bool {
	return s.ExitCode == nil
}

// TotalCtxSwitches returns the combined context-switch count.
func (s Snapshot) TotalCtxSwitches() int64 {
	return s.VoluntaryCtxSwitches + s.InvoluntaryCtxSwitches
}

// FromProcessState builds a Snapshot from the wait status of a finished
// child. It returns ok=false when ps carries no usable resource accounting,
// in which case nothing should be reported.
func FromProcessState(ps *os.ProcessState, wall time.Duration) (Snapshot, bool) {
	if ps == nil {
		return Snapshot{}, false
	}
	snap, ok := fromSys(ps)
	if !ok {
		return Snapshot{}, false
	}
	snap.WallTime = wall
	snap.ExitCode, snap.TermSignal = exitStatus(ps)
	return snap, true
}
