//go:build !unix

package usage

import (
	"os"
	"syscall"
)

// Resource accounting is not captured on this platform; callers skip the
// report and fall back to the plain exit status.
func fromSys(_ *os.ProcessState) (Snapshot, bool) {
	return Snapshot{}, false
}

func exitStatus(ps *os.ProcessState) (*int, syscall.Signal) {
	code := ps.ExitCode()
	return &code, 0
}
