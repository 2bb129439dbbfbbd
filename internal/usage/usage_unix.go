//go:build unix

package usage

import (
	"os"
	"syscall"
	"time"
)

func fromSys(ps *os.ProcessState) (Snapshot, bool) {
	ru, ok := ps.SysUsage().(*syscall.Rusage)
	if !ok || ru == nil {
		return Snapshot{}, false
	}
	return Snapshot{
		CPUUser:   time.Duration(ru.Utime.Nano()),
		CPUSystem: time.Duration(ru.Stime.Nano()),

		// The integer casts aren't redundant: 32-bit arches use int32 here.
		PeakResident:           maxRSSBytes(int64(ru.Maxrss)),
		VoluntaryCtxSwitches:   int64(ru.Nvcsw),
		InvoluntaryCtxSwitches: int64(ru.Nivcsw),
		IOIn:                   int64(ru.Inblock),
		IOOut:                  int64(ru.Oublock),
	}, true
}

func exitStatus(ps *os.ProcessState) (*int, syscall.Signal) {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return nil, ws.Signal()
	}
	code := ps.ExitCode()
	return &code, 0
}
