//go:build linux

package sysinfo

import "golang.org/x/sys/unix"

// TotalMemory returns the total physical memory of the host in bytes,
// or 0 when the sysinfo syscall fails.
func TotalMemory() int64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}
	// Totalram is in units of info.Unit bytes (uint32 on 32-bit arches).
	return int64(info.Totalram) * int64(info.Unit)
}
