//go:build darwin

package sysinfo

import "golang.org/x/sys/unix"

// TotalMemory returns the total physical memory of the host in bytes,
// or 0 when the sysctl query fails.
func TotalMemory() int64 {
	mem, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0
	}
	return int64(mem)
}
