//go:build !linux && !darwin

package sysinfo

// TotalMemory is unsupported on this platform.
func TotalMemory() int64 {
	return 0
}
