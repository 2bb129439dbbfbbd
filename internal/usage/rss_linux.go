//go:build linux

package usage

// getrusage reports ru_maxrss in kibibytes on Linux.
func maxRSSBytes(maxrss int64) int64 {
	return maxrss * 1024
}
