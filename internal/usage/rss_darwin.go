//go:build darwin

package usage

// getrusage reports ru_maxrss in bytes on Darwin.
func maxRSSBytes(maxrss int64) int64 {
	return maxrss
}
