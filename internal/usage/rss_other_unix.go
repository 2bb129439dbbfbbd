//go:build unix && !linux && !darwin

package usage

// The BSDs follow the historical kibibyte convention for ru_maxrss.
func maxRSSBytes(maxrss int64) int64 {
	return maxrss * 1024
}
