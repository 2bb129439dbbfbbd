package report

import (
	"fmt"
	"time"
)

const (
	kib = 1 << 10
	mib = 1 << 20
	gib = 1 << 30
)

// FormatMemory renders a resident-memory figure with an auto-selected unit:
// KB below 1 MiB, MB up to 1 GiB, GB with one decimal beyond that.
func FormatMemory(bytes int64) string {
	switch {
	case bytes >= gib:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gib)
	case bytes >= mib:
		return fmt.Sprintf("%.0f MB", float64(bytes)/mib)
	default:
		return fmt.Sprintf("%.0f KB", float64(bytes)/kib)
	}
}

// HumanBytes renders an arbitrary byte count with at most two decimals,
// picking the largest unit up to GB.
func HumanBytes(size int64) string {
	s := float64(size)
	switch {
	case s >= gib:
		return fmt.Sprintf("%.2f GB", s/gib)
	case s >= mib:
		return fmt.Sprintf("%.2f MB", s/mib)
	case s >= kib:
		return fmt.Sprintf("%.2f KB", s/kib)
	}
	return fmt.Sprintf("%d B", size)
}

// MemoryPercent returns peak as a percentage of total. Callers guard
// against a zero total.
func MemoryPercent(peak, total int64) float64 {
	return 100 * float64(peak) / float64(total)
}

func percentOfWall(cpu, wall time.Duration) float64 {
	if wall <= 0 {
		return 0
	}
	return 100 * cpu.Seconds() / wall.Seconds()
}
