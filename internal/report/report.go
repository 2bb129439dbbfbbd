// Package report renders a resource-usage snapshot as an aligned table of
// box-drawing characters, optionally followed by a detailed metrics block.
// Rendering is pure: all state comes in through the arguments and the only
// effect is writing to the supplied writer.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Jarred-Sumner/cpu/internal/term"
	"github.com/Jarred-Sumner/cpu/internal/usage"
)

// SystemContext carries host facts read once at startup.
type SystemContext struct {
	// TotalMemory is the host's physical memory in bytes; 0 means unknown,
	// which suppresses all percentage-derived output.
	TotalMemory int64

	// ColorEnabled selects whether cells are wrapped in ANSI styling.
	// Width math always uses the unstyled text either way.
	ColorEnabled bool
}

// Options control the report shape.
type Options struct {
	Verbose bool
}

// cellPadding is the visible padding on each side of a cell's content.
const cellPadding = 2

type cell struct {
	text  string       // plain content, measured for width
	style *color.Color // nil leaves the cell unstyled
}

func (c cell) render() string {
	if c.style == nil {
		return c.text
	}
	return c.style.Sprint(c.text)
}

// Render writes the summary table for snap, and the detailed metrics block
// when opts.Verbose is set. The caller guarantees at most one invocation per
// process lifetime.
func Render(w io.Writer, snap usage.Snapshot, sys SystemContext, opts Options) {
	p := newPalette(sys.ColorEnabled)

	cells := []cell{
		{text: fmt.Sprintf("%.2fs", snap.WallTime.Seconds()), style: p.bold},
		{text: fmt.Sprintf("%.2fs user", snap.CPUUser.Seconds()), style: p.user},
		{text: fmt.Sprintf("%.2fs sys", snap.CPUSystem.Seconds()), style: p.system},
		{text: FormatMemory(snap.PeakResident) + " mem", style: p.memoryStyle(snap.PeakResident, sys.TotalMemory)},
	}

	widths := make([]int, len(cells))
	for i, c := range cells {
		widths[i] = term.Width(c.text) + 2*cellPadding
	}

	pad := strings.Repeat(" ", cellPadding)
	var row strings.Builder
	row.WriteString("│")
	for _, c := range cells {
		row.WriteString(pad)
		row.WriteString(c.render())
		row.WriteString(pad)
		row.WriteString("│")
	}

	fmt.Fprintln(w, border(widths, "┌", "┬", "┐"))
	fmt.Fprintln(w, row.String())
	if opts.Verbose {
		writeDetails(w, snap, sys, p)
	}
	fmt.Fprintln(w, border(widths, "└", "┴", "┘"))
}

func border(widths []int, left, junction, right string) string {
	segments := make([]string, len(widths))
	for i, w := range widths {
		segments[i] = strings.Repeat("─", w)
	}
	return left + strings.Join(segments, junction) + right
}

func writeDetails(w io.Writer, snap usage.Snapshot, sys SystemContext, p *palette) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.bold.Sprint("Detailed metrics"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Time:")
	fmt.Fprintf(w, "  Total:   %.3fs\n", snap.WallTime.Seconds())
	fmt.Fprintf(w, "  User:    %.3fs (%.1f%%)\n", snap.CPUUser.Seconds(), percentOfWall(snap.CPUUser, snap.WallTime))
	fmt.Fprintf(w, "  System:  %.3fs (%.1f%%)\n", snap.CPUSystem.Seconds(), percentOfWall(snap.CPUSystem, snap.WallTime))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Memory:")
	fmt.Fprintf(w, "  Peak usage:    %s\n", FormatMemory(snap.PeakResident))
	if sys.TotalMemory > 0 {
		pct := MemoryPercent(snap.PeakResident, sys.TotalMemory)
		pctText := fmt.Sprintf("%.2f%%", pct)
		switch {
		case pct > 80:
			pctText = p.danger.Sprint(pctText)
		case pct > 50:
			pctText = p.caution.Sprint(pctText)
		}
		fmt.Fprintf(w, "  System total:  %s (%s used)\n", HumanBytes(sys.TotalMemory), pctText)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Process:")
	fmt.Fprintf(w, "  Context switches:  %d total (%d voluntary, %d involuntary)\n",
		snap.TotalCtxSwitches(), snap.VoluntaryCtxSwitches, snap.InvoluntaryCtxSwitches)
	fmt.Fprintf(w, "  I/O operations:    %d in, %d out\n", snap.IOIn, snap.IOOut)
	fmt.Fprintf(w, "  Exit code:         %s\n", exitText(snap, p))
	fmt.Fprintln(w)
}

func exitText(snap usage.Snapshot, p *palette) string {
	if snap.Signaled() {
		return p.danger.Sprint("signal: " + snap.TermSignal.String())
	}
	if *snap.ExitCode == 0 {
		return p.good.Sprint("0")
	}
	return p.danger.Sprintf("%d", *snap.ExitCode)
}
