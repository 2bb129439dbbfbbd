package report

import "github.com/fatih/color"

// palette holds the style set for one render. Each color is forced on or
// off explicitly so output does not depend on whether the test runner or
// the user happens to have a TTY.
type palette struct {
	bold    *color.Color
	user    *color.Color
	system  *color.Color
	good    *color.Color
	caution *color.Color
	danger  *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		bold:    color.New(color.Bold),
		user:    color.New(color.FgCyan),
		system:  color.New(color.FgMagenta),
		good:    color.New(color.FgGreen),
		caution: color.New(color.FgYellow),
		danger:  color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.bold, p.user, p.system, p.good, p.caution, p.danger} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// memoryStyle picks the tint for the memory cell. Later rules win: small
// footprints are good, but crossing half of system memory overrides to
// caution and 80% to danger. A nil return leaves the cell unstyled.
func (p *palette) memoryStyle(peak, total int64) *color.Color {
	var c *color.Color
	if peak < 100*mib {
		c = p.good
	}
	if total > 0 {
		pct := MemoryPercent(peak, total)
		if pct > 50 {
			c = p.caution
		}
		if pct > 80 {
			c = p.danger
		}
	}
	return c
}
