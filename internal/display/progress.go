package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Strawby/slowglass/internal/term"
)

var (
	barFillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	barLabelStyle = lipgloss.NewStyle().Bold(true)
)

// Bar renders render progress in place on a single terminal line. It is owned
// by the progress consumer loop; there is exactly one writer per run.
type Bar struct {
	w     io.Writer
	width int
	drawn bool
}

// NewBar returns a progress bar writing to w. width is the number of bar
// cells, excluding the percentage and time labels.
func NewBar(w io.Writer, width int) *Bar {
	if width < 10 {
		width = 10
	}
	return &Bar{w: w, width: width}
}

// Update redraws the bar for the given percentage (0-100, already clamped by
// the caller) and elapsed/expected output seconds.
func (b *Bar) Update(pct, elapsedSec, expectedSec float64) {
	b.drawn = true
	fmt.Fprint(b.w, "\r"+b.Line(pct, elapsedSec, expectedSec))
}

// Line formats one progress line without the carriage return. Split out so
// tests can check the rendering without a terminal.
func (b *Bar) Line(pct, elapsedSec, expectedSec float64) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(pct * float64(b.width) / 100)
	if filled > b.width {
		filled = b.width
	}
	fill := strings.Repeat("█", filled)
	empty := strings.Repeat("░", b.width-filled)

	if term.Enabled() {
		fill = barFillStyle.Render(fill)
		empty = barEmptyStyle.Render(empty)
	}

	label := fmt.Sprintf("%6s  %s / %s",
		FormatPercent(pct), FormatSeconds(elapsedSec), FormatSeconds(expectedSec))
	if term.Enabled() {
		label = barLabelStyle.Render(label)
	}

	return "[" + fill + empty + "] " + label
}

// Finish terminates the in-place line with a newline. Safe to call when
// nothing was drawn.
func (b *Bar) Finish() {
	if b.drawn {
		fmt.Fprintln(b.w)
		b.drawn = false
	}
}
