// Package display provides the banner, human-readable formatting helpers,
// and the in-place render progress bar.
package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/Strawby/slowglass/internal/term"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#B57EDC"))

// PrintBanner prints the ASCII art banner, styled when colors are enabled.
func PrintBanner() {
	art := ` _____ _                _
|   __| |___ _ _ _ ___ | | ___ ___ ___
|__   | | . | | | | . || || .'|_ -|_ -|
|_____|_|___|_____|_  ||_||__,|___|___|
                  |___|
`
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, bannerStyle.Render(art))
		return
	}
	fmt.Fprint(os.Stdout, art+"\n")
}
