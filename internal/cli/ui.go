package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Palette
// =============================================================================

// ANSI 256 colors, chosen to stay readable on dark and light terminals.
var (
	colorAccent = lipgloss.Color("36")  // teal
	colorOK     = lipgloss.Color("35")  // green
	colorWarn   = lipgloss.Color("220") // amber
	colorErr    = lipgloss.Color("167") // soft red
	colorURL    = lipgloss.Color("75")  // light blue
	colorText   = lipgloss.Color("255") // bright white
	colorMuted  = lipgloss.Color("245") // gray
	colorFaint  = lipgloss.Color("240") // dim gray
)

// Styles shared between command output and the preview TUI.
var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorFaint)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorText)

	// StyleNumber for counters.
	StyleNumber = lipgloss.NewStyle().Foreground(colorAccent)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorURL).Underline(true)

	// StyleWarning for warning text.
	StyleWarning = lipgloss.NewStyle().Foreground(colorWarn)
)

var (
	styleOK      = lipgloss.NewStyle().Foreground(colorOK)
	styleErr     = lipgloss.NewStyle().Foreground(colorErr)
	styleWarn    = lipgloss.NewStyle().Foreground(colorWarn)
	styleNote    = lipgloss.NewStyle().Foreground(colorMuted)
	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleCommand = lipgloss.NewStyle().Foreground(colorURL)
)

// =============================================================================
// Status Output
// =============================================================================

// status prints a line prefixed with a styled icon.
func status(icon string, style lipgloss.Style, format string, args ...any) {
	fmt.Println(style.Render(icon) + " " + fmt.Sprintf(format, args...))
}

// printSuccess reports a completed operation.
func printSuccess(format string, args ...any) {
	status("✓", styleOK, format, args...)
}

// printError reports a failed operation.
func printError(format string, args ...any) {
	status("✗", styleErr, format, args...)
}

// printWarning flags a degraded but non-fatal condition.
func printWarning(format string, args ...any) {
	fmt.Println(styleWarn.Render("!") + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printInfo reports neutral progress.
func printInfo(format string, args ...any) {
	status("›", styleNote, format, args...)
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// =============================================================================
// Artifacts and Values
// =============================================================================

// printFile prints the path of a written artifact.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

// printLink prints a URL the user can open.
func printLink(url string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleLink.Render(url))
}

// printKeyValue prints an aligned label/value pair.
func printKeyValue(key, value string) {
	label := lipgloss.NewStyle().Foreground(colorMuted).Width(12)
	fmt.Println(label.Render(key) + " " + StyleValue.Render(value))
}

// printStats summarizes a typeset result in one dim line, ending with
// whether it came out of the cache.
func printStats(pageCount, itemCount int, cached bool) {
	counts := make([]string, 0, 2)
	if pageCount > 0 {
		counts = append(counts, fmt.Sprintf("%d pages", pageCount))
	}
	if itemCount > 0 {
		counts = append(counts, fmt.Sprintf("%d items", itemCount))
	}

	state := styleNote.Render("fresh")
	if cached {
		state = styleOK.Render("cached")
	}

	line := StyleDim.Render(strings.Join(counts, " · "))
	if len(counts) > 0 {
		line += StyleDim.Render(" · ")
	}
	fmt.Println("  " + line + state)
}

// printNextStep suggests the follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// printNewline separates output groups.
func printNewline() {
	fmt.Println()
}
