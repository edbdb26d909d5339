// Package ui provides terminal styling for jiraweekly CLI output.
// Uses the Ayu color theme with adaptive light/dark mode support.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Ayu theme color palette
var (
	ColorPass = lipgloss.AdaptiveColor{
		Light: "#86b300",
		Dark:  "#c2d94c",
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
)

// Status styles - consistent across all output
var (
	PassStyle  = lipgloss.NewStyle().Foreground(ColorPass)
	FailStyle  = lipgloss.NewStyle().Foreground(ColorFail)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Status icons
const (
	IconPass = "✓"
	IconFail = "✗"
	IconSkip = "-"
)

// Pass renders a success status line.
func Pass(msg string) string {
	return PassStyle.Render(IconPass + " " + msg)
}

// Fail renders a failure status line.
func Fail(msg string) string {
	return FailStyle.Render(IconFail + " " + msg)
}

// Skip renders a skipped-step status line.
func Skip(msg string) string {
	return MutedStyle.Render(IconSkip + " " + msg)
}
