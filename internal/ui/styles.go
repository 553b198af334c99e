// Package ui provides CLI output styling for search results.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette - single lime accent, gray for metadata.
const (
	ColorLime = "154" // matched keys and headers
	ColorGray = "245" // scores, rules, timing
	ColorRed  = "196" // errors
)

// Styles holds the render styles for CLI output.
type Styles struct {
	Header lipgloss.Style
	Key    lipgloss.Style
	Meta   lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns colored styles for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Key:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		Meta:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
	}
}

// NoColorStyles returns unstyled components for pipes and CI.
func NoColorStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		Key:    lipgloss.NewStyle(),
		Meta:   lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
	}
}

// AutoStyles picks colored styles when stdout is a terminal.
func AutoStyles() Styles {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return DefaultStyles()
	}
	return NoColorStyles()
}
