package tui

import "github.com/charmbracelet/lipgloss"

// bannerStyle returns the style for the welcome banner line.
func bannerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// echoStyle returns the dim style for echoed user input in the transcript.
func echoStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
}
