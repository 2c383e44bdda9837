package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette for CLI output on dark terminal backgrounds.
const (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorSuccess = lipgloss.Color("#10B981")
	ColorWarning = lipgloss.Color("#F59E0B")
)

var (
	// TitleStyle is for the tool name and section headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for descriptions and asset type labels.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for completed operations.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// WarningStyle is for skipped-file counts.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
