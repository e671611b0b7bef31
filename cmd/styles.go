package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/StinkyLord/gwt-launcher/internal/output"
)

// Color palette shared by all CLI output.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary text.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for command lines and module names.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// textStyler maps the palette onto the output package's text renderers.
func textStyler() output.Styler {
	return output.Styler{
		Name:     render(CmdStyle),
		External: render(WarningStyle),
		Faint:    render(SubtitleStyle),
	}
}

func render(st lipgloss.Style) func(string) string {
	return func(s string) string { return st.Render(s) }
}
