// Package styles centralizes colors and lipgloss styles for the TUI.
// The exported style variables are rebuilt in place when SetTheme swaps
// the active palette, so render code can reference them directly.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors of the active palette.
	PrimaryColor   = lipgloss.Color("#A78BFA")
	SecondaryColor = lipgloss.Color("#10B981")
	WarningColor   = lipgloss.Color("#F59E0B")
	ErrorColor     = lipgloss.Color("#F87171")
	MutedColor     = lipgloss.Color("#9CA3AF")
	SurfaceColor   = lipgloss.Color("#1F2937")
	TextColor      = lipgloss.Color("#F9FAFB")
	BorderColor    = lipgloss.Color("#6B7280")

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Title bar at the top of each screen
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Table styles
	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(MutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(BorderColor)

	RowSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(SurfaceColor)

	RowChild = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Role badges
	BadgeAdmin = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)

	BadgeUser = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Pager line under the table
	PageActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1)

	PageInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	// Status and help bars
	StatusBar = lipgloss.NewStyle().
			Foreground(MutedColor)

	StatusError = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)

	StatusNotice = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Confirm prompt
	ConfirmBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(WarningColor).
			Padding(1, 2)

	// Form input
	FormBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 2)

	FormLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(MutedColor)
)

// applyPalette rebuilds the exported styles from a palette.
// Callers hold themeMu.
func applyPalette(p ColorPalette) {
	PrimaryColor = p.Primary
	SecondaryColor = p.Secondary
	WarningColor = p.Warning
	ErrorColor = p.Error
	MutedColor = p.Muted
	SurfaceColor = p.Surface
	TextColor = p.Text
	BorderColor = p.Border

	Primary = Primary.Foreground(PrimaryColor)
	Secondary = Secondary.Foreground(SecondaryColor)
	Warning = Warning.Foreground(WarningColor)
	Error = Error.Foreground(ErrorColor)
	Muted = Muted.Foreground(MutedColor)
	Text = Text.Foreground(TextColor)

	Title = Title.Foreground(PrimaryColor)
	Subtitle = Subtitle.Foreground(MutedColor)

	TableHeader = TableHeader.Foreground(MutedColor).BorderForeground(BorderColor)
	RowSelected = RowSelected.Foreground(TextColor).Background(SurfaceColor)
	RowChild = RowChild.Foreground(MutedColor)

	BadgeAdmin = BadgeAdmin.Foreground(WarningColor)
	BadgeUser = BadgeUser.Foreground(MutedColor)

	PageActive = PageActive.Foreground(TextColor).Background(PrimaryColor)
	PageInactive = PageInactive.Foreground(MutedColor)

	StatusBar = StatusBar.Foreground(MutedColor)
	StatusError = StatusError.Foreground(ErrorColor)
	StatusNotice = StatusNotice.Foreground(SecondaryColor)

	HelpBar = HelpBar.Foreground(MutedColor)
	HelpKey = HelpKey.Foreground(SecondaryColor)

	ConfirmBox = ConfirmBox.BorderForeground(WarningColor)
	FormBox = FormBox.BorderForeground(BorderColor)
	FormLabel = FormLabel.Foreground(MutedColor)
}
