package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/vpilot/internal/version"
)

// AppName is shown in the header of every page
const AppName = "WIRTUALNY PILOT"

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants
const (
	MinTerminalWidth  = 72 // Minimum supported terminal width
	DefaultHeight     = 24 // Height used before the first WindowSizeMsg
	LabelWidth        = 24 // Width of the device label column
	ButtonWidth       = 10 // Width of an on/off button
	NavButtonMinWidth = 16 // Minimum width of a group button on the start page
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor       = lipgloss.Color("#FFFFFF") // White
	SubtleColor     = lipgloss.Color("#626262") // Gray
	BorderColor     = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor  = lipgloss.Color("#43BF6D") // Green (same as secondary)
	BackgroundColor = lipgloss.Color("#1A1A1A") // Dark gray
)

// Common styles
var (
	// Title style - bold, primary color
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Device label column
	LabelStyle = lipgloss.NewStyle().
			Width(LabelWidth).
			Foreground(TextColor)

	// Buttons: enabled, enabled with focus, disabled
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			Align(lipgloss.Center)

	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(BackgroundColor).
				Background(HighlightColor).
				Bold(true).
				Align(lipgloss.Center)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Faint(true).
				Align(lipgloss.Center)

	FocusedDisabledButtonStyle = lipgloss.NewStyle().
					Foreground(SubtleColor).
					Underline(true).
					Align(lipgloss.Center)

	// Device state indicators
	OnIndicatorStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	OffIndicatorStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Notice line styles
	NoticeStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	ErrorNoticeStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	// Focused input style
	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Blurred input style
	BlurredInputStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// RenderButton renders a bracketed button. Disabled buttons are dimmed; the
// focused one is highlighted.
func RenderButton(text string, width int, enabled, focused bool) string {
	label := "[" + text + "]"

	var style lipgloss.Style
	switch {
	case enabled && focused:
		style = FocusedButtonStyle
	case enabled:
		style = ButtonStyle
	case focused:
		style = FocusedDisabledButtonStyle
	default:
		style = DisabledButtonStyle
	}

	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(label)
}

// RenderIndicator renders the on/off marker shown next to a device label
func RenderIndicator(on bool) string {
	if on {
		return OnIndicatorStyle.Render("●")
	}
	return OffIndicatorStyle.Render("○")
}

// RenderNotice renders the one-line notice under the panel
func RenderNotice(text string, isError bool) string {
	if text == "" {
		return ""
	}
	if isError {
		return ErrorNoticeStyle.Render("✗ " + text)
	}
	return NoticeStyle.Render("✓ " + text)
}

// BuildHeaderContent creates header content with app name, version, the
// current broadcast destination and how many devices are on
func BuildHeaderContent(destination string, onCount int) string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(fmt.Sprintf("→ %s  włączone: %d", destination, onCount))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a page in the full-screen frame: header,
// content, and a footer pinned to the bottom.
func RenderApplicationContainer(header, content, footerText string, terminalWidth, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 2)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}
