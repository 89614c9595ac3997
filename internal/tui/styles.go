package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcal/internal/schedule"
)

// Catppuccin Mocha
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorMauve    lipgloss.Color = "#cba6f7"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorMauve
	colorFocus   = colorLavender
	colorError   = colorRed
	colorSuccess = colorGreen
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	dimStyle   = lipgloss.NewStyle().Foreground(colorOverlay0)
	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	activeTabStyle   = lipgloss.NewStyle().Background(colorSurface1).Foreground(colorAccent).Bold(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(colorOverlay1).Padding(0, 1)

	buttonStyle        = lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Bold(true).Padding(0, 1)
	navButtonStyle     = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)
	focusedButtonStyle = lipgloss.NewStyle().Foreground(colorMantle).Background(colorFocus).Padding(0, 1)

	statusStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)

	eventStyle         = lipgloss.NewStyle().Foreground(colorText)
	selectedEventStyle = lipgloss.NewStyle().Background(colorSurface1).Foreground(colorText).Bold(true)

	dayHeaderStyle   = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	todayStyle       = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)
	cursorDayStyle   = lipgloss.NewStyle().Background(colorSurface0)
	outsideDayStyle  = lipgloss.NewStyle().Foreground(colorOverlay0)
	moreEventsStyle  = lipgloss.NewStyle().Foreground(colorOverlay1).Italic(true)
	gridBorderStyle  = lipgloss.NewStyle().Foreground(colorSurface1)
	formLabelStyle   = lipgloss.NewStyle().Foreground(colorSubtext0).Width(12)
	formFocusedLabel = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Width(12)
)

// variantColor maps an event variant onto the palette.
func variantColor(v schedule.Variant) lipgloss.Color {
	switch v {
	case schedule.VariantPrimary:
		return colorBlue
	case schedule.VariantDanger:
		return colorRed
	case schedule.VariantSuccess:
		return colorGreen
	case schedule.VariantWarning:
		return colorYellow
	default:
		return colorOverlay1
	}
}

// pick returns the override when present.
func pick(override *lipgloss.Style, fallback lipgloss.Style) lipgloss.Style {
	if override != nil {
		return *override
	}
	return fallback
}

// ColorStyle builds a foreground-only override from a colour string, or nil
// when s is empty.
func ColorStyle(s string) *lipgloss.Style {
	if s == "" {
		return nil
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(s)).Bold(true)
	return &st
}
