package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcal/internal/schedule"
	"github.com/jask/jaskcal/internal/tui/widgets"
)

// eventRows renders events through the custom renderer when one is set.
type eventRows struct {
	custom   EventRenderer
	override *lipgloss.Style
}

func (r eventRows) row(e schedule.Event, width int, selected bool) string {
	if width <= 0 {
		return ""
	}
	if r.custom != nil {
		return widgets.PadRight(r.custom.RenderEvent(e, width, selected), width)
	}
	bar := lipgloss.NewStyle().Foreground(variantColor(e.Variant)).Render("▌")
	text := e.TimeRange() + " " + e.Title
	base := pick(r.override, eventStyle)
	if selected {
		base = selectedEventStyle
	}
	return bar + base.Render(widgets.PadRight(widgets.Truncate(text, width-1), width-1))
}

// chip is the compact one-line form used inside week and month cells.
func (r eventRows) chip(e schedule.Event, width int) string {
	if width <= 0 {
		return ""
	}
	if r.custom != nil {
		return widgets.PadRight(r.custom.RenderEvent(e, width, false), width)
	}
	style := pick(r.override, lipgloss.NewStyle().Foreground(variantColor(e.Variant)))
	return style.Render(widgets.PadRight(widgets.Truncate(e.Title, width), width))
}
