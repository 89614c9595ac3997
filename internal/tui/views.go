package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcal/internal/provider"
	"github.com/jask/jaskcal/internal/schedule"
	"github.com/jask/jaskcal/internal/tui/widgets"
)

const (
	daySummaryLabel = "on this day"
	weekTitlePrefix = "Week of "
	gridSeparator   = "│"
)

// renderView draws only the active view. With nothing offered the body is
// left empty.
func (a *App) renderView(width, height int) string {
	switch a.selector.Active() {
	case schedule.ViewDay:
		return a.renderDay(width, height)
	case schedule.ViewWeek:
		return a.renderWeek(width, height)
	case schedule.ViewMonth:
		return a.renderMonth(width, height)
	}
	return ""
}

func (a *App) navBar(width int, title string) string {
	prev := a.navButton(a.opts.Slots.PrevButton, a.opts.Styles.Prev, "◀ Prev", a.lastNav == navPrev)
	next := a.navButton(a.opts.Slots.NextButton, a.opts.Styles.Next, "Next ▶", a.lastNav == navNext)
	title = titleStyle.Render(title)
	gap := width - lipgloss.Width(prev) - lipgloss.Width(next) - lipgloss.Width(title)
	if gap < 2 {
		return widgets.Truncate(prev+" "+title+" "+next, width)
	}
	left := gap / 2
	return prev + strings.Repeat(" ", left) + title + strings.Repeat(" ", gap-left) + next
}

func (a *App) navButton(slot Button, override *lipgloss.Style, label string, focused bool) string {
	if slot != nil {
		return slot.RenderButton(focused)
	}
	style := pick(override, navButtonStyle)
	if focused {
		style = focusedButtonStyle
	}
	return style.Render(label)
}

func (a *App) today() time.Time {
	return schedule.StartOfDay(a.opts.Now().In(a.opts.Location))
}

func (a *App) renderDay(width, height int) string {
	events := a.store.OnDay(a.anchor)
	lines := []string{a.navBar(width, a.anchor.Format(a.opts.DateFormat))}
	if !a.opts.StopDayEventSummary {
		lines = append(lines, mutedStyle.Render(daySummary(len(events))))
	}
	lines = append(lines, "")

	if len(events) == 0 {
		lines = append(lines, dimStyle.Render("Nothing scheduled. Press a to add an event."))
		return strings.Join(lines, "\n")
	}

	room := max(1, height-len(lines))
	cursor := min(a.dayCursor, len(events)-1)
	start := 0
	if cursor >= room {
		start = cursor - room + 1
	}
	end := min(len(events), start+room)
	for i := start; i < end; i++ {
		lines = append(lines, a.rows.row(events[i], width, i == cursor))
	}
	return strings.Join(lines, "\n")
}

func daySummary(n int) string {
	if n == 1 {
		return "1 event " + daySummaryLabel
	}
	return fmt.Sprintf("%d events %s", n, daySummaryLabel)
}

func (a *App) renderWeek(width, height int) string {
	start := schedule.StartOfWeek(a.anchor, *a.opts.WeekStartsOn)
	lines := []string{a.navBar(width, weekTitlePrefix+start.Format("02 Jan 2006")), ""}

	colWidth := max(1, (width-6)/7)
	maxChips := max(0, min(a.opts.MaxEventsPerCell, height-len(lines)-2))

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}

	header := make([]string, 7)
	for i, d := range days {
		header[i] = a.dayHeader(d, d.Format("Mon 02"), colWidth)
	}
	lines = append(lines, strings.Join(header, gridSeparator))
	lines = append(lines, gridBorderStyle.Render(strings.Repeat("─", min(width, colWidth*7+6))))

	week := a.store.List(provider.Filters{From: start, To: start.AddDate(0, 0, 7)})
	cells := make([][]string, 7)
	for i, d := range days {
		cells[i] = a.cellLines(schedule.OnDay(week, d), colWidth, maxChips)
	}
	lines = append(lines, joinColumns(cells, colWidth)...)
	return strings.Join(lines, "\n")
}

func (a *App) renderMonth(width, height int) string {
	first := schedule.StartOfMonth(a.anchor)
	gridStart := schedule.StartOfWeek(first, *a.opts.WeekStartsOn)
	lines := []string{a.navBar(width, first.Format("January 2006"))}

	colWidth := max(1, (width-6)/7)
	// six weeks, each a day-number line, chips and a "+k more" line
	perWeek := max(2, (height-2)/6)
	maxChips := max(0, min(a.opts.MaxEventsPerCell, perWeek-2))

	header := make([]string, 7)
	for i := range header {
		header[i] = dayHeaderStyle.Render(widgets.PadRight(widgets.Truncate(gridStart.AddDate(0, 0, i).Format("Mon"), colWidth), colWidth))
	}
	lines = append(lines, strings.Join(header, gridSeparator))

	grid := a.store.List(provider.Filters{From: gridStart, To: gridStart.AddDate(0, 0, 42)})
	for w := 0; w < 6; w++ {
		cells := make([][]string, 7)
		for i := range cells {
			d := gridStart.AddDate(0, 0, w*7+i)
			label := d.Format("2")
			head := a.dayHeader(d, label, colWidth)
			if d.Month() != first.Month() && !schedule.SameDay(d, a.anchor) {
				head = outsideDayStyle.Render(widgets.PadRight(label, colWidth))
			}
			cells[i] = append([]string{head}, a.cellLines(schedule.OnDay(grid, d), colWidth, maxChips)...)
		}
		lines = append(lines, joinColumns(cells, colWidth)...)
	}
	return strings.Join(lines, "\n")
}

// dayHeader marks the cursor day and today.
func (a *App) dayHeader(d time.Time, label string, width int) string {
	text := widgets.PadRight(widgets.Truncate(label, width), width)
	switch {
	case schedule.SameDay(d, a.anchor):
		return cursorDayStyle.Render(text)
	case schedule.SameDay(d, a.today()):
		return todayStyle.Render(text)
	}
	return dayHeaderStyle.Render(text)
}

// cellLines renders up to maxChips events then a "+k more" line for the rest.
// The result always has maxChips+1 lines so grid rows line up.
func (a *App) cellLines(events []schedule.Event, width, maxChips int) []string {
	out := make([]string, 0, maxChips+1)
	shown := min(len(events), maxChips)
	for _, e := range events[:shown] {
		out = append(out, a.rows.chip(e, width))
	}
	for len(out) < maxChips {
		out = append(out, strings.Repeat(" ", width))
	}
	if rest := len(events) - shown; rest > 0 {
		out = append(out, moreEventsStyle.Render(widgets.PadRight(widgets.Truncate(fmt.Sprintf("+%d more", rest), width), width)))
	} else {
		out = append(out, strings.Repeat(" ", width))
	}
	return out
}

func joinColumns(cols [][]string, width int) []string {
	rows := 0
	for _, c := range cols {
		rows = max(rows, len(c))
	}
	blank := strings.Repeat(" ", width)
	out := make([]string, rows)
	for r := 0; r < rows; r++ {
		parts := make([]string, len(cols))
		for i, c := range cols {
			if r < len(c) {
				parts[i] = c[r]
			} else {
				parts[i] = blank
			}
		}
		out[r] = strings.Join(parts, gridSeparator)
	}
	return out
}
