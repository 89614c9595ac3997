package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcal/internal/modal"
	"github.com/jask/jaskcal/internal/schedule"
)

const (
	emptyDayTitle  = "No events found"
	emptyDayDetail = "There are no events scheduled for this day."
)

// overflowModal lists one day's events. Deleting a row only edits the local
// copy; the provider never sees it.
type overflowModal struct {
	events []schedule.Event
	cursor int
	rows   eventRows
	keys   keyMap
}

func newOverflowModal(data modal.Data, rows eventRows, keys keyMap) *overflowModal {
	return &overflowModal{events: modal.DayEvents(data), rows: rows, keys: keys}
}

// Events returns the rows currently shown.
func (o *overflowModal) Events() []schedule.Event {
	return slices.Clone(o.events)
}

// Remove drops the first row whose id matches. It reports whether a row went.
func (o *overflowModal) Remove(id string) bool {
	idx := slices.IndexFunc(o.events, func(e schedule.Event) bool { return e.ID == id })
	if idx < 0 {
		return false
	}
	o.events = slices.Delete(o.events, idx, idx+1)
	if o.cursor >= len(o.events) {
		o.cursor = max(0, len(o.events)-1)
	}
	return true
}

// Update handles a key. done is true when the modal should close.
func (o *overflowModal) Update(msg tea.KeyMsg) (done bool) {
	switch {
	case key.Matches(msg, o.keys.Close):
		return true
	case key.Matches(msg, o.keys.Up):
		if o.cursor > 0 {
			o.cursor--
		}
	case key.Matches(msg, o.keys.Down):
		if o.cursor < len(o.events)-1 {
			o.cursor++
		}
	case key.Matches(msg, o.keys.Delete):
		if len(o.events) > 0 {
			o.Remove(o.events[o.cursor].ID)
		}
	}
	return false
}

func (o *overflowModal) View(width int) string {
	if len(o.events) == 0 {
		return strings.Join([]string{
			titleStyle.Render("▦"),
			titleStyle.Render(emptyDayTitle),
			mutedStyle.Render(emptyDayDetail),
		}, "\n")
	}
	lines := make([]string, 0, len(o.events))
	for i, e := range o.events {
		lines = append(lines, o.rows.row(e, width, i == o.cursor))
	}
	return strings.Join(lines, "\n")
}

func (o *overflowModal) help() modalKeys {
	return modalKeys{bindings: []key.Binding{o.keys.Up, o.keys.Down, o.keys.Delete, o.keys.Close}}
}
