package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcal/internal/schedule"
)

// Icon supplies the glyph shown beside a tab label.
type Icon interface {
	Glyph() string
}

// Glyph is a fixed Icon.
type Glyph string

func (g Glyph) Glyph() string { return string(g) }

// Button renders a clickable-looking label. focused is true while the
// button's action is in effect: the last prev/next move for the nav buttons,
// an open add-event modal for the add button.
type Button interface {
	RenderButton(focused bool) string
}

// ButtonFunc adapts a func to Button.
type ButtonFunc func(focused bool) string

func (f ButtonFunc) RenderButton(focused bool) string { return f(focused) }

// EventRenderer draws one event row no wider than width.
type EventRenderer interface {
	RenderEvent(e schedule.Event, width int, selected bool) string
}

// EventRendererFunc adapts a func to EventRenderer.
type EventRendererFunc func(e schedule.Event, width int, selected bool) string

func (f EventRendererFunc) RenderEvent(e schedule.Event, width int, selected bool) string {
	return f(e, width, selected)
}

// Form is an add-event form hosted in a modal. A form finishes by returning a
// command that yields EventSubmittedMsg or FormCancelledMsg.
type Form interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Form, tea.Cmd)
	View(width int) string
}

// FormFactory builds a form pre-filled for day.
type FormFactory func(day time.Time) Form

// Slots are optional render overrides. A nil field keeps the default.
type Slots struct {
	DayTab   Icon
	WeekTab  Icon
	MonthTab Icon

	PrevButton     Button
	NextButton     Button
	AddEventButton Button

	Event EventRenderer

	AddEventTitle string
	AddEventForm  FormFactory
}

// Styles override the default look of individual elements. A nil field keeps
// the default.
type Styles struct {
	Tabs     *lipgloss.Style
	AddEvent *lipgloss.Style
	Prev     *lipgloss.Style
	Next     *lipgloss.Style
	Event    *lipgloss.Style
}

// Source loads the initial event list.
type Source func(ctx context.Context) ([]schedule.Event, error)

// Options configure an App.
type Options struct {
	Views               schedule.ViewsConfig
	StopDayEventSummary bool
	Styles              Styles
	Slots               Slots

	WeekStartsOn     *time.Weekday // nil means Monday
	Location         *time.Location
	DateFormat       string
	CellWidth        int // viewport units per terminal column
	MaxEventsPerCell int

	// Width and Height seed the layout before the first resize message.
	Width  int
	Height int

	Source Source
	Now    func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Views.Desktop == nil && o.Views.Mobile == nil {
		o.Views = schedule.DefaultViews()
	}
	if o.WeekStartsOn == nil {
		monday := time.Monday
		o.WeekStartsOn = &monday
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.DateFormat == "" {
		o.DateFormat = "Mon 02 Jan 2006"
	}
	if o.CellWidth <= 0 {
		o.CellWidth = 8
	}
	if o.MaxEventsPerCell <= 0 {
		o.MaxEventsPerCell = 2
	}
	if o.Width <= 0 {
		o.Width = 100
	}
	if o.Height <= 0 {
		o.Height = 32
	}
	if o.Slots.AddEventTitle == "" {
		o.Slots.AddEventTitle = "Add Event"
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
