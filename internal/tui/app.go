package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcal/internal/device"
	"github.com/jask/jaskcal/internal/modal"
	"github.com/jask/jaskcal/internal/provider"
	"github.com/jask/jaskcal/internal/schedule"
	"github.com/jask/jaskcal/internal/tui/widgets"
)

// payload keys used by the App's own modals
const (
	dataDay   = "day"
	dataEvent = "event"
)

type navDirection string

const (
	navNone navDirection = ""
	navPrev navDirection = "prev"
	navNext navDirection = "next"
)

// App is the scheduler: a view selector over day, week and month views plus
// the add-event and overflow modals.
type App struct {
	ctx      context.Context
	opts     Options
	store    *provider.Store
	selector *Selector
	signal   *device.Signal
	modals   *modal.Controller
	keys     keyMap
	help     help.Model
	rows     eventRows

	width  int
	height int

	anchor    time.Time
	dayCursor int
	lastNav   navDirection

	overflow *overflowModal
	form     Form
	detail   *schedule.Event

	status    string
	statusErr bool

	unsubscribe []func()
}

// New builds the App. A nil store starts empty.
func New(ctx context.Context, store *provider.Store, opts Options) *App {
	opts = opts.withDefaults()
	if store == nil {
		store = provider.New(nil)
	}
	a := &App{
		ctx:    ctx,
		opts:   opts,
		store:  store,
		signal: device.NewSignal(opts.Width * opts.CellWidth),
		modals: modal.NewController(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		rows:   eventRows{custom: opts.Slots.Event, override: opts.Styles.Event},
		width:  opts.Width,
		height: opts.Height,
		anchor: schedule.StartOfDay(opts.Now().In(opts.Location)),
	}
	a.help.Width = opts.Width
	a.selector = NewSelector(opts.Views, a.signal.Class())
	a.unsubscribe = append(a.unsubscribe,
		a.signal.Subscribe(a.onDeviceClass),
		a.modals.Subscribe(a.onModal),
	)
	return a
}

// Close releases the App's subscriptions. It is safe to call more than once.
func (a *App) Close() {
	for _, u := range a.unsubscribe {
		u()
	}
	a.unsubscribe = nil
}

func (a *App) Init() tea.Cmd {
	if a.opts.Source == nil {
		return nil
	}
	src := a.opts.Source
	return func() tea.Msg {
		events, err := src(a.ctx)
		if err != nil {
			return errMsg{fmt.Errorf("load events: %w", err)}
		}
		return eventsLoadedMsg(events)
	}
}

func (a *App) onDeviceClass(c device.Class) {
	prev := a.selector.Active()
	if a.selector.SetClass(c) {
		a.dayCursor = 0
	}
	slog.Debug("device class changed", "class", c.String(), "from_view", string(prev), "view", string(a.selector.Active()))
}

func (a *App) onModal(m modal.Modal, open bool) {
	a.overflow, a.form, a.detail = nil, nil, nil
	if !open {
		return
	}
	switch m.Kind {
	case modal.KindDayEvents:
		a.overflow = newOverflowModal(m.Data, a.rows, a.keys)
	case modal.KindAddEvent:
		day, ok := m.Data[dataDay].(time.Time)
		if !ok {
			day = a.anchor
		}
		factory := a.opts.Slots.AddEventForm
		if factory == nil {
			factory = NewAddEventForm
		}
		a.form = factory(day)
	case modal.KindViewEvent:
		if e, ok := m.Data[dataEvent].(schedule.Event); ok {
			a.detail = &e
		}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		a.signal.Update(m.Width * a.opts.CellWidth)
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	case eventsLoadedMsg:
		a.store.Replace([]schedule.Event(m))
		a.setStatus(fmt.Sprintf("loaded %d events", a.store.Len()))
		return a, nil
	case EventSubmittedMsg:
		e, err := a.store.Add(m.Event)
		if err != nil {
			a.setError(err)
			return a, nil
		}
		a.modals.Close()
		a.anchor = schedule.StartOfDay(e.Start)
		a.setStatus("added " + e.Title)
		slog.Info("event added", "id", e.ID, "start", e.Start)
		return a, nil
	case FormCancelledMsg:
		a.modals.Close()
		return a, nil
	case statusMsg:
		a.setStatus(string(m))
		return a, nil
	case errMsg:
		a.setError(m.error)
		slog.Error("scheduler error", "error", m.error)
		return a, nil
	}
	if a.form != nil {
		next, cmd := a.form.Update(msg)
		a.form = next
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.String() == "ctrl+c" {
		a.Close()
		return a, tea.Quit
	}
	if current, ok := a.modals.Current(); ok {
		return a.handleModalKey(current, m)
	}

	k := a.keys
	switch {
	case key.Matches(m, k.Quit):
		a.Close()
		return a, tea.Quit
	case key.Matches(m, k.NextTab):
		a.selector.Cycle(1)
	case key.Matches(m, k.PrevTab):
		a.selector.Cycle(-1)
	case key.Matches(m, k.TabIndex):
		a.selector.SelectIndex(int(m.Runes[0] - '1'))
	case key.Matches(m, k.DayView):
		a.selector.Select(schedule.ViewDay)
	case key.Matches(m, k.WeekView):
		a.selector.Select(schedule.ViewWeek)
	case key.Matches(m, k.MonthView):
		a.selector.Select(schedule.ViewMonth)
	case key.Matches(m, k.Prev):
		a.shift(-1)
		a.lastNav = navPrev
	case key.Matches(m, k.Next):
		a.shift(1)
		a.lastNav = navNext
	case key.Matches(m, k.Today):
		a.anchor = schedule.StartOfDay(a.opts.Now().In(a.opts.Location))
		a.dayCursor = 0
	case key.Matches(m, k.AddEvent):
		return a, a.openAddEvent()
	case key.Matches(m, k.Left):
		a.moveCursor(0, -1)
	case key.Matches(m, k.Right):
		a.moveCursor(0, 1)
	case key.Matches(m, k.Up):
		a.moveCursor(-1, 0)
	case key.Matches(m, k.Down):
		a.moveCursor(1, 0)
	case key.Matches(m, k.Open):
		a.open()
	case key.Matches(m, k.Delete):
		a.deleteSelected()
	}
	return a, nil
}

func (a *App) handleModalKey(current modal.Modal, m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch current.Kind {
	case modal.KindAddEvent:
		if a.form == nil {
			a.modals.Close()
			return a, nil
		}
		next, cmd := a.form.Update(m)
		a.form = next
		return a, cmd
	case modal.KindDayEvents:
		if a.overflow == nil || a.overflow.Update(m) {
			a.modals.Close()
		}
	case modal.KindViewEvent:
		switch {
		case key.Matches(m, a.keys.Close), key.Matches(m, a.keys.Open):
			a.modals.Close()
		case key.Matches(m, a.keys.Delete):
			if a.detail != nil && a.store.Delete(a.detail.ID) {
				a.setStatus("deleted " + a.detail.Title)
			}
			a.modals.Close()
		case key.Matches(m, a.keys.Left):
			a.recolorDetail(-1)
		case key.Matches(m, a.keys.Right):
			a.recolorDetail(1)
		}
	default:
		if key.Matches(m, a.keys.Close) {
			a.modals.Close()
		}
	}
	return a, nil
}

// recolorDetail steps the detailed event through the variants and saves it.
func (a *App) recolorDetail(delta int) {
	if a.detail == nil {
		return
	}
	e, ok := a.store.Get(a.detail.ID)
	if !ok {
		a.modals.Close()
		return
	}
	variants := schedule.Variants()
	idx := max(0, slices.Index(variants, e.Variant))
	e.Variant = variants[(idx+delta+len(variants))%len(variants)]
	if err := a.store.Update(e); err != nil {
		a.setError(err)
		return
	}
	a.detail = &e
}

func (a *App) openAddEvent() tea.Cmd {
	a.modals.Open(modal.KindAddEvent, a.opts.Slots.AddEventTitle, modal.Data{dataDay: a.anchor})
	if a.form == nil {
		return nil
	}
	return a.form.Init()
}

func (a *App) openDayEvents(day time.Time) {
	events := a.store.OnDay(day)
	a.modals.Open(modal.KindDayEvents, day.Format(a.opts.DateFormat), modal.WithDayEvents(events))
}

func (a *App) open() {
	switch a.selector.Active() {
	case schedule.ViewDay:
		events := a.store.OnDay(a.anchor)
		if len(events) == 0 {
			return
		}
		e := events[min(a.dayCursor, len(events)-1)]
		a.modals.Open(modal.KindViewEvent, e.Title, modal.Data{dataEvent: e})
	case schedule.ViewWeek, schedule.ViewMonth:
		a.openDayEvents(a.anchor)
	}
}

func (a *App) deleteSelected() {
	if a.selector.Active() != schedule.ViewDay {
		return
	}
	events := a.store.OnDay(a.anchor)
	if len(events) == 0 {
		return
	}
	e := events[min(a.dayCursor, len(events)-1)]
	if a.store.Delete(e.ID) {
		a.setStatus("deleted " + e.Title)
		if a.dayCursor > 0 && a.dayCursor >= len(events)-1 {
			a.dayCursor--
		}
	}
}

// shift pages the active view by one day, week or month.
func (a *App) shift(delta int) {
	switch a.selector.Active() {
	case schedule.ViewWeek:
		a.anchor = a.anchor.AddDate(0, 0, 7*delta)
	case schedule.ViewMonth:
		a.anchor = addMonths(a.anchor, delta)
	default:
		a.anchor = a.anchor.AddDate(0, 0, delta)
	}
	a.dayCursor = 0
}

// moveCursor handles arrow keys: rows move the event cursor in the day view
// and a week at a time in the grids; cols move a day.
func (a *App) moveCursor(rows, cols int) {
	switch a.selector.Active() {
	case schedule.ViewDay:
		if cols != 0 {
			a.anchor = a.anchor.AddDate(0, 0, cols)
			a.dayCursor = 0
			return
		}
		n := len(a.store.OnDay(a.anchor))
		a.dayCursor = max(0, min(n-1, a.dayCursor+rows))
	case schedule.ViewWeek, schedule.ViewMonth:
		a.anchor = a.anchor.AddDate(0, 0, cols+7*rows)
	}
}

// addMonths moves by whole months, clamping to the last day of short months.
func addMonths(t time.Time, delta int) time.Time {
	first := schedule.StartOfMonth(t).AddDate(0, delta, 0)
	last := first.AddDate(0, 1, -1).Day()
	return time.Date(first.Year(), first.Month(), min(t.Day(), last), 0, 0, 0, 0, t.Location())
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.setStatus("")
		return
	}
	a.status = err.Error()
	a.statusErr = true
}

// View renders header, status line, active view and key help. An open modal
// floats over the view area.
func (a *App) View() string {
	width := max(1, a.width)
	height := max(1, a.height)

	header := a.renderHeader(width)
	status := a.renderStatus(width)
	footer := a.renderFooter(width)
	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)

	var body string
	if bodyHeight > 0 {
		body = a.renderView(width, bodyHeight)
		if m, ok := a.modals.Current(); ok {
			inner := min(width-8, 64)
			body = widgets.RenderModal(body, m.Title, a.renderModalBody(m, inner), width, bodyHeight)
		}
	}
	body = widgets.FitHeight(body, bodyHeight)

	parts := []string{header, status}
	if body != "" {
		parts = append(parts, body)
	}
	parts = append(parts, footer)
	return strings.Join(parts, "\n")
}

func (a *App) renderHeader(width int) string {
	tabs := a.renderTabs()
	add := a.renderAddButton()
	gap := width - lipgloss.Width(tabs) - lipgloss.Width(add)
	if gap < 1 {
		return widgets.PadRight(tabs+" "+add, width)
	}
	return tabs + strings.Repeat(" ", gap) + add
}

func (a *App) renderTabs() string {
	offered := a.selector.Views()
	if len(offered) == 0 {
		return ""
	}
	parts := make([]string, 0, len(offered))
	for _, v := range offered {
		label := a.tabIcon(v) + " " + v.Label()
		if v == a.selector.Active() {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}
	return pick(a.opts.Styles.Tabs, lipgloss.NewStyle()).Render(strings.Join(parts, " "))
}

func (a *App) tabIcon(v schedule.ViewName) string {
	var custom Icon
	fallback := ""
	switch v {
	case schedule.ViewDay:
		custom, fallback = a.opts.Slots.DayTab, "▤"
	case schedule.ViewWeek:
		custom, fallback = a.opts.Slots.WeekTab, "▥"
	case schedule.ViewMonth:
		custom, fallback = a.opts.Slots.MonthTab, "▦"
	}
	if custom != nil {
		return custom.Glyph()
	}
	return fallback
}

func (a *App) renderAddButton() string {
	if a.opts.Slots.AddEventButton != nil {
		return a.opts.Slots.AddEventButton.RenderButton(a.addEventOpen())
	}
	return pick(a.opts.Styles.AddEvent, buttonStyle).Render("+ Add Event")
}

func (a *App) addEventOpen() bool {
	m, ok := a.modals.Current()
	return ok && m.Kind == modal.KindAddEvent
}

func (a *App) renderStatus(width int) string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = fmt.Sprintf("%d events · %s", a.store.Len(), a.selector.Class())
	}
	style := statusStyle
	if a.statusErr {
		style = statusErrStyle
	}
	return style.Render(widgets.Truncate(msg, width))
}

func (a *App) renderFooter(width int) string {
	a.help.Width = width
	switch {
	case a.overflow != nil:
		return a.help.View(a.overflow.help())
	case a.detail != nil:
		return a.help.View(modalKeys{bindings: []key.Binding{
			key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "colour")),
			a.keys.Delete, a.keys.Close,
		}})
	case a.form != nil:
		return dimStyle.Render(widgets.Truncate("esc cancel", width))
	}
	return a.help.View(a.keys)
}

func (a *App) renderModalBody(m modal.Modal, width int) string {
	switch {
	case a.overflow != nil:
		return a.overflow.View(width)
	case a.form != nil:
		return a.form.View(width)
	case a.detail != nil:
		return a.renderDetail(*a.detail, width)
	}
	return ""
}

func (a *App) renderDetail(e schedule.Event, width int) string {
	lines := []string{
		lipgloss.NewStyle().Foreground(variantColor(e.Variant)).Render("● " + string(e.Variant)),
		e.Start.Format(a.opts.DateFormat) + "  " + e.TimeRange(),
	}
	if e.Description != "" {
		lines = append(lines, "", lipgloss.NewStyle().Width(width).Render(e.Description))
	}
	return strings.Join(lines, "\n")
}

// messages
type eventsLoadedMsg []schedule.Event

type statusMsg string

type errMsg struct{ error }
