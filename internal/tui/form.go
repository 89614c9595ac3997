package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcal/internal/schedule"
)

// EventSubmittedMsg carries a finished event out of a form.
type EventSubmittedMsg struct {
	Event schedule.Event
}

// FormCancelledMsg reports that the form was dismissed.
type FormCancelledMsg struct{}

// Submit returns the command a form uses to hand over its event.
func Submit(e schedule.Event) tea.Cmd {
	return func() tea.Msg { return EventSubmittedMsg{Event: e} }
}

// Cancel returns the command a form uses to close without saving.
func Cancel() tea.Cmd {
	return func() tea.Msg { return FormCancelledMsg{} }
}

const (
	fieldTitle = iota
	fieldDate
	fieldStart
	fieldEnd
	fieldDescription
	fieldVariant
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Date", "Start", "End", "Description", "Variant"}

// addEventForm is the built-in form used when no custom form is supplied.
type addEventForm struct {
	inputs  [fieldVariant]textinput.Model
	variant int
	focus   int
	loc     *time.Location
	err     string
}

// NewAddEventForm is the default FormFactory.
func NewAddEventForm(day time.Time) Form {
	f := &addEventForm{loc: day.Location()}
	placeholders := [fieldVariant]string{"Team sync", "2006-01-02", "09:00", "10:00", "optional"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 120
		ti.Width = 32
		f.inputs[i] = ti
	}
	f.inputs[fieldDate].SetValue(day.Format("2006-01-02"))
	f.inputs[fieldDate].CharLimit = 10
	f.inputs[fieldStart].SetValue("09:00")
	f.inputs[fieldStart].CharLimit = 5
	f.inputs[fieldEnd].SetValue("10:00")
	f.inputs[fieldEnd].CharLimit = 5
	f.inputs[fieldTitle].Focus()
	return f
}

func (f *addEventForm) Init() tea.Cmd { return textinput.Blink }

func (f *addEventForm) Update(msg tea.Msg) (Form, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateFocused(msg)
	}
	switch km.String() {
	case "esc":
		return f, Cancel()
	case "ctrl+s":
		return f, f.submit()
	case "tab", "down":
		f.move(1)
		return f, nil
	case "shift+tab", "up":
		f.move(-1)
		return f, nil
	case "enter":
		if f.focus == fieldVariant {
			return f, f.submit()
		}
		f.move(1)
		return f, nil
	}
	if f.focus == fieldVariant {
		n := len(schedule.Variants())
		switch km.String() {
		case "left", "h":
			f.variant = (f.variant + n - 1) % n
		case "right", "l", " ":
			f.variant = (f.variant + 1) % n
		}
		return f, nil
	}
	return f, f.updateFocused(msg)
}

func (f *addEventForm) updateFocused(msg tea.Msg) tea.Cmd {
	if f.focus >= fieldVariant {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *addEventForm) move(delta int) {
	if f.focus < fieldVariant {
		f.inputs[f.focus].Blur()
	}
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	if f.focus < fieldVariant {
		f.inputs[f.focus].Focus()
	}
}

func (f *addEventForm) submit() tea.Cmd {
	e, err := f.event()
	if err != nil {
		f.err = err.Error()
		return nil
	}
	f.err = ""
	return Submit(e)
}

func (f *addEventForm) event() (schedule.Event, error) {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	if title == "" {
		return schedule.Event{}, errors.New("title is required")
	}
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(f.inputs[fieldDate].Value()), f.loc)
	if err != nil {
		return schedule.Event{}, errors.New("date must look like 2026-01-31")
	}
	start, err := clockOn(day, f.inputs[fieldStart].Value())
	if err != nil {
		return schedule.Event{}, fmt.Errorf("start: %w", err)
	}
	end, err := clockOn(day, f.inputs[fieldEnd].Value())
	if err != nil {
		return schedule.Event{}, fmt.Errorf("end: %w", err)
	}
	if !end.After(start) {
		return schedule.Event{}, errors.New("end must be after start")
	}
	return schedule.Event{
		Title:       title,
		Description: strings.TrimSpace(f.inputs[fieldDescription].Value()),
		Start:       start,
		End:         end,
		Variant:     schedule.Variants()[f.variant],
	}, nil
}

func clockOn(day time.Time, s string) (time.Time, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.New("time must look like 14:30")
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func (f *addEventForm) View(width int) string {
	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		label := formLabelStyle.Render(fieldLabels[i])
		if i == f.focus {
			label = formFocusedLabel.Render(fieldLabels[i])
		}
		var value string
		if i == fieldVariant {
			value = f.variantPicker()
		} else {
			value = f.inputs[i].View()
		}
		b.WriteString(label + value + "\n")
	}
	if f.err != "" {
		b.WriteString("\n" + errorStyle.Render(f.err) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("tab next · enter save on last field · ctrl+s save · esc cancel"))
	return lipgloss.NewStyle().MaxWidth(max(1, width)).Render(b.String())
}

func (f *addEventForm) variantPicker() string {
	parts := make([]string, 0, len(schedule.Variants()))
	for i, v := range schedule.Variants() {
		style := lipgloss.NewStyle().Foreground(variantColor(v))
		if i == f.variant {
			parts = append(parts, style.Bold(true).Underline(true).Render(string(v)))
			continue
		}
		parts = append(parts, dimStyle.Render(string(v)))
	}
	return strings.Join(parts, " ")
}
