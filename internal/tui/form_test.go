package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcal/internal/schedule"
)

func newTestForm(t *testing.T) *addEventForm {
	t.Helper()
	f, ok := NewAddEventForm(time.Date(2026, time.May, 6, 0, 0, 0, 0, time.UTC)).(*addEventForm)
	if !ok {
		t.Fatal("NewAddEventForm should return *addEventForm")
	}
	return f
}

func submitted(t *testing.T, cmd tea.Cmd) schedule.Event {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(EventSubmittedMsg)
	if !ok {
		t.Fatalf("msg = %T, want EventSubmittedMsg", cmd())
	}
	return msg.Event
}

func TestFormPrefillsDay(t *testing.T) {
	f := newTestForm(t)
	if got := f.inputs[fieldDate].Value(); got != "2026-05-06" {
		t.Fatalf("date = %q, want 2026-05-06", got)
	}
	view := f.View(60)
	for _, label := range fieldLabels {
		if !strings.Contains(view, label) {
			t.Fatalf("missing %q label:\n%s", label, view)
		}
	}
}

func TestFormValidation(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		date    string
		start   string
		end     string
		wantErr string
	}{
		{name: "missing title", title: " ", date: "2026-05-06", start: "09:00", end: "10:00", wantErr: "title is required"},
		{name: "bad date", title: "x", date: "06/05/2026", start: "09:00", end: "10:00", wantErr: "date must look like"},
		{name: "bad start", title: "x", date: "2026-05-06", start: "9am", end: "10:00", wantErr: "start: time must look like"},
		{name: "bad end", title: "x", date: "2026-05-06", start: "09:00", end: "25:00", wantErr: "end: time must look like"},
		{name: "end before start", title: "x", date: "2026-05-06", start: "11:00", end: "10:00", wantErr: "end must be after start"},
		{name: "zero length", title: "x", date: "2026-05-06", start: "10:00", end: "10:00", wantErr: "end must be after start"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestForm(t)
			f.inputs[fieldTitle].SetValue(tc.title)
			f.inputs[fieldDate].SetValue(tc.date)
			f.inputs[fieldStart].SetValue(tc.start)
			f.inputs[fieldEnd].SetValue(tc.end)

			_, cmd := f.Update(keyMsg("ctrl+s"))
			if cmd != nil {
				t.Fatal("invalid form should not submit")
			}
			if !strings.Contains(f.err, tc.wantErr) {
				t.Fatalf("err = %q, want %q", f.err, tc.wantErr)
			}
			if !strings.Contains(f.View(80), tc.wantErr) {
				t.Fatal("error should be shown in the form")
			}
		})
	}
}

func TestFormSubmitsChosenVariant(t *testing.T) {
	f := newTestForm(t)
	f.inputs[fieldTitle].SetValue("On call")
	f.inputs[fieldDescription].SetValue("  pager  ")

	for range fieldVariant {
		f.Update(keyMsg("tab"))
	}
	if f.focus != fieldVariant {
		t.Fatalf("focus = %d, want variant field", f.focus)
	}
	f.Update(keyMsg("l"))

	_, cmd := f.Update(keyMsg("enter"))
	e := submitted(t, cmd)
	if e.Variant != schedule.VariantDanger {
		t.Fatalf("variant = %q, want danger", e.Variant)
	}
	if e.Title != "On call" || e.Description != "pager" {
		t.Fatalf("unexpected event %+v", e)
	}
	wantStart := time.Date(2026, time.May, 6, 9, 0, 0, 0, time.UTC)
	if !e.Start.Equal(wantStart) || !e.End.Equal(wantStart.Add(time.Hour)) {
		t.Fatalf("times = %v - %v", e.Start, e.End)
	}
}

func TestFormVariantWrapsBackwards(t *testing.T) {
	f := newTestForm(t)
	f.Update(keyMsg("shift+tab"))
	if f.focus != fieldVariant {
		t.Fatalf("focus = %d, want variant field", f.focus)
	}
	f.Update(keyMsg("h"))
	if got := schedule.Variants()[f.variant]; got != schedule.VariantDefault {
		t.Fatalf("variant = %q, want default", got)
	}
}

func TestFormEscCancels(t *testing.T) {
	f := newTestForm(t)
	_, cmd := f.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("expected cancel command")
	}
	if _, ok := cmd().(FormCancelledMsg); !ok {
		t.Fatalf("msg = %T, want FormCancelledMsg", cmd())
	}
}
