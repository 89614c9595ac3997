package schedule

import (
	"sort"
	"strings"
	"time"
)

// Variant selects the colour treatment of an event row.
type Variant string

const (
	VariantPrimary Variant = "primary"
	VariantDanger  Variant = "danger"
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantDefault Variant = "default"
)

// Variants returns every variant in form cycling order.
func Variants() []Variant {
	return []Variant{VariantPrimary, VariantDanger, VariantSuccess, VariantWarning, VariantDefault}
}

// ParseVariant maps a free-form name onto a Variant. Unknown names are not ok.
func ParseVariant(s string) (Variant, bool) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Variants() {
		if v == known {
			return v, true
		}
	}
	return VariantDefault, false
}

// Event represents a single scheduled event.
type Event struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Variant     Variant
}

// OccursOn reports whether the event overlaps the calendar day containing day.
func (e Event) OccursOn(day time.Time) bool {
	from := StartOfDay(day)
	to := from.AddDate(0, 0, 1)
	end := e.End
	if end.IsZero() || end.Before(e.Start) {
		end = e.Start
	}
	if end.Equal(e.Start) {
		return !e.Start.Before(from) && e.Start.Before(to)
	}
	return e.Start.Before(to) && end.After(from)
}

// TimeRange renders "15:04-16:00" in the event's own location.
func (e Event) TimeRange() string {
	if e.End.IsZero() || e.End.Equal(e.Start) {
		return e.Start.Format("15:04")
	}
	return e.Start.Format("15:04") + "-" + e.End.Format("15:04")
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the first day of the week containing t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SortByStart orders events by start time, then title, keeping ties stable.
func SortByStart(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Start.Equal(events[j].Start) {
			return events[i].Start.Before(events[j].Start)
		}
		return events[i].Title < events[j].Title
	})
}

// OnDay filters events to those occurring on day, preserving input order.
func OnDay(events []Event, day time.Time) []Event {
	var out []Event
	for _, e := range events {
		if e.OccursOn(day) {
			out = append(out, e)
		}
	}
	return out
}

// ParseWeekday accepts full or three-letter English day names.
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, true
		}
	}
	return time.Monday, false
}
