package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcal/internal/schedule"
)

var base = time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

func TestStoreKeepsStartOrderAndAssignsIDs(t *testing.T) {
	t.Parallel()

	s := New([]schedule.Event{
		{Title: "later", Start: base.Add(10 * time.Hour)},
		{Title: "earlier", Start: base.Add(8 * time.Hour)},
	})
	events := s.Events()
	require.Len(t, events, 2)
	require.Equal(t, "earlier", events[0].Title)
	require.NotEmpty(t, events[0].ID)
	require.Equal(t, schedule.VariantDefault, events[0].Variant)

	added, err := s.Add(schedule.Event{Title: "first", Start: base.Add(7 * time.Hour), Variant: schedule.VariantDanger})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)
	require.Equal(t, "first", s.Events()[0].Title)

	_, err = s.Add(schedule.Event{ID: added.ID, Title: "dup"})
	require.Error(t, err)
}

func TestStoreUpdateAndDelete(t *testing.T) {
	t.Parallel()

	s := New([]schedule.Event{{ID: "a", Title: "A", Start: base}, {ID: "b", Title: "B", Start: base.Add(time.Hour)}})

	require.NoError(t, s.Update(schedule.Event{ID: "a", Title: "A2", Start: base.Add(2 * time.Hour)}))
	require.Equal(t, []string{"b", "a"}, ids(s.Events()))
	require.Error(t, s.Update(schedule.Event{ID: "missing"}))

	require.True(t, s.Delete("b"))
	require.False(t, s.Delete("b"))
	require.Equal(t, 1, s.Len())

	got, ok := s.Get("a")
	require.True(t, ok)
	require.Equal(t, "A2", got.Title)
}

func TestStoreEventsIsACopy(t *testing.T) {
	t.Parallel()

	s := New([]schedule.Event{{ID: "a", Title: "A", Start: base}})
	events := s.Events()
	events[0].Title = "mutated"
	got, _ := s.Get("a")
	require.Equal(t, "A", got.Title)
}

func TestStoreListAndOnDay(t *testing.T) {
	t.Parallel()

	s := New([]schedule.Event{
		{ID: "mon", Start: base.Add(9 * time.Hour), End: base.Add(10 * time.Hour), Variant: schedule.VariantSuccess},
		{ID: "tue", Start: base.Add(33 * time.Hour), End: base.Add(34 * time.Hour)},
		{ID: "overnight", Start: base.Add(23 * time.Hour), End: base.Add(25 * time.Hour)},
	})

	require.Equal(t, []string{"mon", "overnight"}, ids(s.OnDay(base)))
	require.Equal(t, []string{"overnight", "tue"}, ids(s.OnDay(base.AddDate(0, 0, 1))))

	week := s.List(Filters{From: base, To: base.AddDate(0, 0, 7)})
	require.Len(t, week, 3)

	tuesdayOn := s.List(Filters{From: base.AddDate(0, 0, 1)})
	require.Equal(t, []string{"overnight", "tue"}, ids(tuesdayOn))

	success := s.List(Filters{Variant: schedule.VariantSuccess})
	require.Equal(t, []string{"mon"}, ids(success))
}

func ids(events []schedule.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}
