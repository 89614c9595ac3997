package modal

import (
	"testing"
	"time"

	"github.com/jask/jaskcal/internal/schedule"
)

func TestControllerLifecycle(t *testing.T) {
	c := NewController()
	if c.IsOpen() {
		t.Fatalf("new controller should be closed")
	}

	type transition struct {
		kind Kind
		open bool
	}
	var seen []transition
	unsubscribe := c.Subscribe(func(m Modal, open bool) {
		seen = append(seen, transition{m.Kind, open})
	})

	c.Open(KindAddEvent, "Add Event", nil)
	c.Open(KindDayEvents, "Events", Data{})
	m, ok := c.Current()
	if !ok || m.Kind != KindDayEvents {
		t.Fatalf("current = %+v %v", m, ok)
	}
	c.Close()
	c.Close()
	unsubscribe()
	c.Open(KindAddEvent, "", nil)

	want := []transition{{KindAddEvent, true}, {KindDayEvents, true}, {KindDayEvents, false}}
	if len(seen) != len(want) {
		t.Fatalf("transitions = %v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("transition %d = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestDayEventsReturnsCopy(t *testing.T) {
	src := []schedule.Event{{ID: "a", Start: time.Now()}, {ID: "b"}}
	data := WithDayEvents(src)
	got := DayEvents(data)
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	got[0].ID = "changed"
	if src[0].ID != "a" || len(DayEvents(data)) != 2 {
		t.Fatalf("payload was mutated through the copy")
	}
}

func TestDayEventsAbsentOrMalformed(t *testing.T) {
	if DayEvents(nil) != nil {
		t.Fatalf("nil data should give nil events")
	}
	if DayEvents(Data{KeyDayEvents: "nope"}) != nil {
		t.Fatalf("wrong type should give nil events")
	}
}
