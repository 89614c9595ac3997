// Package provider owns the scheduler's event list for the life of the process.
package provider

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jask/jaskcal/internal/schedule"
)

// Filters narrows List. Zero values mean no filter.
type Filters struct {
	From    time.Time // inclusive
	To      time.Time // exclusive
	Variant schedule.Variant
}

// Store is an in-memory event list kept in start order.
type Store struct {
	mu     sync.RWMutex
	events []schedule.Event
}

// New returns a store seeded with events.
func New(events []schedule.Event) *Store {
	s := &Store{}
	s.Replace(events)
	return s
}

// Replace swaps the whole list, assigning ids where missing.
func (s *Store) Replace(events []schedule.Event) {
	next := slices.Clone(events)
	for i := range next {
		if next[i].ID == "" {
			next[i].ID = uuid.NewString()
		}
		if next[i].Variant == "" {
			next[i].Variant = schedule.VariantDefault
		}
	}
	schedule.SortByStart(next)
	s.mu.Lock()
	s.events = next
	s.mu.Unlock()
}

// Add inserts e and returns it with its id filled in.
func (s *Store) Add(e schedule.Event) (schedule.Event, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Variant == "" {
		e.Variant = schedule.VariantDefault
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(e.ID) >= 0 {
		return schedule.Event{}, fmt.Errorf("add event: id %s already exists", e.ID)
	}
	s.events = append(s.events, e)
	schedule.SortByStart(s.events)
	return e, nil
}

// Update replaces the event with the same id.
func (s *Store) Update(e schedule.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(e.ID)
	if idx < 0 {
		return fmt.Errorf("update event: %s not found", e.ID)
	}
	s.events[idx] = e
	schedule.SortByStart(s.events)
	return nil
}

// Delete removes the event with id. It reports whether anything was removed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.events = slices.Delete(s.events, idx, idx+1)
	return true
}

// Get looks up a single event.
func (s *Store) Get(id string) (schedule.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return schedule.Event{}, false
	}
	return s.events[idx], true
}

// Events returns a copy of every event.
func (s *Store) Events() []schedule.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

// Len reports the number of events.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// List returns events matching f in start order.
func (s *Store) List(f Filters) []schedule.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []schedule.Event
	for _, e := range s.events {
		if f.Variant != "" && e.Variant != f.Variant {
			continue
		}
		if !f.From.IsZero() || !f.To.IsZero() {
			end := e.End
			if end.IsZero() || end.Before(e.Start) {
				end = e.Start
			}
			if !f.To.IsZero() && !e.Start.Before(f.To) {
				continue
			}
			if !f.From.IsZero() && end.Before(f.From) {
				continue
			}
			if !f.From.IsZero() && end.Equal(f.From) && end.After(e.Start) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// OnDay returns events occurring on day in start order.
func (s *Store) OnDay(day time.Time) []schedule.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return schedule.OnDay(s.events, day)
}

// caller holds mu
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.events, func(e schedule.Event) bool { return e.ID == id })
}
