// Package modal holds the shared "currently open modal" state.
package modal

import (
	"slices"
	"sync"

	"github.com/jask/jaskcal/internal/schedule"
)

// KeyDayEvents is the payload key carrying one day's events.
const KeyDayEvents = "dayEvents"

// Kind names what the modal shows.
type Kind string

const (
	KindAddEvent  Kind = "addEvent"
	KindDayEvents Kind = "dayEvents"
	KindViewEvent Kind = "viewEvent"
)

// Data is the untyped payload handed from opener to modal.
type Data map[string]any

// Modal describes the open modal.
type Modal struct {
	Kind  Kind
	Title string
	Data  Data
}

// Listener observes open (open=true) and close (open=false) transitions.
type Listener func(m Modal, open bool)

// Controller owns the single open modal.
type Controller struct {
	mu        sync.Mutex
	current   *Modal
	nextID    int
	listeners map[int]Listener
}

func NewController() *Controller {
	return &Controller{listeners: map[int]Listener{}}
}

// Open shows a modal, replacing whatever was open.
func (c *Controller) Open(kind Kind, title string, data Data) {
	c.mu.Lock()
	m := Modal{Kind: kind, Title: title, Data: data}
	c.current = &m
	ls := c.snapshot()
	c.mu.Unlock()
	for _, l := range ls {
		l(m, true)
	}
}

// Close dismisses the open modal. Closing with nothing open is a no-op.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return
	}
	m := *c.current
	c.current = nil
	ls := c.snapshot()
	c.mu.Unlock()
	for _, l := range ls {
		l(m, false)
	}
}

// Current returns the open modal, if any.
func (c *Controller) Current() (Modal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Modal{}, false
	}
	return *c.current, true
}

// IsOpen reports whether a modal of any kind is open.
func (c *Controller) IsOpen() bool {
	_, ok := c.Current()
	return ok
}

// Subscribe registers l and returns its unsubscribe func.
func (c *Controller) Subscribe(l Listener) func() {
	if l == nil {
		return func() {}
	}
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	c.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// caller holds mu
func (c *Controller) snapshot() []Listener {
	out := make([]Listener, 0, len(c.listeners))
	for id := 0; id < c.nextID; id++ {
		if l, ok := c.listeners[id]; ok {
			out = append(out, l)
		}
	}
	return out
}

// DayEvents reads the day's events from a payload. The result is a copy so
// callers may shadow and edit it freely.
func DayEvents(d Data) []schedule.Event {
	if d == nil {
		return nil
	}
	events, ok := d[KeyDayEvents].([]schedule.Event)
	if !ok {
		return nil
	}
	return slices.Clone(events)
}

// WithDayEvents builds the payload for the overflow modal.
func WithDayEvents(events []schedule.Event) Data {
	return Data{KeyDayEvents: slices.Clone(events)}
}
