// Package device tracks whether the viewport is phone-sized or desktop-sized.
package device

import "sync"

// Breakpoint is the widest viewport, in units, still treated as mobile.
const Breakpoint = 768

// Class is the device class derived from viewport width.
type Class int

const (
	Desktop Class = iota
	Mobile
)

func (c Class) String() string {
	if c == Mobile {
		return "mobile"
	}
	return "desktop"
}

// ClassFor maps a viewport width in units onto a device class.
func ClassFor(units int) Class {
	if units <= Breakpoint {
		return Mobile
	}
	return Desktop
}

// Listener receives the new class after a change.
type Listener func(Class)

// Signal holds the current device class and notifies listeners when it flips.
type Signal struct {
	mu        sync.Mutex
	class     Class
	nextID    int
	listeners map[int]Listener
}

// NewSignal seeds the signal from an initial width without notifying anyone.
func NewSignal(units int) *Signal {
	return &Signal{
		class:     ClassFor(units),
		listeners: map[int]Listener{},
	}
}

// Class returns the current device class.
func (s *Signal) Class() Class {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.class
}

// Update takes a new width. Listeners run only when the class changes,
// outside the lock, and Update reports whether that happened.
func (s *Signal) Update(units int) bool {
	s.mu.Lock()
	next := ClassFor(units)
	if next == s.class {
		s.mu.Unlock()
		return false
	}
	s.class = next
	listeners := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if l, ok := s.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return true
}

// Subscribe registers l and returns the func that removes it. Calling the
// returned func more than once is harmless.
func (s *Signal) Subscribe(l Listener) func() {
	if l == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Len reports the number of live listeners.
func (s *Signal) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}
