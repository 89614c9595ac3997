package tui

import (
	"slices"

	"github.com/jask/jaskcal/internal/device"
	"github.com/jask/jaskcal/internal/schedule"
)

// Selector tracks the active view. The active view is always one of the
// applicable views, or empty when none are offered.
type Selector struct {
	views  schedule.ViewsConfig
	class  device.Class
	active schedule.ViewName
}

func NewSelector(views schedule.ViewsConfig, class device.Class) *Selector {
	s := &Selector{views: views, class: class}
	if offered := s.Views(); len(offered) > 0 {
		s.active = offered[0]
	}
	return s
}

// Views returns the tabs offered for the current device class.
func (s *Selector) Views() []schedule.ViewName {
	return slices.Clone(s.views.For(s.class == device.Mobile))
}

func (s *Selector) Active() schedule.ViewName { return s.active }

func (s *Selector) Class() device.Class { return s.class }

// Select activates v if it is offered.
func (s *Selector) Select(v schedule.ViewName) bool {
	if !schedule.Contains(s.views.For(s.class == device.Mobile), v) {
		return false
	}
	s.active = v
	return true
}

// SelectIndex activates the i-th offered tab.
func (s *Selector) SelectIndex(i int) bool {
	offered := s.views.For(s.class == device.Mobile)
	if i < 0 || i >= len(offered) {
		return false
	}
	s.active = offered[i]
	return true
}

// Cycle moves delta tabs along the offered list, wrapping at the ends.
func (s *Selector) Cycle(delta int) {
	offered := s.views.For(s.class == device.Mobile)
	if len(offered) == 0 {
		return
	}
	idx := slices.Index(offered, s.active)
	if idx < 0 {
		idx = 0
	}
	n := len(offered)
	s.active = offered[((idx+delta)%n+n)%n]
}

// SetClass switches the device class and resets the active view to the first
// offered tab if the current one is no longer offered. It reports whether the
// active view changed.
func (s *Selector) SetClass(c device.Class) bool {
	s.class = c
	offered := s.views.For(c == device.Mobile)
	if schedule.Contains(offered, s.active) {
		return false
	}
	prev := s.active
	s.active = ""
	if len(offered) > 0 {
		s.active = offered[0]
	}
	return prev != s.active
}
