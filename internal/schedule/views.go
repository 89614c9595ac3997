package schedule

import (
	"fmt"
	"slices"
	"strings"
)

// ViewName identifies a scheduler display mode.
type ViewName string

const (
	ViewDay   ViewName = "day"
	ViewWeek  ViewName = "week"
	ViewMonth ViewName = "month"
)

// Label is the tab caption for the view.
func (v ViewName) Label() string {
	switch v {
	case ViewDay:
		return "Day"
	case ViewWeek:
		return "Week"
	case ViewMonth:
		return "Month"
	default:
		return string(v)
	}
}

// ParseViewName accepts the lower-case view names.
func ParseViewName(s string) (ViewName, error) {
	v := ViewName(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case ViewDay, ViewWeek, ViewMonth:
		return v, nil
	default:
		return "", fmt.Errorf("unknown view %q", s)
	}
}

// ViewsConfig lists the tabs offered per device class, in display order.
type ViewsConfig struct {
	Desktop []ViewName
	Mobile  []ViewName
}

// DefaultViews offers every view on desktop and only the day view on mobile.
func DefaultViews() ViewsConfig {
	return ViewsConfig{
		Desktop: []ViewName{ViewDay, ViewWeek, ViewMonth},
		Mobile:  []ViewName{ViewDay},
	}
}

// For returns the sequence applicable to mobile or desktop.
func (c ViewsConfig) For(mobile bool) []ViewName {
	if mobile {
		return c.Mobile
	}
	return c.Desktop
}

// Contains reports whether v is in views.
func Contains(views []ViewName, v ViewName) bool {
	return slices.Contains(views, v)
}

// ParseViews converts names to ViewNames. Unknown and duplicate names are
// dropped and returned separately so callers can report them.
func ParseViews(names []string) (views []ViewName, rejected []string) {
	for _, n := range names {
		v, err := ParseViewName(n)
		if err != nil || slices.Contains(views, v) {
			rejected = append(rejected, n)
			continue
		}
		views = append(views, v)
	}
	return views, rejected
}
