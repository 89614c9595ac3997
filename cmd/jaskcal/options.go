package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/jask/jaskcal/internal/config"
	"github.com/jask/jaskcal/internal/schedule"
	"github.com/jask/jaskcal/internal/tui"
)

// buildOptions maps the loaded config onto scheduler options. Bad values are
// logged and replaced by defaults.
func buildOptions(cfg config.Config) tui.Options {
	opts := tui.Options{
		Views: schedule.ViewsConfig{
			Desktop: parseViews("desktop", cfg.Views.Desktop),
			Mobile:  parseViews("mobile", cfg.Views.Mobile),
		},
		StopDayEventSummary: cfg.UI.StopDayEventSummary,
		DateFormat:          strings.TrimSpace(cfg.UI.DateFormat),
		CellWidth:           cfg.UI.CellWidth,
		MaxEventsPerCell:    cfg.UI.MaxEventsPerCell,
		Styles: tui.Styles{
			Tabs:     tui.ColorStyle(cfg.Styles.Tabs),
			AddEvent: tui.ColorStyle(cfg.Styles.AddEvent),
			Prev:     tui.ColorStyle(cfg.Styles.Prev),
			Next:     tui.ColorStyle(cfg.Styles.Next),
			Event:    tui.ColorStyle(cfg.Styles.Event),
		},
		Slots: tui.Slots{AddEventTitle: strings.TrimSpace(cfg.UI.AddEventTitle)},
	}

	if wd, ok := schedule.ParseWeekday(cfg.UI.WeekStartsOn); ok {
		opts.WeekStartsOn = &wd
	} else if cfg.UI.WeekStartsOn != "" {
		slog.Warn("unknown week start, using monday", "value", cfg.UI.WeekStartsOn)
	}

	opts.Location = time.Local
	if tz := strings.TrimSpace(cfg.UI.Timezone); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			slog.Warn("using local timezone", "timezone", tz, "error", err)
		} else {
			opts.Location = loc
		}
	}
	return opts
}

// parseViews never returns nil so an explicitly empty list stays empty.
func parseViews(class string, names []string) []schedule.ViewName {
	views, rejected := schedule.ParseViews(names)
	for _, name := range rejected {
		slog.Warn("dropping view", "class", class, "view", name)
	}
	if views == nil {
		views = []schedule.ViewName{}
	}
	return views
}
