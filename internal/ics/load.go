// Package ics imports events from iCalendar feeds. Recurrence rules are kept
// as-is; only the first occurrence of a recurring event is shown.
package ics

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/pkg/errors"

	"github.com/jask/jaskcal/internal/schedule"
)

const maxBodyBytes = 10 << 20

var httpClient = &http.Client{Timeout: 15 * time.Second}

// Load reads a feed from a local path or an http(s) URL.
func Load(ctx context.Context, source string) ([]schedule.Event, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, nil
	}
	body, err := read(ctx, source)
	if err != nil {
		return nil, err
	}
	events, err := Parse(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", redact(source))
	}
	slog.Info("ics loaded", "source", redact(source), "event_count", len(events))
	return events, nil
}

func read(ctx context.Context, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		body, err := os.ReadFile(source)
		if err != nil {
			return nil, errors.Wrap(err, "read ics file")
		}
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build ics request")
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", redact(source))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch %s: unexpected status %s", redact(source), resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", redact(source))
	}
	return body, nil
}

// Parse converts every VEVENT with a UID into an Event. Events missing a UID
// or a start time are skipped.
func Parse(r io.Reader) ([]schedule.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse calendar")
	}
	out := make([]schedule.Event, 0)
	for _, ve := range cal.Events() {
		e, err := convert(ve)
		if err != nil {
			slog.Warn("skipping vevent", "error", err)
			continue
		}
		out = append(out, e)
	}
	schedule.SortByStart(out)
	return out, nil
}

func convert(ve *ical.VEvent) (schedule.Event, error) {
	var e schedule.Event
	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || strings.TrimSpace(uid.Value) == "" {
		return e, errors.New("missing UID")
	}
	e.ID = uid.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		e.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		e.Description = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return e, errors.Wrapf(err, "event %s: start", e.ID)
	}
	e.Start = start
	end, err := eventEnd(ve, start)
	if err != nil {
		slog.Warn("ignoring event end", "uid", e.ID, "error", err)
	}
	e.End = end

	e.Variant = schedule.VariantDefault
	for _, p := range ve.GetProperties(ical.ComponentPropertyCategories) {
		if v, ok := variantFromCategories(p.Value); ok {
			e.Variant = v
			break
		}
	}
	return e, nil
}

// eventEnd prefers DTEND and falls back to DURATION. With neither the event
// has no length and the zero time is returned.
func eventEnd(ve *ical.VEvent, start time.Time) (time.Time, error) {
	if ve.GetProperty(ical.ComponentPropertyDtEnd) != nil {
		end, err := ve.GetEndAt()
		if err != nil {
			return time.Time{}, errors.Wrap(err, "dtend")
		}
		return end, nil
	}
	p := ve.GetProperty(ical.ComponentPropertyDuration)
	if p == nil {
		return time.Time{}, nil
	}
	days, clock, err := parseDuration(p.Value)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, days).Add(clock), nil
}

// parseDuration reads an RFC 5545 dur-value such as PT1H30M, P2D or -P1W.
// Weeks and days are returned as calendar days so DST shifts are respected.
func parseDuration(s string) (days int, clock time.Duration, err error) {
	raw := s
	s = strings.ToUpper(strings.TrimSpace(s))
	sign := 1
	switch {
	case strings.HasPrefix(s, "-"):
		sign, s = -1, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if !strings.HasPrefix(s, "P") || len(s) < 3 {
		return 0, 0, errors.Errorf("invalid duration %q", raw)
	}

	inTime := false
	num := ""
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
			continue
		case r == 'T' && !inTime && num == "":
			inTime = true
			continue
		}
		if num == "" {
			return 0, 0, errors.Errorf("invalid duration %q", raw)
		}
		n, convErr := strconv.Atoi(num)
		if convErr != nil {
			return 0, 0, errors.Wrapf(convErr, "invalid duration %q", raw)
		}
		num = ""
		switch {
		case r == 'W' && !inTime:
			days += 7 * n
		case r == 'D' && !inTime:
			days += n
		case r == 'H' && inTime:
			clock += time.Duration(n) * time.Hour
		case r == 'M' && inTime:
			clock += time.Duration(n) * time.Minute
		case r == 'S' && inTime:
			clock += time.Duration(n) * time.Second
		default:
			return 0, 0, errors.Errorf("invalid duration %q", raw)
		}
	}
	if num != "" {
		return 0, 0, errors.Errorf("invalid duration %q", raw)
	}
	return sign * days, time.Duration(sign) * clock, nil
}

func variantFromCategories(value string) (schedule.Variant, bool) {
	for _, c := range strings.Split(value, ",") {
		if v, ok := schedule.ParseVariant(c); ok {
			return v, true
		}
	}
	return schedule.VariantDefault, false
}

// redact strips query strings, which often carry private feed tokens.
func redact(source string) string {
	if i := strings.IndexByte(source, '?'); i >= 0 {
		return source[:i] + "?…"
	}
	return source
}
