package ics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcal/internal/schedule"
)

func feed(events ...string) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//jaskcal//test//EN",
	}
	lines = append(lines, events...)
	lines = append(lines, "END:VCALENDAR", "")
	return strings.Join(lines, "\r\n")
}

var sample = feed(
	"BEGIN:VEVENT",
	"UID:standup@example.com",
	"DTSTAMP:20260301T000000Z",
	"DTSTART:20260310T090000Z",
	"DTEND:20260310T091500Z",
	"SUMMARY:Standup",
	"DESCRIPTION:Daily sync",
	"CATEGORIES:work,success",
	"END:VEVENT",
	"BEGIN:VEVENT",
	"DTSTAMP:20260301T000000Z",
	"DTSTART:20260311T090000Z",
	"SUMMARY:No uid",
	"END:VEVENT",
	"BEGIN:VEVENT",
	"UID:early@example.com",
	"DTSTAMP:20260301T000000Z",
	"DTSTART:20260309T070000Z",
	"SUMMARY:Gym",
	"END:VEVENT",
)

func TestParseMapsFieldsAndSkipsMissingUID(t *testing.T) {
	t.Parallel()

	events, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.Equal(t, "early@example.com", events[0].ID)
	require.Equal(t, schedule.VariantDefault, events[0].Variant)

	standup := events[1]
	require.Equal(t, "standup@example.com", standup.ID)
	require.Equal(t, "Standup", standup.Title)
	require.Equal(t, "Daily sync", standup.Description)
	require.True(t, standup.Start.Equal(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)))
	require.True(t, standup.End.Equal(time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)))
	require.Equal(t, schedule.VariantSuccess, standup.Variant)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cal.ics")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	events, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, events, 2)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.ics"))
	require.Error(t, err)
}

func TestLoadFromURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/gone" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte(sample))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	events, err := Load(ctx, srv.URL+"/cal.ics?token=secret")
	require.NoError(t, err)
	require.Len(t, events, 2)

	_, err = Load(ctx, srv.URL+"/gone?token=secret")
	require.Error(t, err)
	require.NotContains(t, err.Error(), "secret")
}

func TestLoadEmptySource(t *testing.T) {
	t.Parallel()

	events, err := Load(context.Background(), "  ")
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestParseDerivesEndFromDuration(t *testing.T) {
	t.Parallel()

	events, err := Parse(strings.NewReader(feed(
		"BEGIN:VEVENT",
		"UID:review@example.com",
		"DTSTAMP:20260301T000000Z",
		"DTSTART:20260312T140000Z",
		"DURATION:PT1H30M",
		"SUMMARY:Review",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:offsite@example.com",
		"DTSTAMP:20260301T000000Z",
		"DTSTART:20260313T090000Z",
		"DURATION:P1DT2H",
		"SUMMARY:Offsite",
		"END:VEVENT",
	)))
	require.NoError(t, err)
	require.Len(t, events, 2)

	review := events[0]
	require.Equal(t, "review@example.com", review.ID)
	require.Equal(t, 90*time.Minute, review.End.Sub(review.Start))

	offsite := events[1]
	require.Equal(t, time.Date(2026, time.March, 14, 11, 0, 0, 0, time.UTC), offsite.End.UTC())
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        string
		wantDays  int
		wantClock time.Duration
		wantErr   bool
	}{
		{in: "PT15M", wantClock: 15 * time.Minute},
		{in: "PT1H30M", wantClock: 90 * time.Minute},
		{in: "P1D", wantDays: 1},
		{in: "P2W", wantDays: 14},
		{in: "P1DT12H", wantDays: 1, wantClock: 12 * time.Hour},
		{in: "+PT45S", wantClock: 45 * time.Second},
		{in: "-PT10M", wantClock: -10 * time.Minute},
		{in: "pt2h", wantClock: 2 * time.Hour},
		{in: "", wantErr: true},
		{in: "P", wantErr: true},
		{in: "1H", wantErr: true},
		{in: "PT5", wantErr: true},
		{in: "P5H", wantErr: true},
		{in: "PTT1H", wantErr: true},
	}
	for _, tc := range tests {
		days, clock, err := parseDuration(tc.in)
		if tc.wantErr {
			require.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.wantDays, days, tc.in)
		require.Equal(t, tc.wantClock, clock, tc.in)
	}
}
