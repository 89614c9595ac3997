package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0.........................",
		"row-1.........................",
		"row-2.........................",
		"row-3.........................",
		"row-4.........................",
		"row-5.........................",
		"row-6.........................",
		"row-7.........................",
		"row-8.........................",
	}, "\n")
	out := RenderPopup(base, "Popup", 30, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 30 {
			t.Fatalf("line %d width = %d, want 30", i, w)
		}
	}
}

func TestRenderModalIncludesTitle(t *testing.T) {
	out := RenderModal("", "Events", "body", 40, 12)
	if !strings.Contains(out, "Events") || !strings.Contains(out, "body") {
		t.Fatalf("title and body should both render:\n%s", out)
	}
}

func TestRenderPopupZeroSize(t *testing.T) {
	if got := RenderPopup("base", "x", 0, 10); got != "" {
		t.Fatalf("zero width should render nothing, got %q", got)
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := Truncate("standup meeting", 8); ansi.StringWidth(got) != 8 || !strings.HasSuffix(got, "…") {
		t.Fatalf("truncate = %q", got)
	}
	if got := Truncate("short", 8); got != "short" {
		t.Fatalf("short strings are untouched, got %q", got)
	}
	if got := PadRight("ab", 4); got != "ab  " {
		t.Fatalf("pad = %q", got)
	}
	if got := FitHeight("a\nb\nc", 2); got != "a\nb" {
		t.Fatalf("fit height = %q", got)
	}
}
