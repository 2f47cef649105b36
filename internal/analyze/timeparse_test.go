package analyze

import (
	"testing"
	"time"
)

func TestResolveTimeRelative(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	got, ok := ResolveTime("3h", now)
	if !ok || !got.Equal(now.Add(-3*time.Hour)) {
		t.Errorf("3h -> %v, %v", got, ok)
	}

	got, ok = ResolveTime("45m", now)
	if !ok || !got.Equal(now.Add(-45*time.Minute)) {
		t.Errorf("45m -> %v, %v", got, ok)
	}
}

func TestResolveTimeHourBeatsMinute(t *testing.T) {
	// A malformed label matching both patterns resolves via the hour branch.
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	got, ok := ResolveTime("2h30m", now)
	if !ok || !got.Equal(now.Add(-2*time.Hour)) {
		t.Errorf("2h30m -> %v, want %v", got, now.Add(-2*time.Hour))
	}
}

func TestResolveTimeAbsolute(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	got, ok := ResolveTime("Jan 2, 2024 · 5:04 PM UTC", now)
	if !ok {
		t.Fatal("failed to parse nitter absolute format")
	}
	want := time.Date(2024, 1, 2, 17, 4, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got, ok = ResolveTime("Mar 5, 2023", now)
	if !ok || got.Year() != 2023 || got.Month() != time.March || got.Day() != 5 {
		t.Errorf("Mar 5, 2023 -> %v, %v", got, ok)
	}
}

func TestResolveTimeYearlessAssumesCurrentYear(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	got, ok := ResolveTime("Sep 1", now)
	if !ok {
		t.Fatal("failed to parse year-less date")
	}
	if got.Year() != 2025 || got.Month() != time.September || got.Day() != 1 {
		t.Errorf("Sep 1 -> %v", got)
	}
}

func TestResolveTimeUnparsable(t *testing.T) {
	now := time.Now()

	for _, text := range []string{"not-a-date", "", "  ", "yesterday", "über"} {
		if got, ok := ResolveTime(text, now); ok {
			t.Errorf("ResolveTime(%q) = %v, want no result", text, got)
		}
	}
}
