package service

import (
	"testing"
	"time"
)

func TestStartInstant(t *testing.T) {
	instant, ok := StartInstant("2024-06-01", "02:15:00")
	if !ok {
		t.Fatal("expected a valid instant")
	}
	want := time.Date(2024, 6, 1, 2, 15, 0, 0, time.UTC)
	if !instant.Equal(want) {
		t.Errorf("instant = %v, want %v", instant, want)
	}
}

func TestStartInstantShortTime(t *testing.T) {
	instant, ok := StartInstant("2024-06-01", "14:30")
	if !ok {
		t.Fatal("HH:MM rows should parse")
	}
	if instant.Hour() != 14 || instant.Minute() != 30 {
		t.Errorf("instant = %v, want 14:30", instant)
	}
}

func TestStartInstantMissingTimeDefaultsToMidnight(t *testing.T) {
	instant, ok := StartInstant("2024-06-01", "")
	if !ok {
		t.Fatal("missing time should default, not fail")
	}
	if instant.Hour() != 0 || instant.Minute() != 0 {
		t.Errorf("instant = %v, want midnight", instant)
	}
}

func TestStartInstantMalformed(t *testing.T) {
	cases := [][2]string{
		{"", "10:00:00"},
		{"not-a-date", "10:00:00"},
		{"2024-06-01", "garbage"},
		{"2024-13-40", "10:00:00"},
	}
	for _, c := range cases {
		if _, ok := StartInstant(c[0], c[1]); ok {
			t.Errorf("StartInstant(%q, %q): expected failure", c[0], c[1])
		}
	}
}

func TestLocalEventDayCrossesToPreviousDay(t *testing.T) {
	// 02:15 UTC on June 1st is still May 31st for a UTC-3 viewer.
	loc := time.FixedZone("UTC-3", -3*3600)

	localDay, ok := LocalEventDay("2024-06-01", "02:15:00", loc)
	if !ok {
		t.Fatal("expected a valid local day")
	}
	if y, m, d := localDay.Date(); y != 2024 || m != time.May || d != 31 {
		t.Errorf("local day = %v, want 2024-05-31", localDay)
	}
	if got := DayKey(localDay); got != "31/05/2024" {
		t.Errorf("DayKey = %q, want %q", got, "31/05/2024")
	}
}

func TestFormatDayKeyLocal(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*3600)

	if got := FormatDayKeyLocal("2024-06-01", "02:15:00", loc); got != "31/05/2024" {
		t.Errorf("FormatDayKeyLocal = %q, want %q", got, "31/05/2024")
	}
	if got := FormatDayKeyLocal("bad", "02:15:00", loc); got != PlaceholderDate {
		t.Errorf("malformed input: got %q, want %q", got, PlaceholderDate)
	}
}

func TestFormatTimeLocal(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*3600)

	if got := FormatTimeLocal("2024-06-01", "02:15:00", loc); got != "23:15" {
		t.Errorf("FormatTimeLocal = %q, want %q", got, "23:15")
	}
	if got := FormatTimeLocal("", "", loc); got != PlaceholderTime {
		t.Errorf("empty input: got %q, want %q", got, PlaceholderTime)
	}
	if got := FormatTimeLocal("2024-06-01", "nope", loc); got != PlaceholderTime {
		t.Errorf("malformed time: got %q, want %q", got, PlaceholderTime)
	}
}

func TestLoadViewerLocation(t *testing.T) {
	if loc := LoadViewerLocation(""); loc != time.UTC {
		t.Errorf("empty name: got %v, want UTC", loc)
	}
	if loc := LoadViewerLocation("Not/AZone"); loc != time.UTC {
		t.Errorf("unknown name: got %v, want UTC", loc)
	}
}
