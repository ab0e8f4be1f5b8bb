package service

import (
	"time"
)

// Placeholders returned when a stored timestamp cannot be parsed. The display
// never crashes on malformed data; callers must not treat these as retryable
// errors.
const (
	PlaceholderTime = "--:--"
	PlaceholderDate = "--/--/----"
)

const dayKeyLayout = "02/01/2006"

// StartInstant combines the backend's naive UTC date + time-of-day pair into
// an absolute instant. ok is false when the pair is absent or unparseable.
func StartInstant(startDate, startTime string) (time.Time, bool) {
	if startDate == "" {
		return time.Time{}, false
	}
	if startTime == "" {
		startTime = "00:00:00"
	}

	t, err := time.Parse("2006-01-02 15:04:05", startDate+" "+startTime)
	if err != nil {
		// Some backend rows carry HH:MM only.
		t, err = time.Parse("2006-01-02 15:04", startDate+" "+startTime)
		if err != nil {
			return time.Time{}, false
		}
	}
	return t, true
}

// LocalEventDay buckets an event into the viewer's local calendar day. An
// event stored under UTC's next date ("23:00 local") must still appear under
// the viewer's "today", so grouping always converts before truncating.
func LocalEventDay(startDate, startTime string, loc *time.Location) (time.Time, bool) {
	instant, ok := StartInstant(startDate, startTime)
	if !ok {
		return time.Time{}, false
	}

	local := instant.In(loc)
	year, month, day := local.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc), true
}

// DayKey returns the DD/MM/YYYY display key for a local day.
func DayKey(localDay time.Time) string {
	return localDay.Format(dayKeyLayout)
}

// FormatDayKeyLocal is the placeholder-safe variant used directly by views.
func FormatDayKeyLocal(startDate, startTime string, loc *time.Location) string {
	localDay, ok := LocalEventDay(startDate, startTime, loc)
	if !ok {
		return PlaceholderDate
	}
	return DayKey(localDay)
}

// FormatTimeLocal renders the event's start as viewer-local HH:MM, degrading
// to a placeholder on malformed input instead of propagating an error.
func FormatTimeLocal(startDate, startTime string, loc *time.Location) string {
	instant, ok := StartInstant(startDate, startTime)
	if !ok {
		return PlaceholderTime
	}
	return instant.In(loc).Format("15:04")
}

// LoadViewerLocation resolves a stored IANA zone name, falling back to UTC
// rather than erroring when the name is empty or unknown.
func LoadViewerLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
