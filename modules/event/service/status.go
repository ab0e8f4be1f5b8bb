package service

import (
	"fmt"
	"time"

	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/entity"
)

// JoinBuffer is the lead time before start during which an event is joinable.
const JoinBuffer = 15 * time.Minute

// ComputeStatus classifies an event's bookability window at the given instant.
// Pure over (start, duration, now):
//
//	now >  end                  -> finished (terminal)
//	bufferStart <= now <= end   -> available
//	now <  bufferStart          -> upcoming
func ComputeStatus(start time.Time, durationMinutes int, now time.Time) entity.EventStatus {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	bufferStart := start.Add(-JoinBuffer)

	switch {
	case now.After(end):
		return entity.StatusFinished
	case !now.Before(bufferStart):
		return entity.StatusAvailable
	default:
		return entity.StatusUpcoming
	}
}

// CountdownAt formats the time remaining until the event's join window opens.
// Empty once the window is open (or past). Minutes round up so the display
// never shows 0min while time remains.
func CountdownAt(start time.Time, now time.Time) string {
	remaining := start.Add(-JoinBuffer).Sub(now)
	if remaining <= 0 {
		return ""
	}

	minutes := int((remaining + time.Minute - 1) / time.Minute)
	hours := minutes / 60
	minutes = minutes % 60

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dmin", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dmin", minutes)
	}
}
