package dto

import (
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/entity"
)

// CreateEventRequest schedules a new live or call.
type CreateEventRequest struct {
	Type            entity.EventType `json:"type"`
	Title           string           `json:"title"`
	StartDate       string           `json:"start_date"` // YYYY-MM-DD, UTC
	StartTime       string           `json:"start_time"` // HH:MM:SS, UTC
	DurationMinutes int              `json:"duration_minutes"`
}

// EventResponse is one decorated agenda entry.
type EventResponse struct {
	ID              string             `json:"id"`
	Type            entity.EventType   `json:"type"`
	Title           string             `json:"title"`
	LocalTime       string             `json:"local_time"` // viewer-local HH:MM, or placeholder
	DurationMinutes int                `json:"duration_minutes"`
	AttendeeCount   int                `json:"attendee_count"`
	Status          entity.EventStatus `json:"status"`
	Countdown       string             `json:"countdown,omitempty"`
}

// AgendaDay groups a local calendar day's events under its display key.
type AgendaDay struct {
	DayKey string          `json:"day_key"` // DD/MM/YYYY
	Date   string          `json:"date"`    // YYYY-MM-DD, viewer-local
	Events []EventResponse `json:"events"`
}

// AgendaResponse is the full agenda view: days ascending, events ascending within each day.
type AgendaResponse struct {
	Days []AgendaDay `json:"days"`
}
