package entity

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/entity"

	"github.com/google/uuid"
)

// EventStatus is the derived lifecycle state of an event. It is recomputed
// from wall-clock time on every evaluation and never stored.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusAvailable EventStatus = "available"
	StatusFinished  EventStatus = "finished"
)

// EventType distinguishes broadcast lives from one-on-one calls.
type EventType string

const (
	EventTypeLive EventType = "live"
	EventTypeCall EventType = "call"
)

func (t EventType) Valid() bool {
	return t == EventTypeLive || t == EventTypeCall
}

// Event is a scheduled live or call. The platform backend stores the start as
// a naive UTC date + time-of-day pair; viewers bucket it into their own local
// calendar day at read time.
type Event struct {
	CreatorID       uuid.UUID `db:"creator_id" json:"creator_id"`
	Type            EventType `db:"type" json:"type"`
	Title           string    `db:"title" json:"title"`
	StartDate       string    `db:"start_date" json:"start_date"` // YYYY-MM-DD, UTC
	StartTime       string    `db:"start_time" json:"start_time"` // HH:MM:SS, UTC
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	AttendeeCount   int       `db:"attendee_count" json:"attendee_count"`
	entity.BaseEntity
}
