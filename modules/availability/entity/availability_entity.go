package entity

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/entity"

	"github.com/google/uuid"
)

// Period is one of the four fixed day segments slots are bucketed under.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodNight     Period = "night"
	PeriodOvernight Period = "overnight"
)

// AllPeriods lists the periods in display order.
var AllPeriods = []Period{PeriodMorning, PeriodAfternoon, PeriodNight, PeriodOvernight}

func (p Period) Valid() bool {
	switch p {
	case PeriodMorning, PeriodAfternoon, PeriodNight, PeriodOvernight:
		return true
	}
	return false
}

// AvailabilitySlot is one bookable half-hour slot a creator opened on a given
// local calendar day. Uniqueness key: (creator_id, availability_date, period, slot_time).
type AvailabilitySlot struct {
	CreatorID        uuid.UUID `db:"creator_id" json:"creator_id"`
	AvailabilityDate string    `db:"availability_date" json:"availability_date"` // YYYY-MM-DD, creator-local
	Period           Period    `db:"period" json:"period"`
	SlotTime         string    `db:"slot_time" json:"slot_time"` // HH:MM
	entity.BaseEntity
}
