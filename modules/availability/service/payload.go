package service

import (
	"fmt"
	"time"

	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/dto"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/entity"

	"github.com/google/uuid"
)

// LocalDateKey formats the calendar date of t in t's own location as YYYY-MM-DD.
// The date must come from the time's own calendar fields: converting to UTC
// first would shift any evening local time into the next UTC calendar day.
func LocalDateKey(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// BuildDayPayload flattens the four per-period selections into the persisted
// unit for one creator-day. Empty selections are legal and mean "no
// availability that period".
func BuildDayPayload(creatorID uuid.UUID, date time.Time, morning, afternoon, night, overnight []string) dto.AvailabilityPayload {
	payload := dto.AvailabilityPayload{
		CreatorID:        creatorID,
		AvailabilityDate: LocalDateKey(date),
		Slots:            []dto.SlotEntry{},
	}

	appendSlots := func(period entity.Period, slots []string) {
		for _, slot := range slots {
			payload.Slots = append(payload.Slots, dto.SlotEntry{Period: period, SlotTime: slot})
		}
	}

	appendSlots(entity.PeriodMorning, morning)
	appendSlots(entity.PeriodAfternoon, afternoon)
	appendSlots(entity.PeriodNight, night)
	appendSlots(entity.PeriodOvernight, overnight)

	return payload
}
