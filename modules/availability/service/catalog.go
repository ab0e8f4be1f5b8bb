package service

import (
	"fmt"

	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/entity"
)

// Fixed hour ranges per period. Each period spans startHour:00 through
// endHour:30 inclusive, so the last slot sits a half step before the next
// period begins (morning ends 11:30, afternoon starts 12:00).
var periodHours = map[entity.Period]struct{ start, end int }{
	entity.PeriodMorning:   {6, 11},
	entity.PeriodAfternoon: {12, 17},
	entity.PeriodNight:     {18, 23},
	entity.PeriodOvernight: {0, 5},
}

// GenerateTimeSlots returns the fixed catalog of bookable slots for a period:
// ascending HH:MM strings at 30-minute steps. Deterministic, no hidden state;
// an unknown period yields an empty catalog.
func GenerateTimeSlots(period entity.Period) []string {
	hours, ok := periodHours[period]
	if !ok {
		return nil
	}

	slots := make([]string, 0, (hours.end-hours.start+1)*2)
	for h := hours.start; h <= hours.end; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return slots
}

// IsFullSelection reports whether the selection covers the entire catalog for
// the period. Size equality is the contract: the editor only ever toggles
// values sourced from the catalog, so matching lengths means all selected.
func IsFullSelection(period entity.Period, selection []string) bool {
	catalog := GenerateTimeSlots(period)
	return len(catalog) > 0 && len(selection) == len(catalog)
}

// InCatalog reports whether the slot belongs to the period's catalog.
func InCatalog(period entity.Period, slotTime string) bool {
	for _, s := range GenerateTimeSlots(period) {
		if s == slotTime {
			return true
		}
	}
	return false
}
