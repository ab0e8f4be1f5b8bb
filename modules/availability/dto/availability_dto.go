package dto

import (
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/entity"

	"github.com/google/uuid"
)

// SlotEntry is one chosen slot inside a day payload.
type SlotEntry struct {
	Period   entity.Period `json:"period"`
	SlotTime string        `json:"slot_time"`
}

// AvailabilityPayload is the persisted unit for one creator-day: every chosen
// slot across all four periods, flattened. AvailabilityDate is the creator's
// local calendar date, never a UTC-shifted one.
type AvailabilityPayload struct {
	CreatorID        uuid.UUID   `json:"creator_id"`
	AvailabilityDate string      `json:"availability_date"` // YYYY-MM-DD
	Slots            []SlotEntry `json:"slots"`
}

// SaveDayRequest carries the editor's per-period selections for one day.
type SaveDayRequest struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Night     []string `json:"night"`
	Overnight []string `json:"overnight"`
}

// DayResponse is the authoritative read-back shape the editor initializes from.
type DayResponse struct {
	Date      string   `json:"date"`
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Night     []string `json:"night"`
	Overnight []string `json:"overnight"`
}

// CatalogResponse is the full selectable grid for the availability editor.
type CatalogResponse struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Night     []string `json:"night"`
	Overnight []string `json:"overnight"`
}
