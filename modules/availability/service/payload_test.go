package service

import (
	"testing"
	"time"

	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/entity"

	"github.com/google/uuid"
)

func TestLocalDateKeyStaysOnLocalDay(t *testing.T) {
	// 23:30 local on the 15th is already the 16th in UTC; the key must keep
	// the local calendar day.
	loc := time.FixedZone("UTC-3", -3*3600)
	late := time.Date(2024, 3, 15, 23, 30, 0, 0, loc)

	if got := LocalDateKey(late); got != "2024-03-15" {
		t.Errorf("LocalDateKey = %q, want %q", got, "2024-03-15")
	}
	if utcDay := late.UTC().Format("2006-01-02"); utcDay != "2024-03-16" {
		t.Fatalf("test setup: expected UTC day rollover, got %s", utcDay)
	}
}

func TestLocalDateKeyPadsComponents(t *testing.T) {
	d := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	if got := LocalDateKey(d); got != "2024-01-05" {
		t.Errorf("LocalDateKey = %q, want %q", got, "2024-01-05")
	}
}

func TestBuildDayPayloadFlattensPeriods(t *testing.T) {
	creatorID := uuid.New()
	date := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	payload := BuildDayPayload(creatorID, date,
		[]string{"06:00", "06:30"},
		[]string{"12:00"},
		nil,
		[]string{"00:00"},
	)

	if payload.CreatorID != creatorID {
		t.Errorf("CreatorID = %v, want %v", payload.CreatorID, creatorID)
	}
	if payload.AvailabilityDate != "2024-03-15" {
		t.Errorf("AvailabilityDate = %q, want %q", payload.AvailabilityDate, "2024-03-15")
	}
	if len(payload.Slots) != 4 {
		t.Fatalf("got %d slots, want 4", len(payload.Slots))
	}

	counts := map[entity.Period]int{}
	for _, s := range payload.Slots {
		counts[s.Period]++
	}
	if counts[entity.PeriodMorning] != 2 || counts[entity.PeriodAfternoon] != 1 || counts[entity.PeriodNight] != 0 || counts[entity.PeriodOvernight] != 1 {
		t.Errorf("period counts = %v", counts)
	}
}

func TestBuildDayPayloadAllEmpty(t *testing.T) {
	payload := BuildDayPayload(uuid.New(), time.Now(), nil, nil, nil, nil)
	if payload.Slots == nil {
		t.Error("Slots should be an empty slice, not nil")
	}
	if len(payload.Slots) != 0 {
		t.Errorf("got %d slots, want 0", len(payload.Slots))
	}
}
