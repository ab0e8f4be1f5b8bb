package service

import (
	"reflect"
	"testing"

	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/entity"
)

func TestGenerateTimeSlotsPerPeriod(t *testing.T) {
	tests := []struct {
		period entity.Period
		first  string
		last   string
	}{
		{entity.PeriodMorning, "06:00", "11:30"},
		{entity.PeriodAfternoon, "12:00", "17:30"},
		{entity.PeriodNight, "18:00", "23:30"},
		{entity.PeriodOvernight, "00:00", "05:30"},
	}

	for _, tt := range tests {
		slots := GenerateTimeSlots(tt.period)
		if len(slots) != 12 {
			t.Fatalf("period %s: got %d slots, want 12", tt.period, len(slots))
		}
		if slots[0] != tt.first {
			t.Errorf("period %s: first slot = %q, want %q", tt.period, slots[0], tt.first)
		}
		if slots[len(slots)-1] != tt.last {
			t.Errorf("period %s: last slot = %q, want %q", tt.period, slots[len(slots)-1], tt.last)
		}
		for i := 1; i < len(slots); i++ {
			if slots[i] <= slots[i-1] {
				t.Errorf("period %s: slots not ascending at %d: %q <= %q", tt.period, i, slots[i], slots[i-1])
			}
		}
	}
}

func TestGenerateTimeSlotsMorningExact(t *testing.T) {
	want := []string{
		"06:00", "06:30", "07:00", "07:30", "08:00", "08:30",
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	}
	got := GenerateTimeSlots(entity.PeriodMorning)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("morning catalog = %v, want %v", got, want)
	}
}

func TestGenerateTimeSlotsDeterministic(t *testing.T) {
	first := GenerateTimeSlots(entity.PeriodNight)
	second := GenerateTimeSlots(entity.PeriodNight)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("catalog not deterministic: %v vs %v", first, second)
	}
}

func TestGenerateTimeSlotsUnknownPeriod(t *testing.T) {
	if slots := GenerateTimeSlots(entity.Period("brunch")); slots != nil {
		t.Errorf("unknown period: got %v, want nil", slots)
	}
}

func TestIsFullSelection(t *testing.T) {
	for _, period := range entity.AllPeriods {
		catalog := GenerateTimeSlots(period)

		if !IsFullSelection(period, catalog) {
			t.Errorf("period %s: full catalog selection should count as select-all", period)
		}
		if IsFullSelection(period, catalog[:11]) {
			t.Errorf("period %s: partial selection should not count as select-all", period)
		}
		if IsFullSelection(period, nil) {
			t.Errorf("period %s: empty selection should not count as select-all", period)
		}
	}

	if IsFullSelection(entity.Period("brunch"), nil) {
		t.Error("unknown period should never count as select-all")
	}
}

func TestInCatalog(t *testing.T) {
	if !InCatalog(entity.PeriodOvernight, "00:30") {
		t.Error("00:30 should be in the overnight catalog")
	}
	if InCatalog(entity.PeriodOvernight, "06:00") {
		t.Error("06:00 belongs to morning, not overnight")
	}
	if InCatalog(entity.PeriodMorning, "06:15") {
		t.Error("slots off the half-hour grid are not in any catalog")
	}
}
