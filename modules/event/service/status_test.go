package service

import (
	"testing"
	"time"

	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/entity"
)

var baseNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestComputeStatus(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     entity.EventStatus
	}{
		{"well before buffer", baseNow.Add(20 * time.Minute), 60, entity.StatusUpcoming},
		{"inside join buffer", baseNow.Add(10 * time.Minute), 60, entity.StatusAvailable},
		{"exactly at buffer open", baseNow.Add(JoinBuffer), 60, entity.StatusAvailable},
		{"in progress", baseNow.Add(-30 * time.Minute), 60, entity.StatusAvailable},
		{"exactly at end", baseNow.Add(-60 * time.Minute), 60, entity.StatusAvailable},
		{"just past end", baseNow.Add(-61 * time.Minute), 60, entity.StatusFinished},
		{"long finished", baseNow.Add(-24 * time.Hour), 30, entity.StatusFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStatus(tt.start, tt.duration, baseNow)
			if got != tt.want {
				t.Errorf("ComputeStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComputeStatusFinishedIsTerminal(t *testing.T) {
	start := baseNow.Add(-2 * time.Hour)
	for _, later := range []time.Time{baseNow, baseNow.Add(time.Hour), baseNow.Add(48 * time.Hour)} {
		if got := ComputeStatus(start, 30, later); got != entity.StatusFinished {
			t.Errorf("at %v: got %q, want finished", later, got)
		}
	}
}

func TestCountdownAt(t *testing.T) {
	tests := []struct {
		name        string
		untilBuffer time.Duration
		want        string
	}{
		{"hours and minutes", 95 * time.Minute, "1h 35min"},
		{"exact hour", 60 * time.Minute, "1h"},
		{"minutes only", 5 * time.Minute, "5min"},
		{"window already open", 0, ""},
		{"window long open", -time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := baseNow.Add(JoinBuffer + tt.untilBuffer)
			if got := CountdownAt(start, baseNow); got != tt.want {
				t.Errorf("CountdownAt = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountdownAtRoundsUp(t *testing.T) {
	// 30 seconds remaining must read 1min, never 0min.
	start := baseNow.Add(JoinBuffer + 30*time.Second)
	if got := CountdownAt(start, baseNow); got != "1min" {
		t.Errorf("CountdownAt = %q, want %q", got, "1min")
	}

	// 60m30s rounds to 61 minutes, shown as 1h 1min.
	start = baseNow.Add(JoinBuffer + 60*time.Minute + 30*time.Second)
	if got := CountdownAt(start, baseNow); got != "1h 1min" {
		t.Errorf("CountdownAt = %q, want %q", got, "1h 1min")
	}
}
