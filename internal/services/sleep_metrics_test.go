package services

import (
	"testing"
	"time"

	"github.com/shiftcoach/shiftcoach/internal/models"
)

func session(start time.Time, hours float64, sleepType string) models.SleepSession {
	return models.SleepSession{
		StartAt: start,
		EndAt:   start.Add(time.Duration(hours * float64(time.Hour))),
		Type:    sleepType,
		Quality: 3,
	}
}

func TestSleepDebtHours(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		actual float64
		want   float64
	}{
		{name: "short sleep accrues debt", target: 7.5, actual: 5, want: 2.5},
		{name: "surplus clamps to zero", target: 7.5, actual: 9, want: 0},
		{name: "zero target falls back to default", target: 0, actual: 5, want: 2.5},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := SleepDebtHours(testCase.target, testCase.actual); got != testCase.want {
				t.Fatalf("SleepDebtHours = %v, want %v", got, testCase.want)
			}
		})
	}
}

func TestDebtEnergyPenalty(t *testing.T) {
	if got := DebtEnergyPenalty(2.5); got != 12.5 {
		t.Fatalf("penalty for 2.5h debt = %v, want 12.5", got)
	}
	if got := DebtEnergyPenalty(10); got != 30 {
		t.Fatalf("penalty must cap at 30, got %v", got)
	}
	if got := DebtEnergyPenalty(0); got != 0 {
		t.Fatalf("no debt means no penalty, got %v", got)
	}
}

func TestSleptHoursInClipsToWindow(t *testing.T) {
	from := date(2024, time.May, 1)
	to := from.Add(24 * time.Hour)

	sessions := []models.SleepSession{
		// Fully inside.
		session(from.Add(2*time.Hour), 6, models.SleepTypeMain),
		// Starts before the window, only the overlap counts.
		session(from.Add(-2*time.Hour), 4, models.SleepTypeNap),
		// Fully outside.
		session(to.Add(1*time.Hour), 3, models.SleepTypeMain),
	}

	if got := SleptHoursIn(sessions, from, to); got != 8 {
		t.Fatalf("SleptHoursIn = %v, want 8", got)
	}
}

func TestWakeTimeConsistency(t *testing.T) {
	base := date(2024, time.May, 1)

	t.Run("identical wake times score 100", func(t *testing.T) {
		sessions := []models.SleepSession{
			session(base.Add(-8*time.Hour).Add(7*time.Hour), 8, models.SleepTypeMain),
			session(base.AddDate(0, 0, 1).Add(-8*time.Hour).Add(7*time.Hour), 8, models.SleepTypeMain),
			session(base.AddDate(0, 0, 2).Add(-8*time.Hour).Add(7*time.Hour), 8, models.SleepTypeMain),
		}
		got, ok := WakeTimeConsistency(sessions, time.UTC)
		if !ok {
			t.Fatalf("expected a consistency value")
		}
		if got != 100 {
			t.Fatalf("consistency = %d, want 100", got)
		}
	})

	t.Run("fewer than two samples is unavailable", func(t *testing.T) {
		sessions := []models.SleepSession{
			session(base, 8, models.SleepTypeMain),
			session(base, 1, models.SleepTypeNap),
		}
		if _, ok := WakeTimeConsistency(sessions, time.UTC); ok {
			t.Fatalf("expected unavailable with a single main sleep")
		}
	})

	t.Run("wild wake times floor at zero", func(t *testing.T) {
		sessions := []models.SleepSession{
			session(base, 8, models.SleepTypeMain),                     // wakes 08:00
			session(base.Add(12*time.Hour), 8, models.SleepTypeMain),   // wakes 20:00
			session(base.AddDate(0, 0, 1), 8, models.SleepTypeMain),    // wakes 08:00
			session(base.AddDate(0, 0, 1).Add(12*time.Hour), 8, models.SleepTypeMain),
		}
		got, ok := WakeTimeConsistency(sessions, time.UTC)
		if !ok {
			t.Fatalf("expected a consistency value")
		}
		if got < 0 || got > 100 {
			t.Fatalf("consistency out of range: %d", got)
		}
	})
}

func TestDurationConsistency(t *testing.T) {
	base := date(2024, time.May, 1)

	sessions := []models.SleepSession{
		session(base, 8, models.SleepTypeMain),
		session(base.AddDate(0, 0, 1), 8, models.SleepTypeMain),
	}
	got, ok := DurationConsistency(sessions)
	if !ok || got != 100 {
		t.Fatalf("equal durations: got %d ok=%v, want 100 true", got, ok)
	}

	if _, ok := DurationConsistency(sessions[:1]); ok {
		t.Fatalf("expected unavailable with one sample")
	}
}

func TestAverageSleepByShiftType(t *testing.T) {
	base := date(2024, time.May, 6)

	labels := map[string]ShiftLabel{
		"2024-05-06": ShiftDay,
		"2024-05-07": ShiftNight,
		"2024-05-08": ShiftOff,
	}

	sessions := []models.SleepSession{
		// Wakes on the day shift morning.
		session(base.Add(-1*time.Hour), 8, models.SleepTypeMain),
		// Wakes on the 8th, which is labeled off.
		session(base.AddDate(0, 0, 2).Add(1*time.Hour), 6, models.SleepTypeMain),
		// Naps never count.
		session(base.Add(14*time.Hour), 1, models.SleepTypeNap),
	}

	result := AverageSleepByShiftType(sessions, labels, time.UTC)
	if result.DayHours == nil || *result.DayHours != 8 {
		t.Fatalf("day average = %v, want 8", result.DayHours)
	}
	if result.OffHours == nil || *result.OffHours != 6 {
		t.Fatalf("off average = %v, want 6", result.OffHours)
	}
	if result.NightHours != nil {
		t.Fatalf("night average should be absent, got %v", *result.NightHours)
	}
}

func TestCountQuickTurnarounds(t *testing.T) {
	days := []ProjectedDay{
		{Date: date(2024, time.May, 1), Label: ShiftDay},
		{Date: date(2024, time.May, 2), Label: ShiftNight},
		{Date: date(2024, time.May, 3), Label: ShiftOff},
		{Date: date(2024, time.May, 4), Label: ShiftDay},
		{Date: date(2024, time.May, 6), Label: ShiftDay},
	}

	if got := CountQuickTurnarounds(days); got != 1 {
		t.Fatalf("CountQuickTurnarounds = %d, want 1", got)
	}

	if got := CountQuickTurnarounds(nil); got != 0 {
		t.Fatalf("empty input should count 0, got %d", got)
	}
}
