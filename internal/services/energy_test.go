package services

import (
	"testing"
	"time"
)

func TestBuildEnergyCurveShape(t *testing.T) {
	now := time.Date(2024, time.May, 1, 12, 30, 0, 0, time.UTC)
	curve := BuildEnergyCurve(EnergyInput{
		Shift:    ShiftOff,
		Now:      now,
		Location: time.UTC,
	})

	if len(curve.Points) != 24 {
		t.Fatalf("expected 24 points, got %d", len(curve.Points))
	}
	for _, point := range curve.Points {
		if point.Energy < 0 || point.Energy > 100 {
			t.Fatalf("hour %d energy %d out of [0,100]", point.Hour, point.Energy)
		}
	}
	if curve.NowHour != 12.5 {
		t.Fatalf("NowHour = %v, want 12.5", curve.NowHour)
	}

	// Midday peak beats the pre-dawn trough.
	if curve.Points[12].Energy <= curve.Points[4].Energy {
		t.Fatalf("expected midday (%d) above pre-dawn trough (%d)",
			curve.Points[12].Energy, curve.Points[4].Energy)
	}
}

func TestBuildEnergyCurveWorkingHourBoost(t *testing.T) {
	now := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

	offCurve := BuildEnergyCurve(EnergyInput{Shift: ShiftOff, Now: now, Location: time.UTC})
	dayCurve := BuildEnergyCurve(EnergyInput{Shift: ShiftDay, Now: now, Location: time.UTC})

	// 12:00 is inside the day shift's 9-17 window.
	if dayCurve.Points[12].Energy <= offCurve.Points[12].Energy {
		t.Fatalf("day shift noon %d should exceed off day noon %d",
			dayCurve.Points[12].Energy, offCurve.Points[12].Energy)
	}
}

func TestBuildEnergyCurveDebtLowersEverything(t *testing.T) {
	now := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

	rested := BuildEnergyCurve(EnergyInput{Shift: ShiftOff, Now: now, Location: time.UTC})
	indebted := BuildEnergyCurve(EnergyInput{Shift: ShiftOff, DebtHours: 4, Now: now, Location: time.UTC})

	for hour := range rested.Points {
		if indebted.Points[hour].Energy > rested.Points[hour].Energy {
			t.Fatalf("hour %d: debt curve %d above rested curve %d",
				hour, indebted.Points[hour].Energy, rested.Points[hour].Energy)
		}
	}
	if indebted.Points[12].Energy >= rested.Points[12].Energy {
		t.Fatalf("expected a strictly lower midday value under debt")
	}
}

func TestBuildEnergyCurvePostWakeBonus(t *testing.T) {
	now := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	wake := time.Date(2024, time.May, 1, 7, 0, 0, 0, time.UTC)

	plain := BuildEnergyCurve(EnergyInput{Shift: ShiftOff, Now: now, Location: time.UTC})
	woken := BuildEnergyCurve(EnergyInput{Shift: ShiftOff, WakeAt: &wake, Now: now, Location: time.UTC})

	// Shortly after waking the bonus applies; well before the wake time it
	// must not.
	if woken.Points[8].Energy <= plain.Points[8].Energy {
		t.Fatalf("expected post-wake bonus at 08:00: %d vs %d",
			woken.Points[8].Energy, plain.Points[8].Energy)
	}
	if woken.Points[4].Energy != plain.Points[4].Energy {
		t.Fatalf("no bonus should apply before waking: %d vs %d",
			woken.Points[4].Energy, plain.Points[4].Energy)
	}
}
