package services

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		name string
		a    int
		n    int
		want int
	}{
		{name: "positive in range", a: 2, n: 7, want: 2},
		{name: "positive wraps", a: 9, n: 7, want: 2},
		{name: "negative wraps up", a: -1, n: 7, want: 6},
		{name: "large negative", a: -15, n: 7, want: 6},
		{name: "zero", a: 0, n: 3, want: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := FloorMod(testCase.a, testCase.n); got != testCase.want {
				t.Fatalf("FloorMod(%d, %d) = %d, want %d", testCase.a, testCase.n, got, testCase.want)
			}
		})
	}
}

func TestCycleAlignmentProjectsBothDirections(t *testing.T) {
	cycle := []ShiftLabel{ShiftDay, ShiftDay, ShiftNight, ShiftNight, ShiftOff, ShiftOff, ShiftOff}
	alignment := NewCycleAlignment(cycle, date(2024, time.January, 1), 0)

	tests := []struct {
		name string
		on   time.Time
		want ShiftLabel
	}{
		{name: "anchor date", on: date(2024, time.January, 1), want: ShiftDay},
		{name: "one week after anchor", on: date(2024, time.January, 8), want: ShiftDay},
		{name: "mid cycle", on: date(2024, time.January, 3), want: ShiftNight},
		{name: "one week before anchor", on: date(2023, time.December, 25), want: ShiftDay},
		{name: "three days before anchor", on: date(2023, time.December, 29), want: ShiftOff},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := alignment.LabelAt(testCase.on); got != testCase.want {
				t.Fatalf("LabelAt(%s) = %q, want %q", testCase.on.Format("2006-01-02"), got, testCase.want)
			}
		})
	}
}

func TestNewCycleAlignmentNormalizesAnchorIndex(t *testing.T) {
	cycle := []ShiftLabel{ShiftDay, ShiftNight, ShiftOff}

	alignment := NewCycleAlignment(cycle, date(2024, time.March, 1), -1)
	if alignment.AnchorIndex != 2 {
		t.Fatalf("expected anchor index 2, got %d", alignment.AnchorIndex)
	}

	alignment = NewCycleAlignment(cycle, date(2024, time.March, 1), 7)
	if alignment.AnchorIndex != 1 {
		t.Fatalf("expected anchor index 1, got %d", alignment.AnchorIndex)
	}
}

func TestNewCycleAlignmentPanicsOnEmptyCycle(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for empty cycle")
		}
	}()
	NewCycleAlignment(nil, date(2024, time.January, 1), 0)
}

func TestProjectRange(t *testing.T) {
	cycle := []ShiftLabel{ShiftDay, ShiftNight, ShiftOff}
	window := RotaWindow{
		Alignment: NewCycleAlignment(cycle, date(2024, time.June, 1), 0),
		StartDate: date(2024, time.June, 1),
	}

	days := ProjectRange(window, date(2024, time.June, 1), date(2024, time.June, 6), time.UTC)
	if len(days) != 6 {
		t.Fatalf("expected 6 days, got %d", len(days))
	}

	wantLabels := []ShiftLabel{ShiftDay, ShiftNight, ShiftOff, ShiftDay, ShiftNight, ShiftOff}
	wantCycleDays := []int{1, 2, 3, 1, 2, 3}
	for index, day := range days {
		if day.Label != wantLabels[index] {
			t.Fatalf("day %d label = %q, want %q", index, day.Label, wantLabels[index])
		}
		if day.DayInCycle != wantCycleDays[index] {
			t.Fatalf("day %d dayInCycle = %d, want %d", index, day.DayInCycle, wantCycleDays[index])
		}
	}
}

func TestProjectRangeOutsideWindowBounds(t *testing.T) {
	cycle := []ShiftLabel{ShiftDay, ShiftNight}
	end := date(2024, time.June, 5)
	window := RotaWindow{
		Alignment: NewCycleAlignment(cycle, date(2024, time.June, 3), 0),
		StartDate: date(2024, time.June, 3),
		EndDate:   &end,
	}

	days := ProjectRange(window, date(2024, time.June, 1), date(2024, time.June, 7), time.UTC)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}

	for _, day := range days {
		inWindow := !day.Date.Before(date(2024, time.June, 3)) && day.Date.Before(end)
		if inWindow && day.Label == ShiftOff {
			t.Fatalf("expected working projection inside window on %s", day.Date.Format("2006-01-02"))
		}
		if !inWindow {
			if day.Label != ShiftOff {
				t.Fatalf("expected off outside window on %s, got %q", day.Date.Format("2006-01-02"), day.Label)
			}
			if day.DayInCycle != 0 {
				t.Fatalf("expected dayInCycle 0 outside window, got %d", day.DayInCycle)
			}
		}
	}
}

func TestProjectRangeInvertedRangeIsEmpty(t *testing.T) {
	cycle := []ShiftLabel{ShiftDay, ShiftOff}
	window := RotaWindow{
		Alignment: NewCycleAlignment(cycle, date(2024, time.June, 1), 0),
		StartDate: date(2024, time.June, 1),
	}

	days := ProjectRange(window, date(2024, time.June, 10), date(2024, time.June, 5), time.UTC)
	if len(days) != 0 {
		t.Fatalf("expected empty slice for inverted range, got %d entries", len(days))
	}
}

func TestDaysBetweenAcrossDSTChange(t *testing.T) {
	location, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	before := time.Date(2024, time.March, 30, 0, 0, 0, 0, location)
	after := time.Date(2024, time.April, 1, 0, 0, 0, 0, location)
	if got := DaysBetween(before, after); got != 2 {
		t.Fatalf("DaysBetween across DST = %d, want 2", got)
	}
}
