package services

import (
	"math"
	"sort"
	"time"
)

// MinimumDailyCalories is the floor applied to the caller's calorie target.
const MinimumDailyCalories = 1200

type MealSlot struct {
	ID             string    `json:"id"`
	Label          string    `json:"label"`
	Time           time.Time `json:"time"`
	WindowLabel    string    `json:"window_label"`
	CaloriesTarget int       `json:"calories_target"`
	Hint           string    `json:"hint"`
}

// MealScheduleInput describes the day the schedule is built for. ShiftStart
// and ShiftEnd are required for working shifts; without them the off-day
// layout is used.
type MealScheduleInput struct {
	Calories   int
	Shift      ShiftLabel
	ShiftStart *time.Time
	ShiftEnd   *time.Time
	WakeTime   time.Time
}

// BuildMealSchedule lays out timed meal windows for the day, splitting the
// calorie target across slots by shift type. Off days spread four meals from
// the wake time; day shifts front-load around the shift; night shifts put
// the largest meal before the shift and keep the body-night snack very
// light; afternoon and evening shifts get a late-shift layout.
func BuildMealSchedule(input MealScheduleInput) []MealSlot {
	total := input.Calories
	if total < MinimumDailyCalories {
		total = MinimumDailyCalories
	}
	kcal := func(pct float64) int {
		return int(math.Round(float64(total) * pct))
	}

	wake := input.WakeTime
	start := input.ShiftStart
	end := input.ShiftEnd
	hasShiftTimes := start != nil && end != nil

	var slots []MealSlot
	switch {
	case input.Shift == ShiftNight && hasShiftTimes:
		pre := start.Add(-150 * time.Minute)
		early := start.Add(2 * time.Hour)
		bodyNight := time.Date(pre.Year(), pre.Month(), pre.Day(), 2, 0, 0, 0, pre.Location())
		post := end.Add(1 * time.Hour)
		daySnack := post.Add(6 * time.Hour)
		slots = []MealSlot{
			mealSlot("pre_shift", "Pre-shift meal", pre, time.Hour, kcal(0.35), "Largest before shift"),
			mealSlot("mid_shift", "Early-shift snack", early, 45*time.Minute, kcal(0.25), "Keep steady"),
			mealSlot("night_snack", "Body-night snack", bodyNight, 30*time.Minute, kcal(0.10), "Very light"),
			mealSlot("post_shift_breakfast", "Post-shift breakfast", post, time.Hour, kcal(0.20), "Before sleep"),
			mealSlot("day_snack", "Day snack (optional)", daySnack, 30*time.Minute, kcal(0.10), "Only if needed"),
		}
	case (input.Shift == ShiftAfternoon || input.Shift == ShiftEvening) && hasShiftTimes:
		pre := wake.Add(30 * time.Minute)
		mid := midpoint(*start, *end)
		lateSnack := end.Add(-1 * time.Hour)
		post := end.Add(2 * time.Hour)
		slots = []MealSlot{
			mealSlot("pre_shift", "Pre-shift meal", pre, time.Hour, kcal(0.30), "Fuel up"),
			mealSlot("mid_shift", "Mid-shift meal", mid, time.Hour, kcal(0.35), "Main energy"),
			mealSlot("night_snack", "Late-shift light snack", lateSnack, 30*time.Minute, kcal(0.10), "Keep light late"),
			mealSlot("dinner", "Post-shift light meal", post, 45*time.Minute, kcal(0.25), "Wind down"),
		}
	case input.Shift.IsWorking() && hasShiftTimes:
		pre := wake.Add(30 * time.Minute)
		mid := midpoint(*start, *end)
		post := end.Add(1 * time.Hour)
		evening := end.Add(4 * time.Hour)
		slots = []MealSlot{
			mealSlot("pre_shift", "Pre-shift breakfast", pre, time.Hour, kcal(0.25), "Fuel before work"),
			mealSlot("mid_shift", "Mid-shift meal", mid, time.Hour, kcal(0.40), "Main energy block"),
			mealSlot("day_snack", "Post-shift snack", post, 45*time.Minute, kcal(0.15), "Recovery snack"),
			mealSlot("dinner", "Light evening meal", evening, time.Hour, kcal(0.20), "Lighter evening"),
		}
	default:
		breakfast := wake.Add(30 * time.Minute)
		lunch := wake.Add(330 * time.Minute)
		snack := wake.Add(8 * time.Hour)
		dinner := wake.Add(630 * time.Minute)
		slots = []MealSlot{
			mealSlot("breakfast", "Breakfast", breakfast, time.Hour, kcal(0.30), "Protein-forward start"),
			mealSlot("lunch", "Lunch", lunch, time.Hour, kcal(0.35), "Balanced plate"),
			mealSlot("day_snack", "Snack", snack, 30*time.Minute, kcal(0.10), "Light, keep energy steady"),
			mealSlot("dinner", "Dinner", dinner, time.Hour, kcal(0.25), "Lighter evening"),
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Time.Before(slots[j].Time)
	})
	return slots
}

// ShiftTimesOn returns the absolute start and end instants for a working
// shift on the given day, using the label's default working hours. Night
// shifts end on the following day.
func ShiftTimesOn(label ShiftLabel, day time.Time, location *time.Location) (time.Time, time.Time, bool) {
	if !label.IsWorking() {
		return time.Time{}, time.Time{}, false
	}
	loc := locationOrUTC(location)
	startHour, endHour, ok := WorkingHours(label)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, loc)
	if endHour <= startHour {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, true
}

func mealSlot(id string, label string, at time.Time, window time.Duration, calories int, hint string) MealSlot {
	return MealSlot{
		ID:             id,
		Label:          label,
		Time:           at,
		WindowLabel:    at.Format("15:04") + "-" + at.Add(window).Format("15:04"),
		CaloriesTarget: calories,
		Hint:           hint,
	}
}

func midpoint(start time.Time, end time.Time) time.Time {
	return start.Add(end.Sub(start) / 2)
}
