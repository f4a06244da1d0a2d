package services

import (
	"math"
	"sort"
	"time"

	"github.com/shiftcoach/shiftcoach/internal/models"
)

const (
	// TargetSleepHours is the default nightly target used for debt.
	TargetSleepHours = 7.5

	// maxDebtPenalty caps the energy-point cost of accumulated debt.
	maxDebtPenalty       = 30.0
	debtPenaltyPerHour   = 5.0
	wakeConsistencySpan  = 240.0 // minutes of wake-time stddev that maps to 0%
	durationSpanHours    = 3.0   // hours of duration stddev that maps to 0%
	minConsistencySample = 2
)

// SleepDebtHours is the shortfall against the target over the sessions'
// total sleep in the last 24 hours; never negative.
func SleepDebtHours(targetHours float64, actualHoursLast24h float64) float64 {
	if targetHours <= 0 {
		targetHours = TargetSleepHours
	}
	return math.Max(0, targetHours-actualHoursLast24h)
}

// DebtEnergyPenalty converts debt hours into energy points, 5 per hour
// capped at 30.
func DebtEnergyPenalty(debtHours float64) float64 {
	return math.Min(debtHours*debtPenaltyPerHour, maxDebtPenalty)
}

// SleptHoursIn sums session time overlapping [from, to).
func SleptHoursIn(sessions []models.SleepSession, from time.Time, to time.Time) float64 {
	total := 0.0
	for _, session := range sessions {
		start := session.StartAt
		end := session.EndAt
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		if end.After(start) {
			total += end.Sub(start).Hours()
		}
	}
	return total
}

// WakeTimeConsistency maps the standard deviation of wake clock times
// (minutes since midnight) to a 0-100 percentage: 0 min deviation is 100%,
// 240 min is 0%. Fewer than two main-sleep samples is unavailable (ok=false),
// never a numeric zero.
func WakeTimeConsistency(sessions []models.SleepSession, location *time.Location) (int, bool) {
	wakeMinutes := make([]float64, 0, len(sessions))
	for _, session := range sessions {
		if !session.IsMain() {
			continue
		}
		local := session.EndAt.In(locationOrUTC(location))
		wakeMinutes = append(wakeMinutes, float64(local.Hour()*60+local.Minute()))
	}
	if len(wakeMinutes) < minConsistencySample {
		return 0, false
	}

	stdDev := stdDev(wakeMinutes)
	consistency := clampFloat(100-(stdDev/wakeConsistencySpan)*100, 0, 100)
	return int(math.Round(consistency)), true
}

// DurationConsistency maps the standard deviation of sleep durations in
// hours to 0-100: 0h deviation is 100%, 3h or more is 0%.
func DurationConsistency(sessions []models.SleepSession) (int, bool) {
	durations := make([]float64, 0, len(sessions))
	for _, session := range sessions {
		if hours := session.DurationHours(); hours > 0 {
			durations = append(durations, hours)
		}
	}
	if len(durations) < minConsistencySample {
		return 0, false
	}

	consistency := clampFloat(100-(stdDev(durations)/durationSpanHours)*100, 0, 100)
	return int(math.Round(consistency)), true
}

// BedtimeVarianceMinutes is the standard deviation of main-sleep start clock
// times, for the body-clock inconsistency factor.
func BedtimeVarianceMinutes(sessions []models.SleepSession, location *time.Location) (float64, bool) {
	bedMinutes := make([]float64, 0, len(sessions))
	for _, session := range sessions {
		if !session.IsMain() {
			continue
		}
		local := session.StartAt.In(locationOrUTC(location))
		bedMinutes = append(bedMinutes, float64(local.Hour()*60+local.Minute()))
	}
	if len(bedMinutes) < minConsistencySample {
		return 0, false
	}
	return stdDev(bedMinutes), true
}

// SleepByShiftType averages main-sleep duration per resolved shift bucket
// (night, day-side, off). A session counts toward the shift on its wake date
// or, failing that, the day before, since night-shift sleep ends the next
// calendar day.
type SleepByShiftType struct {
	NightHours *float64 `json:"night_hours"`
	DayHours   *float64 `json:"day_hours"`
	OffHours   *float64 `json:"off_hours"`
}

func AverageSleepByShiftType(sessions []models.SleepSession, labelByDate map[string]ShiftLabel, location *time.Location) SleepByShiftType {
	totals := map[string]float64{}
	counts := map[string]int{}

	for _, session := range sessions {
		hours := session.DurationHours()
		if hours <= 0 || !session.IsMain() {
			continue
		}

		wakeDay := DateAtLocation(session.EndAt, location)
		label, found := labelByDate[wakeDay.Format("2006-01-02")]
		if !found {
			label, found = labelByDate[wakeDay.AddDate(0, 0, -1).Format("2006-01-02")]
		}

		bucket := "off"
		if found {
			switch {
			case label == ShiftNight:
				bucket = "night"
			case label.IsWorking():
				bucket = "day"
			}
		}
		totals[bucket] += hours
		counts[bucket]++
	}

	result := SleepByShiftType{}
	if counts["night"] > 0 {
		avg := totals["night"] / float64(counts["night"])
		result.NightHours = &avg
	}
	if counts["day"] > 0 {
		avg := totals["day"] / float64(counts["day"])
		result.DayHours = &avg
	}
	if counts["off"] > 0 {
		avg := totals["off"] / float64(counts["off"])
		result.OffHours = &avg
	}
	return result
}

// CountQuickTurnarounds counts working days followed immediately by another
// working day. This is a date-adjacency approximation: it does not consult
// actual shift start/end clock times, so a late finish into an early start
// and a comfortable 16h gap count the same.
func CountQuickTurnarounds(days []ProjectedDay) int {
	sorted := make([]ProjectedDay, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	count := 0
	for i := 0; i+1 < len(sorted); i++ {
		if !sorted[i].Label.IsWorking() || !sorted[i+1].Label.IsWorking() {
			continue
		}
		if DaysBetween(sorted[i].Date, sorted[i+1].Date) == 1 {
			count++
		}
	}
	return count
}

func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, value := range values {
		mean += value
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, value := range values {
		variance += (value - mean) * (value - mean)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

func clampFloat(value float64, min float64, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

func locationOrUTC(location *time.Location) *time.Location {
	if location == nil {
		return time.UTC
	}
	return location
}
