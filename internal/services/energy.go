package services

import (
	"math"
	"time"
)

const (
	energyBaseline      = 50.0
	workingHourBoost    = 15.0
	biologicalNightCost = 15.0
	postWakeBonusPeak   = 10.0
	postWakeBonusSpan   = 16.0 // hours until the post-wake bonus fully decays
)

// baseCircadian is the hour-by-hour circadian contribution: afternoon peak
// at 10-14, trough at 02-06, sloped shoulders between.
var baseCircadian = [24]float64{
	0: -10, 1: -15, 2: -20, 3: -20, 4: -20, 5: -20,
	6: -10, 7: 0, 8: 10, 9: 18,
	10: 25, 11: 25, 12: 25, 13: 25,
	14: 20, 15: 12, 16: 8, 17: 10, 18: 12, 19: 10,
	20: 5, 21: 0, 22: -5, 23: -8,
}

type EnergyPoint struct {
	Hour   int `json:"hour"`
	Energy int `json:"energy"`
}

type EnergyCurve struct {
	Points  []EnergyPoint `json:"points"`
	NowHour float64       `json:"now_hour"`
}

// EnergyInput carries the day context the curve is evaluated against.
type EnergyInput struct {
	Shift     ShiftLabel
	DebtHours float64
	WakeAt    *time.Time
	Now       time.Time
	Location  *time.Location
}

// BuildEnergyCurve produces 24 clamped energy points for the input's day:
// baseline 50 plus the circadian table, a working-hour boost for the day's
// shift, a biological-night (23-07) penalty, a post-wake bonus that decays
// across the wake period, minus the sleep-debt penalty.
func BuildEnergyCurve(input EnergyInput) EnergyCurve {
	location := locationOrUTC(input.Location)
	now := input.Now.In(location)
	debtPenalty := DebtEnergyPenalty(input.DebtHours)

	points := make([]EnergyPoint, 24)
	for hour := 0; hour < 24; hour++ {
		energy := energyBaseline + baseCircadian[hour] - debtPenalty

		if HourWithinShift(hour, input.Shift) {
			energy += workingHourBoost
		}
		if hour >= 23 || hour < 7 {
			energy -= biologicalNightCost
		}
		energy += postWakeBonus(input.WakeAt, now, hour, location)

		points[hour] = EnergyPoint{
			Hour:   hour,
			Energy: int(math.Round(clampFloat(energy, 0, 100))),
		}
	}

	return EnergyCurve{
		Points:  points,
		NowHour: float64(now.Hour()) + float64(now.Minute())/60,
	}
}

// postWakeBonus peaks right after waking and fades to zero over the wake
// span. Hours before the wake time on the curve's day get nothing.
func postWakeBonus(wakeAt *time.Time, now time.Time, hour int, location *time.Location) float64 {
	if wakeAt == nil {
		return 0
	}
	wake := wakeAt.In(location)
	day := DateAtLocation(now, location)
	at := day.Add(time.Duration(hour) * time.Hour)

	sinceWake := at.Sub(wake).Hours()
	if sinceWake < 0 || sinceWake >= postWakeBonusSpan {
		return 0
	}
	return postWakeBonusPeak * (1 - sinceWake/postWakeBonusSpan)
}
