package services

import (
	"math"
	"time"

	"github.com/shiftcoach/shiftcoach/internal/models"
)

const (
	bodyClockBaseline = 50
	idealMidpointHour = 3.0 // 03:00, midpoint of a 23:00-07:00 night
)

// BodyClockFactor is one signed contribution to the score.
type BodyClockFactor struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

type BodyClockScore struct {
	Score   int               `json:"score"`
	Factors []BodyClockFactor `json:"factors"`
}

// BodyClockInput is what the score is computed from: the day's pattern
// context and recent main-sleep sessions.
type BodyClockInput struct {
	PatternKind     PatternKind
	TodayShift      ShiftLabel
	RecentSleep     []models.SleepSession
	TargetHours     float64
	BedtimeVariance *float64 // minutes; nil when too few samples
	Location        *time.Location
}

// ComputeBodyClockScore starts at 50 and applies five signed factors:
// working-pattern alignment, last sleep duration, sleep midpoint timing
// against the 03:00 circadian ideal, accumulated debt, and bedtime
// variability. The result is clamped to [0,100].
func ComputeBodyClockScore(input BodyClockInput) BodyClockScore {
	factors := []BodyClockFactor{
		{Name: "shift_alignment", Points: shiftAlignmentPoints(input.PatternKind, input.TodayShift)},
		{Name: "sleep_duration", Points: durationPoints(lastMainSleepHours(input.RecentSleep))},
		{Name: "sleep_timing", Points: timingPoints(input.RecentSleep, input.Location)},
		{Name: "sleep_debt", Points: debtPoints(input)},
		{Name: "bedtime_variance", Points: variancePoints(input.BedtimeVariance)},
	}

	score := bodyClockBaseline
	for _, factor := range factors {
		score += factor.Points
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return BodyClockScore{Score: score, Factors: factors}
}

func shiftAlignmentPoints(patternKind PatternKind, today ShiftLabel) int {
	if patternKind == PatternRotating {
		return -12
	}
	switch today {
	case ShiftMorning:
		return 10
	case ShiftDay:
		return 0
	case ShiftAfternoon, ShiftEvening:
		return -5
	case ShiftNight:
		return -15
	default:
		return 0
	}
}

func durationPoints(hours float64) int {
	switch {
	case hours >= 7:
		return 12
	case hours >= 6:
		return 4
	default:
		return -8
	}
}

// timingPoints compares the last main sleep's midpoint with the 03:00
// circadian ideal, wrapping around midnight so 01:00 and 05:00 are both
// two hours off.
func timingPoints(sessions []models.SleepSession, location *time.Location) int {
	last, found := lastMainSleep(sessions)
	if !found {
		return -8
	}

	loc := locationOrUTC(location)
	midpoint := last.StartAt.Add(last.EndAt.Sub(last.StartAt) / 2).In(loc)
	midpointHour := float64(midpoint.Hour()) + float64(midpoint.Minute())/60

	offset := math.Abs(midpointHour - idealMidpointHour)
	if offset > 12 {
		offset = 24 - offset
	}
	switch {
	case offset <= 1:
		return 12
	case offset <= 2:
		return 4
	default:
		return -8
	}
}

func debtPoints(input BodyClockInput) int {
	target := input.TargetHours
	if target <= 0 {
		target = TargetSleepHours
	}
	debt := SleepDebtHours(target, lastMainSleepHours(input.RecentSleep))
	switch {
	case debt <= 2:
		return 8
	case debt <= 5:
		return 0
	default:
		return -12
	}
}

func variancePoints(varianceMinutes *float64) int {
	if varianceMinutes == nil {
		return 0
	}
	switch {
	case *varianceMinutes < 30:
		return 0
	case *varianceMinutes < 60:
		return -5
	case *varianceMinutes < 120:
		return -10
	default:
		return -15
	}
}

func lastMainSleep(sessions []models.SleepSession) (models.SleepSession, bool) {
	var last models.SleepSession
	found := false
	for _, session := range sessions {
		if !session.IsMain() {
			continue
		}
		if !found || session.EndAt.After(last.EndAt) {
			last = session
			found = true
		}
	}
	return last, found
}

func lastMainSleepHours(sessions []models.SleepSession) float64 {
	last, found := lastMainSleep(sessions)
	if !found {
		return 0
	}
	return last.DurationHours()
}
