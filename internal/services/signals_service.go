package services

import (
	"time"

	"github.com/shiftcoach/shiftcoach/internal/models"
)

const (
	signalLookbackDays  = 14
	turnaroundSpanDays  = 7
	defaultWakeHour     = 7
	recentSleepWindow24 = 24 * time.Hour
)

// SleepSummary is the GET /api/signals/sleep payload.
type SleepSummary struct {
	DebtHours           float64          `json:"debt_hours"`
	SleptLast24Hours    float64          `json:"slept_last_24h"`
	WakeConsistency     *int             `json:"wake_consistency"`
	DurationConsistency *int             `json:"duration_consistency"`
	ByShiftType         SleepByShiftType `json:"by_shift_type"`
	QuickTurnarounds    int              `json:"quick_turnarounds"`
}

// SignalsService derives the daily read-side signals from the resolved rota
// and logged sleep.
type SignalsService struct {
	rota     *RotaService
	sleep    *SleepService
	location *time.Location
}

func NewSignalsService(rota *RotaService, sleep *SleepService, location *time.Location) *SignalsService {
	if location == nil {
		location = time.UTC
	}
	return &SignalsService{rota: rota, sleep: sleep, location: location}
}

func (service *SignalsService) EnergyCurve(user models.User, now time.Time) (EnergyCurve, error) {
	shift, err := service.rota.ResolveDay(user.ID, now)
	if err != nil {
		return EnergyCurve{}, err
	}
	sessions, err := service.sleep.RecentSessions(user.ID, now, signalLookbackDays)
	if err != nil {
		return EnergyCurve{}, err
	}

	slept := SleptHoursIn(sessions, now.Add(-recentSleepWindow24), now)
	debt := SleepDebtHours(user.SleepTarget(), slept)

	var wakeAt *time.Time
	if last, found := lastMainSleep(sessions); found {
		wake := last.EndAt
		wakeAt = &wake
	}

	return BuildEnergyCurve(EnergyInput{
		Shift:     shift,
		DebtHours: debt,
		WakeAt:    wakeAt,
		Now:       now,
		Location:  service.location,
	}), nil
}

func (service *SignalsService) BodyClock(user models.User, now time.Time) (BodyClockScore, error) {
	shift, err := service.rota.ResolveDay(user.ID, now)
	if err != nil {
		return BodyClockScore{}, err
	}
	sessions, err := service.sleep.RecentSessions(user.ID, now, signalLookbackDays)
	if err != nil {
		return BodyClockScore{}, err
	}

	kind := service.patternKind(user.ID)

	var variance *float64
	if value, ok := BedtimeVarianceMinutes(sessions, service.location); ok {
		variance = &value
	}

	return ComputeBodyClockScore(BodyClockInput{
		PatternKind:     kind,
		TodayShift:      shift,
		RecentSleep:     sessions,
		TargetHours:     user.SleepTarget(),
		BedtimeVariance: variance,
		Location:        service.location,
	}), nil
}

func (service *SignalsService) SleepSignals(user models.User, now time.Time) (SleepSummary, error) {
	sessions, err := service.sleep.RecentSessions(user.ID, now, signalLookbackDays)
	if err != nil {
		return SleepSummary{}, err
	}

	from := DateAtLocation(now, service.location).AddDate(0, 0, -signalLookbackDays)
	to := DateAtLocation(now, service.location).AddDate(0, 0, turnaroundSpanDays)
	days, err := service.rota.ResolveRange(user.ID, from, to)
	if err != nil {
		return SleepSummary{}, err
	}

	labelByDate := make(map[string]ShiftLabel, len(days))
	for _, day := range days {
		labelByDate[day.Date.Format("2006-01-02")] = day.Label
	}

	slept := SleptHoursIn(sessions, now.Add(-recentSleepWindow24), now)
	summary := SleepSummary{
		DebtHours:        SleepDebtHours(user.SleepTarget(), slept),
		SleptLast24Hours: slept,
		ByShiftType:      AverageSleepByShiftType(sessions, labelByDate, service.location),
		QuickTurnarounds: CountQuickTurnarounds(days),
	}
	if value, ok := WakeTimeConsistency(sessions, service.location); ok {
		summary.WakeConsistency = &value
	}
	if value, ok := DurationConsistency(sessions); ok {
		summary.DurationConsistency = &value
	}
	return summary, nil
}

func (service *SignalsService) MealSchedule(user models.User, now time.Time, calories int) ([]MealSlot, error) {
	shift, err := service.rota.ResolveDay(user.ID, now)
	if err != nil {
		return nil, err
	}
	sessions, err := service.sleep.RecentSessions(user.ID, now, signalLookbackDays)
	if err != nil {
		return nil, err
	}

	day := DateAtLocation(now, service.location)
	wake := day.Add(defaultWakeHour * time.Hour)
	if last, found := lastMainSleep(sessions); found {
		wake = last.EndAt.In(service.location)
	}

	input := MealScheduleInput{
		Calories: calories,
		Shift:    shift,
		WakeTime: wake,
	}
	if start, end, ok := ShiftTimesOn(shift, day, service.location); ok {
		input.ShiftStart = &start
		input.ShiftEnd = &end
	}
	return BuildMealSchedule(input), nil
}

// patternKind prefers the stored catalog pattern's kind and falls back to
// inferring one from the active cycle; no rota reads as custom.
func (service *SignalsService) patternKind(userID uint) PatternKind {
	stored, window, found, err := service.rota.ActiveWindow(userID)
	if err != nil || !found {
		return PatternCustom
	}
	if descriptor, ok := PatternByID(stored.PatternID); ok {
		return descriptor.Kind
	}
	return InferPatternKind(window.Alignment.Cycle)
}
