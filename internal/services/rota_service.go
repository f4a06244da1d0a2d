package services

import (
	"errors"
	"time"

	"github.com/shiftcoach/shiftcoach/internal/bus"
	"github.com/shiftcoach/shiftcoach/internal/models"
)

var (
	ErrRotaLoadFailed      = errors.New("load rota failed")
	ErrRotaSaveFailed      = errors.New("save rota failed")
	ErrRotaClearFailed     = errors.New("clear rota failed")
	ErrOverrideSaveFailed  = errors.New("save day override failed")
	ErrOverrideClearFailed = errors.New("clear day override failed")
	ErrInvalidOverride     = errors.New("invalid override label")
)

type RotaWindowStore interface {
	FindByUser(userID uint) (models.RotaWindow, bool, error)
	Replace(window *models.RotaWindow) error
	DeleteByUser(userID uint) error
}

type DayOverrideStore interface {
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DayOverride, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DayOverride, bool, error)
	Upsert(override *models.DayOverride) error
	DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) error
	DeleteByUser(userID uint) error
}

type EventPublisher interface {
	Publish(event bus.Event)
}

// RotaService answers "what is the label for date D" by combining the
// persisted window projection with per-date overrides.
type RotaService struct {
	windows   RotaWindowStore
	overrides DayOverrideStore
	events    EventPublisher
	location  *time.Location
}

func NewRotaService(windows RotaWindowStore, overrides DayOverrideStore, events EventPublisher, location *time.Location) *RotaService {
	if location == nil {
		location = time.UTC
	}
	return &RotaService{
		windows:   windows,
		overrides: overrides,
		events:    events,
		location:  location,
	}
}

// ActiveWindow loads the user's stored window and rebuilds the projection
// value from it. found=false means the user simply has no rota.
func (service *RotaService) ActiveWindow(userID uint) (models.RotaWindow, RotaWindow, bool, error) {
	stored, found, err := service.windows.FindByUser(userID)
	if err != nil {
		return models.RotaWindow{}, RotaWindow{}, false, ErrRotaLoadFailed
	}
	if !found {
		return models.RotaWindow{}, RotaWindow{}, false, nil
	}
	return stored, service.buildWindow(stored), true, nil
}

func (service *RotaService) buildWindow(stored models.RotaWindow) RotaWindow {
	cycle := storedCycle(stored)
	startDate := DateAtLocation(stored.StartDate, service.location)
	window := RotaWindow{
		Alignment: NewCycleAlignment(cycle, startDate, stored.AnchorIndex),
		StartDate: startDate,
	}
	if stored.EndDate != nil {
		endDate := DateAtLocation(*stored.EndDate, service.location)
		window.EndDate = &endDate
	}
	return window
}

// ResolveDay returns the label for one calendar date: override first, then
// the projected window, then off when the user has no rota.
func (service *RotaService) ResolveDay(userID uint, date time.Time) (ShiftLabel, error) {
	dayStart, dayEnd := DayRange(date, service.location)

	override, found, err := service.overrides.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return ShiftOff, ErrRotaLoadFailed
	}
	if found {
		return ParseShiftLabel(override.Label), nil
	}

	_, window, hasRota, err := service.ActiveWindow(userID)
	if err != nil {
		return ShiftOff, err
	}
	if !hasRota {
		return ShiftOff, nil
	}
	return window.LabelOn(dayStart), nil
}

// ResolveRange produces one entry per date in [from, to], override-first and
// total. Re-running with the same stored state yields identical output.
func (service *RotaService) ResolveRange(userID uint, from time.Time, to time.Time) ([]ProjectedDay, error) {
	first := DateAtLocation(from, service.location)
	last := DateAtLocation(to, service.location)
	if last.Before(first) {
		return []ProjectedDay{}, nil
	}

	_, window, hasRota, err := service.ActiveWindow(userID)
	if err != nil {
		return nil, err
	}

	var days []ProjectedDay
	if hasRota {
		days = ProjectRange(window, first, last, service.location)
	} else {
		days = make([]ProjectedDay, 0, DaysBetween(first, last)+1)
		for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
			days = append(days, ProjectedDay{Date: date, Label: ShiftOff})
		}
	}

	overrides, err := service.overrides.ListByUserRange(userID, first, last.AddDate(0, 0, 1))
	if err != nil {
		return nil, ErrRotaLoadFailed
	}

	overrideByDate := make(map[string]ShiftLabel, len(overrides))
	for _, override := range overrides {
		key := DateAtLocation(override.Date, service.location).Format("2006-01-02")
		overrideByDate[key] = ParseShiftLabel(override.Label)
	}

	for index := range days {
		if label, found := overrideByDate[days[index].Date.Format("2006-01-02")]; found {
			days[index].Label = label
		}
	}
	return days, nil
}

// storedCycle prefers the persisted label sequence and falls back to the
// catalog for rows written before cycles were stored inline.
func storedCycle(stored models.RotaWindow) []ShiftLabel {
	raw := stored.CycleLabels()
	if len(raw) == 0 {
		return CycleFor(stored.PatternID)
	}
	cycle := make([]ShiftLabel, len(raw))
	for index, value := range raw {
		cycle[index] = ParseShiftLabel(value)
	}
	return cycle
}

// SetPattern installs a new active window for the user, replacing any
// previous one. Existing overrides stay in force until explicitly cleared.
// An out-of-range anchor index is reduced modulo the cycle length. An empty
// cycle falls back to the pattern's catalog entry.
func (service *RotaService) SetPattern(userID uint, patternID string, cycle []ShiftLabel, startDate time.Time, anchorIndex int, endDate *time.Time) (models.RotaWindow, error) {
	if len(cycle) == 0 {
		cycle = CycleFor(patternID)
	}

	raw := make([]string, len(cycle))
	for index, label := range cycle {
		raw[index] = string(label)
	}

	window := models.RotaWindow{
		UserID:      userID,
		PatternID:   patternID,
		Cycle:       models.JoinCycle(raw),
		StartDate:   DateAtLocation(startDate, service.location),
		AnchorIndex: FloorMod(anchorIndex, len(cycle)),
	}
	if endDate != nil {
		end := DateAtLocation(*endDate, service.location)
		window.EndDate = &end
	}

	if err := service.windows.Replace(&window); err != nil {
		return models.RotaWindow{}, ErrRotaSaveFailed
	}

	service.publish(bus.Event{Topic: bus.TopicRotaSaved, UserID: userID})
	return window, nil
}

// ApplyDraft validates and commits a completed setup draft.
func (service *RotaService) ApplyDraft(userID uint, draft RotaDraft) (models.RotaWindow, error) {
	if err := draft.Validate(); err != nil {
		return models.RotaWindow{}, err
	}
	cycle, err := draft.Cycle()
	if err != nil {
		return models.RotaWindow{}, err
	}
	return service.SetPattern(userID, draft.PatternID, cycle, draft.StartDate, draft.AnchorIdx, draft.EndDate)
}

// SetOverride pins an explicit label to one date, winning over the
// projection for that date.
func (service *RotaService) SetOverride(userID uint, date time.Time, label ShiftLabel) (models.DayOverride, error) {
	if !label.Valid() {
		return models.DayOverride{}, ErrInvalidOverride
	}

	override := models.DayOverride{
		UserID: userID,
		Date:   DateAtLocation(date, service.location),
		Label:  string(label),
	}
	if err := service.overrides.Upsert(&override); err != nil {
		return models.DayOverride{}, ErrOverrideSaveFailed
	}

	service.publish(bus.Event{Topic: bus.TopicRotaSaved, UserID: userID})
	return override, nil
}

func (service *RotaService) DeleteOverride(userID uint, date time.Time) error {
	dayStart, dayEnd := DayRange(date, service.location)
	if err := service.overrides.DeleteByUserAndDayRange(userID, dayStart, dayEnd); err != nil {
		return ErrOverrideClearFailed
	}
	service.publish(bus.Event{Topic: bus.TopicRotaSaved, UserID: userID})
	return nil
}

// ClearRota removes the active window and every override. Clearing a user
// with no rota is a no-op, not an error.
func (service *RotaService) ClearRota(userID uint) error {
	if err := service.windows.DeleteByUser(userID); err != nil {
		return ErrRotaClearFailed
	}
	if err := service.overrides.DeleteByUser(userID); err != nil {
		return ErrRotaClearFailed
	}
	service.publish(bus.Event{Topic: bus.TopicRotaCleared, UserID: userID})
	return nil
}

func (service *RotaService) publish(event bus.Event) {
	if service.events != nil {
		service.events.Publish(event)
	}
}
