package services

import (
	"errors"
	"time"

	"github.com/shiftcoach/shiftcoach/internal/bus"
	"github.com/shiftcoach/shiftcoach/internal/models"
)

var (
	ErrSleepLoadFailed    = errors.New("failed to load sleep sessions")
	ErrSleepSaveFailed    = errors.New("failed to save sleep session")
	ErrSleepDeleteFailed  = errors.New("failed to delete sleep session")
	ErrSleepNotFound      = errors.New("sleep session not found")
	ErrInvalidSleepWindow = errors.New("sleep session must end after it starts")
	ErrInvalidSleepType   = errors.New("sleep type must be sleep or nap")
	ErrInvalidQuality     = errors.New("sleep quality must be between 1 and 5")
)

const maxSleepSessionHours = 24

type SleepStore interface {
	ListByUserRange(userID uint, from *time.Time, to *time.Time) ([]models.SleepSession, error)
	FindByUserAndID(userID uint, sessionID uint) (models.SleepSession, bool, error)
	Create(session *models.SleepSession) error
	DeleteByUserAndID(userID uint, sessionID uint) error
}

type SleepService struct {
	sessions SleepStore
	events   EventPublisher
}

func NewSleepService(sessions SleepStore, events EventPublisher) *SleepService {
	return &SleepService{sessions: sessions, events: events}
}

func (service *SleepService) List(userID uint, from *time.Time, to *time.Time) ([]models.SleepSession, error) {
	sessions, err := service.sessions.ListByUserRange(userID, from, to)
	if err != nil {
		return nil, ErrSleepLoadFailed
	}
	return sessions, nil
}

func (service *SleepService) Log(userID uint, startAt time.Time, endAt time.Time, sleepType string, quality int) (models.SleepSession, error) {
	if !endAt.After(startAt) || endAt.Sub(startAt).Hours() > maxSleepSessionHours {
		return models.SleepSession{}, ErrInvalidSleepWindow
	}
	if sleepType == "" {
		sleepType = models.SleepTypeMain
	}
	if sleepType != models.SleepTypeMain && sleepType != models.SleepTypeNap {
		return models.SleepSession{}, ErrInvalidSleepType
	}
	if quality == 0 {
		quality = 3
	}
	if quality < 1 || quality > 5 {
		return models.SleepSession{}, ErrInvalidQuality
	}

	session := models.SleepSession{
		UserID:  userID,
		StartAt: startAt,
		EndAt:   endAt,
		Type:    sleepType,
		Quality: quality,
	}
	if err := service.sessions.Create(&session); err != nil {
		return models.SleepSession{}, ErrSleepSaveFailed
	}

	service.publish(bus.Event{Topic: bus.TopicSleepChanged, UserID: userID})
	return session, nil
}

func (service *SleepService) Delete(userID uint, sessionID uint) error {
	_, found, err := service.sessions.FindByUserAndID(userID, sessionID)
	if err != nil {
		return ErrSleepLoadFailed
	}
	if !found {
		return ErrSleepNotFound
	}
	if err := service.sessions.DeleteByUserAndID(userID, sessionID); err != nil {
		return ErrSleepDeleteFailed
	}

	service.publish(bus.Event{Topic: bus.TopicSleepChanged, UserID: userID})
	return nil
}

// RecentSessions loads the trailing window the signal calculators read,
// anchored at now.
func (service *SleepService) RecentSessions(userID uint, now time.Time, days int) ([]models.SleepSession, error) {
	from := now.AddDate(0, 0, -days)
	return service.List(userID, &from, &now)
}

func (service *SleepService) publish(event bus.Event) {
	if service.events == nil {
		return
	}
	service.events.Publish(event)
}
