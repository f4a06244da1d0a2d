package services

import (
	"errors"
	"time"
)

var (
	ErrDraftIncomplete   = errors.New("rota draft is incomplete")
	ErrDraftBadSequence  = errors.New("rota draft sequence contains invalid labels")
	ErrDraftAllOff       = errors.New("rota draft sequence has no working days")
	ErrDraftBadAnchor    = errors.New("rota draft anchor index out of range")
	ErrDraftUnknownPlan  = errors.New("rota draft references an unknown pattern")
	ErrDraftBadDateRange = errors.New("rota draft end date precedes start date")
)

// RotaDraft is the in-progress setup state: a catalog pattern pick or a
// free-form painted sequence, the start date the cycle anchors to, and an
// optional end date. It is a plain value so it can round-trip through JSON
// between wizard steps.
type RotaDraft struct {
	PatternID string       `json:"pattern_id,omitempty"`
	Sequence  []ShiftLabel `json:"sequence,omitempty"`
	StartDate time.Time    `json:"start_date"`
	AnchorIdx int          `json:"anchor_index"`
	EndDate   *time.Time   `json:"end_date,omitempty"`
}

// Cycle resolves the draft's effective cycle: recognized repeating core of a
// painted sequence if one exists, otherwise the sequence itself, otherwise
// the catalog pattern's cycle.
func (draft RotaDraft) Cycle() ([]ShiftLabel, error) {
	if len(draft.Sequence) > 0 {
		if cycle, ok := RecognizeCycle(draft.Sequence); ok {
			return cycle, nil
		}
		cycle := make([]ShiftLabel, len(draft.Sequence))
		copy(cycle, draft.Sequence)
		return cycle, nil
	}
	if draft.PatternID != "" {
		descriptor, found := PatternByID(draft.PatternID)
		if !found {
			return nil, ErrDraftUnknownPlan
		}
		return CycleFor(descriptor.ID), nil
	}
	return nil, ErrDraftIncomplete
}

// Validate checks the draft is ready to commit. The anchor index must sit
// inside the resolved cycle; the commit path would normalize any value by
// floored modulo, but out-of-range wizard input is a mistake worth failing.
func (draft RotaDraft) Validate() error {
	if draft.StartDate.IsZero() {
		return ErrDraftIncomplete
	}
	if draft.EndDate != nil && draft.EndDate.Before(draft.StartDate) {
		return ErrDraftBadDateRange
	}

	if len(draft.Sequence) > 0 {
		working := false
		for _, label := range draft.Sequence {
			if !label.Valid() {
				return ErrDraftBadSequence
			}
			if label.IsWorking() {
				working = true
			}
		}
		if !working {
			return ErrDraftAllOff
		}
	}

	cycle, err := draft.Cycle()
	if err != nil {
		return err
	}
	if draft.AnchorIdx < 0 || draft.AnchorIdx >= len(cycle) {
		return ErrDraftBadAnchor
	}
	return nil
}
