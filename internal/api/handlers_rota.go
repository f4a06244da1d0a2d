package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shiftcoach/shiftcoach/internal/services"
)

type rotaDraftInput struct {
	PatternID   string   `json:"pattern_id"`
	Sequence    []string `json:"sequence"`
	StartDate   string   `json:"start_date"`
	AnchorIndex int      `json:"anchor_index"`
	EndDate     string   `json:"end_date"`
}

type overrideInput struct {
	Label string `json:"label"`
}

type recognizeInput struct {
	Labels []string `json:"labels"`
}

// GetRota returns the active window plus its resolved cycle, or an explicit
// empty payload when the user has none.
func (handler *Handler) GetRota(c *fiber.Ctx) error {
	user := currentUser(c)
	stored, window, found, err := handler.rotaService.ActiveWindow(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load rota")
	}
	if !found {
		return c.JSON(fiber.Map{"rota": nil})
	}
	return c.JSON(fiber.Map{
		"rota":  stored,
		"cycle": window.Alignment.Cycle,
	})
}

func (handler *Handler) PutRota(c *fiber.Ctx) error {
	user := currentUser(c)

	var input rotaDraftInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	startDate, ok := handler.parseDayParam(input.StartDate)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}

	draft := services.RotaDraft{
		PatternID: strings.TrimSpace(input.PatternID),
		StartDate: startDate,
		AnchorIdx: input.AnchorIndex,
	}
	for _, raw := range input.Sequence {
		draft.Sequence = append(draft.Sequence, services.ShiftLabel(strings.TrimSpace(raw)))
	}
	if input.EndDate != "" {
		endDate, ok := handler.parseDayParam(input.EndDate)
		if !ok {
			return apiError(c, fiber.StatusBadRequest, "end_date must be YYYY-MM-DD")
		}
		draft.EndDate = &endDate
	}

	window, err := handler.rotaService.ApplyDraft(user.ID, draft)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDraftIncomplete),
			errors.Is(err, services.ErrDraftBadSequence),
			errors.Is(err, services.ErrDraftAllOff),
			errors.Is(err, services.ErrDraftBadAnchor),
			errors.Is(err, services.ErrDraftUnknownPlan),
			errors.Is(err, services.ErrDraftBadDateRange):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save rota")
		}
	}
	return c.JSON(window)
}

func (handler *Handler) ClearRota(c *fiber.Ctx) error {
	user := currentUser(c)
	if err := handler.rotaService.ClearRota(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear rota")
	}
	return c.JSON(fiber.Map{"status": "cleared"})
}

// GetMonth projects a whole calendar month, defaulting to the current one.
func (handler *Handler) GetMonth(c *fiber.Ctx) error {
	user := currentUser(c)

	reference := time.Now().In(handler.location)
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01", raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "month must be YYYY-MM")
		}
		reference = parsed
	}

	first, next := services.MonthBounds(reference, handler.location)
	days, err := handler.rotaService.ResolveRange(user.ID, first, next.AddDate(0, 0, -1))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to project month")
	}
	return c.JSON(fiber.Map{
		"month": first.Format("2006-01"),
		"days":  days,
	})
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	user := currentUser(c)
	date, ok := handler.parseDayParam(c.Params("date"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	label, err := handler.rotaService.ResolveDay(user.ID, date)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to resolve day")
	}
	return c.JSON(fiber.Map{
		"date":  date.Format("2006-01-02"),
		"label": label,
	})
}

func (handler *Handler) PutDay(c *fiber.Ctx) error {
	user := currentUser(c)
	date, ok := handler.parseDayParam(c.Params("date"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	var input overrideInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	label := services.ShiftLabel(strings.TrimSpace(input.Label))
	override, err := handler.rotaService.SetOverride(user.ID, date, label)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOverride) {
			return apiError(c, fiber.StatusBadRequest, "unknown shift label")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save override")
	}
	return c.JSON(override)
}

func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	user := currentUser(c)
	date, ok := handler.parseDayParam(c.Params("date"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	if err := handler.rotaService.DeleteOverride(user.ID, date); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete override")
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// Recognize extracts the shortest repeating cycle from a painted sequence.
// A sequence with no repetition inside it answers null rather than an error.
func (handler *Handler) Recognize(c *fiber.Ctx) error {
	var input recognizeInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	sequence := make([]services.ShiftLabel, 0, len(input.Labels))
	for _, raw := range input.Labels {
		label := services.ShiftLabel(strings.TrimSpace(raw))
		if !label.Valid() {
			return apiError(c, fiber.StatusBadRequest, "unknown shift label")
		}
		sequence = append(sequence, label)
	}

	cycle, found := services.RecognizeCycle(sequence)
	if !found {
		return c.JSON(fiber.Map{"cycle": nil})
	}
	return c.JSON(fiber.Map{"cycle": cycle})
}
