package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shiftcoach/shiftcoach/internal/services"
)

type sleepInput struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Type    string    `json:"type"`
	Quality int       `json:"quality"`
}

func (handler *Handler) ListSleep(c *fiber.Ctx) error {
	user := currentUser(c)

	var from, to *time.Time
	if date, ok := handler.parseDayParam(c.Query("from")); ok {
		from = &date
	}
	if date, ok := handler.parseDayParam(c.Query("to")); ok {
		end := date.AddDate(0, 0, 1)
		to = &end
	}

	sessions, err := handler.sleepService.List(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load sleep sessions")
	}
	return c.JSON(fiber.Map{"sessions": sessions})
}

func (handler *Handler) CreateSleep(c *fiber.Ctx) error {
	user := currentUser(c)

	var input sleepInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	session, err := handler.sleepService.Log(user.ID, input.StartAt, input.EndAt, input.Type, input.Quality)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSleepWindow),
			errors.Is(err, services.ErrInvalidSleepType),
			errors.Is(err, services.ErrInvalidQuality):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save sleep session")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (handler *Handler) DeleteSleep(c *fiber.Ctx) error {
	user := currentUser(c)

	sessionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid session id")
	}

	if err := handler.sleepService.Delete(user.ID, uint(sessionID)); err != nil {
		if errors.Is(err, services.ErrSleepNotFound) {
			return apiError(c, fiber.StatusNotFound, "sleep session not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete sleep session")
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
