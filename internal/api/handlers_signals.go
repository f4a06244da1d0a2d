package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const defaultDailyCalories = 2000

func (handler *Handler) EnergySignal(c *fiber.Ctx) error {
	user := currentUser(c)
	curve, err := handler.signalsService.EnergyCurve(*user, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute energy curve")
	}
	return c.JSON(curve)
}

func (handler *Handler) BodyClockSignal(c *fiber.Ctx) error {
	user := currentUser(c)
	score, err := handler.signalsService.BodyClock(*user, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute body clock score")
	}
	return c.JSON(score)
}

func (handler *Handler) SleepSignal(c *fiber.Ctx) error {
	user := currentUser(c)
	summary, err := handler.signalsService.SleepSignals(*user, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute sleep signals")
	}
	return c.JSON(summary)
}

func (handler *Handler) MealSignal(c *fiber.Ctx) error {
	user := currentUser(c)

	calories := defaultDailyCalories
	if raw := c.Query("calories"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return apiError(c, fiber.StatusBadRequest, "calories must be a positive integer")
		}
		calories = parsed
	}

	slots, err := handler.signalsService.MealSchedule(*user, time.Now(), calories)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build meal schedule")
	}
	return c.JSON(fiber.Map{"slots": slots})
}
