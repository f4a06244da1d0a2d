package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dayParamLayout = "2006-01-02"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// parseDayParam reads a YYYY-MM-DD path or query value in the handler's
// configured timezone.
func (handler *Handler) parseDayParam(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(dayParamLayout, value, handler.location)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	database, err := handler.db.DB()
	if err != nil || database.Ping() != nil {
		return apiError(c, fiber.StatusServiceUnavailable, "database unavailable")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
