package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shiftcoach/shiftcoach/internal/services"
)

// ListPatterns serves the catalog, optionally filtered by shift length
// ("8h", "12h", "16h").
func (handler *Handler) ListPatterns(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"patterns": services.ListPatterns(c.Query("length")),
	})
}
