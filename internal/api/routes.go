package api

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	app.Post("/api/auth/register", handler.LoginRateLimit, handler.Register)
	app.Post("/api/auth/login", handler.LoginRateLimit, handler.Login)
	app.Post("/api/auth/logout", handler.Logout)
	app.Get("/api/auth/me", handler.AuthRequired, handler.Me)

	app.Get("/api/patterns", handler.ListPatterns)

	app.Get("/api/rota", handler.AuthRequired, handler.GetRota)
	app.Put("/api/rota", handler.AuthRequired, handler.PutRota)
	app.Post("/api/rota/clear", handler.AuthRequired, handler.ClearRota)
	app.Get("/api/rota/month", handler.AuthRequired, handler.CacheRead, handler.GetMonth)
	app.Post("/api/rota/recognize", handler.AuthRequired, handler.Recognize)
	app.Get("/api/rota/day/:date", handler.AuthRequired, handler.GetDay)
	app.Put("/api/rota/day/:date", handler.AuthRequired, handler.PutDay)
	app.Delete("/api/rota/day/:date", handler.AuthRequired, handler.DeleteDay)

	app.Get("/api/sleep", handler.AuthRequired, handler.ListSleep)
	app.Post("/api/sleep", handler.AuthRequired, handler.CreateSleep)
	app.Delete("/api/sleep/:id", handler.AuthRequired, handler.DeleteSleep)

	app.Get("/api/signals/energy", handler.AuthRequired, handler.EnergySignal)
	app.Get("/api/signals/bodyclock", handler.AuthRequired, handler.BodyClockSignal)
	app.Get("/api/signals/sleep", handler.AuthRequired, handler.SleepSignal)
	app.Get("/api/signals/meals", handler.AuthRequired, handler.MealSignal)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})
}
