package reports

import (
	"database/sql"

	"venturepulse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupReportsRoutes sets up the monthly qualitative report endpoints
func SetupReportsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return ListReportsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return SaveReportAPI(c, db) })
}
