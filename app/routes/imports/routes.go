package imports

import (
	"database/sql"
	"time"

	"venturepulse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// SetupImportsRoutes sets up the admin spreadsheet-import endpoint. Imports
// are heavyweight writes, so the group carries an in-memory per-IP limiter.
func SetupImportsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/imports")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.AdminMiddleware)
	api.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
	}))
	api.Post("/", func(c *fiber.Ctx) error { return ImportAssessmentAPI(c, db) })
}
