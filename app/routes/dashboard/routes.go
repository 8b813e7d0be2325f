package dashboard

import (
	"database/sql"

	"venturepulse/app/models"
	"venturepulse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the admin portfolio overview
func SetupDashboardRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.AdminMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetDashboardAPI(c, db) })

	app.Get("/dashboard", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("dashboard/index", fiber.Map{
			"Title":       "Dashboard - VenturePulse",
			"CurrentPage": "dashboard",
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
			"user":        user,
		})
	})
}
