package assessments

import (
	"database/sql"

	"venturepulse/app/models"
	"venturepulse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAssessmentsRoutes sets up the assessment form, submission and radar routes
func SetupAssessmentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/assessments")
	api.Use(auth.AuthMiddleware)
	api.Get("/form", func(c *fiber.Ctx) error { return GetAssessmentFormAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return SubmitAssessmentAPI(c, db) })
	api.Get("/radar", func(c *fiber.Ctx) error { return GetRadarAPI(c, db) })
	api.Get("/periods", func(c *fiber.Ctx) error { return ListPeriodsAPI(c, db) })

	// Page route for the quarterly form
	app.Get("/assessment", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("assessments/form", fiber.Map{
			"Title":       "Quarterly Assessment - VenturePulse",
			"CurrentPage": "assessment",
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
			"user":        user,
		})
	})
}
