package companies

import (
	"database/sql"

	"venturepulse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupCompaniesRoutes sets up the admin-only company management routes
func SetupCompaniesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/companies")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.AdminMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return ListCompaniesAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateCompanyAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return RenameCompanyAPI(c, db) })

	categories := app.Group("/api/categories")
	categories.Use(auth.AuthMiddleware)
	categories.Use(auth.AdminMiddleware)
	categories.Get("/", func(c *fiber.Ctx) error { return ListCategoriesAPI(c, db) })
}
