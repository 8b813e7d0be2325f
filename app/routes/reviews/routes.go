package reviews

import (
	"database/sql"
	"time"

	"venturepulse/app/routes/auth"
	"venturepulse/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// SetupReviewsRoutes sets up the AI quarterly-review endpoints. Generation
// hits the external model, so the group is rate-limited per IP; cache hits
// still count against the limit, which keeps the limiter simple.
func SetupReviewsRoutes(app *fiber.App, db *sql.DB, llm services.LLMClient) {
	api := app.Group("/api/reviews")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.AdminMiddleware)
	api.Use(limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
	}))
	api.Post("/generate", func(c *fiber.Ctx) error { return GenerateReviewAPI(c, db, llm) })
	api.Get("/", func(c *fiber.Ctx) error { return GetReviewAPI(c, db) })
}
