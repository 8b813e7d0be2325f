package main

import (
	"encoding/json"
	"log"

	"venturepulse/app/config"
	"venturepulse/app/database"
	"venturepulse/app/routes/assessments"
	"venturepulse/app/routes/auth"
	"venturepulse/app/routes/companies"
	"venturepulse/app/routes/dashboard"
	"venturepulse/app/routes/imports"
	"venturepulse/app/routes/reports"
	"venturepulse/app/routes/reviews"
	"venturepulse/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	// Handle different error codes for web requests
	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - VenturePulse",
			"CurrentPage": "",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized - VenturePulse",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - VenturePulse",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - VenturePulse",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
		BodyLimit:         services.MaxImportPayloadBytes * 2,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	db := config.GetDB()
	llm := services.NewOpenAIClient(config.GetLLM())

	// Routes
	auth.SetupAuthRoutes(app)
	companies.SetupCompaniesRoutes(app, db)
	assessments.SetupAssessmentsRoutes(app, db)
	imports.SetupImportsRoutes(app, db)
	reviews.SetupReviewsRoutes(app, db, llm)
	reports.SetupReportsRoutes(app, db)
	dashboard.SetupDashboardRoutes(app, db)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	port := config.GetServerPort()
	log.Printf("Starting VenturePulse on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
