package imports

import (
	"database/sql"
	"encoding/json"
	"strings"

	"venturepulse/app/services"

	"github.com/gofiber/fiber/v2"
)

// ImportAssessmentAPI accepts a pasted pillar -> category -> statements JSON
// document for one (company, year, quarter) and runs the import pipeline.
// Partial failures come back in the result; only a fully failed import is an
// error response.
func ImportAssessmentAPI(c *fiber.Ctx, db *sql.DB) error {
	type ImportRequest struct {
		CompanyName string          `json:"company_name"`
		Year        int             `json:"year"`
		Quarter     int             `json:"quarter"`
		Payload     json.RawMessage `json:"payload"`
	}

	var req ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if strings.TrimSpace(req.CompanyName) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Company name is required"})
	}
	if len(req.Payload) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Payload is required"})
	}

	result, err := services.ImportAssessment(db, req.CompanyName, req.Year, req.Quarter, req.Payload)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"result":  result,
	})
}
