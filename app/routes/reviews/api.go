package reviews

import (
	"database/sql"
	"strconv"

	"venturepulse/app/database"
	"venturepulse/app/services"

	"github.com/gofiber/fiber/v2"
)

// GenerateReviewAPI returns the cached quarterly review when fresh, otherwise
// generates one through the model and caches it for 24 hours.
func GenerateReviewAPI(c *fiber.Ctx, db *sql.DB, llm services.LLMClient) error {
	type GenerateRequest struct {
		CompanyID string `json:"company_id"`
		Year      int    `json:"year"`
		Quarter   int    `json:"quarter"`
	}

	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.CompanyID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Company id is required"})
	}
	if req.Year < 2000 || req.Year > 2100 {
		return c.Status(400).JSON(fiber.Map{"error": "Year must be between 2000 and 2100"})
	}
	if req.Quarter < 1 || req.Quarter > 4 {
		return c.Status(400).JSON(fiber.Map{"error": "Quarter must be between 1 and 4"})
	}

	content, cached, err := services.GenerateQuarterlyReview(c.Context(), db, llm, req.CompanyID, req.Year, req.Quarter)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"cached":  cached,
		"review":  content,
	})
}

// GetReviewAPI returns the cached review only, without triggering generation.
func GetReviewAPI(c *fiber.Ctx, db *sql.DB) error {
	companyID := c.Query("company_id")
	year, errYear := strconv.Atoi(c.Query("year"))
	quarter, errQuarter := strconv.Atoi(c.Query("quarter"))
	if companyID == "" || errYear != nil || errQuarter != nil {
		return c.Status(400).JSON(fiber.Map{"error": "company_id, year and quarter are required"})
	}

	review, err := database.GetCachedReview(db, companyID, year, quarter)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "No cached review for that quarter"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	content := services.ParseReviewResponse(review.Content)
	return c.JSON(fiber.Map{
		"success":    true,
		"cached":     true,
		"created_at": review.CreatedAt,
		"expires_at": review.ExpiresAt,
		"review":     content,
	})
}
