package companies

import (
	"database/sql"
	"strings"

	"venturepulse/app/database"
	"venturepulse/app/models"

	"github.com/gofiber/fiber/v2"
)

func ListCompaniesAPI(c *fiber.Ctx, db *sql.DB) error {
	companies, err := database.GetAllCompanies(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load companies"})
	}

	type companySummary struct {
		*models.Company
		LatestPeriod *models.AssessmentPeriod `json:"latest_period,omitempty"`
	}

	summaries := make([]companySummary, 0, len(companies))
	for _, company := range companies {
		summary := companySummary{Company: company}
		periods, err := database.GetPeriodsByCompany(db, company.ID)
		if err == nil && len(periods) > 0 {
			summary.LatestPeriod = periods[0]
		}
		summaries = append(summaries, summary)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"companies": summaries,
	})
}

// PillarCategories groups one pillar's radar categories, preserving the
// pillar and sequence ordering the query returns.
type PillarCategories struct {
	Pillar     string             `json:"pillar"`
	Categories []*models.Category `json:"categories"`
}

func groupCategoriesByPillar(categories []*models.Category) []PillarCategories {
	groups := make([]PillarCategories, 0)
	for _, category := range categories {
		if n := len(groups); n == 0 || groups[n-1].Pillar != category.Pillar {
			groups = append(groups, PillarCategories{Pillar: category.Pillar})
		}
		last := &groups[len(groups)-1]
		last.Categories = append(last.Categories, category)
	}
	return groups
}

// ListCategoriesAPI returns the radar category catalog grouped by pillar.
func ListCategoriesAPI(c *fiber.Ctx, db *sql.DB) error {
	categories, err := database.GetAllCategories(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load categories"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"pillars": groupCategoriesByPillar(categories),
	})
}

func CreateCompanyAPI(c *fiber.Ctx, db *sql.DB) error {
	type CreateCompanyRequest struct {
		Name string `json:"name"`
	}

	var req CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Company name is required"})
	}

	company := &models.Company{Name: name}
	if err := database.CreateCompany(db, company); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create company"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"company": company,
	})
}

func RenameCompanyAPI(c *fiber.Ctx, db *sql.DB) error {
	type RenameRequest struct {
		Name string `json:"name"`
	}

	var req RenameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Company name is required"})
	}

	if err := database.UpdateCompanyName(db, c.Params("id"), name); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to rename company"})
	}

	return c.JSON(fiber.Map{"success": true})
}
