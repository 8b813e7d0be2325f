package reports

import (
	"database/sql"
	"strconv"

	"venturepulse/app/database"
	"venturepulse/app/models"
	"venturepulse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func ListReportsAPI(c *fiber.Ctx, db *sql.DB) error {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "year is required"})
	}

	companyID, err := auth.CompanyScope(c, c.Query("company_id"))
	if err != nil {
		return err
	}

	reports, err := database.GetMonthlyReports(db, companyID, year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load reports"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reports": reports,
	})
}

// SaveReportAPI upserts one month's qualitative update; resaving a month
// replaces its fields.
func SaveReportAPI(c *fiber.Ctx, db *sql.DB) error {
	type SaveRequest struct {
		CompanyID string `json:"company_id"`
		Year      int    `json:"year"`
		Month     int    `json:"month"`
		Team      string `json:"team"`
		Product   string `json:"product"`
		Sales     string `json:"sales"`
		Marketing string `json:"marketing"`
		Finance   string `json:"finance"`
		Fundraise string `json:"fundraise"`
	}

	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Year < 2000 || req.Year > 2100 {
		return c.Status(400).JSON(fiber.Map{"error": "Year must be between 2000 and 2100"})
	}
	if req.Month < 1 || req.Month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "Month must be between 1 and 12"})
	}

	companyID, err := auth.CompanyScope(c, req.CompanyID)
	if err != nil {
		return err
	}

	report := &models.MonthlyReport{
		CompanyID: companyID,
		Year:      req.Year,
		Month:     req.Month,
		Team:      req.Team,
		Product:   req.Product,
		Sales:     req.Sales,
		Marketing: req.Marketing,
		Finance:   req.Finance,
		Fundraise: req.Fundraise,
	}
	if err := database.UpsertMonthlyReport(db, report); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save report"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"report":  report,
	})
}
