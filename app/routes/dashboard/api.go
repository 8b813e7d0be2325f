package dashboard

import (
	"database/sql"

	"venturepulse/app/database"
	"venturepulse/app/models"
	"venturepulse/app/services"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardAPI returns every company with its most recent assessment and
// the per-pillar mean of that quarter's category scores.
func GetDashboardAPI(c *fiber.Ctx, db *sql.DB) error {
	companies, err := database.GetAllCompanies(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load companies"})
	}

	type companyOverview struct {
		Company      *models.Company          `json:"company"`
		LatestPeriod *models.AssessmentPeriod `json:"latest_period,omitempty"`
		PillarMeans  map[string]float64       `json:"pillar_means,omitempty"`
	}

	overviews := make([]companyOverview, 0, len(companies))
	for _, company := range companies {
		overview := companyOverview{Company: company}

		periods, err := database.GetPeriodsByCompany(db, company.ID)
		if err == nil && len(periods) > 0 {
			overview.LatestPeriod = periods[0]
			axes, err := services.PeriodAxes(db, company.ID, periods[0].ID)
			if err == nil && len(axes) > 0 {
				overview.PillarMeans = pillarMeans(axes)
			}
		}

		overviews = append(overviews, overview)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"companies": overviews,
	})
}

func pillarMeans(axes []services.CategoryAxis) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, axis := range axes {
		sums[axis.Pillar] += axis.AverageScore()
		counts[axis.Pillar]++
	}

	means := make(map[string]float64, len(sums))
	for pillar, sum := range sums {
		means[pillar] = sum / float64(counts[pillar])
	}
	return means
}
