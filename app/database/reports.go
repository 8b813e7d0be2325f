package database

import (
	"database/sql"
	"fmt"

	"venturepulse/app/models"
)

// UpsertMonthlyReport saves a founder's qualitative update, one row per
// (company, year, month).
func UpsertMonthlyReport(db *sql.DB, report *models.MonthlyReport) error {
	query := `INSERT INTO monthly_reports (company_id, year, month, team, product, sales, marketing, finance, fundraise, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			  ON CONFLICT (company_id, year, month)
			  DO UPDATE SET team = EXCLUDED.team, product = EXCLUDED.product, sales = EXCLUDED.sales,
							marketing = EXCLUDED.marketing, finance = EXCLUDED.finance,
							fundraise = EXCLUDED.fundraise, updated_at = NOW()
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		report.CompanyID, report.Year, report.Month,
		report.Team, report.Product, report.Sales,
		report.Marketing, report.Finance, report.Fundraise,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save monthly report: %v", err)
	}
	return nil
}

func scanReports(rows *sql.Rows) []*models.MonthlyReport {
	var reports []*models.MonthlyReport
	for rows.Next() {
		report := &models.MonthlyReport{}
		err := rows.Scan(
			&report.ID, &report.CompanyID, &report.Year, &report.Month,
			&report.Team, &report.Product, &report.Sales,
			&report.Marketing, &report.Finance, &report.Fundraise,
			&report.CreatedAt, &report.UpdatedAt,
		)
		if err != nil {
			continue
		}
		reports = append(reports, report)
	}

	if reports == nil {
		reports = []*models.MonthlyReport{}
	}
	return reports
}

func GetMonthlyReports(db *sql.DB, companyID string, year int) ([]*models.MonthlyReport, error) {
	query := `SELECT id, company_id, year, month, team, product, sales, marketing, finance, fundraise, created_at, updated_at
			  FROM monthly_reports
			  WHERE company_id = $1 AND year = $2
			  ORDER BY month`

	rows, err := db.Query(query, companyID, year)
	if err != nil {
		return []*models.MonthlyReport{}, nil
	}
	defer rows.Close()

	return scanReports(rows), nil
}

// GetReportsForQuarter returns the three monthly reports inside one quarter.
func GetReportsForQuarter(db *sql.DB, companyID string, year, quarter int) ([]*models.MonthlyReport, error) {
	firstMonth := (quarter-1)*3 + 1

	query := `SELECT id, company_id, year, month, team, product, sales, marketing, finance, fundraise, created_at, updated_at
			  FROM monthly_reports
			  WHERE company_id = $1 AND year = $2 AND month BETWEEN $3 AND $4
			  ORDER BY month`

	rows, err := db.Query(query, companyID, year, firstMonth, firstMonth+2)
	if err != nil {
		return []*models.MonthlyReport{}, nil
	}
	defer rows.Close()

	return scanReports(rows), nil
}
