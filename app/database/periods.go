package database

import (
	"database/sql"
	"fmt"

	"venturepulse/app/models"
)

// GetPeriodsByCompany lists a company's assessment periods newest first.
func GetPeriodsByCompany(db *sql.DB, companyID string) ([]*models.AssessmentPeriod, error) {
	query := `SELECT id, company_id, year, quarter, created_at, updated_at
			  FROM assessment_periods
			  WHERE company_id = $1
			  ORDER BY year DESC, quarter DESC`

	rows, err := db.Query(query, companyID)
	if err != nil {
		return []*models.AssessmentPeriod{}, nil
	}
	defer rows.Close()

	var periods []*models.AssessmentPeriod
	for rows.Next() {
		period := &models.AssessmentPeriod{}
		err := rows.Scan(&period.ID, &period.CompanyID, &period.Year, &period.Quarter,
			&period.CreatedAt, &period.UpdatedAt)
		if err != nil {
			continue
		}
		periods = append(periods, period)
	}

	if periods == nil {
		periods = []*models.AssessmentPeriod{}
	}

	return periods, nil
}

func GetPeriod(db *sql.DB, companyID string, year, quarter int) (*models.AssessmentPeriod, error) {
	period := &models.AssessmentPeriod{}
	query := `SELECT id, company_id, year, quarter, created_at, updated_at
			  FROM assessment_periods
			  WHERE company_id = $1 AND year = $2 AND quarter = $3`

	err := db.QueryRow(query, companyID, year, quarter).Scan(
		&period.ID, &period.CompanyID, &period.Year, &period.Quarter,
		&period.CreatedAt, &period.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return period, nil
}

func CreatePeriod(db *sql.DB, period *models.AssessmentPeriod) error {
	query := `INSERT INTO assessment_periods (company_id, year, quarter, created_at, updated_at)
			  VALUES ($1, $2, $3, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, period.CompanyID, period.Year, period.Quarter).Scan(
		&period.ID, &period.CreatedAt, &period.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create assessment period: %v", err)
	}
	return nil
}

// DeletePeriod removes a period row; its responses go with it via the
// ON DELETE CASCADE on assessment_responses.
func DeletePeriod(db *sql.DB, periodID string) error {
	_, err := db.Exec(`DELETE FROM assessment_periods WHERE id = $1`, periodID)
	return err
}

// InsertResponses bulk-inserts the accumulated responses for a period.
func InsertResponses(db *sql.DB, periodID string, responses []*models.AssessmentResponse) error {
	if len(responses) == 0 {
		return nil
	}

	stmt, err := db.Prepare(`INSERT INTO assessment_responses (period_id, question_id, score, created_at)
							 VALUES ($1, $2, $3, NOW())`)
	if err != nil {
		return fmt.Errorf("failed to prepare response insert: %v", err)
	}
	defer stmt.Close()

	for _, response := range responses {
		if _, err := stmt.Exec(periodID, response.QuestionID, response.Score); err != nil {
			return fmt.Errorf("failed to insert response for question %s: %v", response.QuestionID, err)
		}
	}
	return nil
}

// GetResponsesByPeriod returns all scored answers for one period.
func GetResponsesByPeriod(db *sql.DB, periodID string) ([]*models.AssessmentResponse, error) {
	query := `SELECT id, period_id, question_id, score, created_at
			  FROM assessment_responses
			  WHERE period_id = $1`

	rows, err := db.Query(query, periodID)
	if err != nil {
		return []*models.AssessmentResponse{}, nil
	}
	defer rows.Close()

	var responses []*models.AssessmentResponse
	for rows.Next() {
		response := &models.AssessmentResponse{}
		err := rows.Scan(&response.ID, &response.PeriodID, &response.QuestionID,
			&response.Score, &response.CreatedAt)
		if err != nil {
			continue
		}
		responses = append(responses, response)
	}

	if responses == nil {
		responses = []*models.AssessmentResponse{}
	}

	return responses, nil
}
