package database

import (
	"database/sql"
	"fmt"

	"venturepulse/app/models"
)

// GetCachedReview returns the stored review for (company, year, quarter) when
// one exists and has not expired. Expired rows are simply ignored; the next
// generation overwrites them in place.
func GetCachedReview(db *sql.DB, companyID string, year, quarter int) (*models.QuarterlyReview, error) {
	review := &models.QuarterlyReview{}
	query := `SELECT id, company_id, year, quarter, content, created_at, expires_at
			  FROM quarterly_reviews
			  WHERE company_id = $1 AND year = $2 AND quarter = $3 AND expires_at > NOW()`

	err := db.QueryRow(query, companyID, year, quarter).Scan(
		&review.ID, &review.CompanyID, &review.Year, &review.Quarter,
		&review.Content, &review.CreatedAt, &review.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return review, nil
}

// UpsertReview stores a freshly generated review with a 24-hour expiry,
// replacing any previous row for the same (company, year, quarter).
func UpsertReview(db *sql.DB, review *models.QuarterlyReview) error {
	query := `INSERT INTO quarterly_reviews (company_id, year, quarter, content, created_at, expires_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW() + INTERVAL '24 hours')
			  ON CONFLICT (company_id, year, quarter)
			  DO UPDATE SET content = EXCLUDED.content, created_at = NOW(), expires_at = NOW() + INTERVAL '24 hours'
			  RETURNING id, created_at, expires_at`

	err := db.QueryRow(query, review.CompanyID, review.Year, review.Quarter, review.Content).Scan(
		&review.ID, &review.CreatedAt, &review.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store quarterly review: %v", err)
	}
	return nil
}
