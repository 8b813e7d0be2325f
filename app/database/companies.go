package database

import (
	"database/sql"
	"fmt"

	"venturepulse/app/models"
)

func GetAllCompanies(db *sql.DB) ([]*models.Company, error) {
	query := `SELECT id, name, created_at, updated_at FROM companies ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return []*models.Company{}, nil
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		company := &models.Company{}
		err := rows.Scan(&company.ID, &company.Name, &company.CreatedAt, &company.UpdatedAt)
		if err != nil {
			continue
		}
		companies = append(companies, company)
	}

	if companies == nil {
		companies = []*models.Company{}
	}

	return companies, nil
}

func GetCompanyByID(db *sql.DB, companyID string) (*models.Company, error) {
	company := &models.Company{}
	query := `SELECT id, name, created_at, updated_at FROM companies WHERE id = $1`

	err := db.QueryRow(query, companyID).Scan(
		&company.ID, &company.Name, &company.CreatedAt, &company.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return company, nil
}

func CreateCompany(db *sql.DB, company *models.Company) error {
	query := `INSERT INTO companies (name, created_at, updated_at) VALUES ($1, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, company.Name).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
}

func UpdateCompanyName(db *sql.DB, companyID, name string) error {
	result, err := db.Exec(`UPDATE companies SET name = $1, updated_at = NOW() WHERE id = $2`, name, companyID)
	if err != nil {
		return fmt.Errorf("failed to update company: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("company not found")
	}
	return nil
}
