package database

import (
	"database/sql"
	"fmt"

	"venturepulse/app/models"
)

func GetAllCategories(db *sql.DB) ([]*models.Category, error) {
	query := `SELECT id, pillar, label, sequence, created_at, updated_at
			  FROM categories ORDER BY pillar, sequence, label`

	rows, err := db.Query(query)
	if err != nil {
		return []*models.Category{}, nil
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		err := rows.Scan(&category.ID, &category.Pillar, &category.Label,
			&category.Sequence, &category.CreatedAt, &category.UpdatedAt)
		if err != nil {
			continue
		}
		categories = append(categories, category)
	}

	if categories == nil {
		categories = []*models.Category{}
	}

	return categories, nil
}

// GetOrCreateCategory resolves a (pillar, label) pair to a category id, creating
// the row with the next sequence within the pillar when absent. Two concurrent
// imports can race on the sequence computation; the unique constraint makes one
// insert fail and the re-fetch below absorbs it.
func GetOrCreateCategory(db *sql.DB, pillar, label string) (string, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM categories WHERE pillar = $1 AND label = $2`, pillar, label).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("failed to look up category: %v", err)
	}

	var nextSeq int
	err = db.QueryRow(`SELECT COALESCE(MAX(sequence), 0) + 1 FROM categories WHERE pillar = $1`, pillar).Scan(&nextSeq)
	if err != nil {
		return "", fmt.Errorf("failed to compute category sequence: %v", err)
	}

	insertErr := db.QueryRow(
		`INSERT INTO categories (pillar, label, sequence, created_at, updated_at)
		 VALUES ($1, $2, $3, NOW(), NOW()) RETURNING id`,
		pillar, label, nextSeq,
	).Scan(&id)
	if insertErr == nil {
		return id, nil
	}

	// Lost a race against a concurrent identical insert.
	err = db.QueryRow(`SELECT id FROM categories WHERE pillar = $1 AND label = $2`, pillar, label).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create category %q/%q: %v", pillar, label, insertErr)
	}
	return id, nil
}
