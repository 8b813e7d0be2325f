package database

import (
	"database/sql"
	"fmt"

	"venturepulse/app/models"
)

const questionColumns = `q.id, q.category_id, q.company_id, q.prompt, q.sequence, q.created_at, q.updated_at,
			  c.label AS category_name, c.pillar`

func scanQuestions(rows *sql.Rows) []*models.Question {
	var questions []*models.Question
	for rows.Next() {
		question := &models.Question{}
		err := rows.Scan(
			&question.ID, &question.CategoryID, &question.CompanyID, &question.Prompt,
			&question.Sequence, &question.CreatedAt, &question.UpdatedAt,
			&question.CategoryName, &question.Pillar,
		)
		if err != nil {
			continue
		}
		questions = append(questions, question)
	}

	if questions == nil {
		questions = []*models.Question{}
	}
	return questions
}

// GetCompanyQuestions returns the company-specific question bank only.
func GetCompanyQuestions(db *sql.DB, companyID string) ([]*models.Question, error) {
	query := `SELECT ` + questionColumns + `
			  FROM questions q
			  JOIN categories c ON q.category_id = c.id
			  WHERE q.company_id = $1
			  ORDER BY c.pillar, c.sequence, q.sequence`

	rows, err := db.Query(query, companyID)
	if err != nil {
		return []*models.Question{}, nil
	}
	defer rows.Close()

	return scanQuestions(rows), nil
}

// GetStandardQuestions returns the shared bank (questions with no company).
func GetStandardQuestions(db *sql.DB) ([]*models.Question, error) {
	query := `SELECT ` + questionColumns + `
			  FROM questions q
			  JOIN categories c ON q.category_id = c.id
			  WHERE q.company_id IS NULL
			  ORDER BY c.pillar, c.sequence, q.sequence`

	rows, err := db.Query(query)
	if err != nil {
		return []*models.Question{}, nil
	}
	defer rows.Close()

	return scanQuestions(rows), nil
}

// GetQuestionsForCompany returns the company's own bank when it has one, and
// falls back to the standard bank otherwise.
func GetQuestionsForCompany(db *sql.DB, companyID string) ([]*models.Question, error) {
	questions, err := GetCompanyQuestions(db, companyID)
	if err != nil {
		return nil, err
	}
	if len(questions) > 0 {
		return questions, nil
	}
	return GetStandardQuestions(db)
}

// CreateQuestion inserts a question and fills in its generated id.
func CreateQuestion(db *sql.DB, question *models.Question) error {
	query := `INSERT INTO questions (category_id, company_id, prompt, sequence, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, question.CategoryID, question.CompanyID, question.Prompt, question.Sequence).Scan(
		&question.ID, &question.CreatedAt, &question.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create question: %v", err)
	}
	return nil
}

// FindQuestionByPrompt looks up a question by exact (company, category, prompt).
// Used to recover when an insert loses a race against an identical one.
func FindQuestionByPrompt(db *sql.DB, companyID, categoryID, prompt string) (*models.Question, error) {
	question := &models.Question{}
	query := `SELECT id, category_id, company_id, prompt, sequence, created_at, updated_at
			  FROM questions
			  WHERE company_id = $1 AND category_id = $2 AND prompt = $3
			  LIMIT 1`

	err := db.QueryRow(query, companyID, categoryID, prompt).Scan(
		&question.ID, &question.CategoryID, &question.CompanyID, &question.Prompt,
		&question.Sequence, &question.CreatedAt, &question.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return question, nil
}
