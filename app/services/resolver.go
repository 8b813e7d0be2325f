package services

import (
	"database/sql"

	"venturepulse/app/database"
	"venturepulse/app/models"
)

// QuestionStore is the slice of the datastore the resolver needs. The
// production implementation wraps the database helpers; tests substitute an
// in-memory fake.
type QuestionStore interface {
	CompanyQuestions(companyID string) ([]*models.Question, error)
	CreateQuestion(question *models.Question) error
	FindQuestionByPrompt(companyID, categoryID, prompt string) (*models.Question, error)
}

type dbQuestionStore struct {
	db *sql.DB
}

func (s dbQuestionStore) CompanyQuestions(companyID string) ([]*models.Question, error) {
	return database.GetCompanyQuestions(s.db, companyID)
}

func (s dbQuestionStore) CreateQuestion(question *models.Question) error {
	return database.CreateQuestion(s.db, question)
}

func (s dbQuestionStore) FindQuestionByPrompt(companyID, categoryID, prompt string) (*models.Question, error) {
	return database.FindQuestionByPrompt(s.db, companyID, categoryID, prompt)
}

// NewDBQuestionStore wraps a live connection in the QuestionStore surface.
func NewDBQuestionStore(db *sql.DB) QuestionStore {
	return dbQuestionStore{db: db}
}

// QuestionResolver maps imported statements onto a company's question rows,
// creating company-specific questions lazily. The index of existing prompts is
// built once per import run; statements created mid-batch join the index so
// later duplicates in the same batch resolve to the same id. Not safe for
// concurrent use; an import resolves statements sequentially.
type QuestionResolver struct {
	store     QuestionStore
	companyID string
	byPrompt  map[string]string // normalized prompt -> question id
	created   int
}

// NewQuestionResolver loads the company's existing questions and indexes their
// normalized prompts.
func NewQuestionResolver(store QuestionStore, companyID string) (*QuestionResolver, error) {
	existing, err := store.CompanyQuestions(companyID)
	if err != nil {
		return nil, err
	}

	byPrompt := make(map[string]string, len(existing))
	for _, q := range existing {
		byPrompt[NormalizeStatement(q.Prompt)] = q.ID
	}

	return &QuestionResolver{
		store:     store,
		companyID: companyID,
		byPrompt:  byPrompt,
	}, nil
}

// Resolve returns the question id for a statement, inserting a new
// company-specific question on first sight. An insert that loses a race
// against a concurrent identical insert recovers by re-fetching on the exact
// (company, category, prompt); if that also misses, the statement is reported
// as unresolvable and the caller records it as a failure and moves on.
func (r *QuestionResolver) Resolve(categoryID, statement string, sequence int) (string, error) {
	key := NormalizeStatement(statement)
	if id, ok := r.byPrompt[key]; ok {
		return id, nil
	}

	question := &models.Question{
		CategoryID: categoryID,
		CompanyID:  &r.companyID,
		Prompt:     statement,
		Sequence:   sequence,
	}
	if err := r.store.CreateQuestion(question); err != nil {
		recovered, findErr := r.store.FindQuestionByPrompt(r.companyID, categoryID, statement)
		if findErr != nil {
			return "", err
		}
		r.byPrompt[key] = recovered.ID
		return recovered.ID, nil
	}

	r.byPrompt[key] = question.ID
	r.created++
	return question.ID, nil
}

// Created reports how many new questions this resolver inserted.
func (r *QuestionResolver) Created() int {
	return r.created
}
