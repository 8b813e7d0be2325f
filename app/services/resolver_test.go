package services

import (
	"errors"
	"fmt"
	"testing"

	"venturepulse/app/models"
)

// fakeQuestionStore is an in-memory QuestionStore for resolver tests.
type fakeQuestionStore struct {
	questions  []*models.Question
	nextID     int
	failInsert bool
}

func (s *fakeQuestionStore) CompanyQuestions(companyID string) ([]*models.Question, error) {
	var out []*models.Question
	for _, q := range s.questions {
		if q.CompanyID != nil && *q.CompanyID == companyID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *fakeQuestionStore) CreateQuestion(question *models.Question) error {
	if s.failInsert {
		return errors.New("duplicate key value violates unique constraint")
	}
	s.nextID++
	question.ID = fmt.Sprintf("q%d", s.nextID)
	s.questions = append(s.questions, question)
	return nil
}

func (s *fakeQuestionStore) FindQuestionByPrompt(companyID, categoryID, prompt string) (*models.Question, error) {
	for _, q := range s.questions {
		if q.CompanyID != nil && *q.CompanyID == companyID && q.CategoryID == categoryID && q.Prompt == prompt {
			return q, nil
		}
	}
	return nil, errors.New("not found")
}

func seededStore() *fakeQuestionStore {
	companyID := "acme"
	return &fakeQuestionStore{
		questions: []*models.Question{
			{ID: "existing", CategoryID: "c1", CompanyID: &companyID, Prompt: "We have PMF."},
		},
	}
}

func TestResolve_MatchesExistingByNormalizedPrompt(t *testing.T) {
	resolver, err := NewQuestionResolver(seededStore(), "acme")
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	id, err := resolver.Resolve("c1", "  we HAVE pmf ", 1)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id != "existing" {
		t.Fatalf("resolved to %s, want existing", id)
	}
	if resolver.Created() != 0 {
		t.Fatalf("no question should have been created, got %d", resolver.Created())
	}
}

func TestResolve_CreatesOnMissThenReusesInBatch(t *testing.T) {
	store := seededStore()
	resolver, err := NewQuestionResolver(store, "acme")
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	first, err := resolver.Resolve("c1", "We ship weekly", 2)
	if err != nil {
		t.Fatalf("resolve new statement: %v", err)
	}
	second, err := resolver.Resolve("c1", "we ship weekly!", 3)
	if err != nil {
		t.Fatalf("resolve duplicate statement: %v", err)
	}

	if first != second {
		t.Fatalf("duplicate statements in one batch resolved to %s and %s", first, second)
	}
	if resolver.Created() != 1 {
		t.Fatalf("expected exactly one creation, got %d", resolver.Created())
	}

	created, err := store.FindQuestionByPrompt("acme", "c1", "We ship weekly")
	if err != nil {
		t.Fatalf("created question not stored: %v", err)
	}
	if created.Prompt != "We ship weekly" {
		t.Fatalf("stored prompt should be the raw statement, got %q", created.Prompt)
	}
	if created.CompanyID == nil || *created.CompanyID != "acme" {
		t.Fatalf("created question must be company-scoped, got %+v", created.CompanyID)
	}
}

func TestResolve_InsertRaceRecoversByRefetch(t *testing.T) {
	companyID := "acme"
	store := seededStore()
	resolver, err := NewQuestionResolver(store, "acme")
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	// Simulate a concurrent identical insert: ours fails, theirs is found.
	store.questions = append(store.questions, &models.Question{
		ID: "theirs", CategoryID: "c2", CompanyID: &companyID, Prompt: "We ship weekly",
	})
	store.failInsert = true

	id, err := resolver.Resolve("c2", "We ship weekly", 1)
	if err != nil {
		t.Fatalf("resolve should recover from the race: %v", err)
	}
	if id != "theirs" {
		t.Fatalf("resolved to %s, want the concurrently inserted row", id)
	}
	if resolver.Created() != 0 {
		t.Fatalf("recovered resolution must not count as a creation")
	}
}

func TestResolve_UnrecoverableInsertReportsError(t *testing.T) {
	store := seededStore()
	store.failInsert = true
	resolver, err := NewQuestionResolver(store, "acme")
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	if _, err := resolver.Resolve("c1", "Completely new statement", 1); err == nil {
		t.Fatal("expected an error when insert fails and no row exists to recover")
	}
}
