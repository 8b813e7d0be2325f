package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"venturepulse/app/database"
	"venturepulse/app/models"
)

// MaxImportPayloadBytes bounds pasted import payloads before parsing.
const MaxImportPayloadBytes = 256 * 1024

// ImportStatement is one leaf of the pillar -> category -> statements payload
// after structural validation and score coercion.
type ImportStatement struct {
	Pillar    string
	Category  string
	Statement string
	Score     int
}

// ImportFailure records one malformed or unresolvable entry. Failures never
// abort an import on their own.
type ImportFailure struct {
	Pillar   string `json:"pillar"`
	Category string `json:"category,omitempty"`
	Reason   string `json:"reason"`
}

// ImportResult summarizes a completed import.
type ImportResult struct {
	ResponsesImported int             `json:"responses_imported"`
	QuestionsCreated  int             `json:"questions_created"`
	Failures          []ImportFailure `json:"failures"`
}

// coerceScore maps a raw payload score onto [0,5]. Numeric values (including
// numeric strings) are rounded to the nearest integer; anything out of range,
// non-numeric, or missing becomes 0. Messy spreadsheet exports are expected
// here, so a bad score is not a failure — only a malformed entry is.
func coerceScore(raw interface{}) int {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || f < 0 || f > 5 {
		return 0
	}
	return int(math.Round(f))
}

// ParseImportPayload decodes the nested pillar -> category -> [{statement,
// score}] document, validating structurally leaf by leaf. A JSON-level parse
// failure is returned as an error; shape problems below the top level become
// per-entry failures and parsing continues.
func ParseImportPayload(raw []byte) ([]ImportStatement, []ImportFailure, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, nil, fmt.Errorf("payload is not a JSON object: %v", err)
	}

	var statements []ImportStatement
	var failures []ImportFailure

	for pillar, rawCategories := range payload {
		var categories map[string]json.RawMessage
		if err := json.Unmarshal(rawCategories, &categories); err != nil {
			failures = append(failures, ImportFailure{
				Pillar: pillar,
				Reason: "pillar value is not an object of categories",
			})
			continue
		}

		for label, rawItems := range categories {
			var items []json.RawMessage
			if err := json.Unmarshal(rawItems, &items); err != nil {
				failures = append(failures, ImportFailure{
					Pillar:   pillar,
					Category: label,
					Reason:   "category value is not an array of statements",
				})
				continue
			}

			for i, rawItem := range items {
				var item struct {
					Statement *string     `json:"statement"`
					Score     interface{} `json:"score"`
				}
				if err := json.Unmarshal(rawItem, &item); err != nil {
					failures = append(failures, ImportFailure{
						Pillar:   pillar,
						Category: label,
						Reason:   fmt.Sprintf("item %d is not an object", i+1),
					})
					continue
				}
				if item.Statement == nil || strings.TrimSpace(*item.Statement) == "" {
					failures = append(failures, ImportFailure{
						Pillar:   pillar,
						Category: label,
						Reason:   fmt.Sprintf("item %d has no statement", i+1),
					})
					continue
				}

				statements = append(statements, ImportStatement{
					Pillar:    pillar,
					Category:  label,
					Statement: strings.TrimSpace(*item.Statement),
					Score:     coerceScore(item.Score),
				})
			}
		}
	}

	return statements, failures, nil
}

// resolveImportCompany matches the payload's company name against stored rows,
// case-insensitively on cleaned names. Zero or multiple matches is an error:
// guessing would write into the wrong company's data.
func resolveImportCompany(db *sql.DB, companyName string) (*models.Company, error) {
	cleaned := CleanCompanyName(companyName)
	if cleaned == "" {
		return nil, fmt.Errorf("company name is empty after cleaning")
	}

	companies, err := database.GetAllCompanies(db)
	if err != nil {
		return nil, err
	}

	var matches []*models.Company
	for _, c := range companies {
		if strings.EqualFold(CleanCompanyName(c.Name), cleaned) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no company matches %q", companyName)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("company name %q is ambiguous (%d matches)", companyName, len(matches))
	}
}

// ImportAssessment runs the full pipeline for one (company, year, quarter)
// payload: validate, parse, resolve categories and questions (creating them on
// the fly), then destructively replace the period and bulk-insert its
// responses. Duplicate statements in one batch resolve to the same question
// but each keeps its own response row; the aggregator averages them.
//
// The delete-then-insert replacement is two explicit phases with no app-level
// transaction. A crash in between leaves the period absent or empty, which
// reads as an interrupted import and is fixed by re-importing.
func ImportAssessment(db *sql.DB, companyName string, year, quarter int, payload []byte) (*ImportResult, error) {
	company, err := resolveImportCompany(db, companyName)
	if err != nil {
		return nil, err
	}
	if quarter < 1 || quarter > 4 {
		return nil, fmt.Errorf("quarter must be between 1 and 4, got %d", quarter)
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("year must be between 2000 and 2100, got %d", year)
	}
	if len(payload) > MaxImportPayloadBytes {
		return nil, fmt.Errorf("payload exceeds %d bytes", MaxImportPayloadBytes)
	}

	statements, failures, err := ParseImportPayload(payload)
	if err != nil {
		return nil, err
	}

	resolver, err := NewQuestionResolver(NewDBQuestionStore(db), company.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank: %v", err)
	}

	categoryIDs := make(map[string]string) // pillar "\x00" label -> id
	sequenceInCategory := make(map[string]int)
	var responses []*models.AssessmentResponse

	for _, stmt := range statements {
		catKey := stmt.Pillar + "\x00" + stmt.Category
		categoryID, ok := categoryIDs[catKey]
		if !ok {
			categoryID, err = database.GetOrCreateCategory(db, stmt.Pillar, stmt.Category)
			if err != nil {
				failures = append(failures, ImportFailure{
					Pillar:   stmt.Pillar,
					Category: stmt.Category,
					Reason:   fmt.Sprintf("failed to resolve category: %v", err),
				})
				continue
			}
			categoryIDs[catKey] = categoryID
		}

		sequenceInCategory[catKey]++
		questionID, err := resolver.Resolve(categoryID, stmt.Statement, sequenceInCategory[catKey])
		if err != nil {
			failures = append(failures, ImportFailure{
				Pillar:   stmt.Pillar,
				Category: stmt.Category,
				Reason:   fmt.Sprintf("failed to resolve question %q: %v", stmt.Statement, err),
			})
			continue
		}

		responses = append(responses, &models.AssessmentResponse{
			QuestionID: questionID,
			Score:      stmt.Score,
		})
	}

	if len(responses) == 0 {
		// Zero successes from a submitted payload points at a systemic
		// mismatch (wrong company's bank, wrong format), not bad rows.
		return nil, fmt.Errorf("no statements could be imported (%s)", summarizeFailures(failures))
	}

	if existing, err := database.GetPeriod(db, company.ID, year, quarter); err == nil {
		if err := database.DeletePeriod(db, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to replace existing period: %v", err)
		}
	} else if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to check for existing period: %v", err)
	}

	period := &models.AssessmentPeriod{CompanyID: company.ID, Year: year, Quarter: quarter}
	if err := database.CreatePeriod(db, period); err != nil {
		return nil, err
	}
	if err := database.InsertResponses(db, period.ID, responses); err != nil {
		return nil, err
	}

	log.Printf("Imported %d responses for %s %d Q%d (%d questions created, %d failures)",
		len(responses), company.Name, year, quarter, resolver.Created(), len(failures))

	if failures == nil {
		failures = []ImportFailure{}
	}
	return &ImportResult{
		ResponsesImported: len(responses),
		QuestionsCreated:  resolver.Created(),
		Failures:          failures,
	}, nil
}

func summarizeFailures(failures []ImportFailure) string {
	if len(failures) == 0 {
		return "payload contains no statements"
	}
	reasons := make([]string, 0, len(failures))
	for i, f := range failures {
		if i == 3 {
			reasons = append(reasons, fmt.Sprintf("and %d more", len(failures)-3))
			break
		}
		reasons = append(reasons, f.Reason)
	}
	return fmt.Sprintf("%d failures: %s", len(failures), strings.Join(reasons, "; "))
}
