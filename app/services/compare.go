package services

import (
	"database/sql"

	"venturepulse/app/database"
	"venturepulse/app/models"
)

// SelectPriorPeriod picks the period whose scores should pre-fill a form for
// (year, quarter). In editing mode the period matching the current pair wins
// when it exists, so the user edits what they already submitted; otherwise the
// most recent period other than the current pair is chosen. Returns nil when
// nothing qualifies. Periods must be ordered (year desc, quarter desc), as
// GetPeriodsByCompany returns them.
func SelectPriorPeriod(periods []*models.AssessmentPeriod, year, quarter int, editing bool) *models.AssessmentPeriod {
	if editing {
		for _, p := range periods {
			if p.Year == year && p.Quarter == quarter {
				return p
			}
		}
	}
	for _, p := range periods {
		if p.Year == year && p.Quarter == quarter {
			continue
		}
		return p
	}
	return nil
}

// GetPriorScores builds the questionId->score map used to pre-populate a new
// assessment and to show deltas. A nil map means the company has no relevant
// prior period at all; an empty map means the period exists but holds no
// responses. Absence of a key means "no prior score", which callers must
// render distinctly from a prior score of 0.
func GetPriorScores(db *sql.DB, companyID string, year, quarter int, editing bool) (map[string]int, error) {
	periods, err := database.GetPeriodsByCompany(db, companyID)
	if err != nil {
		return nil, err
	}

	period := SelectPriorPeriod(periods, year, quarter, editing)
	if period == nil {
		return nil, nil
	}

	responses, err := database.GetResponsesByPeriod(db, period.ID)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]int, len(responses))
	for _, r := range responses {
		scores[r.QuestionID] = r.Score
	}
	return scores, nil
}

// ScoreDeltas computes the per-question change against the prior period.
// Only questions answered in both periods get an entry; a question that is
// new this quarter, or that was dropped, has no meaningful delta.
func ScoreDeltas(current, prior map[string]int) map[string]int {
	deltas := make(map[string]int)
	for questionID, score := range current {
		priorScore, ok := prior[questionID]
		if !ok {
			continue
		}
		deltas[questionID] = score - priorScore
	}
	return deltas
}
