package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"venturepulse/app/database"
	"venturepulse/app/models"
)

const reviewInstructions = `You are an investment analyst reviewing a portfolio company's quarterly self-assessment.
You receive the company's category scores (1-5 Likert means grouped by pillar) for the current and previous quarter, plus the founders' monthly qualitative reports.

Respond with ONLY a JSON object in this exact shape (no markdown, no prose outside the JSON):
{
  "executive_summary": string,
  "insights": [
    {
      "title": string,
      "description": string,
      "type": "improvement" | "decline" | "shift" | "correlation",
      "category": string,
      "pillar": string,
      "change": number,
      "current_score": number,
      "previous_score": number
    }
  ],
  "recommendations": [string]
}

Focus on meaningful score movements between quarters and on tensions between the scores and the qualitative reports.`

// flattenAxes turns a CategoryAxis list into the {pillar: {category: score}}
// nesting embedded in the prompt.
func flattenAxes(axes []CategoryAxis) map[string]map[string]float64 {
	out := make(map[string]map[string]float64)
	for _, axis := range axes {
		pillar, ok := out[axis.Pillar]
		if !ok {
			pillar = make(map[string]float64)
			out[axis.Pillar] = pillar
		}
		pillar[axis.CategoryLabel] = axis.AverageScore()
	}
	return out
}

// flattenReports keys each monthly report's challenge fields by month name.
func flattenReports(reports []*models.MonthlyReport) map[string]map[string]string {
	out := make(map[string]map[string]string)
	for _, r := range reports {
		if r.Month < 1 || r.Month > 12 {
			continue
		}
		out[time.Month(r.Month).String()] = map[string]string{
			"team":      r.Team,
			"product":   r.Product,
			"sales":     r.Sales,
			"marketing": r.Marketing,
			"finance":   r.Finance,
			"fundraise": r.Fundraise,
		}
	}
	return out
}

// BuildReviewPrompt assembles the user message for the review generation call:
// both quarters' flattened scores and the monthly reports, pretty-printed as
// JSON inside a fixed natural-language frame.
func BuildReviewPrompt(companyName string, year, quarter int, currentAxes, previousAxes []CategoryAxis, reports []*models.MonthlyReport) string {
	currentJSON, _ := json.MarshalIndent(flattenAxes(currentAxes), "", "  ")
	previousJSON, _ := json.MarshalIndent(flattenAxes(previousAxes), "", "  ")
	reportsJSON, _ := json.MarshalIndent(flattenReports(reports), "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, "Company: %s\nPeriod under review: Q%d %d\n\n", companyName, quarter, year)
	fmt.Fprintf(&b, "Current quarter scores by pillar and category:\n%s\n\n", currentJSON)
	if len(previousAxes) > 0 {
		fmt.Fprintf(&b, "Previous quarter scores by pillar and category:\n%s\n\n", previousJSON)
	} else {
		b.WriteString("No previous quarter data exists; treat this as the baseline quarter.\n\n")
	}
	fmt.Fprintf(&b, "Monthly report challenges by month:\n%s\n", reportsJSON)
	return b.String()
}

// stripJSONFence removes a leading ```/```json fenced block if present.
func stripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = ""
	}
	if end := strings.LastIndex(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

// ParseReviewResponse turns raw model output into a well-typed ReviewContent.
// Malformed output degrades to the raw text as the executive summary with
// empty slices; callers never see a parse error.
func ParseReviewResponse(raw string) models.ReviewContent {
	text := stripJSONFence(raw)

	var content models.ReviewContent
	if err := json.Unmarshal([]byte(text), &content); err != nil {
		return models.ReviewContent{
			ExecutiveSummary: raw,
			Insights:         []models.ReviewInsight{},
			Recommendations:  []string{},
		}
	}
	if content.Insights == nil {
		content.Insights = []models.ReviewInsight{}
	}
	if content.Recommendations == nil {
		content.Recommendations = []string{}
	}
	return content
}

// questionInfosForCompany returns aggregation inputs for every question the
// company's responses can reference: its own bank plus the standard bank.
func questionInfosForCompany(db *sql.DB, companyID string) ([]QuestionInfo, error) {
	custom, err := database.GetCompanyQuestions(db, companyID)
	if err != nil {
		return nil, err
	}
	standard, err := database.GetStandardQuestions(db)
	if err != nil {
		return nil, err
	}

	infos := make([]QuestionInfo, 0, len(custom)+len(standard))
	for _, q := range append(custom, standard...) {
		infos = append(infos, QuestionInfo{
			ID:            q.ID,
			CategoryID:    q.CategoryID,
			CategoryLabel: q.CategoryName,
			Pillar:        q.Pillar,
		})
	}
	return infos, nil
}

// PeriodAxes loads a period's responses and aggregates them into category axes.
func PeriodAxes(db *sql.DB, companyID, periodID string) ([]CategoryAxis, error) {
	infos, err := questionInfosForCompany(db, companyID)
	if err != nil {
		return nil, err
	}

	rows, err := database.GetResponsesByPeriod(db, periodID)
	if err != nil {
		return nil, err
	}

	responses := make([]ScoreResponse, 0, len(rows))
	for _, r := range rows {
		responses = append(responses, ScoreResponse{QuestionID: r.QuestionID, Score: r.Score})
	}
	return Aggregate(infos, responses), nil
}

// GenerateQuarterlyReview returns the cached review for (company, year,
// quarter) when a fresh one exists, and otherwise builds the prompt, calls the
// model, parses the reply and caches it for 24 hours. The second return value
// reports whether the cache answered. No retry on any failure; the admin
// decides whether to run it again.
func GenerateQuarterlyReview(ctx context.Context, db *sql.DB, llm LLMClient, companyID string, year, quarter int) (*models.ReviewContent, bool, error) {
	if cached, err := database.GetCachedReview(db, companyID, year, quarter); err == nil {
		content := ParseReviewResponse(cached.Content)
		return &content, true, nil
	} else if err != sql.ErrNoRows {
		return nil, false, err
	}

	company, err := database.GetCompanyByID(db, companyID)
	if err != nil {
		return nil, false, fmt.Errorf("company not found: %v", err)
	}

	current, err := database.GetPeriod(db, companyID, year, quarter)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, fmt.Errorf("no assessment exists for Q%d %d", quarter, year)
		}
		return nil, false, err
	}

	currentAxes, err := PeriodAxes(db, companyID, current.ID)
	if err != nil {
		return nil, false, err
	}

	var previousAxes []CategoryAxis
	periods, err := database.GetPeriodsByCompany(db, companyID)
	if err != nil {
		return nil, false, err
	}
	if previous := SelectPriorPeriod(periods, year, quarter, false); previous != nil {
		previousAxes, err = PeriodAxes(db, companyID, previous.ID)
		if err != nil {
			return nil, false, err
		}
	}

	reports, err := database.GetReportsForQuarter(db, companyID, year, quarter)
	if err != nil {
		return nil, false, err
	}

	prompt := BuildReviewPrompt(company.Name, year, quarter, currentAxes, previousAxes, reports)
	raw, err := llm.Chat(ctx, []ChatMessage{
		{Role: "system", Content: reviewInstructions},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, false, fmt.Errorf("review generation failed: %v", err)
	}

	content := ParseReviewResponse(raw)
	stored, err := json.Marshal(content)
	if err != nil {
		return nil, false, err
	}

	review := &models.QuarterlyReview{
		CompanyID: companyID,
		Year:      year,
		Quarter:   quarter,
		Content:   string(stored),
	}
	if err := database.UpsertReview(db, review); err != nil {
		// The review itself is still good; caching is best effort.
		log.Printf("Failed to cache quarterly review for %s Q%d %d: %v", companyID, quarter, year, err)
	}

	return &content, false, nil
}
