package models

import "time"

// QuarterlyReview caches one generated narrative analysis per
// (company, year, quarter). Expiry is checked lazily on read; expired rows are
// overwritten by the next generation, never swept in the background.
type QuarterlyReview struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	CompanyID string    `json:"company_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Year      int       `json:"year" gorm:"not null"`
	Quarter   int       `json:"quarter" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
}

// ReviewInsight is one structured observation inside a quarterly review.
type ReviewInsight struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Type          string  `json:"type"` // improvement|decline|shift|correlation
	Category      string  `json:"category"`
	Pillar        string  `json:"pillar"`
	Change        float64 `json:"change"`
	CurrentScore  float64 `json:"current_score"`
	PreviousScore float64 `json:"previous_score"`
}

// ReviewContent is the parsed shape of a quarterly review. Callers always
// receive a well-typed value; parse failures degrade to the raw text in
// ExecutiveSummary with empty slices.
type ReviewContent struct {
	ExecutiveSummary string          `json:"executive_summary"`
	Insights         []ReviewInsight `json:"insights"`
	Recommendations  []string        `json:"recommendations"`
}
