package models

import "time"

// AssessmentPeriod is one company's assessment for a (year, quarter), unique
// per company. An import targeting an existing period deletes and replaces it.
type AssessmentPeriod struct {
	ID        string                `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	CompanyID string                `json:"company_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Year      int                   `json:"year" gorm:"not null" validate:"gte=2000,lte=2100"`
	Quarter   int                   `json:"quarter" gorm:"not null" validate:"gte=1,lte=4"`
	CreatedAt time.Time             `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time             `json:"updated_at" gorm:"autoUpdateTime"`
	Company   *Company              `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Responses []*AssessmentResponse `json:"responses,omitempty" gorm:"foreignKey:PeriodID"`
}

// AssessmentResponse holds one scored answer. Manual submission validates the
// score to [1,5]; imports coerce anything invalid to 0 instead of rejecting.
type AssessmentResponse struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	PeriodID   string    `json:"period_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	QuestionID string    `json:"question_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Score      int       `json:"score" gorm:"not null;default:0" validate:"gte=0,lte=5"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	Question   *Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
}
