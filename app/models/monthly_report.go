package models

import "time"

// MonthlyReport holds a founder's qualitative update for one month. The
// challenge fields feed the quarterly review prompt alongside the scores.
type MonthlyReport struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	CompanyID string    `json:"company_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Year      int       `json:"year" gorm:"not null"`
	Month     int       `json:"month" gorm:"not null" validate:"gte=1,lte=12"`
	Team      string    `json:"team" gorm:"type:text"`
	Product   string    `json:"product" gorm:"type:text"`
	Sales     string    `json:"sales" gorm:"type:text"`
	Marketing string    `json:"marketing" gorm:"type:text"`
	Finance   string    `json:"finance" gorm:"type:text"`
	Fundraise string    `json:"fundraise" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
