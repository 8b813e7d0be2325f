package models

import "time"

// Company represents a portfolio company. Names are human-entered and may
// carry emoji or decorations; fuzzy matching against import payloads goes
// through services.CleanCompanyName first.
type Company struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Founders  []*User   `json:"founders,omitempty" gorm:"foreignKey:CompanyID"`
}
