package models

import "time"

// Question is a single Likert-scored statement. A nil CompanyID marks a
// standard question shared by every company without a custom bank; a
// company-specific copy is created lazily the first time an import sees a
// statement that company does not already have.
type Question struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	CategoryID   string    `json:"category_id" gorm:"index;type:uuid;not null" validate:"required,uuid"`
	CompanyID    *string   `json:"company_id,omitempty" gorm:"index;type:uuid"`
	Prompt       string    `json:"prompt" gorm:"not null" validate:"required"`
	Sequence     int       `json:"sequence" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Category     *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CategoryName string    `json:"category_name,omitempty" gorm:"-"` // Not stored in DB
	Pillar       string    `json:"pillar,omitempty" gorm:"-"`        // Not stored in DB
}
