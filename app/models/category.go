package models

import "time"

// Category represents a named sub-area within a pillar, the unit of score
// aggregation on the radar chart. (pillar, label) pairs are unique; creating
// a duplicate resolves to the existing row.
type Category struct {
	ID        string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Pillar    string      `json:"pillar" gorm:"not null;index" validate:"required"`
	Label     string      `json:"label" gorm:"not null" validate:"required"`
	Sequence  int         `json:"sequence" gorm:"not null;default:0"`
	CreatedAt time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	Questions []*Question `json:"questions,omitempty" gorm:"foreignKey:CategoryID"`
}
