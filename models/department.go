package models

import "time"

// Department.Name is the join key used everywhere (students, courses, marks
// reference it as free text). Renaming a department orphans those strings.
type Department struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Head      string    `json:"head" gorm:"size:100;not null"`
	Phone     string    `json:"phone" gorm:"size:20;not null"`
	Email     string    `json:"email" gorm:"size:120;not null"`
	Strength  string    `json:"strength" gorm:"size:10;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
