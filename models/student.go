package models

import "time"

type Student struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Roll         string    `json:"roll" gorm:"size:20;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Department   string    `json:"department" gorm:"size:100;not null"` // matches Department.Name by string, no FK
	Year         string    `json:"year" gorm:"size:10;not null"`        // canonical ordinal label "1st".."4th"
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
