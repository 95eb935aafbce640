package models

import "time"

type Course struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	Department string    `json:"department" gorm:"size:100;not null"`
	Year       string    `json:"year" gorm:"size:10;not null"`
	Credits    string    `json:"credits" gorm:"size:10;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
