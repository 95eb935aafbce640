package models

import "time"

type Teacher struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Phone        string    `json:"phone" gorm:"size:20;not null"`
	Department   string    `json:"department" gorm:"size:100;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
