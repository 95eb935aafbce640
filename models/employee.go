package models

import "time"

type Employee struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Role      string    `json:"role" gorm:"size:60;not null"` // job title, not an auth role
	Email     string    `json:"email" gorm:"size:120;not null"`
	Phone     string    `json:"phone" gorm:"size:20;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
